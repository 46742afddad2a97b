package adsbtools

import (
	"fmt"
	"time"
)

var (
	// KMaxReportGap is how large a gap of missing time can exist
	// inside one flight before we conclude the raw id has started a
	// new flight. A gap of exactly this much does NOT split.
	KMaxReportGap = 15 * time.Minute
)

// A FlightInstance is a maximal run of reports for one raw id with
// no internal gap exceeding the segmentation threshold. Its reports
// are strictly time-ordered and it is never empty on creation
// (though filtering may empty it later; see Filters).
type FlightInstance struct {
	Id     InstanceId
	Raw    RawId
	Track  // embedded
}

func (fi FlightInstance)String() string {
	return fmt.Sprintf("[%s] %s", fi.Id, fi.Track)
}

// Segment splits one raw id's reports into flight instances. The
// input may be in any order; we stable-sort by UTC instant, walk
// consecutive pairs, and break wherever the gap strictly exceeds
// 'gap'. Instances are numbered in chronological order of first
// appearance. A single report yields one single-element instance;
// minimal tracks are valid.
func Segment(id RawId, reports []Report, gap time.Duration) []FlightInstance {
	if len(reports) == 0 { return nil }

	t := make(Track, len(reports))
	copy(t, reports)
	t.Sort()

	instances := []FlightInstance{}
	cur := Track{t[0]}
	for _,r := range t[1:] {
		if r.TimestampUTC.Sub(cur[len(cur)-1].TimestampUTC) > gap {
			instances = append(instances, FlightInstance{Raw:id, Track:cur})
			cur = Track{}
		}
		cur = append(cur, r)
	}
	instances = append(instances, FlightInstance{Raw:id, Track:cur})

	for i := range instances {
		instances[i].Id = id.Instance(i)
	}

	return instances
}
