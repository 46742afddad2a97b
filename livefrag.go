package adsbtools

import (
	"sort"

	"github.com/skypies/adsb"
)

// Bridge from live receiver batches into the reconstruction
// pipeline. A batch of composite messages becomes plain Reports, so
// the same segmentation applies whether positions came from a day
// file or off the air.

func MessagesToReports(msgs []*adsb.CompositeMsg) []Report {
	if len(msgs) == 0 { return nil }

	sort.Sort(adsb.CompositeMsgPtrByTimeAsc(msgs))

	out := make([]Report, 0, len(msgs))
	for _,m := range msgs {
		out = append(out, Report{
			RawReport: RawReport{
				Latlong: m.Position,
				Height: float64(m.Altitude),
				Id: RawId(m.Callsign),
			},
			TimestampUTC: m.GeneratedTimestampUTC,
			UnixEpoch: m.GeneratedTimestampUTC.Unix(),
			DataSource: "ADSB",
		})
	}
	return out
}
