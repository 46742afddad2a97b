package adsbtools

import (
	"fmt"
	"time"

	"github.com/skypies/geo"
)

// A RawReport is one surveillance message as found in a day file,
// before its clock has been resolved. Immutable once parsed.
type RawReport struct {
	SecondsForPos float64 // elapsed seconds since UTC midnight
	geo.Latlong           // embedded, so we can call the geo stuff directly
	Height        float64 // geometric height, in feet
	Id            RawId
}

// A Report is a RawReport plus its absolute UTC instant. One per raw
// report; derived once, never mutated.
type Report struct {
	RawReport
	TimestampUTC time.Time
	UnixEpoch    int64
	DataSource   string // "ASTERIX" for day-file rows, "ADSB" for live fragments
}

// Resolve derives the report's absolute instant from the day clock.
func (r RawReport)Resolve(c DayClock) Report {
	t := c.Resolve(r.SecondsForPos)
	return Report{
		RawReport: r,
		TimestampUTC: t,
		UnixEpoch: t.Unix(),
		DataSource: "ASTERIX",
	}
}

func (r Report)String() string {
	return fmt.Sprintf("[%s] %s %s %.0fft",
		r.TimestampUTC.Format("2006.01.02 15:04:05"), r.Id, r.Latlong, r.Height)
}
