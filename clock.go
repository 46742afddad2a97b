package adsbtools

import (
	"time"
)

// A DayClock resolves a day file's elapsed-seconds values into
// absolute UTC instants.
//
// Elapsed seconds count from UTC midnight, but the file covers one
// *local* day at the source (fixed offset, e.g. UTC+8 for the
// Singapore feed). Local midnight falls 86400-offset seconds into
// the previous UTC day, so a file typically opens with values around
// 57600 that belong to the UTC date before its nominal one, then
// wraps through zero.
type DayClock struct {
	AnchorUTC time.Time     // midnight UTC of the file's nominal date
	Offset    time.Duration // source timezone offset from UTC
}

// NewDayClock builds a clock for a date string in YYYYMMDD form. The
// offset is explicit configuration; there is no baked-in timezone.
func NewDayClock(datestr string, offset time.Duration) (DayClock, error) {
	t,err := time.Parse("20060102", datestr)
	if err != nil {
		return DayClock{}, ParseError{Field:"date", Value:datestr, Err:err}
	}
	return DayClock{AnchorUTC: t.UTC(), Offset: offset}, nil
}

// Resolve is a pure function from elapsed seconds to a UTC instant.
// Values at or past the local-midnight wrap point land on the
// previous UTC date.
func (c DayClock)Resolve(elapsed float64) time.Time {
	d := time.Duration(elapsed * float64(time.Second))
	wrapsAt := 24*time.Hour - c.Offset
	if c.Offset > 0 && d >= wrapsAt {
		return c.AnchorUTC.AddDate(0,0,-1).Add(d)
	}
	return c.AnchorUTC.Add(d)
}
