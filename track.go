package adsbtools

import (
	"fmt"
	"sort"
	"time"
)

// A Track is a slice of Reports, ordered in time, beginning to end.
type Track []Report

type byTimestampAscending Track
func (a byTimestampAscending) Len() int           { return len(a) }
func (a byTimestampAscending) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTimestampAscending) Less(i, j int) bool {
	return a[i].TimestampUTC.Before(a[j].TimestampUTC)
}

// Sort puts the track into ascending time order. The sort is stable,
// so reports sharing an instant keep their file order; segmentation
// depends on this being deterministic.
func (t Track)Sort() {
	sort.Stable(byTimestampAscending(t))
}

func (t Track)Start() time.Time { return t[0].TimestampUTC }
func (t Track)End() time.Time { return t[len(t)-1].TimestampUTC }
func (t Track)Times() (s,e time.Time) { return t.Start(), t.End() }
func (t Track)Duration() time.Duration { return t.End().Sub(t.Start()) }

func (t Track)String() string {
	if len(t) == 0 { return "Track: empty" }
	str := fmt.Sprintf("Track: %d points, start=%s", len(t),
		t[0].TimestampUTC.Format("2006.01.02 15:04:05"))
	if len(t) > 1 {
		s,e := t[0],t[len(t)-1]
		str += fmt.Sprintf(", %s, %.1fKM", e.TimestampUTC.Sub(s.TimestampUTC), s.Dist(e.Latlong))
	}
	return str
}
