package adsbtools

import (
	"sort"
)

// The three view pipelines over a day's resolved reports. The
// asterix package layers file reading on top of these; anything that
// can hand us a []Report (a day file, a live receiver fragment) gets
// the same reconstruction.

// Reconstruct runs the core pipeline: group by raw id, segment each
// group on reporting gaps, then apply the filters to each instance.
// Instances emptied by filtering vanish entirely - they never turn
// into zero-length geometries downstream.
//
// Output order is deterministic: raw ids ascending, and each id's
// instances in chronological order. Re-running on the same input
// yields identical instance ids in identical order.
func Reconstruct(reports []Report, f Filters) ([]FlightInstance, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	byId := map[RawId][]Report{}
	for _,r := range reports {
		byId[r.Id] = append(byId[r.Id], r)
	}

	ids := make([]string, 0, len(byId))
	for id := range byId {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	out := []FlightInstance{}
	for _,id := range ids {
		for _,fi := range Segment(RawId(id), byId[RawId(id)], KMaxReportGap) {
			fi.Track = f.Apply(fi.Track)
			if len(fi.Track) == 0 { continue }
			out = append(out, fi)
		}
	}

	return out, nil
}

// AllPositions is the everything view: point rows for every
// identifier in the reports.
func AllPositions(reports []Report, f Filters) ([]TrackRow, error) {
	instances,err := Reconstruct(reports, f)
	if err != nil { return nil, err }

	rows := []TrackRow{}
	for _,fi := range instances {
		rows = append(rows, fi.ToRows()...)
	}
	return rows, nil
}

// PositionsByFlight restricts the point rows to one requested id -
// either an exact instance id, or a bare raw id covering all of its
// instances. An unknown id yields an empty result, not an error.
func PositionsByFlight(reports []Report, flight string, f Filters) ([]TrackRow, error) {
	instances,err := Reconstruct(reports, f)
	if err != nil { return nil, err }

	rows := []TrackRow{}
	for _,fi := range instances {
		if !fi.Id.Matches(flight) { continue }
		rows = append(rows, fi.ToRows()...)
	}
	return rows, nil
}

// PathsByAirport keeps just the instances whose track starts or ends
// in the requested airport's vicinity (or only ends / only starts,
// for arrivals / departures), shaped as one path per instance.
func PathsByAirport(reports []Report, code string, dir Direction, f Filters) ([]FlightPath, error) {
	airport,err := LookupAirport(code)
	if err != nil { return nil, err }

	instances,err := Reconstruct(reports, f)
	if err != nil { return nil, err }

	paths := []FlightPath{}
	for _,fi := range instances {
		if !airport.Matches(fi, dir) { continue }
		paths = append(paths, fi.ToPath())
	}
	return paths, nil
}
