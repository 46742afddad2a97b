package adsbtools

// go test -v github.com/skypies/adsbtools

import (
	"testing"
)

// Three ids: MEDIC77 flies twice (20m hole) well north of any
// airport box, SIA322 arrives at Changi, TGW543 departs it. An
// all-zeroes id never makes it this far; see the asterix package
// tests for row skipping.
func makeDayReports() []Report {
	return []Report{
		// deliberately interleaved and unsorted
		makeReport("SIA322",  "2024-01-15T10:02:00Z", 1.10, 103.50, 20000),
		makeReport("MEDIC77", "2024-01-15T10:30:00Z", 1.62, 103.65, 1000),
		makeReport("MEDIC77", "2024-01-15T10:00:00Z", 1.60, 103.60, 500),
		makeReport("SIA322",  "2024-01-15T10:10:00Z", 1.35, 104.00, 200), // inside WSSS box
		makeReport("TGW543",  "2024-01-15T10:20:00Z", 1.36, 103.95, 300), // inside WSSS box
		makeReport("MEDIC77", "2024-01-15T10:25:00Z", 1.63, 103.62, 3000),
		makeReport("MEDIC77", "2024-01-15T10:05:00Z", 1.61, 103.61, 2500),
		makeReport("TGW543",  "2024-01-15T10:28:00Z", 1.00, 103.00, 4000),
	}
}

func TestReconstruct(t *testing.T) {
	instances,err := Reconstruct(makeDayReports(), Filters{})
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}

	// Deterministic ordering: raw ids ascending, instances chronological.
	expected := []InstanceId{"MEDIC77", "MEDIC77_1", "SIA322", "TGW543"}
	if len(instances) != len(expected) {
		t.Fatalf("expected %d instances, got %d: %v", len(expected), len(instances), instances)
	}
	for i,fi := range instances {
		if fi.Id != expected[i] {
			t.Errorf("instance %d: expected %s, got %s", i, expected[i], fi.Id)
		}
	}
}

func TestReconstructDropsEmptiedInstances(t *testing.T) {
	// A 5000ft floor empties every instance except SIA322, which
	// keeps just its cruise report.
	floor := 5000.0
	instances,err := Reconstruct(makeDayReports(), Filters{Floor:&floor})
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}

	if len(instances) != 1 || instances[0].Id != "SIA322" {
		t.Errorf("expected just SIA322 above 5000ft, got %v", instances)
	}
}

func TestAllPositions(t *testing.T) {
	rows,err := AllPositions(makeDayReports(), Filters{})
	if err != nil {
		t.Fatalf("AllPositions: %v", err)
	}

	if len(rows) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(rows))
	}

	// First row is MEDIC77's first report; check the point geometry
	// carries (lon, lat, alt).
	r := rows[0]
	if r.Id != "MEDIC77" {
		t.Errorf("first row id %s", r.Id)
	}
	pt := r.Geometry.Point
	if len(pt) != 3 || pt[0] != 103.60 || pt[1] != 1.60 || pt[2] != 500 {
		t.Errorf("point geometry wrong: %v", pt)
	}
	if r.UnixEpoch != r.TimestampUTC.Unix() {
		t.Errorf("unix epoch out of step with timestamp")
	}
}

func TestPositionsByFlight(t *testing.T) {
	tests := []struct{
		Flight   string
		Expected int
	}{
		{"MEDIC77",   4}, // bare raw id covers both instances
		{"MEDIC77_1", 2},
		{"SIA322",    2},
		{"UAL100",    0}, // unknown: empty, not an error
	}

	for _,test := range tests {
		rows,err := PositionsByFlight(makeDayReports(), test.Flight, Filters{})
		if err != nil {
			t.Fatalf("PositionsByFlight(%s): %v", test.Flight, err)
		}
		if len(rows) != test.Expected {
			t.Errorf("PositionsByFlight(%s) - expected %d rows, got %d",
				test.Flight, test.Expected, len(rows))
		}
	}
}

func TestPositionsByFlightRoundTrip(t *testing.T) {
	// The by-flight view is exactly the everything view restricted to
	// matching ids; same rows, same order, same geometry.
	all,err := AllPositions(makeDayReports(), Filters{})
	if err != nil { t.Fatalf("AllPositions: %v", err) }

	sub,err := PositionsByFlight(makeDayReports(), "MEDIC77", Filters{})
	if err != nil { t.Fatalf("PositionsByFlight: %v", err) }

	matching := []TrackRow{}
	for _,row := range all {
		if row.Id.Matches("MEDIC77") { matching = append(matching, row) }
	}

	if len(matching) != len(sub) || len(sub) == 0 {
		t.Fatalf("expected %d matching rows, by-flight view has %d", len(matching), len(sub))
	}
	for i := range sub {
		a,b := matching[i],sub[i]
		if a.Id != b.Id || !a.TimestampUTC.Equal(b.TimestampUTC) || a.UnixEpoch != b.UnixEpoch {
			t.Errorf("row %d differs: %v vs %v", i, a, b)
			continue
		}
		pa,pb := a.Geometry.Point, b.Geometry.Point
		if len(pa) != len(pb) {
			t.Errorf("row %d geometry differs: %v vs %v", i, pa, pb)
			continue
		}
		for j := range pa {
			if pa[j] != pb[j] {
				t.Errorf("row %d geometry differs: %v vs %v", i, pa, pb)
				break
			}
		}
	}
}

func TestPathsByAirport(t *testing.T) {
	// SIA322 ends inside the WSSS box (an arrival), TGW543 starts
	// inside it (a departure); MEDIC77 never comes near.
	tests := []struct{
		Dir      Direction
		Expected []InstanceId
	}{
		{DirArrival,   []InstanceId{"SIA322"}},
		{DirDeparture, []InstanceId{"TGW543"}},
		{DirAny,       []InstanceId{"SIA322", "TGW543"}},
	}

	for _,test := range tests {
		paths,err := PathsByAirport(makeDayReports(), "WSSS", test.Dir, Filters{})
		if err != nil {
			t.Fatalf("PathsByAirport(%v): %v", test.Dir, err)
		}
		ids := []InstanceId{}
		for _,fp := range paths { ids = append(ids, fp.Id) }
		if len(ids) != len(test.Expected) {
			t.Errorf("PathsByAirport(%v) - expected %v, got %v", test.Dir, test.Expected, ids)
			continue
		}
		for i := range ids {
			if ids[i] != test.Expected[i] {
				t.Errorf("PathsByAirport(%v) - expected %v, got %v", test.Dir, test.Expected, ids)
			}
		}
	}
}

func TestPathsByAirportUnknownAirport(t *testing.T) {
	_,err := PathsByAirport(makeDayReports(), "KSFO", DirAny, Filters{})
	if err == nil {
		t.Fatal("expected an error for an unsupported airport")
	}
	if _,ok := err.(ConfigError); !ok {
		t.Errorf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct{
		In       string
		Expected Direction
		Bad      bool
	}{
		{"",        DirAny,       false},
		{"arr",     DirArrival,   false},
		{"dep",     DirDeparture, false},
		{"arrival", DirAny,       true},
		{"ARR",     DirAny,       true},
	}

	for _,test := range tests {
		d,err := ParseDirection(test.In)
		if test.Bad {
			if err == nil {
				t.Errorf("ParseDirection(%q) - expected an error", test.In)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDirection(%q): %v", test.In, err)
		} else if d != test.Expected {
			t.Errorf("ParseDirection(%q) = %v, expected %v", test.In, d, test.Expected)
		}
	}
}
