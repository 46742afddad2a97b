package adsbtools

// go test -v github.com/skypies/adsbtools

import "testing"

func TestLookupAirport(t *testing.T) {
	for _,code := range []string{"WSSS", "WSSL"} {
		a,err := LookupAirport(code)
		if err != nil || a.ICAO != code {
			t.Errorf("LookupAirport(%s): %v, %v", code, a, err)
		}
	}

	if _,err := LookupAirport("wsss"); err == nil {
		t.Errorf("lookup is case-sensitive; 'wsss' should fail")
	}
}

func TestAirportMatchesEmptyTrack(t *testing.T) {
	a,_ := LookupAirport("WSSS")
	if a.Matches(FlightInstance{Id:"X", Raw:"X"}, DirAny) {
		t.Errorf("an empty instance matches nothing")
	}
}
