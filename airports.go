package adsbtools

import (
	"github.com/skypies/geo"
)

// An Airport pairs an ICAO code with the lat/long box used for the
// vicinity test. The boxes are generous; they're asking "did this
// flight start or end at the field", not "which runway".
type Airport struct {
	ICAO string
	Name string
	Box  geo.LatlongBox
}

// The closed set of supported airports. Extend the table, don't
// branch on code strings elsewhere.
var KAirports = map[string]Airport{
	"WSSS": {
		ICAO: "WSSS",
		Name: "Singapore Changi",
		Box: geo.LatlongBox{
			SW: geo.Latlong{Lat:1.3, Long:103.9},
			NE: geo.Latlong{Lat:1.4, Long:104.1},
		},
	},
	"WSSL": {
		ICAO: "WSSL",
		Name: "Seletar",
		Box: geo.LatlongBox{
			SW: geo.Latlong{Lat:1.40, Long:103.86},
			NE: geo.Latlong{Lat:1.43, Long:103.88},
		},
	},
}

func LookupAirport(code string) (Airport, error) {
	if a,exists := KAirports[code]; exists {
		return a, nil
	}
	return Airport{}, configErrorf("airport '%s' not supported", code)
}

// Direction discriminates arrivals from departures at an airport.
type Direction int
const (
	DirAny Direction = iota
	DirArrival
	DirDeparture
)

func (d Direction)String() string {
	switch d {
	case DirArrival:   return "arr"
	case DirDeparture: return "dep"
	}
	return "any"
}

// ParseDirection maps the CLI/API flag values onto a Direction. The
// empty string means "keep all flights".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "":    return DirAny, nil
	case "arr": return DirArrival, nil
	case "dep": return DirDeparture, nil
	}
	return DirAny, configErrorf(
		"direction '%s': use \"arr\" or \"dep\", or leave blank to keep all flights", s)
}

// Matches applies the vicinity test to an instance: arrivals end
// inside the airport box, departures start inside it, DirAny takes
// either.
func (a Airport)Matches(fi FlightInstance, dir Direction) bool {
	if len(fi.Track) == 0 { return false }

	first := fi.Track[0].Latlong
	last := fi.Track[len(fi.Track)-1].Latlong

	switch dir {
	case DirArrival:   return a.Box.Contains(last)
	case DirDeparture: return a.Box.Contains(first)
	}
	return a.Box.Contains(first) || a.Box.Contains(last)
}
