package asterix

import (
	"os"
	"time"

	"github.com/skypies/adsbtools"
)

var (
	// KSourceUTCOffset is the default timezone offset of the source
	// feed; the files we get cover a Singapore local day. Callers with
	// other feeds set ReadOptions.UTCOffset instead.
	KSourceUTCOffset = 8 * time.Hour
)

// ReadOptions configures a day-file read.
type ReadOptions struct {
	UTCOffset *time.Duration // nil means KSourceUTCOffset; UTC feeds pass an explicit zero
	Filters   adsbtools.Filters
}

func (o ReadOptions)offset() time.Duration {
	if o.UTCOffset == nil { return KSourceUTCOffset }
	return *o.UTCOffset
}

// readFile opens the day file and returns its resolved reports.
func readFile(fname, datestr string, opts ReadOptions) ([]adsbtools.Report, error) {
	clock,err := adsbtools.NewDayClock(datestr, opts.offset())
	if err != nil {
		return nil, err
	}

	osfile,err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer osfile.Close()

	return ReadFrom(fname, osfile, clock)
}

// ReadInstances reads a day file and reconstructs its flight
// instances, without flattening them into an output view.
func ReadInstances(fname, datestr string, opts ReadOptions) ([]adsbtools.FlightInstance, error) {
	reports,err := readFile(fname, datestr, opts)
	if err != nil { return nil, err }
	return adsbtools.Reconstruct(reports, opts.Filters)
}

// ReadTracks is the everything view over one day file: one point row
// per surviving report, across every identifier.
func ReadTracks(fname, datestr string, opts ReadOptions) ([]adsbtools.TrackRow, error) {
	reports,err := readFile(fname, datestr, opts)
	if err != nil { return nil, err }
	return adsbtools.AllPositions(reports, opts.Filters)
}

// ReadTracksByFlight restricts the point rows to one flight id. A
// bare raw id covers all of that id's instances; an instance id
// (SIA322_1) matches just the one. Unknown ids yield empty output.
func ReadTracksByFlight(fname, datestr, flight string, opts ReadOptions) ([]adsbtools.TrackRow, error) {
	reports,err := readFile(fname, datestr, opts)
	if err != nil { return nil, err }
	return adsbtools.PositionsByFlight(reports, flight, opts.Filters)
}

// ReadPathsByAirport keeps flights touching the airport's vicinity,
// one linestring per flight instance. arrdep is "arr", "dep", or
// blank for both.
func ReadPathsByAirport(fname, datestr, airport, arrdep string, opts ReadOptions) ([]adsbtools.FlightPath, error) {
	dir,err := adsbtools.ParseDirection(arrdep)
	if err != nil { return nil, err }

	reports,err := readFile(fname, datestr, opts)
	if err != nil { return nil, err }
	return adsbtools.PathsByAirport(reports, airport, dir, opts.Filters)
}
