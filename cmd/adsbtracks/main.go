package main

// Reconstruct flight tracks from a surveillance day file, and dump
// them as GeoJSON (or a PDF plan view, for the airport view).
//
//   adsbtracks -file 20240115_adsb.csv -date 20240115
//   adsbtracks -file 20240115_adsb.csv -date 20240115 -flight MEDIC77_1
//   adsbtracks -file 20240115_adsb.csv -date 20240115 -airport WSSS -arrdep arr -pdf out.pdf

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	geojson "github.com/paulmach/go.geojson"

	"github.com/skypies/adsbtools"
	"github.com/skypies/adsbtools/asterix"
	"github.com/skypies/adsbtools/fpdf"
)

var (
	fFile       string
	fDate       string
	fFlight     string
	fAirport    string
	fArrDep     string
	fPdf        string
	fDownsample int
	fFloor      float64
	fCeiling    float64
	fOffsetHrs  float64
	fPolylines  bool
)

func init() {
	flag.StringVar(&fFile, "file", "", "the adsb day file (csv)")
	flag.StringVar(&fDate, "date", "", "the file's nominal date, YYYYMMDD")
	flag.StringVar(&fFlight, "flight", "", "a flight id (MEDIC77, or MEDIC77_1 for one instance)")
	flag.StringVar(&fAirport, "airport", "", "an ICAO code (WSSS, WSSL); outputs flightpaths")
	flag.StringVar(&fArrDep, "arrdep", "", "'arr' or 'dep'; blank keeps all flights (airport view)")
	flag.StringVar(&fPdf, "pdf", "", "render the airport view into this PDF file")
	flag.IntVar(&fDownsample, "downsample", 0, "keep every Nth point; 0 keeps all")
	flag.Float64Var(&fFloor, "floor", -1, "drop points below this height in feet; negative means no floor")
	flag.Float64Var(&fCeiling, "ceiling", -1, "drop points above this height in feet; negative means no ceiling")
	flag.Float64Var(&fOffsetHrs, "utcoffset", 8, "source timezone offset from UTC, in hours")
	flag.BoolVar(&fPolylines, "polylines", false, "add encoded polylines to airport view properties")
	flag.Parse()

	if fFile == "" || fDate == "" {
		log.Fatal("need -file and -date\n")
	}
	if fFlight != "" && fAirport != "" {
		log.Fatal("-flight and -airport don't combine; pick one\n")
	}
}

func readOptions() asterix.ReadOptions {
	offset := time.Duration(fOffsetHrs * float64(time.Hour))
	opts := asterix.ReadOptions{
		UTCOffset: &offset,
		Filters: adsbtools.Filters{Downsample: fDownsample},
	}
	if fFloor >= 0   { opts.Filters.Floor = &fFloor }
	if fCeiling >= 0 { opts.Filters.Ceiling = &fCeiling }
	return opts
}

// {{{ dumpRows, dumpPaths

func dumpRows(rows []adsbtools.TrackRow) {
	fc := geojson.NewFeatureCollection()
	for _,row := range rows {
		f := geojson.NewFeature(row.Geometry)
		f.SetProperty("id", string(row.Id))
		f.SetProperty("datetime", row.TimestampUTC.Format(time.RFC3339))
		f.SetProperty("unix_timestamp", row.UnixEpoch)
		fc.AddFeature(f)
	}
	dumpJSON(fc)
}

func dumpPaths(paths []adsbtools.FlightPath) {
	fc := geojson.NewFeatureCollection()
	for _,fp := range paths {
		f := geojson.NewFeature(fp.Geometry)
		f.SetProperty("id", string(fp.Id))
		if fPolylines {
			f.SetProperty("polyline", fp.EncodePolyline())
		}
		fc.AddFeature(f)
	}
	dumpJSON(fc)
}

func dumpJSON(v interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		log.Fatal(err)
	}
}

// }}}
// {{{ renderPdf

func renderPdf(airport adsbtools.Airport, paths []adsbtools.FlightPath) {
	pv := fpdf.NewPlanView(airport, 0.5)
	for _,fp := range paths {
		pv.DrawFlightPath(fp)
	}
	pv.DrawHeightKey()
	pv.DrawTitle(fmt.Sprintf("%s (%s), %s, %d flights", airport.ICAO, fArrDep, fDate, len(paths)))

	osfile,err := os.Create(fPdf)
	if err != nil { log.Fatal(err) }
	defer osfile.Close()

	if err := pv.Output(osfile); err != nil {
		log.Fatal(err)
	}
}

// }}}

func main() {
	opts := readOptions()

	switch {
	case fAirport != "":
		paths,err := asterix.ReadPathsByAirport(fFile, fDate, fAirport, fArrDep, opts)
		if err != nil { log.Fatal(err) }
		if fPdf != "" {
			airport,_ := adsbtools.LookupAirport(fAirport) // already validated by the read
			renderPdf(airport, paths)
			fmt.Printf("%d flightpaths written to %s\n", len(paths), fPdf)
			return
		}
		dumpPaths(paths)

	case fFlight != "":
		rows,err := asterix.ReadTracksByFlight(fFile, fDate, fFlight, opts)
		if err != nil { log.Fatal(err) }
		dumpRows(rows)

	default:
		rows,err := asterix.ReadTracks(fFile, fDate, opts)
		if err != nil { log.Fatal(err) }
		dumpRows(rows)
	}
}
