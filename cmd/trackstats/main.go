package main

// Summarize a surveillance day file: how many flights, how long the
// tracks run, what area they covered, when in the day they flew, and
// how many touched each airport we know about.

import(
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/skypies/geo"
	"github.com/skypies/util/histogram"

	"github.com/skypies/adsbtools"
	"github.com/skypies/adsbtools/asterix"
)

var(
	fDate      string
	fOffsetHrs float64
)
func init() {
	flag.StringVar(&fDate, "date", "", "the files' nominal date, YYYYMMDD")
	flag.Float64Var(&fOffsetHrs, "utcoffset", 8, "source timezone offset from UTC, in hours")
	flag.Parse()

	if fDate == "" {
		log.Fatal("need a -date\n")
	}
}

// {{{ pprint

func pprint(m map[string]int) string {
	str := ""
	keys := []string{}
	for k,_ := range m { keys = append(keys, k) }
	sort.Strings(keys)
	for _,k := range keys {
		str += fmt.Sprintf("  %-12.12s:  %5d\n", k, m[k])
	}
	return str
}

// }}}
// {{{ stats

func stats(files []string) {
	airports := map[string]int{}
	rawids := map[string]int{}
	h := histogram.NewSet(1000)
	tod := histogram.Histogram{NumBuckets:48,ValMax:48}
	var bbox *geo.LatlongBox

	offset := time.Duration(fOffsetHrs * float64(time.Hour))
	opts := asterix.ReadOptions{UTCOffset: &offset}

	nInstances := 0
	for i,file := range files {
		fmt.Printf("[%d/%d] loading %s\n", i+1, len(files), file)

		instances,err := asterix.ReadInstances(file, fDate, opts)
		if err != nil { log.Fatal(err) }
		nInstances += len(instances)

		for _,fi := range instances {
			rawids[string(fi.Raw)]++
			h.RecordValue("tracklen", int64(len(fi.Track)))
			h.RecordValue("durationsec", int64(fi.Track.Duration().Seconds()))

			for icao,airport := range adsbtools.KAirports {
				if airport.Matches(fi, adsbtools.DirArrival)   { airports[icao+":arr"]++ }
				if airport.Matches(fi, adsbtools.DirDeparture) { airports[icao+":dep"]++ }
			}

			for _,r := range fi.Track {
				if bbox == nil {
					tmp := r.BoxTo(r.Latlong)
					bbox = &tmp
				}
				bbox.Enclose(r.Latlong)
				// Figure out which 30m bucket this point is from
				bucket := r.TimestampUTC.Hour()*2
				if r.TimestampUTC.Minute() >= 30 { bucket++ }
				tod.Add(histogram.ScalarVal(bucket))
			}
		}
	}

	if bbox == nil {
		fmt.Printf("no position reports found\n")
		return
	}

	wd,ht := bbox.NW().DistKM(bbox.NE), bbox.NW().DistKM(bbox.SW)

	fmt.Printf("Flights: %d instances across %d raw identifiers\n", nInstances, len(rawids))
	fmt.Printf("Area (%.1fKM x %.1fKM) : %s\n", wd, ht, *bbox)
	fmt.Printf("Airports:-\n%s", pprint(airports))
	fmt.Printf("Time of day counts (UTC): %s\n", tod)
	fmt.Printf("Stats:-\n%s", h)
}

// }}}

func main() {
	stats(flag.Args())
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
