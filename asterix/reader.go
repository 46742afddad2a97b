package asterix

// {{{ notes

/* The surveillance day files come as CSV rows, one per report, with
ASTERIX-flavored header names. The headers vary a bit between dumps
(extra columns come and go), so we turn each row into a map from
header name to value and pull out the ones we need:

  [*] 073:071_073TimeforPos  - elapsed seconds for the position
  [*] 131:Latitude           - degrees
  [*] 131:Longitude          - degrees
  [*] 140:GeometricHeight    - feet
  [*] 170:TargetID           - broadcast callsign, not unique per day

A file covers one local day; see adsbtools.DayClock for how the
elapsed seconds resolve into UTC instants.
*/

// }}}

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/skypies/geo"

	"github.com/skypies/adsbtools"
)

const (
	TimeForPosCol = "073:071_073TimeforPos"
	LatitudeCol   = "131:Latitude"
	LongitudeCol  = "131:Longitude"
	HeightCol     = "140:GeometricHeight"
	TargetIdCol   = "170:TargetID"
)

var RequiredColumns = []string{
	TimeForPosCol, LatitudeCol, LongitudeCol, HeightCol, TargetIdCol,
}

type RowReader struct {
	csvreader *csv.Reader
	headers   []string
}

// NewRowReader reads the header line and validates the schema; a
// missing required column fails here, before any row is processed.
func NewRowReader(ioreader io.Reader) (*RowReader, error) {
	rdr := RowReader{
		csvreader: csv.NewReader(ioreader),
	}

	headers,err := rdr.csvreader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	rdr.headers = headers

	have := map[string]bool{}
	for _,h := range headers {
		have[strings.TrimSpace(h)] = true
	}
	missing := []string{}
	for _,col := range RequiredColumns {
		if !have[col] { missing = append(missing, col) }
	}
	if len(missing) > 0 {
		return nil, adsbtools.SchemaError{Missing: missing}
	}

	return &rdr, nil
}

// {{{ rdr.Read()

func (r *RowReader)Read() (Row,error) {
	m := map[string]string{}

	vals,err := r.csvreader.Read()
	if err != nil {
		return m,err
	} else if len(r.headers) != len(vals) {
		return m, fmt.Errorf("header/val mismatch (%d/%d)", len(r.headers), len(vals))
	}

	for i,_ := range vals {
		m[strings.TrimSpace(r.headers[i])] = vals[i]
	}

	return m,nil
}

// }}}

type Row map[string]string

var junkId = regexp.MustCompile(`^0+$`)

// {{{ row.ToRawReport

// ToRawReport parses one row. skip==true means the row is silently
// dropped: a blank field, an empty id, or an all-zeroes id. A
// non-blank field that fails to parse is a ParseError, which aborts
// the whole file.
func (row Row)ToRawReport() (rep adsbtools.RawReport, skip bool, err error) {
	id := strings.TrimSpace(row[TargetIdCol])
	if id == "" || junkId.MatchString(id) {
		return rep, true, nil
	}

	for _,col := range []string{TimeForPosCol, LatitudeCol, LongitudeCol, HeightCol} {
		if strings.TrimSpace(row[col]) == "" {
			return rep, true, nil
		}
	}

	secs,err := parseFloat(row, TimeForPosCol)
	if err != nil { return rep, false, err }
	lat,err := parseFloat(row, LatitudeCol)
	if err != nil { return rep, false, err }
	long,err := parseFloat(row, LongitudeCol)
	if err != nil { return rep, false, err }
	height,err := parseFloat(row, HeightCol)
	if err != nil { return rep, false, err }

	rep = adsbtools.RawReport{
		SecondsForPos: secs,
		Latlong: geo.Latlong{Lat:lat, Long:long},
		Height: height,
		Id: adsbtools.RawId(id),
	}
	return rep, false, nil
}

// }}}

func parseFloat(row Row, col string) (float64, error) {
	v,err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
	if err != nil {
		return 0, adsbtools.ParseError{Field:col, Value:row[col], Err:err}
	}
	return v, nil
}

// {{{ ReadFrom

// ReadFrom drains the reader, resolving every surviving row against
// the day clock. On any error, no reports are returned; there is no
// partial output.
func ReadFrom(name string, ioreader io.Reader, clock adsbtools.DayClock) ([]adsbtools.Report, error) {
	rdr,err := NewRowReader(ioreader)
	if err != nil {
		return nil, err
	}

	reports := []adsbtools.Report{}
	line := 1 // the header
	for {
		line++
		row,err := rdr.Read()
		if err == io.EOF { break }
		if err != nil {
			if pe,ok := err.(adsbtools.ParseError); ok {
				pe.Line = line
				return nil, pe
			}
			return nil, fmt.Errorf("%s:%d: %v", name, line, err)
		}

		raw,skip,err := row.ToRawReport()
		if err != nil {
			if pe,ok := err.(adsbtools.ParseError); ok {
				pe.Line = line
				return nil, pe
			}
			return nil, err
		}
		if skip { continue }

		reports = append(reports, raw.Resolve(clock))
	}

	return reports, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
