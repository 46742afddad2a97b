package adsbtools

import (
	"time"

	pgeo "github.com/paulmach/go.geo"
	geojson "github.com/paulmach/go.geojson"
)

// A TrackRow is one output row of the point-shaped views: a single
// report, with its instance id and a GeoJSON point carrying
// (lon, lat, alt).
type TrackRow struct {
	Id           InstanceId
	TimestampUTC time.Time
	UnixEpoch    int64
	Geometry     *geojson.Geometry
}

// A FlightPath is one output row of the path-shaped views: one
// flight instance as a GeoJSON linestring of (lon, lat, alt)
// vertices, in chronological order.
type FlightPath struct {
	Id       InstanceId
	Geometry *geojson.Geometry
}

// ToRows assembles point geometries, one row per report.
func (fi FlightInstance)ToRows() []TrackRow {
	rows := make([]TrackRow, 0, len(fi.Track))
	for _,r := range fi.Track {
		rows = append(rows, TrackRow{
			Id: fi.Id,
			TimestampUTC: r.TimestampUTC,
			UnixEpoch: r.UnixEpoch,
			Geometry: geojson.NewPointGeometry([]float64{r.Long, r.Lat, r.Height}),
		})
	}
	return rows
}

// ToPath assembles the instance's path geometry. A single-report
// instance yields a degenerate one-vertex linestring rather than an
// error, so callers asking for paths of short instances still get
// something valid to plot.
func (fi FlightInstance)ToPath() FlightPath {
	coords := make([][]float64, 0, len(fi.Track))
	for _,r := range fi.Track {
		coords = append(coords, []float64{r.Long, r.Lat, r.Height})
	}
	return FlightPath{Id: fi.Id, Geometry: geojson.NewLineStringGeometry(coords)}
}

// EncodePolyline returns the path as a Google encoded polyline, for
// handing to web map widgets. Altitude doesn't survive the encoding.
func (fp FlightPath)EncodePolyline() string {
	path := pgeo.NewPath()
	for _,c := range fp.Geometry.LineString {
		path.Push(pgeo.NewPoint(c[0], c[1]))
	}
	return path.Encode()
}
