package export

// go test -v github.com/skypies/adsbtools/export

import (
	"testing"
	"time"

	"github.com/skypies/geo"

	"github.com/skypies/adsbtools"
)

func makeInstance() adsbtools.FlightInstance {
	mk := func(timestr string, height float64) adsbtools.Report {
		tm,_ := time.Parse(time.RFC3339, timestr)
		return adsbtools.Report{
			RawReport: adsbtools.RawReport{
				Latlong: geo.Latlong{Lat:1.3, Long:103.9},
				Height: height,
				Id: "MEDIC77",
			},
			TimestampUTC: tm,
			UnixEpoch: tm.Unix(),
			DataSource: "ASTERIX",
		}
	}

	return adsbtools.FlightInstance{
		Id: "MEDIC77_1",
		Raw: "MEDIC77",
		Track: adsbtools.Track{
			mk("2024-01-15T10:00:00Z",  500),
			mk("2024-01-15T10:05:00Z", 2500),
			mk("2024-01-15T10:10:00Z", 1000),
		},
	}
}

func TestForBigQuery(t *testing.T) {
	row := ForBigQuery("20240115", makeInstance())

	if row.InstanceId != "MEDIC77_1" || row.RawId != "MEDIC77" {
		t.Errorf("ids wrong: %+v", row)
	}
	if row.Date != "2024-01-15" {
		t.Errorf("date %q, expected 2024-01-15", row.Date)
	}
	if row.DurationSec != 600 || row.Points != 3 {
		t.Errorf("summary wrong: %+v", row)
	}
	if row.MinHeight != 500 || row.MaxHeight != 2500 {
		t.Errorf("height range wrong: %+v", row)
	}
	if row.End.Sub(row.Start) != 10*time.Minute {
		t.Errorf("start/end wrong: %+v", row)
	}
}
