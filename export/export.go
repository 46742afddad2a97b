// Package export publishes reconstructed flight instances for
// offline analysis: a newline-delimited JSON file in Cloud Storage,
// then a BigQuery load job over it. The core pipeline never writes
// anything; this is the external collaborator that does.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/skypies/adsbtools"
)

// InstanceForBigQuery is a flight instance, denormalized down to a
// track summary instead of a track. It is designed for import into
// BigQuery, for analysis.
type InstanceForBigQuery struct {
	InstanceId  string
	RawId       string
	Date        string // the file's nominal local date, same format as BQ's DATE()
	Start       time.Time
	End         time.Time
	DurationSec int64
	Points      int
	MinHeight   float64
	MaxHeight   float64
}

// ForBigQuery summarizes one instance. datestr is YYYYMMDD, as
// passed to the read calls.
func ForBigQuery(datestr string, fi adsbtools.FlightInstance) InstanceForBigQuery {
	s,e := fi.Track.Times()

	row := InstanceForBigQuery{
		InstanceId: string(fi.Id),
		RawId: string(fi.Raw),
		Date: bqDate(datestr),
		Start: s,
		End: e,
		DurationSec: int64(fi.Track.Duration().Seconds()),
		Points: len(fi.Track),
		MinHeight: fi.Track[0].Height,
		MaxHeight: fi.Track[0].Height,
	}

	for _,r := range fi.Track {
		if r.Height < row.MinHeight { row.MinHeight = r.Height }
		if r.Height > row.MaxHeight { row.MaxHeight = r.Height }
	}

	return row
}

func bqDate(datestr string) string {
	if len(datestr) != 8 { return datestr }
	return datestr[0:4] + "-" + datestr[4:6] + "-" + datestr[6:8]
}

// A Publisher holds the cloud plumbing config. The bigquery dataset
// can live in a different project than the bucket; the service
// account just needs editor on the dataset's project and reader on
// the bucket.
type Publisher struct {
	Project   string // the project owning the destination dataset
	Dataset   string
	Table     string
	Bucket    string
	Folder    string

	ClientOptions []option.ClientOption // e.g. option.WithCredentialsFile
}

// {{{ p.WriteInstancesGCSFile

// WriteInstancesGCSFile writes the instances as NDJSON into a GCS
// object, ready for a load job. Returns the object name and the
// number of records written - zero when the object already existed,
// so re-publishing a day is cheap and idempotent.
func (p Publisher)WriteInstancesGCSFile(ctx context.Context, datestr string, instances []adsbtools.FlightInstance) (string, int, error) {
	filename := p.Folder + "/tracks-" + datestr + ".json"

	client,err := storage.NewClient(ctx, p.ClientOptions...)
	if err != nil {
		return "", 0, fmt.Errorf("creating storage client: %v", err)
	}
	defer client.Close()

	obj := client.Bucket(p.Bucket).Object(filename)
	if _,err := obj.Attrs(ctx); err == nil {
		return filename, 0, nil
	} else if err != storage.ErrObjectNotExist {
		return "", 0, err
	}

	w := obj.NewWriter(ctx)
	w.ContentType = "application/json"
	encoder := json.NewEncoder(w)

	n := 0
	for _,fi := range instances {
		if err := encoder.Encode(ForBigQuery(datestr, fi)); err != nil {
			return "", 0, err
		}
		n++
	}

	if err := w.Close(); err != nil {
		return "", 0, err
	}

	return filename, n, nil
}

// }}}
// {{{ p.SubmitLoadJob

// SubmitLoadJob asks BigQuery to load a previously written GCS file
// into the destination table. The table must already exist.
func (p Publisher)SubmitLoadJob(ctx context.Context, filename string) error {
	client,err := bigquery.NewClient(ctx, p.Project, p.ClientOptions...)
	if err != nil {
		return fmt.Errorf("creating bigquery client: %v", err)
	}
	defer client.Close()

	gcsSrc := bigquery.NewGCSReference(fmt.Sprintf("gs://%s/%s", p.Bucket, filename))
	gcsSrc.SourceFormat = bigquery.JSON
	gcsSrc.AllowJaggedRows = true

	loader := client.Dataset(p.Dataset).Table(p.Table).LoaderFrom(gcsSrc)
	loader.CreateDisposition = bigquery.CreateNever
	if _,err := loader.Run(ctx); err != nil {
		return fmt.Errorf("submission of load job: %v", err)
	}

	return nil
}

// }}}

// Publish writes the day's instances to GCS and submits the load
// job. Returns how many records went into the file.
func (p Publisher)Publish(ctx context.Context, datestr string, instances []adsbtools.FlightInstance) (int, error) {
	filename,n,err := p.WriteInstancesGCSFile(ctx, datestr, instances)
	if err != nil {
		return 0, err
	}
	if err := p.SubmitLoadJob(ctx, filename); err != nil {
		return n, err
	}
	return n, nil
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
