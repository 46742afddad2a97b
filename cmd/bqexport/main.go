package main

// Reconstruct a day file and publish the flight instance summaries
// into BigQuery, via a GCS staging file.
//
//   bqexport -file 20240115_adsb.csv -date 20240115 -project my-proj \
//     -dataset flights -table instances -bucket my-bucket

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"google.golang.org/api/option"

	"github.com/skypies/adsbtools/asterix"
	"github.com/skypies/adsbtools/export"
)

var (
	ctx = context.Background()

	fFile      string
	fDate      string
	fProject   string
	fDataset   string
	fTable     string
	fBucket    string
	fFolder    string
	fCreds     string
	fOffsetHrs float64
)

func init() {
	flag.StringVar(&fFile, "file", "", "the adsb day file (csv)")
	flag.StringVar(&fDate, "date", "", "the file's nominal date, YYYYMMDD")
	flag.StringVar(&fProject, "project", "", "GCP project owning the dataset")
	flag.StringVar(&fDataset, "dataset", "flights", "BigQuery dataset")
	flag.StringVar(&fTable, "table", "instances", "BigQuery table (must exist)")
	flag.StringVar(&fBucket, "bucket", "", "GCS bucket for the staging file")
	flag.StringVar(&fFolder, "folder", "instances", "folder inside the bucket")
	flag.StringVar(&fCreds, "creds", "", "service account credentials file (optional)")
	flag.Float64Var(&fOffsetHrs, "utcoffset", 8, "source timezone offset from UTC, in hours")
	flag.Parse()

	if fFile == "" || fDate == "" || fProject == "" || fBucket == "" {
		log.Fatal("need -file, -date, -project and -bucket\n")
	}
}

func main() {
	offset := time.Duration(fOffsetHrs * float64(time.Hour))
	opts := asterix.ReadOptions{UTCOffset: &offset}

	instances,err := asterix.ReadInstances(fFile, fDate, opts)
	if err != nil { log.Fatal(err) }

	p := export.Publisher{
		Project: fProject,
		Dataset: fDataset,
		Table:   fTable,
		Bucket:  fBucket,
		Folder:  fFolder,
	}
	if fCreds != "" {
		p.ClientOptions = []option.ClientOption{option.WithCredentialsFile(fCreds)}
	}

	n,err := p.Publish(ctx, fDate, instances)
	if err != nil { log.Fatal(err) }

	if n == 0 {
		fmt.Printf("staging file already present for %s; load job submitted\n", fDate)
	} else {
		fmt.Printf("published %d instances for %s\n", n, fDate)
	}
}
