package adsbtools

// Filters is the caller-tunable shaping applied to every flight
// instance after segmentation. The zero value is a no-op.
//
// Unlike Floor and Ceiling, Downsample encodes "unset" as zero
// rather than nil: 0 and 1 are both the identity, and only negative
// values fail Validate.
type Filters struct {
	Downsample int      // keep every Nth report; 0 (unset) and 1 both keep all
	Floor      *float64 // feet; reports strictly below are dropped
	Ceiling    *float64 // feet; reports strictly above are dropped
}

func (f Filters)Validate() error {
	if f.Downsample < 0 {
		return configErrorf("downsample %d, must be >= 1", f.Downsample)
	}
	if f.Floor != nil && f.Ceiling != nil && *f.Floor > *f.Ceiling {
		return configErrorf("floor %.0fft above ceiling %.0fft", *f.Floor, *f.Ceiling)
	}
	return nil
}

// Apply shapes a time-sorted track. Downsampling runs first, on
// indexes into the full sequence, so that the kept points don't
// depend on the altitude bounds; then the floor/ceiling cut. A
// report exactly at floor or ceiling is kept. May return an empty
// track - callers drop those instances entirely.
func (f Filters)Apply(t Track) Track {
	out := t

	if f.Downsample > 1 {
		kept := Track{}
		for i := 0; i < len(out); i += f.Downsample {
			kept = append(kept, out[i])
		}
		out = kept
	}

	if f.Floor != nil || f.Ceiling != nil {
		kept := Track{}
		for _,r := range out {
			if f.Floor != nil && r.Height < *f.Floor { continue }
			if f.Ceiling != nil && r.Height > *f.Ceiling { continue }
			kept = append(kept, r)
		}
		out = kept
	}

	return out
}
