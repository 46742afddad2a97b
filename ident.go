package adsbtools

/* Some notes on identifiers in these files

# Target IDs

The 170:TargetID field carries whatever the aircraft broadcast as its
callsign - an ICAO flight number (SIA322), a registration (9V-SKU),
or junk. We don't try to classify them; a raw id is just a label that
groups reports.

A raw id is NOT unique across a day's file. The same callsign can fly
twice (or be recycled by a different airframe), so raw ids get
disambiguated into instance ids once we've segmented on time gaps:
the first flight keeps the bare id, later ones get _1, _2, etc.

# Junk ids

Some targets broadcast an empty id, or a string of zeroes. Those rows
are dropped during file reading; see the asterix package.

 */

import (
	"fmt"
	"strconv"
	"strings"
)

// A RawId is a target identifier exactly as broadcast.
type RawId string

// An InstanceId identifies one contiguous flight flown under a raw id.
type InstanceId string

// Instance derives the id for the n-th flight instance (zero-based)
// of a raw id. The first instance keeps the bare raw id.
func (id RawId)Instance(n int) InstanceId {
	if n == 0 {
		return InstanceId(id)
	}
	return InstanceId(fmt.Sprintf("%s_%d", id, n))
}

// RawId strips the instance suffix, if there is one.
func (id InstanceId)RawId() RawId {
	str := string(id)
	if i := strings.LastIndex(str, "_"); i > 0 {
		if _,err := strconv.Atoi(str[i+1:]); err == nil {
			return RawId(str[:i])
		}
	}
	return RawId(str)
}

// Matches implements the lookup rule for requested flight ids: an
// exact instance id matches just that instance, while a bare raw id
// matches every instance derived from it.
func (id InstanceId)Matches(req string) bool {
	if string(id) == req {
		return true
	}
	return string(id.RawId()) == req
}
