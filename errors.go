package adsbtools

import (
	"fmt"
	"strings"
)

// The error taxonomy for day-file processing. None of these are
// retryable; a file either processes completely or yields no output
// at all.

// A SchemaError means the file's header was missing required columns.
// It is raised before any row is processed.
type SchemaError struct {
	Missing []string
}

func (e SchemaError)Error() string {
	return fmt.Sprintf("schema: required columns missing: %s", strings.Join(e.Missing, ", "))
}

// A ParseError means a date string or a non-blank field failed to
// parse. It aborts the whole file.
type ParseError struct {
	Field string
	Value string
	Line  int // zero when the error isn't tied to a row
	Err   error
}

func (e ParseError)Error() string {
	str := fmt.Sprintf("parse: bad %s '%s'", e.Field, e.Value)
	if e.Line > 0 {
		str += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Err != nil {
		str += ": " + e.Err.Error()
	}
	return str
}

// A ConfigError means the caller asked for something unsupportable:
// a bad downsample factor, floor above ceiling, an unknown airport.
type ConfigError struct {
	Reason string
}

func (e ConfigError)Error() string { return "config: " + e.Reason }

func configErrorf(format string, args ...interface{}) ConfigError {
	return ConfigError{fmt.Sprintf(format, args...)}
}
