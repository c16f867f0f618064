// Package output renders resolved timestamp expressions in the formats the
// CLI offers.
package output

import (
	"io"
	"time"
)

// Format represents the output format
type Format string

const (
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatUnix    Format = "unix"
	FormatRFC3339 Format = "rfc3339"
)

// Formats lists every accepted output format.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatUnix, FormatRFC3339}
}

// Valid reports whether f names a known format.
func (f Format) Valid() bool {
	for _, known := range Formats() {
		if f == known {
			return true
		}
	}
	return false
}

// Result is one resolved expression, carried from the resolver to a
// formatter together with the reference instant it was resolved against.
type Result struct {
	Expression string
	Resolved   time.Time
	Reference  time.Time

	// Layout is the time layout for single-value rendering. Empty means
	// RFC 3339.
	Layout string

	// Until switches the single-value formats from printing the resolved
	// time to printing the offset between the reference and it.
	Until bool
}

func (r Result) layout() string {
	if r.Layout == "" {
		return time.RFC3339
	}
	return r.Layout
}

// Formatter defines the interface for output formatters
type Formatter interface {
	Format(results []Result, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatUnix:
		return &UnixFormatter{}
	case FormatRFC3339:
		return &RFC3339Formatter{}
	default:
		return &TableFormatter{}
	}
}
