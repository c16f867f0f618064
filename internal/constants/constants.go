// Package constants provides a centralized location for configuration
// values and magic numbers used throughout the tstamp application.
package constants

// Resolution constants
const (
	// DefaultWorkers is the number of concurrent resolutions when reading
	// expressions from a file.
	DefaultWorkers = 8

	// DefaultExpression is resolved when no expression is given on the
	// command line.
	DefaultExpression = "now"

	// StdinPath is the --file argument that selects standard input.
	StdinPath = "-"
)
