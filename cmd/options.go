package cmd

import "github.com/spiffcs/tstamp/internal/constants"

// Options holds the shared command-line options for the tstamp CLI.
type Options struct {
	Format    string // Output format (table, json, unix, rfc3339)
	Zone      string // IANA time zone name, empty = system zone
	At        string // RFC 3339 reference instant, empty = now
	Layout    string // Time layout for rendering, empty = RFC 3339
	File      string // Read expressions from this file ("-" = stdin)
	Until     bool   // Print the offset from the reference instead
	Workers   int    // Concurrent resolutions for --file
	Verbosity int
	NoColor   bool

	// Profiling options
	CPUProfile string // Write CPU profile to file
	MemProfile string // Write memory profile to file
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		Workers: constants.DefaultWorkers,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFormat sets the output format (table, json, unix, rfc3339).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithZone sets the time zone expressions resolve in.
func WithZone(zone string) Option {
	return func(o *Options) {
		o.Zone = zone
	}
}

// WithAt sets the RFC 3339 reference instant.
func WithAt(at string) Option {
	return func(o *Options) {
		o.At = at
	}
}

// WithLayout sets the time layout for rendering resolved times.
func WithLayout(layout string) Option {
	return func(o *Options) {
		o.Layout = layout
	}
}

// WithFile sets the file to read expressions from.
func WithFile(file string) Option {
	return func(o *Options) {
		o.File = file
	}
}

// WithUntil switches output to the offset from the reference.
func WithUntil(until bool) Option {
	return func(o *Options) {
		o.Until = until
	}
}

// WithWorkers sets the number of concurrent resolutions.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		o.Workers = workers
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithNoColor disables colored output.
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithCPUProfile sets the CPU profile output file.
func WithCPUProfile(path string) Option {
	return func(o *Options) {
		o.CPUProfile = path
	}
}

// WithMemProfile sets the memory profile output file.
func WithMemProfile(path string) Option {
	return func(o *Options) {
		o.MemProfile = path
	}
}
