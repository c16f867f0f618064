package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/spiffcs/tstamp/config"
	"github.com/spiffcs/tstamp/internal/constants"
	"github.com/spiffcs/tstamp/internal/log"
	"github.com/spiffcs/tstamp/internal/output"
	"github.com/spiffcs/tstamp/internal/timespec"
)

// NewCmdResolve creates the resolve command.
func NewCmdResolve(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [expression]...",
		Short: "Resolve timestamp expressions (same as root tstamp)",
		Long: `Resolves each expression against the reference instant and prints
the result in the selected output format. With no expression, resolves "now".`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, opts)
		},
	}

	addResolveFlags(cmd, opts)
	return cmd
}

// addResolveFlags adds the resolve-specific flags to a command.
func addResolveFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json, unix, rfc3339)")
	cmd.Flags().StringVarP(&opts.Zone, "zone", "z", "", "Resolve in this IANA time zone (default: system zone)")
	cmd.Flags().StringVar(&opts.At, "at", "", "Reference instant as RFC 3339 (default: current time)")
	cmd.Flags().StringVar(&opts.Layout, "layout", "", "Go time layout for rendering resolved times")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read expressions from a file, one per line (- for stdin)")
	cmd.Flags().BoolVarP(&opts.Until, "until", "u", false, "Print the offset from the reference instead of the resolved time")
	cmd.Flags().IntVar(&opts.Workers, "workers", constants.DefaultWorkers, "Concurrent resolutions for --file")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	// Profiling flags
	cmd.Flags().StringVar(&opts.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	cmd.Flags().StringVar(&opts.MemProfile, "memprofile", "", "Write memory profile to file")
}

func runResolve(cmd *cobra.Command, args []string, opts *Options) error {
	log.Initialize(opts.Verbosity, os.Stderr)

	profiler := NewProfiler(opts.CPUProfile, opts.MemProfile)
	if err := profiler.Start(); err != nil {
		return err
	}
	defer profiler.Stop()

	if opts.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	format := output.Format(opts.Format)
	if format == "" {
		format = output.Format(cfg.DefaultFormat)
	}
	if !format.Valid() {
		return fmt.Errorf("invalid format: %s (must be table, json, unix or rfc3339)", format)
	}

	layout := opts.Layout
	if layout == "" {
		layout = cfg.Layout
	}

	zoneName := opts.Zone
	if zoneName == "" {
		zoneName = cfg.DefaultZone
	}
	loc, err := resolveZone(zoneName)
	if err != nil {
		return err
	}

	reference := time.Now().In(loc)
	if opts.At != "" {
		at, err := time.Parse(time.RFC3339, opts.At)
		if err != nil {
			return fmt.Errorf("invalid --at value %q: %w", opts.At, err)
		}
		reference = at.In(loc)
	}
	log.Debug("resolution context", "zone", loc.String(), "reference", reference.Format(time.RFC3339))

	// Positional args are one expression: "tstamp yesterday -- -2days"
	// and "tstamp '18-08-20 09:11:12 +2m'" resolve the same way.
	var expressions []string
	if len(args) > 0 {
		expressions = append(expressions, strings.Join(args, " "))
	}
	if opts.File != "" {
		fromFile, err := readExpressions(opts.File)
		if err != nil {
			return err
		}
		log.Info("read expressions from file", "path", opts.File, "count", len(fromFile))
		expressions = append(expressions, fromFile...)
	}
	if len(expressions) == 0 {
		expressions = []string{constants.DefaultExpression}
	}

	results, err := resolveAll(expressions, reference, loc, opts.Workers)
	if err != nil {
		return err
	}
	for i := range results {
		results[i].Layout = layout
		results[i].Until = opts.Until
	}

	formatter := output.NewFormatter(format)
	return formatter.Format(results, cmd.OutOrStdout())
}

// resolveAll resolves every expression against the same reference, at most
// workers at a time. Results keep the input order.
func resolveAll(expressions []string, reference time.Time, loc *time.Location, workers int) ([]output.Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]output.Result, len(expressions))
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, expr := range expressions {
		i, expr := i, expr
		g.Go(func() error {
			resolved, err := timespec.ParseAt(expr, reference, loc)
			if err != nil {
				return fmt.Errorf("%q: %w", expr, err)
			}
			log.Trace("resolved expression", "expression", expr, "resolved", resolved.Format(time.RFC3339Nano))
			results[i] = output.Result{
				Expression: expr,
				Resolved:   resolved,
				Reference:  reference,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// resolveZone maps a zone name to a time.Location. The empty name selects
// the system zone.
func resolveZone(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown time zone %q", timespec.ErrDelegated, name)
	}
	return loc, nil
}

// readExpressions reads one expression per line, skipping blank lines and
// lines starting with '#'.
func readExpressions(path string) ([]string, error) {
	var r io.Reader
	if path == constants.StdinPath {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open expression file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var expressions []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		expressions = append(expressions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expression file: %w", err)
	}
	return expressions, nil
}
