package output

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/spiffcs/tstamp/internal/format"
)

// TableFormatter formats results as aligned label/value blocks for the
// terminal.
type TableFormatter struct{}

var labelColor = color.New(color.FgCyan)

// Format outputs one block per result, blocks separated by a blank line.
func (f *TableFormatter) Format(results []Result, w io.Writer) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := f.formatOne(r, w); err != nil {
			return err
		}
	}
	return nil
}

func (f *TableFormatter) formatOne(r Result, w io.Writer) error {
	zone, offset := r.Resolved.Zone()
	rows := [][2]string{
		{"expression", r.Expression},
		{"resolved", r.Resolved.Format(r.layout())},
		{"zone", fmt.Sprintf("%s (UTC%s)", zone, formatOffset(offset))},
		{"utc", r.Resolved.UTC().Format(time.RFC3339Nano)},
		{"unix", strconv.FormatInt(r.Resolved.Unix(), 10)},
		{"unix_milli", strconv.FormatInt(r.Resolved.UnixMilli(), 10)},
		{"unix_micro", strconv.FormatInt(r.Resolved.UnixMicro(), 10)},
		{"unix_nano", strconv.FormatInt(r.Resolved.UnixNano(), 10)},
		{"relative", format.FormatRelative(r.Resolved.Sub(r.Reference))},
	}

	width := 0
	for _, row := range rows {
		if l := format.DisplayWidth(row[0]); l > width {
			width = l
		}
	}
	for _, row := range rows {
		label := format.PadRight(labelColor.Sprint(row[0]), width)
		if _, err := fmt.Fprintf(w, "%s  %s\n", label, row[1]); err != nil {
			return err
		}
	}
	return nil
}

// formatOffset renders a zone offset in seconds as "+HH:MM" or "-HH:MM".
func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, seconds%3600/60)
}
