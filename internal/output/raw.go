package output

import (
	"fmt"
	"io"
	"strconv"
)

// UnixFormatter prints one Unix timestamp in seconds per result. With
// Result.Until set it prints the whole seconds between the reference and
// the resolved time instead.
type UnixFormatter struct{}

func (f *UnixFormatter) Format(results []Result, w io.Writer) error {
	for _, r := range results {
		v := r.Resolved.Unix()
		if r.Until {
			v = int64(r.Resolved.Sub(r.Reference).Seconds())
		}
		if _, err := fmt.Fprintln(w, strconv.FormatInt(v, 10)); err != nil {
			return err
		}
	}
	return nil
}

// RFC3339Formatter prints one formatted time per result, using the
// result's layout. With Result.Until set it prints the offset as a Go
// duration instead.
type RFC3339Formatter struct{}

func (f *RFC3339Formatter) Format(results []Result, w io.Writer) error {
	for _, r := range results {
		line := r.Resolved.Format(r.layout())
		if r.Until {
			line = r.Resolved.Sub(r.Reference).String()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
