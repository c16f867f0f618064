package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/spiffcs/tstamp/internal/format"
)

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// jsonResult is the wire shape of one resolved expression.
type jsonResult struct {
	Expression string `json:"expression"`
	Resolved   string `json:"resolved"`
	UTC        string `json:"utc"`
	Unix       int64  `json:"unix"`
	UnixMicros int64  `json:"unix_micros"`
	Zone       string `json:"zone"`
	Relative   string `json:"relative"`
}

// Format outputs results as a JSON array
func (f *JSONFormatter) Format(results []Result, w io.Writer) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		zone, _ := r.Resolved.Zone()
		out = append(out, jsonResult{
			Expression: r.Expression,
			Resolved:   r.Resolved.Format(time.RFC3339Nano),
			UTC:        r.Resolved.UTC().Format(time.RFC3339Nano),
			Unix:       r.Resolved.Unix(),
			UnixMicros: r.Resolved.UnixMicro(),
			Zone:       zone,
			Relative:   format.FormatRelative(r.Resolved.Sub(r.Reference)),
		})
	}

	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(out)
}
