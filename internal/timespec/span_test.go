package timespec

import (
	"errors"
	"testing"
	"time"
)

func TestLookupUnit(t *testing.T) {
	tests := []struct {
		spelling string
		want     UnitKind
	}{
		{"us", UnitMicrosecond},
		{"µs", UnitMicrosecond},
		{"usec", UnitMicrosecond},
		{"ms", UnitMillisecond},
		{"msec", UnitMillisecond},
		{"s", UnitSecond},
		{"sec", UnitSecond},
		{"second", UnitSecond},
		{"seconds", UnitSecond},
		{"m", UnitMinute},
		{"min", UnitMinute},
		{"minute", UnitMinute},
		{"minutes", UnitMinute},
		{"h", UnitHour},
		{"hr", UnitHour},
		{"hour", UnitHour},
		{"hours", UnitHour},
		{"d", UnitDay},
		{"day", UnitDay},
		{"days", UnitDay},
		{"w", UnitWeek},
		{"week", UnitWeek},
		{"weeks", UnitWeek},
		{"M", UnitMonth},
		{"month", UnitMonth},
		{"months", UnitMonth},
		{"y", UnitYear},
		{"year", UnitYear},
		{"years", UnitYear},
	}
	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			got, ok := lookupUnit(tt.spelling)
			if !ok {
				t.Fatalf("lookupUnit(%q) not found", tt.spelling)
			}
			if got != tt.want {
				t.Errorf("lookupUnit(%q) = %v, want %v", tt.spelling, got, tt.want)
			}
		})
	}

	if _, ok := lookupUnit("fortnight"); ok {
		t.Error("lookupUnit(\"fortnight\") should not match")
	}
	if _, ok := lookupUnit("S"); ok {
		t.Error("lookupUnit(\"S\") should not match, spellings are case-sensitive")
	}
}

func TestParseSpan(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr error
	}{
		{input: "", want: 0},
		{input: "5s", want: 5 * time.Second},
		{input: "2h", want: 2 * time.Hour},
		{input: "1d", want: 24 * time.Hour},
		{input: "3w", want: 21 * 24 * time.Hour},
		{input: "500ms", want: 500 * time.Millisecond},
		{input: "250us", want: 250 * time.Microsecond},
		{input: "7min30sec", want: 7*time.Minute + 30*time.Second},
		{input: "1d12h", want: 36 * time.Hour},
		{input: "2hours30minutes", want: 2*time.Hour + 30*time.Minute},

		// months and years use fixed conversion factors
		{input: "1M", want: 2_629_800 * time.Second},
		{input: "1y", want: 31_557_600 * time.Second},

		// repeated units accumulate regardless of order
		{input: "10m2s5m", want: 15*time.Minute + 2*time.Second},
		{input: "5m10m2s", want: 15*time.Minute + 2*time.Second},
		{input: "2s10m5m", want: 15*time.Minute + 2*time.Second},

		// decimal magnitudes
		{input: "1.5h", want: 90 * time.Minute},
		{input: "0.5s", want: 500 * time.Millisecond},
		{input: "2.25d", want: 54 * time.Hour},

		{input: "10", wantErr: ErrLex},
		{input: "s", wantErr: ErrLex},
		{input: "5x", wantErr: ErrLex},
		{input: "1..2s", wantErr: ErrLex},
		{input: "5.s", wantErr: ErrLex},
		{input: ".5s", wantErr: ErrLex},
		{input: "1s2", wantErr: ErrLex},
		{input: "9223372036854775y", wantErr: ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSpan(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseSpan(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSpan(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseSpan(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
