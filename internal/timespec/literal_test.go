package timespec

import (
	"errors"
	"testing"
)

func TestParseLiteralKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  literalKind
	}{
		{"now", literalNow},
		{"epoch", literalEpoch},
		{"today", literalToday},
		{"yesterday", literalYesterday},
		{"tomorrow", literalTomorrow},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lit, ok, err := parseLiteral(tt.input)
			if err != nil || !ok {
				t.Fatalf("parseLiteral(%q) = ok=%v err=%v", tt.input, ok, err)
			}
			if lit.kind != tt.want {
				t.Errorf("parseLiteral(%q) kind = %v, want %v", tt.input, lit.kind, tt.want)
			}
		})
	}

	// keywords are case-sensitive
	if _, ok, _ := parseLiteral("Now"); ok {
		t.Error("parseLiteral(\"Now\") should not match")
	}
}

func TestParseLiteralCalendar(t *testing.T) {
	tests := []struct {
		input   string
		want    timeLiteral
		noMatch bool
		wantErr error
	}{
		{
			input: "2018-08-20",
			want:  timeLiteral{kind: literalCalendar, hasDate: true, year: 2018, month: 8, day: 20},
		},
		{
			input: "18-08-20",
			want:  timeLiteral{kind: literalCalendar, hasDate: true, year: 2018, month: 8, day: 20},
		},
		{
			// two-digit years always land in the 2000s
			input: "99-01-02",
			want:  timeLiteral{kind: literalCalendar, hasDate: true, year: 2099, month: 1, day: 2},
		},
		{
			input: "2018-8-2",
			want:  timeLiteral{kind: literalCalendar, hasDate: true, year: 2018, month: 8, day: 2},
		},
		{
			input: "09:11",
			want:  timeLiteral{kind: literalCalendar, hour: 9, min: 11},
		},
		{
			input: "9:11:12",
			want:  timeLiteral{kind: literalCalendar, hour: 9, min: 11, sec: 12},
		},
		{
			input: "09:11:12.5",
			want:  timeLiteral{kind: literalCalendar, hour: 9, min: 11, sec: 12, usec: 500_000},
		},
		{
			input: "09:11:12.123456",
			want:  timeLiteral{kind: literalCalendar, hour: 9, min: 11, sec: 12, usec: 123_456},
		},
		{
			// sub-microsecond digits are truncated
			input: "09:11:12.1234567",
			want:  timeLiteral{kind: literalCalendar, hour: 9, min: 11, sec: 12, usec: 123_456},
		},
		{
			input: "18-08-20 09:11:12",
			want: timeLiteral{
				kind: literalCalendar, hasDate: true,
				year: 2018, month: 8, day: 20,
				hour: 9, min: 11, sec: 12,
			},
		},

		{input: "2018/08/20", noMatch: true},
		{input: "hello", noMatch: true},
		{input: "123-01-02", noMatch: true},
		{input: "1-2-3-4", noMatch: true},
		{input: "09:11:12:13", noMatch: true},
		{input: "a b c", noMatch: true},

		{input: "2018-13-01", wantErr: ErrRange},
		{input: "2018-00-01", wantErr: ErrRange},
		{input: "2018-12-32", wantErr: ErrRange},
		{input: "25:00", wantErr: ErrRange},
		{input: "10:65", wantErr: ErrRange},
		{input: "10:00:99", wantErr: ErrRange},
		{input: "09:11:12.12x", wantErr: ErrLex},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lit, ok, err := parseLiteral(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseLiteral(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLiteral(%q) unexpected error: %v", tt.input, err)
			}
			if tt.noMatch {
				if ok {
					t.Fatalf("parseLiteral(%q) ok = true, want no match", tt.input)
				}
				return
			}
			if !ok {
				t.Fatalf("parseLiteral(%q) ok = false, want match", tt.input)
			}
			if lit != tt.want {
				t.Errorf("parseLiteral(%q) = %+v, want %+v", tt.input, lit, tt.want)
			}
		})
	}
}
