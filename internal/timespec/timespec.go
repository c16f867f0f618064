// Package timespec parses systemd.time style timestamp expressions: time
// literals such as "now", "epoch", "yesterday" or "18-08-20 09:11:12",
// optionally offset by a time span such as "2h 30min", with the span's sign
// taken from a leading "+" or "-" or a trailing "ago" or "left". Parsed
// expressions resolve to an absolute time.Time against a reference instant
// and a time zone.
package timespec

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// ParseAt parses a timestamp expression and resolves it against the
// reference instant now in zone loc. A nil loc means time.Local. Errors
// wrap one of ErrLex, ErrGrammar or ErrRange.
func ParseAt(input string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	expr, err := parseExpression(input)
	if err != nil {
		return time.Time{}, err
	}
	base, err := resolveBase(expr.lit, now.In(loc), loc)
	if err != nil {
		return time.Time{}, err
	}
	return base.Add(expr.span), nil
}

// Parse resolves input against the current wall clock. See ParseAt.
func Parse(input string, loc *time.Location) (time.Time, error) {
	return parseWithClock(input, clockwork.NewRealClock(), loc)
}

func parseWithClock(input string, clock clockwork.Clock, loc *time.Location) (time.Time, error) {
	return ParseAt(input, clock.Now(), loc)
}

// resolveBase turns a time literal into an absolute instant. Keyword
// literals derive from the reference instant, calendar literals fill
// missing fields from it: a bare clock time is today's clock time and a
// bare date is that date's midnight.
func resolveBase(lit timeLiteral, now time.Time, loc *time.Location) (time.Time, error) {
	switch lit.kind {
	case literalNow:
		return now, nil
	case literalEpoch:
		return time.Unix(0, 0).In(loc), nil
	case literalToday:
		return midnight(now), nil
	case literalYesterday:
		return midnight(now).AddDate(0, 0, -1), nil
	case literalTomorrow:
		return midnight(now).AddDate(0, 0, 1), nil
	}

	year, month, day := now.Date()
	if lit.hasDate {
		year, month, day = lit.year, time.Month(lit.month), lit.day
	}
	t := time.Date(year, month, day, lit.hour, lit.min, lit.sec, lit.usec*1_000, loc)
	if lit.hasDate {
		// time.Date normalizes out-of-range days, 2018-02-30 becomes
		// March 2nd. Reject instead of silently rolling over.
		y, m, d := t.Date()
		if y != year || m != month || d != day {
			return time.Time{}, fmt.Errorf("%w: day %d is out of range for %04d-%02d", ErrRange, day, year, month)
		}
	}
	return t, nil
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
