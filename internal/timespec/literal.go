package timespec

import (
	"fmt"
	"strconv"
	"strings"
)

// literalKind tags the variants of a time literal.
type literalKind int

const (
	literalNow literalKind = iota
	literalEpoch
	literalToday
	literalYesterday
	literalTomorrow
	literalCalendar
)

// timeLiteral is a parsed time literal: either a keyword or a calendar
// point. Calendar fields without a date default to the reference date, and
// missing clock fields default to midnight; those defaults are applied by
// the resolver, which knows the reference instant.
type timeLiteral struct {
	kind literalKind

	hasDate          bool
	year, month, day int

	hour, min, sec int
	usec           int
}

// keyword literals, matched exactly and case-sensitively.
var keywordLiterals = map[string]literalKind{
	"now":       literalNow,
	"epoch":     literalEpoch,
	"today":     literalToday,
	"yesterday": literalYesterday,
	"tomorrow":  literalTomorrow,
}

// parseLiteral recognizes a time literal: a keyword, a date, a clock time,
// or a date followed by a clock time. ok is false when text has none of
// those shapes; that is not an error by itself, the caller decides. A
// literal that matches a shape but carries out-of-range field values is an
// error.
func parseLiteral(text string) (lit timeLiteral, ok bool, err error) {
	if kind, found := keywordLiterals[text]; found {
		return timeLiteral{kind: kind}, true, nil
	}

	fields := strings.Fields(text)
	switch len(fields) {
	case 1:
		f := fields[0]
		if strings.ContainsRune(f, ':') {
			lit, ok, err = parseClock(f)
		} else {
			lit, ok, err = parseDate(f)
		}
		return lit, ok, err
	case 2:
		date, ok, err := parseDate(fields[0])
		if err != nil || !ok {
			return timeLiteral{}, ok, err
		}
		clock, ok, err := parseClock(fields[1])
		if err != nil || !ok {
			return timeLiteral{}, ok, err
		}
		clock.hasDate = true
		clock.year, clock.month, clock.day = date.year, date.month, date.day
		return clock, true, nil
	}
	return timeLiteral{}, false, nil
}

// parseDate recognizes "YYYY-MM-DD" and "YY-MM-DD". Two-digit years are
// always 2000+YY: "99-01-02" is 2099, not 1999.
func parseDate(s string) (timeLiteral, bool, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return timeLiteral{}, false, nil
	}
	year, ok := parseDigits(parts[0], 2, 4)
	if !ok || len(parts[0]) == 3 {
		return timeLiteral{}, false, nil
	}
	if len(parts[0]) == 2 {
		year += 2000
	}
	month, ok := parseDigits(parts[1], 1, 2)
	if !ok {
		return timeLiteral{}, false, nil
	}
	day, ok := parseDigits(parts[2], 1, 2)
	if !ok {
		return timeLiteral{}, false, nil
	}
	if month < 1 || month > 12 {
		return timeLiteral{}, false, fmt.Errorf("%w: month %d in %q", ErrRange, month, s)
	}
	if day < 1 || day > 31 {
		return timeLiteral{}, false, fmt.Errorf("%w: day %d in %q", ErrRange, day, s)
	}
	return timeLiteral{
		kind:    literalCalendar,
		hasDate: true,
		year:    year,
		month:   month,
		day:     day,
	}, true, nil
}

// parseClock recognizes "HH:MM", "HH:MM:SS" and "HH:MM:SS.FFF". The
// fractional part is a decimal fraction of a second kept at microsecond
// resolution: up to six digits are accepted as-is (zero-padded on the
// right), further digits are truncated.
func parseClock(s string) (timeLiteral, bool, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return timeLiteral{}, false, nil
	}
	hour, ok := parseDigits(parts[0], 1, 2)
	if !ok {
		return timeLiteral{}, false, nil
	}
	min, ok := parseDigits(parts[1], 1, 2)
	if !ok {
		return timeLiteral{}, false, nil
	}

	sec, usec := 0, 0
	if len(parts) == 3 {
		secPart := parts[2]
		fracPart := ""
		if i := strings.IndexByte(secPart, '.'); i >= 0 {
			secPart, fracPart = secPart[:i], secPart[i+1:]
		}
		sec, ok = parseDigits(secPart, 1, 2)
		if !ok {
			return timeLiteral{}, false, nil
		}
		if fracPart != "" {
			usec, err := parseFraction(fracPart)
			if err != nil {
				return timeLiteral{}, false, err
			}
			return validateClock(timeLiteral{
				kind: literalCalendar,
				hour: hour, min: min, sec: sec, usec: usec,
			}, s)
		}
	}
	return validateClock(timeLiteral{
		kind: literalCalendar,
		hour: hour, min: min, sec: sec, usec: usec,
	}, s)
}

func validateClock(lit timeLiteral, s string) (timeLiteral, bool, error) {
	if lit.hour > 23 {
		return timeLiteral{}, false, fmt.Errorf("%w: hour %d in %q", ErrRange, lit.hour, s)
	}
	if lit.min > 59 {
		return timeLiteral{}, false, fmt.Errorf("%w: minute %d in %q", ErrRange, lit.min, s)
	}
	if lit.sec > 59 {
		return timeLiteral{}, false, fmt.Errorf("%w: second %d in %q", ErrRange, lit.sec, s)
	}
	return lit, true, nil
}

// parseFraction converts fractional-second digits to microseconds. Short
// inputs are zero-padded to six digits, long inputs truncated to six.
func parseFraction(digits string) (int, error) {
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: malformed number %q", ErrLex, "."+digits)
		}
	}
	if len(digits) > 6 {
		digits = digits[:6]
	}
	for len(digits) < 6 {
		digits += "0"
	}
	usec, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed number %q", ErrLex, "."+digits)
	}
	return usec, nil
}

// parseDigits parses an all-digit field whose length is within
// [minLen, maxLen].
func parseDigits(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
