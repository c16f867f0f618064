package timespec

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// spanToken is one <number><unit> pair scanned out of a time span.
type spanToken struct {
	whole int64   // integer part of the magnitude
	frac  float64 // fractional part, 0 <= frac < 1
	unit  UnitKind
}

// lexSpan scans text into a sequence of span tokens. The caller strips all
// whitespace first, so a token is a maximal run of digits (with at most one
// decimal point) followed by a maximal run of letters naming a unit. A number
// without a unit is an error: units are mandatory.
func lexSpan(text string) ([]spanToken, error) {
	var tokens []spanToken
	for text != "" {
		number, rest := spanWhile(text, func(r rune) bool {
			return unicode.IsDigit(r) || r == '.'
		})
		if number == "" {
			return nil, fmt.Errorf("%w: expected a number at %q", ErrLex, text)
		}
		whole, frac, err := parseMagnitude(number)
		if err != nil {
			return nil, err
		}

		spelling, rest := spanWhile(rest, unicode.IsLetter)
		if spelling == "" {
			return nil, fmt.Errorf("%w: number %q has no time unit", ErrLex, number)
		}
		unit, ok := lookupUnit(spelling)
		if !ok {
			return nil, fmt.Errorf("%w: unknown time unit %q", ErrLex, spelling)
		}

		tokens = append(tokens, spanToken{whole: whole, frac: frac, unit: unit})
		text = rest
	}
	return tokens, nil
}

// parseMagnitude parses a non-negative integer or decimal magnitude into its
// integer and fractional parts. Signs are not accepted here; the sign of a
// span is decided once for the whole expression.
func parseMagnitude(number string) (whole int64, frac float64, err error) {
	intPart := number
	fracPart := ""
	if i := strings.IndexByte(number, '.'); i >= 0 {
		intPart, fracPart = number[:i], number[i+1:]
		if fracPart == "" || strings.ContainsRune(fracPart, '.') {
			return 0, 0, fmt.Errorf("%w: malformed number %q", ErrLex, number)
		}
	}
	if intPart == "" {
		return 0, 0, fmt.Errorf("%w: malformed number %q", ErrLex, number)
	}
	whole, err = strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: malformed number %q", ErrLex, number)
	}
	if fracPart != "" {
		frac, err = strconv.ParseFloat("0."+fracPart, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: malformed number %q", ErrLex, number)
		}
	}
	return whole, frac, nil
}

// reduceSpan sums span tokens into a single duration. Magnitudes are summed
// per unit kind first, so repeated units combine regardless of order, then
// each kind is converted to microseconds with checked arithmetic.
func reduceSpan(tokens []spanToken) (time.Duration, error) {
	type kindTotal struct {
		whole int64
		frac  float64
	}
	totals := make(map[UnitKind]*kindTotal)
	for _, tok := range tokens {
		t, ok := totals[tok.unit]
		if !ok {
			t = &kindTotal{}
			totals[tok.unit] = t
		}
		whole, ok := addInt64(t.whole, tok.whole)
		if !ok {
			return 0, fmt.Errorf("%w: time span magnitude overflows", ErrRange)
		}
		t.whole = whole
		t.frac += tok.frac
	}

	var totalUsec int64
	for kind, t := range totals {
		mult := usecPerUnit(kind)
		usec, ok := mulInt64(t.whole, mult)
		if !ok {
			return 0, fmt.Errorf("%w: time span in %s overflows", ErrRange, kind)
		}
		if t.frac > 0 {
			fracUsec := int64(t.frac*float64(mult) + 0.5)
			usec, ok = addInt64(usec, fracUsec)
			if !ok {
				return 0, fmt.Errorf("%w: time span in %s overflows", ErrRange, kind)
			}
		}
		totalUsec, ok = addInt64(totalUsec, usec)
		if !ok {
			return 0, fmt.Errorf("%w: time span overflows", ErrRange)
		}
	}

	nsec, ok := mulInt64(totalUsec, 1_000)
	if !ok {
		return 0, fmt.Errorf("%w: time span overflows", ErrRange)
	}
	return time.Duration(nsec), nil
}

// parseSpan lexes and reduces a whitespace-stripped time span in one step.
func parseSpan(text string) (time.Duration, error) {
	tokens, err := lexSpan(text)
	if err != nil {
		return 0, err
	}
	return reduceSpan(tokens)
}

// spanWhile splits s at the first rune that fails the predicate.
func spanWhile(s string, pred func(rune) bool) (head, tail string) {
	for i, r := range s {
		if !pred(r) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum > 0) {
		return 0, false
	}
	return sum, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}
