package timespec

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// expression is a fully parsed timestamp expression: a base time literal
// plus a signed span offset from it.
type expression struct {
	lit  timeLiteral
	span time.Duration
}

// parseExpression splits an expression into its literal and span halves and
// decides the span's sign. The sign comes from exactly one place: a leading
// "+" or "-", a " +" or " -" separator after a literal, or a trailing "ago"
// or "left" keyword. Supplying more than one of those is an error, as is an
// empty expression.
func parseExpression(text string) (expression, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return expression{}, fmt.Errorf("%w: empty expression", ErrGrammar)
	}

	if strings.HasPrefix(text, "@") {
		return parseEpochExpression(text[1:])
	}

	sign := int64(0)
	rest := text
	switch {
	case strings.HasPrefix(text, "+"):
		sign, rest = 1, text[1:]
	case strings.HasPrefix(text, "-"):
		sign, rest = -1, text[1:]
	}

	if suffix, keywordSign, found := trimSignKeyword(rest); found {
		if sign != 0 {
			return expression{}, fmt.Errorf("%w: %q has both a sign and a sign keyword", ErrGrammar, text)
		}
		if strings.Contains(suffix, " +") || strings.Contains(suffix, " -") {
			return expression{}, fmt.Errorf("%w: %q mixes a sign keyword with a signed offset", ErrGrammar, text)
		}
		span, err := parseSpan(stripSpaces(suffix))
		if err != nil {
			return expression{}, err
		}
		return expression{lit: timeLiteral{kind: literalNow}, span: time.Duration(keywordSign) * span}, nil
	}

	if sign != 0 {
		// A leading sign rules out a literal: the remainder is a span
		// relative to now. A bare sign is the empty span.
		span, err := parseSpan(stripSpaces(rest))
		if err != nil {
			return expression{}, err
		}
		return expression{lit: timeLiteral{kind: literalNow}, span: time.Duration(sign) * span}, nil
	}

	plus, minus := strings.Count(text, " +"), strings.Count(text, " -")
	if plus > 0 && minus > 0 {
		return expression{}, fmt.Errorf("%w: %q has both a + and a - offset", ErrGrammar, text)
	}
	if plus > 1 || minus > 1 {
		return expression{}, fmt.Errorf("%w: %q has more than one signed offset", ErrGrammar, text)
	}
	if plus == 1 || minus == 1 {
		sep, sign := " +", int64(1)
		if minus == 1 {
			sep, sign = " -", -1
		}
		i := strings.Index(text, sep)
		litText := strings.TrimSpace(text[:i])
		spanText := text[i+len(sep):]

		lit, ok, err := parseLiteral(litText)
		if err != nil {
			return expression{}, err
		}
		if !ok {
			return expression{}, fmt.Errorf("%w: %q is not a time literal", ErrGrammar, litText)
		}
		span, err := parseSpan(stripSpaces(spanText))
		if err != nil {
			return expression{}, err
		}
		return expression{lit: lit, span: time.Duration(sign) * span}, nil
	}

	lit, ok, err := parseLiteral(text)
	if err != nil {
		return expression{}, err
	}
	if ok {
		return expression{lit: lit}, nil
	}

	// No separator and the whole text is not a literal: try the longest
	// literal prefix, field-wise, with the remainder as a positive span.
	fields := strings.Fields(text)
	for take := min(2, len(fields)-1); take >= 1; take-- {
		litText := strings.Join(fields[:take], " ")
		lit, ok, err := parseLiteral(litText)
		if err != nil {
			return expression{}, err
		}
		if !ok {
			continue
		}
		span, err := parseSpan(stripSpaces(strings.Join(fields[take:], "")))
		if err != nil {
			return expression{}, err
		}
		return expression{lit: lit, span: span}, nil
	}

	// Not a literal in any shape. If it lexes as a span the grammar is
	// missing a sign or a literal; if it does not, the lex error stands.
	if _, err := parseSpan(stripSpaces(text)); err != nil {
		return expression{}, err
	}
	return expression{}, fmt.Errorf("%w: bare time span %q needs a sign, a sign keyword, or a time literal", ErrGrammar, text)
}

// parseEpochExpression handles expressions after a leading "@". Bare digits
// are seconds since the epoch, anything else is a span added to the epoch,
// and "@" alone is the epoch itself.
func parseEpochExpression(rest string) (expression, error) {
	rest = strings.TrimSpace(rest)
	lit := timeLiteral{kind: literalEpoch}
	if rest == "" {
		return expression{lit: lit}, nil
	}
	if isDigits(rest) {
		sec, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return expression{}, fmt.Errorf("%w: malformed number %q", ErrLex, rest)
		}
		usec, ok := mulInt64(sec, usecPerSecond)
		if !ok {
			return expression{}, fmt.Errorf("%w: epoch offset %q overflows", ErrRange, rest)
		}
		nsec, ok := mulInt64(usec, 1_000)
		if !ok {
			return expression{}, fmt.Errorf("%w: epoch offset %q overflows", ErrRange, rest)
		}
		return expression{lit: lit, span: time.Duration(nsec)}, nil
	}
	span, err := parseSpan(stripSpaces(rest))
	if err != nil {
		return expression{}, err
	}
	return expression{lit: lit, span: span}, nil
}

// trimSignKeyword strips a trailing "ago" or "left" keyword. The keyword
// must stand alone as the last field, "1sago" is not a keyword use.
func trimSignKeyword(text string) (rest string, sign int64, found bool) {
	if head, ok := strings.CutSuffix(text, " ago"); ok {
		return head, -1, true
	}
	if head, ok := strings.CutSuffix(text, " left"); ok {
		return head, 1, true
	}
	return text, 0, false
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
