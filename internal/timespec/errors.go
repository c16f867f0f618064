package timespec

import "errors"

// Sentinel errors categorizing every failure mode of Parse and ParseAt.
// Concrete errors wrap one of these, so callers can classify failures with
// errors.Is while the message carries the offending substring.
var (
	// ErrLex reports a malformed number, a number with no following unit,
	// or an unrecognized unit spelling inside a time span.
	ErrLex = errors.New("invalid timestamp token")

	// ErrGrammar reports an expression whose overall shape is not
	// understood: empty input, conflicting signs, unparseable time, or
	// trailing text.
	ErrGrammar = errors.New("invalid timestamp format")

	// ErrRange reports calendar fields outside their valid range or
	// arithmetic overflow while reducing a time span.
	ErrRange = errors.New("timestamp out of range")

	// ErrDelegated reports a failure from the calendar backend, such as an
	// unknown time zone name.
	ErrDelegated = errors.New("timestamp resolution failed")
)
