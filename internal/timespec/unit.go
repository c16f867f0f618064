package timespec

// UnitKind identifies one of the time units understood in a time span.
type UnitKind int

const (
	UnitMicrosecond UnitKind = iota
	UnitMillisecond
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

// String returns the canonical spelling of the unit.
func (k UnitKind) String() string {
	switch k {
	case UnitMicrosecond:
		return "us"
	case UnitMillisecond:
		return "ms"
	case UnitSecond:
		return "s"
	case UnitMinute:
		return "m"
	case UnitHour:
		return "h"
	case UnitDay:
		return "d"
	case UnitWeek:
		return "w"
	case UnitMonth:
		return "M"
	case UnitYear:
		return "y"
	}
	return "unknown"
}

// Microsecond multipliers per unit. Month and year are fixed-point
// approximations (30.44 and 365.25 days), not calendar-aware values.
const (
	usecPerMicrosecond int64 = 1
	usecPerMillisecond       = 1_000 * usecPerMicrosecond
	usecPerSecond            = 1_000 * usecPerMillisecond
	usecPerMinute            = 60 * usecPerSecond
	usecPerHour              = 60 * usecPerMinute
	usecPerDay               = 24 * usecPerHour
	usecPerWeek              = 7 * usecPerDay
	usecPerMonth             = 2_629_800 * usecPerSecond
	usecPerYear              = 31_557_600 * usecPerSecond
)

// usecPerUnit returns the microsecond multiplier for a unit kind.
func usecPerUnit(k UnitKind) int64 {
	switch k {
	case UnitMicrosecond:
		return usecPerMicrosecond
	case UnitMillisecond:
		return usecPerMillisecond
	case UnitSecond:
		return usecPerSecond
	case UnitMinute:
		return usecPerMinute
	case UnitHour:
		return usecPerHour
	case UnitDay:
		return usecPerDay
	case UnitWeek:
		return usecPerWeek
	case UnitMonth:
		return usecPerMonth
	case UnitYear:
		return usecPerYear
	}
	return 0
}

// unitSpelling pairs one accepted spelling with its unit kind.
type unitSpelling struct {
	spelling string
	kind     UnitKind
}

// unitTable lists every accepted unit spelling, longest spellings first so
// that alias precedence stays deterministic regardless of overlaps
// ("m"/"min"/"minutes", "s"/"sec"/"seconds", ...). Matching is exact and
// case-sensitive: "M" is a month, "m" is a minute.
var unitTable = []unitSpelling{
	{"seconds", UnitSecond},
	{"minutes", UnitMinute},
	{"second", UnitSecond},
	{"minute", UnitMinute},
	{"months", UnitMonth},
	{"hours", UnitHour},
	{"month", UnitMonth},
	{"weeks", UnitWeek},
	{"years", UnitYear},
	{"usec", UnitMicrosecond},
	{"msec", UnitMillisecond},
	{"hour", UnitHour},
	{"days", UnitDay},
	{"week", UnitWeek},
	{"year", UnitYear},
	{"sec", UnitSecond},
	{"min", UnitMinute},
	{"day", UnitDay},
	{"µs", UnitMicrosecond},
	{"us", UnitMicrosecond},
	{"ms", UnitMillisecond},
	{"hr", UnitHour},
	{"s", UnitSecond},
	{"m", UnitMinute},
	{"h", UnitHour},
	{"d", UnitDay},
	{"w", UnitWeek},
	{"M", UnitMonth},
	{"y", UnitYear},
}

// lookupUnit maps a unit spelling to its kind. It scans the ordered table so
// the longest spelling always wins; there is no prefix or partial matching.
func lookupUnit(token string) (UnitKind, bool) {
	for _, u := range unitTable {
		if u.spelling == token {
			return u.kind, true
		}
	}
	return 0, false
}
