package format

import (
	"fmt"
	"time"
)

// FormatRelative formats the offset between a resolved time and the
// reference as a human-readable string. Uses compact magnitudes: "now",
// "5m ago", "in 2h", "in 3d", "2w ago", "in 3mo", "2y ago".
func FormatRelative(d time.Duration) string {
	if d == 0 {
		return "now"
	}
	mag := d
	if mag < 0 {
		mag = -mag
	}
	s := magnitude(mag)
	if d < 0 {
		return s + " ago"
	}
	return "in " + s
}

func magnitude(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	days := int(d.Hours() / 24)
	if days < 7 {
		return fmt.Sprintf("%dd", days)
	}
	if days < 30 {
		return fmt.Sprintf("%dw", days/7)
	}
	if days < 365 {
		return fmt.Sprintf("%dmo", days/30)
	}
	return fmt.Sprintf("%dy", days/365)
}
