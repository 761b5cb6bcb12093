// Package timeutil provides time formatting utilities.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration for user-facing messages such as query
// timeouts.
//
// Examples:
//   - 250ms for durations under one second
//   - 5s or 2.5s for durations under one minute
//   - 1m 30s for longer durations (no hour formatting)
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	if d < time.Minute {
		d = d.Round(100 * time.Millisecond)
		if d%time.Second == 0 {
			return fmt.Sprintf("%ds", d/time.Second)
		}
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	d = d.Round(time.Second)
	minutes := d / time.Minute
	seconds := (d % time.Minute) / time.Second
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
