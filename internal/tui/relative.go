// pattern: Functional Core

package tui

import (
	"fmt"
	"time"
)

// formatRelative renders a timestamp as a compact age ("5m ago").
// A zero or future timestamp renders as a dash.
func formatRelative(t, now time.Time) string {
	if t.IsZero() || t.After(now) {
		return "—"
	}

	secs := int64(now.Sub(t).Seconds())
	switch {
	case secs < 60:
		return "just now"
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	case secs < 2592000:
		return fmt.Sprintf("%dd ago", secs/86400)
	case secs < 31536000:
		return fmt.Sprintf("%dmo ago", secs/2592000)
	default:
		return fmt.Sprintf("%dy ago", secs/31536000)
	}
}
