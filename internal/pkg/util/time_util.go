package util

import (
	"fmt"
	"time"
)

// RelativeTime renders t relative to now in whole hours or days.
// Future timestamps fall into the first bucket.
func RelativeTime(t, now time.Time) string {
	hours := int(now.Sub(t) / time.Hour)

	switch {
	case hours < 1:
		return "a few minutes ago"
	case hours == 1:
		return "1 hour ago"
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := hours / 24
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

// GetMidnight truncates t to 00:00 in its own location.
func GetMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
