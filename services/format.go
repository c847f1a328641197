package services

import (
	"fmt"
	"time"
)

// FormatDuration converts an ISO 8601 duration token (PT7H15M) to a display
// string (7h 15m). Tokens that don't match the fixed pattern come back
// unchanged.
func FormatDuration(duration string) string {
	m := durationPattern.FindStringSubmatch(duration)
	if m == nil {
		return duration
	}
	return fmt.Sprintf("%sh %sm", m[1], m[2])
}

// FormatTime renders an RFC 3339 timestamp as a local hour:minute string.
func FormatTime(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Local().Format("3:04 PM")
}

// FormatDate renders an RFC 3339 timestamp as a short month/day/year string.
func FormatDate(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Local().Format("Jan 2, 2006")
}
