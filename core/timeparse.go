package core

import (
	"time"
)

const dateLayout = "2006-01-02"

var acceptedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

// ParseTimeAny parses an RFC3339 timestamp, with or without fractional seconds.
func ParseTimeAny(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// civilDate strips the time of day, keeping the calendar date as seen in t's zone.
// The result is in UTC so day arithmetic is not affected by DST.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(civilDate(to).Sub(civilDate(from)).Hours() / 24)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
