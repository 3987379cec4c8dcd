package utils

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
}

var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04PM",
	"3:04 PM",
	"3PM",
	"3 PM",
}

// ParseDate reads a form date and returns local midnight of that date in loc.
// Timestamps are accepted and reduced to their calendar date.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			lastErr = err
			continue
		}
		y, m, d := t.In(loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q: %w", s, lastErr)
}

// ParseClock reads a form time of day in 24-hour or 12-hour notation and
// returns the offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	var lastErr error
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			lastErr = err
			continue
		}
		return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
	}
	return 0, fmt.Errorf("cannot parse time %q: %w", s, lastErr)
}
