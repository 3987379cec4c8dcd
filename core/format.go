package core

import (
	"time"
)

const (
	DateTBD     = "Date TBD"
	TimeTBD     = "Time TBD"
	AllDayLabel = "All Day"

	clockLayout = "3:04 PM"
)

// FormatEventDate renders a start boundary relative to now: "Today",
// "Tomorrow", a weekday name for the rest of the coming week, otherwise
// "Weekday, Month Day" with the year appended when it differs from now's.
func FormatEventDate(now time.Time, start *Boundary) string {
	t, ok := start.Resolve(now.Location())
	if !ok {
		return DateTBD
	}

	days := daysBetween(now, t)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days > 1 && days <= 7:
		return t.Weekday().String()
	}

	if t.Year() != now.Year() {
		return t.Format("Monday, January 2, 2006")
	}
	return t.Format("Monday, January 2")
}

// FormatEventTime renders the time of day of an event in loc: "All Day" for
// date-only starts, "9:00 AM" for a timed start, or "9:00 AM - 10:00 AM" when
// the end carries a time as well.
func FormatEventTime(start, end *Boundary, loc *time.Location) string {
	if start.AllDay() {
		return AllDayLabel
	}
	if start == nil || start.DateTime == "" {
		return TimeTBD
	}
	s, ok := start.Resolve(loc)
	if !ok {
		return TimeTBD
	}

	label := s.Format(clockLayout)
	if end != nil && end.DateTime != "" {
		if e, ok := end.Resolve(loc); ok {
			label += " - " + e.Format(clockLayout)
		}
	}
	return label
}

// FormatCurrentDate renders the header date, e.g. "Monday, June 10, 2024".
func FormatCurrentDate(now time.Time) string {
	return now.Format("Monday, January 2, 2006")
}
