package core

import (
	"time"

	"google.golang.org/api/calendar/v3"
)

const noTitle = "(No Title)"

// CalendarEvent is the part of a provider event the agenda displays.
type CalendarEvent struct {
	ID      string
	Summary string
	Start   *Boundary
	End     *Boundary
}

// Boundary is an event start or end. All-day events carry Date (YYYY-MM-DD),
// timed events carry DateTime (RFC3339 with offset).
type Boundary struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
}

// Title returns the summary, or a placeholder for untitled events.
func (e CalendarEvent) Title() string {
	if e.Summary == "" {
		return noTitle
	}
	return e.Summary
}

// AllDay reports whether the boundary is a date without a time of day.
func (b *Boundary) AllDay() bool {
	return b != nil && b.Date != "" && b.DateTime == ""
}

// Resolve returns the boundary as an instant in loc. A date-only boundary
// resolves to local midnight of that date. ok is false for a missing or
// unparsable boundary.
func (b *Boundary) Resolve(loc *time.Location) (t time.Time, ok bool) {
	if b == nil {
		return time.Time{}, false
	}
	if b.DateTime != "" {
		t, err := ParseTimeAny(b.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return t.In(loc), true
	}
	if b.Date != "" {
		t, err := time.ParseInLocation(dateLayout, b.Date, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

func fromAPIEvent(ev *calendar.Event) CalendarEvent {
	return CalendarEvent{
		ID:      ev.Id,
		Summary: ev.Summary,
		Start:   fromAPIBoundary(ev.Start),
		End:     fromAPIBoundary(ev.End),
	}
}

func fromAPIBoundary(dt *calendar.EventDateTime) *Boundary {
	if dt == nil {
		return nil
	}
	return &Boundary{Date: dt.Date, DateTime: dt.DateTime}
}
