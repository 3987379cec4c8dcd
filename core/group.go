package core

import "time"

// Bucket is one of the display groups upcoming events are split into.
type Bucket int

const (
	BucketToday Bucket = iota
	BucketThisWeek
	BucketUpcoming
)

// Title is the heading shown above the bucket.
func (b Bucket) Title() string {
	switch b {
	case BucketToday:
		return "Today"
	case BucketThisWeek:
		return "This Week"
	default:
		return "Upcoming"
	}
}

// Class is the style class shared by the bucket and its cards.
func (b Bucket) Class() string {
	switch b {
	case BucketToday:
		return "today"
	case BucketThisWeek:
		return "this-week"
	default:
		return "upcoming"
	}
}

// EventGroups holds events partitioned by bucket. Each slice keeps the
// order the events were given in.
type EventGroups struct {
	Today    []CalendarEvent
	ThisWeek []CalendarEvent
	Upcoming []CalendarEvent
}

// GroupEvents partitions events relative to now. Dates are compared in now's
// location.
func GroupEvents(now time.Time, events []CalendarEvent) EventGroups {
	var g EventGroups
	for _, ev := range events {
		switch BucketFor(now, ev) {
		case BucketToday:
			g.Today = append(g.Today, ev)
		case BucketThisWeek:
			g.ThisWeek = append(g.ThisWeek, ev)
		default:
			g.Upcoming = append(g.Upcoming, ev)
		}
	}
	return g
}

// BucketFor classifies a single event. Events dated today are Today; anything
// else up to and including the coming Sunday is ThisWeek (this also catches
// events that started before today and are still running). A missing or
// malformed start falls through to Upcoming.
func BucketFor(now time.Time, ev CalendarEvent) Bucket {
	start, ok := ev.Start.Resolve(now.Location())
	if !ok {
		return BucketUpcoming
	}
	days := daysBetween(now, start)
	switch {
	case days == 0:
		return BucketToday
	case days <= daysToEndOfWeek(now):
		return BucketThisWeek
	default:
		return BucketUpcoming
	}
}

// daysToEndOfWeek counts days from now to the coming Sunday; zero on Sunday.
func daysToEndOfWeek(now time.Time) int {
	return (7 - int(now.Weekday())) % 7
}

// Buckets returns the non-empty groups in display order.
func (g EventGroups) Buckets() []Bucket {
	var out []Bucket
	if len(g.Today) > 0 {
		out = append(out, BucketToday)
	}
	if len(g.ThisWeek) > 0 {
		out = append(out, BucketThisWeek)
	}
	if len(g.Upcoming) > 0 {
		out = append(out, BucketUpcoming)
	}
	return out
}

// Events returns the events held in bucket b.
func (g EventGroups) Events(b Bucket) []CalendarEvent {
	switch b {
	case BucketToday:
		return g.Today
	case BucketThisWeek:
		return g.ThisWeek
	default:
		return g.Upcoming
	}
}
