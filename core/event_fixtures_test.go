package core

import (
	"sync"
	"time"
)

var testLoc = time.FixedZone("PDT", -7*3600)

// monday is 2024-06-10 09:00 PDT.
func monday() time.Time {
	return time.Date(2024, 6, 10, 9, 0, 0, 0, testLoc)
}

func mkAllDay(id, title, date string) CalendarEvent {
	return CalendarEvent{ID: id, Summary: title, Start: &Boundary{Date: date}}
}

func mkTimed(id, title, start, end string) CalendarEvent {
	ev := CalendarEvent{ID: id, Summary: title, Start: &Boundary{DateTime: start}}
	if end != "" {
		ev.End = &Boundary{DateTime: end}
	}
	return ev
}

func ids(events []CalendarEvent) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.ID)
	}
	return out
}

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock(t time.Time) *testClock { return &testClock{t: t} }

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}
