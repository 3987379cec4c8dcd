package core

import (
	"strings"
	"time"
)

// Agenda is the grouped, display-ready form of a list of events.
type Agenda struct {
	Groups []GroupView `json:"groups"`
	Empty  bool        `json:"empty"`
}

type GroupView struct {
	Title string      `json:"title"`
	Class string      `json:"class"`
	Count int         `json:"count"`
	Cards []EventCard `json:"cards"`
}

type EventCard struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      EventType `json:"type,omitempty"`
	Classes   string    `json:"classes"`
	DateLabel string    `json:"date"`
	TimeLabel string    `json:"time"`
}

// BuildAgenda groups events relative to now and formats every card. Empty
// buckets are left out.
func BuildAgenda(now time.Time, events []CalendarEvent) Agenda {
	if len(events) == 0 {
		return Agenda{Empty: true}
	}

	groups := GroupEvents(now, events)
	var agenda Agenda
	for _, b := range groups.Buckets() {
		evs := groups.Events(b)
		gv := GroupView{
			Title: b.Title(),
			Class: b.Class(),
			Count: len(evs),
			Cards: make([]EventCard, 0, len(evs)),
		}
		for _, ev := range evs {
			gv.Cards = append(gv.Cards, newEventCard(now, b, ev))
		}
		agenda.Groups = append(agenda.Groups, gv)
	}
	return agenda
}

func newEventCard(now time.Time, b Bucket, ev CalendarEvent) EventCard {
	typ := DetectEventType(ev.Summary)
	classes := []string{"event-card", b.Class()}
	if c := typ.Class(); c != "" {
		classes = append(classes, c)
	}
	return EventCard{
		ID:        ev.ID,
		Title:     ev.Title(),
		Type:      typ,
		Classes:   strings.Join(classes, " "),
		DateLabel: FormatEventDate(now, ev.Start),
		TimeLabel: FormatEventTime(ev.Start, ev.End, now.Location()),
	}
}

// ViewState is everything the screen shows. Render projects it to text.
type ViewState struct {
	SignedIn bool
	Loading  bool
	Header   string
	Error    string
	Toast    string
	Theme    Theme
	Agenda   Agenda
	Form     EventForm
}
