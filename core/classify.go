package core

import "strings"

// EventType is the display category inferred from an event title.
type EventType string

const (
	EventTypeNone     EventType = ""
	EventTypeBirthday EventType = "birthday"
	EventTypeMeeting  EventType = "meeting"
	EventTypeReminder EventType = "reminder"
)

// Checked in order; the first list with a match wins.
var eventTypeKeywords = []struct {
	typ      EventType
	keywords []string
}{
	{EventTypeBirthday, []string{"birthday", "bday", "birth", "turns", "years old"}},
	{EventTypeMeeting, []string{"meeting", "call", "conference", "standup", "sync", "discussion", "review"}},
	{EventTypeReminder, []string{"reminder", "remind", "todo", "task", "check", "follow up", "follow-up"}},
}

// DetectEventType classifies a title by case-insensitive keyword containment.
func DetectEventType(title string) EventType {
	lower := strings.ToLower(title)
	for _, set := range eventTypeKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.typ
			}
		}
	}
	return EventTypeNone
}

// Class returns the card style class for the type, empty for EventTypeNone.
func (t EventType) Class() string {
	if t == EventTypeNone {
		return ""
	}
	return "event-" + string(t)
}
