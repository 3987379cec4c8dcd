package core

import (
	"strings"
	"time"
)

// EventForm is the state of the create-event dialog.
type EventForm struct {
	Open   bool
	Title  string
	Date   string
	Time   string
	Saving bool
}

// Show opens the dialog with the date preset to today and the rest cleared.
func (f *EventForm) Show(now time.Time) {
	f.Open = true
	f.Title = ""
	f.Date = formatDate(now)
	f.Time = ""
	f.Saving = false
}

// Close hides the dialog and clears its fields.
func (f *EventForm) Close() {
	*f = EventForm{}
}

// Validate checks the required fields. Title is trimmed first.
func (f EventForm) Validate() error {
	return ValidateEventInput(f.Title, f.Date)
}

// ValidateEventInput rejects a blank title or date. It runs before any
// request is made.
func ValidateEventInput(title, date string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(date) == "" {
		return &ValidationError{Message: "Title and date are required"}
	}
	return nil
}

// SaveLabel is the caption of the save button.
func (f EventForm) SaveLabel() string {
	if f.Saving {
		return "Saving..."
	}
	return "Save"
}
