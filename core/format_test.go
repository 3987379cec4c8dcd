package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEventDate(t *testing.T) {
	now := monday()
	cases := []struct {
		name  string
		start *Boundary
		want  string
	}{
		{"today", &Boundary{Date: "2024-06-10"}, "Today"},
		{"today timed", &Boundary{DateTime: "2024-06-10T18:00:00-07:00"}, "Today"},
		{"tomorrow", &Boundary{Date: "2024-06-11"}, "Tomorrow"},
		{"this week", &Boundary{Date: "2024-06-13"}, "Thursday"},
		{"seven days out", &Boundary{Date: "2024-06-17"}, "Monday"},
		{"eight days out", &Boundary{Date: "2024-06-18"}, "Tuesday, June 18"},
		{"same year", &Boundary{Date: "2024-07-01"}, "Monday, July 1"},
		{"next year", &Boundary{Date: "2025-01-03"}, "Friday, January 3, 2025"},
		{"past", &Boundary{Date: "2024-06-09"}, "Sunday, June 9"},
		{"missing", nil, DateTBD},
		{"empty", &Boundary{}, DateTBD},
		{"malformed", &Boundary{DateTime: "soon"}, DateTBD},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatEventDate(now, tc.start))
		})
	}
}

func TestFormatEventTime(t *testing.T) {
	cases := []struct {
		name       string
		start, end *Boundary
		want       string
	}{
		{"all day", &Boundary{Date: "2024-06-15"}, nil, AllDayLabel},
		{"all day with end", &Boundary{Date: "2024-06-15"}, &Boundary{Date: "2024-06-16"}, AllDayLabel},
		{"start only", &Boundary{DateTime: "2024-06-10T15:00:00-07:00"}, nil, "3:00 PM"},
		{"range", &Boundary{DateTime: "2024-06-10T09:00:00-07:00"}, &Boundary{DateTime: "2024-06-10T10:30:00-07:00"}, "9:00 AM - 10:30 AM"},
		{"utc converted", &Boundary{DateTime: "2024-06-10T16:00:00Z"}, nil, "9:00 AM"},
		{"end without time", &Boundary{DateTime: "2024-06-10T12:05:00-07:00"}, &Boundary{Date: "2024-06-11"}, "12:05 PM"},
		{"missing", nil, nil, TimeTBD},
		{"empty", &Boundary{}, nil, TimeTBD},
		{"malformed", &Boundary{DateTime: "later"}, nil, TimeTBD},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatEventTime(tc.start, tc.end, testLoc))
		})
	}
}

func TestFormatting_Idempotent(t *testing.T) {
	now := monday()
	start := &Boundary{DateTime: "2024-06-13T08:45:00-07:00"}
	end := &Boundary{DateTime: "2024-06-13T09:45:00-07:00"}

	assert.Equal(t, FormatEventDate(now, start), FormatEventDate(now, start))
	assert.Equal(t, FormatEventTime(start, end, testLoc), FormatEventTime(start, end, testLoc))
}

func TestFormatCurrentDate(t *testing.T) {
	assert.Equal(t, "Monday, June 10, 2024", FormatCurrentDate(monday()))
}
