package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)

	got, err := ParseDate("2024-06-15", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, loc), got)

	got, err = ParseDate(" 2024-06-15T23:30:00-05:00 ", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, loc), got)

	_, err = ParseDate("15/06/2024", loc)
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	cases := map[string]time.Duration{
		"09:30":    9*time.Hour + 30*time.Minute,
		"14:00":    14 * time.Hour,
		"14:00:59": 14 * time.Hour,
		"2:15pm":   14*time.Hour + 15*time.Minute,
		"2:15 PM":  14*time.Hour + 15*time.Minute,
		"12 am":    0,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("noon")
	assert.Error(t, err)
}
