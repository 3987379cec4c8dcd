package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	env := map[string]string{
		"GOOGLE_CLIENT_ID":     "client-1",
		"GOOGLE_CLIENT_SECRET": "secret-1",
		"AGENDA_TIMEZONE":      "UTC",
	}
	cfg := LoadConfig(func(k string) string { return env[k] })

	assert.Equal(t, "client-1", cfg.ClientID)
	assert.Equal(t, "secret-1", cfg.ClientSecret)
	assert.Equal(t, defaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, defaultRevokeURL, cfg.RevokeURL)
	assert.Empty(t, cfg.CalendarEndpoint)
	assert.True(t, cfg.Authenticator().Ready())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestConfig_Location(t *testing.T) {
	loc, err := Config{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	_, err = Config{Timezone: "Not/A_Timezone"}.Location()
	assert.Error(t, err)

	assert.False(t, Config{}.Authenticator().Ready())
}
