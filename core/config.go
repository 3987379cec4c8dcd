package core

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Config is read from the environment (a .env file is loaded into it by the
// commands before this runs).
type Config struct {
	ClientID         string
	ClientSecret     string
	ListenAddr       string
	CalendarEndpoint string
	RevokeURL        string
	Timezone         string
}

// LoadConfig reads the configuration through getenv; nil means os.Getenv.
func LoadConfig(getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := Config{
		ClientID:         getenv("GOOGLE_CLIENT_ID"),
		ClientSecret:     getenv("GOOGLE_CLIENT_SECRET"),
		ListenAddr:       getenv("AGENDA_LISTEN_ADDR"),
		CalendarEndpoint: getenv("AGENDA_CALENDAR_ENDPOINT"),
		RevokeURL:        getenv("AGENDA_REVOKE_URL"),
		Timezone:         getenv("AGENDA_TIMEZONE"),
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.RevokeURL == "" {
		cfg.RevokeURL = defaultRevokeURL
	}
	return cfg
}

// Location resolves Timezone, falling back to the process zone when unset.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown tz %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Authenticator builds the consent flow from the configured OAuth client.
func (c Config) Authenticator(opts ...func(*Authenticator)) *Authenticator {
	base := []func(*Authenticator){
		WithListenAddr(c.ListenAddr),
		WithRevoker(NewRevokeClient(WithRevokeURL(c.RevokeURL))),
	}
	return NewAuthenticator(NewOAuthConfig(c.ClientID, c.ClientSecret), append(base, opts...)...)
}

// CalendarFactory returns a constructor for calendar clients bound to loc.
func (c Config) CalendarFactory(loc *time.Location, now func() time.Time) CalendarFactory {
	return func(ctx context.Context, token string) (Calendar, error) {
		opts := []func(*CalendarClient){WithLocation(loc), WithClock(now)}
		if c.CalendarEndpoint != "" {
			opts = append(opts, WithCalendarEndpoint(c.CalendarEndpoint))
		}
		return NewCalendarClient(ctx, token, opts...)
	}
}
