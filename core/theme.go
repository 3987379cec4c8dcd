package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const preferencesFile = "preferences.yml"

// Theme is the colour scheme of the screen.
type Theme string

const (
	ThemeSystem Theme = ""
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
)

// Toggled returns the opposite of an effective theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ResolveTheme returns the saved preference, or the system one when nothing
// is saved.
func ResolveTheme(saved Theme, systemDark func() bool) Theme {
	switch saved {
	case ThemeDark, ThemeLight:
		return saved
	}
	if systemDark != nil && systemDark() {
		return ThemeDark
	}
	return ThemeLight
}

type preferences struct {
	Theme Theme `yaml:"theme,omitempty"`
}

// ThemeStore persists the theme preference across runs.
type ThemeStore struct {
	path string
}

// NewThemeStore stores preferences at path, or under the XDG config home
// when path is empty.
func NewThemeStore(path string) *ThemeStore {
	if path == "" {
		path = filepath.Join(xdg.ConfigHome, "gcal-agenda", preferencesFile)
	}
	return &ThemeStore{path: path}
}

func (s *ThemeStore) Path() string { return s.path }

// Load returns the saved theme, ThemeSystem if none is saved.
func (s *ThemeStore) Load() (Theme, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ThemeSystem, nil
		}
		return ThemeSystem, fmt.Errorf("read preferences: %w", err)
	}

	var p preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return ThemeSystem, fmt.Errorf("decode preferences: %w", err)
	}
	switch p.Theme {
	case ThemeDark, ThemeLight:
		return p.Theme, nil
	}
	return ThemeSystem, nil
}

func (s *ThemeStore) Save(t Theme) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}
	data, err := yaml.Marshal(preferences{Theme: t})
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}
