package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeStore_RoundTrip(t *testing.T) {
	store := NewThemeStore(filepath.Join(t.TempDir(), "nested", "preferences.yml"))

	theme, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeSystem, theme)

	require.NoError(t, store.Save(ThemeDark))
	theme, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestThemeStore_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yml")

	require.NoError(t, os.WriteFile(path, []byte("theme: [oops"), 0600))
	_, err := NewThemeStore(path).Load()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("theme: sepia\n"), 0600))
	theme, err := NewThemeStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeSystem, theme)
}

func TestThemeStore_DefaultPath(t *testing.T) {
	path := NewThemeStore("").Path()

	assert.True(t, strings.HasPrefix(path, xdg.ConfigHome))
	assert.Equal(t, "preferences.yml", filepath.Base(path))
}

func TestResolveTheme(t *testing.T) {
	dark := func() bool { return true }
	light := func() bool { return false }

	assert.Equal(t, ThemeLight, ResolveTheme(ThemeLight, dark))
	assert.Equal(t, ThemeDark, ResolveTheme(ThemeDark, light))
	assert.Equal(t, ThemeDark, ResolveTheme(ThemeSystem, dark))
	assert.Equal(t, ThemeLight, ResolveTheme(ThemeSystem, light))
	assert.Equal(t, ThemeLight, ResolveTheme(ThemeSystem, nil))
	assert.Equal(t, ThemeLight, ThemeDark.Toggled())
	assert.Equal(t, ThemeDark, ThemeLight.Toggled())
}
