package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/headless"
	"github.com/stretchr/testify/require"
)

const sampleNav = `
version = 1

[engine]
transition_duration = "120ms"
default_transition = "fade"
max_cached_pages = 2
gestures = false

[theme]
base = "cannoli"
accent_color = "#FF0000"
status_bar_height = 30

[page.home.left]
target = "settings"
direction = "left"

[page.home.up]
target = "list"
direction = "up"
transition = "slide-over"

[page.list.down]
target = "home"
`

func TestDecodeAndApply(t *testing.T) {
	f, err := Decode(sampleNav)
	require.NoError(t, err)
	require.Equal(t, []string{"home", "list"}, f.PageIDs())

	p := headless.New(320, 240)
	m := pagenav.NewManager(p)
	require.NoError(t, f.Apply(m))

	require.Equal(t, 120*time.Millisecond, m.TransitionDuration())
	require.Equal(t, constants.TransitionFade, m.TransitionType())
	require.Equal(t, 2, m.MaxCachedPages())
	require.False(t, m.GestureEnabled())

	nav, ok := m.Registry().Navigation("home")
	require.True(t, ok)
	require.Equal(t, pagenav.Edge{Target: "settings", Direction: constants.DirectionLeft, Transition: constants.TransitionSlide}, nav.Left)
	require.Equal(t, constants.TransitionSlideOver, nav.Up.Transition)
	require.Empty(t, nav.Right.Target)

	back, ok := m.Registry().Navigation("list")
	require.True(t, ok)
	require.Equal(t, pagenav.To("home"), back.Down)
}

func TestThemeBuild(t *testing.T) {
	f, err := Decode(sampleNav)
	require.NoError(t, err)

	theme, err := f.Theme.Build()
	require.NoError(t, err)
	require.Equal(t, "cannoli", theme.Name)
	require.Equal(t, pagenav.HexToColor(0xFF0000), theme.AccentColor)
	require.Equal(t, int32(30), theme.StatusBarHeight)

	def, err := ThemeFile{}.Build()
	require.NoError(t, err)
	require.Equal(t, pagenav.DefaultTheme(), def)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad version", "version = 2", "unsupported"},
		{"unknown key", "[engine]\nspeed = 3", "engine.speed"},
		{"bad transition", "[engine]\ndefault_transition = \"wipe\"", "wipe"},
		{"bad duration", "[engine]\ntransition_duration = \"fast\"", "fast"},
		{"missing target", "[page.home.left]\ndirection = \"left\"", "missing target"},
		{"bad direction", "[page.home.left]\ntarget = \"a\"\ndirection = \"sideways\"", "sideways"},
		{"bad base", "[theme]\nbase = \"neon\"", "neon"},
		{"bad color", "[theme]\naccent_color = \"#12\"", "invalid color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Decode("version = 7")
	require.ErrorIs(t, err, ErrUnsupportedVersion)
	_, err = Decode("colour = 1")
	require.ErrorIs(t, err, ErrUnknownKeys)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleNav), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, CurrentVersion, f.Version)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestParseColor(t *testing.T) {
	for _, in := range []string{"#2196F3", "2196f3", "0x2196F3"} {
		c, err := ParseColor(in)
		require.NoError(t, err, in)
		require.Equal(t, pagenav.HexToColor(0x2196F3), c)
	}
	_, err := ParseColor("#GGGGGG")
	require.Error(t, err)
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, "term", s.Backend)
	require.Equal(t, "info", s.LogLevel)
	require.Equal(t, int32(640), s.Width)
}

func TestLoadSettingsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend = "sdl"
locale = "de"
width = 1024
height = 768
`), 0o644))

	t.Setenv("PAGENAV_LOG_LEVEL", "debug")
	t.Setenv("PAGENAV_HEIGHT", "600")
	t.Setenv(constants.ConfigPathEnvVar, path)

	s, err := LoadSettings()
	require.NoError(t, err)
	require.Equal(t, "sdl", s.Backend)
	require.Equal(t, "de", s.Locale)
	require.Equal(t, "debug", s.LogLevel)
	require.Equal(t, int32(1024), s.Width)
	require.Equal(t, int32(600), s.Height)
}

func TestLoadSettingsRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = "), 0o644))

	_, err := LoadSettingsFrom(path)
	require.Error(t, err)
}
