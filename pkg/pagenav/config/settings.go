package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/spf13/viper"
)

// Settings holds process-level options for a pagenav application.
type Settings struct {
	LogPath     string `mapstructure:"log_path"`
	LogLevel    string `mapstructure:"log_level"`
	Backend     string `mapstructure:"backend"`      // "term", "sdl" or "headless"
	NavFile     string `mapstructure:"nav_file"`     // Navigation file; empty uses the built-in graph
	Locale      string `mapstructure:"locale"`       // BCP 47 tag for page titles
	Theme       string `mapstructure:"theme"`        // Overrides the navigation file's base theme
	InputDevice string `mapstructure:"input_device"` // evdev node, e.g. /dev/input/event0
	Width       int32  `mapstructure:"width"`
	Height      int32  `mapstructure:"height"`
}

// LoadSettings reads settings from the file named by PAGENAV_CONFIG, or
// ~/.config/pagenav/settings.toml, then applies PAGENAV_* environment overrides.
// A missing file is not an error.
func LoadSettings() (Settings, error) {
	path := os.Getenv(constants.ConfigPathEnvVar)
	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".config", "pagenav", "settings.toml")
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom is LoadSettings with an explicit file path.
func LoadSettingsFrom(path string) (Settings, error) {
	v := viper.New()

	v.SetDefault("log_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("backend", "term")
	v.SetDefault("nav_file", "")
	v.SetDefault("locale", "en")
	v.SetDefault("theme", "")
	v.SetDefault("input_device", "")
	v.SetDefault("width", 640)
	v.SetDefault("height", 480)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return Settings{}, fmt.Errorf("invalid screen size %dx%d", s.Width, s.Height)
	}
	return s, nil
}
