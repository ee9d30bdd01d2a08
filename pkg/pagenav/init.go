// Package pagenav provides page navigation for embedded GUIs: a registry of
// pages, a directional navigation graph, animated transitions (slide,
// slide-over, fade, none), bounded back-navigation history and a lazily
// populated cache of inactive pages.
//
// Drawing is delegated to a toolkit.Provider; see the headless, termsurface
// and sdlsurface packages for implementations.
package pagenav

import (
	"io"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/internal"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/toolkit"
)

// Options configures a Manager created through Init.
type Options struct {
	Provider           toolkit.Provider        // Backend drawing the pages (required)
	Root               toolkit.Surface         // Surface the page container is created under
	Gestures           []toolkit.GestureSource // Extra gesture sources; defaults to the provider
	Theme              *Theme                  // Nil selects DefaultTheme
	TransitionDuration time.Duration           // Zero keeps the default (300ms)
	TransitionType     *constants.TransitionType
	MaxCachedPages     *int // Nil keeps the default (unbounded)
	DisableGestures    bool
	LogPath            string // Full path for log file including filename (creates parent directories)
	LogLevel           string // "debug", "info", "warn" or "error"
}

// Init configures logging, then creates and initializes a Manager.
func Init(options Options) *Manager {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else if options.LogLevel != "" {
		internal.SetInternalLogLevel(internal.ParseLevel(options.LogLevel))
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	m := NewManager(options.Provider, options.Gestures...)
	if options.TransitionDuration > 0 {
		m.SetTransitionDuration(options.TransitionDuration)
	}
	if options.TransitionType != nil {
		m.SetTransitionType(*options.TransitionType)
	}
	if options.MaxCachedPages != nil {
		m.SetMaxCachedPages(*options.MaxCachedPages)
	}
	m.EnableGesture(!options.DisableGestures)

	m.Initialize(options.Root, options.Theme)
	return m
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogConsole replaces stdout as the console log destination, for example
// with io.Discard when the terminal is used for drawing.
// Call before Init() to take effect during initialization.
func SetLogConsole(w io.Writer) {
	internal.SetConsole(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}
