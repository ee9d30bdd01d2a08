// Command navdemo shows pagenav on a terminal, an SDL window or headless:
// a home page with a clock, a settings page, a list and a detail page.
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/config"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/input"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/toolkit"
	"github.com/joho/godotenv"
)

//go:embed nav.toml
var defaultNav string

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "navdemo: .env:", err)
	}

	if err := run(); err != nil {
		pagenav.GetLogger().Error("navdemo failed", "error", err)
		fmt.Fprintln(os.Stderr, "navdemo:", err)
		pagenav.Close()
		os.Exit(1)
	}
	pagenav.Close()
}

func run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if settings.LogPath != "" {
		pagenav.SetLogPath(settings.LogPath)
	}
	if settings.Backend == "term" {
		// The terminal belongs to the page renderer.
		pagenav.SetLogConsole(io.Discard)
	}
	pagenav.SetRawLogLevel(settings.LogLevel)
	logger := pagenav.GetLogger()

	nav, err := loadNav(settings.NavFile)
	if err != nil {
		return err
	}
	if settings.Theme != "" {
		nav.Theme.Base = settings.Theme
	}
	theme, err := nav.Theme.Build()
	if err != nil {
		return err
	}

	tr, err := newTranslator(settings.Locale)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var gestures []toolkit.GestureSource
	var src *input.Source
	if settings.InputDevice != "" {
		src, err = input.Open(settings.InputDevice, 0)
		if err != nil {
			return err
		}
		defer src.Close()
		if err := src.Start(ctx); err != nil {
			return err
		}
		gestures = append(gestures, src)
		logger.Info("Reading gestures from input device", "device", settings.InputDevice)
	}

	logger.Info("Starting navdemo", "backend", settings.Backend, "locale", settings.Locale, "theme", theme.Name)

	b := backend{
		settings: settings,
		nav:      nav,
		theme:    theme,
		tr:       tr,
		gestures: gestures,
		input:    src,
	}
	switch settings.Backend {
	case "term":
		return b.runTerm()
	case "sdl":
		return b.runSDL(ctx)
	case "headless":
		return b.runHeadless(os.Stdout)
	default:
		return fmt.Errorf("unknown backend %q", settings.Backend)
	}
}

func loadNav(path string) (*config.File, error) {
	if path == "" {
		return config.Decode(defaultNav)
	}
	return config.Load(path)
}

// newApp registers the demo pages on m and wires their edges from nav.
func newApp(m *pagenav.Manager, p toolkit.Provider, nav *config.File, tr *translator, rowHeight int32, now func() time.Time) (*app, error) {
	a := &app{
		provider:  p,
		manager:   m,
		tr:        tr,
		rowHeight: rowHeight,
		started:   now(),
		now:       now,
	}
	m.Register(a.pages()...)
	if err := nav.Apply(m); err != nil {
		return nil, err
	}
	return a, nil
}
