package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/config"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/headless"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/input"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/termsurface"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/toolkit"
)

const (
	termCols = 48
	termRows = 10

	// rowHeight is the height of clickable rows on pixel backends.
	rowHeight = 40
)

type backend struct {
	settings config.Settings
	nav      *config.File
	theme    pagenav.Theme
	tr       *translator
	gestures []toolkit.GestureSource
	input    *input.Source
}

// manager creates a manager for p listening to p and any extra gesture sources.
func (b *backend) manager(p interface {
	toolkit.Provider
	toolkit.GestureSource
}) *pagenav.Manager {
	return pagenav.NewManager(p, append([]toolkit.GestureSource{p}, b.gestures...)...)
}

func (b *backend) dispatch() {
	if b.input != nil {
		b.input.Dispatch()
	}
}

func (b *backend) runTerm() error {
	p := termsurface.New(termCols, termRows)
	m := b.manager(p)
	if _, err := newApp(m, p, b.nav, b.tr, 1, time.Now); err != nil {
		return err
	}

	// The status line replaces the status bar on a terminal.
	theme := b.theme
	theme.StatusBarHeight = 0
	m.Initialize(p.Root(), &theme)
	m.NavigateTo("home", constants.DirectionNone, constants.TransitionNone)

	model := termsurface.NewModel(p, theme.AccentColor)
	model.OnBack(m.NavigateBack)
	model.OnFrame(b.dispatch)
	model.SetStatus(func() string { return status(m) })

	_, err := model.Program().Run()
	m.Shutdown()
	return err
}

// runHeadless walks the navigation graph without a display and writes each
// step to w.
func (b *backend) runHeadless(w io.Writer) error {
	p := headless.New(b.settings.Width, b.settings.Height)
	m := b.manager(p)
	a, err := newApp(m, p, b.nav, b.tr, rowHeight, time.Now)
	if err != nil {
		return err
	}
	m.Initialize(p.Root(), &b.theme)
	defer m.Shutdown()

	steps := []struct {
		name string
		do   func()
	}{
		{"start", func() { m.NavigateTo("home", constants.DirectionNone, constants.TransitionNone) }},
		{"swipe left", func() { p.Swipe(constants.DirectionLeft) }},
		{"swipe right", func() { p.Swipe(constants.DirectionRight) }},
		{"swipe up", func() { p.Swipe(constants.DirectionUp) }},
		{"open item 2", func() { a.openDetail(2) }},
		{"back", m.NavigateBack},
		{"back", m.NavigateBack},
		{"fade to settings", func() { m.NavigateToWithFade("settings") }},
	}
	for _, step := range steps {
		b.dispatch()
		step.do()
		p.Settle()
		fmt.Fprintf(w, "%-16s %s\n", step.name, status(m))
	}
	return nil
}

func status(m *pagenav.Manager) string {
	cur := m.CurrentPage()
	if cur == nil {
		return "-"
	}
	return cur.ID() + " (history " + strconv.Itoa(len(m.History())) + ")"
}
