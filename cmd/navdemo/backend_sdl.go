//go:build !nosdl

package main

import (
	"bytes"
	"context"
	_ "embed"
	"errors"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/sdlsurface"
)

//go:embed home.svg
var homeIcon []byte

const iconSize = 32

func (b *backend) runSDL(ctx context.Context) error {
	p, err := sdlsurface.Init("navdemo", sdlsurface.WindowOptions{
		Width:     b.settings.Width,
		Height:    b.settings.Height,
		Resizable: true,
	})
	if err != nil {
		return err
	}
	defer p.Close()

	if err := p.SetTheme(b.theme); err != nil {
		return err
	}

	icon, err := p.ReadSVG(bytes.NewReader(homeIcon), iconSize)
	if err != nil {
		return err
	}
	defer icon.Destroy()

	m := b.manager(p)
	a, err := newApp(m, p, b.nav, b.tr, rowHeight, time.Now)
	if err != nil {
		return err
	}
	a.decorate = func(page *pagenav.Page) {
		if s, ok := page.Surface().(*sdlsurface.Surface); ok {
			s.SetIcon(icon)
			s.SetForeground(page.Theme().TextPrimaryColor)
			s.SetPadding(page.Theme().HorizontalPad)
		}
	}

	m.Initialize(p.Root(), &b.theme)
	m.NavigateTo("home", constants.DirectionNone, constants.TransitionNone)
	defer m.Shutdown()

	p.OnBack(m.NavigateBack)
	p.OnFrame(b.dispatch)

	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
