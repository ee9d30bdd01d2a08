package main

import (
	"strconv"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/toolkit"
)

const listItems = 5

type sizer interface {
	SetSize(w, h int32)
}

// app holds what the demo pages share.
type app struct {
	provider  toolkit.Provider
	manager   *pagenav.Manager
	tr        *translator
	rowHeight int32
	started   time.Time
	now       func() time.Time

	// decorate runs after the home page is built; backends use it for icons.
	decorate func(p *pagenav.Page)

	selected int
}

func (a *app) pages() []*pagenav.Page {
	return []*pagenav.Page{
		a.homePage(),
		a.settingsPage(),
		a.listPage(),
		a.detailPage(),
	}
}

func (a *app) paint(p *pagenav.Page, lines ...string) {
	s, ok := p.Surface().(toolkit.TextSurface)
	if !ok {
		return
	}
	s.SetBackground(p.Theme().BackgroundColor)
	s.SetLines(lines)
}

// row creates a one-line clickable child of the page surface at index i.
func (a *app) row(p *pagenav.Page, i int, label string, fn func()) toolkit.Surface {
	s := a.provider.NewSurface(p.Surface())
	if sz, ok := s.(sizer); ok {
		sz.SetSize(p.Width(), a.rowHeight)
	}
	s.SetPosition(0, p.StatusBarHeight()+a.rowHeight*int32(i))
	if ts, ok := s.(toolkit.TextSurface); ok {
		ts.SetLines([]string{label})
	}
	p.AddEventHandler(s, toolkit.EventClick, fn)
	return s
}

func (a *app) homePage() *pagenav.Page {
	var page *pagenav.Page
	render := func() {
		secs := int(a.now().Sub(a.started).Seconds())
		a.paint(page,
			a.tr.T("home_title", nil),
			a.tr.T("home_hint", nil),
			a.tr.T("clock", map[string]any{"Seconds": secs}),
		)
	}
	page = pagenav.NewPage("home", pagenav.PageFuncs{
		BuildFunc: func(p *pagenav.Page) {
			render()
			p.CreateTimer(time.Second, render)
			if a.decorate != nil {
				a.decorate(p)
			}
		},
		OnEnterFunc: render,
	})
	return page
}

func (a *app) settingsPage() *pagenav.Page {
	var page *pagenav.Page
	render := func() {
		m := a.manager
		a.paint(page,
			a.tr.T("settings_title", nil),
			a.tr.T("settings_hint", nil),
			"transition: "+m.TransitionType().String(),
			"duration: "+m.TransitionDuration().String(),
			"cache: "+strconv.Itoa(m.MaxCachedPages()),
		)
	}
	page = pagenav.NewPage("settings", pagenav.PageFuncs{
		BuildFunc:   func(*pagenav.Page) { render() },
		OnEnterFunc: render,
	})
	return page
}

func (a *app) listPage() *pagenav.Page {
	return pagenav.NewPage("list", pagenav.PageFuncs{
		BuildFunc: func(p *pagenav.Page) {
			a.paint(p, a.tr.T("list_title", nil))
			for i := 1; i <= listItems; i++ {
				label := a.tr.T("list_item", map[string]any{"Index": i})
				a.row(p, i, label, func() { a.openDetail(i) })
			}
		},
	})
}

func (a *app) openDetail(item int) {
	a.selected = item
	a.manager.NavigateTo("detail", constants.DirectionLeft, constants.TransitionSlideOver)
}

func (a *app) detailPage() *pagenav.Page {
	var page *pagenav.Page
	render := func() {
		item := a.tr.T("list_item", map[string]any{"Index": a.selected})
		a.paint(page,
			a.tr.T("detail_title", nil),
			a.tr.T("detail_body", map[string]any{"Item": item}),
		)
	}
	page = pagenav.NewPage("detail", pagenav.PageFuncs{
		BuildFunc: func(p *pagenav.Page) {
			render()
			a.row(p, 3, a.tr.T("home_button", nil), func() { a.manager.NavigateToWithFade("home") })
		},
		OnEnterFunc: render,
	})
	return page
}
