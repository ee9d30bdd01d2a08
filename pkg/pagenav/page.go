package pagenav

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/internal"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/toolkit"
)

// PageState is the lifecycle state of a Page.
type PageState int

const (
	PageRegistered PageState = iota // Constructed, no surface
	PageCreated                     // Surface built, never shown or between hide and show
	PageActive                      // On screen
	PageInactive                    // Off screen, kept in the cache
	PageDestroyed                   // Surface released; may be created again
)

func (s PageState) String() string {
	switch s {
	case PageRegistered:
		return "Registered"
	case PageCreated:
		return "Created"
	case PageActive:
		return "Active"
	case PageInactive:
		return "Inactive"
	case PageDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Content populates a page's surface. Build is called exactly once per
// creation cycle.
type Content interface {
	Build(p *Page)
}

// Enterer is implemented by content that wants to know when its page is shown.
type Enterer interface {
	OnEnter()
}

// Leaver is implemented by content that wants to know when its page is hidden.
type Leaver interface {
	OnLeave()
}

// Destroyer is implemented by content that holds resources outside the surface.
type Destroyer interface {
	OnDestroy()
}

// PageFuncs bundles page callbacks as closures. Nil hooks are skipped.
type PageFuncs struct {
	BuildFunc     func(p *Page)
	OnEnterFunc   func()
	OnLeaveFunc   func()
	OnDestroyFunc func()
}

func (f PageFuncs) Build(p *Page) {
	if f.BuildFunc != nil {
		f.BuildFunc(p)
	}
}

func (f PageFuncs) OnEnter() {
	if f.OnEnterFunc != nil {
		f.OnEnterFunc()
	}
}

func (f PageFuncs) OnLeave() {
	if f.OnLeaveFunc != nil {
		f.OnLeaveFunc()
	}
}

func (f PageFuncs) OnDestroy() {
	if f.OnDestroyFunc != nil {
		f.OnDestroyFunc()
	}
}

// Page is one navigable screen. Pages are owned by a Registry; the surface,
// timers and event bindings are owned by the page while it is created.
type Page struct {
	id       string
	content  Content
	state    PageState
	surface  toolkit.Surface
	provider toolkit.Provider
	theme    *Theme
	timers   []toolkit.Timer
	bindings []toolkit.Binding
	logger   *slog.Logger
}

// NewPage constructs a page without allocating any surface.
func NewPage(id string, content Content) *Page {
	return &Page{
		id:      id,
		content: content,
		state:   PageRegistered,
		logger:  internal.Logger("page"),
	}
}

func (p *Page) ID() string               { return p.id }
func (p *Page) State() PageState         { return p.state }
func (p *Page) Content() Content         { return p.content }
func (p *Page) Surface() toolkit.Surface { return p.surface }

// Theme returns the theme the page was created with, or nil when not created.
func (p *Page) Theme() *Theme {
	return p.theme
}

// StatusBarHeight is the top offset content should leave free.
func (p *Page) StatusBarHeight() int32 {
	if p.theme == nil {
		return 0
	}
	return p.theme.StatusBarHeight
}

func (p *Page) Width() int32 {
	if p.surface == nil {
		return 0
	}
	w, _ := p.surface.Size()
	return w
}

func (p *Page) Height() int32 {
	if p.surface == nil {
		return 0
	}
	_, h := p.surface.Size()
	return h
}

// IsLargeScreen reports whether the page is at least 720 units wide.
func (p *Page) IsLargeScreen() bool {
	return p.Width() >= constants.LargeScreenWidth
}

// CreateTimer starts a periodic timer that is stopped when the page is destroyed.
// Returns nil if the page has not been created.
func (p *Page) CreateTimer(period time.Duration, fn func()) toolkit.Timer {
	if p.provider == nil {
		p.logger.Warn("Timer requested on page without surface", "page", p.id)
		return nil
	}
	t := p.provider.NewTimer(period, fn)
	if t != nil {
		p.timers = append(p.timers, t)
	}
	return t
}

// AddEventHandler binds fn to event on target for the lifetime of the page.
func (p *Page) AddEventHandler(target toolkit.Surface, event toolkit.Event, fn func()) toolkit.Binding {
	if p.provider == nil {
		p.logger.Warn("Event handler requested on page without surface", "page", p.id)
		return nil
	}
	b := p.provider.Bind(target, event, fn)
	if b != nil {
		p.bindings = append(p.bindings, b)
	}
	return b
}

func (p *Page) create(provider toolkit.Provider, parent toolkit.Surface, theme *Theme) bool {
	if p.state != PageRegistered && p.state != PageDestroyed {
		p.logger.Warn("Page already created", "page", p.id, "state", p.state.String())
		return false
	}

	p.provider = provider
	p.theme = theme
	p.surface = provider.NewSurface(parent)
	p.state = PageCreated

	if p.content != nil {
		p.content.Build(p)
	}

	p.logger.Debug("Page created", "page", p.id)
	return true
}

func (p *Page) enter() {
	if p.state != PageCreated && p.state != PageInactive {
		p.logger.Warn("Cannot enter page", "page", p.id, "state", p.state.String())
		return
	}
	if p.surface != nil {
		p.surface.SetHidden(false)
	}
	p.state = PageActive
	if e, ok := p.content.(Enterer); ok {
		e.OnEnter()
	}
}

func (p *Page) leave() {
	if p.state != PageActive {
		p.logger.Warn("Cannot leave page", "page", p.id, "state", p.state.String())
		return
	}
	if l, ok := p.content.(Leaver); ok {
		l.OnLeave()
	}
	p.state = PageInactive
	if p.surface != nil {
		p.surface.SetHidden(true)
	}
}

func (p *Page) destroy() {
	if p.state == PageRegistered || p.state == PageDestroyed {
		return
	}
	if p.state == PageActive {
		p.leave()
	}

	if d, ok := p.content.(Destroyer); ok {
		d.OnDestroy()
	}

	for _, t := range p.timers {
		t.Stop()
	}
	p.timers = nil

	for _, b := range p.bindings {
		b.Unbind()
	}
	p.bindings = nil

	if p.surface != nil {
		p.surface.Delete()
		p.surface = nil
	}
	p.provider = nil
	p.theme = nil
	p.state = PageDestroyed

	p.logger.Debug("Page destroyed", "page", p.id)
}
