package pagenav

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/internal"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/toolkit"
	"github.com/google/uuid"
)

// Manager is the navigation and transition engine. It owns the active page
// pointer, the inactive cache and the history, and must only be used from
// the UI thread. Create one per process with NewManager and pass it to the
// code that needs it.
type Manager struct {
	provider        toolkit.Provider
	gestures        []toolkit.GestureSource
	gestureBindings []toolkit.Binding
	registry        *Registry

	root      toolkit.Surface
	container toolkit.Surface
	theme     *Theme

	current *Page
	cache   inactiveCache
	history *History

	transitionType     constants.TransitionType
	transitionDuration time.Duration
	gestureEnabled     bool
	maxCachedPages     int

	initialized bool
	animating   bool
	generation  int

	// History as it was before the transition in flight started.
	historyBefore []HistoryEntry

	logger *slog.Logger
}

// NewManager creates an uninitialized manager drawing through provider.
// Gestures are taken from the given sources; when none are given and the
// provider is itself a toolkit.GestureSource, the provider is used.
func NewManager(provider toolkit.Provider, gestures ...toolkit.GestureSource) *Manager {
	if len(gestures) == 0 {
		if gs, ok := provider.(toolkit.GestureSource); ok {
			gestures = []toolkit.GestureSource{gs}
		}
	}

	m := &Manager{
		provider:           provider,
		gestures:           gestures,
		registry:           NewRegistry(),
		history:            NewHistory(constants.MaxHistory),
		transitionType:     constants.DefaultTransitionType,
		transitionDuration: constants.DefaultTransitionDuration,
		gestureEnabled:     true,
		maxCachedPages:     constants.DefaultMaxCachedPages,
		logger:             internal.Logger("manager"),
	}
	m.registry.OnReplace(m.forget)
	return m
}

// SetLogger routes manager, registry and page diagnostics to l.
func (m *Manager) SetLogger(l *slog.Logger) {
	m.logger = l.With("component", "manager")
	m.registry.setLogger(l)
}

// Initialize attaches the manager to root and subscribes to gestures.
// A nil theme selects DefaultTheme. Calling Initialize twice logs and does nothing.
func (m *Manager) Initialize(root toolkit.Surface, theme *Theme) {
	if err := m.TryInitialize(root, theme); err != nil {
		m.logger.Warn("Initialize ignored", "error", err)
	}
}

// TryInitialize is Initialize reporting why it did nothing.
func (m *Manager) TryInitialize(root toolkit.Surface, theme *Theme) error {
	if m.initialized {
		return ErrAlreadyInitialized
	}
	if m.provider == nil {
		return fmt.Errorf("pagenav: initialize: no toolkit provider")
	}

	m.root = root
	if theme != nil {
		t := *theme
		m.theme = &t
	} else {
		t := DefaultTheme()
		m.theme = &t
	}

	m.container = m.provider.NewSurface(root)

	for _, gs := range m.gestures {
		m.gestureBindings = append(m.gestureBindings, gs.OnGesture(root, m.HandleGesture))
	}

	m.initialized = true
	m.logger.Info("Navigation manager initialized", "theme", m.theme.Name)
	return nil
}

// Shutdown destroys the current page, every cached and registered page, and
// resets the manager so Initialize may be called again. Configuration set
// through the setters is kept.
func (m *Manager) Shutdown() {
	if !m.initialized {
		return
	}

	for _, b := range m.gestureBindings {
		if b != nil {
			b.Unbind()
		}
	}
	m.gestureBindings = nil

	if m.current != nil {
		m.current.destroy()
		m.current = nil
	}
	m.cache.clear()
	m.registry.Clear()
	m.history.Clear()
	m.historyBefore = nil

	if m.container != nil {
		m.container.Delete()
		m.container = nil
	}

	m.root = nil
	m.theme = nil
	m.animating = false
	m.generation++
	m.initialized = false
	m.logger.Info("Navigation manager shutdown")
}

func (m *Manager) IsInitialized() bool { return m.initialized }

// IsAnimating reports whether a transition is in flight.
func (m *Manager) IsAnimating() bool { return m.animating }

func (m *Manager) Registry() *Registry { return m.registry }

// Theme returns the theme in use, or nil before Initialize.
func (m *Manager) Theme() *Theme { return m.theme }

// Container returns the surface pages are created under, or nil before Initialize.
func (m *Manager) Container() toolkit.Surface { return m.container }

// CurrentPage returns the page being shown (or being transitioned to).
func (m *Manager) CurrentPage() *Page { return m.current }

// History returns the navigation history, oldest first.
func (m *Manager) History() []HistoryEntry { return m.history.Entries() }

// CachedPages returns the identifiers in the inactive cache, oldest first.
func (m *Manager) CachedPages() []string { return m.cache.ids() }

// Register adds pages to the registry.
func (m *Manager) Register(pages ...*Page) {
	for _, p := range pages {
		m.registry.Register(p)
	}
}

// SetNavigation sets the gesture edges leaving id.
func (m *Manager) SetNavigation(id string, nav Navigation) {
	m.registry.SetNavigation(id, nav)
}

func (m *Manager) SetTransitionType(t constants.TransitionType) { m.transitionType = t }

func (m *Manager) TransitionType() constants.TransitionType { return m.transitionType }

// SetTransitionDuration sets the duration of animated transitions.
// Negative durations are treated as zero.
func (m *Manager) SetTransitionDuration(d time.Duration) {
	if d < 0 {
		m.logger.Warn("Negative transition duration, using 0", "duration", d)
		d = 0
	}
	m.transitionDuration = d
}

func (m *Manager) TransitionDuration() time.Duration { return m.transitionDuration }

func (m *Manager) EnableGesture(enable bool) { m.gestureEnabled = enable }

func (m *Manager) GestureEnabled() bool { return m.gestureEnabled }

// SetMaxCachedPages bounds the inactive cache: -1 keeps every page, 0 destroys
// pages as soon as they are left. Values below -1 are treated as -1.
// Takes effect at the end of the next navigation.
func (m *Manager) SetMaxCachedPages(n int) {
	if n < -1 {
		n = -1
	}
	m.maxCachedPages = n
}

func (m *Manager) MaxCachedPages() int { return m.maxCachedPages }

// Navigate goes to id sliding from the right with the configured default transition.
func (m *Manager) Navigate(id string) {
	m.NavigateTo(id, constants.DirectionRight, m.transitionType)
}

// NavigateToWithFade cross-fades to id.
func (m *Manager) NavigateToWithFade(id string) {
	m.NavigateTo(id, constants.DirectionRight, constants.TransitionFade)
}

// NavigateTo starts a transition to id. Requests made before Initialize, for
// unknown pages, or while a transition is in flight are logged and dropped.
func (m *Manager) NavigateTo(id string, dir constants.Direction, t constants.TransitionType) {
	if err := m.TryNavigateTo(id, dir, t); err != nil {
		m.logDropped("Navigation dropped", err)
	}
}

// TryNavigateTo is NavigateTo reporting why a request was dropped.
func (m *Manager) TryNavigateTo(id string, dir constants.Direction, t constants.TransitionType) error {
	if !m.initialized {
		return ErrNotInitialized
	}
	target, ok := m.registry.Lookup(id)
	if !ok {
		return &PageError{Op: "navigate", ID: id, Suggestion: m.registry.Suggest(id), Err: ErrPageNotFound}
	}
	return m.navigate(target, dir, t, true)
}

// NavigateBack returns to the page left by the most recent forward
// navigation, animating in the opposite direction with the same transition.
func (m *Manager) NavigateBack() {
	if err := m.TryNavigateBack(); err != nil {
		m.logDropped("Back navigation dropped", err)
	}
}

// TryNavigateBack is NavigateBack reporting why a request was dropped.
// The history entry is consumed only when the navigation starts.
func (m *Manager) TryNavigateBack() error {
	if !m.initialized {
		return ErrNotInitialized
	}
	if m.animating {
		return ErrTransitionInFlight
	}
	entry := m.history.Peek()
	if entry == nil {
		return ErrHistoryEmpty
	}
	target, ok := m.registry.Lookup(entry.PageID)
	if !ok {
		return &PageError{Op: "back", ID: entry.PageID, Err: ErrPageNotFound}
	}
	if err := m.navigate(target, entry.Direction.Opposite(), entry.Transition, false); err != nil {
		return err
	}
	m.history.Pop()
	return nil
}

// HandleGesture routes a directional gesture through the current page's
// navigation edges. Ignored while gestures are disabled, a transition is in
// flight, or no page is shown.
func (m *Manager) HandleGesture(dir constants.Direction) {
	if !m.initialized || !m.gestureEnabled || m.animating || m.current == nil {
		return
	}

	res, ok := m.registry.ResolveNavigation(m.current.id, dir)
	if !ok {
		m.logger.Debug("Gesture has no target", "page", m.current.id, "gesture", dir.String())
		return
	}

	m.logger.Info("Gesture", "gesture", dir.String(), "from", m.current.id, "to", res.Page.id)
	if err := m.navigate(res.Page, res.Direction, res.Transition, true); err != nil {
		m.logDropped("Gesture navigation dropped", err)
	}
}

func (m *Manager) logDropped(msg string, err error) {
	switch {
	case IsDropped(err):
		m.logger.Debug(msg, "error", err)
	case errors.Is(err, ErrNotInitialized):
		m.logger.Error(msg, "error", err)
	default:
		m.logger.Warn(msg, "error", err)
	}
}

// forget drops references to a page the registry is about to destroy.
func (m *Manager) forget(old *Page) {
	if m.current == old {
		m.logger.Warn("Current page replaced", "page", old.id)
		m.current = nil
	}
	m.cache.remove(old)
}

func (m *Manager) navigate(target *Page, dir constants.Direction, t constants.TransitionType, record bool) error {
	if m.animating {
		return ErrTransitionInFlight
	}
	if target == m.current {
		return &PageError{Op: "navigate", ID: target.id, Err: ErrAlreadyActive}
	}
	if dir == constants.DirectionNone {
		dir = constants.DirectionRight
	}

	log := m.logger.With("transition", uuid.NewString())
	from := "none"
	if m.current != nil {
		from = m.current.id
	}
	log.Info("Navigating", "from", from, "to", target.id, "direction", dir.String(), "type", t.String())

	m.historyBefore = m.history.Entries()
	if record && m.current != nil {
		if m.history.Push(HistoryEntry{PageID: m.current.id, Direction: dir, Transition: t}) {
			log.Warn("Navigation history full, oldest entry dropped")
		}
	}

	old := m.current

	m.cache.remove(target)

	if target.state == PageRegistered || target.state == PageDestroyed {
		target.create(m.provider, m.container, m.theme)
	}

	// Keep the target invisible until it has been positioned.
	if target.surface != nil {
		target.surface.SetHidden(true)
	}

	if t == constants.TransitionNone || old == nil {
		m.swap(old, target)
		return nil
	}

	m.animating = true
	m.current = target

	switch t {
	case constants.TransitionFade:
		m.fade(old, target, log)
	case constants.TransitionSlideOver:
		m.slideOver(old, target, dir, log)
	default:
		m.slide(old, target, dir, log)
	}
	return nil
}

// swap replaces the current page without animation.
func (m *Manager) swap(old, target *Page) {
	if old != nil {
		old.leave()
		m.retire(old)
	}
	if s := target.surface; s != nil {
		s.SetPosition(0, 0)
		s.SetOpacity(constants.OpacityCover)
	}
	target.enter()
	m.current = target
	m.evict()
}

// complete runs when the driving animation of a transition has finished.
func (m *Manager) complete(generation int, old, target *Page) {
	if generation != m.generation {
		return
	}

	m.animating = false

	if target.state != PageCreated && target.state != PageInactive {
		m.abandon(old, target)
		return
	}

	if old != nil && old.state == PageActive {
		old.leave()
		m.retire(old)
	}
	target.enter()
	m.evict()
}

// abandon settles a transition whose target was replaced or destroyed while
// animating. The old page stays active and the history is rolled back.
func (m *Manager) abandon(old, target *Page) {
	log := m.logger.With("page", target.id, "state", target.state.String())
	if old != nil && old.state == PageActive {
		log.Warn("Transition target gone before completion, staying on previous page", "current", old.id)
		m.current = old
		m.history.restore(m.historyBefore)
		return
	}
	log.Warn("Transition target gone before completion")
	if m.current == target {
		m.current = nil
	}
}

// retire moves a page that just became inactive into the cache, or destroys
// it right away when caching is disabled.
func (m *Manager) retire(p *Page) {
	if m.maxCachedPages == 0 {
		m.logger.Info("Destroying page", "page", p.id)
		p.destroy()
		return
	}
	m.cache.push(p)
}

func (m *Manager) evict() {
	m.cache.evict(m.maxCachedPages, func(p *Page) {
		m.logger.Info("Destroying cached page", "page", p.id)
		p.destroy()
	})
}
