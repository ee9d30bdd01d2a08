package pagenav

import (
	"log/slog"
	"sort"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/internal"
	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance bounds how different an identifier may be before
// Suggest stops offering it.
const maxSuggestionDistance = 3

// Edge is one directional navigation target.
type Edge struct {
	Target     string                   // Page identifier; empty means no edge
	Direction  constants.Direction      // Animation direction; DirectionNone animates Right
	Transition constants.TransitionType // Transition used when the edge fires
}

// To builds an edge to target that slides in from the right.
func To(target string) Edge {
	return Edge{
		Target:     target,
		Direction:  constants.DirectionRight,
		Transition: constants.TransitionSlide,
	}
}

// Animate returns a copy of e using dir for the transition geometry.
func (e Edge) Animate(dir constants.Direction) Edge {
	e.Direction = dir
	return e
}

// Using returns a copy of e with transition t.
func (e Edge) Using(t constants.TransitionType) Edge {
	e.Transition = t
	return e
}

// Navigation is the full edge set of one source page, keyed by gesture direction.
type Navigation struct {
	Up    Edge
	Down  Edge
	Left  Edge
	Right Edge
}

// Edge returns the edge for a gesture direction.
func (n Navigation) Edge(gesture constants.Direction) (Edge, bool) {
	var e Edge
	switch gesture {
	case constants.DirectionUp:
		e = n.Up
	case constants.DirectionDown:
		e = n.Down
	case constants.DirectionLeft:
		e = n.Left
	case constants.DirectionRight:
		e = n.Right
	default:
		return Edge{}, false
	}
	return e, e.Target != ""
}

// Resolved is a navigation edge whose target has been looked up.
type Resolved struct {
	Page       *Page
	Direction  constants.Direction
	Transition constants.TransitionType
}

// Registry owns every registered page and the navigation graph between them.
type Registry struct {
	pages      map[string]*Page
	navigation map[string]Navigation
	onReplace  func(old *Page)
	base       *slog.Logger
	logger     *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{
		pages:      make(map[string]*Page),
		navigation: make(map[string]Navigation),
	}
	r.setLogger(internal.GetInternalLogger())
	return r
}

func (r *Registry) setLogger(l *slog.Logger) {
	r.base = l
	r.logger = l.With("component", "registry")
	for _, p := range r.pages {
		p.logger = l.With("component", "page")
	}
}

// OnReplace sets a hook called with a page just before a duplicate
// registration destroys it.
func (r *Registry) OnReplace(fn func(old *Page)) {
	r.onReplace = fn
}

// Register takes ownership of p. A page already registered under the same
// identifier is destroyed and replaced; its edges are kept.
func (r *Registry) Register(p *Page) {
	if p == nil {
		r.logger.Error("Cannot register nil page")
		return
	}

	p.logger = r.base.With("component", "page")

	if old, ok := r.pages[p.id]; ok {
		if old == p {
			return
		}
		r.logger.Warn("Page ID already exists, replacing", "page", p.id)
		if r.onReplace != nil {
			r.onReplace(old)
		}
		old.destroy()
	}

	r.pages[p.id] = p
	r.logger.Info("Registered page", "page", p.id)
}

// Lookup returns the page registered under id.
func (r *Registry) Lookup(id string) (*Page, bool) {
	p, ok := r.pages[id]
	return p, ok
}

// SetNavigation replaces every edge leaving id. Targets need not be
// registered yet; they are resolved when a gesture fires.
func (r *Registry) SetNavigation(id string, nav Navigation) {
	r.navigation[id] = nav
	r.logger.Info("Set navigation", "page", id)
}

// Navigation returns the edge set leaving id.
func (r *Registry) Navigation(id string) (Navigation, bool) {
	nav, ok := r.navigation[id]
	return nav, ok
}

// ResolveNavigation looks up the edge leaving id in the gesture direction and
// resolves its target page.
func (r *Registry) ResolveNavigation(id string, gesture constants.Direction) (Resolved, bool) {
	nav, ok := r.navigation[id]
	if !ok {
		return Resolved{}, false
	}
	edge, ok := nav.Edge(gesture)
	if !ok {
		return Resolved{}, false
	}
	target, ok := r.pages[edge.Target]
	if !ok {
		r.logger.Debug("Navigation target not registered", "page", id, "target", edge.Target)
		return Resolved{}, false
	}

	dir := edge.Direction
	if dir == constants.DirectionNone {
		dir = constants.DirectionRight
	}
	return Resolved{Page: target, Direction: dir, Transition: edge.Transition}, true
}

// Suggest returns the registered identifier closest to id, or "" if none is close.
func (r *Registry) Suggest(id string) string {
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, candidate := range r.IDs() {
		d := levenshtein.ComputeDistance(id, candidate)
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// IDs returns every registered identifier in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.pages))
	for id := range r.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *Registry) Len() int {
	return len(r.pages)
}

// Clear destroys every page and forgets the navigation graph.
func (r *Registry) Clear() {
	for _, id := range r.IDs() {
		r.pages[id].destroy()
	}
	r.pages = make(map[string]*Page)
	r.navigation = make(map[string]Navigation)
}
