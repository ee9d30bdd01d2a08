// Package headless implements the toolkit interfaces without any display.
// It is used on devices with no panel attached and to drive the navigation
// core deterministically in tests: time only moves when Advance is called.
package headless

import (
	"image/color"
	"sort"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/toolkit"
)

// Surface is an in-memory container.
type Surface struct {
	toolkit.Node
	lines []string
	bg    color.RGBA
}

func (s *Surface) SetLines(lines []string)    { s.lines = append([]string(nil), lines...) }
func (s *Surface) Lines() []string            { return s.lines }
func (s *Surface) SetBackground(c color.RGBA) { s.bg = c }
func (s *Surface) Background() color.RGBA     { return s.bg }

// Children returns the live children in stacking order, back to front.
func (s *Surface) Children() []*Surface {
	nodes := s.Node.Children()
	out := make([]*Surface, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Owner().(*Surface))
	}
	return out
}

// Provider is a headless toolkit.Provider and toolkit.GestureSource.
type Provider struct {
	sched    *toolkit.Scheduler
	width    int32
	height   int32
	created  int
	bindings toolkit.Bindings
}

// New returns a provider whose surfaces are width x height.
func New(width, height int32) *Provider {
	return &Provider{
		sched:  toolkit.NewScheduler(time.Unix(0, 0)),
		width:  width,
		height: height,
	}
}

// Root creates a parentless surface to hand to the navigation manager.
func (p *Provider) Root() *Surface {
	return p.newSurface(nil, p.width, p.height)
}

func (p *Provider) NewSurface(parent toolkit.Surface) toolkit.Surface {
	p.created++
	if ps, ok := parent.(*Surface); ok && ps != nil {
		w, h := ps.Size()
		return p.newSurface(&ps.Node, w, h)
	}
	return p.newSurface(nil, p.width, p.height)
}

func (p *Provider) newSurface(parent *toolkit.Node, w, h int32) *Surface {
	s := &Surface{}
	s.Init(s, parent, w, h, func() { p.bindings.Drop(s) })
	return s
}

// SurfacesCreated returns how many surfaces NewSurface has handed out.
func (p *Provider) SurfacesCreated() int {
	return p.created
}

func (p *Provider) Animate(a toolkit.Animation) {
	p.sched.Animate(a)
}

func (p *Provider) NewTimer(period time.Duration, fn func()) toolkit.Timer {
	return p.sched.NewTimer(period, fn)
}

func (p *Provider) Bind(s toolkit.Surface, event toolkit.Event, fn func()) toolkit.Binding {
	return p.bindings.Bind(s, event, fn)
}

func (p *Provider) OnGesture(_ toolkit.Surface, fn func(constants.Direction)) toolkit.Binding {
	return p.bindings.OnGesture(fn)
}

// Advance moves the clock forward by d and runs a scheduler tick.
func (p *Provider) Advance(d time.Duration) {
	p.sched.Tick(p.sched.Now().Add(d))
}

// Settle advances the clock until every running animation has completed.
func (p *Provider) Settle() {
	for i := 0; i < 1000 && p.sched.Pending() > 0; i++ {
		p.Advance(16 * time.Millisecond)
	}
}

// Animating returns the number of animations still running.
func (p *Provider) Animating() int {
	return p.sched.Pending()
}

// Swipe delivers a gesture to every subscriber.
func (p *Provider) Swipe(dir constants.Direction) {
	p.bindings.Gesture(dir)
}

// GestureSubscribers returns the number of live gesture subscriptions.
func (p *Provider) GestureSubscribers() int {
	return p.bindings.Subscribers()
}

// Fire runs every callback bound to event on s.
func (p *Provider) Fire(s toolkit.Surface, event toolkit.Event) int {
	return p.bindings.Fire(s, event)
}

// Bindings returns the number of live event bindings.
func (p *Provider) Bindings() int {
	return p.bindings.Len()
}

// Visible returns the children of root that are not hidden, front-most last.
func Visible(root *Surface) []*Surface {
	var out []*Surface
	for _, c := range root.Children() {
		if !c.Hidden() {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZIndex() < out[j].ZIndex() })
	return out
}
