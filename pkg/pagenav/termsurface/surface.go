// Package termsurface draws pagenav pages in a terminal with Bubble Tea.
//
// Surfaces are character grids measured in cells. A Provider owns the
// surface tree, the animation scheduler and the gesture subscribers; Model
// adapts it to a tea.Program whose frame tick drives the scheduler.
package termsurface

import (
	"image/color"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/toolkit"
)

// visibleOpacity is the opacity below which a surface is not drawn.
// Terminals cannot blend, so a fade switches pages at the halfway point.
const visibleOpacity = 128

// Surface is a rectangle of cells.
type Surface struct {
	toolkit.Node
	lines []string
	bg    color.RGBA
}

// SetLines sets the text drawn at the surface origin, one entry per row.
func (s *Surface) SetLines(lines []string) {
	s.lines = append([]string(nil), lines...)
}

// SetBackground makes the surface opaque: it clears the cells beneath it.
func (s *Surface) SetBackground(c color.RGBA) {
	s.bg = c
}

func (s *Surface) draw(grid [][]rune, ox, oy int32) {
	if s.Hidden() || s.Deleted() || s.Opacity() < visibleOpacity {
		return
	}
	x, y := s.Position()
	w, h := s.Size()
	x0, y0 := ox+x, oy+y

	if s.bg.A != 0 {
		for y := int32(0); y < h; y++ {
			for x := int32(0); x < w; x++ {
				set(grid, x0+x, y0+y, ' ')
			}
		}
	}

	for row, line := range s.lines {
		if int32(row) >= h {
			break
		}
		col := int32(0)
		for _, r := range line {
			if col >= w {
				break
			}
			set(grid, x0+col, y0+int32(row), r)
			col++
		}
	}

	drawChildren(&s.Node, grid, x0, y0)
}

func drawChildren(n *toolkit.Node, grid [][]rune, ox, oy int32) {
	for _, c := range n.Children() {
		c.Owner().(*Surface).draw(grid, ox, oy)
	}
}

func set(grid [][]rune, x, y int32, r rune) {
	if y < 0 || int(y) >= len(grid) || x < 0 || int(x) >= len(grid[y]) {
		return
	}
	grid[y][x] = r
}

// Provider implements toolkit.Provider and toolkit.GestureSource on a cell grid.
type Provider struct {
	sched    *toolkit.Scheduler
	root     *Surface
	bindings toolkit.Bindings
	focus    int
}

// New creates a provider for a width x height cell screen.
func New(width, height int32) *Provider {
	p := &Provider{sched: toolkit.NewScheduler(time.Now())}
	p.root = p.newSurface(nil, width, height)
	return p
}

// Root returns the screen surface.
func (p *Provider) Root() *Surface { return p.root }

func (p *Provider) NewSurface(parent toolkit.Surface) toolkit.Surface {
	ps, ok := parent.(*Surface)
	if !ok || ps == nil {
		ps = p.root
	}
	w, h := ps.Size()
	return p.newSurface(&ps.Node, w, h)
}

func (p *Provider) newSurface(parent *toolkit.Node, w, h int32) *Surface {
	s := &Surface{}
	s.Init(s, parent, w, h, func() { p.bindings.Drop(s) })
	return s
}

func (p *Provider) Animate(a toolkit.Animation) { p.sched.Animate(a) }

func (p *Provider) NewTimer(period time.Duration, fn func()) toolkit.Timer {
	return p.sched.NewTimer(period, fn)
}

func (p *Provider) Bind(s toolkit.Surface, event toolkit.Event, fn func()) toolkit.Binding {
	return p.bindings.Bind(s, event, fn)
}

func (p *Provider) OnGesture(_ toolkit.Surface, fn func(constants.Direction)) toolkit.Binding {
	return p.bindings.OnGesture(fn)
}

// Now returns the scheduler clock.
func (p *Provider) Now() time.Time { return p.sched.Now() }

// Tick advances animations and timers to now.
func (p *Provider) Tick(now time.Time) { p.sched.Tick(now) }

// Animating reports whether any animation is running.
func (p *Provider) Animating() bool { return p.sched.Pending() > 0 }

// Swipe delivers a gesture to every subscriber.
func (p *Provider) Swipe(dir constants.Direction) {
	p.bindings.Gesture(dir)
}

// Clickable returns the shown surfaces with a click handler, in binding order.
func (p *Provider) Clickable() []*Surface {
	var out []*Surface
	for _, b := range p.bindings.Bound(toolkit.EventClick) {
		if s, ok := b.(*Surface); ok && s.Shown(visibleOpacity) {
			out = append(out, s)
		}
	}
	return out
}

// Focused returns the clickable surface that Click activates, or nil.
func (p *Provider) Focused() *Surface {
	c := p.Clickable()
	if len(c) == 0 {
		return nil
	}
	return c[p.focus%len(c)]
}

// MoveFocus cycles the focus by delta among clickable surfaces.
func (p *Provider) MoveFocus(delta int) {
	n := len(p.Clickable())
	if n == 0 {
		p.focus = 0
		return
	}
	p.focus = ((p.focus+delta)%n + n) % n
}

// Click runs the click handlers of the focused surface.
func (p *Provider) Click() int {
	target := p.Focused()
	if target == nil {
		return 0
	}
	return p.bindings.Fire(target, toolkit.EventClick)
}

// Render composes the visible surfaces into rows of text.
func (p *Provider) Render() []string {
	w, h := p.root.Size()
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}
	drawChildren(&p.root.Node, grid, 0, 0)

	rows := make([]string, len(grid))
	for y, row := range grid {
		rows[y] = string(row)
	}
	return rows
}
