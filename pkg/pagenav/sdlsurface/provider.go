// Package sdlsurface draws pagenav pages in an SDL2 window, for handhelds
// and desktop development.
//
// All SDL calls, and therefore every Provider method, must run on the main
// OS thread. Call runtime.LockOSThread from an init function of package main.
package sdlsurface

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/input"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/internal"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/toolkit"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Surface is a rectangle drawn with SDL primitives: an optional fill, an
// optional icon and lines of text, followed by its children.
type Surface struct {
	toolkit.Node

	bg    color.RGBA
	fg    color.RGBA
	lines []string
	icon  *sdl.Texture
	pad   int32
}

func (s *Surface) SetLines(lines []string)    { s.lines = append([]string(nil), lines...) }
func (s *Surface) SetBackground(c color.RGBA) { s.bg = c }

// SetForeground sets the text color.
func (s *Surface) SetForeground(c color.RGBA) { s.fg = c }

// SetPadding sets the inset of text and icon from the surface edge.
func (s *Surface) SetPadding(pad int32) { s.pad = pad }

// SetIcon draws t at the top-left of the surface. The surface does not own t.
func (s *Surface) SetIcon(t *sdl.Texture) { s.icon = t }

// absolute returns the screen rectangle of s.
func (s *Surface) absolute() sdl.Rect {
	x, y := s.Origin()
	w, h := s.Size()
	return sdl.Rect{X: x, Y: y, W: w, H: h}
}

// Provider implements toolkit.Provider and toolkit.GestureSource on an SDL window.
type Provider struct {
	window      *Window
	root        *Surface
	sched       *toolkit.Scheduler
	font        *ttf.Font
	accent      color.RGBA
	text        *textureCache
	controllers []*sdl.GameController

	bindings toolkit.Bindings
	focus    int

	swipe          swipeTracker
	swipeThreshold int32

	onBack  func()
	onFrame []func()

	logger *slog.Logger
}

// Init initializes SDL, opens a window and returns a provider drawing into it.
func Init(title string, opts WindowOptions) (*Provider, error) {
	logger := internal.Logger("sdl")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("init ttf: %w", err)
	}
	if err := img.Init(img.INIT_PNG); err != nil {
		logger.Warn("PNG support unavailable", "error", err)
	}

	if opts.IsZero() {
		opts = WindowOptions{Resizable: true}
		if !constants.IsDevMode() {
			opts = WindowOptions{Borderless: true, FullscreenDesktop: true}
		}
	}

	window, err := openWindow(title, opts, logger)
	if err != nil {
		ttf.Quit()
		img.Quit()
		sdl.Quit()
		return nil, err
	}

	w, h := window.Size()
	p := &Provider{
		window:         window,
		sched:          toolkit.NewScheduler(time.Now()),
		text:           newTextureCache(defaultTextCacheSize),
		swipeThreshold: input.DefaultSwipeThreshold,
		logger:         logger,
	}
	p.root = p.newSurface(nil, w, h)
	p.openControllers()
	return p, nil
}

func (p *Provider) openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			p.logger.Info("Opened game controller", "index", i, "name", c.Name())
			p.controllers = append(p.controllers, c)
		}
	}
}

// SetTheme loads the body font and colors used for text and focus.
func (p *Provider) SetTheme(theme pagenav.Theme) error {
	p.accent = theme.AccentColor
	if theme.FontPath == "" {
		p.logger.Warn("Theme has no font; text will not be drawn")
		return nil
	}

	size := theme.FontSize
	if size <= 0 {
		size = 16
	}
	font, err := ttf.OpenFont(theme.FontPath, size)
	if err != nil {
		return fmt.Errorf("open font %s: %w", theme.FontPath, err)
	}
	if p.font != nil {
		p.font.Close()
	}
	p.font = font
	p.text.destroy()
	return nil
}

// Root returns the window surface.
func (p *Provider) Root() *Surface { return p.root }

// Window returns the SDL window.
func (p *Provider) Window() *Window { return p.window }

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

// OnBack sets the handler for the back button (B, Escape, Backspace).
func (p *Provider) OnBack(fn func()) { p.onBack = fn }

// OnFrame adds a callback run once per frame before animations advance.
func (p *Provider) OnFrame(fn func()) { p.onFrame = append(p.onFrame, fn) }

// SetSwipeThreshold sets the minimum travel in pixels for a touch or drag
// to count as a swipe.
func (p *Provider) SetSwipeThreshold(px int32) { p.swipeThreshold = px }

func (p *Provider) swipeTo(dir constants.Direction) {
	p.bindings.Gesture(dir)
}

// Run drives the frame loop until the window is closed, Quit is requested
// or ctx is cancelled.
func (p *Provider) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !p.PollEvents() {
			return nil
		}
		for _, fn := range p.onFrame {
			fn()
		}
		p.sched.Tick(time.Now())
		p.Draw()
		p.window.Present()
	}
}

// Close releases every SDL resource and shuts SDL down.
func (p *Provider) Close() {
	p.root.Delete()
	p.text.destroy()
	if p.font != nil {
		p.font.Close()
	}
	for _, c := range p.controllers {
		c.Close()
	}
	p.window.close()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}

func (p *Provider) clickable() []*Surface {
	var out []*Surface
	for _, b := range p.bindings.Bound(toolkit.EventClick) {
		// Fully transparent surfaces take no input.
		if s, ok := b.(*Surface); ok && s.Shown(1) {
			out = append(out, s)
		}
	}
	return out
}

func (p *Provider) focused() *Surface {
	c := p.clickable()
	if len(c) == 0 {
		return nil
	}
	return c[p.focus%len(c)]
}

func (p *Provider) moveFocus(delta int) {
	n := len(p.clickable())
	if n == 0 {
		p.focus = 0
		return
	}
	p.focus = ((p.focus+delta)%n + n) % n
}

func (p *Provider) click(target *Surface) {
	if target == nil {
		return
	}
	p.bindings.Fire(target, toolkit.EventClick)
}

// hit returns the front-most clickable surface containing the point.
func (p *Provider) hit(x, y int32) *Surface {
	candidates := p.clickable()
	for i := len(candidates) - 1; i >= 0; i-- {
		r := candidates[i].absolute()
		if x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H {
			return candidates[i]
		}
	}
	return nil
}
