// Package toolkit describes the boundary between the navigation core and the
// graphics toolkit that actually draws pages. A backend (SDL window, terminal,
// headless) implements Provider and Surface; the core never touches pixels.
package toolkit

import (
	"image/color"
	"time"

	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
)

// Surface is an opaque container that pages render into.
// Positions are relative to the parent surface.
type Surface interface {
	Size() (w, h int32)
	Position() (x, y int32)
	SetPosition(x, y int32)
	Hidden() bool
	SetHidden(hidden bool)
	Opacity() uint8
	SetOpacity(opa uint8)
	// MoveToFront raises the surface above its siblings.
	MoveToFront()
	// Delete releases the surface and its children. The handle must not be used afterwards.
	Delete()
}

// TextSurface is implemented by backends that can show plain text content
// without a widget layer.
type TextSurface interface {
	Surface
	SetLines(lines []string)
	SetBackground(c color.RGBA)
}

// Event names an input event that can be bound to a surface.
type Event string

const (
	EventClick Event = "click"
)

// Timer is a periodic callback owned by whoever created it.
type Timer interface {
	Stop()
}

// Binding is a registered event callback.
type Binding interface {
	Unbind()
}

// Animation is a time-driven interpolation of a single integer property.
// Exec is called on every tick with the eased value; Done is called exactly
// once after the final Exec(To).
type Animation struct {
	Target   Surface
	From     int32
	To       int32
	Duration time.Duration
	Easing   Easing
	Exec     func(s Surface, v int32)
	Done     func()
}

// Provider creates surfaces and runs animations, timers and event bindings
// on the UI thread.
type Provider interface {
	// NewSurface creates a full-size container under parent.
	NewSurface(parent Surface) Surface
	// Animate starts a; it returns immediately.
	Animate(a Animation)
	NewTimer(period time.Duration, fn func()) Timer
	Bind(s Surface, event Event, fn func()) Binding
}

// GestureSource delivers discrete directional gestures made against root.
type GestureSource interface {
	OnGesture(root Surface, fn func(dir constants.Direction)) Binding
}

// BindingFunc adapts a plain function to the Binding interface.
type BindingFunc func()

func (f BindingFunc) Unbind() {
	if f != nil {
		f()
	}
}
