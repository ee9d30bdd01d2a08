package toolkit

import "github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"

type eventBinding struct {
	surface Surface
	event   Event
	fn      func()
	removed bool
}

type gestureBinding struct {
	fn      func(constants.Direction)
	removed bool
}

// Bindings holds a provider's event callbacks and gesture subscribers.
// The zero value is ready to use. Not safe for concurrent use.
type Bindings struct {
	events   []*eventBinding
	gestures []*gestureBinding
}

// Bind registers fn for event on s.
func (b *Bindings) Bind(s Surface, event Event, fn func()) Binding {
	eb := &eventBinding{surface: s, event: event, fn: fn}
	b.events = append(b.events, eb)
	return BindingFunc(func() {
		eb.removed = true
		b.compact()
	})
}

// Drop removes every callback bound to s.
func (b *Bindings) Drop(s Surface) {
	for _, eb := range b.events {
		if eb.surface == s {
			eb.removed = true
		}
	}
	b.compact()
}

// Fire runs every callback bound to event on s and returns how many ran.
func (b *Bindings) Fire(s Surface, event Event) int {
	n := 0
	for _, eb := range append([]*eventBinding(nil), b.events...) {
		if !eb.removed && eb.surface == s && eb.event == event {
			eb.fn()
			n++
		}
	}
	return n
}

// Len returns the number of live event bindings.
func (b *Bindings) Len() int {
	return len(b.events)
}

// Bound returns each surface with a callback for event once, in binding order.
func (b *Bindings) Bound(event Event) []Surface {
	var out []Surface
	seen := make(map[Surface]bool)
	for _, eb := range b.events {
		if eb.event != event || eb.surface == nil || seen[eb.surface] {
			continue
		}
		seen[eb.surface] = true
		out = append(out, eb.surface)
	}
	return out
}

// OnGesture subscribes fn to Gesture.
func (b *Bindings) OnGesture(fn func(constants.Direction)) Binding {
	g := &gestureBinding{fn: fn}
	b.gestures = append(b.gestures, g)
	return BindingFunc(func() {
		g.removed = true
		b.compactGestures()
	})
}

// Gesture delivers dir to every subscriber.
func (b *Bindings) Gesture(dir constants.Direction) {
	for _, g := range append([]*gestureBinding(nil), b.gestures...) {
		if !g.removed {
			g.fn(dir)
		}
	}
}

// Subscribers returns the number of live gesture subscriptions.
func (b *Bindings) Subscribers() int {
	return len(b.gestures)
}

func (b *Bindings) compact() {
	live := b.events[:0]
	for _, eb := range b.events {
		if !eb.removed {
			live = append(live, eb)
		}
	}
	b.events = live
}

func (b *Bindings) compactGestures() {
	live := b.gestures[:0]
	for _, g := range b.gestures {
		if !g.removed {
			live = append(live, g)
		}
	}
	b.gestures = live
}
