package sdlsurface

import (
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/input"
	"github.com/veandco/go-sdl2/sdl"
)

// swipeTracker follows one finger or mouse drag in window pixels.
type swipeTracker struct {
	active         bool
	startX, startY int32
}

func (t *swipeTracker) begin(x, y int32) {
	t.active = true
	t.startX, t.startY = x, y
}

// end reports the travel since begin, or ok=false when no drag was active.
func (t *swipeTracker) end(x, y int32) (dx, dy int32, ok bool) {
	if !t.active {
		return 0, 0, false
	}
	t.active = false
	return x - t.startX, y - t.startY, true
}

// PollEvents drains the SDL event queue. It returns false once the window
// has been asked to close.
func (p *Provider) PollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			p.handleKey(e.Keysym.Sym)

		case *sdl.ControllerButtonEvent:
			if e.Type != sdl.CONTROLLERBUTTONDOWN {
				continue
			}
			p.handleButton(sdl.GameControllerButton(e.Button))

		case *sdl.ControllerDeviceEvent:
			if e.Type == sdl.CONTROLLERDEVICEADDED {
				if c := sdl.GameControllerOpen(int(e.Which)); c != nil {
					p.logger.Info("Game controller connected", "name", c.Name())
					p.controllers = append(p.controllers, c)
				}
			}

		case *sdl.TouchFingerEvent:
			w, h := p.window.Size()
			x, y := int32(e.X*float32(w)), int32(e.Y*float32(h))
			switch e.Type {
			case sdl.FINGERDOWN:
				p.swipe.begin(x, y)
			case sdl.FINGERUP:
				p.release(x, y)
			}

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			switch e.Type {
			case sdl.MOUSEBUTTONDOWN:
				p.swipe.begin(e.X, e.Y)
			case sdl.MOUSEBUTTONUP:
				p.release(e.X, e.Y)
			}
		}
	}
	return true
}

// release ends a drag as either a swipe or a tap on the surface under it.
func (p *Provider) release(x, y int32) {
	dx, dy, ok := p.swipe.end(x, y)
	if !ok {
		return
	}
	if dir := input.Classify(dx, dy, p.swipeThreshold); dir != constants.DirectionNone {
		p.swipeTo(dir)
		return
	}
	p.click(p.hit(x, y))
}

func (p *Provider) handleKey(key sdl.Keycode) {
	switch key {
	case sdl.K_LEFT:
		p.swipeTo(constants.DirectionLeft)
	case sdl.K_RIGHT:
		p.swipeTo(constants.DirectionRight)
	case sdl.K_UP:
		p.swipeTo(constants.DirectionUp)
	case sdl.K_DOWN:
		p.swipeTo(constants.DirectionDown)
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
		p.back()
	case sdl.K_TAB:
		if sdl.GetModState()&sdl.KMOD_SHIFT != 0 {
			p.moveFocus(-1)
		} else {
			p.moveFocus(1)
		}
	case sdl.K_RETURN, sdl.K_SPACE:
		p.click(p.focused())
	}
}

func (p *Provider) handleButton(button sdl.GameControllerButton) {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		p.swipeTo(constants.DirectionLeft)
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		p.swipeTo(constants.DirectionRight)
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		p.swipeTo(constants.DirectionUp)
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		p.swipeTo(constants.DirectionDown)
	case sdl.CONTROLLER_BUTTON_B:
		p.back()
	case sdl.CONTROLLER_BUTTON_A:
		p.click(p.focused())
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		p.moveFocus(-1)
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		p.moveFocus(1)
	}
}

func (p *Provider) back() {
	if p.onBack != nil {
		p.onBack()
	}
}
