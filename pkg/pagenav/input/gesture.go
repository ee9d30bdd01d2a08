package input

import (
	"github.com/BrandonKowalski/pagenav/pkg/pagenav/constants"
	"github.com/holoplot/go-evdev"
)

// DefaultSwipeThreshold is the minimum travel, in device units, for a touch to
// count as a swipe.
const DefaultSwipeThreshold int32 = 40

// Classify maps a touch displacement to a gesture direction. The dominant axis
// wins; travel under threshold on both axes is not a gesture.
func Classify(dx, dy, threshold int32) constants.Direction {
	ax, ay := abs(dx), abs(dy)
	if ax < threshold && ay < threshold {
		return constants.DirectionNone
	}
	if ax >= ay {
		if dx < 0 {
			return constants.DirectionLeft
		}
		return constants.DirectionRight
	}
	if dy < 0 {
		return constants.DirectionUp
	}
	return constants.DirectionDown
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

var keyDirections = map[evdev.EvCode]constants.Direction{
	evdev.KEY_UP:         constants.DirectionUp,
	evdev.KEY_DOWN:       constants.DirectionDown,
	evdev.KEY_LEFT:       constants.DirectionLeft,
	evdev.KEY_RIGHT:      constants.DirectionRight,
	evdev.BTN_DPAD_UP:    constants.DirectionUp,
	evdev.BTN_DPAD_DOWN:  constants.DirectionDown,
	evdev.BTN_DPAD_LEFT:  constants.DirectionLeft,
	evdev.BTN_DPAD_RIGHT: constants.DirectionRight,
}

// tracker turns a raw evdev event stream into gestures.
// Key and d-pad presses map directly; a touch is a swipe from the first
// reported position to the position at release.
type tracker struct {
	threshold int32

	touching  bool
	haveStart bool
	startX    int32
	startY    int32
	x, y      int32
}

func newTracker(threshold int32) *tracker {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &tracker{threshold: threshold}
}

func (t *tracker) feed(ev *evdev.InputEvent) constants.Direction {
	switch ev.Type {
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			return t.touch(ev.Value != 0)
		}
		// Repeats (2) and releases (0) are ignored.
		if ev.Value != 1 {
			return constants.DirectionNone
		}
		return keyDirections[ev.Code]

	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			t.x = ev.Value
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			t.y = ev.Value
		}

	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT && t.touching && !t.haveStart {
			t.startX, t.startY = t.x, t.y
			t.haveStart = true
		}
	}
	return constants.DirectionNone
}

func (t *tracker) touch(down bool) constants.Direction {
	if down {
		t.touching = true
		t.haveStart = false
		return constants.DirectionNone
	}
	if !t.touching {
		return constants.DirectionNone
	}
	t.touching = false
	if !t.haveStart {
		return constants.DirectionNone
	}
	t.haveStart = false
	return Classify(t.x-t.startX, t.y-t.startY, t.threshold)
}
