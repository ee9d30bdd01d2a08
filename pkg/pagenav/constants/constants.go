// Package constants defines shared constants, types, and configuration values
// used throughout the pagenav navigation layer.
package constants

import (
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// ConfigPathEnvVar is the environment variable name for an explicit settings file.
const ConfigPathEnvVar = "PAGENAV_CONFIG"

// EnvPrefix is the prefix for environment overrides of runtime settings.
const EnvPrefix = "PAGENAV"

// BackgroundPathEnvVar is the environment variable name for custom background image path.
const BackgroundPathEnvVar = "BACKGROUND_PATH"

// Window size overrides honoured in development mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Direction is a cardinal direction, used both for raw gestures and for
// the geometry of a transition.
type Direction int

const (
	DirectionNone Direction = iota // Unset; edges treat it as DirectionRight
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Opposite returns the direction pointing the other way.
// DirectionNone has no opposite and is returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	default:
		return DirectionNone
	}
}

// IsHorizontal reports whether the direction moves along the x axis.
func (d Direction) IsHorizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	default:
		return "None"
	}
}

// ParseDirection converts a case-insensitive name into a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirectionUp, true
	case "down":
		return DirectionDown, true
	case "left":
		return DirectionLeft, true
	case "right":
		return DirectionRight, true
	case "", "none":
		return DirectionNone, true
	default:
		return DirectionNone, false
	}
}

// TransitionType selects how one page replaces another.
type TransitionType int

const (
	TransitionNone      TransitionType = iota // Immediate swap
	TransitionSlide                           // Both pages translate
	TransitionFade                            // Opacity cross-fade
	TransitionSlideOver                       // Only the new page translates, over the old one
)

func (t TransitionType) String() string {
	switch t {
	case TransitionNone:
		return "None"
	case TransitionSlide:
		return "Slide"
	case TransitionFade:
		return "Fade"
	case TransitionSlideOver:
		return "SlideOver"
	default:
		return "Unknown"
	}
}

// ParseTransition converts a case-insensitive name into a TransitionType.
// "slide_over", "slide-over" and "slideover" are all accepted.
func ParseTransition(s string) (TransitionType, bool) {
	norm := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(s))
	switch norm {
	case "none":
		return TransitionNone, true
	case "slide":
		return TransitionSlide, true
	case "fade":
		return TransitionFade, true
	case "slideover":
		return TransitionSlideOver, true
	default:
		return TransitionNone, false
	}
}

// Default engine configuration.
const (
	DefaultTransitionDuration = 300 * time.Millisecond
	DefaultTransitionType     = TransitionSlide
	DefaultMaxCachedPages     = -1 // Unbounded
	MaxHistory                = 10
)

// LargeScreenWidth is the width in pixels from which the large theme metrics apply.
const LargeScreenWidth int32 = 720

// Opacity bounds used by fade transitions.
const (
	OpacityTransparent uint8 = 0
	OpacityCover       uint8 = 255
)
