package pagenav

import (
	"errors"
	"fmt"
)

// Sentinel errors describing why a navigation request was dropped.
// The plain navigation methods only log these; the Try variants return them.
var (
	ErrNotInitialized     = errors.New("manager not initialized")
	ErrAlreadyInitialized = errors.New("manager already initialized")
	ErrPageNotFound       = errors.New("page not found")
	ErrTransitionInFlight = errors.New("transition in flight")
	ErrAlreadyActive      = errors.New("page already active")
	ErrHistoryEmpty       = errors.New("navigation history empty")
)

// PageError ties a failure to the page identifier it concerns.
type PageError struct {
	Op         string // Operation that failed (e.g., "navigate", "back")
	ID         string // Page identifier
	Suggestion string // Closest registered identifier, if any
	Err        error
}

func (e *PageError) Error() string {
	msg := fmt.Sprintf("pagenav: %s %q: %v", e.Op, e.ID, e.Err)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// IsPageNotFound checks if err reports an unknown page identifier.
func IsPageNotFound(err error) bool {
	return errors.Is(err, ErrPageNotFound)
}

// IsDropped checks if err reports a request dropped because a transition was running.
func IsDropped(err error) bool {
	return errors.Is(err, ErrTransitionInFlight)
}
