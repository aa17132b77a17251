// Package screens provides stack-based screen navigation with explicit
// preserve and discard transitions.
package screens

import "errors"

// ErrNilScreen is returned when a nil screen is pushed.
var ErrNilScreen = errors.New("screens: nil screen")

// Screen is the lifecycle the stack drives. Screens are otherwise opaque to it.
type Screen interface {
	// OnActivate is called every time the screen becomes the top of the
	// stack, including when it is uncovered by SwitchToPrevious.
	OnActivate()
	// OnResize is called with the latest viewport size.
	OnResize(width, height int)
	// OnDestroy is called exactly once, when a destroying operation removes
	// the screen. Preserved screens never see it.
	OnDestroy()
}

// Transition says what happens to the screens below a newly pushed one.
type Transition int

const (
	// Preserve keeps the current top alive underneath the new screen.
	Preserve Transition = iota
	// DiscardTop destroys the current top before pushing.
	DiscardTop
	// DiscardAll destroys every screen before pushing.
	DiscardAll
)

// String returns the transition name.
func (t Transition) String() string {
	switch t {
	case Preserve:
		return "preserve"
	case DiscardTop:
		return "discard-top"
	case DiscardAll:
		return "discard-all"
	default:
		return "unknown"
	}
}
