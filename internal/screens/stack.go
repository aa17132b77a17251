package screens

import (
	"fmt"
	"io"
	"reflect"

	"github.com/charmbracelet/log"
)

// ChangeFunc is notified with the new top after each transition.
// top is the zero value when the stack became empty.
type ChangeFunc[S Screen] func(top S)

// Stack is a LIFO of screens; the top is the active one.
// It is owned by a single frame driver and is not safe for concurrent use.
type Stack[S Screen] struct {
	screens  []S
	width    int
	height   int
	sized    bool
	logger   *log.Logger
	onChange ChangeFunc[S]
}

// NewStack creates an empty stack. A nil logger discards log output.
func NewStack[S Screen](logger *log.Logger) *Stack[S] {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Stack[S]{logger: logger}
}

// OnChange sets the listener notified after each transition.
func (st *Stack[S]) OnChange(fn ChangeFunc[S]) {
	st.onChange = fn
}

// Len returns the number of screens on the stack.
func (st *Stack[S]) Len() int {
	return len(st.screens)
}

// Top returns the active screen.
func (st *Stack[S]) Top() (S, bool) {
	if len(st.screens) == 0 {
		var zero S
		return zero, false
	}
	return st.screens[len(st.screens)-1], true
}

// Size returns the last viewport size passed to Resize.
func (st *Stack[S]) Size() (width, height int, ok bool) {
	return st.width, st.height, st.sized
}

// Push makes s the top and keeps the previous top alive.
func (st *Stack[S]) Push(s S) error {
	return st.Navigate(s, Preserve)
}

// ReplaceTop destroys the current top, then pushes s.
func (st *Stack[S]) ReplaceTop(s S) error {
	return st.Navigate(s, DiscardTop)
}

// ClearAndPush destroys every screen, then pushes s.
func (st *Stack[S]) ClearAndPush(s S) error {
	return st.Navigate(s, DiscardAll)
}

// Navigate pushes s, first applying the transition to the current screens.
func (st *Stack[S]) Navigate(s S, t Transition) error {
	if isNil(s) {
		return ErrNilScreen
	}

	switch t {
	case Preserve:
	case DiscardTop:
		st.destroyTop()
	case DiscardAll:
		for len(st.screens) > 0 {
			st.destroyTop()
		}
	default:
		return fmt.Errorf("screens: unknown transition %d", t)
	}

	st.screens = append(st.screens, s)
	st.logger.Debug("screen pushed", "screen", screenName(s), "transition", t, "depth", len(st.screens))
	st.activateTop()
	return nil
}

// SwitchToPrevious destroys the top and reactivates the screen beneath it
// without recreating it. It is a no-op returning false when fewer than two
// screens are on the stack.
func (st *Stack[S]) SwitchToPrevious() bool {
	if len(st.screens) <= 1 {
		st.logger.Debug("switch to previous ignored", "depth", len(st.screens))
		return false
	}
	st.destroyTop()
	st.activateTop()
	return true
}

// Resize records the viewport size and forwards it to the top.
func (st *Stack[S]) Resize(width, height int) {
	st.width, st.height, st.sized = width, height, true
	if top, ok := st.Top(); ok {
		top.OnResize(width, height)
	}
}

// DestroyAll destroys every screen, top first. Used at shutdown.
func (st *Stack[S]) DestroyAll() {
	for len(st.screens) > 0 {
		st.destroyTop()
	}
	st.notify()
}

func (st *Stack[S]) destroyTop() {
	n := len(st.screens)
	if n == 0 {
		return
	}
	top := st.screens[n-1]
	var zero S
	st.screens[n-1] = zero
	st.screens = st.screens[:n-1]
	top.OnDestroy()
	st.logger.Debug("screen destroyed", "screen", screenName(top), "depth", len(st.screens))
}

func (st *Stack[S]) activateTop() {
	top, ok := st.Top()
	if !ok {
		return
	}
	top.OnActivate()
	if st.sized {
		top.OnResize(st.width, st.height)
	}
	st.notify()
}

func (st *Stack[S]) notify() {
	if st.onChange == nil {
		return
	}
	top, _ := st.Top()
	st.onChange(top)
}

// isNil also catches typed nil pointers wrapped in the interface.
func isNil(s Screen) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func screenName(s Screen) string {
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", s)
}
