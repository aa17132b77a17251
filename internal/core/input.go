package core

// Key represents a semantic key, abstracted from physical key presses.
// Screens and the simulation work with these rather than raw terminal input.
type Key int

const (
	KeyNone    Key = iota
	KeyUp          // W, Up arrow - move paddle up / menu up
	KeyDown        // S, Down arrow - move paddle down / menu down
	KeyLeft        // A, Left arrow - cycle option backwards
	KeyRight       // D, Right arrow - cycle option forwards
	KeyConfirm     // Enter, Space - activate selection
	KeyBack        // B, Escape - go back
	KeyPause       // P - pause the match
	KeyQuit        // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyConfirm:
		return "Confirm"
	case KeyBack:
		return "Back"
	case KeyPause:
		return "Pause"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// DefaultHoldFrames is how many frames a key counts as held after a press.
// Terminals report presses and auto-repeats but never releases, so holding is
// emulated by keeping the key down until repeats stop arriving.
const DefaultHoldFrames = 9

// InputState accumulates input for one frame driver.
// Presses are edge-triggered per frame; holds decay over HoldFrames frames.
type InputState struct {
	HoldFrames int

	held       map[Key]int
	pressed    map[Key]bool
	pointer    Vec
	hasPointer bool
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{
		HoldFrames: DefaultHoldFrames,
		held:       make(map[Key]int),
		pressed:    make(map[Key]bool),
	}
}

// Press records a key press (or terminal auto-repeat) for this frame.
func (s *InputState) Press(k Key) {
	if k == KeyNone {
		return
	}
	s.pressed[k] = true
	s.held[k] = s.HoldFrames
}

// Release forgets a key immediately.
func (s *InputState) Release(k Key) {
	delete(s.held, k)
}

// Pressed returns true if the key was pressed during the current frame.
func (s *InputState) Pressed(k Key) bool {
	return s.pressed[k]
}

// IsKeyDown returns true while the key is considered held.
func (s *InputState) IsKeyDown(k Key) bool {
	return s.held[k] > 0
}

// SetPointer records the pointer position in court units.
func (s *InputState) SetPointer(p Vec) {
	s.pointer = p
	s.hasPointer = true
}

// ClearPointer forgets the pointer (button released).
func (s *InputState) ClearPointer() {
	s.hasPointer = false
}

// PointerPosition returns the pointer position if one is active.
func (s *InputState) PointerPosition() (Vec, bool) {
	return s.pointer, s.hasPointer
}

// EndFrame clears edge-triggered presses and decays held keys.
// Called once per frame after the simulation consumed the input.
func (s *InputState) EndFrame() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
	for k, n := range s.held {
		if n <= 1 {
			delete(s.held, k)
			continue
		}
		s.held[k] = n - 1
	}
}

// Reset drops all keys and the pointer.
// Used when input routing moves to another screen.
func (s *InputState) Reset() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
	for k := range s.held {
		delete(s.held, k)
	}
	s.hasPointer = false
}
