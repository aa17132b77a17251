package game

// Side identifies one of the two paddles.
type Side int

const (
	SideComputer Side = iota // left paddle
	SidePlayer               // right paddle
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideComputer:
		return "Computer"
	case SidePlayer:
		return "Player"
	default:
		return "Unknown"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideComputer
	}
	return SidePlayer
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventPaddleHit EventKind = iota
	EventWallHit
	EventPointScored
	EventGameOver
)

// Sound ids requested by events.
const (
	SoundPaddleHit   = "paddle-hit"
	SoundWallHit     = "wall-hit"
	SoundPointScored = "point-scored"
)

// Event is a side effect reported by Match.Tick.
// Side is the paddle hit, the scorer, or the winner depending on Kind;
// it is meaningless for wall hits.
type Event struct {
	Kind EventKind
	Side Side
}

// Sound returns the sound id this event asks to be played, if any.
func (e Event) Sound() (string, bool) {
	switch e.Kind {
	case EventPaddleHit:
		return SoundPaddleHit, true
	case EventWallHit:
		return SoundWallHit, true
	case EventPointScored:
		return SoundPointScored, true
	default:
		return "", false
	}
}
