package game

import (
	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/core"
)

// InputSource is the player input consumed by the simulation.
// core.InputState implements it.
type InputSource interface {
	IsKeyDown(k core.Key) bool
	PointerPosition() (core.Vec, bool)
}

// Preferences holds the user settings the game reads at new game, resume
// and settings changes.
type Preferences interface {
	Difficulty() config.Difficulty
	SetDifficulty(d config.Difficulty) error
	ShouldPlaySounds() bool
	SetPlaySounds(play bool) error
}

// MemoryPreferences keeps preferences in memory only.
// Used when no database is available and in tests.
type MemoryPreferences struct {
	difficulty config.Difficulty
	playSounds bool
}

// NewMemoryPreferences creates preferences with the given initial values.
func NewMemoryPreferences(d config.Difficulty, playSounds bool) *MemoryPreferences {
	return &MemoryPreferences{difficulty: d, playSounds: playSounds}
}

func (p *MemoryPreferences) Difficulty() config.Difficulty { return p.difficulty }

func (p *MemoryPreferences) SetDifficulty(d config.Difficulty) error {
	p.difficulty = d
	return nil
}

func (p *MemoryPreferences) ShouldPlaySounds() bool { return p.playSounds }

func (p *MemoryPreferences) SetPlaySounds(play bool) error {
	p.playSounds = play
	return nil
}

var _ Preferences = (*MemoryPreferences)(nil)
