// Package audio plays the game's synthesized sound effects.
package audio

import (
	"github.com/vovakirdan/blueprint-pong/internal/assets"
)

// Sink plays sounds. Play is fire-and-forget.
type Sink interface {
	Play(s assets.Sound, volume float64)
}

// Silent drops every sound. Used for SSH sessions and when no audio device
// is available.
type Silent struct{}

// Play does nothing.
func (Silent) Play(assets.Sound, float64) {}

var _ Sink = Silent{}
