// Package config provides YAML-based game configuration loading and the
// difficulty enumeration for the game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// PongConfig contains all tuning for the game.
type PongConfig struct {
	Court    CourtConfig    `yaml:"court"`
	Ball     BallConfig     `yaml:"ball"`
	Paddles  PaddleConfig   `yaml:"paddles"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Computer ComputerConfig `yaml:"computer"`
	Audio    AudioConfig    `yaml:"audio"`
}

// CourtConfig defines the virtual court size in units.
type CourtConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball size and its speed tiers.
type BallConfig struct {
	Radius           float64   `yaml:"radius"`
	SpeedTiers       []float64 `yaml:"speed_tiers"`         // units/second; first entry is the serve speed
	RallyHitsPerTier int       `yaml:"rally_hits_per_tier"` // paddle hits before moving to the next tier, 0 disables
}

// PaddleConfig defines paddle geometry and the player paddle speed.
type PaddleConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Offset      float64 `yaml:"offset"`       // distance from the court edge
	PlayerSpeed float64 `yaml:"player_speed"` // units/second
}

// GameplayConfig defines scoring rules.
type GameplayConfig struct {
	WinningScore int     `yaml:"winning_score"`
	ServeDelay   float64 `yaml:"serve_delay"` // seconds the ball waits at center before a serve
}

// ComputerConfig maps each difficulty to an AI paddle speed in units/second.
type ComputerConfig struct {
	Easy   float64 `yaml:"easy"`
	Medium float64 `yaml:"medium"`
	Hard   float64 `yaml:"hard"`
}

// AudioConfig defines effect playback.
type AudioConfig struct {
	Volume float64 `yaml:"volume"` // 0.0 - 1.0
}

// ServeSpeed returns the ball speed used at the start of every round.
func (b BallConfig) ServeSpeed() float64 {
	if len(b.SpeedTiers) == 0 {
		return 0
	}
	return b.SpeedTiers[0]
}

// RallySpeed returns the ball speed after the given number of paddle hits
// in the current round.
func (b BallConfig) RallySpeed(hits int) float64 {
	if len(b.SpeedTiers) == 0 {
		return 0
	}
	if b.RallyHitsPerTier <= 0 || hits < 0 {
		return b.SpeedTiers[0]
	}
	tier := min(hits/b.RallyHitsPerTier, len(b.SpeedTiers)-1)
	return b.SpeedTiers[tier]
}

// SpeedFor returns the AI paddle speed for a difficulty.
func (c ComputerConfig) SpeedFor(d Difficulty) float64 {
	switch d {
	case DifficultyEasy:
		return c.Easy
	case DifficultyHard:
		return c.Hard
	default:
		return c.Medium
	}
}

// Validate checks the configuration for values the simulation cannot run with.
func (c PongConfig) Validate() error {
	switch {
	case c.Court.Width <= 0 || c.Court.Height <= 0:
		return fmt.Errorf("%w: court size must be positive", ErrInvalidConfig)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case c.Ball.Radius*2 >= c.Court.Height:
		return fmt.Errorf("%w: ball does not fit the court", ErrInvalidConfig)
	case len(c.Ball.SpeedTiers) == 0:
		return fmt.Errorf("%w: at least one ball speed tier is required", ErrInvalidConfig)
	case c.Paddles.Width <= 0 || c.Paddles.Height <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalidConfig)
	case c.Paddles.Height > c.Court.Height:
		return fmt.Errorf("%w: paddle taller than the court", ErrInvalidConfig)
	case c.Paddles.PlayerSpeed <= 0:
		return fmt.Errorf("%w: player paddle speed must be positive", ErrInvalidConfig)
	case c.Gameplay.WinningScore <= 0:
		return fmt.Errorf("%w: winning score must be positive", ErrInvalidConfig)
	case c.Gameplay.ServeDelay < 0:
		return fmt.Errorf("%w: serve delay cannot be negative", ErrInvalidConfig)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume must be within [0, 1]", ErrInvalidConfig)
	}

	for i, s := range c.Ball.SpeedTiers {
		if s < 0 {
			return fmt.Errorf("%w: ball speed tier %d is negative", ErrInvalidConfig, i)
		}
	}

	// Harder must always mean a faster computer paddle.
	if !(c.Computer.Easy > 0 && c.Computer.Easy < c.Computer.Medium && c.Computer.Medium < c.Computer.Hard) {
		return fmt.Errorf("%w: computer speeds must satisfy 0 < easy < medium < hard", ErrInvalidConfig)
	}
	return nil
}
