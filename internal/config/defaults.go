package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in configuration.
// It mirrors defaults/pong.yaml and is used if the embedded file cannot be parsed.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Court: CourtConfig{
			Width:  320,
			Height: 180,
		},
		Ball: BallConfig{
			Radius:           4,
			SpeedTiers:       []float64{220, 225, 250},
			RallyHitsPerTier: 6,
		},
		Paddles: PaddleConfig{
			Width:       6,
			Height:      30,
			Offset:      20,
			PlayerSpeed: 200,
		},
		Gameplay: GameplayConfig{
			WinningScore: 11,
			ServeDelay:   0.5,
		},
		Computer: ComputerConfig{
			Easy:   90,
			Medium: 130,
			Hard:   170,
		},
		Audio: AudioConfig{
			Volume: 0.2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
