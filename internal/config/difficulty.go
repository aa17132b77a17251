package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned when a display name matches no difficulty.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// Difficulty selects how fast the computer paddle moves.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Difficulties lists every difficulty from easiest to hardest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// String returns the display name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Next returns the following difficulty, wrapping around.
func (d Difficulty) Next() Difficulty {
	return Difficulties[(int(d)+1)%len(Difficulties)]
}

// Prev returns the preceding difficulty, wrapping around.
func (d Difficulty) Prev() Difficulty {
	n := len(Difficulties)
	return Difficulties[(int(d)+n-1)%n]
}

// ParseDifficulty looks a difficulty up by its display name.
// Matching ignores case and surrounding spaces.
func ParseDifficulty(name string) (Difficulty, error) {
	trimmed := strings.TrimSpace(name)
	for _, d := range Difficulties {
		if strings.EqualFold(d.String(), trimmed) {
			return d, nil
		}
	}
	return DifficultyMedium, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// MarshalText implements encoding.TextMarshaler so difficulties read well in YAML.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
