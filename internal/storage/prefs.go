package storage

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/game"
)

// Preference keys.
const (
	KeyDifficulty = "difficulty"
	KeyPlaySounds = "play_sounds"
)

// Prefs are one profile's preferences backed by the store.
// Values are cached after load; setters write through.
type Prefs struct {
	store   *Store
	profile string

	mu         sync.Mutex
	difficulty config.Difficulty
	playSounds bool
}

// LoadPrefs reads a profile's preferences, falling back to Medium
// difficulty and sounds on for keys never set.
func LoadPrefs(store *Store, profile string) (*Prefs, error) {
	if profile == "" {
		profile = DefaultProfile
	}
	p := &Prefs{
		store:      store,
		profile:    profile,
		difficulty: config.DifficultyMedium,
		playSounds: true,
	}

	if v, ok, err := store.Pref(profile, KeyDifficulty); err != nil {
		return nil, err
	} else if ok {
		d, err := config.ParseDifficulty(v)
		if err != nil {
			return nil, fmt.Errorf("storage: profile %s: %w", profile, err)
		}
		p.difficulty = d
	}

	if v, ok, err := store.Pref(profile, KeyPlaySounds); err != nil {
		return nil, err
	} else if ok {
		play, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("storage: profile %s: invalid %s value %q", profile, KeyPlaySounds, v)
		}
		p.playSounds = play
	}

	return p, nil
}

// Profile returns the profile name.
func (p *Prefs) Profile() string {
	return p.profile
}

// Difficulty returns the selected difficulty.
func (p *Prefs) Difficulty() config.Difficulty {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.difficulty
}

// SetDifficulty stores the difficulty.
func (p *Prefs) SetDifficulty(d config.Difficulty) error {
	if err := p.store.SetPref(p.profile, KeyDifficulty, d.String()); err != nil {
		return err
	}
	p.mu.Lock()
	p.difficulty = d
	p.mu.Unlock()
	return nil
}

// ShouldPlaySounds reports whether sound effects are enabled.
func (p *Prefs) ShouldPlaySounds() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playSounds
}

// SetPlaySounds stores the sound toggle.
func (p *Prefs) SetPlaySounds(play bool) error {
	if err := p.store.SetPref(p.profile, KeyPlaySounds, strconv.FormatBool(play)); err != nil {
		return err
	}
	p.mu.Lock()
	p.playSounds = play
	p.mu.Unlock()
	return nil
}

var _ game.Preferences = (*Prefs)(nil)
