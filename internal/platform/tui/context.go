package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blueprint-pong/internal/assets"
	"github.com/vovakirdan/blueprint-pong/internal/audio"
	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/core"
	"github.com/vovakirdan/blueprint-pong/internal/game"
	"github.com/vovakirdan/blueprint-pong/internal/storage"
)

// AppContext carries the services a session needs. It is built once at
// startup and passed explicitly; nothing here is global.
type AppContext struct {
	Config  config.PongConfig
	Runtime core.RuntimeConfig
	Assets  *assets.Provider
	Audio   audio.Sink
	Prefs   game.Preferences
	Store   *storage.Store // nil when the database is unavailable
	Profile string
	Logger  *log.Logger
}

// withDefaults fills optional services so screens never check for nil.
func (c AppContext) withDefaults() AppContext {
	if c.Assets == nil {
		c.Assets = assets.MustDefault()
	}
	if c.Audio == nil {
		c.Audio = audio.Silent{}
	}
	if c.Prefs == nil {
		c.Prefs = game.NewMemoryPreferences(config.DifficultyMedium, true)
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	if c.Profile == "" {
		c.Profile = storage.DefaultProfile
	}
	if c.Runtime.TickRate <= 0 {
		c.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	return c
}

// PlayEvent plays the sound an event asks for when sounds are enabled.
func (c *AppContext) PlayEvent(e game.Event) {
	id, ok := e.Sound()
	if !ok || !c.Prefs.ShouldPlaySounds() {
		return
	}
	snd, err := c.Assets.SoundOf(id)
	if err != nil {
		c.Logger.Warn("sound unavailable", "id", id, "error", err)
		return
	}
	c.Audio.Play(snd, c.Config.Audio.Volume)
}

// SaveMatch records a finished match. It is best-effort: without a store
// the game continues without history.
func (c *AppContext) SaveMatch(m *game.Match) {
	if c.Store == nil {
		return
	}
	score := m.Score()
	record := storage.MatchRecord{
		Profile:       c.Profile,
		Difficulty:    m.Difficulty().String(),
		PlayerScore:   score.Player,
		ComputerScore: score.Computer,
		Winner:        m.State().Winner.String(),
		Duration:      int(m.Elapsed()),
	}
	if _, err := c.Store.SaveMatch(record); err != nil {
		c.Logger.Warn("could not save match", "error", err)
		return
	}
	c.Logger.Info("match saved", "profile", c.Profile, "winner", record.Winner,
		"score", score.Player, "computer", score.Computer)
}
