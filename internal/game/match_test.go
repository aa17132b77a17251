package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/core"
)

const frame = 1.0 / 60

func newTestMatch(t *testing.T, d config.Difficulty) (*Match, *MemoryPreferences) {
	t.Helper()
	cfg := config.DefaultPongConfig()
	cfg.Gameplay.ServeDelay = 0
	require.NoError(t, cfg.Validate())
	prefs := NewMemoryPreferences(d, true)
	return NewMatch(cfg, prefs), prefs
}

func TestNewMatchLayout(t *testing.T) {
	m, _ := newTestMatch(t, config.DifficultyMedium)

	assert.Equal(t, core.Vec{X: 20, Y: 75}, m.Computer().Position())
	assert.Equal(t, core.Vec{X: 294, Y: 75}, m.Player().Position())
	assert.Equal(t, core.Vec{X: 156, Y: 86}, m.Ball().Pos)
	assert.Equal(t, RoundState{Phase: PhaseServing, TowardPlayer: true}, m.State())
	assert.Equal(t, 200.0, m.Player().Speed())
	assert.Equal(t, 130.0, m.Computer().Speed())
}

func TestDifficultyDrivesComputerSpeed(t *testing.T) {
	m, prefs := newTestMatch(t, config.DifficultyHard)
	assert.Equal(t, 170.0, m.Computer().Speed())

	require.NoError(t, prefs.SetDifficulty(config.DifficultyEasy))
	assert.Equal(t, 170.0, m.Computer().Speed(), "changes apply on resume")

	m.Resume()
	assert.Equal(t, 90.0, m.Computer().Speed())
	assert.Equal(t, config.DifficultyEasy, m.Difficulty())
}

func TestMatchNilPreferencesDefaultsToMedium(t *testing.T) {
	m := NewMatch(config.DefaultPongConfig(), nil)
	assert.Equal(t, config.DifficultyMedium, m.Difficulty())
	assert.Equal(t, 130.0, m.Computer().Speed())
}

func TestMatchServeDelayHoldsBall(t *testing.T) {
	m := NewMatch(config.DefaultPongConfig(), nil)
	start := m.Ball().Pos

	m.Tick(0.25, nil)
	assert.Equal(t, start, m.Ball().Pos)

	m.Tick(0.25, nil)
	assert.NotEqual(t, start, m.Ball().Pos)
	assert.Equal(t, PhaseInPlay, m.State().Phase)
}

func TestMatchScoresAndResetsRally(t *testing.T) {
	m, _ := newTestMatch(t, config.DifficultyMedium)
	m.Tick(frame, nil)
	m.resolver.rallyHits = 4

	m.Ball().Pos = core.Vec{X: 330, Y: 20}
	m.Ball().Angle = 180
	events := m.Tick(frame, nil)

	assert.Equal(t, []Event{{Kind: EventPointScored, Side: SideComputer}}, events)
	assert.Equal(t, 1, m.Score().Computer)
	assert.Equal(t, 0, m.RallyHits())
	assert.Equal(t, RoundState{Phase: PhaseServing, TowardPlayer: true}, m.State())
}

func TestMatchIgnoresTicksAfterGameOver(t *testing.T) {
	m, _ := newTestMatch(t, config.DifficultyMedium)
	m.rounds.score.Player = 10
	m.Tick(frame, nil)

	m.Ball().Pos = core.Vec{X: -20, Y: 20}
	m.Ball().Angle = 0
	events := m.Tick(frame, nil)
	require.Len(t, events, 2)
	assert.Equal(t, Event{Kind: EventGameOver, Side: SidePlayer}, events[1])

	elapsed := m.Elapsed()
	ball := m.Ball().Pos
	assert.Nil(t, m.Tick(frame, fakeInput{up: true}))
	assert.Equal(t, elapsed, m.Elapsed())
	assert.Equal(t, ball, m.Ball().Pos)

	m.NewGame()
	assert.False(t, m.GameOver())
	assert.Equal(t, 0, m.Score().Player)
	assert.Equal(t, 0.0, m.Elapsed())
}

func TestMatchPlayerInputMovesPaddle(t *testing.T) {
	m, _ := newTestMatch(t, config.DifficultyMedium)

	for range 30 {
		m.Tick(frame, fakeInput{up: true})
	}
	assert.Greater(t, m.Player().Position().Y, 75.0)

	for range 600 {
		m.Tick(frame, fakeInput{up: true})
	}
	assert.Equal(t, 150.0, m.Player().Position().Y, "paddle stops at the top of the court")
}

func TestMatchInvariantsHoldOverLongPlay(t *testing.T) {
	m, _ := newTestMatch(t, config.DifficultyHard)
	court := m.Court()
	prev := m.Score()

	for i := range 60 * 600 {
		in := fakeInput{up: (i/45)%3 == 0, down: (i/45)%3 == 1}
		m.Tick(frame, in)

		ball := m.Ball()
		require.GreaterOrEqual(t, ball.Pos.Y, 0.0)
		require.LessOrEqual(t, ball.Pos.Y, court.H-ball.Size())

		for _, p := range []*Paddle{m.Player(), m.Computer()} {
			require.GreaterOrEqual(t, p.Position().Y, 0.0)
			require.LessOrEqual(t, p.Position().Y, court.H-p.Size().H)
		}

		score := m.Score()
		require.GreaterOrEqual(t, score.Player, prev.Player)
		require.GreaterOrEqual(t, score.Computer, prev.Computer)
		require.LessOrEqual(t, score.Player, score.Winning)
		require.LessOrEqual(t, score.Computer, score.Winning)
		prev = score

		if m.GameOver() {
			winner := m.State().Winner
			assert.Equal(t, score.Winning, score.Of(winner))
			return
		}
	}
}
