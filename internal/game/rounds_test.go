package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/core"
)

func newTestRounds(serveDelay float64) (*Rounds, *Ball) {
	cfg := config.DefaultPongConfig()
	cfg.Gameplay.ServeDelay = serveDelay
	r := NewRounds(testCourt, cfg.Gameplay, cfg.Ball)
	b := NewBall(cfg.Ball.Radius)
	r.NewGame(b)
	return r, b
}

func TestNewGameServesToPlayer(t *testing.T) {
	r, b := newTestRounds(0)

	assert.Equal(t, Score{Winning: 11}, r.Score())
	assert.Equal(t, RoundState{Phase: PhaseServing, TowardPlayer: true}, r.State())
	assert.Equal(t, core.Vec{X: 156, Y: 86}, b.Pos)
	assert.Equal(t, ServeToPlayerAngle, b.Angle)
	assert.Equal(t, 220.0, b.Speed)
}

func TestServeDelay(t *testing.T) {
	r, _ := newTestRounds(0.5)

	assert.False(t, r.Advance(0.2))
	assert.False(t, r.Advance(0.2))
	assert.Equal(t, PhaseServing, r.State().Phase)
	assert.True(t, r.Advance(0.2))
	assert.Equal(t, PhaseInPlay, r.State().Phase)
}

func TestNoServeDelayStartsImmediately(t *testing.T) {
	r, _ := newTestRounds(0)
	assert.True(t, r.Advance(1.0/60))
}

func TestEvaluateScoring(t *testing.T) {
	tests := []struct {
		name          string
		ballX         float64
		expectedScore Score
		scorer        Side
		serveAngle    float64
		towardPlayer  bool
	}{
		{"right exit scores for computer", 321, Score{Computer: 1, Winning: 11}, SideComputer, ServeToPlayerAngle, true},
		{"left exit scores for player", -9, Score{Player: 1, Winning: 11}, SidePlayer, ServeToComputerAngle, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, b := newTestRounds(0)
			require.True(t, r.Advance(0.016))
			b.Pos = core.Vec{X: tt.ballX, Y: 20}
			b.Speed = 250

			events := r.Evaluate(b)
			assert.Equal(t, []Event{{Kind: EventPointScored, Side: tt.scorer}}, events)
			assert.Equal(t, tt.expectedScore, r.Score())
			assert.Equal(t, RoundState{Phase: PhaseServing, TowardPlayer: tt.towardPlayer}, r.State())
			assert.Equal(t, core.Vec{X: 156, Y: 86}, b.Pos)
			assert.Equal(t, tt.serveAngle, b.Angle)
			assert.Equal(t, 220.0, b.Speed, "speed resets to the serve speed")
		})
	}
}

func TestEvaluateBoundaryNotYetOut(t *testing.T) {
	for _, x := range []float64{320, -8, 0, 312} {
		r, b := newTestRounds(0)
		r.Advance(0.016)
		b.Pos = core.Vec{X: x, Y: 20}

		assert.Nil(t, r.Evaluate(b), "x=%v", x)
		assert.Equal(t, PhaseInPlay, r.State().Phase)
	}
}

func TestEvaluateIgnoredWhileServing(t *testing.T) {
	r, b := newTestRounds(1)
	b.Pos.X = 400
	assert.Nil(t, r.Evaluate(b))
	assert.Equal(t, 0, r.Score().Computer)
}

func TestComputerScoresBelowWinning(t *testing.T) {
	r, b := newTestRounds(0)
	r.score.Player = 10
	r.Advance(0.016)
	b.Pos.X = 330

	events := r.Evaluate(b)
	assert.Equal(t, []Event{{Kind: EventPointScored, Side: SideComputer}}, events)
	assert.Equal(t, Score{Computer: 1, Player: 10, Winning: 11}, r.Score())
	assert.False(t, r.GameOver())
}

func TestGameOver(t *testing.T) {
	r, b := newTestRounds(0)
	r.score.Computer = 10
	r.Advance(0.016)
	b.Pos.X = 330

	events := r.Evaluate(b)
	assert.Equal(t, []Event{
		{Kind: EventPointScored, Side: SideComputer},
		{Kind: EventGameOver, Side: SideComputer},
	}, events)
	assert.Equal(t, RoundState{Phase: PhaseGameOver, Winner: SideComputer}, r.State())
	assert.True(t, r.GameOver())
	assert.Equal(t, 11, r.Score().Computer)

	// Game over is entered exactly once.
	b.Pos.X = 330
	assert.False(t, r.Advance(0.016))
	assert.Nil(t, r.Evaluate(b))
	assert.Equal(t, 11, r.Score().Computer)

	r.NewGame(b)
	assert.Equal(t, Score{Winning: 11}, r.Score())
	assert.Equal(t, PhaseServing, r.State().Phase)
}

func TestRoundStateString(t *testing.T) {
	tests := []struct {
		state    RoundState
		expected string
	}{
		{RoundState{Phase: PhaseServing, TowardPlayer: true}, "Serving(player)"},
		{RoundState{Phase: PhaseServing}, "Serving(computer)"},
		{RoundState{Phase: PhaseInPlay}, "InPlay"},
		{RoundState{Phase: PhaseRoundOver, Scorer: SidePlayer}, "RoundOver(Player)"},
		{RoundState{Phase: PhaseGameOver, Winner: SideComputer}, "GameOver(Computer)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}
