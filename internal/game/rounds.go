package game

import (
	"fmt"

	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/core"
)

// Serve angles.
const (
	ServeToPlayerAngle   = 180.0
	ServeToComputerAngle = 0.0
)

// Score is the match score.
type Score struct {
	Computer int
	Player   int
	Winning  int
}

// Of returns the score of one side.
func (s Score) Of(side Side) int {
	if side == SidePlayer {
		return s.Player
	}
	return s.Computer
}

// Phase is the kind of round state.
type Phase int

const (
	PhaseServing Phase = iota
	PhaseInPlay
	PhaseRoundOver
	PhaseGameOver
)

// RoundState is the round state machine's current state.
// TowardPlayer is meaningful while Serving, Scorer for RoundOver, Winner for GameOver.
type RoundState struct {
	Phase        Phase
	TowardPlayer bool
	Scorer       Side
	Winner       Side
}

// String returns a compact description of the state.
func (s RoundState) String() string {
	switch s.Phase {
	case PhaseServing:
		if s.TowardPlayer {
			return "Serving(player)"
		}
		return "Serving(computer)"
	case PhaseInPlay:
		return "InPlay"
	case PhaseRoundOver:
		return fmt.Sprintf("RoundOver(%s)", s.Scorer)
	case PhaseGameOver:
		return fmt.Sprintf("GameOver(%s)", s.Winner)
	default:
		return "Unknown"
	}
}

// Rounds owns the score and the round state. It is the only code that
// changes the score.
type Rounds struct {
	court    core.Size
	gameplay config.GameplayConfig
	ball     config.BallConfig

	score      Score
	state      RoundState
	serveTimer float64
}

// NewRounds creates the round state machine. Call NewGame before use.
func NewRounds(court core.Size, gameplay config.GameplayConfig, ball config.BallConfig) *Rounds {
	return &Rounds{
		court:    court,
		gameplay: gameplay,
		ball:     ball,
		score:    Score{Winning: gameplay.WinningScore},
	}
}

// Score returns the current score.
func (r *Rounds) Score() Score {
	return r.score
}

// State returns the current round state.
func (r *Rounds) State() RoundState {
	return r.state
}

// GameOver reports whether the match has a winner.
func (r *Rounds) GameOver() bool {
	return r.state.Phase == PhaseGameOver
}

// NewGame zeroes the score and serves the first round to the player.
func (r *Rounds) NewGame(b *Ball) {
	r.score = Score{Winning: r.gameplay.WinningScore}
	r.serve(b, true)
}

// serve centers the ball and aims it at one side.
func (r *Rounds) serve(b *Ball, towardPlayer bool) {
	b.CenterIn(r.court)
	if len(r.ball.SpeedTiers) > 0 {
		b.Speed = r.ball.ServeSpeed()
	}
	if towardPlayer {
		b.Angle = ServeToPlayerAngle
	} else {
		b.Angle = ServeToComputerAngle
	}
	r.state = RoundState{Phase: PhaseServing, TowardPlayer: towardPlayer}
	r.serveTimer = r.gameplay.ServeDelay
}

// Advance runs the serve countdown and reports whether the ball is in play.
func (r *Rounds) Advance(dt float64) bool {
	if r.state.Phase == PhaseServing {
		r.serveTimer -= dt
		if r.serveTimer > 0 {
			return false
		}
		r.state = RoundState{Phase: PhaseInPlay}
	}
	return r.state.Phase == PhaseInPlay
}

// Evaluate checks whether the ball left the court, scores the point and
// re-serves towards the side that was scored against, or ends the match.
func (r *Rounds) Evaluate(b *Ball) []Event {
	if r.state.Phase != PhaseInPlay {
		return nil
	}

	var scorer Side
	switch {
	case b.Pos.X > r.court.W:
		scorer = SideComputer
	case b.Pos.X+b.Size() < 0:
		scorer = SidePlayer
	default:
		return nil
	}

	if scorer == SidePlayer {
		r.score.Player++
	} else {
		r.score.Computer++
	}
	events := []Event{{Kind: EventPointScored, Side: scorer}}
	r.state = RoundState{Phase: PhaseRoundOver, Scorer: scorer}

	if r.score.Of(scorer) == r.score.Winning {
		r.state = RoundState{Phase: PhaseGameOver, Winner: scorer}
		b.CenterIn(r.court)
		b.Speed = 0
		return append(events, Event{Kind: EventGameOver, Side: scorer})
	}

	r.serve(b, scorer.Opponent() == SidePlayer)
	return events
}
