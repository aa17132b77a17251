package game

import (
	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/core"
)

// Match owns one game's simulation: ball, paddles, collisions and rounds.
// It performs no I/O; sounds and persistence are driven by the returned events.
type Match struct {
	cfg   config.PongConfig
	prefs Preferences
	court core.Size

	ball     *Ball
	player   *Paddle
	computer *Paddle
	resolver *Resolver
	rounds   *Rounds

	difficulty config.Difficulty
	elapsed    float64
	ticks      int
}

// NewMatch creates a match and starts the first game.
func NewMatch(cfg config.PongConfig, prefs Preferences) *Match {
	court := core.Size{W: cfg.Court.Width, H: cfg.Court.Height}
	paddleSize := core.Size{W: cfg.Paddles.Width, H: cfg.Paddles.Height}

	m := &Match{
		cfg:      cfg,
		prefs:    prefs,
		court:    court,
		ball:     NewBall(cfg.Ball.Radius),
		player:   NewPaddle(paddleSize),
		computer: NewPaddle(paddleSize),
		resolver: NewResolver(court, cfg.Ball),
		rounds:   NewRounds(court, cfg.Gameplay, cfg.Ball),
	}
	m.player.SetSpeed(cfg.Paddles.PlayerSpeed)
	m.NewGame()
	return m
}

// NewGame resets score, ball and paddles and serves to the player.
// The AI speed is re-read from preferences.
func (m *Match) NewGame() {
	m.Resume()
	y := (m.court.H - m.cfg.Paddles.Height) / 2
	m.computer.Reset(core.Vec{X: m.cfg.Paddles.Offset, Y: y})
	m.player.Reset(core.Vec{X: m.court.W - m.cfg.Paddles.Offset - m.cfg.Paddles.Width, Y: y})
	m.resolver.Reset()
	m.rounds.NewGame(m.ball)
	m.elapsed = 0
	m.ticks = 0
}

// Resume re-reads preferences that may have changed while paused.
func (m *Match) Resume() {
	m.difficulty = config.DifficultyMedium
	if m.prefs != nil {
		m.difficulty = m.prefs.Difficulty()
	}
	m.computer.SetSpeed(m.cfg.Computer.SpeedFor(m.difficulty))
}

// Tick advances the match by dt seconds and returns what happened.
// Order: paddles, serve countdown, ball, collisions, scoring.
func (m *Match) Tick(dt float64, in InputSource) []Event {
	if m.rounds.GameOver() {
		return nil
	}
	m.elapsed += dt
	m.ticks++

	m.player.FollowInput(in, dt)
	m.player.Tick(dt)
	m.player.Clamp(m.court.H)

	m.computer.TrackBall(m.ball)
	m.computer.Tick(dt)
	m.computer.Clamp(m.court.H)

	if !m.rounds.Advance(dt) {
		return nil
	}

	m.ball.Tick(dt)
	events := m.resolver.Resolve(m.ball, m.player, m.computer)

	scored := m.rounds.Evaluate(m.ball)
	if len(scored) > 0 {
		m.resolver.Reset()
		events = append(events, scored...)
	}
	return events
}

// Ball returns the ball.
func (m *Match) Ball() *Ball { return m.ball }

// Player returns the right paddle.
func (m *Match) Player() *Paddle { return m.player }

// Computer returns the left paddle.
func (m *Match) Computer() *Paddle { return m.computer }

// Score returns the current score.
func (m *Match) Score() Score { return m.rounds.Score() }

// State returns the round state.
func (m *Match) State() RoundState { return m.rounds.State() }

// GameOver reports whether the match has a winner.
func (m *Match) GameOver() bool { return m.rounds.GameOver() }

// Difficulty returns the difficulty the AI is running at.
func (m *Match) Difficulty() config.Difficulty { return m.difficulty }

// Court returns the court size.
func (m *Match) Court() core.Size { return m.court }

// Elapsed returns simulated seconds since the game started.
func (m *Match) Elapsed() float64 { return m.elapsed }

// Ticks returns the number of ticks since the game started.
func (m *Match) Ticks() int { return m.ticks }

// WallState returns the wall debounce state.
func (m *Match) WallState() WallContactState { return m.resolver.WallState() }

// RallyHits returns paddle hits in the current round.
func (m *Match) RallyHits() int { return m.resolver.RallyHits() }
