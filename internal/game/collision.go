package game

import (
	"math"

	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/core"
)

// Fixed reflection angles in degrees. These are arcade constants, not
// computed bounces.
const (
	PlayerLowAngle   = 320.0 // ball below the player paddle's bottom edge
	PlayerHighAngle  = 40.0  // ball in the top half-ball band of the player paddle
	PlayerMidAngle   = 15.0
	ComputerLowAngle = 220.0 // ball below the computer paddle's bottom edge
	ComputerMidAngle = 165.0
)

// WallContactState debounces wall reflections while the ball stays in
// contact with a wall across frames.
type WallContactState int

const (
	WallClear WallContactState = iota
	WallContacted
)

// String returns a human-readable name for the state.
func (s WallContactState) String() string {
	if s == WallContacted {
		return "Contacted"
	}
	return "Clear"
}

// Resolver detects ball contact with paddles and walls and assigns the new
// ball angle. It runs once per tick after the ball moved.
type Resolver struct {
	court core.Size
	ball  config.BallConfig

	wall          WallContactState
	paddleContact [2]bool // indexed by Side
	rallyHits     int
}

// NewResolver creates a resolver for the given court.
// The ball config supplies the rally speed tiers.
func NewResolver(court core.Size, ball config.BallConfig) *Resolver {
	return &Resolver{court: court, ball: ball}
}

// WallState returns the wall debounce state.
func (r *Resolver) WallState() WallContactState {
	return r.wall
}

// RallyHits returns the number of paddle hits since the last reset.
func (r *Resolver) RallyHits() int {
	return r.rallyHits
}

// Reset clears contact state and the rally counter for a new round.
func (r *Resolver) Reset() {
	r.wall = WallClear
	r.paddleContact = [2]bool{}
	r.rallyHits = 0
}

// Resolve applies paddle rules, then wall rules, to the ball.
// Wall rules see the angle the paddle rules just assigned.
func (r *Resolver) Resolve(b *Ball, player, computer *Paddle) []Event {
	var events []Event

	hitPlayer := b.Bounds().Overlaps(player.Bounds())
	if hitPlayer {
		b.Angle = playerPaddleAngle(b, player)
		if !r.paddleContact[SidePlayer] {
			events = append(events, Event{Kind: EventPaddleHit, Side: SidePlayer})
			r.countRallyHit(b)
		}
	}
	r.paddleContact[SidePlayer] = hitPlayer

	hitComputer := !hitPlayer && b.Bounds().Overlaps(computer.Bounds())
	if hitComputer {
		b.Angle = computerPaddleAngle(b, computer)
		if !r.paddleContact[SideComputer] {
			events = append(events, Event{Kind: EventPaddleHit, Side: SideComputer})
			r.countRallyHit(b)
		}
	}
	r.paddleContact[SideComputer] = hitComputer

	if r.resolveWalls(b) {
		events = append(events, Event{Kind: EventWallHit})
	}
	return events
}

// resolveWalls reflects the ball off the bottom or top wall at most once per
// contact and reports whether a reflection happened.
func (r *Resolver) resolveWalls(b *Ball) bool {
	maxY := r.court.H - b.Size()
	atBottom := b.Pos.Y <= 0
	atTop := b.Pos.Y+b.Size() >= r.court.H

	reflected := false
	switch {
	case r.wall == WallClear && atBottom:
		b.Angle = 180 - math.Mod(b.Angle, 180)
		b.Pos.Y = 0
		r.wall = WallContacted
		reflected = true
	case r.wall == WallClear && atTop:
		b.Angle = 360 - math.Mod(b.Angle, 180)
		b.Pos.Y = maxY
		r.wall = WallContacted
		reflected = true
	case !atBottom && !atTop:
		r.wall = WallClear
	}

	// Keep the ball on the court even while a contact is debounced.
	b.Pos.Y = core.ClampF(b.Pos.Y, 0, maxY)
	return reflected
}

func (r *Resolver) countRallyHit(b *Ball) {
	r.rallyHits++
	if r.ball.RallyHitsPerTier > 0 && len(r.ball.SpeedTiers) > 0 {
		b.Speed = r.ball.RallySpeed(r.rallyHits)
	}
}

func playerPaddleAngle(b *Ball, p *Paddle) float64 {
	paddle := p.Bounds()
	switch {
	case b.Pos.Y < paddle.Y:
		return PlayerLowAngle
	case b.Pos.Y >= paddle.Top()-b.Size()/2:
		return PlayerHighAngle
	default:
		return PlayerMidAngle
	}
}

func computerPaddleAngle(b *Ball, p *Paddle) float64 {
	if b.Pos.Y < p.Bounds().Y {
		return ComputerLowAngle
	}
	return ComputerMidAngle
}
