package game

import (
	"math"

	"github.com/vovakirdan/blueprint-pong/internal/core"
)

// Paddle is a vertically moving paddle with smoothed target seeking.
// Instead of snapping to a target, the paddle travels towards it at its
// speed and stops exactly on it, which keeps both keyboard and AI motion
// continuous.
type Paddle struct {
	pos   core.Vec
	size  core.Size
	speed float64 // units per second

	// Pending travel, fixed when the target is set.
	startY    float64
	endY      float64
	direction float64 // -1, 0 or +1
	distance  float64
	moving    bool
}

// NewPaddle creates a paddle of the given size at the origin.
func NewPaddle(size core.Size) *Paddle {
	return &Paddle{size: size}
}

// Position returns the bottom-left corner of the paddle.
func (p *Paddle) Position() core.Vec {
	return p.pos
}

// Size returns the paddle dimensions.
func (p *Paddle) Size() core.Size {
	return p.size
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.RectAt(p.pos, p.size)
}

// Speed returns the paddle speed in units per second.
func (p *Paddle) Speed() float64 {
	return p.speed
}

// SetSpeed sets the paddle speed in units per second.
func (p *Paddle) SetSpeed(unitsPerSecond float64) {
	p.speed = unitsPerSecond
}

// Moving reports whether the paddle is still travelling to its target.
func (p *Paddle) Moving() bool {
	return p.moving
}

// Reset places the paddle and makes its current position the target.
func (p *Paddle) Reset(pos core.Vec) {
	p.pos = pos
	p.SetTargetY(pos.Y)
}

// SetTargetY starts travel from the current y to the given y.
// The direction is fixed here and not recomputed while travelling.
func (p *Paddle) SetTargetY(y float64) {
	p.startY = p.pos.Y
	p.endY = y
	switch {
	case y > p.startY:
		p.direction = 1
	case y < p.startY:
		p.direction = -1
	default:
		p.direction = 0
	}
	p.distance = math.Abs(p.endY - p.startY)
	p.moving = true
}

// Tick moves the paddle towards its target for dt seconds.
// Travel ends exactly on the target once the distance covered reaches the
// distance recorded by SetTargetY, so the paddle never oscillates around it.
func (p *Paddle) Tick(dt float64) {
	if !p.moving {
		return
	}
	p.pos.Y += p.direction * p.speed * dt
	if math.Abs(p.pos.Y-p.startY) >= p.distance {
		p.pos.Y = p.endY
		p.moving = false
	}
}

// MoveUp targets one frame of travel upwards.
func (p *Paddle) MoveUp(dt float64) {
	p.SetTargetY(p.pos.Y + p.speed*dt)
}

// MoveDown targets one frame of travel downwards.
func (p *Paddle) MoveDown(dt float64) {
	p.SetTargetY(p.pos.Y - p.speed*dt)
}

// Clamp keeps the paddle inside [0, courtHeight - height].
func (p *Paddle) Clamp(courtHeight float64) {
	p.pos.Y = core.ClampF(p.pos.Y, 0, courtHeight-p.size.H)
}

// TrackBall aims the paddle so its center meets the ball's center.
func (p *Paddle) TrackBall(b *Ball) {
	p.SetTargetY(b.Circle().Center.Y - p.size.H/2)
}

// FollowInput sets the target from player input: a held key moves one
// frame's worth, otherwise an active pointer becomes the paddle's center.
func (p *Paddle) FollowInput(in InputSource, dt float64) {
	if in == nil {
		return
	}
	switch {
	case in.IsKeyDown(core.KeyUp):
		p.MoveUp(dt)
	case in.IsKeyDown(core.KeyDown):
		p.MoveDown(dt)
	default:
		if pointer, ok := in.PointerPosition(); ok {
			p.SetTargetY(pointer.Y - p.size.H/2)
		}
	}
}
