package game

import "github.com/vovakirdan/blueprint-pong/internal/core"

// Ball is the game ball.
// Pos is the bottom-left corner of its bounding box. Angle is in degrees and
// follows the arcade convention: x -= cos(angle)*speed*dt, y += sin(angle)*speed*dt,
// so 0 travels towards the computer (left) and 180 towards the player (right).
type Ball struct {
	Pos    core.Vec
	Radius float64
	Speed  float64 // units per second
	Angle  float64 // degrees
}

// NewBall creates a stationary ball with the given radius.
func NewBall(radius float64) *Ball {
	return &Ball{Radius: radius}
}

// Size returns the width (and height) of the ball's bounding box.
func (b *Ball) Size() float64 {
	return b.Radius * 2
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.Size(), b.Size())
}

// Circle returns the ball's bounding circle.
func (b *Ball) Circle() core.Circle {
	return core.Circle{
		Center: core.Vec{X: b.Pos.X + b.Radius, Y: b.Pos.Y + b.Radius},
		Radius: b.Radius,
	}
}

// CenterIn places the ball in the middle of the court.
func (b *Ball) CenterIn(court core.Size) {
	b.Pos = core.Vec{X: court.W/2 - b.Radius, Y: court.H/2 - b.Radius}
}

// Tick advances the ball by dt seconds. It knows nothing about collisions.
func (b *Ball) Tick(dt float64) {
	b.Pos.X -= core.CosDeg(b.Angle) * b.Speed * dt
	b.Pos.Y += core.SinDeg(b.Angle) * b.Speed * dt
}
