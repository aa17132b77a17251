package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blueprint-pong/internal/core"
)

func TestBallTick(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected core.Vec
	}{
		{"towards computer", 0, core.Vec{X: 0, Y: 50}},
		{"towards player", 180, core.Vec{X: 200, Y: 50}},
		{"straight up", 90, core.Vec{X: 100, Y: 150}},
		{"straight down", 270, core.Vec{X: 100, Y: -50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(4)
			b.Pos = core.Vec{X: 100, Y: 50}
			b.Speed = 100
			b.Angle = tt.angle

			b.Tick(1)
			assert.InDelta(t, tt.expected.X, b.Pos.X, 1e-9)
			assert.InDelta(t, tt.expected.Y, b.Pos.Y, 1e-9)
			assert.Equal(t, tt.angle, b.Angle, "tick never changes the angle")
			assert.Equal(t, 100.0, b.Speed, "tick never changes the speed")
		})
	}
}

func TestBallCenterIn(t *testing.T) {
	b := NewBall(4)
	b.CenterIn(core.Size{W: 320, H: 180})

	assert.Equal(t, core.Vec{X: 156, Y: 86}, b.Pos)
	assert.Equal(t, core.Vec{X: 160, Y: 90}, b.Circle().Center)
	assert.Equal(t, core.NewRect(156, 86, 8, 8), b.Bounds())
}
