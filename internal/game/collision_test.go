package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/core"
)

var testCourt = core.Size{W: 320, H: 180}

type collisionFixture struct {
	resolver *Resolver
	ball     *Ball
	player   *Paddle
	computer *Paddle
}

func newCollisionFixture() *collisionFixture {
	cfg := config.DefaultPongConfig()
	f := &collisionFixture{
		resolver: NewResolver(testCourt, cfg.Ball),
		ball:     NewBall(4),
		player:   NewPaddle(core.Size{W: 6, H: 20}),
		computer: NewPaddle(core.Size{W: 6, H: 20}),
	}
	f.ball.Speed = cfg.Ball.ServeSpeed()
	f.player.Reset(core.Vec{X: 294, Y: 50})
	f.computer.Reset(core.Vec{X: 20, Y: 50})
	return f
}

func (f *collisionFixture) resolve() []Event {
	return f.resolver.Resolve(f.ball, f.player, f.computer)
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestBottomWallReflection(t *testing.T) {
	f := newCollisionFixture()
	f.ball.Pos = core.Vec{X: 160, Y: 0}
	f.ball.Angle = 200

	events := f.resolve()
	assert.Equal(t, 160.0, f.ball.Angle)
	assert.Equal(t, 0.0, f.ball.Pos.Y)
	assert.Equal(t, WallContacted, f.resolver.WallState())
	assert.Equal(t, []Event{{Kind: EventWallHit}}, events)
}

func TestTopWallReflection(t *testing.T) {
	f := newCollisionFixture()
	f.ball.Pos = core.Vec{X: 160, Y: 175}
	f.ball.Angle = 20

	events := f.resolve()
	assert.Equal(t, 340.0, f.ball.Angle)
	assert.Equal(t, 172.0, f.ball.Pos.Y, "ball is pulled back onto the court")
	assert.Equal(t, WallContacted, f.resolver.WallState())
	assert.Equal(t, 1, countKind(events, EventWallHit))
}

func TestWallContactIsDebounced(t *testing.T) {
	f := newCollisionFixture()
	f.ball.Pos = core.Vec{X: 160, Y: 0}
	f.ball.Angle = 200
	f.resolve()

	// Still touching: no second reflection, no second sound.
	f.ball.Pos.Y = -1
	events := f.resolve()
	assert.Empty(t, events)
	assert.Equal(t, 160.0, f.ball.Angle)
	assert.Equal(t, 0.0, f.ball.Pos.Y, "y stays on the court while debounced")
	assert.Equal(t, WallContacted, f.resolver.WallState())

	// Off the wall: contact clears.
	f.ball.Pos.Y = 10
	assert.Empty(t, f.resolve())
	assert.Equal(t, WallClear, f.resolver.WallState())

	// Next touch reflects again.
	f.ball.Pos.Y = 0
	f.ball.Angle = 250
	events = f.resolve()
	assert.Equal(t, 110.0, f.ball.Angle)
	assert.Equal(t, 1, countKind(events, EventWallHit))
}

func TestPlayerPaddleAngles(t *testing.T) {
	tests := []struct {
		name     string
		ballY    float64
		expected float64
	}{
		{"below paddle bottom", 45, PlayerLowAngle},
		{"middle band", 55, PlayerMidAngle},
		{"just under top band", 65.5, PlayerMidAngle},
		{"top band edge", 66, PlayerHighAngle},
		{"top band", 68, PlayerHighAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCollisionFixture()
			f.ball.Pos = core.Vec{X: 290, Y: tt.ballY}
			f.ball.Angle = 180

			events := f.resolve()
			assert.Equal(t, tt.expected, f.ball.Angle)
			assert.Equal(t, []Event{{Kind: EventPaddleHit, Side: SidePlayer}}, events)
		})
	}
}

func TestComputerPaddleAngles(t *testing.T) {
	tests := []struct {
		name     string
		ballY    float64
		expected float64
	}{
		{"below paddle bottom", 45, ComputerLowAngle},
		{"level with paddle", 50, ComputerMidAngle},
		{"top of paddle", 68, ComputerMidAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCollisionFixture()
			f.ball.Pos = core.Vec{X: 24, Y: tt.ballY}
			f.ball.Angle = 0

			events := f.resolve()
			assert.Equal(t, tt.expected, f.ball.Angle)
			assert.Equal(t, []Event{{Kind: EventPaddleHit, Side: SideComputer}}, events)
		})
	}
}

func TestNoPaddleContactLeavesAngle(t *testing.T) {
	f := newCollisionFixture()
	f.ball.Pos = core.Vec{X: 160, Y: 90}
	f.ball.Angle = 15

	assert.Empty(t, f.resolve())
	assert.Equal(t, 15.0, f.ball.Angle)
}

func TestPlayerPaddleCheckedFirst(t *testing.T) {
	f := newCollisionFixture()
	f.computer.Reset(f.player.Position())
	f.ball.Pos = core.Vec{X: 290, Y: 55}

	events := f.resolve()
	assert.Equal(t, PlayerMidAngle, f.ball.Angle)
	assert.Equal(t, []Event{{Kind: EventPaddleHit, Side: SidePlayer}}, events)
}

func TestPaddleHitSoundDebouncedAngleReassigned(t *testing.T) {
	f := newCollisionFixture()
	f.ball.Pos = core.Vec{X: 290, Y: 55}

	require.Len(t, f.resolve(), 1)

	f.ball.Angle = 90
	assert.Empty(t, f.resolve(), "continuous overlap emits one hit")
	assert.Equal(t, PlayerMidAngle, f.ball.Angle, "angle is reassigned every overlapping tick")
	assert.Equal(t, 1, f.resolver.RallyHits())

	f.ball.Pos = core.Vec{X: 160, Y: 90}
	f.resolve()
	f.ball.Pos = core.Vec{X: 290, Y: 55}
	assert.Len(t, f.resolve(), 1)
	assert.Equal(t, 2, f.resolver.RallyHits())
}

func TestPaddleAndWallSameTick(t *testing.T) {
	f := newCollisionFixture()
	f.player.Reset(core.Vec{X: 294, Y: 0})
	f.ball.Pos = core.Vec{X: 290, Y: 0}

	events := f.resolve()
	// Player mid band assigns 15, then the bottom wall reflects it.
	assert.Equal(t, 165.0, f.ball.Angle)
	assert.Equal(t, 1, countKind(events, EventPaddleHit))
	assert.Equal(t, 1, countKind(events, EventWallHit))
}

func TestRallySpeedTiers(t *testing.T) {
	f := newCollisionFixture()
	require.Equal(t, 220.0, f.ball.Speed)

	hit := func() {
		f.ball.Pos = core.Vec{X: 290, Y: 55}
		f.resolve()
		f.ball.Pos = core.Vec{X: 160, Y: 90}
		f.resolve()
	}

	for range 5 {
		hit()
	}
	assert.Equal(t, 220.0, f.ball.Speed)

	hit()
	assert.Equal(t, 225.0, f.ball.Speed)

	for range 6 {
		hit()
	}
	assert.Equal(t, 250.0, f.ball.Speed)

	for range 12 {
		hit()
	}
	assert.Equal(t, 250.0, f.ball.Speed, "last tier is the ceiling")

	f.resolver.Reset()
	assert.Equal(t, 0, f.resolver.RallyHits())
	assert.Equal(t, WallClear, f.resolver.WallState())
}

func TestRallySpeedDisabled(t *testing.T) {
	f := newCollisionFixture()
	f.resolver = NewResolver(testCourt, config.BallConfig{Radius: 4})
	f.ball.Speed = 123
	f.ball.Pos = core.Vec{X: 290, Y: 55}

	f.resolve()
	assert.Equal(t, 123.0, f.ball.Speed)
}
