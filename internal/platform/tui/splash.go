package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/blueprint-pong/internal/core"
	"github.com/vovakirdan/blueprint-pong/internal/screens"
)

// splashDuration is how long the splash stays up without input, in seconds.
const splashDuration = 2.0

type splashScreen struct {
	s       *Session
	elapsed float64
	done    bool
}

func newSplashScreen(s *Session) *splashScreen {
	return &splashScreen{s: s}
}

func (v *splashScreen) String() string { return "splash" }

func (v *splashScreen) OnActivate() {
	v.elapsed = 0
}

func (v *splashScreen) OnResize(int, int) {}

func (v *splashScreen) OnDestroy() {}

func (v *splashScreen) HandleKey(core.Key) {
	v.finish()
}

func (v *splashScreen) Tick(dt float64) {
	v.elapsed += dt
	if v.elapsed >= splashDuration {
		v.finish()
	}
}

func (v *splashScreen) finish() {
	if v.done {
		return
	}
	v.done = true
	v.s.Navigate(newMainMenuScreen(v.s), screens.DiscardTop)
}

func (v *splashScreen) Render(c *core.Canvas) string {
	p := v.s.ctx.Assets
	drawBackdrop(c, p.MustTexture("splash-background"))
	mid := c.Height() / 2
	DrawTextFont(c, mid-1, "Blueprint Pong", p.FontOf(fontTitle))
	DrawTextFont(c, mid+2, "press any key", p.FontOf(fontBody))
	return RenderCanvas(c)
}

func (v *splashScreen) Help() []key.Binding {
	return []key.Binding{v.s.keys.Confirm, v.s.keys.Quit}
}
