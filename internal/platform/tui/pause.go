package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/blueprint-pong/internal/core"
	"github.com/vovakirdan/blueprint-pong/internal/screens"
)

// pauseScreen sits on top of a preserved game screen.
type pauseScreen struct {
	s    *Session
	game *gameScreen
	list menuList
}

func newPauseScreen(s *Session, g *gameScreen) *pauseScreen {
	v := &pauseScreen{s: s, game: g}
	v.list.items = []menuItem{
		item("Resume", v.resume),
		item("Restart", func() {
			g.Restart()
			s.Back()
		}),
		item("Settings", func() { s.Navigate(newSettingsScreen(s), screens.Preserve) }),
		item("Exit", func() { s.Navigate(newMainMenuScreen(s), screens.DiscardAll) }),
	}
	return v
}

func (v *pauseScreen) String() string { return "pause" }

func (v *pauseScreen) OnActivate() {
	v.list.reset()
}

func (v *pauseScreen) OnResize(width, height int) {
	// Keep the court underneath laid out for the current size.
	v.game.OnResize(width, height)
}

func (v *pauseScreen) OnDestroy() {}

func (v *pauseScreen) HandleKey(k core.Key) {
	switch k {
	case core.KeyPause, core.KeyBack:
		v.resume()
	default:
		v.list.handleKey(k)
	}
}

func (v *pauseScreen) resume() {
	v.s.Back()
}

func (v *pauseScreen) Tick(float64) {}

func (v *pauseScreen) Render(c *core.Canvas) string {
	p := v.s.ctx.Assets
	v.game.draw(c)
	top := drawPanel(c, 20, v.list.height()+2)
	DrawTextFont(c, top, "Paused", p.FontOf(fontSubtitle))
	v.list.draw(c, p, top+2)
	return RenderCanvas(c)
}

func (v *pauseScreen) Help() []key.Binding {
	k := v.s.keys
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Pause}
}
