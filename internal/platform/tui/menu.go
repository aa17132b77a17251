package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/blueprint-pong/internal/core"
	"github.com/vovakirdan/blueprint-pong/internal/screens"
)

// mainMenuScreen is the hub: play, settings, history, quit.
type mainMenuScreen struct {
	s    *Session
	list menuList
}

func newMainMenuScreen(s *Session) *mainMenuScreen {
	v := &mainMenuScreen{s: s}
	v.list.items = []menuItem{
		item("Play", func() { s.Navigate(newDifficultyScreen(s), screens.DiscardTop) }),
		item("Settings", func() { s.Navigate(newSettingsScreen(s), screens.Preserve) }),
		item("History", func() { s.Navigate(newHistoryScreen(s), screens.Preserve) }),
		item("Quit", s.Quit),
	}
	return v
}

func (v *mainMenuScreen) String() string { return "main-menu" }

func (v *mainMenuScreen) OnActivate() {
	v.list.reset()
}

func (v *mainMenuScreen) OnResize(int, int) {}

func (v *mainMenuScreen) OnDestroy() {}

func (v *mainMenuScreen) HandleKey(k core.Key) {
	v.list.handleKey(k)
}

func (v *mainMenuScreen) Tick(float64) {}

func (v *mainMenuScreen) Render(c *core.Canvas) string {
	p := v.s.ctx.Assets
	drawBackdrop(c, p.MustTexture("background"))
	top := max((c.Height()-v.list.height()-5)/2, 0)
	DrawTextFont(c, top, "Blueprint Pong", p.FontOf(fontTitle))
	v.list.draw(c, p, top+4)
	return RenderCanvas(c)
}

func (v *mainMenuScreen) Help() []key.Binding {
	k := v.s.keys
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
}
