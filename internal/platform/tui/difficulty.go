package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/blueprint-pong/internal/config"
	"github.com/vovakirdan/blueprint-pong/internal/core"
	"github.com/vovakirdan/blueprint-pong/internal/screens"
)

// difficultyScreen picks the AI difficulty and starts a match.
type difficultyScreen struct {
	s    *Session
	list menuList
}

func newDifficultyScreen(s *Session) *difficultyScreen {
	v := &difficultyScreen{s: s}
	for _, d := range config.Difficulties {
		speed := s.ctx.Config.Computer.SpeedFor(d)
		v.list.items = append(v.list.items, item(
			fmt.Sprintf("%-6s (AI %3.0f)", d, speed),
			func() { v.start(d) },
		))
	}
	v.list.items = append(v.list.items, item("Back", v.back))
	return v
}

func (v *difficultyScreen) String() string { return "difficulty" }

func (v *difficultyScreen) OnActivate() {
	v.list.cursor = int(v.s.ctx.Prefs.Difficulty())
}

func (v *difficultyScreen) OnResize(int, int) {}

func (v *difficultyScreen) OnDestroy() {}

func (v *difficultyScreen) HandleKey(k core.Key) {
	if k == core.KeyBack {
		v.back()
		return
	}
	v.list.handleKey(k)
}

func (v *difficultyScreen) Tick(float64) {}

func (v *difficultyScreen) start(d config.Difficulty) {
	if err := v.s.ctx.Prefs.SetDifficulty(d); err != nil {
		v.s.ctx.Logger.Warn("could not save difficulty", "error", err)
	}
	v.s.Navigate(newGameScreen(v.s), screens.DiscardAll)
}

func (v *difficultyScreen) back() {
	v.s.Navigate(newMainMenuScreen(v.s), screens.DiscardTop)
}

func (v *difficultyScreen) Render(c *core.Canvas) string {
	drawMenuPage(c, v.s.ctx.Assets, "Difficulty", &v.list)
	return RenderCanvas(c)
}

func (v *difficultyScreen) Help() []key.Binding {
	k := v.s.keys
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Back}
}
