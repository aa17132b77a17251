package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/blueprint-pong/internal/core"
	"github.com/vovakirdan/blueprint-pong/internal/game"
	"github.com/vovakirdan/blueprint-pong/internal/screens"
)

// gameOverScreen shows the result over the preserved game screen.
type gameOverScreen struct {
	s    *Session
	game *gameScreen
	list menuList
}

func newGameOverScreen(s *Session, g *gameScreen) *gameOverScreen {
	v := &gameOverScreen{s: s, game: g}
	v.list.items = []menuItem{
		item("Play again", v.playAgain),
		item("Exit", v.exit),
	}
	return v
}

func (v *gameOverScreen) String() string { return "game-over" }

func (v *gameOverScreen) OnActivate() {
	v.list.reset()
}

func (v *gameOverScreen) OnResize(width, height int) {
	v.game.OnResize(width, height)
}

func (v *gameOverScreen) OnDestroy() {}

func (v *gameOverScreen) HandleKey(k core.Key) {
	if k == core.KeyBack {
		v.exit()
		return
	}
	v.list.handleKey(k)
}

func (v *gameOverScreen) playAgain() {
	v.game.Restart()
	v.s.Back()
}

func (v *gameOverScreen) exit() {
	v.s.Navigate(newMainMenuScreen(v.s), screens.DiscardAll)
}

func (v *gameOverScreen) Tick(float64) {}

func (v *gameOverScreen) headline() string {
	if v.game.Match().State().Winner == game.SidePlayer {
		return "You win"
	}
	return "Computer wins"
}

func (v *gameOverScreen) Render(c *core.Canvas) string {
	p := v.s.ctx.Assets
	score := v.game.Match().Score()

	v.game.draw(c)
	top := drawPanel(c, 24, v.list.height()+4)
	DrawTextFont(c, top, v.headline(), p.FontOf(fontSubtitle))
	c.DrawTextCentered(top+1, fmt.Sprintf("%d : %d", score.Computer, score.Player), core.ColorChalk)
	v.list.draw(c, p, top+3)
	return RenderCanvas(c)
}

func (v *gameOverScreen) Help() []key.Binding {
	k := v.s.keys
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Back}
}
