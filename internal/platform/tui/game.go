package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/blueprint-pong/internal/core"
	"github.com/vovakirdan/blueprint-pong/internal/game"
	"github.com/vovakirdan/blueprint-pong/internal/screens"
)

// gameScreen runs a match and draws the court. Row 0 is the score line;
// the court fills the rest.
type gameScreen struct {
	s     *Session
	match *game.Match
	view  Viewport
}

func newGameScreen(s *Session) *gameScreen {
	v := &gameScreen{
		s:     s,
		match: game.NewMatch(s.ctx.Config, s.ctx.Prefs),
	}
	v.OnResize(s.ctx.Runtime.ScreenW, s.ctx.Runtime.ScreenH-1)
	s.ctx.Logger.Info("match started", "profile", s.ctx.Profile, "difficulty", v.match.Difficulty())
	return v
}

func (v *gameScreen) String() string { return "game" }

// OnActivate picks up preference changes made while paused.
func (v *gameScreen) OnActivate() {
	v.match.Resume()
}

func (v *gameScreen) OnResize(width, height int) {
	v.view = NewViewport(v.match.Court(), 0, 1, width, height-1)
}

func (v *gameScreen) OnDestroy() {
	score := v.match.Score()
	v.s.ctx.Logger.Debug("match discarded", "player", score.Player, "computer", score.Computer)
}

func (v *gameScreen) HandleKey(k core.Key) {
	switch k {
	case core.KeyPause, core.KeyBack:
		v.s.Navigate(newPauseScreen(v.s, v), screens.Preserve)
	}
}

func (v *gameScreen) HandlePointer(col, row int, down bool) {
	if !down {
		v.s.input.ClearPointer()
		return
	}
	if p, ok := v.view.CourtPoint(col, row); ok {
		v.s.input.SetPointer(p)
	}
}

func (v *gameScreen) Tick(dt float64) {
	for _, e := range v.match.Tick(dt, v.s.input) {
		v.s.ctx.PlayEvent(e)
		if e.Kind == game.EventGameOver {
			v.s.ctx.SaveMatch(v.match)
			v.s.Navigate(newGameOverScreen(v.s, v), screens.Preserve)
		}
	}
}

// Restart begins a new game in place.
func (v *gameScreen) Restart() {
	v.match.NewGame()
}

// Match returns the running match.
func (v *gameScreen) Match() *game.Match {
	return v.match
}

// draw renders the court without converting it to a string, so overlays
// can be drawn on top.
func (v *gameScreen) draw(c *core.Canvas) {
	p := v.s.ctx.Assets
	c.Clear()

	FillTexture(c, p.MustTexture("background"), v.view.Left, v.view.Top, v.view.Cols, v.view.Rows)

	line := p.MustTexture("line")
	c.DrawVLine(v.view.Left+v.view.Cols/2, v.view.Top, v.view.Rows, line.Glyph, line.Color)

	paddle := p.MustTexture("paddle")
	for _, pd := range []*game.Paddle{v.match.Computer(), v.match.Player()} {
		x, y, w, h := v.view.CellRect(pd.Bounds())
		FillTexture(c, paddle, x, y, w, h)
	}

	ball := p.MustTexture("ball")
	bx, by, bw, bh := v.view.CellRect(v.match.Ball().Bounds())
	FillTexture(c, ball, bx, by, bw, bh)

	score := v.match.Score()
	hud := p.FontOf(fontBody)
	c.DrawText(1, 0, fmt.Sprintf("Computer %d", score.Computer), hud.Color)
	right := fmt.Sprintf("%d Player", score.Player)
	c.DrawText(c.Width()-len(right)-1, 0, right, hud.Color)
	c.DrawTextCentered(0, fmt.Sprintf("%s · first to %d", v.match.Difficulty(), score.Winning), core.ColorDim)
}

func (v *gameScreen) Render(c *core.Canvas) string {
	v.draw(c)
	return RenderCanvas(c)
}

func (v *gameScreen) Help() []key.Binding {
	k := v.s.keys
	return []key.Binding{k.Up, k.Down, k.Pause, k.Quit}
}
