package tui

import (
	"fmt"

	"github.com/vovakirdan/blueprint-pong/internal/assets"
	"github.com/vovakirdan/blueprint-pong/internal/core"
)

// Nominal font sizes.
const (
	fontTitle    = 48
	fontSubtitle = 24
	fontBody     = 12
)

// menuItem is one selectable row. label is called on every draw so rows can
// show live values.
type menuItem struct {
	label  func() string
	action func()
}

func item(text string, action func()) menuItem {
	return menuItem{label: func() string { return text }, action: action}
}

// menuList is a vertical list of buttons with a cursor.
type menuList struct {
	items  []menuItem
	cursor int
}

func (m *menuList) reset() {
	m.cursor = 0
}

func (m *menuList) move(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// handleKey moves the cursor or activates the selection. It reports whether
// the key was used.
func (m *menuList) handleKey(k core.Key) bool {
	switch k {
	case core.KeyUp:
		m.move(-1)
	case core.KeyDown:
		m.move(1)
	case core.KeyConfirm:
		if len(m.items) > 0 && m.items[m.cursor].action != nil {
			m.items[m.cursor].action()
		}
	default:
		return false
	}
	return true
}

// draw renders the buttons starting at row y, one blank row apart.
func (m *menuList) draw(c *core.Canvas, p *assets.Provider, y int) {
	up := p.MustTexture("button-up")
	down := p.MustTexture("button-down")
	for i, it := range m.items {
		tex, color := up, up.Color
		if i == m.cursor {
			tex, color = down, down.Color
		}
		label := fmt.Sprintf("%c %s %c", tex.Glyph, it.label(), tex.Glyph)
		c.DrawTextCentered(y+i*2, label, color)
	}
}

// height returns the rows the list occupies.
func (m *menuList) height() int {
	return max(len(m.items)*2-1, 0)
}

// drawBackdrop fills the canvas with a texture.
func drawBackdrop(c *core.Canvas, tex assets.Texture) {
	c.Clear()
	FillTexture(c, tex, 0, 0, c.Width(), c.Height())
}

// drawMenuPage draws a titled menu centered on the blueprint background.
func drawMenuPage(c *core.Canvas, p *assets.Provider, title string, m *menuList) {
	drawBackdrop(c, p.MustTexture("background"))
	top := max((c.Height()-m.height()-4)/2, 0)
	DrawTextFont(c, top, title, p.FontOf(fontSubtitle))
	m.draw(c, p, top+3)
}

// drawPanel draws a framed box over the middle of the canvas and clears
// its inside. It returns the first inner row.
func drawPanel(c *core.Canvas, innerW, innerH int) int {
	w := min(innerW+4, c.Width())
	h := min(innerH+2, c.Height())
	x := (c.Width() - w) / 2
	y := (c.Height() - h) / 2
	c.FillRect(x, y, w, h, ' ', core.ColorDefault)
	c.DrawBox(x, y, w, h, core.ColorAccent)
	return y + 1
}
