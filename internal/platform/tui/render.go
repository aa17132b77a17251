package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blueprint-pong/internal/assets"
	"github.com/vovakirdan/blueprint-pong/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorBlueprint: lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
	core.ColorChalk:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorAccent:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
}

// RenderCanvas converts a Canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderCanvas(c *core.Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			startColor := c.GetCell(x, y).Color

			var run strings.Builder
			for x < c.Width() {
				cell := c.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Viewport maps court units (y up, origin bottom-left) onto a block of
// canvas cells (y down).
type Viewport struct {
	Court core.Size
	Left  int // first canvas column
	Top   int // first canvas row
	Cols  int
	Rows  int
}

// NewViewport fits the court into a canvas region.
func NewViewport(court core.Size, left, top, cols, rows int) Viewport {
	return Viewport{Court: court, Left: left, Top: top, Cols: max(cols, 1), Rows: max(rows, 1)}
}

func (v Viewport) scaleX() float64 { return float64(v.Cols) / v.Court.W }
func (v Viewport) scaleY() float64 { return float64(v.Rows) / v.Court.H }

// CellRect returns the canvas cells covered by a court rectangle.
// Every non-empty rectangle covers at least one cell.
func (v Viewport) CellRect(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X * v.scaleX()))
	x1 := int(math.Ceil(r.Right()*v.scaleX())) - 1
	y0 := int(math.Floor((v.Court.H - r.Top()) * v.scaleY()))
	y1 := int(math.Ceil((v.Court.H-r.Y)*v.scaleY())) - 1

	x0 = core.Clamp(x0, 0, v.Cols-1)
	x1 = core.Clamp(max(x1, x0), 0, v.Cols-1)
	y0 = core.Clamp(y0, 0, v.Rows-1)
	y1 = core.Clamp(max(y1, y0), 0, v.Rows-1)
	return v.Left + x0, v.Top + y0, x1 - x0 + 1, y1 - y0 + 1
}

// CourtPoint converts a canvas cell to the court position at its center.
// ok is false when the cell lies outside the viewport.
func (v Viewport) CourtPoint(col, row int) (core.Vec, bool) {
	cx, cy := col-v.Left, row-v.Top
	if cx < 0 || cy < 0 || cx >= v.Cols || cy >= v.Rows {
		return core.Vec{}, false
	}
	return core.Vec{
		X: (float64(cx) + 0.5) / v.scaleX(),
		Y: v.Court.H - (float64(cy)+0.5)/v.scaleY(),
	}, true
}

// FillTexture tiles a texture over a rectangle of cells.
func FillTexture(c *core.Canvas, t assets.Texture, x, y, w, h int) {
	c.FillRect(x, y, w, h, t.Glyph, t.Color)
}

// DrawTextFont draws centered text in a font.
func DrawTextFont(c *core.Canvas, y int, text string, f assets.Font) {
	c.DrawTextCentered(y, f.Apply(text), f.Color)
}
