package core

import (
	"strings"
)

// Cell is a single character position on a Canvas.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Canvas is a 2D character buffer that screens draw into.
// It decouples drawing from the terminal: screens place runes and colors,
// the platform turns the buffer into styled output.
// Canvas rows grow downwards, unlike the y-up court.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a new canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.allocate()
	c.Clear()
	return c
}

// allocate creates the underlying cell storage.
func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions, discarding content.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = max(width, 0)
	c.height = max(height, 0)
	c.allocate()
	c.Clear()
}

// Clear fills the entire canvas with uncolored spaces.
func (c *Canvas) Clear() {
	c.Fill(' ', ColorDefault)
}

// Fill fills the entire canvas with the given rune and color.
func (c *Canvas) Fill(r rune, color Color) {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: r, Color: color}
		}
	}
}

// Set places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (c *Canvas) GetCell(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return blankCell
	}
	return c.cells[y][x]
}

// Get returns the rune at the given position.
func (c *Canvas) Get(x, y int) rune {
	return c.GetCell(x, y).Rune
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond canvas bounds are clipped.
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, color)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (c *Canvas) DrawTextCentered(y int, text string, color Color) {
	x := (c.width - len([]rune(text))) / 2
	c.DrawText(x, y, text, color)
}

// FillRect fills a rectangular area of cells.
func (c *Canvas) FillRect(x, y, w, h int, fill rune, color Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.Set(col, row, fill, color)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (c *Canvas) DrawBox(x, y, w, h int, color Color) {
	right := x + w - 1
	bottom := y + h - 1

	c.Set(x, y, '┌', color)
	c.Set(right, y, '┐', color)
	c.Set(x, bottom, '└', color)
	c.Set(right, bottom, '┘', color)

	for col := x + 1; col < right; col++ {
		c.Set(col, y, '─', color)
		c.Set(col, bottom, '─', color)
	}
	for row := y + 1; row < bottom; row++ {
		c.Set(x, row, '│', color)
		c.Set(right, row, '│', color)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (c *Canvas) DrawVLine(x, y, length int, r rune, color Color) {
	for i := 0; i < length; i++ {
		c.Set(x, y+i, r, color)
	}
}

// String converts the canvas to plain text without colors.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}
