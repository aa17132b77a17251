package core

import (
	"strings"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(80, 24)

	if c.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", c.Width())
	}
	if c.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", c.Height())
	}

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Get(x, y) != ' ' {
				t.Fatalf("New canvas should be filled with spaces, got %q at (%d, %d)", c.Get(x, y), x, y)
			}
		}
	}
}

func TestCanvasSetGetCell(t *testing.T) {
	c := NewCanvas(10, 10)

	c.Set(5, 5, 'X', ColorAccent)
	cell := c.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorAccent {
		t.Errorf("GetCell(5, 5) = %+v, expected X/accent", cell)
	}

	// Out of bounds should be silent
	c.Set(-1, 0, 'A', ColorDefault)
	c.Set(100, 0, 'A', ColorDefault)
	c.Set(0, -1, 'A', ColorDefault)
	c.Set(0, 100, 'A', ColorDefault)

	if c.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(20, 5)
	c.DrawText(2, 1, "Hello", ColorChalk)

	for i, ch := range "Hello" {
		if c.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, c.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	c.DrawText(18, 0, "Hello", ColorChalk)
	if c.Get(18, 0) != 'H' || c.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestCanvasDrawTextCentered(t *testing.T) {
	c := NewCanvas(20, 5)
	c.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if c.Get(x, 2) != 'H' || c.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", c.Row(2))
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillRect(2, 2, 3, 3, '#', ColorBlueprint)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c.Get(x, y) != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d), got %q", x, y, c.Get(x, y))
			}
		}
	}
	if c.Get(1, 1) != ' ' || c.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestCanvasDrawBox(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawBox(1, 1, 5, 4, ColorDefault)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, tc := range corners {
		if c.Get(tc.x, tc.y) != tc.r {
			t.Errorf("corner at (%d, %d) = %q, expected %q", tc.x, tc.y, c.Get(tc.x, tc.y), tc.r)
		}
	}
	for x := 2; x < 5; x++ {
		if c.Get(x, 1) != '─' || c.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if c.Get(1, y) != '│' || c.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(5, 3)
	c.DrawText(0, 0, "AAAAA", ColorDefault)
	c.DrawText(0, 1, "BBBBB", ColorDefault)
	c.DrawText(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if c.String() != expected {
		t.Errorf("String() = %q, expected %q", c.String(), expected)
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawText(0, 0, "Hello", ColorDefault)

	c.Resize(8, 4)
	if c.Width() != 8 || c.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", c.Width(), c.Height())
	}
	if strings.TrimSpace(c.Row(0)) != "" {
		t.Errorf("Resize should clear the canvas, row 0 = %q", c.Row(0))
	}
}

func TestCanvasRowOutOfBounds(t *testing.T) {
	c := NewCanvas(10, 5)
	if c.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", c.Row(-1))
	}
}
