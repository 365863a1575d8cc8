package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("cell = %#x, want %#x", c.Grid[0][0], 0x2801)
	}
	c.Set(3, 7)
	if c.Grid[1][1] != 0x2800|0x80 {
		t.Errorf("cell = %#x, want %#x", c.Grid[1][1], 0x2800|0x80)
	}

	// Out-of-range coordinates are ignored.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)

	c.Clear()
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatalf("clear left cell %#x", cell)
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)
	for i := 0; i < 8; i++ {
		col, row := i/2, i/4
		if c.Grid[row][col] == 0x2800 {
			t.Errorf("diagonal left cell (%d,%d) empty", row, col)
		}
	}
}

func TestCanvasDrawRect(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawRect(0, 0, 7, 7)
	for _, p := range [][2]int{{0, 0}, {7, 0}, {7, 7}, {0, 7}} {
		col, row := p[0]/2, p[1]/4
		if c.Grid[row][col] == 0x2800 {
			t.Errorf("rect corner (%d,%d) not drawn", p[0], p[1])
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("line %q has %d runes, want 3", line, len([]rune(line)))
		}
	}
}

func TestCanvasCircle(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawCircle(4, 4, 0)
	if c.Grid[1][2] == 0x2800 {
		t.Error("zero-radius circle must set its center dot")
	}

	c.Clear()
	c.FillCircle(4, 4, 2)
	if c.Grid[1][2] == 0x2800 {
		t.Error("filled circle must cover its center")
	}
}
