package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("Set(0,0) left the cell empty")
	}

	// Sub-pixel (3, 5) lands in cell (1, 1).
	c.Set(3, 5)
	if c.Grid[1][1] == 0x2800 {
		t.Error("Set(3,5) did not light cell (1,1)")
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)

	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 0)
	c.Set(0, 100)

	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatal("out-of-range Set modified the canvas")
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.DrawLine(0, 0, 5, 11)
	c.Clear()

	if strings.ContainsFunc(c.String(), func(r rune) bool {
		return r != 0x2800 && r != '\n'
	}) {
		t.Error("Clear left dots on the canvas")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	if c.Grid[0][0]&rune(pixelMap[0][0]) == 0 {
		t.Error("line start not set")
	}
	if c.Grid[9][9]&rune(pixelMap[3][1]) == 0 {
		t.Error("line end not set")
	}
}

func TestDot(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Dot(0, 0)

	// 2x2 block stays within one cell here.
	want := rune(pixelMap[0][0] | pixelMap[0][1] | pixelMap[1][0] | pixelMap[1][1])
	if c.Grid[0][0] != 0x2800|want {
		t.Errorf("Dot lit %x, want %x", c.Grid[0][0], 0x2800|want)
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("line %q has %d cells, want 3", line, len([]rune(line)))
		}
	}
}
