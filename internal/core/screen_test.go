package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	if cell := s.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' || s.Get(0, 100) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorWhite)

	lines := strings.Split(s.String(), "\n")
	expected := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("row %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestScreenDrawTextAndClear(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(2, 1, "15", ColorYellow)

	if s.Get(2, 1) != '1' || s.Get(3, 1) != '5' {
		t.Errorf("DrawText wrote %q%q", s.Get(2, 1), s.Get(3, 1))
	}
	if got := s.String(); got != "          \n  15      " {
		t.Errorf("String() = %q", got)
	}

	s.Clear()
	if s.GetCell(2, 1) != (ScreenCell{Rune: ' '}) {
		t.Error("Clear should reset runes and colors")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if len(f.Clicks) != 0 || f.Quit {
		t.Fatal("new frame should be empty")
	}

	f.Click(Pt(1, 2))
	f.Click(Pt(3, 4))
	f.RequestQuit()

	if len(f.Clicks) != 2 || f.Clicks[0] != Pt(1, 2) || !f.Quit {
		t.Errorf("frame = %+v", f)
	}

	f.Clear()
	if len(f.Clicks) != 0 || f.Quit {
		t.Error("Clear should empty the frame")
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(0) != ColorGray {
		t.Error("empty cell should be gray")
	}
	if TileColor(1) == TileColor(2) {
		t.Error("neighbouring values should get different colors")
	}
	if TileColor(1) != TileColor(1+len(tilePalette)) {
		t.Error("palette should cycle")
	}
}
