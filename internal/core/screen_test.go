package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	s.SetCell(4, 2, 'Y', ColorBrightRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'Y' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(4,2) = %+v, want Y/bright red", cell)
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(10, 5)

	// None of these should panic or change anything
	s.Set(-1, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(10, 0, 'A')
	s.Set(0, 5, 'A')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("screen should still be blank")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if row := s.Row(1); row != "  hi      " {
		t.Errorf("Row(1) = %q", row)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "long")
	if got := s.Get(9, 0); got != 'o' {
		t.Errorf("clipped draw: Get(9,0) = %q, want 'o'", got)
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(0, 0, "ab", ColorGreen)
	if c := s.GetCell(1, 0); c.Color != ColorGreen {
		t.Errorf("color = %v, want green", c.Color)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(8, 4)
	s.DrawBox(NewRect(0, 0, 4, 3))

	if s.Get(0, 0) != '┌' || s.Get(3, 0) != '┐' {
		t.Error("top corners missing")
	}
	if s.Get(0, 2) != '└' || s.Get(3, 2) != '┘' {
		t.Error("bottom corners missing")
	}
	if s.Get(1, 0) != '─' || s.Get(0, 1) != '│' {
		t.Error("edges missing")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, 'Z', ColorRed)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, cell = %+v", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.Set(2, 1, 'K')

	s.Resize(10, 5)
	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, want 10x5", s.Width(), s.Height())
	}
	if got := s.Get(2, 1); got != 'K' {
		t.Errorf("content lost on grow: Get(2,1) = %q", got)
	}

	s.Resize(3, 2)
	if got := s.Get(2, 1); got != 'K' {
		t.Errorf("content lost on shrink: Get(2,1) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
