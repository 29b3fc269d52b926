package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
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

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 1)

	s.SetColor(0, 0, 'a', ColorYellow)
	s.SetRGB(1, 0, 'b', RGB{R: 1, G: 2, B: 3})

	c0 := s.GetCell(0, 0)
	if c0.Color != ColorYellow || c0.TrueColor {
		t.Errorf("palette cell = %+v", c0)
	}

	c1 := s.GetCell(1, 0)
	if !c1.TrueColor || c1.RGB != (RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("true-color cell = %+v", c1)
	}

	s.Clear()
	if s.GetCell(1, 0).TrueColor {
		t.Error("Clear should reset cell colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "Hello")
	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)

	s.DrawText(0, 0, "◎x")
	if s.Get(0, 0) != '◎' || s.Get(1, 0) != 'x' {
		t.Errorf("multibyte runes should occupy one cell each, got %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("DrawBox corners wrong:\n%s", s.String())
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Errorf("DrawBox edges wrong:\n%s", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'X')

	s.Resize(20, 15)
	if s.Width() != 20 || s.Height() != 15 {
		t.Errorf("Resize failed: got %dx%d, expected 20x15", s.Width(), s.Height())
	}
	if s.Get(2, 2) != ' ' {
		t.Error("Resize should clear the buffer")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "A  " || lines[1] != "  B" {
		t.Errorf("String() = %q", s.String())
	}
	if s.Row(1) != "  B" {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}
