package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale() = %v, expected (1.5, 2)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", V(10, 10), V(10, 10), 0},
		{"horizontal", V(0, 0), V(60, 0), 60},
		{"pythagorean", V(0, 0), V(36, 48), 60},
		{"negative coordinates", V(-3, -4), V(0, 0), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Dist(tc.a, tc.b); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Dist() = %f, expected %f", got, tc.expected)
			}
			if got := Dist(tc.b, tc.a); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Dist() (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{3, 60, 40, 50}, // inverted range collapses to midpoint
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestRGBHex(t *testing.T) {
	c := RGB{R: 255, G: 16, B: 0}
	if c.Hex() != "#ff1000" {
		t.Errorf("Hex() = %q, expected #ff1000", c.Hex())
	}

	parsed, ok := ParseHex(c.Hex())
	if !ok || parsed != c {
		t.Errorf("ParseHex(%q) = %v, %v", c.Hex(), parsed, ok)
	}

	if _, ok := ParseHex("red"); ok {
		t.Error("ParseHex should reject non-hex input")
	}
}

func TestRGBFade(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}
	if got := c.Fade(1); got != c {
		t.Errorf("Fade(1) = %v, expected unchanged", got)
	}
	if got := c.Fade(0); got != (RGB{}) {
		t.Errorf("Fade(0) = %v, expected black", got)
	}
	if got := c.Fade(0.5); got != (RGB{R: 100, G: 50, B: 25}) {
		t.Errorf("Fade(0.5) = %v", got)
	}
}
