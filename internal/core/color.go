package core

import "fmt"

// Color represents a palette foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for HUD and overlay elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)

// RGB is a 24-bit color. The ball and its particles carry arbitrary RGB colors.
type RGB struct {
	R, G, B uint8
}

// Red is the ball color at the start of every session.
var Red = RGB{R: 255}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Fade blends the color towards black by alpha in [0, 1].
// Terminals have no per-cell alpha, so particles fade by darkening.
func (c RGB) Fade(alpha float64) RGB {
	alpha = ClampF(alpha, 0, 1)
	return RGB{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
	}
}

// ParseHex parses "#rrggbb". It returns false on malformed input.
func ParseHex(s string) (RGB, bool) {
	var c RGB
	if len(s) != 7 || s[0] != '#' {
		return c, false
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, false
	}
	return c, true
}

// MarshalText encodes the color as "#rrggbb" so snapshots carry readable colors.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes "#rrggbb".
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, ok := ParseHex(string(text))
	if !ok {
		return fmt.Errorf("core: invalid color %q", text)
	}
	*c = parsed
	return nil
}
