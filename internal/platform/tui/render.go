package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tapball/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// runKey identifies cells that can share one escape sequence.
type runKey struct {
	color     core.Color
	rgb       core.RGB
	trueColor bool
}

func keyOf(c core.Cell) runKey {
	if c.TrueColor {
		return runKey{rgb: c.RGB, trueColor: true}
	}
	return runKey{color: c.Color}
}

func (k runKey) style() lipgloss.Style {
	if k.trueColor {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(k.rgb.Hex()))
	}
	style, ok := colorStyles[k.color]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// True-color cells are downsampled by lipgloss on terminals without 24-bit support.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := keyOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if keyOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(start.style().Render(run.String()))
		}
	}
	return sb.String()
}
