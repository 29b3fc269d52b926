package tapball

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tapball/internal/core"
)

// Visual characters for rendering
const (
	BallChar     = '█'
	BallDotChar  = '●' // Used when the ball is smaller than a cell
	ParticleChar = '•'
	PowerUpChar  = '◎'
)

// RenderSnapshot draws a snapshot into dst and returns the viewport it used.
// It reads nothing but the snapshot, so spectators render identically.
func RenderSnapshot(snap Snapshot, dst *core.Screen) Viewport {
	dst.Clear()

	canvas := core.V(snap.Canvas.Width, snap.Canvas.Height)
	vp := LayoutViewport(canvas, dst.Width(), dst.Height())

	if vp.Area.X > 0 && vp.Area.Y > 0 {
		dst.DrawBox(core.NewRect(vp.Area.X-1, vp.Area.Y-1, vp.Area.W+2, vp.Area.H+2), core.ColorGray)
	}

	drawBall(dst, vp, snap.Ball)
	if snap.PowerUp.Active {
		col, row := vp.CanvasToCell(core.V(snap.PowerUp.X, snap.PowerUp.Y))
		if vp.Contains(col, row) {
			dst.SetColor(col, row, PowerUpChar, core.ColorBrightYellow)
		}
	}
	for _, p := range snap.Particles {
		col, row := vp.CanvasToCell(core.V(p.X, p.Y))
		if vp.Contains(col, row) {
			dst.SetRGB(col, row, ParticleChar, p.Color.Fade(p.Alpha))
		}
	}

	drawHUD(dst, snap)

	switch snap.Phase() {
	case PhaseNotStarted:
		drawPanel(dst, core.ColorCyan,
			"TAP THE BALL",
			fmt.Sprintf("High Score: %d", snap.Session.HighScore),
			fmt.Sprintf("< %s >", snap.Session.Difficulty),
			"Enter: start  ↑/↓: difficulty",
		)
	case PhaseEnded:
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("Final Score: %d", snap.Session.Score),
		}
		if snap.Session.NewHighScore {
			lines = append(lines, "New high score!")
		} else {
			lines = append(lines, fmt.Sprintf("High Score: %d", snap.Session.HighScore))
		}
		lines = append(lines, "R: play again  Q: quit")
		drawPanel(dst, core.ColorBrightRed, lines...)
	}

	return vp
}

// drawBall fills every cell whose center lies inside the ball.
func drawBall(dst *core.Screen, vp Viewport, b BallView) {
	center := core.V(b.X, b.Y)
	c0, r0 := vp.CanvasToCell(core.V(b.X-b.Radius, b.Y-b.Radius))
	c1, r1 := vp.CanvasToCell(core.V(b.X+b.Radius, b.Y+b.Radius))

	drawn := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !vp.Contains(col, row) {
				continue
			}
			if core.Dist(vp.CellToCanvas(col, row), center) <= b.Radius {
				dst.SetRGB(col, row, BallChar, b.Color)
				drawn = true
			}
		}
	}

	if !drawn {
		col, row := vp.CanvasToCell(center)
		dst.SetRGB(col, row, BallDotChar, b.Color)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf("Score: %d  Best: %d", snap.Session.Score, snap.Session.HighScore)
	dst.DrawTextColor(1, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("%s  Time: %d", snap.Session.Difficulty, snap.Session.Remaining)
	x := dst.Width() - utf8.RuneCountInString(right) - 1
	color := core.ColorBrightWhite
	if snap.Phase() == PhaseActive && snap.Session.Remaining <= 5 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColor(x, 0, right, color)
}

// drawPanel draws a boxed, centered message. The first line is the title.
func drawPanel(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)

	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = color
		}
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawTextColor(x, boxY+1+i*2, l, c)
	}
}
