package gui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tapball/internal/core"
	"github.com/vovakirdan/tapball/internal/games/tapball"
)

const (
	titleFontSize = 64
	hudScale      = 4 // basicfont glyphs are 7x13 pixels
	margin        = 24
)

var (
	background = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	powerUpCol = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	panelCol   = color.RGBA{A: 200}
	hudCol     = color.White
	warnCol    = color.RGBA{R: 255, G: 80, B: 80, A: 255}
)

// faces are the two fonts of the window: an arcade face for titles
// and the bitmap face for the HUD.
type faces struct {
	title *text.GoTextFace
	hud   *text.GoXFace
}

func loadFaces() (faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return faces{}, fmt.Errorf("gui: cannot load font: %w", err)
	}
	return faces{
		title: &text.GoTextFace{Source: src, Size: titleFontSize},
		hud:   text.NewGoXFace(basicfont.Face7x13),
	}, nil
}

func rgba(c core.RGB, alpha float64) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(core.ClampF(alpha, 0, 1) * 255)}
}

// drawSnapshot renders one frame from the snapshot only.
func drawSnapshot(screen *ebiten.Image, snap tapball.Snapshot, f faces) {
	screen.Fill(background)

	for _, p := range snap.Particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), rgba(p.Color, p.Alpha), true)
	}

	if snap.PowerUp.Active {
		vector.StrokeCircle(screen, float32(snap.PowerUp.X), float32(snap.PowerUp.Y),
			float32(snap.PowerUp.Radius), 6, powerUpCol, true)
	}

	vector.DrawFilledCircle(screen, float32(snap.Ball.X), float32(snap.Ball.Y),
		float32(snap.Ball.Radius), rgba(snap.Ball.Color, 1), true)

	drawHUD(screen, snap, f)

	switch snap.Phase() {
	case tapball.PhaseNotStarted:
		drawPanel(screen, snap, f,
			"TAP THE BALL",
			fmt.Sprintf("High Score: %d", snap.Session.HighScore),
			fmt.Sprintf("< %s >", snap.Session.Difficulty),
			"Tap or press Enter to start",
		)
	case tapball.PhaseEnded:
		best := fmt.Sprintf("High Score: %d", snap.Session.HighScore)
		if snap.Session.NewHighScore {
			best = "New high score!"
		}
		drawPanel(screen, snap, f,
			"GAME OVER",
			fmt.Sprintf("Final Score: %d", snap.Session.Score),
			best,
			"Tap to play again",
		)
	}
}

func drawHUD(screen *ebiten.Image, snap tapball.Snapshot, f faces) {
	left := fmt.Sprintf("Score: %d  Best: %d", snap.Session.Score, snap.Session.HighScore)
	drawText(screen, f.hud, left, margin, margin, hudScale, text.AlignStart, hudCol)

	timeCol := color.Color(hudCol)
	if snap.Phase() == tapball.PhaseActive && snap.Session.Remaining <= 5 {
		timeCol = warnCol
	}
	right := fmt.Sprintf("%s  Time: %d", snap.Session.Difficulty, snap.Session.Remaining)
	drawText(screen, f.hud, right, snap.Canvas.Width-margin, margin, hudScale, text.AlignEnd, timeCol)
}

// drawPanel draws a centered dark box with a title line and smaller lines under it.
func drawPanel(screen *ebiten.Image, snap tapball.Snapshot, f faces, title string, lines ...string) {
	w, h := snap.Canvas.Width, snap.Canvas.Height
	lineH := float64(13 * hudScale * 3 / 2)
	boxH := titleFontSize*2 + lineH*float64(len(lines)) + margin*2
	top := (h - boxH) / 2

	vector.DrawFilledRect(screen, float32(margin*2), float32(top), float32(w-margin*4), float32(boxH), panelCol, false)

	y := top + margin
	drawText(screen, f.title, title, w/2, y, 1, text.AlignCenter, hudCol)
	y += titleFontSize * 2
	for _, line := range lines {
		drawText(screen, f.hud, line, w/2, y, hudScale, text.AlignCenter, hudCol)
		y += lineH
	}
}

// drawText draws s at (x, y) in canvas units; scale enlarges bitmap faces.
func drawText(screen *ebiten.Image, face text.Face, s string, x, y, scale float64, align text.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}
