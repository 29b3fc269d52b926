package tapball

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tapball/internal/core"
)

func TestViewportRoundTrip(t *testing.T) {
	sizes := []struct{ w, h int }{{80, 24}, {120, 40}, {40, 60}, {3, 4}}

	for _, sz := range sizes {
		vp := LayoutViewport(core.V(1080, 1920), sz.w, sz.h)
		if vp.Area.W < 1 || vp.Area.H < 1 {
			t.Fatalf("%dx%d: empty play area %+v", sz.w, sz.h, vp.Area)
		}
		if vp.Area.X < 0 || vp.Area.Right() > sz.w || vp.Area.Y < 0 || vp.Area.Bottom() > sz.h {
			t.Errorf("%dx%d: play area %+v exceeds the screen", sz.w, sz.h, vp.Area)
		}

		for row := vp.Area.Y; row < vp.Area.Bottom(); row++ {
			for col := vp.Area.X; col < vp.Area.Right(); col++ {
				p := vp.CellToCanvas(col, row)
				if c, r := vp.CanvasToCell(p); c != col || r != row {
					t.Fatalf("%dx%d: cell (%d,%d) -> %+v -> (%d,%d)", sz.w, sz.h, col, row, p, c, r)
				}
			}
		}
	}
}

func TestViewportKeepsAspect(t *testing.T) {
	vp := LayoutViewport(core.V(1080, 1920), 80, 24)

	// Cells are twice as tall as wide, so a portrait canvas is narrower than it is tall
	ratio := float64(vp.Area.W) / (float64(vp.Area.H) * CellAspect)
	if ratio < 0.5 || ratio > 0.65 {
		t.Errorf("play area %dx%d has ratio %.2f, expected about 1080/1920", vp.Area.W, vp.Area.H, ratio)
	}
}

func TestRenderStartScreen(t *testing.T) {
	g := newTestGame(t, MotionBounce)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	for _, want := range []string{"TAP THE BALL", "High Score: 0", "< Medium >", "Score: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("start screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderActiveAndTapByCell(t *testing.T) {
	g := newTestGame(t, MotionBounce)
	g.Start()
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if strings.Contains(scr.String(), "TAP THE BALL") {
		t.Error("start panel should be hidden while playing")
	}

	col, row := g.Viewport().CanvasToCell(g.ball.Pos)
	cell := scr.GetCell(col, row)
	if cell.Rune != BallChar || !cell.TrueColor || cell.RGB != core.Red {
		t.Errorf("ball cell = %+v, expected a red %q", cell, BallChar)
	}

	if got := g.Tap(col, row); got != core.TapBall {
		t.Errorf("Tap(%d, %d) = %s, expected ball", col, row, got)
	}
	if got := g.Tap(g.Viewport().Area.Right()-1, g.Viewport().Area.Bottom()-1); got != core.TapMiss {
		t.Errorf("tap in the far corner = %s, expected miss", got)
	}
}

func TestRenderParticlesAndPowerUp(t *testing.T) {
	g := newTestGame(t, MotionBounce)
	g.Start()
	g.powerUp.Pos = core.V(540, 1500)
	g.powerUp.Active = true
	g.HandleTap(g.ball.Pos)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	if !strings.ContainsRune(out, PowerUpChar) {
		t.Error("visible power-up should be drawn")
	}
	if !strings.ContainsRune(out, ParticleChar) {
		t.Error("particles should be drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, MotionBounce)
	g.Start()
	g.HandleTap(g.ball.Pos)
	g.End()

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"GAME OVER", "Final Score: 1", "New high score!"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSnapshotTinyScreen(t *testing.T) {
	g := newTestGame(t, MotionBounce)
	g.Start()

	// Must not panic on screens smaller than the HUD
	for _, sz := range []struct{ w, h int }{{1, 1}, {5, 3}, {0, 0}} {
		RenderSnapshot(g.Snapshot(), core.NewScreen(sz.w, sz.h))
	}
}
