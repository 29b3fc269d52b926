package tapball

import (
	"math"

	"github.com/vovakirdan/tapball/internal/core"
)

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// Viewport maps the canvas onto a rectangle of terminal cells.
// The canvas aspect ratio is preserved, so the play area may be letterboxed.
type Viewport struct {
	Canvas core.Vec2
	Area   core.Rect // Play area in screen cells
	ScaleX float64   // Cells per canvas unit
	ScaleY float64
}

// NewViewport fits the canvas into the given cell rectangle.
func NewViewport(canvas core.Vec2, avail core.Rect) Viewport {
	if canvas.X <= 0 || canvas.Y <= 0 || avail.W <= 0 || avail.H <= 0 {
		return Viewport{Canvas: canvas, Area: avail, ScaleX: 1, ScaleY: 1}
	}

	scale := math.Min(float64(avail.W)/canvas.X, float64(avail.H)*CellAspect/canvas.Y)
	cols := core.Clamp(int(math.Round(canvas.X*scale)), 1, avail.W)
	rows := core.Clamp(int(math.Round(canvas.Y*scale/CellAspect)), 1, avail.H)

	return Viewport{
		Canvas: canvas,
		Area:   core.NewRect(avail.X+(avail.W-cols)/2, avail.Y+(avail.H-rows)/2, cols, rows),
		ScaleX: float64(cols) / canvas.X,
		ScaleY: float64(rows) / canvas.Y,
	}
}

// LayoutViewport reserves the HUD row and a one-cell border on a screen of w x h cells.
func LayoutViewport(canvas core.Vec2, w, h int) Viewport {
	avail := core.NewRect(1, 2, w-2, h-3)
	if avail.W < 1 || avail.H < 1 {
		avail = core.NewRect(0, 0, w, h)
	}
	return NewViewport(canvas, avail)
}

// CanvasToCell returns the cell containing p. The result may lie outside Area.
func (v Viewport) CanvasToCell(p core.Vec2) (col, row int) {
	col = v.Area.X + int(math.Floor(p.X*v.ScaleX))
	row = v.Area.Y + int(math.Floor(p.Y*v.ScaleY))
	return col, row
}

// CellToCanvas returns the canvas point at the center of a cell.
func (v Viewport) CellToCanvas(col, row int) core.Vec2 {
	return core.V(
		(float64(col-v.Area.X)+0.5)/v.ScaleX,
		(float64(row-v.Area.Y)+0.5)/v.ScaleY,
	)
}

// Contains reports whether a cell belongs to the play area.
func (v Viewport) Contains(col, row int) bool {
	return v.Area.Contains(col, row)
}
