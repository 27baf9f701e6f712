package moss

import "math"

// viewportMargin shrinks the letterboxed viewport slightly so the outermost
// overlay lines are never clipped by the window edge (about one pixel at
// typical window sizes).
const viewportMargin = 0.999

// Transform is the aspect-correct mapping between window pixel space and
// grid cell space. The grid image is letterboxed: scaled to the largest
// aspect-preserving rectangle that fits the window, centered, with a small
// margin. Recompute with NewTransform on every window resize.
//
// The zero value is unusable; always construct via NewTransform.
type Transform struct {
	gridW, gridH int

	// Normalized half-extents of the viewport, in (0, 1]. Kept for
	// renderers that address the window in normalized device coordinates.
	extX, extY float64

	viewport Rect
	cellW    float64 // pixels per cell, horizontal
	cellH    float64 // pixels per cell, vertical
}

// NewTransform computes the transform for a grid of gridW×gridH cells shown
// in a window of winW×winH pixels. All dimensions must be positive; resize
// events reporting a zero-sized (minimized) window should be ignored by the
// caller rather than passed here.
func NewTransform(winW, winH, gridW, gridH int) Transform {
	gridAspect := float64(gridW) / float64(gridH)
	winAspect := float64(winW) / float64(winH)

	var extX, extY float64
	if winAspect > gridAspect {
		extX, extY = gridAspect/winAspect, 1
	} else {
		extX, extY = 1, winAspect/gridAspect
	}
	extX *= viewportMargin
	extY *= viewportMargin

	w := float64(winW)
	h := float64(winH)
	x0 := w * (1 - extX) / 2
	y0 := h * (1 - extY) / 2
	x1 := w - x0
	y1 := h - y0

	return Transform{
		gridW:    gridW,
		gridH:    gridH,
		extX:     extX,
		extY:     extY,
		viewport: Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0},
		cellW:    (x1 - x0) / float64(gridW),
		cellH:    (y1 - y0) / float64(gridH),
	}
}

// GridSize returns the grid dimensions the transform was built for.
func (t Transform) GridSize() (w, h int) { return t.gridW, t.gridH }

// Viewport returns the letterboxed rectangle the grid occupies, in window
// pixels.
func (t Transform) Viewport() Rect { return t.viewport }

// CellSize returns the size of one grid cell in window pixels.
func (t Transform) CellSize() (w, h float64) { return t.cellW, t.cellH }

// Extents returns the normalized half-extents of the viewport, in (0, 1].
// A renderer mapping the window to [-1, 1] normalized device coordinates
// places the image quad at ±Extents.
func (t Transform) Extents() (x, y float64) { return t.extX, t.extY }

// Map converts a window pixel position to the grid cell underneath it.
// It returns ok=false when the position is outside the letterboxed viewport
// or, due to rounding at the far edges, beyond the last cell.
func (t Transform) Map(px, py float64) (Cell, bool) {
	dx := px - t.viewport.X
	dy := py - t.viewport.Y
	if dx < 0 || dy < 0 {
		return Cell{}, false
	}
	x := int(math.Floor(dx / t.cellW))
	y := int(math.Floor(dy / t.cellH))
	if x >= t.gridW || y >= t.gridH {
		return Cell{}, false
	}
	return Cell{X: x, Y: y}, true
}
