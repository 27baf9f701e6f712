package moss

// Overlay grid geometry: the grid lines drawn over the simulation image are
// modeled as thin filled rectangles ("bars"), two triangles each, so they
// render crisply at any scale through an ordinary triangle pipeline. The
// geometry lives in window pixel space and stays aligned with the Transform
// that produced it; rebuild it whenever the transform changes.

// halfBarThickness is the half-width (vertical bars) or half-height
// (horizontal bars) of one grid line, in window pixels.
const halfBarThickness = 0.5

// Strength values distinguishing the viewport border from interior cell lines.
// The renderer scales line opacity by strength.
const (
	strengthBorder   = 1.0
	strengthInterior = 0.5
)

// borderIndexCount is the number of indices covering the four border bars.
// A renderer that has the overlay disabled draws only this prefix of the
// index buffer; enabling the overlay extends the draw range to the full
// buffer. No geometry is regenerated either way.
const borderIndexCount = 6 * 4

// LineVertex is one corner of an overlay bar: a window-pixel position plus
// the bar's strength weight.
type LineVertex struct {
	X, Y     float32
	Strength float32
}

// Overlay holds the grid-line vertex and index buffers for one grid size.
// For a gridW×gridH grid there are gridW+gridH+2 bars: the four viewport
// border lines first (strength 1.0), then the interior vertical and
// horizontal cell lines (strength 0.5). Each bar contributes four vertices
// and six indices in the fixed pattern [i, i+1, i+2, i+2, i+1, i+3].
type Overlay struct {
	gridW, gridH int
	vertices     []LineVertex
	indices      []uint16
}

// NewOverlay allocates the overlay geometry for the grid described by t and
// positions it for t's viewport. The index buffer is deterministic for a
// grid size and never changes afterward; only vertex positions move on
// Rebuild. Grid dimensions must satisfy (gridW+gridH+2)*4 <= 65536 so bars
// remain addressable by 16-bit indices.
func NewOverlay(t Transform) *Overlay {
	gridW, gridH := t.GridSize()
	bars := gridW + gridH + 2
	if bars*4 > 1<<16 {
		panic("moss: grid too large for overlay index buffer")
	}

	o := &Overlay{
		gridW:    gridW,
		gridH:    gridH,
		vertices: make([]LineVertex, bars*4),
		indices:  make([]uint16, bars*6),
	}
	for bar := 0; bar < bars; bar++ {
		v := uint16(bar * 4)
		i := bar * 6
		o.indices[i+0] = v
		o.indices[i+1] = v + 1
		o.indices[i+2] = v + 2
		o.indices[i+3] = v + 2
		o.indices[i+4] = v + 1
		o.indices[i+5] = v + 3
	}
	o.Rebuild(t)
	return o
}

// Rebuild repositions every bar for the viewport described by t. The
// transform must have been built for the same grid size the overlay was.
func (o *Overlay) Rebuild(t Transform) {
	gw, gh := t.GridSize()
	if gw != o.gridW || gh != o.gridH {
		panic("moss: overlay rebuilt with a transform for a different grid")
	}

	vp := t.Viewport()
	x0 := float32(vp.X)
	y0 := float32(vp.Y)
	x1 := float32(vp.X + vp.Width)
	y1 := float32(vp.Y + vp.Height)

	w := float32(o.gridW)
	h := float32(o.gridH)

	vertical := func(bar, col int, strength float32) {
		p := float32(col) / w
		lx := x0*(1-p) + x1*p
		o.setBar(bar, lx-halfBarThickness, y0, lx+halfBarThickness, y1, strength)
	}
	horizontal := func(bar, row int, strength float32) {
		p := float32(row) / h
		ly := y0*(1-p) + y1*p
		o.setBar(bar, x0, ly-halfBarThickness, x1, ly+halfBarThickness, strength)
	}

	vertical(0, 0, strengthBorder)
	vertical(1, o.gridW, strengthBorder)
	horizontal(2, 0, strengthBorder)
	horizontal(3, o.gridH, strengthBorder)

	for col := 1; col < o.gridW; col++ {
		vertical(col+3, col, strengthInterior)
	}
	for row := 1; row < o.gridH; row++ {
		horizontal(row+o.gridW+2, row, strengthInterior)
	}
}

// setBar writes the four corners of one bar rectangle: top-left, top-right,
// bottom-left, bottom-right, matching the index pattern.
func (o *Overlay) setBar(bar int, x0, y0, x1, y1, strength float32) {
	i := bar * 4
	o.vertices[i+0] = LineVertex{X: x0, Y: y0, Strength: strength}
	o.vertices[i+1] = LineVertex{X: x1, Y: y0, Strength: strength}
	o.vertices[i+2] = LineVertex{X: x0, Y: y1, Strength: strength}
	o.vertices[i+3] = LineVertex{X: x1, Y: y1, Strength: strength}
}

// Vertices returns the bar corner vertices, four per bar, border bars first.
func (o *Overlay) Vertices() []LineVertex { return o.vertices }

// Indices returns the full triangle index buffer, six indices per bar.
func (o *Overlay) Indices() []uint16 { return o.indices }

// IndexRange returns how many indices to draw: the border-only prefix when
// the overlay is disabled, the whole buffer when enabled.
func (o *Overlay) IndexRange(enabled bool) int {
	if enabled {
		return len(o.indices)
	}
	return borderIndexCount
}
