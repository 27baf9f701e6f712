package moss

import (
	"math/rand/v2"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// MaxBrushRadius is the upper clamp for the painter's brush radius, in cells.
const MaxBrushRadius = 10

// PaintFunc applies one cell's worth of paint: it should update both the
// wrapped simulation's state for cell (x, y) and the corresponding pixel in
// fb. (x, y) is always inside the grid.
type PaintFunc[Ink any] func(x, y int, ink Ink, fb *Framebuffer)

// PainterConfig describes a Painter's palette and key bindings. Start from
// DefaultPainterConfig for the standard bindings. The zero ebiten.Key is
// ebiten.KeyA, not "unbound", so NewPainter treats zero key fields as
// disabled; a zero-valued config has no palette keys bound but also no fill
// or brush keys.
type PainterConfig[Ink any] struct {
	// Palette maps a key press to the ink it selects. Selecting never
	// paints by itself.
	Palette map[ebiten.Key]Ink

	// Paint applies one cell of ink. When nil, painting (including fills)
	// is disabled and only selection and brush bookkeeping run.
	Paint PaintFunc[Ink]

	// Selected preselects an ink at startup. Nil means no active ink until
	// a palette key is pressed.
	Selected *Ink

	// Rand is the source for FillRandom. Nil uses the shared global source;
	// random fills are then not reproducible across runs.
	Rand *rand.Rand

	KeyFill        ebiten.Key // fill the whole grid with the selected ink
	KeyFillRandom  ebiten.Key // fill each cell with a random palette ink
	KeyBrushExpand ebiten.Key // grow the brush radius by one cell
	KeyBrushShrink ebiten.Key // shrink the brush radius by one cell
}

// DefaultPainterConfig returns a config with the standard key bindings
// (F fill, R random fill, arrow up/down brush sizing) and an empty palette.
func DefaultPainterConfig[Ink any]() PainterConfig[Ink] {
	return PainterConfig[Ink]{
		KeyFill:        ebiten.KeyF,
		KeyFillRandom:  ebiten.KeyR,
		KeyBrushExpand: ebiten.KeyArrowUp,
		KeyBrushShrink: ebiten.KeyArrowDown,
	}
}

// Painter is a Simulation decorator that layers interactive brush painting
// on top of any wrapped simulation. It intercepts input events to select
// inks, size the brush, draw click-drag strokes (with discrete-line
// interpolation between motion events), and run whole-grid fills, then
// delegates every event to the wrapped simulation unchanged. The wrapped
// simulation needs no awareness of painting.
type Painter[Ink any] struct {
	sim Simulation
	cfg PainterConfig[Ink]

	// Palette values in key order, for uniform random fills.
	inks []Ink

	selected    Ink
	hasSelected bool

	prev, cur     Cell
	prevOK, curOK bool

	painting bool
	brush    int
}

// NewPainter wraps sim in a painting decorator configured by cfg.
func NewPainter[Ink any](sim Simulation, cfg PainterConfig[Ink]) *Painter[Ink] {
	p := &Painter[Ink]{sim: sim, cfg: cfg}
	// The zero ebiten.Key is ebiten.KeyA; an unset binding means disabled.
	for _, key := range []*ebiten.Key{
		&p.cfg.KeyFill, &p.cfg.KeyFillRandom, &p.cfg.KeyBrushExpand, &p.cfg.KeyBrushShrink,
	} {
		if *key == 0 {
			*key = KeyNone
		}
	}
	if cfg.Selected != nil {
		p.selected = *cfg.Selected
		p.hasSelected = true
	}

	keys := make([]ebiten.Key, 0, len(cfg.Palette))
	for key := range cfg.Palette {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	p.inks = make([]Ink, len(keys))
	for i, key := range keys {
		p.inks[i] = cfg.Palette[key]
	}
	return p
}

// BrushRadius returns the current brush radius in cells.
func (p *Painter[Ink]) BrushRadius() int { return p.brush }

// SelectedInk returns the active ink, if any.
func (p *Painter[Ink]) SelectedInk() (Ink, bool) { return p.selected, p.hasSelected }

// Init delegates to the wrapped simulation.
func (p *Painter[Ink]) Init() *Framebuffer { return p.sim.Init() }

// Advance delegates to the wrapped simulation.
func (p *Painter[Ink]) Advance(fb *Framebuffer) { p.sim.Advance(fb) }

// HandleKey applies ink selection, brush sizing, and fills, then delegates.
func (p *Painter[Ink]) HandleKey(e KeyEvent, fb *Framebuffer) {
	for key, ink := range p.cfg.Palette {
		if e.IsPressed(key) {
			p.selected = ink
			p.hasSelected = true
		}
	}
	if e.IsPressed(p.cfg.KeyBrushExpand) && p.brush < MaxBrushRadius {
		p.brush++
	}
	if e.IsPressed(p.cfg.KeyBrushShrink) && p.brush > 0 {
		p.brush--
	}
	if p.cfg.Paint != nil {
		if e.IsPressed(p.cfg.KeyFill) && p.hasSelected {
			for y := 0; y < fb.Height(); y++ {
				for x := 0; x < fb.Width(); x++ {
					p.cfg.Paint(x, y, p.selected, fb)
				}
			}
		}
		if e.IsPressed(p.cfg.KeyFillRandom) && len(p.inks) > 0 {
			for y := 0; y < fb.Height(); y++ {
				for x := 0; x < fb.Width(); x++ {
					p.cfg.Paint(x, y, p.randomInk(), fb)
				}
			}
		}
	}

	p.sim.HandleKey(e, fb)
}

// HandleMouse starts or stops the active stroke on the primary button, runs
// a draw pass, then delegates.
func (p *Painter[Ink]) HandleMouse(e MouseEvent, fb *Framebuffer) {
	if e.Button == MouseButtonLeft {
		p.painting = e.Pressed
	}
	p.draw(fb)

	p.sim.HandleMouse(e, fb)
}

// HandleCursor records pointer motion, runs a draw pass, then delegates.
// On the first motion after the pointer enters the grid, the previous
// position snaps to the current one so no spurious line is drawn.
func (p *Painter[Ink]) HandleCursor(cell Cell, onGrid bool, fb *Framebuffer) {
	p.prev, p.prevOK = p.cur, p.curOK
	p.cur, p.curOK = cell, onGrid
	if !p.prevOK {
		p.prev, p.prevOK = p.cur, p.curOK
	}
	p.draw(fb)

	p.sim.HandleCursor(cell, onGrid, fb)
}

// draw paints a discrete line from the previous to the current pointer cell,
// stamping the square brush at every point along it. It is a no-op unless a
// stroke is active, an ink is selected, and both endpoints are known.
func (p *Painter[Ink]) draw(fb *Framebuffer) {
	if p.cfg.Paint == nil || !p.painting || !p.hasSelected || !p.prevOK || !p.curOK {
		return
	}
	plotLine(p.prev.X, p.prev.Y, p.cur.X, p.cur.Y, func(x, y int) {
		p.stamp(x, y, fb)
	})
}

// stamp paints the brush neighborhood centered on (x, y), clipped to the
// grid; out-of-bounds cells are skipped silently.
func (p *Painter[Ink]) stamp(x, y int, fb *Framebuffer) {
	for oy := -p.brush; oy <= p.brush; oy++ {
		cy := y + oy
		if cy < 0 || cy >= fb.Height() {
			continue
		}
		for ox := -p.brush; ox <= p.brush; ox++ {
			cx := x + ox
			if cx < 0 || cx >= fb.Width() {
				continue
			}
			p.cfg.Paint(cx, cy, p.selected, fb)
		}
	}
}

func (p *Painter[Ink]) randomInk() Ink {
	if p.cfg.Rand != nil {
		return p.inks[p.cfg.Rand.IntN(len(p.inks))]
	}
	return p.inks[rand.IntN(len(p.inks))]
}

// plotLine visits every cell of the discrete line from (x0, y0) to (x1, y1),
// endpoints inclusive, using Bresenham's algorithm. Consecutive visited
// cells are 8-connected, so strokes have no gaps however fast the pointer
// moves between motion events.
func plotLine(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
