package moss

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// probeSim records every call delegated to the wrapped simulation.
type probeSim struct {
	fb       *Framebuffer
	advances int
	keys     []KeyEvent
	mouses   []MouseEvent
	cursors  []Cell
}

func newProbeSim(w, h int) *probeSim {
	return &probeSim{fb: NewFramebuffer(w, h)}
}

func (s *probeSim) Init() *Framebuffer { return s.fb }

func (s *probeSim) Advance(fb *Framebuffer) { s.advances++ }

func (s *probeSim) HandleKey(e KeyEvent, fb *Framebuffer) {
	s.keys = append(s.keys, e)
}

func (s *probeSim) HandleMouse(e MouseEvent, fb *Framebuffer) {
	s.mouses = append(s.mouses, e)
}

func (s *probeSim) HandleCursor(cell Cell, onGrid bool, fb *Framebuffer) {
	s.cursors = append(s.cursors, cell)
}

// paintRecorder builds a Painter over a probe sim whose paint function
// writes the ink into the framebuffer and logs each painted cell in order.
type paintRecorder struct {
	sim   *probeSim
	calls []Cell
	inks  map[Cell]uint8
}

func newPaintRecorder(w, h int, cfg *PainterConfig[uint8]) *paintRecorder {
	r := &paintRecorder{sim: newProbeSim(w, h), inks: map[Cell]uint8{}}
	cfg.Paint = func(x, y int, ink uint8, fb *Framebuffer) {
		c := Cell{X: x, Y: y}
		r.calls = append(r.calls, c)
		r.inks[c] = ink
		fb.Set(x, y, color.RGBA{R: ink, A: 255})
	}
	return r
}

func press(key ebiten.Key) KeyEvent { return KeyEvent{Key: key, Pressed: true} }

func release(key ebiten.Key) KeyEvent { return KeyEvent{Key: key, Pressed: false} }

func leftButton(pressed bool) MouseEvent {
	return MouseEvent{Button: MouseButtonLeft, Pressed: pressed}
}

func TestPainterPaletteSelection(t *testing.T) {
	cfg := DefaultPainterConfig[uint8]()
	cfg.Palette = map[ebiten.Key]uint8{ebiten.KeyDigit0: 0, ebiten.KeyDigit1: 1}
	rec := newPaintRecorder(8, 8, &cfg)
	p := NewPainter[uint8](rec.sim, cfg)
	fb := p.Init()

	if _, ok := p.SelectedInk(); ok {
		t.Fatal("painter has a selected ink before any key press")
	}

	p.HandleKey(press(ebiten.KeyDigit1), fb)
	ink, ok := p.SelectedInk()
	if !ok || ink != 1 {
		t.Fatalf("SelectedInk() = %d, %v, want 1, true", ink, ok)
	}
	if len(rec.calls) != 0 {
		t.Fatal("selecting an ink painted cells")
	}

	// Releases never select.
	p.HandleKey(release(ebiten.KeyDigit0), fb)
	if ink, _ = p.SelectedInk(); ink != 1 {
		t.Fatalf("key release changed selection to %d", ink)
	}
}

func TestPainterBrushRadiusClamped(t *testing.T) {
	cfg := DefaultPainterConfig[uint8]()
	rec := newPaintRecorder(8, 8, &cfg)
	p := NewPainter[uint8](rec.sim, cfg)
	fb := p.Init()

	for i := 0; i < 25; i++ {
		p.HandleKey(press(cfg.KeyBrushExpand), fb)
	}
	if p.BrushRadius() != MaxBrushRadius {
		t.Fatalf("after 25 expands, radius = %d, want %d", p.BrushRadius(), MaxBrushRadius)
	}

	for i := 0; i < 40; i++ {
		p.HandleKey(press(cfg.KeyBrushShrink), fb)
	}
	if p.BrushRadius() != 0 {
		t.Fatalf("after 40 shrinks, radius = %d, want 0", p.BrushRadius())
	}

	// Interleaved events stay in range at every point.
	seq := []ebiten.Key{
		cfg.KeyBrushShrink, cfg.KeyBrushExpand, cfg.KeyBrushExpand,
		cfg.KeyBrushShrink, cfg.KeyBrushShrink, cfg.KeyBrushShrink,
		cfg.KeyBrushExpand,
	}
	for _, key := range seq {
		p.HandleKey(press(key), fb)
		if r := p.BrushRadius(); r < 0 || r > MaxBrushRadius {
			t.Fatalf("radius %d out of [0, %d]", r, MaxBrushRadius)
		}
	}
}

func TestPainterPointPaintRadiusZero(t *testing.T) {
	cfg := DefaultPainterConfig[uint8]()
	cfg.Palette = map[ebiten.Key]uint8{ebiten.KeyDigit1: 1}
	rec := newPaintRecorder(8, 8, &cfg)
	p := NewPainter[uint8](rec.sim, cfg)
	fb := p.Init()

	p.HandleKey(press(ebiten.KeyDigit1), fb)
	p.HandleCursor(Cell{X: 2, Y: 3}, true, fb)
	p.HandleMouse(leftButton(true), fb)

	if len(rec.calls) != 1 || rec.calls[0] != (Cell{X: 2, Y: 3}) {
		t.Fatalf("paint calls = %v, want exactly [(2, 3)]", rec.calls)
	}
	got, _ := fb.Get(2, 3)
	if got.R != 1 {
		t.Fatalf("painted cell ink = %d, want 1", got.R)
	}
}

func TestPainterBrushNeighborhoodClipped(t *testing.T) {
	cfg := DefaultPainterConfig[uint8]()
	cfg.Palette = map[ebiten.Key]uint8{ebiten.KeyDigit1: 1}
	rec := newPaintRecorder(8, 8, &cfg)
	p := NewPainter[uint8](rec.sim, cfg)
	fb := p.Init()

	p.HandleKey(press(ebiten.KeyDigit1), fb)
	p.HandleKey(press(cfg.KeyBrushExpand), fb)
	p.HandleKey(press(cfg.KeyBrushExpand), fb) // radius 2

	// Stamp in the middle: the full (2r+1)² neighborhood.
	p.HandleCursor(Cell{X: 4, Y: 4}, true, fb)
	p.HandleMouse(leftButton(true), fb)
	if len(rec.calls) != 25 {
		t.Fatalf("center stamp painted %d cells, want 25", len(rec.calls))
	}
	for _, c := range rec.calls {
		if !fb.InBounds(c.X, c.Y) {
			t.Fatalf("painted out-of-bounds cell %v", c)
		}
	}

	// Stamp at the corner: clipped to the 3×3 in-bounds quadrant.
	p.HandleMouse(leftButton(false), fb)
	rec.calls = rec.calls[:0]
	p.HandleCursor(Cell{X: 0, Y: 0}, true, fb)
	p.HandleCursor(Cell{X: 0, Y: 0}, true, fb) // prev = cur = corner
	p.HandleMouse(leftButton(true), fb)
	if len(rec.calls) != 9 {
		t.Fatalf("corner stamp painted %d cells, want 9", len(rec.calls))
	}
	for _, c := range rec.calls {
		if c.X < 0 || c.X > 2 || c.Y < 0 || c.Y > 2 {
			t.Fatalf("corner stamp painted %v outside the clipped quadrant", c)
		}
	}
}

func TestPainterLinePaintIsConnected(t *testing.T) {
	cfg := DefaultPainterConfig[uint8]()
	cfg.Palette = map[ebiten.Key]uint8{ebiten.KeyDigit1: 1}
	rec := newPaintRecorder(16, 16, &cfg)
	p := NewPainter[uint8](rec.sim, cfg)
	fb := p.Init()

	p.HandleKey(press(ebiten.KeyDigit1), fb)
	p.HandleCursor(Cell{X: 1, Y: 2}, true, fb)
	p.HandleMouse(leftButton(true), fb)
	rec.calls = rec.calls[:0]

	p.HandleCursor(Cell{X: 9, Y: 7}, true, fb)

	if len(rec.calls) == 0 {
		t.Fatal("drag painted nothing")
	}
	if rec.calls[0] != (Cell{X: 1, Y: 2}) || rec.calls[len(rec.calls)-1] != (Cell{X: 9, Y: 7}) {
		t.Fatalf("line endpoints = %v .. %v, want (1, 2) .. (9, 7)",
			rec.calls[0], rec.calls[len(rec.calls)-1])
	}
	for i := 1; i < len(rec.calls); i++ {
		dx := abs(rec.calls[i].X - rec.calls[i-1].X)
		dy := abs(rec.calls[i].Y - rec.calls[i-1].Y)
		if dx > 1 || dy > 1 {
			t.Fatalf("gap between %v and %v", rec.calls[i-1], rec.calls[i])
		}
	}
}

func TestPainterNoPaintWithoutSelectionOrStroke(t *testing.T) {
	cfg := DefaultPainterConfig[uint8]()
	cfg.Palette = map[ebiten.Key]uint8{ebiten.KeyDigit1: 1}
	rec := newPaintRecorder(8, 8, &cfg)
	p := NewPainter[uint8](rec.sim, cfg)
	fb := p.Init()

	// Stroke without a selected ink.
	p.HandleCursor(Cell{X: 1, Y: 1}, true, fb)
	p.HandleMouse(leftButton(true), fb)
	p.HandleCursor(Cell{X: 3, Y: 3}, true, fb)
	if len(rec.calls) != 0 {
		t.Fatalf("painted %d cells with no ink selected", len(rec.calls))
	}

	// Motion with an ink but no active stroke.
	p.HandleMouse(leftButton(false), fb)
	p.HandleKey(press(ebiten.KeyDigit1), fb)
	p.HandleCursor(Cell{X: 5, Y: 5}, true, fb)
	if len(rec.calls) != 0 {
		t.Fatalf("painted %d cells with the button up", len(rec.calls))
	}
}

func TestPainterFill(t *testing.T) {
	cfg := DefaultPainterConfig[uint8]()
	cfg.Palette = map[ebiten.Key]uint8{ebiten.KeyDigit1: 7}
	rec := newPaintRecorder(6, 5, &cfg)
	p := NewPainter[uint8](rec.sim, cfg)
	fb := p.Init()

	// Fill without a selection is a no-op.
	p.HandleKey(press(cfg.KeyFill), fb)
	if len(rec.calls) != 0 {
		t.Fatalf("fill painted %d cells with no ink selected", len(rec.calls))
	}

	p.HandleKey(press(ebiten.KeyDigit1), fb)
	p.HandleKey(press(cfg.KeyFill), fb)
	if len(rec.calls) != 6*5 {
		t.Fatalf("fill painted %d cells, want %d", len(rec.calls), 6*5)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			if ink := rec.inks[Cell{X: x, Y: y}]; ink != 7 {
				t.Fatalf("cell (%d, %d) ink = %d, want 7", x, y, ink)
			}
		}
	}
}

func TestPainterFillRandomUniform(t *testing.T) {
	cfg := DefaultPainterConfig[uint8]()
	cfg.Palette = map[ebiten.Key]uint8{
		ebiten.KeyDigit0: 0,
		ebiten.KeyDigit1: 1,
		ebiten.KeyDigit2: 2,
	}
	cfg.Rand = rand.New(rand.NewPCG(42, 0))
	rec := newPaintRecorder(48, 48, &cfg)
	p := NewPainter[uint8](rec.sim, cfg)
	fb := p.Init()

	p.HandleKey(press(cfg.KeyFillRandom), fb)

	total := 48 * 48
	if len(rec.calls) != total {
		t.Fatalf("random fill painted %d cells, want %d", len(rec.calls), total)
	}
	counts := map[uint8]int{}
	for _, ink := range rec.inks {
		counts[ink]++
	}
	for ink, n := range counts {
		if ink > 2 {
			t.Fatalf("random fill used ink %d outside the palette", ink)
		}
		// Loose uniformity: each of three inks near total/3.
		if n < total/4 || n > total/2 {
			t.Errorf("ink %d painted %d times, want roughly %d", ink, n, total/3)
		}
	}
	if len(counts) != 3 {
		t.Fatalf("random fill used %d distinct inks, want 3", len(counts))
	}
}

func TestPainterDisabledWithoutPaintFunc(t *testing.T) {
	cfg := DefaultPainterConfig[uint8]()
	cfg.Palette = map[ebiten.Key]uint8{ebiten.KeyDigit1: 1}
	sim := newProbeSim(8, 8)
	p := NewPainter[uint8](sim, cfg) // nil Paint
	fb := p.Init()

	p.HandleKey(press(ebiten.KeyDigit1), fb)
	p.HandleKey(press(cfg.KeyFill), fb)
	p.HandleCursor(Cell{X: 2, Y: 2}, true, fb)
	p.HandleMouse(leftButton(true), fb)
	p.HandleCursor(Cell{X: 5, Y: 5}, true, fb)

	for i, b := range fb.Pix() {
		if b != 0 {
			t.Fatalf("pixel byte %d = %d; painting ran without a paint function", i, b)
		}
	}
	// Selection bookkeeping still works.
	if ink, ok := p.SelectedInk(); !ok || ink != 1 {
		t.Fatalf("SelectedInk() = %d, %v, want 1, true", ink, ok)
	}
}

func TestPainterZeroConfigKeysDisabled(t *testing.T) {
	// ebiten.Key's zero value is ebiten.KeyA. Unset fill and brush
	// bindings in a zero-valued config must stay disabled, not bind to A.
	var selected uint8 = 1
	cfg := PainterConfig[uint8]{
		Palette:  map[ebiten.Key]uint8{ebiten.KeyDigit1: 1},
		Selected: &selected,
	}
	rec := newPaintRecorder(8, 8, &cfg)
	p := NewPainter[uint8](rec.sim, cfg)
	fb := p.Init()

	p.HandleKey(press(ebiten.KeyA), fb)
	if len(rec.calls) != 0 {
		t.Fatalf("pressing A painted %d cells with no fill key bound", len(rec.calls))
	}
	if p.BrushRadius() != 0 {
		t.Fatalf("pressing A changed the brush radius to %d", p.BrushRadius())
	}

	// An explicit palette entry on A still selects.
	cfg.Palette = map[ebiten.Key]uint8{ebiten.KeyA: 5}
	p = NewPainter[uint8](rec.sim, cfg)
	p.HandleKey(press(ebiten.KeyA), fb)
	if ink, ok := p.SelectedInk(); !ok || ink != 5 {
		t.Fatalf("SelectedInk() = %d, %v, want 5, true", ink, ok)
	}
}

func TestPainterDelegatesEverything(t *testing.T) {
	cfg := DefaultPainterConfig[uint8]()
	cfg.Palette = map[ebiten.Key]uint8{ebiten.KeyDigit1: 1}
	rec := newPaintRecorder(8, 8, &cfg)
	p := NewPainter[uint8](rec.sim, cfg)
	fb := p.Init()

	if fb != rec.sim.fb {
		t.Fatal("Init did not delegate to the wrapped simulation")
	}

	p.Advance(fb)
	p.HandleKey(press(ebiten.KeyDigit1), fb)
	p.HandleMouse(leftButton(true), fb)
	p.HandleCursor(Cell{X: 1, Y: 1}, true, fb)

	if rec.sim.advances != 1 {
		t.Errorf("advances = %d, want 1", rec.sim.advances)
	}
	if len(rec.sim.keys) != 1 || rec.sim.keys[0].Key != ebiten.KeyDigit1 {
		t.Errorf("delegated keys = %v", rec.sim.keys)
	}
	if len(rec.sim.mouses) != 1 || rec.sim.mouses[0].Button != MouseButtonLeft {
		t.Errorf("delegated mouse events = %v", rec.sim.mouses)
	}
	if len(rec.sim.cursors) != 1 || rec.sim.cursors[0] != (Cell{X: 1, Y: 1}) {
		t.Errorf("delegated cursor cells = %v", rec.sim.cursors)
	}
}
