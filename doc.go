// Package moss is a small engine for interactive, real-time 2D grid
// simulations — cellular automata, paintable canvases, and anything else
// that renders a grid of cells as a raster image — built on [Ebitengine].
//
// Moss decouples what a grid does from how it is drawn and driven. A
// simulation implements the [Simulation] interface and draws into a
// [Framebuffer]; moss owns the window, the aspect-correct letterboxed
// [Transform] between window pixels and grid cells, the grid-line
// [Overlay], and the fixed-rate update [Clock].
//
// # Quick start
//
//	type Noise struct {
//		moss.BaseSimulation
//	}
//
//	func (n *Noise) Init() *moss.Framebuffer {
//		return moss.NewFramebuffer(64, 64)
//	}
//
//	func (n *Noise) Advance(fb *moss.Framebuffer) { /* step once */ }
//
//	func main() {
//		if err := moss.Run(&Noise{}, moss.DefaultConfig()); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Painting
//
// Interactive brush painting is a decorator, not a simulation feature: wrap
// any simulation in a [Painter] and it gains click-drag strokes with
// discrete-line interpolation, a sizable square brush, palette key
// selection, and whole-grid fills, while the wrapped simulation only sees
// the paint callback it supplied.
//
//	cfg := moss.DefaultPainterConfig[Cell]()
//	cfg.Palette = map[ebiten.Key]Cell{
//		ebiten.KeyDigit0: Dead,
//		ebiten.KeyDigit1: Alive,
//	}
//	cfg.Paint = func(x, y int, c Cell, fb *moss.Framebuffer) { ... }
//	moss.Run(moss.NewPainter(world, cfg), moss.DefaultConfig())
//
// See examples/life for a complete Game of Life with painting and
// examples/paint for a plain paintable canvas.
//
// Moss is single-threaded by design: the framebuffer, simulation, and
// painter state are owned by the game loop and mutated only through the
// synchronous call chain, so simulations need no locking.
//
// [Ebitengine]: https://ebitengine.org
package moss
