package moss

// Simulation is the polymorphic unit of grid behavior. A simulation owns its
// own state (cell grids, scratch buffers) and mutates the shared Framebuffer
// through the methods below. Every method receives exclusive access to the
// framebuffer for the duration of the call; nothing in moss retains or
// aliases it across calls.
//
// Synchronous-update automata should double-buffer: read the current
// generation, write the next into a scratch grid, and swap after a full
// pass. See examples/life.
type Simulation interface {
	// Init allocates and populates the initial framebuffer. Called exactly
	// once, before the window opens.
	Init() *Framebuffer

	// Advance performs one discrete simulation step. Implementations should
	// only touch the pixels that changed, though rewriting the whole image
	// is permitted when simpler.
	Advance(fb *Framebuffer)

	// HandleKey reacts to a discrete key press or release.
	HandleKey(e KeyEvent, fb *Framebuffer)

	// HandleMouse reacts to a mouse button press or release.
	HandleMouse(e MouseEvent, fb *Framebuffer)

	// HandleCursor reacts to pointer motion. cell is the grid cell under the
	// pointer; onGrid is false when the pointer is outside the letterboxed
	// viewport (cell is then meaningless).
	HandleCursor(cell Cell, onGrid bool, fb *Framebuffer)
}

// BaseSimulation provides no-op implementations of every Simulation method
// except Init. Embed it to implement only the reactions a simulation cares
// about:
//
//	type Noise struct {
//		moss.BaseSimulation
//	}
//
//	func (n *Noise) Init() *moss.Framebuffer { ... }
type BaseSimulation struct{}

// Advance does nothing.
func (BaseSimulation) Advance(*Framebuffer) {}

// HandleKey does nothing.
func (BaseSimulation) HandleKey(KeyEvent, *Framebuffer) {}

// HandleMouse does nothing.
func (BaseSimulation) HandleMouse(MouseEvent, *Framebuffer) {}

// HandleCursor does nothing.
func (BaseSimulation) HandleCursor(Cell, bool, *Framebuffer) {}
