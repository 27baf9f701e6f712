package moss

import "github.com/hajimehoshi/ebiten/v2"

// KeyEvent is a discrete keyboard state change delivered to a Simulation.
type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool // true on press, false on release
}

// IsPressed reports whether the event is a press of the given key.
// A KeyNone binding matches nothing.
func (e KeyEvent) IsPressed(key ebiten.Key) bool {
	return e.Pressed && key != KeyNone && e.Key == key
}

// MouseEvent is a discrete mouse button state change delivered to a
// Simulation, together with the grid cell under the pointer at that moment.
// OnGrid is false when the pointer is outside the letterboxed viewport.
type MouseEvent struct {
	Button  MouseButton
	Pressed bool
	Cell    Cell
	OnGrid  bool
}
