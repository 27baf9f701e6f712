package moss

import "github.com/hajimehoshi/ebiten/v2"

// Cell identifies a single grid cell by column (X) and row (Y).
// (0, 0) is the top-left cell; Y increases downward.
type Cell struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in window pixel space. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EbitenButton returns the ebiten.MouseButton corresponding to this MouseButton.
func (b MouseButton) EbitenButton() ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// KeyNone disables an optional key binding. Zero is a valid ebiten.Key
// (ebiten.KeyA), so optional bindings use this explicit sentinel instead.
const KeyNone ebiten.Key = -1
