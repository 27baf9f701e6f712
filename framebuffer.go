package moss

import "image/color"

// pixelBytes is the number of bytes per framebuffer cell (R, G, B, A).
const pixelBytes = 4

// Framebuffer is the raw RGBA pixel buffer a simulation draws into. Pixels
// are stored row-major, tightly packed, four bytes per cell, so the buffer
// can be handed to (*ebiten.Image).WritePixels without conversion.
//
// Dimensions are fixed at creation; the buffer is never resized. A
// Framebuffer is not safe for concurrent use — it is owned by a single
// game loop and passed down the simulation call chain exclusively.
type Framebuffer struct {
	width  int
	height int
	pix    []byte
}

// NewFramebuffer creates a framebuffer of the given dimensions with all
// pixels set to transparent black. It panics if width or height is not
// positive; a zero-sized grid is a fatal configuration error, not a
// recoverable one.
func NewFramebuffer(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic("moss: framebuffer dimensions must be positive")
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*pixelBytes),
	}
}

// NewFramebufferFilled creates a framebuffer with every pixel set to c.
func NewFramebufferFilled(width, height int, c color.RGBA) *Framebuffer {
	fb := NewFramebuffer(width, height)
	fb.Fill(c)
	return fb
}

// Width returns the grid width in cells.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the grid height in cells.
func (fb *Framebuffer) Height() int { return fb.height }

// Pix exposes the backing pixel slice (row-major RGBA8, stride = width*4).
// The renderer reads it for texture upload; simulations may write it
// directly for whole-grid passes.
func (fb *Framebuffer) Pix() []byte { return fb.pix }

// InBounds reports whether (x, y) addresses a cell inside the grid.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// Get returns the color of the cell at (x, y). The second return value is
// false when the coordinates are out of range.
func (fb *Framebuffer) Get(x, y int) (color.RGBA, bool) {
	if !fb.InBounds(x, y) {
		return color.RGBA{}, false
	}
	i := (y*fb.width + x) * pixelBytes
	return color.RGBA{R: fb.pix[i], G: fb.pix[i+1], B: fb.pix[i+2], A: fb.pix[i+3]}, true
}

// Set writes the color of the cell at (x, y). Out-of-range coordinates are
// a silent no-op; Set reports whether a pixel was written.
func (fb *Framebuffer) Set(x, y int, c color.RGBA) bool {
	if !fb.InBounds(x, y) {
		return false
	}
	i := (y*fb.width + x) * pixelBytes
	fb.pix[i] = c.R
	fb.pix[i+1] = c.G
	fb.pix[i+2] = c.B
	fb.pix[i+3] = c.A
	return true
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c color.RGBA) {
	for i := 0; i < len(fb.pix); i += pixelBytes {
		fb.pix[i] = c.R
		fb.pix[i+1] = c.G
		fb.pix[i+2] = c.B
		fb.pix[i+3] = c.A
	}
}

// FillPalette converts one byte-sized cell value per pixel into RGBA using
// the palette as a lookup table. Values beyond the palette are clamped to
// its last entry; an empty palette clears the buffer to transparent black.
// cells must have exactly width*height entries.
func (fb *Framebuffer) FillPalette(cells []uint8, palette []color.RGBA) {
	if len(cells) != fb.width*fb.height {
		panic("moss: cell count does not match framebuffer dimensions")
	}
	if len(palette) == 0 {
		for i := range fb.pix {
			fb.pix[i] = 0
		}
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		col := palette[idx]
		base := i * pixelBytes
		fb.pix[base] = col.R
		fb.pix[base+1] = col.G
		fb.pix[base+2] = col.B
		fb.pix[base+3] = col.A
	}
}
