package moss

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- White pixel singleton (no sync.Once — moss is single-threaded) ---

var whitePixelImage *ebiten.Image

// whitePixel returns a shared 1×1 white image used as the texture for
// overlay bars, created lazily on first use.
func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// drawImage draws the framebuffer texture into the letterboxed viewport,
// scaled with nearest-neighbor filtering so cells stay crisp.
func (a *App) drawImage(screen *ebiten.Image) {
	vp := a.transform.Viewport()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(
		vp.Width/float64(a.fb.Width()),
		vp.Height/float64(a.fb.Height()),
	)
	op.GeoM.Translate(vp.X, vp.Y)
	screen.DrawImage(a.tex, &op)
}

// borderVertexCount is the number of vertices belonging to the four border
// bars, which render at full strength regardless of the overlay fade.
const borderVertexCount = 4 * 4

// drawOverlay submits the overlay bar geometry as white translucent
// triangles. The bar strength weight becomes the line alpha; interior bars
// are additionally scaled by the fade level, and skipped entirely (via the
// draw-index range) once the fade reaches zero.
func (a *App) drawOverlay(screen *ebiten.Image) {
	src := a.overlay.Vertices()
	n := a.overlay.IndexRange(a.overlayOn || a.overlayAlpha > 0)

	if cap(a.vertexBuf) < len(src) {
		a.vertexBuf = make([]ebiten.Vertex, len(src))
	}
	a.vertexBuf = a.vertexBuf[:len(src)]
	for i, v := range src {
		alpha := v.Strength
		if i >= borderVertexCount {
			alpha *= a.overlayAlpha
		}
		a.vertexBuf[i] = ebiten.Vertex{
			DstX: v.X, DstY: v.Y,
			SrcX: 0.5, SrcY: 0.5,
			ColorR: alpha, ColorG: alpha, ColorB: alpha, ColorA: alpha,
		}
	}

	var op ebiten.DrawTrianglesOptions
	screen.DrawTriangles(a.vertexBuf, a.overlay.Indices()[:n], whitePixel(), &op)
}
