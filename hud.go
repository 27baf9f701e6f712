package moss

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// brushReporter is implemented by Painter; the HUD uses it to show the
// current brush radius without knowing the simulation's concrete type.
type brushReporter interface {
	BrushRadius() int
}

// drawHUD prints a small debug readout in the top-left corner: frame and
// tick rates, pause state, the cell under the cursor, and the brush radius
// when the simulation chain includes a Painter.
func (a *App) drawHUD(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	if a.clock.Paused() {
		b.WriteString("paused\n")
	}
	if a.cursorOnGrid {
		fmt.Fprintf(&b, "cell: (%d, %d)\n", a.cursorCell.X, a.cursorCell.Y)
	}
	if br, ok := a.sim.(brushReporter); ok {
		fmt.Fprintf(&b, "brush: %d", br.BrushRadius())
	}
	ebitenutil.DebugPrint(screen, b.String())
}
