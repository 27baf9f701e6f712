package moss

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// overlayFadeDuration is how long the grid overlay takes to fade in or out
// when toggled, in seconds.
const overlayFadeDuration = 0.15

// App drives a Simulation inside an ebiten game loop: it owns the
// framebuffer, converts raw input into discrete events, maintains the
// window↔grid transform across resizes, schedules fixed-rate updates, and
// submits the framebuffer and overlay geometry to the renderer each frame.
//
// App implements ebiten.Game. Most programs use Run instead of constructing
// an App directly; construct one to embed the loop in an existing game.
type App struct {
	cfg Config
	sim Simulation

	fb       *Framebuffer
	tex      *ebiten.Image
	texDirty bool

	winW, winH int
	transform  Transform
	overlay    *Overlay

	clock *Clock

	cursorX, cursorY int
	cursorCell       Cell
	cursorOnGrid     bool

	overlayOn    bool
	overlayAlpha float32
	overlayTween *gween.Tween

	keyBuf    []ebiten.Key
	vertexBuf []ebiten.Vertex
}

// NewApp creates the host loop for sim. It calls sim.Init exactly once to
// obtain the framebuffer.
func NewApp(sim Simulation, cfg Config) *App {
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		cfg.WindowWidth, cfg.WindowHeight = 640, 480
	}
	// The zero ebiten.Key is ebiten.KeyA; an unset binding means disabled.
	for _, key := range []*ebiten.Key{
		&cfg.KeyPlayPause, &cfg.KeyStepOnce, &cfg.KeyOverlay, &cfg.KeyQuit,
	} {
		if *key == 0 {
			*key = KeyNone
		}
	}

	fb := sim.Init()
	a := &App{
		cfg:      cfg,
		sim:      sim,
		fb:       fb,
		tex:      ebiten.NewImage(fb.Width(), fb.Height()),
		texDirty: true,
		winW:     cfg.WindowWidth,
		winH:     cfg.WindowHeight,
		clock:    NewClock(cfg.UpdatesPerSecond),
		cursorX:  -1,
		cursorY:  -1,
	}
	a.transform = NewTransform(a.winW, a.winH, fb.Width(), fb.Height())
	a.overlay = NewOverlay(a.transform)
	return a
}

// Framebuffer returns the framebuffer the simulation draws into.
func (a *App) Framebuffer() *Framebuffer { return a.fb }

// Transform returns the current window↔grid transform.
func (a *App) Transform() Transform { return a.transform }

// Update processes input, polls the update clock, and advances the
// simulation when a step is due. It returns ebiten.Termination when the
// quit key is pressed.
func (a *App) Update() error {
	stepOnce := false

	a.keyBuf = inpututil.AppendJustPressedKeys(a.keyBuf[:0])
	for _, key := range a.keyBuf {
		switch {
		case key == a.cfg.KeyQuit && a.cfg.KeyQuit != KeyNone:
			return ebiten.Termination
		case key == a.cfg.KeyPlayPause && a.cfg.KeyPlayPause != KeyNone:
			a.clock.TogglePaused()
		case key == a.cfg.KeyStepOnce && a.cfg.KeyStepOnce != KeyNone:
			stepOnce = true
		case key == a.cfg.KeyOverlay && a.cfg.KeyOverlay != KeyNone:
			a.toggleOverlay()
		}
		a.sim.HandleKey(KeyEvent{Key: key, Pressed: true}, a.fb)
		a.texDirty = true
	}
	a.keyBuf = inpututil.AppendJustReleasedKeys(a.keyBuf[:0])
	for _, key := range a.keyBuf {
		a.sim.HandleKey(KeyEvent{Key: key, Pressed: false}, a.fb)
		a.texDirty = true
	}

	a.pollCursor()
	a.pollMouseButtons()

	if a.clock.Poll(time.Now()) || stepOnce {
		a.sim.Advance(a.fb)
		a.texDirty = true
	}

	if a.overlayTween != nil {
		v, done := a.overlayTween.Update(1 / float32(ebiten.TPS()))
		a.overlayAlpha = v
		if done {
			a.overlayTween = nil
		}
	}
	return nil
}

// pollCursor maps the pointer to a grid cell and forwards motion to the
// simulation whenever the window-pixel position changes.
func (a *App) pollCursor() {
	x, y := ebiten.CursorPosition()
	if x == a.cursorX && y == a.cursorY {
		return
	}
	a.cursorX, a.cursorY = x, y
	a.cursorCell, a.cursorOnGrid = a.transform.Map(float64(x), float64(y))
	a.sim.HandleCursor(a.cursorCell, a.cursorOnGrid, a.fb)
	a.texDirty = true
}

// pollMouseButtons converts button edges into discrete MouseEvents carrying
// the current cursor cell.
func (a *App) pollMouseButtons() {
	for _, b := range [...]MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle} {
		eb := b.EbitenButton()
		if inpututil.IsMouseButtonJustPressed(eb) {
			a.sim.HandleMouse(MouseEvent{Button: b, Pressed: true, Cell: a.cursorCell, OnGrid: a.cursorOnGrid}, a.fb)
			a.texDirty = true
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			a.sim.HandleMouse(MouseEvent{Button: b, Pressed: false, Cell: a.cursorCell, OnGrid: a.cursorOnGrid}, a.fb)
			a.texDirty = true
		}
	}
}

// toggleOverlay flips the overlay and fades the interior grid lines in or
// out rather than popping them. The draw-index range collapses to the
// border bars only once the fade reaches zero.
func (a *App) toggleOverlay() {
	a.overlayOn = !a.overlayOn
	target := float32(0)
	if a.overlayOn {
		target = 1
	}
	a.overlayTween = gween.New(a.overlayAlpha, target, overlayFadeDuration, ease.OutQuad)
}

// Draw uploads the framebuffer when it changed, then draws the letterboxed
// image quad and the grid overlay.
func (a *App) Draw(screen *ebiten.Image) {
	if a.texDirty {
		a.tex.WritePixels(a.fb.Pix())
		a.texDirty = false
	}
	a.drawImage(screen)
	a.drawOverlay(screen)
	if a.cfg.ShowHUD {
		a.drawHUD(screen)
	}
}

// Layout tracks the window size and recomputes the transform and overlay
// geometry on resize. Zero-sized (minimized) windows are ignored.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != a.winW || outsideHeight != a.winH) {
		a.winW, a.winH = outsideWidth, outsideHeight
		a.transform = NewTransform(a.winW, a.winH, a.fb.Width(), a.fb.Height())
		a.overlay.Rebuild(a.transform)
	}
	return a.winW, a.winH
}

// Run opens a window and drives sim until it terminates. Quitting via the
// configured quit key or the window close button returns nil.
func Run(sim Simulation, cfg Config) error {
	if cfg.Title == "" {
		cfg.Title = "moss"
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		cfg.WindowWidth, cfg.WindowHeight = 640, 480
	}

	a := NewApp(sim, cfg)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.UpdatesPerSecond > ebiten.TPS() {
		// The clock fires at most once per poll, so the host loop must
		// poll at least as often as the simulation steps.
		ebiten.SetTPS(cfg.UpdatesPerSecond)
	}

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
