package moss

import "github.com/hajimehoshi/ebiten/v2"

// Config describes the host loop: window attributes, the simulation update
// rate, and the engine-level key bindings. Start from DefaultConfig and
// override fields; set a key binding to KeyNone to disable that control.
type Config struct {
	// Title is the window title.
	Title string

	// WindowWidth and WindowHeight are the initial window size in pixels.
	WindowWidth, WindowHeight int

	// UpdatesPerSecond is the fixed simulation step rate, decoupled from
	// the display refresh rate. Must be positive; non-positive values fall
	// back to 60.
	UpdatesPerSecond int

	// KeyPlayPause toggles the update clock.
	KeyPlayPause ebiten.Key

	// KeyStepOnce advances the simulation one step, bypassing both the
	// clock and the pause state, for frame-by-frame inspection.
	KeyStepOnce ebiten.Key

	// KeyOverlay toggles the grid-line overlay.
	KeyOverlay ebiten.Key

	// KeyQuit closes the application.
	KeyQuit ebiten.Key

	// ShowHUD draws a small debug readout (FPS/TPS, pause state, cursor
	// cell, brush radius) in the window corner.
	ShowHUD bool
}

// DefaultConfig returns the standard configuration: a 640×480 window,
// 60 updates per second, Space to pause, Enter to single-step, G to toggle
// the overlay, and Escape to quit.
func DefaultConfig() Config {
	return Config{
		Title:            "moss",
		WindowWidth:      640,
		WindowHeight:     480,
		UpdatesPerSecond: 60,
		KeyPlayPause:     ebiten.KeySpace,
		KeyStepOnce:      ebiten.KeyEnter,
		KeyOverlay:       ebiten.KeyG,
		KeyQuit:          ebiten.KeyEscape,
	}
}
