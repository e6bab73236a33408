package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	engineinput "treasurehunt/pkg/engine/input"
	"treasurehunt/pkg/game/i18n"
	"treasurehunt/pkg/game/renderer"
	"treasurehunt/pkg/game/state"
)

// New creates a new Ebiten renderer for grids of the given side length
func New(gridSize int) *EbitenRenderer {
	return &EbitenRenderer{
		gridSize:       gridSize,
		inputChan:      make(chan engineinput.Intent, 8),
		closed:         make(chan struct{}),
		done:           make(chan struct{}),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Init sets up the window
func (e *EbitenRenderer) Init() error {
	w, h := e.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(i18n.T("Treasure Hunt"))
	return nil
}

// Clear is a no-op; Draw repaints the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// ShowMessage logs the message; in-game messages come from the session
func (e *EbitenRenderer) ShowMessage(msg string) {
	log.Info(msg)
}

// GetInput blocks until the window delivers an intent.
// Once the window is closed it reports a quit.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.closed:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// Run starts the game loop in a goroutine and the Ebiten loop on the calling
// goroutine, which must be the main one. Closing the window makes GetInput
// report a quit; Run returns once the game loop has finished.
func (e *EbitenRenderer) Run(loop func()) error {
	return renderer.RunBeside(loop, func() error { return ebiten.RunGame(e) }, e.done, e.closed)
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := e.gridSize * cellSize
	return side, side + panelHeight
}

// RenderFrame stores a snapshot of the session for the next Draw call
func (e *EbitenRenderer) RenderFrame(s *state.Session) {
	snap := buildSnapshot(s)

	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}
