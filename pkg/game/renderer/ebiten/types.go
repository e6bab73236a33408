// Package ebiten provides an Ebiten-based 2D graphical renderer.
package ebiten

import (
	"sync"

	engineinput "treasurehunt/pkg/engine/input"
	"treasurehunt/pkg/game/renderer"
)

// renderSnapshot holds a consistent copy of the session for drawing.
// The game loop writes it in RenderFrame; Ebiten reads it in Draw.
type renderSnapshot struct {
	valid    bool
	size     int
	glyphs   []renderer.Glyph // row-major, index y*size+x
	status   string
	help     string
	messages []string
	complete bool
}

// keyRepeatInfo tracks the repeat state for a held key
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	gridSize int

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// Closed when the window loop ends
	closed chan struct{}

	// Closed when the game loop returns
	done chan struct{}

	// Key repeat state per binding code
	keyRepeatState map[string]keyRepeatInfo
}
