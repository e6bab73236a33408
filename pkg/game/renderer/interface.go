// Package renderer defines the rendering backends' common interface and the
// cell classification they all draw from.
package renderer

import (
	"treasurehunt/pkg/engine/input"
	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/i18n"
	"treasurehunt/pkg/game/state"
)

// Glyph is what a single map cell looks like to the player
type Glyph int

const (
	GlyphHidden Glyph = iota
	GlyphEmpty
	GlyphWall
	GlyphTreasure
	GlyphPlayer
	GlyphHint
)

// Renderer defines the interface for game rendering backends.
// Implementations are the terminal (TUI) and Ebiten window backends.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init() error

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame:
	// the map, status bar and messages
	RenderFrame(s *state.Session)

	// GetInput blocks until the player produces an intent
	GetInput() input.Intent

	// ShowMessage displays a message outside the frame
	ShowMessage(msg string)

	// Run executes loop under the backend's event loop and returns when
	// loop does. Backends that need the main thread run loop beside it.
	Run(loop func()) error
}

// CellGlyph classifies p for drawing. The player is always shown; any other
// hidden cell is GlyphHidden; the hint marker overrides the cell kind.
func CellGlyph(s *state.Session, p world.Position) Glyph {
	if p == s.Player {
		return GlyphPlayer
	}
	if !s.Grid.IsVisible(p) {
		return GlyphHidden
	}
	if s.IsHint(p) {
		return GlyphHint
	}
	switch s.Grid.At(p) {
	case world.Wall:
		return GlyphWall
	case world.Treasure:
		return GlyphTreasure
	case world.Player:
		return GlyphPlayer
	default:
		return GlyphEmpty
	}
}

// StatusLine returns the localized score, treasure and time summary
func StatusLine(s *state.Session) string {
	return i18n.T("Score: %d | Treasures: %d/%d | Time: %s", s.Score, s.TreasuresFound, s.TreasuresTotal, state.FormatElapsed(s.Elapsed()))
}
