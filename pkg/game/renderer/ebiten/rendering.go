package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"treasurehunt/pkg/game/renderer"
)

// glyphColor returns the fill colour for a cell
func glyphColor(g renderer.Glyph) color.Color {
	switch g {
	case renderer.GlyphEmpty:
		return colorEmpty
	case renderer.GlyphWall:
		return colorWall
	case renderer.GlyphTreasure:
		return colorTreasure
	case renderer.GlyphHint:
		return colorHint
	case renderer.GlyphPlayer:
		return colorPlayer
	default:
		return colorHidden
	}
}

// Draw renders the latest snapshot (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	screen.Fill(colorBackground)
	if !snap.valid {
		return
	}

	e.drawMap(screen, &snap)
	e.drawPanel(screen, &snap)
}

// drawMap fills one square per cell over a grid-line background
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, snap *renderSnapshot) {
	side := float32(snap.size * cellSize)
	vector.DrawFilledRect(screen, 0, 0, side, side, colorGridLine, false)

	for y := 0; y < snap.size; y++ {
		for x := 0; x < snap.size; x++ {
			px := float32(x*cellSize + 1)
			py := float32(y*cellSize + 1)
			clr := glyphColor(snap.glyphs[y*snap.size+x])
			vector.DrawFilledRect(screen, px, py, cellSize-1, cellSize-1, clr, false)
		}
	}
}

// drawPanel prints the status line, key help and recent messages under the map
func (e *EbitenRenderer) drawPanel(screen *ebiten.Image, snap *renderSnapshot) {
	x := panelPadding
	y := snap.size*cellSize + panelPadding

	ebitenutil.DebugPrintAt(screen, snap.status, x, y)
	y += textLineStep
	ebitenutil.DebugPrintAt(screen, snap.help, x, y)
	y += textLineStep

	// Newest messages last, as many as fit
	maxLines := (panelHeight - 2*textLineStep - panelPadding) / textLineStep
	messages := snap.messages
	if len(messages) > maxLines {
		messages = messages[len(messages)-maxLines:]
	}
	for _, msg := range messages {
		ebitenutil.DebugPrintAt(screen, msg, x, y)
		y += textLineStep
	}
}
