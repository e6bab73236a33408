package ebiten

import (
	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/i18n"
	"treasurehunt/pkg/game/renderer"
	"treasurehunt/pkg/game/state"
)

// buildSnapshot copies everything Draw needs out of the session
func buildSnapshot(s *state.Session) renderSnapshot {
	size := s.Grid.Size()
	glyphs := make([]renderer.Glyph, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			glyphs[y*size+x] = renderer.CellGlyph(s, world.Pos(x, y))
		}
	}

	messages := make([]string, len(s.Messages))
	copy(messages, s.Messages)

	return renderSnapshot{
		valid:    true,
		size:     size,
		glyphs:   glyphs,
		status:   renderer.StatusLine(s),
		help:     i18n.T("Arrows/WASD move, 1 BFS hint, 2 A* hint, q quit"),
		messages: messages,
		complete: s.Complete,
	}
}
