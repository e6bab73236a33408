// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"

	"treasurehunt/pkg/engine/pathfind"
	"treasurehunt/pkg/engine/world"
)

// cellSymbol returns the single-character symbol for a cell kind.
func cellSymbol(kind world.CellKind) byte {
	switch kind {
	case world.Wall:
		return '#'
	case world.Treasure:
		return '$'
	case world.Player:
		return '@'
	default:
		return '.'
	}
}

// writeMapGrid writes the grid one row per line. With revealedOnly set,
// hidden cells print as '?'.
func writeMapGrid(w *bufio.Writer, g *world.Grid, revealedOnly bool) {
	size := g.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := world.Pos(x, y)
			if revealedOnly && !g.IsVisible(p) {
				w.WriteByte('?')
				continue
			}
			w.WriteByte(cellSymbol(g.At(p)))
		}
		w.WriteByte('\n')
	}
}

// DumpMap writes a debug dump of g: metadata, legend, the full map, the
// revealed cells and the BFS distance from the player to every treasure.
// Format is human-readable (sections, key: value, consistent structure).
func DumpMap(out io.Writer, g *world.Grid) error {
	if g == nil {
		return fmt.Errorf("no grid")
	}
	w := bufio.NewWriter(out)

	player, hasPlayer := g.Player()
	treasures := g.Positions(world.Treasure)

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "size: %d\n", g.Size())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=column, y=row)\n")
	fmt.Fprintf(w, "walls: %d\n", g.Count(world.Wall))
	fmt.Fprintf(w, "treasures: %d\n", len(treasures))
	if hasPlayer {
		fmt.Fprintf(w, "player: %s\n", player)
		fmt.Fprintf(w, "reachable_cells: %d\n", pathfind.ReachableSet(g, player).Size())
	} else {
		fmt.Fprintln(w, "player: none")
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = empty  # = wall  $ = treasure  @ = player  ? = hidden")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (full layout) ---")
	writeMapGrid(w, g, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (revealed cells only) ---")
	writeMapGrid(w, g, true)
	fmt.Fprintln(w, "")

	// --- Treasures ---
	fmt.Fprintln(w, "Treasures:")
	if len(treasures) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, t := range treasures {
		if !hasPlayer {
			fmt.Fprintf(w, "  x: %d y: %d\n", t.X, t.Y)
			continue
		}
		path := pathfind.BFS(g, player, t)
		if path == nil {
			fmt.Fprintf(w, "  x: %d y: %d distance: unreachable\n", t.X, t.Y)
			continue
		}
		fmt.Fprintf(w, "  x: %d y: %d distance: %d manhattan: %d\n", t.X, t.Y, path.Steps(), world.Manhattan(player, t))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END MAP DUMP ===")
	return w.Flush()
}
