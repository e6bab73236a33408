package pathfind

import (
	"fmt"
	"strings"

	"treasurehunt/pkg/engine/world"
)

// Algorithm names a search strategy. Both yield shortest paths on the grid.
type Algorithm string

// Available algorithms
const (
	AlgorithmBFS   Algorithm = "bfs"
	AlgorithmAStar Algorithm = "astar"
)

// ParseAlgorithm accepts "bfs", "astar" and "a*" in any case
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "":
		return AlgorithmBFS, nil
	case "astar", "a*":
		return AlgorithmAStar, nil
	default:
		return "", fmt.Errorf("unknown search algorithm %q", s)
	}
}

// Find runs the algorithm from start to goal
func (a Algorithm) Find(g *world.Grid, start, goal world.Position) Path {
	if a == AlgorithmAStar {
		return AStar(g, start, goal)
	}
	return BFS(g, start, goal)
}

// DisplayName returns the label shown to players
func (a Algorithm) DisplayName() string {
	if a == AlgorithmAStar {
		return "A*"
	}
	return "BFS"
}
