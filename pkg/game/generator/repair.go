package generator

import (
	"treasurehunt/pkg/engine/pathfind"
	"treasurehunt/pkg/engine/world"
)

// Repair makes to reachable from from by clearing the walls on one shortest
// route between them. The route is found with walls treated as passable;
// every Wall cell on it becomes Empty. The cleared positions are returned in
// route order. Endpoints that are walls themselves are cleared too.
//
// Repair only touches grid cells; it does not depend on how the walls got there.
func Repair(grid *world.Grid, from, to world.Position) []world.Position {
	route := pathfind.AStarFunc(grid, from, to, world.BoundedNeighbors)

	var cleared []world.Position
	for _, p := range route {
		if grid.At(p) == world.Wall {
			grid.Set(p, world.Empty)
			cleared = append(cleared, p)
		}
	}
	return cleared
}
