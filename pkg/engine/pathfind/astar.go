package pathfind

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"treasurehunt/pkg/engine/world"
)

// AStar returns a shortest walkable path from start to goal using the
// Manhattan heuristic, or nil if none exists
func AStar(g *world.Grid, start, goal world.Position) Path {
	return AStarFunc(g, start, goal, world.Neighbors)
}

// AStarFunc runs A* using the given neighbour function. Every step costs 1.
//
// The frontier accepts duplicate entries for a position; an entry for a
// position that has already been expanded is stale and is skipped on pop.
func AStarFunc(g *world.Grid, start, goal world.Position, neighbors world.NeighborFunc) Path {
	if g == nil || !g.InBounds(start) || !g.InBounds(goal) {
		return nil
	}

	open := heap.New[Node](LessByKey)
	closed := mapset.New[world.Position]()
	gScore := map[world.Position]int{start: 0}
	cameFrom := make(map[world.Position]world.Position)

	seq := 0
	push := func(p world.Position, cost int) {
		h := world.Manhattan(p, goal)
		seq++
		open.Push(Node{Pos: p, Key: cost + h, Tie: h, Seq: seq})
	}
	push(start, 0)

	for open.Size() > 0 {
		current, _ := open.Pop()
		if closed.Has(current.Pos) {
			continue
		}

		if current.Pos == goal {
			return reconstructPath(cameFrom, start, goal)
		}
		closed.Put(current.Pos)

		tentative := gScore[current.Pos] + 1
		for _, n := range neighbors(g, current.Pos) {
			if best, seen := gScore[n]; seen && tentative >= best {
				continue
			}
			gScore[n] = tentative
			cameFrom[n] = current.Pos
			push(n, tentative)
		}
	}

	return nil
}
