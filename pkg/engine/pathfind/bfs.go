package pathfind

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"treasurehunt/pkg/engine/world"
)

// BFS returns a shortest walkable path from start to goal, or nil if none exists
func BFS(g *world.Grid, start, goal world.Position) Path {
	return BFSFunc(g, start, goal, world.Neighbors)
}

// BFSFunc runs breadth-first search using the given neighbour function.
// Positions are marked visited when enqueued, so each is enqueued at most once.
func BFSFunc(g *world.Grid, start, goal world.Position, neighbors world.NeighborFunc) Path {
	if g == nil || !g.InBounds(start) || !g.InBounds(goal) {
		return nil
	}

	frontier := queue.New[Node]()
	visited := mapset.New[world.Position]()
	cameFrom := make(map[world.Position]world.Position)

	frontier.Enqueue(Node{Pos: start})
	visited.Put(start)

	for !frontier.Empty() {
		current := frontier.Dequeue()

		if current.Pos == goal {
			return reconstructPath(cameFrom, start, goal)
		}

		for _, n := range neighbors(g, current.Pos) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			cameFrom[n] = current.Pos
			frontier.Enqueue(Node{Pos: n, Key: current.Key + 1})
		}
	}

	return nil
}

// Reachable reports whether goal can be reached from start without crossing a wall
func Reachable(g *world.Grid, start, goal world.Position) bool {
	return BFS(g, start, goal) != nil
}

// ReachableSet returns every position reachable from start, start included
func ReachableSet(g *world.Grid, start world.Position) mapset.Set[world.Position] {
	reachable := mapset.New[world.Position]()
	if g == nil || !g.InBounds(start) {
		return reachable
	}
	frontier := queue.New[world.Position]()
	frontier.Enqueue(start)
	reachable.Put(start)
	for !frontier.Empty() {
		current := frontier.Dequeue()
		for _, n := range world.Neighbors(g, current) {
			if !reachable.Has(n) {
				reachable.Put(n)
				frontier.Enqueue(n)
			}
		}
	}
	return reachable
}
