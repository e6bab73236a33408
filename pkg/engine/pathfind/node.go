// Package pathfind implements breadth-first and A* shortest-path search over
// a world.Grid. Both searches share one frontier node type and return a
// Path, or nil when the goal cannot be reached.
package pathfind

import (
	"treasurehunt/pkg/engine/world"
)

// Node is a frontier entry: a position plus the numeric keys used to order it.
// BFS stores the distance from the start in Key and relies on FIFO order;
// A* stores f = g + h in Key and h in Tie.
type Node struct {
	Pos world.Position
	Key int
	Tie int
	Seq int
}

// LessByKey orders nodes by Key, then Tie, then insertion sequence.
// This makes A* expand the node closest to the goal among equal f-scores,
// and the oldest of those first.
func LessByKey(a, b Node) bool {
	if a.Key != b.Key {
		return a.Key < b.Key
	}
	if a.Tie != b.Tie {
		return a.Tie < b.Tie
	}
	return a.Seq < b.Seq
}

// Path is an ordered list of positions from start to goal inclusive
type Path []world.Position

// Steps returns the number of moves along the path (len-1), or -1 for no path
func (p Path) Steps() int {
	if len(p) == 0 {
		return -1
	}
	return len(p) - 1
}

// Next returns the first move away from the start, if there is one
func (p Path) Next() (world.Position, bool) {
	if len(p) < 2 {
		return world.Position{}, false
	}
	return p[1], true
}

// Goal returns the last position of the path
func (p Path) Goal() (world.Position, bool) {
	if len(p) == 0 {
		return world.Position{}, false
	}
	return p[len(p)-1], true
}

// reconstructPath walks predecessors back from goal to start and reverses
func reconstructPath(cameFrom map[world.Position]world.Position, start, goal world.Position) Path {
	path := Path{goal}
	for current := goal; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
