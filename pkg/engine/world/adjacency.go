package world

// NeighborFunc maps a cell to the cells a search may step to from it
type NeighborFunc func(g *Grid, p Position) []Position

// Walkable is the single definition of which cell kinds can be entered
func Walkable(kind CellKind) bool {
	return kind != Wall
}

// Neighbors returns the in-bounds, walkable orthogonal neighbours of p in
// North, East, South, West order.
func Neighbors(g *Grid, p Position) []Position {
	out := make([]Position, 0, 4)
	for _, dir := range AllDirections() {
		n := p.Step(dir)
		if g.InBounds(n) && Walkable(g.At(n)) {
			out = append(out, n)
		}
	}
	return out
}

// BoundedNeighbors returns every in-bounds orthogonal neighbour of p,
// walls included. Only route-finding for wall carving uses it.
func BoundedNeighbors(g *Grid, p Position) []Position {
	out := make([]Position, 0, 4)
	for _, dir := range AllDirections() {
		n := p.Step(dir)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}
