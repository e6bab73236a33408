package world

import "fmt"

// Position is an (x, y) grid coordinate. x is the column, y the row.
// Positions are comparable and are used directly as map and set keys.
type Position struct {
	X int
	Y int
}

// Pos is shorthand for Position{X: x, Y: y}
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Origin is the fixed player start of every generated map
var Origin = Position{}

// String returns "x,y"
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns p shifted by dx, dy
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbouring position in the given direction
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return p.Add(dx, dy)
}

// Manhattan returns |dx| + |dy| between p and q
func Manhattan(p, q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// ParsePosition parses the "x,y" form produced by String
func ParsePosition(s string) (Position, error) {
	var p Position
	n, err := fmt.Sscanf(s, "%d,%d", &p.X, &p.Y)
	if err != nil || n != 2 {
		return Position{}, fmt.Errorf("invalid position %q: want x,y", s)
	}
	return p, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
