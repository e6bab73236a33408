// Package world provides the square grid the generator builds and the
// searches walk: cell kinds, positions, directions and adjacency.
package world

// CellKind is the semantic role of a single grid cell.
// The numeric values double as the digits of the persisted map format.
type CellKind uint8

// Cell kinds
const (
	Empty CellKind = iota
	Wall
	Treasure
	Player
)

// String returns the name of the cell kind
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Treasure:
		return "Treasure"
	case Player:
		return "Player"
	default:
		return "Unknown"
	}
}

// IsValid returns true if k is one of the four known kinds
func (k CellKind) IsValid() bool {
	return k <= Player
}

// Digit returns the map-file digit for this kind ('0'..'3')
func (k CellKind) Digit() byte {
	return '0' + byte(k)
}

// KindFromDigit parses a map-file digit. ok is false for anything outside '0'..'3'.
func KindFromDigit(c byte) (kind CellKind, ok bool) {
	if c < '0' || c > '3' {
		return Empty, false
	}
	return CellKind(c - '0'), true
}

// Visibility tracks whether the player has seen a cell.
// It has no influence on pathfinding.
type Visibility uint8

const (
	Hidden Visibility = iota
	Visible
)
