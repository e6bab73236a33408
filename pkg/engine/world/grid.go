package world

import (
	"errors"
	"fmt"
)

// DefaultSize is the side length of every generated map
const DefaultSize = 20

// ErrInvalidGrid is returned by Validate for grids that break the model invariants
var ErrInvalidGrid = errors.New("invalid grid")

// Grid is a square matrix of cells with per-cell visibility.
// Cells are stored row-major: index y*size + x.
type Grid struct {
	size       int
	cells      []CellKind
	visibility []Visibility
}

// NewGrid creates an all-empty, all-hidden grid with the given side length
func NewGrid(size int) *Grid {
	if size <= 0 {
		panic("Grid size must be positive")
	}
	return &Grid{
		size:       size,
		cells:      make([]CellKind, size*size),
		visibility: make([]Visibility, size*size),
	}
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// InBounds checks if a position lies within [0,size)x[0,size)
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// IsInterior checks if a position is off the outermost ring
func (g *Grid) IsInterior(p Position) bool {
	return p.X >= 1 && p.X < g.size-1 && p.Y >= 1 && p.Y < g.size-1
}

func (g *Grid) index(p Position) int {
	return p.Y*g.size + p.X
}

// At returns the kind of the cell at p. Positions outside the grid read as Wall.
func (g *Grid) At(p Position) CellKind {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.index(p)]
}

// Set stores kind at p. Returns false if p is out of bounds.
func (g *Grid) Set(p Position, kind CellKind) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[g.index(p)] = kind
	return true
}

// Visibility returns whether the cell at p has been revealed
func (g *Grid) Visibility(p Position) Visibility {
	if !g.InBounds(p) {
		return Hidden
	}
	return g.visibility[g.index(p)]
}

// IsVisible is shorthand for Visibility(p) == Visible
func (g *Grid) IsVisible(p Position) bool {
	return g.Visibility(p) == Visible
}

// Reveal marks the cell at p as visible
func (g *Grid) Reveal(p Position) {
	if g.InBounds(p) {
		g.visibility[g.index(p)] = Visible
	}
}

// ForEachCell iterates over all cells row by row, calling fn for each
func (g *Grid) ForEachCell(fn func(p Position, kind CellKind)) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			p := Position{X: x, Y: y}
			fn(p, g.cells[g.index(p)])
		}
	}
}

// Positions returns every position holding kind, row by row
func (g *Grid) Positions(kind CellKind) []Position {
	var out []Position
	g.ForEachCell(func(p Position, k CellKind) {
		if k == kind {
			out = append(out, p)
		}
	})
	return out
}

// Count returns the number of cells holding kind
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// Player returns the position of the first Player cell
func (g *Grid) Player() (Position, bool) {
	for i, k := range g.cells {
		if k == Player {
			return Position{X: i % g.size, Y: i / g.size}, true
		}
	}
	return Position{}, false
}

// Clone returns a deep copy of the grid, visibility included
func (g *Grid) Clone() *Grid {
	c := &Grid{
		size:       g.size,
		cells:      make([]CellKind, len(g.cells)),
		visibility: make([]Visibility, len(g.visibility)),
	}
	copy(c.cells, g.cells)
	copy(c.visibility, g.visibility)
	return c
}

// Equal reports whether both grids have the same size and cell kinds.
// Visibility is ignored.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Validate checks the grid for model violations: exactly one Player cell
// and only known cell kinds.
func (g *Grid) Validate() error {
	if g.size <= 0 || len(g.cells) != g.size*g.size {
		return fmt.Errorf("%w: bad dimensions", ErrInvalidGrid)
	}
	players := 0
	for i, k := range g.cells {
		if !k.IsValid() {
			return fmt.Errorf("%w: unknown cell kind %d at %d,%d", ErrInvalidGrid, k, i%g.size, i/g.size)
		}
		if k == Player {
			players++
		}
	}
	if players != 1 {
		return fmt.Errorf("%w: %d player cells, want 1", ErrInvalidGrid, players)
	}
	return nil
}
