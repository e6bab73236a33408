// Package mapfile reads and writes the persisted map format:
//
//	{"grid": ["<N digit row>", ...], "size": N, "treasures": T}
//
// Row index is y, character index is x; digits are 0 empty, 1 wall,
// 2 treasure, 3 player.
package mapfile

import (
	"encoding/json"
	"errors"
	"fmt"

	"treasurehunt/pkg/engine/world"
)

// ErrMalformed is wrapped by every schema violation
var ErrMalformed = errors.New("malformed map")

// MapFile is the JSON document stored per map
type MapFile struct {
	Grid      []string `json:"grid"`
	Size      int      `json:"size"`
	Treasures int      `json:"treasures"`
}

// rawMapFile detects missing keys, which the plain struct would zero-fill
type rawMapFile struct {
	Grid      *[]string `json:"grid"`
	Size      *int      `json:"size"`
	Treasures *int      `json:"treasures"`
}

// Encode converts a grid into its persisted form. treasures is the number of
// Treasure cells on the grid.
func Encode(g *world.Grid) MapFile {
	size := g.Size()
	rows := make([]string, size)
	for y := 0; y < size; y++ {
		row := make([]byte, size)
		for x := 0; x < size; x++ {
			row[x] = g.At(world.Pos(x, y)).Digit()
		}
		rows[y] = string(row)
	}
	return MapFile{
		Grid:      rows,
		Size:      size,
		Treasures: g.Count(world.Treasure),
	}
}

// Decode validates a MapFile and builds the grid it describes.
// The returned count is the document's treasures value.
func Decode(mf MapFile) (*world.Grid, int, error) {
	if mf.Size <= 0 {
		return nil, 0, fmt.Errorf("%w: size %d", ErrMalformed, mf.Size)
	}
	if len(mf.Grid) != mf.Size {
		return nil, 0, fmt.Errorf("%w: %d rows, want %d", ErrMalformed, len(mf.Grid), mf.Size)
	}
	if mf.Treasures < 0 {
		return nil, 0, fmt.Errorf("%w: treasures %d", ErrMalformed, mf.Treasures)
	}

	g := world.NewGrid(mf.Size)
	for y, row := range mf.Grid {
		if len(row) != mf.Size {
			return nil, 0, fmt.Errorf("%w: row %d has %d characters, want %d", ErrMalformed, y, len(row), mf.Size)
		}
		for x := 0; x < len(row); x++ {
			kind, ok := world.KindFromDigit(row[x])
			if !ok {
				return nil, 0, fmt.Errorf("%w: invalid cell %q at %d,%d", ErrMalformed, row[x], x, y)
			}
			g.Set(world.Pos(x, y), kind)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return g, mf.Treasures, nil
}

// Marshal encodes a grid straight to JSON
func Marshal(g *world.Grid) ([]byte, error) {
	return json.Marshal(Encode(g))
}

// Unmarshal parses JSON into a MapFile, rejecting documents with missing keys
func Unmarshal(data []byte) (MapFile, error) {
	var raw rawMapFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return MapFile{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	switch {
	case raw.Grid == nil:
		return MapFile{}, fmt.Errorf("%w: missing key \"grid\"", ErrMalformed)
	case raw.Size == nil:
		return MapFile{}, fmt.Errorf("%w: missing key \"size\"", ErrMalformed)
	case raw.Treasures == nil:
		return MapFile{}, fmt.Errorf("%w: missing key \"treasures\"", ErrMalformed)
	}
	return MapFile{Grid: *raw.Grid, Size: *raw.Size, Treasures: *raw.Treasures}, nil
}

// Parse is Unmarshal followed by Decode
func Parse(data []byte) (*world.Grid, int, error) {
	mf, err := Unmarshal(data)
	if err != nil {
		return nil, 0, err
	}
	return Decode(mf)
}
