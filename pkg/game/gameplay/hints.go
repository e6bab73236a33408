package gameplay

import (
	"treasurehunt/pkg/engine/pathfind"
	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/state"
)

// HintOutcome describes the result of a hint request
type HintOutcome int

const (
	HintShown HintOutcome = iota
	HintNotEnoughPoints
	HintNoTreasures
	HintNoPath
	HintOver
)

// HintResult carries the search that produced a hint
type HintResult struct {
	Outcome   HintOutcome
	Algorithm pathfind.Algorithm
	Target    world.Position
	Next      world.Position
	Path      pathfind.Path
}

// NearestTreasure returns the treasure closest to from by Manhattan distance.
// Cells are scanned column by column (x outer, y inner) and the first one
// found wins ties.
func NearestTreasure(g *world.Grid, from world.Position) (world.Position, bool) {
	var (
		nearest world.Position
		best    = -1
	)
	size := g.Size()
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			p := world.Pos(x, y)
			if g.At(p) != world.Treasure {
				continue
			}
			if d := world.Manhattan(from, p); best < 0 || d < best {
				best = d
				nearest = p
			}
		}
	}
	return nearest, best >= 0
}

// Hint searches for the nearest treasure with algo and marks the next step.
// A shown hint costs HintCost; refused or pathless hints are free.
func Hint(s *state.Session, algo pathfind.Algorithm) HintResult {
	res := HintResult{Algorithm: algo}
	if s.Complete {
		res.Outcome = HintOver
		return res
	}
	if s.Score < state.HintCost {
		res.Outcome = HintNotEnoughPoints
		return res
	}

	target, ok := NearestTreasure(s.Grid, s.Player)
	if !ok {
		res.Outcome = HintNoTreasures
		return res
	}
	res.Target = target

	s.ClearHint()
	res.Path = algo.Find(s.Grid, s.Player, target)
	next, ok := res.Path.Next()
	if !ok {
		res.Outcome = HintNoPath
		return res
	}

	res.Next = next
	res.Outcome = HintShown
	s.SetHint(next)
	s.Score -= state.HintCost
	return res
}
