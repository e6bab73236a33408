// Package gameplay provides core game logic for player movement and hints.
package gameplay

import (
	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/state"
)

// Outcome describes what a move attempt did
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeBoundary
	OutcomeWallHit
	OutcomeTreasure
	OutcomeWon
	OutcomeOver // the hunt had already ended
)

// String returns the name of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeBoundary:
		return "boundary"
	case OutcomeWallHit:
		return "wall"
	case OutcomeTreasure:
		return "treasure"
	case OutcomeWon:
		return "won"
	case OutcomeOver:
		return "over"
	default:
		return "unknown"
	}
}

// Move tries to step the player one cell in dir.
//
// Leaving the map costs nothing. Walking into a wall reveals it and costs
// WallPenalty without moving. Any other move empties the old cell, collects a
// treasure on the target, reveals the target, clears the hint and costs
// MoveCost. The move that collects the last treasure ends the hunt and is not
// charged, so the final score is the one announced.
func Move(s *state.Session, dir world.Direction) Outcome {
	if s.Complete {
		return OutcomeOver
	}

	target := s.Player.Step(dir)
	if !s.Grid.InBounds(target) {
		return OutcomeBoundary
	}

	if s.Grid.At(target) == world.Wall {
		s.Grid.Reveal(target)
		s.Score -= state.WallPenalty
		return OutcomeWallHit
	}

	s.Grid.Set(s.Player, world.Empty)

	outcome := OutcomeMoved
	if s.Grid.At(target) == world.Treasure {
		s.TreasuresFound++
		outcome = OutcomeTreasure
	}

	s.Player = target
	s.Grid.Set(target, world.Player)
	s.Grid.Reveal(target)
	s.ClearHint()

	if outcome == OutcomeTreasure && s.Remaining() <= 0 {
		s.Finish()
		return OutcomeWon
	}

	s.Score -= state.MoveCost
	return outcome
}
