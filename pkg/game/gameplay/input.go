package gameplay

import (
	log "github.com/sirupsen/logrus"

	engineinput "treasurehunt/pkg/engine/input"
	"treasurehunt/pkg/engine/pathfind"
	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/i18n"
	"treasurehunt/pkg/game/state"
)

// Apply handles a high-level input intent and records the resulting messages.
func Apply(s *state.Session, intent engineinput.Intent) {
	if intent.Action == engineinput.ActionNone {
		return
	}
	if intent.Action == engineinput.ActionQuit {
		s.Quit = true
		s.Log().WithField("score", s.Score).Info("session quit")
		return
	}
	if s.Complete {
		s.AddMessage(i18n.T("The hunt is over. Press q to quit."))
		return
	}

	switch intent.Action {
	case engineinput.ActionMoveNorth, engineinput.ActionMoveSouth,
		engineinput.ActionMoveWest, engineinput.ActionMoveEast:
		reportMove(s, Move(s, intent.Dir))

	case engineinput.ActionHintBFS:
		reportHint(s, Hint(s, pathfind.AlgorithmBFS))

	case engineinput.ActionHintAStar:
		reportHint(s, Hint(s, pathfind.AlgorithmAStar))

	default:
		s.AddMessage(i18n.T("Unknown command."))
	}
}

func reportMove(s *state.Session, o Outcome) {
	switch o {
	case OutcomeBoundary:
		s.AddMessage(i18n.T("Map boundary!"))
	case OutcomeWallHit:
		s.AddMessage(i18n.T("Wall hit! -%d points", state.WallPenalty))
	case OutcomeTreasure:
		s.AddMessage(i18n.T("Treasure found! %d/%d", s.TreasuresFound, s.TreasuresTotal))
		s.Log().WithField("found", s.TreasuresFound).Info("treasure collected")
	case OutcomeWon:
		s.AddMessage(i18n.T("Treasure found! %d/%d", s.TreasuresFound, s.TreasuresTotal))
		s.AddMessage(i18n.T("You won! Final score: %d", s.Score))
		s.Log().WithFields(log.Fields{
			"score":   s.Score,
			"elapsed": state.FormatElapsed(s.Elapsed()),
		}).Info("hunt won")
	}
}

func reportHint(s *state.Session, res HintResult) {
	switch res.Outcome {
	case HintNotEnoughPoints:
		s.AddMessage(i18n.T("Not enough points!"))
	case HintNoTreasures:
		s.AddMessage(i18n.T("No treasures left!"))
	case HintNoPath:
		s.AddMessage(i18n.T("No path to the nearest treasure."))
	case HintShown:
		dir, _ := world.DirectionBetween(s.Player, res.Next)
		s.AddMessage(i18n.T("%s hint: next step %s (-%d points)", res.Algorithm.DisplayName(), dir.String(), state.HintCost))
		s.Log().WithFields(log.Fields{
			"algo":  string(res.Algorithm),
			"steps": res.Path.Steps(),
		}).Debug("hint shown")
	}
}
