package generator

import (
	log "github.com/sirupsen/logrus"

	"treasurehunt/pkg/engine/pathfind"
	"treasurehunt/pkg/engine/world"
)

// treasureCandidates returns the empty cells of the far (lower-right) quadrant
func treasureCandidates(grid *world.Grid) []world.Position {
	half := grid.Size() / 2
	var spots []world.Position
	for x := half; x < grid.Size(); x++ {
		for y := half; y < grid.Size(); y++ {
			p := world.Pos(x, y)
			if grid.At(p) == world.Empty {
				spots = append(spots, p)
			}
		}
	}
	return spots
}

// placeAccessibleTreasures places treasures in shuffled candidate order.
// A candidate the origin cannot reach is kept after carving a path to it.
func (g *Generator) placeAccessibleTreasures(grid *world.Grid, report *Report) {
	spots := treasureCandidates(grid)
	g.rng.Shuffle(len(spots), func(i, j int) {
		spots[i], spots[j] = spots[j], spots[i]
	})

	for _, spot := range spots {
		if report.Treasures >= g.cfg.Treasures {
			break
		}

		grid.Set(spot, world.Treasure)

		if !pathfind.Reachable(grid, world.Origin, spot) {
			cleared := Repair(grid, world.Origin, spot)
			report.Repairs++
			report.Cleared = append(report.Cleared, cleared...)
			log.WithFields(log.Fields{
				"treasure": spot.String(),
				"cleared":  len(cleared),
			}).Info("carved path to unreachable treasure")
		}
		report.Treasures++
	}

	if report.Treasures < g.cfg.Treasures {
		log.WithFields(log.Fields{
			"placed": report.Treasures,
			"wanted": g.cfg.Treasures,
		}).Warn("ran out of treasure candidates")
	}
}
