package generator

import (
	log "github.com/sirupsen/logrus"

	"treasurehunt/pkg/engine/world"
)

// placeMazeWalls stamps L-shaped triominoes anchored off the outer ring.
// Overlaps with existing walls are harmless; the anchor bounds keep both
// orientations in the grid and away from the origin.
func (g *Generator) placeMazeWalls(grid *world.Grid, count int) {
	size := grid.Size()
	for i := 0; i < count; i++ {
		anchor := world.Pos(g.rng.Intn(size-2)+1, g.rng.Intn(size-2)+1)

		var shape [3]world.Position
		if g.rng.Intn(2) == 0 {
			shape = [3]world.Position{anchor, anchor.Add(1, 0), anchor.Add(0, 1)}
		} else {
			shape = [3]world.Position{anchor, anchor.Add(-1, 0), anchor.Add(0, -1)}
		}
		for _, p := range shape {
			grid.Set(p, world.Wall)
		}
	}
	log.WithFields(log.Fields{"phase": "maze", "budget": count}).Debug("walls placed")
}

// placeScatteredWalls places single walls on random empty cells other than the origin.
// Resampling is capped; past the cap the wall goes on a uniformly chosen free cell.
func (g *Generator) placeScatteredWalls(grid *world.Grid, count int) {
	size := grid.Size()
	placed := 0
	for i := 0; i < count; i++ {
		p, ok := g.sampleFreeCell(grid, size)
		if !ok {
			log.WithField("phase", "scatter").Warn("no empty cells left for walls")
			break
		}
		grid.Set(p, world.Wall)
		placed++
	}
	log.WithFields(log.Fields{"phase": "scatter", "budget": count, "walls": placed}).Debug("walls placed")
}

func (g *Generator) sampleFreeCell(grid *world.Grid, size int) (world.Position, bool) {
	for attempt := 0; attempt < g.cfg.ScatterAttempts; attempt++ {
		p := world.Pos(g.rng.Intn(size), g.rng.Intn(size))
		if grid.At(p) == world.Empty && p != world.Origin {
			return p, true
		}
	}

	free := grid.Positions(world.Empty)
	if len(free) == 0 {
		return world.Position{}, false
	}
	return free[g.rng.Intn(len(free))], true
}

// placeWallClusters fills each cell of a 3x3 block with a wall at the
// configured density, only over empty cells.
func (g *Generator) placeWallClusters(grid *world.Grid, count int) {
	size := grid.Size()
	for i := 0; i < count; i++ {
		center := world.Pos(g.rng.Intn(size-3)+1, g.rng.Intn(size-3)+1)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if g.rng.Float64() >= g.cfg.ClusterDensity {
					continue
				}
				p := center.Add(dx, dy)
				if grid.InBounds(p) && grid.At(p) == world.Empty {
					grid.Set(p, world.Wall)
				}
			}
		}
	}
	log.WithFields(log.Fields{"phase": "cluster", "budget": count}).Debug("walls placed")
}
