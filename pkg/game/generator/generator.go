// Package generator builds treasure maps: randomised walls in three styles,
// then treasures that are guaranteed reachable from the player start.
package generator

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"treasurehunt/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate() (*world.Grid, Report)
	Name() string
}

// Config holds the tunables of the wall and treasure phases
type Config struct {
	Size            int
	MinObstacles    int
	MaxObstacles    int
	Treasures       int
	MazeShare       float64
	ScatterShare    float64
	ClusterShare    float64
	ClusterDensity  float64
	ScatterAttempts int
}

// DefaultConfig returns the stock 20x20, 20-30 obstacle, 3 treasure setup
func DefaultConfig() Config {
	return Config{
		Size:            world.DefaultSize,
		MinObstacles:    20,
		MaxObstacles:    30,
		Treasures:       3,
		MazeShare:       0.1,
		ScatterShare:    0.8,
		ClusterShare:    0.1,
		ClusterDensity:  0.7,
		ScatterAttempts: 10000,
	}
}

// Validate rejects configurations the phases cannot run with
func (c Config) Validate() error {
	switch {
	case c.Size < 4:
		return fmt.Errorf("grid size %d too small, need at least 4", c.Size)
	case c.MinObstacles < 0 || c.MaxObstacles < c.MinObstacles:
		return fmt.Errorf("invalid obstacle range [%d,%d]", c.MinObstacles, c.MaxObstacles)
	case c.Treasures < 0:
		return fmt.Errorf("invalid treasure count %d", c.Treasures)
	case c.ScatterAttempts <= 0:
		return fmt.Errorf("scatter attempts must be positive, got %d", c.ScatterAttempts)
	}
	for name, v := range map[string]float64{
		"maze share":      c.MazeShare,
		"scatter share":   c.ScatterShare,
		"cluster share":   c.ClusterShare,
		"cluster density": c.ClusterDensity,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s %v outside [0,1]", name, v)
		}
	}
	return nil
}

// Report summarises one generation run
type Report struct {
	Budget        int
	MazeBudget    int
	ScatterBudget int
	ClusterBudget int
	Walls         int
	Treasures     int
	Repairs       int
	Cleared       []world.Position
}

// Generator builds obstacle maps whose treasures are all reachable from the origin.
// It draws every random decision from its own source so runs are reproducible.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a generator. cfg must pass Validate.
func New(cfg Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Name returns the name of this generator
func (g *Generator) Name() string {
	return "Smart Walls"
}

// Config returns the generator configuration
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate runs the phases in order: seed player, wall budget, maze walls,
// scattered walls, clusters, treasures. No phase is retried.
func (g *Generator) Generate() (*world.Grid, Report) {
	grid := world.NewGrid(g.cfg.Size)
	grid.Set(world.Origin, world.Player)

	report := g.budget()
	g.placeMazeWalls(grid, report.MazeBudget)
	g.placeScatteredWalls(grid, report.ScatterBudget)
	g.placeWallClusters(grid, report.ClusterBudget)
	report.Walls = grid.Count(world.Wall)

	g.placeAccessibleTreasures(grid, &report)

	log.WithFields(log.Fields{
		"budget":    report.Budget,
		"walls":     report.Walls,
		"treasures": report.Treasures,
		"repairs":   report.Repairs,
	}).Debug("map generated")

	return grid, report
}

// budget draws the obstacle total and splits it by truncating each share.
// The three parts need not add up to the total.
func (g *Generator) budget() Report {
	total := g.cfg.MinObstacles + g.rng.Intn(g.cfg.MaxObstacles-g.cfg.MinObstacles+1)
	return Report{
		Budget:        total,
		MazeBudget:    int(float64(total) * g.cfg.MazeShare),
		ScatterBudget: int(float64(total) * g.cfg.ScatterShare),
		ClusterBudget: int(float64(total) * g.cfg.ClusterShare),
	}
}
