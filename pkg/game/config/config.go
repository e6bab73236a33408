// Package config collects the tunables shared by the game and the map tools
// and binds them to command-line flags.
package config

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"treasurehunt/pkg/game/generator"
	"treasurehunt/pkg/game/mapfile"
)

// Renderer backends
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Config holds every setting the binaries read from flags
type Config struct {
	MapsDir   string
	MaxMaps   int
	Seed      int64 // 0 seeds from the clock
	Renderer  string
	Lang      string
	LogLevel  string
	LogFile   string // game host only; empty logs to stderr
	Generator generator.Config
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		MapsDir:   ".",
		MaxMaps:   mapfile.DefaultMaxMaps,
		Renderer:  RendererTUI,
		Lang:      "en",
		LogLevel:  "info",
		LogFile:   "treasurehunt.log",
		Generator: generator.DefaultConfig(),
	}
}

// RegisterFlags binds the map, seed, logging and generator settings to fs
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.MapsDir, "maps", c.MapsDir, "directory holding map*.json files")
	fs.IntVar(&c.MaxMaps, "max-maps", c.MaxMaps, "highest map number to allocate")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 = time based)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")

	g := &c.Generator
	fs.IntVar(&g.Size, "size", g.Size, "grid side length")
	fs.IntVar(&g.MinObstacles, "min-obstacles", g.MinObstacles, "minimum obstacle budget")
	fs.IntVar(&g.MaxObstacles, "max-obstacles", g.MaxObstacles, "maximum obstacle budget")
	fs.IntVar(&g.Treasures, "treasures", g.Treasures, "treasures per map")
	fs.Float64Var(&g.ClusterDensity, "cluster-density", g.ClusterDensity, "fill probability inside a wall cluster")
	fs.IntVar(&g.ScatterAttempts, "scatter-attempts", g.ScatterAttempts, "resampling cap for scattered walls")
}

// RegisterGameFlags binds the settings only the game host uses
func (c *Config) RegisterGameFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer backend (tui, ebiten)")
	fs.StringVar(&c.Lang, "lang", c.Lang, "message language")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "file the game logs to (empty for stderr)")
}

// Validate checks the configuration before anything is generated or loaded
func (c Config) Validate() error {
	if c.MapsDir == "" {
		return fmt.Errorf("maps directory must not be empty")
	}
	if c.MaxMaps <= 0 {
		return fmt.Errorf("max maps must be positive, got %d", c.MaxMaps)
	}
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	return nil
}

// NewRand returns a random source for the configured seed
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Store returns the map store for the configured directory
func (c Config) Store() *mapfile.Store {
	return mapfile.NewStore(c.MapsDir, c.MaxMaps)
}
