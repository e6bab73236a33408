package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestRegisterFlags(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	cfg.RegisterGameFlags(fs)

	err := fs.Parse([]string{"-maps", "/tmp/maps", "-seed", "42", "-size", "12", "-renderer", "ebiten", "-lang", "de", "-max-obstacles", "40"})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/maps", cfg.MapsDir)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 12, cfg.Generator.Size)
	assert.Equal(t, 40, cfg.Generator.MaxObstacles)
	assert.Equal(t, RendererEbiten, cfg.Renderer)
	assert.Equal(t, "de", cfg.Lang)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"no dir":          func(c *Config) { c.MapsDir = "" },
		"zero max maps":   func(c *Config) { c.MaxMaps = 0 },
		"renderer":        func(c *Config) { c.Renderer = "sdl" },
		"tiny grid":       func(c *Config) { c.Generator.Size = 2 },
		"min above max":   func(c *Config) { c.Generator.MinObstacles = 50 },
		"share above one": func(c *Config) { c.Generator.ScatterShare = 1.2 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewRand_SeedIsReproducible(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	assert.Equal(t, cfg.NewRand().Int63(), cfg.NewRand().Int63())
}
