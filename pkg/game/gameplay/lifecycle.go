package gameplay

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"treasurehunt/pkg/engine/world"
	"treasurehunt/pkg/game/generator"
	"treasurehunt/pkg/game/mapfile"
	"treasurehunt/pkg/game/state"
)

// NewSession starts a hunt on an already loaded grid
func NewSession(grid *world.Grid, mapName string) (*state.Session, error) {
	s, err := state.NewSession(grid, mapName)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", mapName, err)
	}
	s.Log().WithFields(log.Fields{
		"treasures": s.TreasuresTotal,
		"player":    s.Player.String(),
	}).Info("session started")
	return s, nil
}

// LoadSession picks a random map from store, generating one first if the
// store is empty, and starts a hunt on it
func LoadSession(store *mapfile.Store, rng *rand.Rand, gen generator.GridGenerator) (*state.Session, error) {
	grid, name, err := store.LoadOrGenerate(rng, gen)
	if err != nil {
		return nil, err
	}
	return NewSession(grid, name)
}
