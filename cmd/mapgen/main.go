// Command mapgen generates treasure maps into the maps directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"treasurehunt/pkg/game/config"
	"treasurehunt/pkg/game/devtools"
	"treasurehunt/pkg/game/generator"
	"treasurehunt/pkg/game/i18n"
	"treasurehunt/pkg/game/logging"
	"treasurehunt/pkg/game/mapfile"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	count := flag.Int("count", 1, "number of maps to generate")
	dump := flag.Bool("dump", false, "write a debug dump of each map to stdout")
	lang := flag.String("lang", cfg.Lang, "message language")
	flag.Parse()

	cfg.Lang = *lang
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logging.Setup(cfg.LogLevel, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := i18n.Setup(cfg.Lang); err != nil {
		log.WithError(err).Warn("falling back to untranslated messages")
	}

	store := cfg.Store()
	rng := cfg.NewRand()
	gen := generator.New(cfg.Generator, rng)

	for i := 0; i < *count; i++ {
		grid, report := gen.Generate()
		name, err := store.Save(grid)
		if errors.Is(err, mapfile.ErrSaturated) {
			fmt.Println(i18n.T("Maximum map count (%d) reached", store.MaxMaps))
			os.Exit(1)
		}
		if err != nil {
			log.WithError(err).Fatal("saving map")
		}

		log.WithFields(log.Fields{
			"map":     name,
			"walls":   report.Walls,
			"repairs": report.Repairs,
		}).Debug("map saved")
		fmt.Println(i18n.T("Successfully created %s", name))

		if *dump {
			if err := devtools.DumpMap(os.Stdout, grid); err != nil {
				log.WithError(err).Fatal("dumping map")
			}
		}
	}
}
