// Command mapserver exposes a maps directory over HTTP.
package main

import (
	"flag"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"

	"treasurehunt/pkg/game/config"
	"treasurehunt/pkg/game/generator"
	"treasurehunt/pkg/game/logging"
	"treasurehunt/pkg/game/mapserver"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalln(err)
	}
	if err := logging.Setup(cfg.LogLevel, os.Stderr); err != nil {
		log.Fatalln(err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := mapserver.New(cfg.Store(), generator.New(cfg.Generator, cfg.NewRand()))
	log.WithFields(log.Fields{"port": port, "maps": cfg.MapsDir}).Info("map server listening")
	log.Fatalln(http.ListenAndServe(":"+port, srv))
}
