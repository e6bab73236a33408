package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"treasurehunt/pkg/game/config"
	"treasurehunt/pkg/game/gameplay"
	"treasurehunt/pkg/game/generator"
	"treasurehunt/pkg/game/i18n"
	"treasurehunt/pkg/game/logging"
	"treasurehunt/pkg/game/renderer"
	ebitenrenderer "treasurehunt/pkg/game/renderer/ebiten"
	"treasurehunt/pkg/game/renderer/tui"
	"treasurehunt/pkg/game/state"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	cfg.RegisterGameFlags(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logOut, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := logging.Setup(cfg.LogLevel, logOut); err != nil {
		return err
	}
	if err := i18n.Setup(cfg.Lang); err != nil {
		return err
	}

	rng := cfg.NewRand()
	s, err := gameplay.LoadSession(cfg.Store(), rng, generator.New(cfg.Generator, rng))
	if err != nil {
		log.WithError(err).Error("no playable map")
		return fmt.Errorf("%s: %w", i18n.T("Failed to load map file. Exiting..."), err)
	}

	r := newRenderer(cfg.Renderer, s.Grid.Size())
	if err := r.Init(); err != nil {
		return err
	}

	err = r.Run(func() { mainLoop(r, s) })
	s.Log().WithFields(log.Fields{
		"score":     s.Score,
		"treasures": s.TreasuresFound,
		"complete":  s.Complete,
		"elapsed":   state.FormatElapsed(s.Elapsed()),
	}).Info("session ended")
	if err != nil {
		return err
	}

	r.ShowMessage(i18n.T("Goodbye!"))
	return nil
}

// mainLoop renders the session and applies one intent per frame until the
// player quits
func mainLoop(r renderer.Renderer, s *state.Session) {
	for !s.Quit {
		r.Clear()
		r.RenderFrame(s)
		gameplay.Apply(s, r.GetInput())
	}
}

func newRenderer(name string, gridSize int) renderer.Renderer {
	if name == config.RendererEbiten {
		return ebitenrenderer.New(gridSize)
	}
	return tui.New()
}

// openLog returns the log destination; an empty path means stderr
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
