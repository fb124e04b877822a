package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
	"github.com/lixenwraith/term-snake/score"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "snake needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open score store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.HideCursor()
	screen.Clear()

	source := input.NewScreenSource(screen)
	source.Start()

	env := engine.Env{
		Sink:   render.NewScreenSink(screen),
		Source: source,
		Clock:  engine.NewSystemClock(),
		Rand:   core.NewRand(),
		Log:    logger,
	}

	w, h := screen.Size()
	logger.Info().Int("width", w).Int("height", h).Str("backend", cfg.ScoreBackend).Msg("session started")

	engine.NewSession(env, store).Run()

	core.SetCrashScreen(nil)
	screen.Fini()
}

// openStore returns the configured score backend and its release function
func openStore(cfg config.Config, logger zerolog.Logger) (score.Store, func(), error) {
	if cfg.ScoreBackend == config.BackendSQLite {
		s, err := score.OpenSQLiteStore(cfg.ScoresDB, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				logger.Warn().Err(err).Msg("closing score database failed")
			}
		}, nil
	}
	return score.NewJSONStore(cfg.ScoresFile, logger), func() {}, nil
}
