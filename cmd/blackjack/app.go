package main

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"blackjack/internal/config"
	"blackjack/internal/database"
	"blackjack/internal/game"
	"blackjack/internal/randutil"
	"blackjack/internal/session"
)

type app struct {
	cfg    *config.Config
	logger *log.Logger
	rng    game.Rand
}

func (o Options) setup() (*app, error) {
	return o.setupWith(os.Stderr)
}

func (o Options) setupWith(w io.Writer) (*app, error) {
	cfg, err := config.Load(o.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, levelErr := log.ParseLevel(cfg.LogLevel)
	if levelErr != nil {
		level = log.InfoLevel
	}
	if o.Debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
	if levelErr != nil {
		logger.Warn("Invalid LOG_LEVEL, using info", "value", cfg.LogLevel)
	}

	if o.Seed != nil {
		cfg.ShuffleSeed, cfg.HasSeed = *o.Seed, true
	}

	var r *rand.Rand
	if cfg.HasSeed {
		logger.Info("Using deterministic seed", "seed", cfg.ShuffleSeed)
		r = randutil.New(cfg.ShuffleSeed)
	} else {
		r = randutil.NewRandom()
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		rng:    randutil.NewLocked(r),
	}, nil
}

// openStore picks SQLite when DATABASE_PATH is set and memory otherwise.
func (a *app) openStore() (session.Store, func(), error) {
	if a.cfg.DatabasePath == "" {
		a.logger.Info("Using in-memory session store")
		return session.NewMemoryStore(), func() {}, nil
	}

	db, err := database.New(a.cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.logger.Info("Database connected", "path", a.cfg.DatabasePath)

	closeFn := func() {
		if err := db.Close(); err != nil {
			a.logger.Error("Failed to close database", "error", err)
		}
	}
	return session.NewSQLiteStore(db.DB), closeFn, nil
}

func (a *app) signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
