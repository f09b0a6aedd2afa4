package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/ai"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/config"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/data"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/db"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/rng"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/sim"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := config.Path()
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.TraceMoves(logLevel)

	seed := rng.RandomSeed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	runID := uuid.New()
	slog.Info("winterd starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"seed", seed,
		"run", runID)

	profile, err := data.LoadProfile(cfg.ProfilePath)
	if err != nil {
		return fmt.Errorf("loading world profile: %w", err)
	}
	profileName := cfg.ProfilePath
	if profileName == "" {
		profileName = data.DefaultProfileName
	}
	slog.Info("world profile loaded",
		"profile", profileName,
		"species", profile.Catalog.Keys(),
		"maps", profile.MapNames())

	var (
		recorder model.Recorder = model.NopRecorder{}
		journal  *db.JournalRepository
		writer   *db.EventWriter
	)
	if cfg.Journal.Enabled {
		dsn := cfg.Journal.Database.DSN()
		if _, err := db.RunMigrations(ctx, dsn); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		database, err := db.New(ctx, dsn)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("journal database connected")

		journal = db.NewJournalRepository(database.Pool())
		if err := journal.StartRun(ctx, runID, seed, profileName); err != nil {
			return err
		}
		writer = db.NewEventWriter(runID, journal,
			cfg.Journal.BufferSize, cfg.Journal.BatchSize, cfg.Journal.FlushInterval)
		recorder = writer
	}

	engine, err := sim.New(profile, sim.Options{
		Seed:         seed,
		Turns:        cfg.Turns,
		TurnInterval: cfg.TurnInterval,
		Spawn:        cfg.Spawn,
		Recorder:     recorder,
	})
	if err != nil {
		return fmt.Errorf("creating simulation: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := engine.Run(gctx)
		if writer != nil {
			writer.Close()
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("simulation: %w", err)
		}
		return nil
	})
	if writer != nil {
		g.Go(func() error {
			slog.Info("starting journal writer",
				"batch", cfg.Journal.BatchSize,
				"flush_interval", cfg.Journal.FlushInterval)
			if err := writer.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("journal writer: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if journal != nil {
		finishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := journal.FinishRun(finishCtx, runID, engine.Turn()); err != nil {
			slog.Error("failed to close journal run", "run", runID, "error", err)
		}
		stats := writer.Stats()
		slog.Info("journal summary",
			"written", stats.Written,
			"dropped", stats.Dropped,
			"failed", stats.Failed)
	}

	report(engine)
	return nil
}

// report logs the end-of-run totals and prints every map.
func report(engine *sim.Engine) {
	s := engine.Summary()
	slog.Info("run summary",
		"turns", s.Turns,
		"alive", s.Alive,
		"spawned", s.Spawn.Spawned,
		"spawn_conflicts", s.Spawn.PlacementConflicts,
		"spawn_failures", s.Spawn.Failures+s.Spawn.EffectFailures,
		"deaths_health", s.Deaths[model.CauseHealth],
		"deaths_warmth", s.Deaths[model.CauseWarmth],
		"moved", s.Behavior.Moved,
		"grazed", s.Behavior.Grazed)

	for _, m := range engine.World().Maps() {
		fmt.Printf("%s (turn %d, %d creatures)\n%s\n", m.Name(), s.Turns, m.ActorCount(), m)
	}
}
