package sim

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/ai"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/config"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/data"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/rng"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/spawn"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/turn"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

// Options configures an Engine.
type Options struct {
	Seed         int64
	Turns        int           // 0 means no limit
	TurnInterval time.Duration // 0 means back to back
	Spawn        config.Spawn
	Recorder     model.Recorder // may be nil
}

// TurnReport summarises one Step.
type TurnReport struct {
	Turn    int
	Spawned int
	Died    int
	Frozen  int // subset of Died removed by the warmth sweep
	Alive   int
}

// Summary aggregates a whole run.
type Summary struct {
	Turns    int
	Alive    int
	Deaths   map[string]int // by cause
	Spawn    spawn.Stats
	Behavior ai.Stats
}

// Engine advances a world one turn at a time. It owns all simulation state and
// must be driven from a single goroutine.
type Engine struct {
	clock       *turn.Counter
	world       *world.World
	coordinator *spawn.Coordinator
	behavior    *ai.Controller
	recorder    model.Recorder

	turns    int
	interval time.Duration

	deaths map[string]int
	died   int
}

// New builds the world described by profile and wires the turn pipeline.
func New(profile *data.Profile, opts Options) (*Engine, error) {
	ids := model.NewIDGenerator(0)

	w, err := BuildWorld(profile, ids, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	effects, err := NewEffects(profile.Bindings, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("building post-spawn effects: %w", err)
	}

	recorder := opts.Recorder
	if recorder == nil {
		recorder = model.NopRecorder{}
	}

	e := &Engine{
		clock: turn.NewCounter(),
		world: w,
		coordinator: spawn.NewCoordinator(
			NewPolicies(opts.Spawn, profile.Eligibility, opts.Seed),
			profile.Catalog,
			effects,
			ids,
			rng.Derive(opts.Seed, "coordinator"),
			recorder,
		),
		behavior: ai.NewController(rng.Derive(opts.Seed, "behavior")),
		recorder: recorder,
		turns:    opts.Turns,
		interval: opts.TurnInterval,
		deaths:   make(map[string]int),
	}
	w.SetRemovalHook(e.onRemove)
	return e, nil
}

func (e *Engine) onRemove(m *world.Map, ent *model.Entity, cause string) {
	e.deaths[cause]++
	e.died++
	e.recorder.Record(model.Event{
		Turn:     e.clock.Current(),
		Kind:     model.EventDeath,
		Map:      m.Name(),
		Pos:      ent.Position(),
		ObjectID: ent.ObjectID(),
		Species:  ent.Species(),
		Detail:   cause,
	})
}

// World returns the simulated world.
func (e *Engine) World() *world.World { return e.world }

// Turn returns the last completed turn.
func (e *Engine) Turn() int { return e.clock.Current() }

// Step runs one full turn: spawners, then creatures, then the warmth sweep.
func (e *Engine) Step() TurnReport {
	e.clock.Advance()
	now := e.clock.Current()
	diedBefore := e.died
	report := TurnReport{Turn: now}

	for _, m := range e.world.Maps() {
		for y := range m.Height() {
			for x := range m.Width() {
				if e.coordinator.Tick(m, model.Pos(x, y), now) != nil {
					report.Spawned++
				}
			}
		}
	}

	for _, m := range e.world.Maps() {
		for _, ent := range m.Actors() {
			if !m.HasActor(ent) || ent.SpawnedTurn() == now {
				continue
			}
			if !ent.TickStatusEffects(m) {
				continue
			}
			e.behavior.Act(ent, m)
		}
	}

	report.Frozen = SweepWarmth(e.world)
	report.Died = e.died - diedBefore
	report.Alive = e.world.ActorCount()

	slog.Debug("turn completed",
		"turn", report.Turn,
		"spawned", report.Spawned,
		"died", report.Died,
		"alive", report.Alive)
	return report
}

// Run steps until the turn limit is reached or ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if e.interval > 0 {
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	slog.Info("simulation started",
		"maps", e.world.MapCount(),
		"actors", e.world.ActorCount(),
		"turns", e.turns,
		"interval", e.interval)

	for e.turns == 0 || e.clock.Current() < e.turns {
		if tick != nil {
			select {
			case <-ctx.Done():
				slog.Info("simulation stopping", "turn", e.clock.Current())
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			slog.Info("simulation stopping", "turn", e.clock.Current())
			return err
		}
		e.Step()
	}

	slog.Info("simulation finished", "turn", e.clock.Current(), "alive", e.world.ActorCount())
	return nil
}

// Summary reports totals since the engine was created.
func (e *Engine) Summary() Summary {
	return Summary{
		Turns:    e.clock.Current(),
		Alive:    e.world.ActorCount(),
		Deaths:   maps.Clone(e.deaths),
		Spawn:    e.coordinator.Stats(),
		Behavior: e.behavior.Stats(),
	}
}
