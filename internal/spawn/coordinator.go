package spawn

import (
	"fmt"
	"log/slog"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/rng"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

// Instantiator creates creatures from species keys.
type Instantiator interface {
	Instantiate(species string, objectID uint32) (*model.Entity, error)
}

// Stats counts spawn outcomes since the coordinator was created.
type Stats struct {
	Attempts           int // policy said yes
	Spawned            int
	NoEligibleSpecies  int
	PlacementConflicts int
	Failures           int // instantiation or modifier errors
	EffectFailures     int
}

// Coordinator runs the spawn sequence for one terrain cell on one turn.
// Spawn failures are logged and absorbed here; they never reach the turn loop.
type Coordinator struct {
	policies PolicySet
	species  Instantiator
	effects  *Registry
	ids      *model.IDGenerator
	rng      rng.Source
	recorder model.Recorder

	stats Stats
}

// NewCoordinator wires a coordinator. recorder may be nil.
func NewCoordinator(
	policies PolicySet,
	species Instantiator,
	effects *Registry,
	ids *model.IDGenerator,
	src rng.Source,
	recorder model.Recorder,
) *Coordinator {
	if recorder == nil {
		recorder = model.NopRecorder{}
	}
	if effects == nil {
		effects = NewRegistry()
	}
	return &Coordinator{
		policies: policies,
		species:  species,
		effects:  effects,
		ids:      ids,
		rng:      src,
		recorder: recorder,
	}
}

// Tick evaluates the spawner at position at. Returns the creature placed this
// turn, or nil when nothing spawned.
func (c *Coordinator) Tick(m *world.Map, at model.Position, turn int) *model.Entity {
	policy, ok := c.policies.For(m.Terrain(at))
	if !ok {
		return nil
	}

	var attempt bool
	if err := safely(func() error {
		attempt = policy.ShouldAttemptSpawn(turn, Site{Map: m, Pos: at})
		return nil
	}); err != nil {
		c.stats.Failures++
		slog.Error("spawn policy failed", "map", m.Name(), "position", at.String(), "error", err)
		return nil
	}
	if !attempt {
		return nil
	}
	c.stats.Attempts++

	candidates := policy.EligibleSpecies(m)
	if len(candidates) == 0 {
		c.stats.NoEligibleSpecies++
		return nil
	}
	key := candidates[c.rng.IntN(len(candidates))]

	var e *model.Entity
	if err := safely(func() error {
		created, err := c.species.Instantiate(key, c.ids.Next())
		if err != nil {
			return err
		}
		policy.ApplyImmediateModifiers(created, m)
		e = created
		return nil
	}); err != nil {
		c.stats.Failures++
		slog.Warn("spawn failed",
			"map", m.Name(),
			"terrain", policy.Terrain().String(),
			"species", key,
			"error", err)
		return nil
	}
	e.SetSpawnedTurn(turn)

	if err := m.AddActor(e, at); err != nil {
		c.stats.PlacementConflicts++
		slog.Debug("spawn placement rejected",
			"map", m.Name(),
			"position", at.String(),
			"species", key,
			"error", err)
		return nil
	}
	c.stats.Spawned++

	c.recorder.Record(model.Event{
		Turn:     turn,
		Kind:     model.EventSpawn,
		Map:      m.Name(),
		Pos:      at,
		ObjectID: e.ObjectID(),
		Species:  key,
		Detail:   policy.Terrain().String(),
	})
	slog.Debug("creature spawned",
		"map", m.Name(),
		"position", at.String(),
		"terrain", policy.Terrain().String(),
		"species", key,
		"objectID", e.ObjectID(),
		"turn", turn)

	if fx, ok := c.effects.EffectFor(key); ok {
		if err := safely(func() error { return fx.Apply(at, e, m) }); err != nil {
			c.stats.EffectFailures++
			slog.Warn("post-spawn effect failed",
				"effect", fx.Name(),
				"species", key,
				"objectID", e.ObjectID(),
				"error", err)
		}
	}

	return e
}

// Stats returns spawn outcome counters.
func (c *Coordinator) Stats() Stats {
	return c.stats
}

// safely runs fn, converting a panic into an error.
func safely(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
