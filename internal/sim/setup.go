package sim

import (
	"fmt"
	"log/slog"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/config"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/data"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/effect"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/rng"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/spawn"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

// BuildWorld parses every map of the profile, guarantees that each terrain kind
// with an eligibility list exists at least once, and places the initial actors.
func BuildWorld(p *data.Profile, ids *model.IDGenerator, seed int64) (*world.World, error) {
	w := world.New()

	for _, spec := range p.Maps {
		m, err := world.ParseMap(spec.Name, spec.Template)
		if err != nil {
			return nil, err
		}

		required := p.Eligibility.Kinds(spec.Name)
		if err := world.EnsureTerrain(m, required, spec.Fallback, rng.Derive(seed, "terrain/"+spec.Name)); err != nil {
			return nil, fmt.Errorf("map %q: %w", spec.Name, err)
		}

		for _, a := range spec.Actors {
			e, err := p.Catalog.Instantiate(a.Species, ids.Next())
			if err != nil {
				return nil, fmt.Errorf("map %q: %w", spec.Name, err)
			}
			if err := m.AddActor(e, a.Pos); err != nil {
				return nil, fmt.Errorf("map %q initial actors: %w", spec.Name, err)
			}
		}

		if err := w.AddMap(m); err != nil {
			return nil, err
		}
		slog.Info("map built",
			"map", m.Name(),
			"width", m.Width(),
			"height", m.Height(),
			"actors", m.ActorCount())
	}

	return w, nil
}

// NewPolicies creates the stock policy for each spawner terrain. Every policy
// draws from its own stream derived from seed.
func NewPolicies(cfg config.Spawn, table spawn.SpeciesTable, seed int64) spawn.PolicySet {
	return spawn.NewPolicySet(
		spawn.NewIntervalGated(world.Cave, table, cfg.Cave.Every),
		spawn.NewProbabilityGated(world.Tundra, table,
			cfg.Tundra.Chance, cfg.Tundra.HealthBonus,
			rng.Derive(seed, "policy/tundra")),
		spawn.NewCadenceAndProbabilityGated(world.Meadow, table,
			cfg.Meadow.Every, cfg.Meadow.Chance,
			rng.Derive(seed, "policy/meadow")),
		spawn.NewProximityAndProbabilityGated(world.Swamp, table,
			cfg.Swamp.Chance,
			effect.NewPoison(cfg.Swamp.PoisonDuration, cfg.Swamp.PoisonMagnitude),
			rng.Derive(seed, "policy/swamp")),
	)
}

// NewEffects builds the post-spawn registry from the profile's bindings.
// A later binding for the same species replaces an earlier one.
func NewEffects(bindings []data.EffectBinding, seed int64) (*spawn.Registry, error) {
	reg := spawn.NewRegistry()
	for _, b := range bindings {
		fx, err := spawn.CreateEffect(b.Effect, b.Params, rng.Derive(seed, "effect/"+b.Species))
		if err != nil {
			return nil, fmt.Errorf("post_spawn %q: %w", b.Species, err)
		}
		reg.Register(b.Species, fx)
	}
	slog.Debug("post-spawn effects bound", "species", reg.Species())
	return reg, nil
}
