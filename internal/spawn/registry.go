package spawn

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/rng"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

// Effect is a side effect run after a creature of a given species has been placed.
// Implementations must cope with any number of neighbouring cells, including none.
type Effect interface {
	Name() string
	Apply(at model.Position, spawned *model.Entity, m *world.Map) error
}

// Registry maps species keys to their post-spawn effect.
type Registry struct {
	effects map[string]Effect
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{effects: make(map[string]Effect)}
}

// Register binds e to species, replacing any earlier binding.
func (r *Registry) Register(species string, e Effect) {
	r.effects[species] = e
}

// EffectFor returns the effect bound to species.
func (r *Registry) EffectFor(species string) (Effect, bool) {
	e, ok := r.effects[species]
	return e, ok
}

// Species returns every species with a bound effect, sorted.
func (r *Registry) Species() []string {
	out := make([]string, 0, len(r.effects))
	for k := range r.effects {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// EffectFactory builds an effect from string parameters.
type EffectFactory func(params map[string]string, src rng.Source) (Effect, error)

// effectFactories is the closed set of effect names a profile may bind.
var effectFactories = map[string]EffectFactory{
	"scatter_items":  NewScatterItems,
	"inflict_status": NewInflictStatus,
	"mutate_terrain": NewMutateTerrain,
}

// CreateEffect builds an effect by name.
func CreateEffect(name string, params map[string]string, src rng.Source) (Effect, error) {
	factory, ok := effectFactories[name]
	if !ok {
		return nil, fmt.Errorf("unknown post-spawn effect %q (known: %s)", name, strings.Join(EffectNames(), ", "))
	}
	e, err := factory(params, src)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", name, err)
	}
	return e, nil
}

// EffectNames returns every effect name CreateEffect accepts, sorted.
func EffectNames() []string {
	out := make([]string, 0, len(effectFactories))
	for k := range effectFactories {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
