package spawn

import (
	"fmt"
	"strconv"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/effect"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/rng"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

// intParam parses params[key], returning def when the key is absent.
func intParam(params map[string]string, key string, def int) (int, error) {
	v, ok := params[key]
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("param %s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("param %s: must not be negative, got %d", key, n)
	}
	return n, nil
}

// ScatterItems drops items on random walkable cells around the spawn.
// Params: "item" (required), "count" (default 1).
type ScatterItems struct {
	item  string
	count int
	rng   rng.Source
}

// NewScatterItems builds a ScatterItems from params.
func NewScatterItems(params map[string]string, src rng.Source) (Effect, error) {
	item := params["item"]
	if item == "" {
		return nil, fmt.Errorf("param item is required")
	}
	count, err := intParam(params, "count", 1)
	if err != nil {
		return nil, err
	}
	return &ScatterItems{item: item, count: count, rng: src}, nil
}

// Name implements Effect.
func (e *ScatterItems) Name() string { return "scatter_items" }

// Apply drops up to count items; fewer when the neighbourhood is crowded.
func (e *ScatterItems) Apply(at model.Position, _ *model.Entity, m *world.Map) error {
	candidates := make([]model.Position, 0, 8)
	for _, p := range m.Exits(at) {
		if m.IsWalkable(p) {
			candidates = append(candidates, p)
		}
	}

	for i := 0; i < e.count && len(candidates) > 0; i++ {
		j := e.rng.IntN(len(candidates))
		if err := m.AddItem(candidates[j], e.item); err != nil {
			return err
		}
		candidates[j] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}
	return nil
}

// InflictStatus afflicts every neighbouring creature with a status effect.
// Params: "kind" (required), "duration" (default 3), "magnitude" (default 1).
type InflictStatus struct {
	inst effect.Instance
}

// NewInflictStatus builds an InflictStatus from params.
func NewInflictStatus(params map[string]string, _ rng.Source) (Effect, error) {
	kind, err := effect.ParseKind(params["kind"])
	if err != nil {
		return nil, err
	}
	duration, err := intParam(params, "duration", 3)
	if err != nil {
		return nil, err
	}
	magnitude, err := intParam(params, "magnitude", 1)
	if err != nil {
		return nil, err
	}
	return &InflictStatus{inst: effect.New(kind, duration, magnitude)}, nil
}

// Name implements Effect.
func (e *InflictStatus) Name() string { return "inflict_status" }

// Apply adds a fresh instance to each neighbour other than spawned.
func (e *InflictStatus) Apply(at model.Position, spawned *model.Entity, m *world.Map) error {
	for _, p := range m.Exits(at) {
		if target := m.Occupant(p); target != nil && target != spawned {
			target.AddStatusEffect(e.inst)
		}
	}
	return nil
}

// MutateTerrain converts neighbouring cells of one terrain kind into another.
// Params: "from" and "to" (required), "limit" (default 0, meaning every match).
type MutateTerrain struct {
	from  world.Kind
	to    world.Kind
	limit int
}

// NewMutateTerrain builds a MutateTerrain from params.
func NewMutateTerrain(params map[string]string, _ rng.Source) (Effect, error) {
	from, err := world.ParseKind(params["from"])
	if err != nil {
		return nil, fmt.Errorf("param from: %w", err)
	}
	to, err := world.ParseKind(params["to"])
	if err != nil {
		return nil, fmt.Errorf("param to: %w", err)
	}
	limit, err := intParam(params, "limit", 0)
	if err != nil {
		return nil, err
	}
	return &MutateTerrain{from: from, to: to, limit: limit}, nil
}

// Name implements Effect.
func (e *MutateTerrain) Name() string { return "mutate_terrain" }

// Apply rewrites matching neighbour cells, stopping at limit when set.
func (e *MutateTerrain) Apply(at model.Position, _ *model.Entity, m *world.Map) error {
	changed := 0
	for _, p := range m.Exits(at) {
		if e.limit > 0 && changed >= e.limit {
			break
		}
		if m.Terrain(p) != e.from {
			continue
		}
		// Never strand a creature on ground it cannot stand on.
		if m.IsOccupied(p) && !e.to.Walkable() {
			continue
		}
		if err := m.SetTerrain(p, e.to); err != nil {
			return err
		}
		changed++
	}
	return nil
}
