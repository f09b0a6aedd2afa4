package ai

import (
	"log/slog"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/rng"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

// Behavior performs one creature's action for a turn.
type Behavior interface {
	Intention() Intention

	// Act reports whether the creature changed anything (position, health, items).
	Act(e *model.Entity, m *world.Map) bool
}

// Idle does nothing. Tamed animals wait for their owner.
type Idle struct{}

func (Idle) Intention() Intention { return IntentionIdle }

func (Idle) Act(*model.Entity, *world.Map) bool { return false }

// Wander steps onto a random free walkable neighbour cell.
type Wander struct {
	rng rng.Source
}

// NewWander creates a wander behavior drawing from src.
func NewWander(src rng.Source) *Wander {
	return &Wander{rng: src}
}

func (w *Wander) Intention() Intention { return IntentionWander }

func (w *Wander) Act(e *model.Entity, m *world.Map) bool {
	from := e.Position()
	free := make([]model.Position, 0, 8)
	for _, p := range m.Exits(from) {
		if m.IsWalkable(p) && !m.IsOccupied(p) {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return false
	}

	to := free[w.rng.IntN(len(free))]
	if err := m.MoveActor(e, to); err != nil {
		slog.Warn("wander move rejected",
			"map", m.Name(),
			"objectID", e.ObjectID(),
			"to", to.String(),
			"error", err)
		return false
	}

	if tracing() {
		slog.Debug("creature moved",
			"map", m.Name(),
			"objectID", e.ObjectID(),
			"species", e.Species(),
			"from", from.String(),
			"to", to.String())
	}
	return true
}

// Graze eats one item lying on the creature's cell, healing a point of health.
// With nothing to eat it falls back to wandering.
type Graze struct {
	fallback *Wander
}

// NewGraze creates a graze behavior that wanders with src when there is no food.
func NewGraze(src rng.Source) *Graze {
	return &Graze{fallback: NewWander(src)}
}

func (g *Graze) Intention() Intention { return IntentionGraze }

func (g *Graze) Act(e *model.Entity, m *world.Map) bool {
	item, ok := m.TakeItem(e.Position())
	if !ok {
		return g.fallback.Act(e, m)
	}
	e.Heal(1)

	if tracing() {
		slog.Debug("creature ate",
			"map", m.Name(),
			"objectID", e.ObjectID(),
			"species", e.Species(),
			"item", item,
			"hp", e.CurrentHP())
	}
	return true
}
