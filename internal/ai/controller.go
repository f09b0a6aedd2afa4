package ai

import (
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/rng"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

// Stats counts behavior outcomes.
type Stats struct {
	Idle   int
	Grazed int
	Moved  int
	Stuck  int // wanted to act but had nowhere to go
}

// Controller picks a behavior for each creature from its capabilities and runs it.
type Controller struct {
	idle   Idle
	graze  *Graze
	wander *Wander

	stats Stats
}

// NewController creates a controller whose random behaviors draw from src.
func NewController(src rng.Source) *Controller {
	return &Controller{
		graze:  NewGraze(src),
		wander: NewWander(src),
	}
}

// BehaviorFor returns the behavior e follows.
// Tamed wins over ConsumesGroundItems.
func (c *Controller) BehaviorFor(e *model.Entity) Behavior {
	switch {
	case e.Has(model.Tamed):
		return c.idle
	case e.Has(model.ConsumesGroundItems):
		return c.graze
	default:
		return c.wander
	}
}

// Act runs one turn of behavior for e on m.
func (c *Controller) Act(e *model.Entity, m *world.Map) Intention {
	b := c.BehaviorFor(e)
	intention := b.Intention()

	posBefore := e.Position()
	acted := b.Act(e, m)

	switch {
	case intention == IntentionIdle:
		c.stats.Idle++
	case !acted:
		c.stats.Stuck++
	case e.Position() != posBefore:
		c.stats.Moved++
	default:
		c.stats.Grazed++
	}
	return intention
}

// Stats returns behavior counters.
func (c *Controller) Stats() Stats {
	return c.stats
}
