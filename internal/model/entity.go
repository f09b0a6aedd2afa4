package model

import (
	"sync/atomic"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/effect"
)

// Reaper removes entities that have died. Implemented by world.Map.
type Reaper interface {
	RemoveIfDead(e *Entity) bool
}

// Entity is a creature living on a map.
//
// Entities are owned by the map holding them and mutated only by the simulation
// goroutine, so no field is guarded by a lock.
type Entity struct {
	objectID uint32
	species  string
	name     string
	position Position

	currentHP int
	maxHP     int

	warmth    int
	hasWarmth bool

	caps        Capability
	spawnedTurn int

	effects *effect.Ledger
}

// NewEntity creates an entity at full health with no warmth attribute.
func NewEntity(objectID uint32, species, name string, maxHP int) *Entity {
	if maxHP < 1 {
		maxHP = 1
	}
	return &Entity{
		objectID:  objectID,
		species:   species,
		name:      name,
		currentHP: maxHP,
		maxHP:     maxHP,
		effects:   effect.NewLedger(),
	}
}

// ObjectID returns the unique entity ID (immutable after creation).
func (e *Entity) ObjectID() uint32 { return e.objectID }

// Species returns the species key the entity was created from.
func (e *Entity) Species() string { return e.species }

// Name returns the display name.
func (e *Entity) Name() string { return e.name }

// Position returns the last cell the entity was placed on.
func (e *Entity) Position() Position { return e.position }

// SetPosition records the entity's cell. Called by the map on placement and movement.
func (e *Entity) SetPosition(p Position) { e.position = p }

// CurrentHP returns current health.
func (e *Entity) CurrentHP() int { return e.currentHP }

// MaxHP returns maximum health.
func (e *Entity) MaxHP() int { return e.maxHP }

// IncreaseMaxHP raises both maximum and current health by bonus.
func (e *Entity) IncreaseMaxHP(bonus int) {
	e.maxHP += bonus
	e.currentHP += bonus
}

// Heal restores health, capped at maximum.
func (e *Entity) Heal(points int) {
	e.currentHP = min(e.currentHP+points, e.maxHP)
}

// ReduceHP deals damage. Health may drop below zero; death is decided by IsDead.
func (e *Entity) ReduceHP(points int) {
	e.currentHP -= points
}

// Warmth returns the warmth value and whether the entity has the attribute at all.
func (e *Entity) Warmth() (int, bool) {
	return e.warmth, e.hasWarmth
}

// SetWarmth gives the entity a warmth attribute.
func (e *Entity) SetWarmth(w int) {
	e.warmth = w
	e.hasWarmth = true
}

// ReduceWarmth lowers warmth. Returns false when the entity has no warmth attribute.
func (e *Entity) ReduceWarmth(points int) bool {
	if !e.hasWarmth {
		return false
	}
	e.warmth -= points
	return true
}

// Has reports whether the entity holds capability c.
func (e *Entity) Has(c Capability) bool { return e.caps&c == c }

// Grant adds capability c.
func (e *Entity) Grant(c Capability) { e.caps |= c }


// Capabilities returns the full capability set.
func (e *Entity) Capabilities() Capability { return e.caps }

// IsColdResistant implements effect.Target.
func (e *Entity) IsColdResistant() bool { return e.Has(ColdResistant) }

// IsDead reports whether health or warmth has reached zero.
func (e *Entity) IsDead() bool {
	return e.currentHP <= 0 || (e.hasWarmth && e.warmth <= 0)
}

// DeathCause names the attribute that killed the entity, or "" while alive.
func (e *Entity) DeathCause() string {
	switch {
	case e.currentHP <= 0:
		return CauseHealth
	case e.hasWarmth && e.warmth <= 0:
		return CauseWarmth
	default:
		return ""
	}
}

// SpawnedTurn returns the turn the entity was spawned on (0 for world setup).
func (e *Entity) SpawnedTurn() int { return e.spawnedTurn }

// SetSpawnedTurn records the spawn turn.
func (e *Entity) SetSpawnedTurn(turn int) { e.spawnedTurn = turn }

// AddStatusEffect appends a status effect instance.
// Entities without ReceivesStatusEffects ignore it and false is returned.
func (e *Entity) AddStatusEffect(inst effect.Instance) bool {
	if !e.Has(ReceivesStatusEffects) {
		return false
	}
	return e.effects.Add(inst)
}

// StatusEffects returns the entity's ledger.
func (e *Entity) StatusEffects() *effect.Ledger { return e.effects }

// TickStatusEffects applies and ages every active status effect, then removes
// the entity from its map within the same tick if it died.
// Returns false if the entity was removed.
func (e *Entity) TickStatusEffects(r Reaper) bool {
	if e.effects.Len() > 0 {
		e.effects.Tick(e)
	}
	return !r.RemoveIfDead(e)
}

// IDGenerator hands out unique object IDs.
type IDGenerator struct {
	next atomic.Uint32
}

// NewIDGenerator creates a generator whose first ID is start+1.
func NewIDGenerator(start uint32) *IDGenerator {
	g := &IDGenerator{}
	g.next.Store(start)
	return g
}

// Next returns a fresh ID.
func (g *IDGenerator) Next() uint32 {
	return g.next.Add(1)
}
