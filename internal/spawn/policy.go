package spawn

import (
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/effect"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/rng"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

// SpeciesTable answers which species may spawn on a terrain kind of a map.
type SpeciesTable interface {
	EligibleSpecies(mapName string, terrain world.Kind) []string
}

// Site is the spawner cell a policy is evaluated for.
type Site struct {
	Map *world.Map
	Pos model.Position
}

// Policy decides when a terrain kind spawns, what it may spawn and what a fresh
// creature receives before it is placed.
type Policy interface {
	Terrain() world.Kind
	ShouldAttemptSpawn(turn int, site Site) bool
	EligibleSpecies(m *world.Map) []string
	ApplyImmediateModifiers(e *model.Entity, m *world.Map)
}

type eligibility struct {
	terrain world.Kind
	table   SpeciesTable
}

func (b eligibility) Terrain() world.Kind { return b.terrain }

func (b eligibility) EligibleSpecies(m *world.Map) []string {
	return b.table.EligibleSpecies(m.Name(), b.terrain)
}

// IntervalGated spawns every N turns (caves).
type IntervalGated struct {
	eligibility
	every int
}

// NewIntervalGated creates a policy attempting a spawn when turn mod every == 0.
func NewIntervalGated(terrain world.Kind, table SpeciesTable, every int) *IntervalGated {
	return &IntervalGated{eligibility: eligibility{terrain, table}, every: every}
}

func (p *IntervalGated) ShouldAttemptSpawn(turn int, _ Site) bool {
	return p.every > 0 && turn%p.every == 0
}

func (p *IntervalGated) ApplyImmediateModifiers(*model.Entity, *world.Map) {}

// ProbabilityGated rolls for a spawn every turn (tundra). Creatures it produces
// are hardier and resist the cold.
type ProbabilityGated struct {
	eligibility
	chance      float64
	healthBonus int
	rng         rng.Source
}

// NewProbabilityGated creates a policy spawning with probability chance per turn.
func NewProbabilityGated(terrain world.Kind, table SpeciesTable, chance float64, healthBonus int, src rng.Source) *ProbabilityGated {
	return &ProbabilityGated{
		eligibility: eligibility{terrain, table},
		chance:      chance,
		healthBonus: healthBonus,
		rng:         src,
	}
}

func (p *ProbabilityGated) ShouldAttemptSpawn(int, Site) bool {
	return p.rng.Float64() < p.chance
}

func (p *ProbabilityGated) ApplyImmediateModifiers(e *model.Entity, _ *world.Map) {
	e.IncreaseMaxHP(p.healthBonus)
	e.Grant(model.ColdResistant)
}

// CadenceAndProbabilityGated rolls for a spawn only on every Nth turn (meadows).
// Creatures it produces graze on items lying on the ground.
type CadenceAndProbabilityGated struct {
	eligibility
	every  int
	chance float64
	rng    rng.Source
}

// NewCadenceAndProbabilityGated creates a policy that draws only when turn mod every == 0.
func NewCadenceAndProbabilityGated(terrain world.Kind, table SpeciesTable, every int, chance float64, src rng.Source) *CadenceAndProbabilityGated {
	return &CadenceAndProbabilityGated{
		eligibility: eligibility{terrain, table},
		every:       every,
		chance:      chance,
		rng:         src,
	}
}

func (p *CadenceAndProbabilityGated) ShouldAttemptSpawn(turn int, _ Site) bool {
	if p.every <= 0 || turn%p.every != 0 {
		return false
	}
	return p.rng.Float64() < p.chance
}

func (p *CadenceAndProbabilityGated) ApplyImmediateModifiers(e *model.Entity, _ *world.Map) {
	e.Grant(model.ConsumesGroundItems)
}

// ProximityAndProbabilityGated spawns only next to other creatures (swamps).
// Creatures it produces start out poisoned.
type ProximityAndProbabilityGated struct {
	eligibility
	chance float64
	poison effect.Instance
	rng    rng.Source
}

// NewProximityAndProbabilityGated creates a swamp-style policy. poison is added to
// every creature it produces.
func NewProximityAndProbabilityGated(terrain world.Kind, table SpeciesTable, chance float64, poison effect.Instance, src rng.Source) *ProximityAndProbabilityGated {
	return &ProximityAndProbabilityGated{
		eligibility: eligibility{terrain, table},
		chance:      chance,
		poison:      poison,
		rng:         src,
	}
}

// ShouldAttemptSpawn requires a free spawner cell and an occupied neighbour before
// the probability draw is taken.
func (p *ProximityAndProbabilityGated) ShouldAttemptSpawn(_ int, site Site) bool {
	if site.Map == nil || site.Map.IsOccupied(site.Pos) {
		return false
	}
	if !site.Map.HasAdjacentOccupant(site.Pos) {
		return false
	}
	return p.rng.Float64() < p.chance
}

func (p *ProximityAndProbabilityGated) ApplyImmediateModifiers(e *model.Entity, _ *world.Map) {
	e.AddStatusEffect(p.poison)
}

// PolicySet resolves the policy of a terrain kind.
type PolicySet map[world.Kind]Policy

// NewPolicySet indexes policies by their terrain kind. Later entries win.
func NewPolicySet(policies ...Policy) PolicySet {
	set := make(PolicySet, len(policies))
	for _, p := range policies {
		set[p.Terrain()] = p
	}
	return set
}

// For returns the policy of terrain kind k.
func (s PolicySet) For(k world.Kind) (Policy, bool) {
	p, ok := s[k]
	return p, ok
}
