package spawn

import (
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

// scriptedRNG replays fixed draws; once exhausted it repeats the last value.
type scriptedRNG struct {
	floats []float64
	ints   []int
	draws  int
}

func (s *scriptedRNG) Float64() float64 {
	s.draws++
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	if len(s.floats) > 1 {
		s.floats = s.floats[1:]
	}
	return v
}

func (s *scriptedRNG) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	if len(s.ints) > 1 {
		s.ints = s.ints[1:]
	}
	return v % n
}

type staticTable map[world.Kind][]string

func (t staticTable) EligibleSpecies(_ string, k world.Kind) []string {
	return append([]string(nil), t[k]...)
}

type catalogFunc func(species string, objectID uint32) (*model.Entity, error)

func (f catalogFunc) Instantiate(species string, objectID uint32) (*model.Entity, error) {
	return f(species, objectID)
}

func simpleCatalog() catalogFunc {
	return func(species string, objectID uint32) (*model.Entity, error) {
		e := model.NewEntity(objectID, species, species, 10)
		e.Grant(model.ReceivesStatusEffects)
		return e, nil
	}
}

type eventLog struct {
	events []model.Event
}

func (l *eventLog) Record(ev model.Event) { l.events = append(l.events, ev) }

type effectFunc func(at model.Position, spawned *model.Entity, m *world.Map) error

func (f effectFunc) Name() string { return "test" }

func (f effectFunc) Apply(at model.Position, spawned *model.Entity, m *world.Map) error {
	return f(at, spawned, m)
}
