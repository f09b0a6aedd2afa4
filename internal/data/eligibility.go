package data

import (
	"slices"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

type eligibilityKey struct {
	mapName string
	terrain world.Kind
}

// EligibilityTable maps (map name, terrain kind) to the ordered list of species
// that may spawn there. It is immutable once built; a missing key means no
// species are eligible.
type EligibilityTable struct {
	entries map[eligibilityKey][]string
	kinds   map[string][]world.Kind
}

// NewEligibilityTable copies entries into a new table.
func NewEligibilityTable(entries map[string]map[world.Kind][]string) *EligibilityTable {
	t := &EligibilityTable{
		entries: make(map[eligibilityKey][]string),
		kinds:   make(map[string][]world.Kind, len(entries)),
	}
	for mapName, byKind := range entries {
		kinds := make([]world.Kind, 0, len(byKind))
		for k, species := range byKind {
			t.entries[eligibilityKey{mapName, k}] = slices.Clone(species)
			kinds = append(kinds, k)
		}
		slices.Sort(kinds)
		t.kinds[mapName] = kinds
	}
	return t
}

// EligibleSpecies returns a copy of the species list for (mapName, terrain).
func (t *EligibilityTable) EligibleSpecies(mapName string, terrain world.Kind) []string {
	return slices.Clone(t.entries[eligibilityKey{mapName, terrain}])
}

// Kinds returns every terrain kind declared for mapName, in kind order.
// World construction treats these as required on that map's grid.
func (t *EligibilityTable) Kinds(mapName string) []world.Kind {
	return slices.Clone(t.kinds[mapName])
}
