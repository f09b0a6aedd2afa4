package world

import (
	"fmt"
	"slices"
	"strings"
)

// World is the set of maps sharing one turn clock.
type World struct {
	maps   []*Map // sorted by name
	byName map[string]*Map
}

// New creates an empty world.
func New() *World {
	return &World{byName: make(map[string]*Map)}
}

// AddMap registers m. Map names must be unique.
func (w *World) AddMap(m *Map) error {
	if _, ok := w.byName[m.Name()]; ok {
		return fmt.Errorf("map %q already registered", m.Name())
	}
	w.byName[m.Name()] = m
	i, _ := slices.BinarySearchFunc(w.maps, m.Name(), func(a *Map, name string) int {
		return strings.Compare(a.Name(), name)
	})
	w.maps = slices.Insert(w.maps, i, m)
	return nil
}

// Map returns the map called name.
func (w *World) Map(name string) (*Map, bool) {
	m, ok := w.byName[name]
	return m, ok
}

// Maps returns every map ordered by name.
func (w *World) Maps() []*Map {
	return slices.Clone(w.maps)
}

// MapCount returns the number of maps.
func (w *World) MapCount() int {
	return len(w.maps)
}

// ActorCount returns the number of entities over all maps.
func (w *World) ActorCount() int {
	n := 0
	for _, m := range w.maps {
		n += m.ActorCount()
	}
	return n
}

// SetRemovalHook installs h on every map currently registered.
func (w *World) SetRemovalHook(h RemovalHook) {
	for _, m := range w.maps {
		m.SetRemovalHook(h)
	}
}
