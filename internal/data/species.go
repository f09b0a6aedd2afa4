package data

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
)

// ErrUnknownSpecies is returned when a species key is not in the catalog.
var ErrUnknownSpecies = errors.New("unknown species")

// Species is the template a creature is instantiated from.
type Species struct {
	Key          string
	Name         string
	MaxHP        int
	Warmth       int
	HasWarmth    bool
	Capabilities model.Capability
}

// Catalog holds every species template of a world. Read-only after construction.
type Catalog struct {
	byKey map[string]Species
	keys  []string // sorted
}

// NewCatalog indexes species templates by key.
func NewCatalog(species []Species) (*Catalog, error) {
	c := &Catalog{
		byKey: make(map[string]Species, len(species)),
		keys:  make([]string, 0, len(species)),
	}
	for _, s := range species {
		if s.Key == "" {
			return nil, fmt.Errorf("species %q: empty key", s.Name)
		}
		if _, dup := c.byKey[s.Key]; dup {
			return nil, fmt.Errorf("species %q defined twice", s.Key)
		}
		if s.MaxHP <= 0 {
			return nil, fmt.Errorf("species %q: health must be positive, got %d", s.Key, s.MaxHP)
		}
		if s.HasWarmth && s.Warmth <= 0 {
			return nil, fmt.Errorf("species %q: warmth must be positive, got %d", s.Key, s.Warmth)
		}
		c.byKey[s.Key] = s
		c.keys = append(c.keys, s.Key)
	}
	slices.Sort(c.keys)
	return c, nil
}

// Lookup returns the template for key.
func (c *Catalog) Lookup(key string) (Species, bool) {
	s, ok := c.byKey[key]
	return s, ok
}

// Keys returns every species key in sorted order.
func (c *Catalog) Keys() []string {
	return slices.Clone(c.keys)
}

// Len returns the number of species.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Instantiate creates a fresh entity of species key.
func (c *Catalog) Instantiate(key string, objectID uint32) (*model.Entity, error) {
	s, ok := c.byKey[key]
	if !ok {
		return nil, fmt.Errorf("instantiating %q: %w", key, ErrUnknownSpecies)
	}

	e := model.NewEntity(objectID, s.Key, s.Name, s.MaxHP)
	e.Grant(s.Capabilities)
	if s.HasWarmth {
		e.SetWarmth(s.Warmth)
	}
	return e, nil
}
