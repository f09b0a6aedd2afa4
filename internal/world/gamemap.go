package world

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
)

var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrNotWalkable  = errors.New("terrain not walkable")
	ErrOccupied     = errors.New("cell occupied")
	ErrAlreadyOnMap = errors.New("entity already on map")
	ErrNotOnMap     = errors.New("entity not on map")
)

// RemovalHook observes every entity leaving a map and the cause.
type RemovalHook func(m *Map, e *model.Entity, cause string)

type cell struct {
	terrain  Kind
	occupant *model.Entity
	items    []string
}

// Map is one rectangular grid of cells with its occupants.
//
// A Map exclusively owns its actor list and occupancy grid. It is driven by the
// simulation goroutine only and takes no locks.
type Map struct {
	name   string
	width  int
	height int
	cells  []cell

	actors []*model.Entity // placement order
	byID   map[uint32]*model.Entity

	onRemove RemovalHook
}

// NewMap creates a width×height map filled with one terrain kind.
func NewMap(name string, width, height int, fill Kind) *Map {
	m := &Map{
		name:   name,
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
		actors: make([]*model.Entity, 0, 16),
		byID:   make(map[uint32]*model.Entity, 16),
	}
	for i := range m.cells {
		m.cells[i].terrain = fill
	}
	return m
}

// ParseMap builds a map from template rows, one glyph per cell.
// Rows shorter than the widest row are padded with walls.
func ParseMap(name string, rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("map %q: empty template", name)
	}

	width := 0
	for _, row := range rows {
		width = max(width, len([]rune(row)))
	}

	m := NewMap(name, width, len(rows), Wall)
	for y, row := range rows {
		for x, r := range []rune(row) {
			k, ok := KindFromGlyph(r)
			if !ok {
				return nil, fmt.Errorf("map %q: unknown glyph %q at %s", name, r, model.Pos(x, y))
			}
			m.cells[y*width+x].terrain = k
		}
	}
	return m, nil
}

// Name returns the map identity used by eligibility lookups.
func (m *Map) Name() string { return m.name }

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Contains reports whether p lies inside the map.
func (m *Map) Contains(p model.Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.width && p.Y < m.height
}

func (m *Map) at(p model.Position) *cell {
	return &m.cells[p.Y*m.width+p.X]
}

// Terrain returns the terrain kind at p, or 0 outside the map.
func (m *Map) Terrain(p model.Position) Kind {
	if !m.Contains(p) {
		return 0
	}
	return m.at(p).terrain
}

// SetTerrain changes the terrain at p.
func (m *Map) SetTerrain(p model.Position, k Kind) error {
	if !m.Contains(p) {
		return fmt.Errorf("setting terrain at %s: %w", p, ErrOutOfBounds)
	}
	m.at(p).terrain = k
	return nil
}

// CountTerrain returns how many cells have terrain k.
func (m *Map) CountTerrain(k Kind) int {
	n := 0
	for i := range m.cells {
		if m.cells[i].terrain == k {
			n++
		}
	}
	return n
}

// Positions returns every cell of terrain k in row-major order.
func (m *Map) Positions(k Kind) []model.Position {
	out := make([]model.Position, 0)
	for y := range m.height {
		for x := range m.width {
			if m.cells[y*m.width+x].terrain == k {
				out = append(out, model.Pos(x, y))
			}
		}
	}
	return out
}

// Exits returns the in-bounds neighbours of p (8-way), clockwise from north.
func (m *Map) Exits(p model.Position) []model.Position {
	offsets := [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	out := make([]model.Position, 0, 8)
	for _, o := range offsets {
		n := p.Offset(o[0], o[1])
		if m.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// IsWalkable reports whether a creature may stand on p.
func (m *Map) IsWalkable(p model.Position) bool {
	return m.Contains(p) && m.at(p).terrain.Walkable()
}

// Occupant returns the entity standing on p, or nil.
func (m *Map) Occupant(p model.Position) *model.Entity {
	if !m.Contains(p) {
		return nil
	}
	return m.at(p).occupant
}

// IsOccupied reports whether an entity stands on p.
func (m *Map) IsOccupied(p model.Position) bool {
	return m.Occupant(p) != nil
}

// HasAdjacentOccupant reports whether any exit of p holds an entity.
func (m *Map) HasAdjacentOccupant(p model.Position) bool {
	for _, n := range m.Exits(p) {
		if m.at(n).occupant != nil {
			return true
		}
	}
	return false
}

// Items returns a copy of the items lying on p.
func (m *Map) Items(p model.Position) []string {
	if !m.Contains(p) {
		return nil
	}
	return slices.Clone(m.at(p).items)
}

// AddItem drops an item on p.
func (m *Map) AddItem(p model.Position, item string) error {
	if !m.Contains(p) {
		return fmt.Errorf("adding item %q at %s: %w", item, p, ErrOutOfBounds)
	}
	c := m.at(p)
	c.items = append(c.items, item)
	return nil
}

// TakeItem removes and returns the oldest item on p.
func (m *Map) TakeItem(p model.Position) (string, bool) {
	if !m.Contains(p) {
		return "", false
	}
	c := m.at(p)
	if len(c.items) == 0 {
		return "", false
	}
	item := c.items[0]
	c.items = c.items[1:]
	return item, true
}

// AddActor places e on p.
func (m *Map) AddActor(e *model.Entity, p model.Position) error {
	switch {
	case !m.Contains(p):
		return fmt.Errorf("placing %s at %s: %w", e.Name(), p, ErrOutOfBounds)
	case !m.at(p).terrain.Walkable():
		return fmt.Errorf("placing %s at %s: %w", e.Name(), p, ErrNotWalkable)
	case m.at(p).occupant != nil:
		return fmt.Errorf("placing %s at %s: %w", e.Name(), p, ErrOccupied)
	}
	if _, ok := m.byID[e.ObjectID()]; ok {
		return fmt.Errorf("placing %s: %w", e.Name(), ErrAlreadyOnMap)
	}

	m.at(p).occupant = e
	e.SetPosition(p)
	m.actors = append(m.actors, e)
	m.byID[e.ObjectID()] = e
	return nil
}

// MoveActor moves e to an adjacent or distant free walkable cell.
func (m *Map) MoveActor(e *model.Entity, to model.Position) error {
	if !m.HasActor(e) {
		return fmt.Errorf("moving %s: %w", e.Name(), ErrNotOnMap)
	}
	switch {
	case !m.Contains(to):
		return fmt.Errorf("moving %s to %s: %w", e.Name(), to, ErrOutOfBounds)
	case !m.at(to).terrain.Walkable():
		return fmt.Errorf("moving %s to %s: %w", e.Name(), to, ErrNotWalkable)
	case m.at(to).occupant != nil:
		return fmt.Errorf("moving %s to %s: %w", e.Name(), to, ErrOccupied)
	}

	m.at(e.Position()).occupant = nil
	m.at(to).occupant = e
	e.SetPosition(to)
	return nil
}

// HasActor reports whether e is currently on this map.
func (m *Map) HasActor(e *model.Entity) bool {
	got, ok := m.byID[e.ObjectID()]
	return ok && got == e
}

// Actor looks an entity up by object ID.
func (m *Map) Actor(objectID uint32) (*model.Entity, bool) {
	e, ok := m.byID[objectID]
	return e, ok
}

// Actors returns a snapshot of the entities on the map in placement order.
// Callers may remove entities while iterating the snapshot.
func (m *Map) Actors() []*model.Entity {
	return slices.Clone(m.actors)
}

// ActorCount returns the number of entities on the map.
func (m *Map) ActorCount() int {
	return len(m.actors)
}

// Remove takes e off the map and reports cause to the removal hook.
// Returns false if e was not on this map.
func (m *Map) Remove(e *model.Entity, cause string) bool {
	if !m.HasActor(e) {
		return false
	}

	if c := m.at(e.Position()); c.occupant == e {
		c.occupant = nil
	}
	delete(m.byID, e.ObjectID())
	if i := slices.Index(m.actors, e); i >= 0 {
		m.actors = slices.Delete(m.actors, i, i+1)
	}

	if m.onRemove != nil {
		m.onRemove(m, e, cause)
	}
	return true
}

// RemoveIfDead removes e when its health or warmth has reached zero.
// This is the single place where attribute-driven deaths leave the map.
func (m *Map) RemoveIfDead(e *model.Entity) bool {
	if !e.IsDead() {
		return false
	}
	cause := e.DeathCause()
	if !m.Remove(e, cause) {
		return false
	}
	slog.Debug("entity died",
		"map", m.name,
		"objectID", e.ObjectID(),
		"species", e.Species(),
		"cause", cause)
	return true
}

// SetRemovalHook installs the observer called for every removal.
func (m *Map) SetRemovalHook(h RemovalHook) {
	m.onRemove = h
}

// String renders the map as template rows with occupants shown as '@'.
func (m *Map) String() string {
	var b strings.Builder
	for y := range m.height {
		for x := range m.width {
			c := m.cells[y*m.width+x]
			if c.occupant != nil {
				b.WriteRune('@')
				continue
			}
			b.WriteRune(c.terrain.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
