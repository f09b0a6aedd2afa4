package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
)

func TestParseMap(t *testing.T) {
	m, err := ParseMap("ridge", []string{
		"#####",
		"#.C*#",
		"#US.",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, Cave, m.Terrain(model.Pos(2, 1)))
	assert.Equal(t, Tundra, m.Terrain(model.Pos(1, 2)))
	assert.Equal(t, Wall, m.Terrain(model.Pos(4, 2)), "short rows are padded with walls")
	assert.Equal(t, Kind(0), m.Terrain(model.Pos(9, 9)))
}

func TestParseMap_Errors(t *testing.T) {
	_, err := ParseMap("empty", nil)
	assert.Error(t, err)

	_, err = ParseMap("bad", []string{"..?"})
	assert.ErrorContains(t, err, "unknown glyph")
}

func TestMap_Exits(t *testing.T) {
	m := NewMap("m", 3, 3, Dirt)

	tests := []struct {
		name string
		at   model.Position
		want int
	}{
		{name: "corner", at: model.Pos(0, 0), want: 3},
		{name: "edge", at: model.Pos(1, 0), want: 5},
		{name: "centre", at: model.Pos(1, 1), want: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, m.Exits(tt.at), tt.want)
		})
	}

	single := NewMap("single", 1, 1, Dirt)
	assert.Empty(t, single.Exits(model.Pos(0, 0)))
}

func TestMap_AddActor(t *testing.T) {
	m, err := ParseMap("m", []string{".#."})
	require.NoError(t, err)

	wolf := model.NewEntity(1, "wolf", "Wolf", 10)
	require.NoError(t, m.AddActor(wolf, model.Pos(0, 0)))
	assert.Equal(t, wolf, m.Occupant(model.Pos(0, 0)))
	assert.Equal(t, model.Pos(0, 0), wolf.Position())

	other := model.NewEntity(2, "wolf", "Wolf", 10)
	assert.ErrorIs(t, m.AddActor(other, model.Pos(0, 0)), ErrOccupied)
	assert.ErrorIs(t, m.AddActor(other, model.Pos(1, 0)), ErrNotWalkable)
	assert.ErrorIs(t, m.AddActor(other, model.Pos(5, 0)), ErrOutOfBounds)
	assert.ErrorIs(t, m.AddActor(wolf, model.Pos(2, 0)), ErrAlreadyOnMap)
	assert.Equal(t, 1, m.ActorCount())
}

func TestMap_MoveActor(t *testing.T) {
	m := NewMap("m", 3, 1, Dirt)
	e := model.NewEntity(1, "deer", "Deer", 10)
	require.NoError(t, m.AddActor(e, model.Pos(0, 0)))

	require.NoError(t, m.MoveActor(e, model.Pos(1, 0)))
	assert.Nil(t, m.Occupant(model.Pos(0, 0)))
	assert.Equal(t, e, m.Occupant(model.Pos(1, 0)))

	stranger := model.NewEntity(2, "deer", "Deer", 10)
	assert.ErrorIs(t, m.MoveActor(stranger, model.Pos(2, 0)), ErrNotOnMap)
}

func TestMap_HasAdjacentOccupant(t *testing.T) {
	m := NewMap("m", 3, 3, Dirt)
	centre := model.Pos(1, 1)
	assert.False(t, m.HasAdjacentOccupant(centre))

	require.NoError(t, m.AddActor(model.NewEntity(1, "hare", "Hare", 3), model.Pos(2, 2)))
	assert.True(t, m.HasAdjacentOccupant(centre))
	assert.False(t, m.HasAdjacentOccupant(model.Pos(0, 0)))
}

func TestMap_RemoveIfDead(t *testing.T) {
	m := NewMap("m", 2, 1, Dirt)

	var causes []string
	m.SetRemovalHook(func(_ *Map, _ *model.Entity, cause string) {
		causes = append(causes, cause)
	})

	alive := model.NewEntity(1, "deer", "Deer", 10)
	dead := model.NewEntity(2, "deer", "Deer", 10)
	require.NoError(t, m.AddActor(alive, model.Pos(0, 0)))
	require.NoError(t, m.AddActor(dead, model.Pos(1, 0)))

	dead.ReduceHP(10)
	assert.False(t, m.RemoveIfDead(alive))
	assert.True(t, m.RemoveIfDead(dead))
	assert.False(t, m.RemoveIfDead(dead), "second removal is a no-op")

	assert.False(t, m.IsOccupied(model.Pos(1, 0)))
	assert.Equal(t, []*model.Entity{alive}, m.Actors())
	assert.Equal(t, []string{model.CauseHealth}, causes)
}

func TestMap_Items(t *testing.T) {
	m := NewMap("m", 1, 1, Dirt)
	p := model.Pos(0, 0)

	require.NoError(t, m.AddItem(p, "berries"))
	require.NoError(t, m.AddItem(p, "stick"))
	assert.Equal(t, []string{"berries", "stick"}, m.Items(p))

	item, ok := m.TakeItem(p)
	require.True(t, ok)
	assert.Equal(t, "berries", item)

	m.TakeItem(p)
	_, ok = m.TakeItem(p)
	assert.False(t, ok)
	assert.ErrorIs(t, m.AddItem(model.Pos(3, 3), "x"), ErrOutOfBounds)
}

func TestMap_String(t *testing.T) {
	m, err := ParseMap("m", []string{".C", "S#"})
	require.NoError(t, err)
	require.NoError(t, m.AddActor(model.NewEntity(1, "x", "X", 1), model.Pos(0, 0)))

	assert.Equal(t, "@C\nS#\n", m.String())
}
