package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/config"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/data"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

func TestBuildWorld_GuaranteesSpawnerTerrain(t *testing.T) {
	p, err := data.DefaultProfile()
	require.NoError(t, err)

	w, err := BuildWorld(p, model.NewIDGenerator(0), 11)
	require.NoError(t, err)

	forest, ok := w.Map("frozen_forest")
	require.True(t, ok)
	for _, k := range []world.Kind{world.Cave, world.Tundra, world.Meadow} {
		assert.GreaterOrEqual(t, forest.CountTerrain(k), 1, k.String())
	}
	assert.Equal(t, 1, forest.CountTerrain(world.Meadow), "exactly one cell converted")

	bog, ok := w.Map("bog")
	require.True(t, ok)
	assert.GreaterOrEqual(t, bog.CountTerrain(world.Swamp), 1)
	assert.GreaterOrEqual(t, bog.CountTerrain(world.Meadow), 1)

	assert.Equal(t, 3, w.ActorCount())
	husky := forest.Occupant(model.Pos(8, 4))
	require.NotNil(t, husky)
	assert.True(t, husky.Has(model.Tamed))
}

func TestBuildWorld_ConversionFollowsSeed(t *testing.T) {
	p, err := data.DefaultProfile()
	require.NoError(t, err)

	meadowAt := func(seed int64) []model.Position {
		w, err := BuildWorld(p, model.NewIDGenerator(0), seed)
		require.NoError(t, err)
		m, _ := w.Map("frozen_forest")
		return m.Positions(world.Meadow)
	}

	assert.Equal(t, meadowAt(4), meadowAt(4))
}

func TestBuildWorld_Errors(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		wantErr error
		msg     string
	}{
		{
			name: "no fallback ground",
			profile: `
species: [{key: wolf, health: 5}]
maps:
  - name: rock
    template: ["###"]
    spawns: {cave: [wolf]}
`,
			wantErr: world.ErrNoFallbackGround,
		},
		{
			name: "actor on a wall",
			profile: `
species: [{key: wolf, health: 5}]
maps:
  - name: rock
    template: ["#.C"]
    actors: [{species: wolf, x: 0, y: 0}]
`,
			wantErr: world.ErrNotWalkable,
		},
		{
			name: "unknown glyph",
			profile: `
species: [{key: wolf, health: 5}]
maps:
  - name: rock
    template: ["#?#"]
`,
			msg: "rock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := data.ParseProfile([]byte(tt.profile))
			require.NoError(t, err)

			_, err = BuildWorld(p, model.NewIDGenerator(0), 1)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.msg != "" {
				assert.ErrorContains(t, err, tt.msg)
			}
		})
	}
}

func TestNewEffects(t *testing.T) {
	reg, err := NewEffects([]data.EffectBinding{
		{Species: "deer", Effect: "scatter_items", Params: map[string]string{"item": "berries"}},
		{Species: "deer", Effect: "mutate_terrain", Params: map[string]string{"from": "dirt", "to": "snow"}},
	}, 1)
	require.NoError(t, err)

	fx, ok := reg.EffectFor("deer")
	require.True(t, ok)
	assert.Equal(t, "mutate_terrain", fx.Name(), "last binding wins")

	_, err = NewEffects([]data.EffectBinding{{Species: "deer", Effect: "teleport"}}, 1)
	assert.ErrorContains(t, err, `post_spawn "deer"`)
}

func TestNewPolicies(t *testing.T) {
	set := NewPolicies(config.DefaultSpawn(), data.NewEligibilityTable(nil), 1)
	for _, k := range []world.Kind{world.Cave, world.Tundra, world.Meadow, world.Swamp} {
		p, ok := set.For(k)
		require.True(t, ok, k.String())
		assert.Equal(t, k, p.Terrain())
	}
	_, ok := set.For(world.Dirt)
	assert.False(t, ok)
}
