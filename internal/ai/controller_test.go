package ai

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/rng"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

func creature(id uint32, caps model.Capability) *model.Entity {
	e := model.NewEntity(id, "deer", "Deer", 10)
	e.Grant(caps)
	return e
}

func TestController_BehaviorFor(t *testing.T) {
	c := NewController(rng.New(1))

	tests := []struct {
		name string
		caps model.Capability
		want Intention
	}{
		{"plain", 0, IntentionWander},
		{"grazer", model.ConsumesGroundItems, IntentionGraze},
		{"tamed", model.Tamed, IntentionIdle},
		{"tamed grazer", model.Tamed | model.ConsumesGroundItems, IntentionIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.BehaviorFor(creature(1, tt.caps)).Intention())
		})
	}
}

func TestController_TamedStaysPut(t *testing.T) {
	m := world.NewMap("m", 3, 3, world.Dirt)
	husky := creature(1, model.Tamed)
	require.NoError(t, m.AddActor(husky, model.Pos(1, 1)))

	c := NewController(rng.New(1))
	for range 20 {
		assert.Equal(t, IntentionIdle, c.Act(husky, m))
	}
	assert.Equal(t, model.Pos(1, 1), husky.Position())
	assert.Equal(t, Stats{Idle: 20}, c.Stats())
}

func TestWander_StepsToFreeNeighbour(t *testing.T) {
	m, err := world.ParseMap("m", []string{
		"#.#",
		"#.#",
		"###",
	})
	require.NoError(t, err)
	wolf := creature(1, 0)
	require.NoError(t, m.AddActor(wolf, model.Pos(1, 1)))

	assert.True(t, NewWander(rng.New(3)).Act(wolf, m))
	assert.Equal(t, model.Pos(1, 0), wolf.Position(), "only one open cell")
	assert.Equal(t, wolf, m.Occupant(model.Pos(1, 0)))
	assert.False(t, m.IsOccupied(model.Pos(1, 1)))
}

func TestWander_BoxedInStays(t *testing.T) {
	m, err := world.ParseMap("m", []string{".."})
	require.NoError(t, err)
	a, b := creature(1, 0), creature(2, 0)
	require.NoError(t, m.AddActor(a, model.Pos(0, 0)))
	require.NoError(t, m.AddActor(b, model.Pos(1, 0)))

	c := NewController(rng.New(1))
	assert.Equal(t, IntentionWander, c.Act(a, m))
	assert.Equal(t, model.Pos(0, 0), a.Position())
	assert.Equal(t, Stats{Stuck: 1}, c.Stats())
}

func TestWander_StaysInBounds(t *testing.T) {
	m := world.NewMap("m", 4, 4, world.Snow)
	fox := creature(1, 0)
	require.NoError(t, m.AddActor(fox, model.Pos(0, 0)))

	w := NewWander(rng.New(11))
	for range 500 {
		from := fox.Position()
		require.True(t, w.Act(fox, m))
		to := fox.Position()
		assert.True(t, m.Contains(to))
		assert.LessOrEqual(t, max(abs(to.X-from.X), abs(to.Y-from.Y)), 1)
	}
}

func TestGraze(t *testing.T) {
	t.Run("eats and heals", func(t *testing.T) {
		m := world.NewMap("m", 3, 3, world.Dirt)
		deer := creature(1, model.ConsumesGroundItems)
		require.NoError(t, m.AddActor(deer, model.Pos(1, 1)))
		require.NoError(t, m.AddItem(model.Pos(1, 1), "berries"))
		deer.ReduceHP(3)

		c := NewController(rng.New(1))
		assert.Equal(t, IntentionGraze, c.Act(deer, m))
		assert.Equal(t, 8, deer.CurrentHP())
		assert.Equal(t, model.Pos(1, 1), deer.Position())
		assert.Empty(t, m.Items(model.Pos(1, 1)))
		assert.Equal(t, Stats{Grazed: 1}, c.Stats())
	})

	t.Run("healing is capped", func(t *testing.T) {
		m := world.NewMap("m", 1, 1, world.Dirt)
		deer := creature(1, model.ConsumesGroundItems)
		require.NoError(t, m.AddActor(deer, model.Pos(0, 0)))
		require.NoError(t, m.AddItem(model.Pos(0, 0), "berries"))

		assert.True(t, NewGraze(rng.New(1)).Act(deer, m))
		assert.Equal(t, 10, deer.CurrentHP())
	})

	t.Run("wanders without food", func(t *testing.T) {
		m := world.NewMap("m", 3, 3, world.Dirt)
		deer := creature(1, model.ConsumesGroundItems)
		require.NoError(t, m.AddActor(deer, model.Pos(1, 1)))

		c := NewController(rng.New(1))
		c.Act(deer, m)
		assert.NotEqual(t, model.Pos(1, 1), deer.Position())
		assert.Equal(t, Stats{Moved: 1}, c.Stats())
	})
}

func TestIntention_String(t *testing.T) {
	assert.Equal(t, "idle", IntentionIdle.String())
	assert.Equal(t, "graze", IntentionGraze.String())
	assert.Equal(t, "wander", IntentionWander.String())
	assert.Equal(t, "unknown", Intention(42).String())
}

func TestTraceMoves(t *testing.T) {
	t.Cleanup(func() { TraceMoves(slog.LevelInfo) })

	TraceMoves(slog.LevelDebug)
	assert.True(t, tracing())
	TraceMoves(slog.LevelDebug - 4)
	assert.True(t, tracing())
	TraceMoves(slog.LevelInfo)
	assert.False(t, tracing())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
