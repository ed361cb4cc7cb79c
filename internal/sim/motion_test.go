package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-stg/internal/config"
	"github.com/vovakirdan/tui-stg/internal/core"
)

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name string
		keys []core.Action
		dt   float64
		want core.Vec2
	}{
		{"idle", nil, 1, core.Vec2{}},
		{"right", []core.Action{core.ActionRight}, 1, core.Vec2{X: 800}},
		{"left", []core.Action{core.ActionLeft}, 0.5, core.Vec2{X: -400}},
		{"up", []core.Action{core.ActionUp}, 0.25, core.Vec2{Y: 200}},
		{"down", []core.Action{core.ActionDown}, 0.25, core.Vec2{Y: -200}},
		{"diagonal not normalized", []core.Action{core.ActionRight, core.ActionUp}, 0.5, core.Vec2{X: 400, Y: 400}},
		{"opposite keys cancel", []core.Action{core.ActionLeft, core.ActionRight}, 1, core.Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(config.Default())
			h := place(w, CategoryPlayer, 0, 0)

			Move(w, hold(tc.keys...), tc.dt)

			e, _ := w.Entities.Get(h)
			assert.InDelta(t, tc.want.X, e.Pos.X, 1e-9)
			assert.InDelta(t, tc.want.Y, e.Pos.Y, 1e-9)
		})
	}
}

func TestMoveProjectilesAndEnemies(t *testing.T) {
	w := NewWorld(config.Default())
	place(w, CategoryPlayer, 0, 0)
	shot := place(w, CategoryPlayerShot, 0, 0)
	enemyShot := place(w, CategoryEnemyShot, 0, 0)
	enemy := place(w, CategoryEnemy, 0, 0)

	Move(w, core.NewInputFrame(), 0.1)

	positions := map[Handle]float64{shot: 100, enemyShot: -50, enemy: -10}
	for h, wantY := range positions {
		e, ok := w.Entities.Get(h)
		require.True(t, ok)
		assert.InDelta(t, wantY, e.Pos.Y, 1e-9, "%s", e.Category)
		assert.Zero(t, e.Pos.X)
	}
}

func TestMoveRequiresExactlyOnePlayer(t *testing.T) {
	w := NewWorld(config.Default())
	err := invariantPanic(func() { Move(w, core.NewInputFrame(), 0.1) })
	assert.ErrorIs(t, err, ErrInvariant, "zero players")

	place(w, CategoryPlayer, 0, 0)
	place(w, CategoryPlayer, 10, 0)
	err = invariantPanic(func() { Move(w, core.NewInputFrame(), 0.1) })
	assert.ErrorIs(t, err, ErrInvariant, "two players")
}

func TestCull(t *testing.T) {
	w := NewWorld(config.Default())
	player := place(w, CategoryPlayer, 0, -5000)
	inside := place(w, CategoryEnemy, 0, 0)
	edge := place(w, CategoryEnemyShot, 0, -390) // box reaches -395, margin ends at -400
	gone := place(w, CategoryPlayerShot, 0, 1000)

	assert.Equal(t, 1, Cull(w, 100))
	w.Entities.Commit()

	for _, h := range []Handle{player, inside, edge} {
		_, ok := w.Entities.Get(h)
		assert.True(t, ok)
	}
	_, ok := w.Entities.Get(gone)
	assert.False(t, ok)
}
