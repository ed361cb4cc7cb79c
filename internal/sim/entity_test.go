package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-stg/internal/config"
	"github.com/vovakirdan/tui-stg/internal/core"
)

func newTestStore() *Store {
	return NewWorld(config.Default()).Entities
}

func collect(s *Store, c Category) []Handle {
	var out []Handle
	for h := range s.All(c) {
		out = append(out, h)
	}
	return out
}

func TestStoreCreateIsStaged(t *testing.T) {
	s := newTestStore()
	h := s.Create(CategoryEnemy, core.Vec2{X: 1, Y: 2})

	assert.Equal(t, 0, s.Count(CategoryEnemy), "create must not be visible before commit")
	_, ok := s.Get(h)
	assert.False(t, ok)
	assert.Equal(t, 1, s.PendingChanges())

	s.Commit()
	e, ok := s.Get(h)
	require.True(t, ok)
	assert.Equal(t, CategoryEnemy, e.Category)
	assert.Equal(t, core.Vec2{X: 1, Y: 2}, e.Pos)
	assert.Equal(t, core.Vec2{X: 50, Y: 50}, e.Size)
	assert.Equal(t, 0, s.PendingChanges())
}

func TestStoreDestroyIsStaged(t *testing.T) {
	s := newTestStore()
	h := s.Create(CategoryPlayerShot, core.VecZero)
	s.Commit()

	s.Destroy(h)
	assert.Equal(t, 1, s.Count(CategoryPlayerShot), "destroy must not be visible before commit")
	_, ok := s.Get(h)
	assert.True(t, ok)

	s.Commit()
	assert.Equal(t, 0, s.Count(CategoryPlayerShot))
	_, ok = s.Get(h)
	assert.False(t, ok, "destroyed handle should be stale")
}

func TestStoreDestroyIdempotent(t *testing.T) {
	s := newTestStore()
	a := s.Create(CategoryEnemy, core.VecZero)
	b := s.Create(CategoryEnemy, core.VecZero)
	s.Commit()

	s.Destroy(a)
	s.Destroy(a)
	s.Commit()
	s.Destroy(a) // stale now

	s.Commit()
	assert.Equal(t, []Handle{b}, collect(s, CategoryEnemy))
	assert.Equal(t, 1, s.Len())
}

func TestStoreNoReuseWithinTick(t *testing.T) {
	s := newTestStore()
	old := s.Create(CategoryEnemy, core.VecZero)
	s.Commit()

	s.Destroy(old)
	fresh := s.Create(CategoryEnemy, core.VecZero)
	assert.NotEqual(t, old.Index, fresh.Index, "slot freed this tick must not be reused before commit")
	s.Commit()

	reused := s.Create(CategoryEnemy, core.VecZero)
	s.Commit()
	assert.Equal(t, old.Index, reused.Index, "slot returns to the free list after commit")
	assert.NotEqual(t, old.Gen, reused.Gen)

	_, ok := s.Get(old)
	assert.False(t, ok, "old handle must not resolve to the reused slot")
	_, ok = s.Get(reused)
	assert.True(t, ok)
}

func TestStoreCreateThenDestroyBeforeCommit(t *testing.T) {
	s := newTestStore()
	h := s.Create(CategoryEnemyShot, core.VecZero)
	s.Destroy(h)
	s.Commit()

	assert.Equal(t, 0, s.Len())
	_, ok := s.Get(h)
	assert.False(t, ok)
}

func TestStoreIterationOrderAndSnapshotSemantics(t *testing.T) {
	s := newTestStore()
	var hs []Handle
	for i := range 4 {
		hs = append(hs, s.Create(CategoryEnemy, core.Vec2{X: float64(i)}))
	}
	s.Commit()

	seen := 0
	for h := range s.All(CategoryEnemy) {
		// Changes staged mid-iteration do not disturb it.
		s.Destroy(h)
		s.Create(CategoryEnemy, core.VecZero)
		seen++
	}
	assert.Equal(t, 4, seen)

	s.Destroy(hs[0])
	s.Commit()
	assert.Equal(t, 4, s.Count(CategoryEnemy), "four replacements remain")
}

func TestStoreRemovalPreservesOrder(t *testing.T) {
	s := newTestStore()
	a := s.Create(CategoryEnemy, core.VecZero)
	b := s.Create(CategoryEnemy, core.VecZero)
	c := s.Create(CategoryEnemy, core.VecZero)
	s.Commit()

	s.Destroy(b)
	s.Commit()
	assert.Equal(t, []Handle{a, c}, collect(s, CategoryEnemy))
}

func TestStorePurge(t *testing.T) {
	s := newTestStore()
	s.Create(CategoryPlayer, core.VecZero)
	s.Create(CategoryEnemy, core.VecZero)
	s.Create(CategoryEnemyShot, core.VecZero)
	s.Commit()
	s.Create(CategoryEnemy, core.VecZero) // still pending

	s.Purge(CategoryEnemy, CategoryEnemyShot)
	s.Commit()

	assert.Equal(t, 1, s.Count(CategoryPlayer))
	assert.Equal(t, 0, s.Count(CategoryEnemy))
	assert.Equal(t, 0, s.Count(CategoryEnemyShot))
}

func TestStoreTranslate(t *testing.T) {
	s := newTestStore()
	h := s.Create(CategoryEnemy, core.Vec2{X: 1, Y: 1})
	s.Translate(h, core.Vec2{X: 5}) // pending, ignored
	s.Commit()

	s.Translate(h, core.Vec2{X: 2, Y: -3})
	e, _ := s.Get(h)
	assert.Equal(t, core.Vec2{X: 3, Y: -2}, e.Pos)
}

func TestZeroHandleInvalid(t *testing.T) {
	s := newTestStore()
	s.Create(CategoryEnemy, core.VecZero)
	s.Commit()

	_, ok := s.Get(Handle{})
	assert.False(t, ok)
	s.Destroy(Handle{})
	assert.Equal(t, 0, s.PendingChanges())
}

func TestCategoryString(t *testing.T) {
	for _, c := range Categories {
		assert.NotEqual(t, "Unknown", c.String())
	}
	assert.Equal(t, "Unknown", Category(42).String())
}
