package sim

import (
	"github.com/vovakirdan/tui-stg/internal/config"
	"github.com/vovakirdan/tui-stg/internal/core"
)

// Spawner creates enemies and shots. Spawn attempts whose preconditions are
// not met do nothing; they never fail.
type Spawner struct {
	rng   Roller
	spawn config.SpawnConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Roller, spawn config.SpawnConfig) *Spawner {
	return &Spawner{rng: rng, spawn: spawn}
}

// roll draws once and reports whether the draw hit the sentinel.
func (s *Spawner) roll() bool {
	return s.rng.Intn(s.spawn.RollRange) == s.spawn.Sentinel
}

// SpawnEnemy rolls once and, on a hit, creates an enemy at a random x across
// the playfield width on its top edge.
func (s *Spawner) SpawnEnemy(w *World) (Handle, bool) {
	if !s.roll() {
		return Handle{}, false
	}
	field := w.Playfield()
	x := field.Min().X + s.rng.Float64()*field.Size.X
	return w.Entities.Create(CategoryEnemy, core.Vec2{X: x, Y: field.Max().Y}), true
}

// SpawnPlayerShot creates a shot at the player's position on the tick fire
// goes down. Holding fire does not repeat.
func (s *Spawner) SpawnPlayerShot(w *World, in core.InputFrame) (Handle, bool) {
	if !in.Pressed(core.ActionFire) {
		return Handle{}, false
	}
	_, player, ok := w.player()
	if !ok {
		return Handle{}, false
	}
	return w.Entities.Create(CategoryPlayerShot, player.Pos), true
}

// SpawnEnemyShots rolls once and, on a hit, makes every live enemy fire one
// shot from its own position. Returns the number of shots created.
func (s *Spawner) SpawnEnemyShots(w *World) int {
	if !s.roll() {
		return 0
	}
	fired := 0
	for _, enemy := range w.Entities.All(CategoryEnemy) {
		w.Entities.Create(CategoryEnemyShot, enemy.Pos)
		fired++
	}
	return fired
}
