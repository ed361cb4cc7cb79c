package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-stg/internal/core"
)

// Move advances every entity by its category velocity times dt seconds.
//
// The player's velocity is the sum of the unit vectors of all held direction
// keys times the player speed; diagonals are not normalized. Move panics with
// ErrInvariant unless exactly one player exists.
func Move(w *World, in core.InputFrame, dt float64) {
	n := w.Entities.Count(CategoryPlayer)
	if n != 1 {
		panic(fmt.Errorf("%w: motion needs exactly one player, found %d", ErrInvariant, n))
	}

	dir := core.VecZero
	if in.Held(core.ActionLeft) {
		dir = dir.Sub(core.VecX)
	}
	if in.Held(core.ActionRight) {
		dir = dir.Add(core.VecX)
	}
	if in.Held(core.ActionUp) {
		dir = dir.Add(core.VecY)
	}
	if in.Held(core.ActionDown) {
		dir = dir.Sub(core.VecY)
	}
	playerStep := dir.Scale(w.cfg.Player.Speed * dt)
	for h := range w.Entities.All(CategoryPlayer) {
		w.Entities.Translate(h, playerStep)
	}

	moveAll(w, CategoryPlayerShot, core.VecY.Scale(w.cfg.PlayerShot.Speed*dt))
	moveAll(w, CategoryEnemyShot, core.VecY.Scale(-w.cfg.EnemyShot.Speed*dt))
	moveAll(w, CategoryEnemy, core.VecY.Scale(-w.cfg.Enemy.Speed*dt))
}

// moveAll translates every entity of a category by the same step.
func moveAll(w *World, c Category, step core.Vec2) {
	for h := range w.Entities.All(c) {
		w.Entities.Translate(h, step)
	}
}

// Cull stages removal of non-player entities whose boxes lie entirely outside
// the playfield grown by margin on every side. Returns how many were staged.
func Cull(w *World, margin float64) int {
	area := w.Playfield()
	area.Size = area.Size.Add(core.Vec2{X: 2 * margin, Y: 2 * margin})

	culled := 0
	for _, c := range []Category{CategoryEnemy, CategoryPlayerShot, CategoryEnemyShot} {
		for h, e := range w.Entities.All(c) {
			if !e.Box().Overlaps(area) {
				w.Entities.Destroy(h)
				culled++
			}
		}
	}
	return culled
}
