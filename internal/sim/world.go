package sim

import (
	"github.com/vovakirdan/tui-stg/internal/config"
	"github.com/vovakirdan/tui-stg/internal/core"
)

// World is the mutable simulation context handed to every system.
// It is owned by Game and never shared between games.
type World struct {
	Entities *Store
	Score    Score

	cfg config.Config
}

// NewWorld creates an empty world using the category sizes from cfg.
func NewWorld(cfg config.Config) *World {
	var sizes [numCategories]core.Vec2
	sizes[CategoryPlayer] = bodySize(cfg.Player.Body)
	sizes[CategoryEnemy] = bodySize(cfg.Enemy)
	sizes[CategoryPlayerShot] = bodySize(cfg.PlayerShot)
	sizes[CategoryEnemyShot] = bodySize(cfg.EnemyShot)

	return &World{
		Entities: NewStore(sizes),
		cfg:      cfg,
	}
}

// Playfield returns the visible world area as a box centered on the origin.
func (w *World) Playfield() core.Box {
	return core.NewBox(0, 0, w.cfg.Playfield.Width, w.cfg.Playfield.Height)
}

// player returns the single player entity, if exactly one exists.
func (w *World) player() (Handle, Entity, bool) {
	if w.Entities.Count(CategoryPlayer) != 1 {
		return Handle{}, Entity{}, false
	}
	for h, e := range w.Entities.All(CategoryPlayer) {
		return h, e, true
	}
	return Handle{}, Entity{}, false
}

func bodySize(b config.Body) core.Vec2 {
	return core.Vec2{X: b.Width, Y: b.Height}
}
