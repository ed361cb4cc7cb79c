package sim

import (
	"math"

	"github.com/vovakirdan/tui-stg/internal/core"
)

// EntityView is a read-only copy of an entity for presentation.
type EntityView struct {
	Category Category
	Pos      core.Vec2
	Size     core.Vec2
}

// Box returns the view's collision box.
func (v EntityView) Box() core.Box {
	return core.Box{Center: v.Pos, Size: v.Size}
}

// Snapshot is everything a frontend needs to draw one frame.
type Snapshot struct {
	Tick     uint64
	State    GameState
	Score    int
	Menu     *Menu // nil while Playing
	Entities []EntityView
}

// Snapshot captures the current state. Entities are ordered by category,
// then by creation.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		State:    g.state,
		Score:    g.world.Score.Value(),
		Entities: make([]EntityView, 0, g.world.Entities.Len()),
	}
	if g.menu != nil {
		m := *g.menu
		snap.Menu = &m
	}
	for _, c := range Categories {
		for _, e := range g.world.Entities.All(c) {
			snap.Entities = append(snap.Entities, EntityView(e))
		}
	}
	return snap
}

// Count returns the number of entities of a category in the snapshot.
func (snap *Snapshot) Count(c Category) int {
	n := 0
	for _, e := range snap.Entities {
		if e.Category == c {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	if snap.Menu != nil {
		h = h*31 + uint64(snap.Menu.Kind)     //#nosec G115 -- hash computation
		h = h*31 + uint64(snap.Menu.Selected) //#nosec G115 -- hash computation
	}
	for _, e := range snap.Entities {
		h = h*31 + uint64(e.Category)
		h = h*31 + math.Float64bits(e.Pos.X)
		h = h*31 + math.Float64bits(e.Pos.Y)
	}
	return h
}
