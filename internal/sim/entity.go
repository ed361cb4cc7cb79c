package sim

import (
	"iter"

	"github.com/vovakirdan/tui-stg/internal/core"
)

// Category tags what kind of object an entity is.
type Category uint8

const (
	CategoryPlayer Category = iota
	CategoryEnemy
	CategoryPlayerShot
	CategoryEnemyShot
	numCategories
)

// Categories lists every category in iteration order.
var Categories = []Category{
	CategoryPlayer,
	CategoryEnemy,
	CategoryPlayerShot,
	CategoryEnemyShot,
}

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "Player"
	case CategoryEnemy:
		return "Enemy"
	case CategoryPlayerShot:
		return "PlayerShot"
	case CategoryEnemyShot:
		return "EnemyShot"
	default:
		return "Unknown"
	}
}

// Entity is a live simulation object.
type Entity struct {
	Category Category
	Pos      core.Vec2 // Center of the box
	Size     core.Vec2 // Full width and height, fixed per category
}

// Box returns the entity's collision box.
func (e Entity) Box() core.Box {
	return core.Box{Center: e.Pos, Size: e.Size}
}

// Handle refers to an entity slot. A handle goes stale once its entity is
// destroyed; stale handles resolve to nothing. The zero Handle is never valid.
type Handle struct {
	Index uint32
	Gen   uint32
}

// slot is one arena cell.
type slot struct {
	entity  Entity
	gen     uint32
	live    bool // committed and visible to iteration
	pending bool // created this tick, visible after Commit
}

// Store is an arena of entities grouped by category.
//
// Create and Destroy are staged and take effect together on Commit, so every
// reader within a tick sees the same set of entities. Freed slots return to
// the free list only on Commit, which bumps their generation.
type Store struct {
	slots      []slot
	free       []uint32
	byCategory [numCategories][]Handle
	sizes      [numCategories]core.Vec2

	created   []Handle
	destroyed []Handle
}

// NewStore creates an empty store. sizes gives the fixed box size per category.
func NewStore(sizes [numCategories]core.Vec2) *Store {
	return &Store{
		slots: make([]slot, 0, 64),
		sizes: sizes,
	}
}

// Create stages a new entity of the given category at pos.
// The entity becomes visible after the next Commit.
func (s *Store) Create(c Category, pos core.Vec2) Handle {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots)) //#nosec G115 -- arena never approaches 2^32 slots
		s.slots = append(s.slots, slot{})
	}

	sl := &s.slots[idx]
	sl.gen++
	sl.entity = Entity{Category: c, Pos: pos, Size: s.sizes[c]}
	sl.pending = true
	sl.live = false

	h := Handle{Index: idx, Gen: sl.gen}
	s.created = append(s.created, h)
	return h
}

// Destroy stages removal of the entity. Destroying a stale handle or an
// entity already staged for removal is a no-op.
func (s *Store) Destroy(h Handle) {
	if !s.valid(h) {
		return
	}
	s.destroyed = append(s.destroyed, h)
}

// Purge stages removal of every entity in the given categories.
func (s *Store) Purge(categories ...Category) {
	for _, c := range categories {
		s.destroyed = append(s.destroyed, s.byCategory[c]...)
		for _, h := range s.created {
			if s.valid(h) && s.slots[h.Index].entity.Category == c {
				s.destroyed = append(s.destroyed, h)
			}
		}
	}
}

// Commit applies all staged destroys, then all staged creates.
func (s *Store) Commit() {
	if len(s.destroyed) > 0 {
		removed := make(map[Handle]struct{}, len(s.destroyed))
		for _, h := range s.destroyed {
			if !s.valid(h) {
				continue // already freed earlier in this batch
			}
			sl := &s.slots[h.Index]
			if sl.live {
				removed[h] = struct{}{}
			}
			sl.live = false
			sl.pending = false
			sl.gen++
			s.free = append(s.free, h.Index)
		}
		s.destroyed = s.destroyed[:0]

		if len(removed) > 0 {
			for c := range s.byCategory {
				s.byCategory[c] = compact(s.byCategory[c], removed)
			}
		}
	}

	for _, h := range s.created {
		if !s.valid(h) {
			continue // destroyed before it was ever committed
		}
		sl := &s.slots[h.Index]
		sl.pending = false
		sl.live = true
		c := sl.entity.Category
		s.byCategory[c] = append(s.byCategory[c], h)
	}
	s.created = s.created[:0]
}

// compact removes handles in removed while preserving order.
func compact(list []Handle, removed map[Handle]struct{}) []Handle {
	writeIdx := 0
	for _, h := range list {
		if _, gone := removed[h]; !gone {
			list[writeIdx] = h
			writeIdx++
		}
	}
	return list[:writeIdx]
}

// valid reports whether h matches its slot's current generation.
func (s *Store) valid(h Handle) bool {
	return h.Gen != 0 && int(h.Index) < len(s.slots) && s.slots[h.Index].gen == h.Gen
}

// Get returns a copy of a committed live entity.
func (s *Store) Get(h Handle) (Entity, bool) {
	if !s.valid(h) || !s.slots[h.Index].live {
		return Entity{}, false
	}
	return s.slots[h.Index].entity, true
}

// Translate moves a committed live entity by delta. Stale handles are ignored.
func (s *Store) Translate(h Handle, delta core.Vec2) {
	if !s.valid(h) || !s.slots[h.Index].live {
		return
	}
	e := &s.slots[h.Index].entity
	e.Pos = e.Pos.Add(delta)
}

// All iterates committed live entities of a category in creation order.
// Creates and destroys staged during iteration do not affect it.
func (s *Store) All(c Category) iter.Seq2[Handle, Entity] {
	list := s.byCategory[c]
	return func(yield func(Handle, Entity) bool) {
		for _, h := range list {
			if !yield(h, s.slots[h.Index].entity) {
				return
			}
		}
	}
}

// Count returns the number of committed live entities in a category.
func (s *Store) Count(c Category) int {
	return len(s.byCategory[c])
}

// Len returns the number of committed live entities.
func (s *Store) Len() int {
	n := 0
	for c := range s.byCategory {
		n += len(s.byCategory[c])
	}
	return n
}

// PendingChanges returns the number of staged creates and destroys.
func (s *Store) PendingChanges() int {
	return len(s.created) + len(s.destroyed)
}
