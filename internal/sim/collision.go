package sim

// EventKind identifies what a collision means for the game.
type EventKind int

const (
	// EventKill is a player shot overlapping an enemy.
	EventKill EventKind = iota
	// EventHit is an enemy shot overlapping the player. It is reported only.
	EventHit
	// EventTerminal is an enemy overlapping the player.
	EventTerminal
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKill:
		return "kill"
	case EventHit:
		return "hit"
	case EventTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Event is one detected overlap.
type Event struct {
	Kind   EventKind
	Source Handle // Shot or enemy that made contact
	Target Handle // Enemy or player that was touched
}

// DetectCollisions scans the three pairings in order: player shots against
// enemies, enemy shots against the player, enemies against the player.
// Every pair is tested; nothing is consumed, so one shot may report several
// enemies and one enemy may be reported by several shots.
func DetectCollisions(w *World) []Event {
	var events []Event
	events = scanPairs(w, events, EventKill, CategoryPlayerShot, CategoryEnemy)
	events = scanPairs(w, events, EventHit, CategoryEnemyShot, CategoryPlayer)
	events = scanPairs(w, events, EventTerminal, CategoryEnemy, CategoryPlayer)
	return events
}

// scanPairs appends an event for every overlapping (a, b) pair.
func scanPairs(w *World, events []Event, kind EventKind, a, b Category) []Event {
	for ha, ea := range w.Entities.All(a) {
		boxA := ea.Box()
		for hb, eb := range w.Entities.All(b) {
			if boxA.Overlaps(eb.Box()) {
				events = append(events, Event{Kind: kind, Source: ha, Target: hb})
			}
		}
	}
	return events
}
