package headless

import (
	"github.com/vovakirdan/tui-stg/internal/core"
	"github.com/vovakirdan/tui-stg/internal/sim"
)

const (
	botTurnEvery = 20 // Ticks between steering decisions
	botFireEvery = 8  // Ticks between shots
	botEdge      = 0.4
)

// Bot produces scripted input: it starts and restarts sessions, wanders
// left and right inside the playfield and fires at a fixed cadence.
type Bot struct {
	rng   *sim.SimpleRNG
	tick  int
	steer core.Action
}

// NewBot creates a bot whose steering is seeded by seed.
func NewBot(seed int64) *Bot {
	return &Bot{rng: sim.NewSimpleRNG(seed ^ 0x5bd1e995)}
}

// Input returns the bot's input for the game's next tick.
func (b *Bot) Input(g *sim.Game) core.InputFrame {
	b.tick++
	in := core.NewInputFrame()

	switch g.State() {
	case sim.StateStart:
		in.Press(core.ActionConfirm)
	case sim.StateResult:
		in.Press(core.ActionContinue)
	case sim.StatePlaying:
		if b.tick%botTurnEvery == 0 {
			b.steer = b.decide(g)
		}
		if b.steer != core.ActionNone {
			in.Hold(b.steer)
		}
		if b.tick%botFireEvery == 0 {
			in.Press(core.ActionFire)
		}
	}
	return in
}

// decide picks a new steering direction, turning back near the field edges.
func (b *Bot) decide(g *sim.Game) core.Action {
	field := g.Playfield()
	limit := field.Size.X * botEdge

	snap := g.Snapshot()
	for _, e := range snap.Entities {
		if e.Category != sim.CategoryPlayer {
			continue
		}
		switch {
		case e.Pos.X > limit:
			return core.ActionLeft
		case e.Pos.X < -limit:
			return core.ActionRight
		}
	}

	switch b.rng.Intn(3) {
	case 0:
		return core.ActionLeft
	case 1:
		return core.ActionRight
	default:
		return core.ActionNone
	}
}
