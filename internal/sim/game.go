package sim

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stg/internal/config"
	"github.com/vovakirdan/tui-stg/internal/core"
)

// ErrInvariant marks a broken simulation invariant. It is only ever raised
// through panic; correct operation never produces it.
var ErrInvariant = errors.New("sim: invariant violated")

// cullMargin is how far past the playfield an entity may drift before
// optional culling removes it.
const cullMargin = 100.0

// StepResult is the outcome of one tick.
type StepResult struct {
	State        GameState
	Score        int
	Exit         bool    // Exit was confirmed on the Start menu
	Transitioned bool    // A state transition was applied at the end of the tick
	Events       []Event // Collisions detected this tick
}

// Game runs the Start/Playing/Result flow over a World.
type Game struct {
	cfg     config.Config
	world   *World
	spawner *Spawner
	logger  *log.Logger

	state GameState
	menu  *Menu

	next    GameState
	pending bool

	tick        uint64
	transitions int
}

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger used for transitions and collision signals.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRoller replaces the seeded RNG used by the spawner.
func WithRoller(r Roller) Option {
	return func(g *Game) {
		g.spawner = NewSpawner(r, g.cfg.Spawn)
	}
}

// New creates a game in the Start state.
func New(cfg config.Config, seed int64, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		world:   NewWorld(cfg),
		spawner: NewSpawner(NewSimpleRNG(seed), cfg.Spawn),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.state = StateStart
	g.enter(StateStart)
	return g
}

// Step advances the simulation by one tick of length dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) StepResult {
	g.tick++
	g.checkInvariants()

	var res StepResult
	switch g.state {
	case StateStart:
		res.Exit = g.updateStart(in)
	case StatePlaying:
		res.Events = g.updatePlaying(in, dt.Seconds())
	case StateResult:
		g.updateResult(in)
	}

	res.Transitioned = g.endTick()
	g.checkInvariants()

	res.State = g.state
	res.Score = g.world.Score.Value()
	return res
}

// updateStart handles Start menu input. Returns true when Exit is confirmed.
func (g *Game) updateStart(in core.InputFrame) bool {
	if g.menu == nil {
		return false
	}
	g.navigate(in)
	if !in.Pressed(core.ActionConfirm) {
		return false
	}
	switch g.menu.Selected {
	case OptionStart:
		g.request(StatePlaying)
	case OptionExit:
		return true
	}
	return false
}

func (g *Game) updatePlaying(in core.InputFrame, dt float64) []Event {
	w := g.world

	Move(w, in, dt)
	if g.cfg.CullOffscreen {
		Cull(w, cullMargin)
	}

	g.spawner.SpawnEnemy(w)
	g.spawner.SpawnPlayerShot(w, in)
	g.spawner.SpawnEnemyShots(w)

	events := DetectCollisions(w)
	for _, ev := range events {
		g.logger.Debug("collision detected", "kind", ev.Kind, "source", ev.Source, "target", ev.Target, "tick", g.tick)
		switch ev.Kind {
		case EventKill:
			w.Entities.Destroy(ev.Target)
			w.Score.Increment()
		case EventHit:
			// Detection only.
		case EventTerminal:
			g.request(StateResult)
		}
	}
	return events
}

// updateResult handles the continue key, then Result menu input.
func (g *Game) updateResult(in core.InputFrame) {
	if in.Pressed(core.ActionContinue) {
		g.request(StatePlaying)
	}
	if g.menu == nil {
		return
	}
	g.navigate(in)
	if !in.Pressed(core.ActionConfirm) {
		return
	}
	switch g.menu.Selected {
	case OptionRestart:
		g.request(StatePlaying)
	case OptionBackToTitle:
		g.request(StateStart)
	}
}

// navigate moves the selection: left picks the first option, right the second.
func (g *Game) navigate(in core.InputFrame) {
	opts := g.menu.Options()
	if in.Pressed(core.ActionLeft) {
		g.menu.Selected = opts[0]
	}
	if in.Pressed(core.ActionRight) {
		g.menu.Selected = opts[len(opts)-1]
	}
}

// request records a transition to apply at the end of the tick.
// The last request wins; repeating a request changes nothing.
func (g *Game) request(s GameState) {
	g.next = s
	g.pending = true
}

// endTick commits staged entity changes and applies the pending transition.
func (g *Game) endTick() bool {
	g.world.Entities.Commit()
	if !g.pending {
		return false
	}

	from, to := g.state, g.next
	g.pending = false

	g.exit(from)
	g.state = to
	g.enter(to)
	g.world.Entities.Commit()

	g.transitions++
	g.logger.Info("state transition", "from", from, "to", to, "tick", g.tick, "score", g.world.Score.Value())
	return true
}

func (g *Game) enter(s GameState) {
	switch s {
	case StateStart:
		g.menu = newMenu(MenuStart)
	case StatePlaying:
		g.world.Score.Reset()
		g.world.Entities.Create(CategoryPlayer, core.Vec2{X: g.cfg.Player.StartX, Y: g.cfg.Player.StartY})
	case StateResult:
		g.menu = newMenu(MenuResult)
	}
}

func (g *Game) exit(s GameState) {
	switch s {
	case StateStart, StateResult:
		g.menu = nil
	case StatePlaying:
		g.world.Entities.Purge(Categories...)
	}
}

// checkInvariants panics if the Playing state does not hold exactly one player.
func (g *Game) checkInvariants() {
	if g.state != StatePlaying {
		return
	}
	if n := g.world.Entities.Count(CategoryPlayer); n != 1 {
		panic(fmt.Errorf("%w: %s state has %d players at tick %d", ErrInvariant, g.state, n, g.tick))
	}
}

// State returns the current flow state.
func (g *Game) State() GameState { return g.state }

// Score returns the current score.
func (g *Game) Score() int { return g.world.Score.Value() }

// Tick returns the number of steps taken.
func (g *Game) Tick() uint64 { return g.tick }

// Transitions returns how many state transitions have been applied.
func (g *Game) Transitions() int { return g.transitions }

// Menu returns a copy of the active menu, if any.
func (g *Game) Menu() (Menu, bool) {
	if g.menu == nil {
		return Menu{}, false
	}
	return *g.menu, true
}

// World exposes the simulation context for inspection.
func (g *Game) World() *World { return g.world }

// Playfield returns the world area presented to the player.
func (g *Game) Playfield() core.Box { return g.world.Playfield() }
