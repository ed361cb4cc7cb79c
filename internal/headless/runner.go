// Package headless drives the simulation without a terminal, using a seeded
// bot for input. It is used for soak runs and determinism checks.
package headless

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stg/internal/config"
	"github.com/vovakirdan/tui-stg/internal/sim"
)

// Stats summarizes one headless run.
type Stats struct {
	Run          int
	Seed         int64
	Ticks        int
	Sessions     int // Times Playing was entered
	Deaths       int // Times a session ended in Result
	Kills        int
	Hits         int // Enemy shots that touched the player
	BestScore    int
	PeakEntities int
	Hash         uint64 // Snapshot hash after the last tick
}

// Run plays ticks steps of a fresh game seeded with seed.
func Run(cfg config.Config, run int, seed int64, ticks int, logger *log.Logger) Stats {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dt := time.Second / time.Duration(cfg.TickRate)
	game := sim.New(cfg, seed, sim.WithLogger(logger.With("run", run)))
	bot := NewBot(seed)

	stats := Stats{Run: run, Seed: seed, Ticks: ticks}
	for range ticks {
		res := game.Step(bot.Input(game), dt)

		if res.Transitioned {
			switch res.State {
			case sim.StatePlaying:
				stats.Sessions++
			case sim.StateResult:
				stats.Deaths++
			}
		}
		for _, ev := range res.Events {
			switch ev.Kind {
			case sim.EventKill:
				stats.Kills++
			case sim.EventHit:
				stats.Hits++
			}
		}
		stats.BestScore = max(stats.BestScore, res.Score)
		stats.PeakEntities = max(stats.PeakEntities, game.World().Entities.Len())
	}

	snap := game.Snapshot()
	stats.Hash = snap.Hash()
	logger.Debug("run finished", "run", run, "seed", seed, "sessions", stats.Sessions, "best", stats.BestScore)
	return stats
}
