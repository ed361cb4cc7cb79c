package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-stg/internal/config"
	"github.com/vovakirdan/tui-stg/internal/core"
)

const tick = time.Second / 60

// scriptedRoller replays fixed draws. Once a script runs out, Intn returns
// n-1 (never the default sentinel) and Float64 returns 0.5.
type scriptedRoller struct {
	ints   []int
	floats []float64
}

func (r *scriptedRoller) Intn(n int) int {
	if len(r.ints) == 0 {
		return n - 1
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRoller) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

func hold(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

// newQuietGame returns a game whose spawner never rolls the sentinel.
func newQuietGame(t *testing.T) *Game {
	t.Helper()
	return New(config.Default(), 1, WithRoller(&scriptedRoller{}))
}

// startPlaying confirms the default Start selection and checks the result.
func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	res := g.Step(press(core.ActionConfirm), tick)
	require.Equal(t, StatePlaying, res.State)
	require.True(t, res.Transitioned)
}

// place creates an entity and commits it immediately.
func place(w *World, c Category, x, y float64) Handle {
	h := w.Entities.Create(c, core.Vec2{X: x, Y: y})
	w.Entities.Commit()
	return h
}

// invariantPanic runs fn and returns the error it panicked with, if any.
func invariantPanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}
