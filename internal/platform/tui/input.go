package tui

import "github.com/vovakirdan/tui-stg/internal/core"

// InputTracker turns terminal key events into per-tick input frames.
//
// Terminals report key presses and auto-repeat but never releases, so an
// action counts as held for holdTicks ticks after its most recent event.
// An event is a new press when no event for the same action arrived in the
// previous repressTicks ticks. Auto-repeat arrives faster than that gap, so
// it only extends the hold; separate taps each press.
type InputTracker struct {
	holdTicks    int
	repressTicks int
	tick         int
	lastSeen     map[core.Action]int
	events       []core.Action
}

// NewInputTracker creates a tracker with the given hold window and re-press
// gap. The gap is clamped to [1, holdTicks].
func NewInputTracker(holdTicks, repressTicks int) *InputTracker {
	holdTicks = max(holdTicks, 1)
	repressTicks = min(max(repressTicks, 1), holdTicks)
	return &InputTracker{
		holdTicks:    holdTicks,
		repressTicks: repressTicks,
		lastSeen:     make(map[core.Action]int),
	}
}

// Observe records a key event for the next frame.
func (t *InputTracker) Observe(a core.Action) {
	if a == core.ActionNone {
		return
	}
	t.events = append(t.events, a)
}

// Frame advances the tracker by one tick and returns that tick's input.
func (t *InputTracker) Frame() core.InputFrame {
	t.tick++
	frame := core.NewInputFrame()

	for _, a := range t.events {
		seen, ok := t.lastSeen[a]
		if !ok || t.tick-seen > t.repressTicks {
			frame.Press(a)
		}
		t.lastSeen[a] = t.tick
	}
	t.events = t.events[:0]

	for a, seen := range t.lastSeen {
		if t.tick-seen < t.holdTicks {
			frame.Hold(a)
		} else {
			delete(t.lastSeen, a)
		}
	}
	return frame
}

// Reset releases every action.
func (t *InputTracker) Reset() {
	clear(t.lastSeen)
	t.events = t.events[:0]
}
