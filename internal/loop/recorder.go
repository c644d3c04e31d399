package loop

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Recorder counts updates and records key presses against the update count.
// Keys the game ignores are not recorded.
type Recorder struct {
	ticks  uint64
	inputs []core.KeyPress
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe implements Observer.
func (r *Recorder) Observe(ev core.Event) {
	switch ev.Kind {
	case core.EventUpdate:
		r.ticks++
	case core.EventInput:
		if ev.Key != core.KeyNone {
			r.inputs = append(r.inputs, core.KeyPress{Tick: r.ticks, Key: ev.Key})
		}
	}
}

// Ticks returns how many updates were observed.
func (r *Recorder) Ticks() uint64 {
	return r.ticks
}

// Inputs returns a copy of the recorded key presses in arrival order.
func (r *Recorder) Inputs() []core.KeyPress {
	return slices.Clone(r.inputs)
}

// Replay resets g with cfg and re-applies inputs over ticks updates.
// With the same seed the game ends in the same state as the recorded session.
func Replay(g registry.Game, cfg core.RuntimeConfig, ticks uint64, inputs []core.KeyPress) core.GameState {
	g.Reset(cfg)
	l := New(g)

	next := 0
	for tick := uint64(0); tick <= ticks; tick++ {
		for next < len(inputs) && inputs[next].Tick == tick {
			l.Press(inputs[next].Key)
			next++
		}
		if tick == ticks {
			break
		}
		l.Update()
	}
	return l.State()
}
