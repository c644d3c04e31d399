// Package loop routes frontend events to a game: render events to Render,
// update events to Update and input events to Pressed. A Recorder captures the
// inputs of a session so Replay can re-run it headless.
package loop

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Observer sees every event after it has been dispatched.
type Observer interface {
	Observe(ev core.Event)
}

// Loop is the single dispatch point shared by all frontends.
type Loop struct {
	game      registry.Game
	observers []Observer
}

// New creates a loop driving g.
func New(g registry.Game, observers ...Observer) *Loop {
	return &Loop{game: g, observers: observers}
}

// Game returns the driven game.
func (l *Loop) Game() registry.Game {
	return l.game
}

// Dispatch delivers one event. c is only used for render events and may be
// nil otherwise.
func (l *Loop) Dispatch(ev core.Event, c core.Canvas) {
	switch ev.Kind {
	case core.EventRender:
		if c != nil {
			l.game.Render(c)
		}
	case core.EventUpdate:
		l.game.Update()
	case core.EventInput:
		l.game.Pressed(ev.Key)
	}
	for _, o := range l.observers {
		o.Observe(ev)
	}
}

// Update is shorthand for dispatching an update event.
func (l *Loop) Update() {
	l.Dispatch(core.UpdateEvent(), nil)
}

// Press is shorthand for dispatching an input event.
func (l *Loop) Press(k core.Key) {
	l.Dispatch(core.InputEvent(k), nil)
}

// Render is shorthand for dispatching a render event onto c.
func (l *Loop) Render(c core.Canvas) {
	l.Dispatch(core.RenderEvent(), c)
}

// State returns the game's state.
func (l *Loop) State() core.GameState {
	return l.game.State()
}
