package loop

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Session is one game wired to a recorder. Frontends share it by pointer, so
// the outcome stays readable after the frontend exits.
type Session struct {
	*Loop
	recorder *Recorder
	config   core.RuntimeConfig
}

// NewSession resets game with cfg and starts recording.
// A zero seed is replaced with a time-based one.
func NewSession(game registry.Game, cfg core.RuntimeConfig) *Session {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	rec := NewRecorder()
	return &Session{
		Loop:     New(game, rec),
		recorder: rec,
		config:   cfg,
	}
}

// Config returns the resolved configuration, seed included.
func (s *Session) Config() core.RuntimeConfig {
	return s.config
}

// Result summarizes a session.
type Result struct {
	Variant string
	Config  core.RuntimeConfig
	Ticks   uint64
	Inputs  []core.KeyPress
	State   core.GameState
}

// Result returns the current outcome of the session.
func (s *Session) Result() Result {
	return Result{
		Variant: s.Game().ID(),
		Config:  s.config,
		Ticks:   s.recorder.Ticks(),
		Inputs:  s.recorder.Inputs(),
		State:   s.State(),
	}
}
