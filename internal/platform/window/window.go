// Package window provides the ebiten desktop frontend for the snake game.
package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Title is the window title.
const Title = "Snake Game"

// KeyPoller returns the game keys pressed since the previous frame.
type KeyPoller func() []core.Key

var watchedKeys = []struct {
	ebiten ebiten.Key
	game   core.Key
}{
	{ebiten.KeyW, core.KeyW},
	{ebiten.KeyA, core.KeyA},
	{ebiten.KeyS, core.KeyS},
	{ebiten.KeyD, core.KeyD},
}

// PollKeyboard reports W/A/S/D presses that started this frame.
func PollKeyboard() []core.Key {
	var keys []core.Key
	for _, k := range watchedKeys {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			keys = append(keys, k.game)
		}
	}
	return keys
}

// clock spreads ups simulation updates evenly over tps frames per second.
type clock struct {
	tps int
	ups int
	acc int
}

func newClock(tps, ups int) clock {
	ups = max(1, min(ups, tps))
	return clock{tps: tps, ups: ups}
}

// tick advances one frame and reports whether an update is due.
func (c *clock) tick() bool {
	c.acc += c.ups
	if c.acc < c.tps {
		return false
	}
	c.acc -= c.tps
	return true
}

// Window implements ebiten.Game on top of a loop session.
type Window struct {
	session *loop.Session
	poll    KeyPoller
	clock   clock
	logger  *log.Logger
}

// New creates a window frontend for game. poll may be nil to read the keyboard.
func New(game registry.Game, cfg core.RuntimeConfig, poll KeyPoller, logger *log.Logger) *Window {
	if poll == nil {
		poll = PollKeyboard
	}
	if logger == nil {
		logger = log.Default()
	}
	session := loop.NewSession(game, cfg)
	return &Window{
		session: session,
		poll:    poll,
		clock:   newClock(ebiten.DefaultTPS, session.Config().TickRate),
		logger:  logger,
	}
}

// Session returns the session the window drives.
func (w *Window) Session() *loop.Session {
	return w.session
}

// Update implements ebiten.Game. Input is applied every frame, the
// simulation advances ups times per second of frames.
func (w *Window) Update() error {
	for _, k := range w.poll() {
		w.session.Press(k)
	}

	if !w.clock.tick() {
		return nil
	}

	if w.session.State().GameOver {
		return nil
	}

	before := w.session.State().Score
	w.session.Update()
	state := w.session.State()
	if state.Score != before {
		w.logger.Debug("food eaten", "score", state.Score)
	}
	if state.GameOver {
		w.logger.Debug("game over", "score", state.Score)
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	w.session.Render(NewImageCanvas(screen, w.session.Config().CellSize))
	if w.session.State().GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", 4, 4)
	}
}

// Layout implements ebiten.Game. The logical screen is the board.
func (w *Window) Layout(_, _ int) (int, int) {
	size := w.session.Config().BoardSize
	return size, size
}

// Run opens a fixed-size window and plays until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (loop.Result, error) {
	w := New(game, cfg, nil, logger)
	size := w.session.Config().BoardSize

	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(w); err != nil {
		return w.session.Result(), fmt.Errorf("window: %w", err)
	}
	return w.session.Result(), nil
}
