package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	return cfg
}

func TestModelFirstTickEatsInitialFood(t *testing.T) {
	m := NewModel(snake.NewClassic(), testConfig(), nil)

	m, cmd := step(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if got := m.Result().State.Score; got != 1 {
		t.Errorf("score after first tick = %d, expected 1", got)
	}
	if got := m.Result().Ticks; got != 1 {
		t.Errorf("ticks = %d, expected 1", got)
	}
}

func TestModelRecordsInputs(t *testing.T) {
	m := NewModel(snake.NewClassic(), testConfig(), nil)

	m, _ = step(t, m, TickMsg(time.Now()))
	m, _ = step(t, m, runeKey('s'))
	m, _ = step(t, m, runeKey('x'))

	res := m.Result()
	if len(res.Inputs) != 1 {
		t.Fatalf("recorded %d inputs, expected 1", len(res.Inputs))
	}
	if res.Inputs[0] != (core.KeyPress{Tick: 1, Key: core.KeyS}) {
		t.Errorf("input = %+v", res.Inputs[0])
	}
	if res.Variant != "classic" || res.Config.Seed != 7 {
		t.Errorf("result header = %+v", res)
	}
}

func TestModelQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		runeKey('q'),
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := NewModel(snake.NewClassic(), testConfig(), nil)
		m, cmd := step(t, m, msg)
		if !isQuit(cmd) {
			t.Errorf("%q should quit", msg.String())
		}
		if m.View() != "" {
			t.Errorf("View() after quit should be empty")
		}
	}
}

func TestModelStopsTickingOnGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.Start = core.StartLayout{
		Body:      []core.Point{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}},
		Direction: "right",
		Food:      core.Point{X: 8, Y: 8},
	}
	m := NewModel(snake.NewStrict(), cfg, nil)

	m, cmd := step(t, m, TickMsg(time.Now()))
	if cmd != nil {
		t.Error("no tick should be scheduled after game over")
	}
	if !m.Result().State.GameOver {
		t.Fatal("strict self-collision should end the game")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("View() should show the game over banner")
	}
}

func TestModelSeedDefaultsToTime(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0
	m := NewModel(snake.NewClassic(), cfg, nil)
	if m.Result().Config.Seed == 0 {
		t.Error("a zero seed should be replaced")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(snake.NewClassic(), testConfig(), nil)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("View() should show the score, got:\n%s", view)
	}
	if !strings.Contains(view, "█") {
		t.Error("View() should draw snake cells")
	}

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	if !strings.Contains(m.View(), "too small") {
		t.Error("View() should warn when the terminal is too small")
	}

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if strings.Contains(m.View(), "too small") {
		t.Error("80x24 fits the default board")
	}
}

func TestRenderScreenGroupsColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetColored(0, 0, 'a', core.ColorGreen)
	s.SetColored(1, 0, 'b', core.ColorGreen)
	s.SetColored(2, 0, 'c', core.ColorBlue)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") {
		t.Errorf("same-colour runs should be rendered together, got %q", out)
	}
	if !strings.Contains(out, "c") {
		t.Errorf("missing cell, got %q", out)
	}
}

func TestBoardFootprint(t *testing.T) {
	w, h := BoardFootprint(10)
	if w != 22 || h != 14 {
		t.Errorf("BoardFootprint(10) = %dx%d, expected 22x14", w, h)
	}
}
