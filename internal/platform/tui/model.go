package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Model is the Bubble Tea model for a snake session.
type Model struct {
	session  *loop.Session
	canvas   *core.ScreenCanvas
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	h := help.New()
	h.ShowAll = false

	session := loop.NewSession(game, cfg)
	cells := session.Config().Cells()

	return Model{
		session: session,
		canvas:  core.NewScreenCanvas(core.NewScreen(cells*core.CellColumns, cells)),
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
	}
}

// Session returns the session the model drives.
func (m Model) Session() *loop.Session {
	return m.session
}

// Result returns the current outcome of the session.
func (m Model) Result() loop.Result {
	return m.session.Result()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started",
		"variant", m.session.Game().ID(),
		"seed", m.session.Config().Seed,
		"ups", m.session.Config().TickRate,
	)
	return tickCmd(m.session.Config().TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		m.logger.Debug("quit requested", "key", msg.String())
		return m, tea.Quit
	}
	if k != core.KeyNone {
		m.session.Press(k)
	}
	return m, nil
}

// handleTick advances the simulation by one update.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	before := m.session.State()
	m.session.Update()
	after := m.session.State()

	if after.Score != before.Score {
		m.logger.Debug("food eaten", "score", after.Score)
	}
	if after.GameOver {
		// Ticking stops; the board stays on screen until the player quits.
		m.logger.Debug("game over", "score", after.Score)
		return m, nil
	}

	return m, tickCmd(m.session.Config().TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cells := m.session.Config().Cells()
	if needW, needH := BoardFootprint(cells); m.width > 0 && (m.width < needW || m.height < needH) {
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height))
	}

	m.session.Render(m.canvas)
	board := boardStyle.Render(RenderScreen(m.canvas.Screen()))

	state := m.session.State()
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(m.session.Game().Title()),
		"  ",
		scoreStyle.Render(fmt.Sprintf("Score: %d", state.Score)),
	)
	if state.GameOver {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", gameOverStyle.Render("GAME OVER"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, board, m.help.View(m.keys))
}

// Run starts the Bubble Tea program and returns the session outcome.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (loop.Result, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return model.Result(), fmt.Errorf("tui: %w", err)
	}
	return model.Result(), nil
}
