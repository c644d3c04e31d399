package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// DefaultKeyMap returns the W/A/S/D bindings. Letters match in either case.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// MapKey translates a key message to a game key.
// Returns the key (may be KeyNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyNone, true
	case key.Matches(msg, k.Up):
		return core.KeyW, false
	case key.Matches(msg, k.Down):
		return core.KeyS, false
	case key.Matches(msg, k.Left):
		return core.KeyA, false
	case key.Matches(msg, k.Right):
		return core.KeyD, false
	}
	return core.KeyNone, false
}
