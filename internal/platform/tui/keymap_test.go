package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantKey  core.Key
		wantQuit bool
	}{
		{"w", runeKey('w'), core.KeyW, false},
		{"upper W", runeKey('W'), core.KeyW, false},
		{"a", runeKey('a'), core.KeyA, false},
		{"s", runeKey('s'), core.KeyS, false},
		{"upper S", runeKey('S'), core.KeyS, false},
		{"d", runeKey('d'), core.KeyD, false},
		{"q quits", runeKey('q'), core.KeyNone, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyNone, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone, true},
		{"arrow ignored", tea.KeyMsg{Type: tea.KeyUp}, core.KeyNone, false},
		{"other rune ignored", runeKey('x'), core.KeyNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, quit := km.MapKey(tc.msg)
			if k != tc.wantKey || quit != tc.wantQuit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tc.msg.String(), k, quit, tc.wantKey, tc.wantQuit)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings, expected 5", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 2 {
		t.Errorf("FullHelp() has %d rows, expected 2", len(km.FullHelp()))
	}
}
