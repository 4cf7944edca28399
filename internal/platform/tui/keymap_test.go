package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-miner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyFromMsg(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Key
	}{
		{"rune", runeKey('d'), "d"},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "space"},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, "up"},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, "esc"},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, "ctrl+c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := KeyFromMsg(tc.msg); got != tc.expected {
				t.Errorf("KeyFromMsg() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestDefaultBindingsCoverTerminalKeys(t *testing.T) {
	b := core.DefaultBindings()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Command
	}{
		{runeKey('e'), core.CommandExit},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.CommandExit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.CommandExit},
		{runeKey('w'), core.CommandUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.CommandDown},
		{runeKey('a'), core.CommandLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.CommandRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.CommandInteract},
	}

	for _, tc := range tests {
		cmd, ok := b.Lookup(KeyFromMsg(tc.msg))
		if !ok || cmd != tc.expected {
			t.Errorf("Lookup(%q) = %v, %v; expected %v", KeyFromMsg(tc.msg), cmd, ok, tc.expected)
		}
	}
}

func TestGameKeyMap(t *testing.T) {
	km := NewGameKeyMap(core.DefaultBindings())

	if got := km.Right.Help().Key; got != "d/right" {
		t.Errorf("Right help key = %q, expected %q", got, "d/right")
	}
	if got := km.Right.Help().Desc; got != "right" {
		t.Errorf("Right help desc = %q, expected %q", got, "right")
	}
	if !km.Interact.Enabled() {
		t.Error("interact should be enabled with default bindings")
	}

	empty := NewGameKeyMap(core.NewBindings())
	if empty.Up.Enabled() {
		t.Error("unbound command should be disabled")
	}
	if len(km.ShortHelp()) != 5 || len(km.FullHelp()) != 2 {
		t.Error("unexpected help layout")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{runeKey('h'), MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
