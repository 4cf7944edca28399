package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-miner/internal/core"
)

// KeyFromMsg converts a Bubble Tea key message to a physical key.
// Space is named "space" so it can be written in YAML.
func KeyFromMsg(msg tea.KeyMsg) core.Key {
	if msg.Type == tea.KeySpace {
		return "space"
	}
	return core.Key(msg.String())
}

// GameKeyMap describes the active game bindings for the help bar.
type GameKeyMap struct {
	Exit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Interact key.Binding
}

// NewGameKeyMap builds help bindings from the game's key table.
func NewGameKeyMap(b *core.Bindings) GameKeyMap {
	return GameKeyMap{
		Exit:     bindingFor(b, core.CommandExit),
		Up:       bindingFor(b, core.CommandUp),
		Down:     bindingFor(b, core.CommandDown),
		Left:     bindingFor(b, core.CommandLeft),
		Right:    bindingFor(b, core.CommandRight),
		Interact: bindingFor(b, core.CommandInteract),
	}
}

func bindingFor(b *core.Bindings, c core.Command) key.Binding {
	keys := b.KeysFor(c)
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(strings.Join(names, "/"), c.String()),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Exit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Interact, k.Exit},
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch string(KeyFromMsg(msg)) {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", "space":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
