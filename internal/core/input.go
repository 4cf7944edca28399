package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// ErrUnknownCommand is returned when a command name cannot be parsed.
var ErrUnknownCommand = errors.New("core: unknown command")

// Command is a logical player action, decoupled from physical keys.
type Command uint8

const (
	CommandExit     Command = iota // E, Escape - leave the game
	CommandUp                      // W, Up arrow
	CommandDown                    // S, Down arrow
	CommandLeft                    // A, Left arrow
	CommandRight                   // D, Right arrow
	CommandInteract                // Space

	commandCount
)

// Commands returns every command in declaration order.
func Commands() []Command {
	cmds := make([]Command, 0, commandCount)
	for c := Command(0); c < commandCount; c++ {
		cmds = append(cmds, c)
	}
	return cmds
}

// String returns the lowercase command name used in config files.
func (c Command) String() string {
	switch c {
	case CommandExit:
		return "exit"
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandInteract:
		return "interact"
	default:
		return "unknown"
	}
}

// ParseCommand converts a command name back into a Command.
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Commands() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownCommand, name)
}

// CommandState records whether each command is currently held.
// It is indexed by Command, so every command always has a state.
type CommandState [commandCount]bool

// Held reports whether the command is held.
func (s CommandState) Held(c Command) bool {
	if c >= commandCount {
		return false
	}
	return s[c]
}

// Set updates the held state of a command.
func (s *CommandState) Set(c Command, held bool) {
	if c >= commandCount {
		return
	}
	s[c] = held
}

// Clear releases every command.
func (s *CommandState) Clear() {
	*s = CommandState{}
}

// Press returns a CommandState with the given commands held.
// Handy for tests and scripted input.
func Press(cmds ...Command) CommandState {
	var s CommandState
	for _, c := range cmds {
		s.Set(c, true)
	}
	return s
}

// Key is an opaque physical key identifier delivered by the platform
// (for terminals, the Bubble Tea key string such as "w", "up" or "esc").
type Key string

// KeyEvent is a single key-down or key-up event.
type KeyEvent struct {
	Key  Key
	Down bool
}

// Bindings maps physical keys to commands. A key binds to at most one
// command; many keys may bind to the same command.
type Bindings struct {
	keys map[Key]Command
}

// NewBindings creates an empty binding table.
func NewBindings() *Bindings {
	return &Bindings{keys: make(map[Key]Command)}
}

// DefaultKeyMap returns the stock keyboard layout by command name.
// It is also the default `keys` section of the YAML config.
func DefaultKeyMap() map[string][]string {
	return map[string][]string{
		"exit":     {"e", "esc", "q", "ctrl+c"},
		"up":       {"w", "up"},
		"down":     {"s", "down"},
		"left":     {"a", "left"},
		"right":    {"d", "right"},
		"interact": {"space"},
	}
}

// DefaultBindings returns the stock keyboard layout.
func DefaultBindings() *Bindings {
	b, err := BindingsFromMap(DefaultKeyMap())
	if err != nil {
		panic(err) // command names in DefaultKeyMap are fixed
	}
	return b
}

// BindingsFromMap builds bindings from a command-name -> keys table,
// the shape used by the YAML config.
func BindingsFromMap(m map[string][]string) (*Bindings, error) {
	b := NewBindings()
	// Sorted so that a key listed under two commands resolves the same way every run
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd, err := ParseCommand(name)
		if err != nil {
			return nil, err
		}
		for _, k := range m[name] {
			b.Bind(Key(k), cmd)
		}
	}
	return b, nil
}

// Bind maps a key to a command, replacing any previous binding for that key.
func (b *Bindings) Bind(k Key, c Command) {
	b.keys[k] = c
}

// Lookup returns the command bound to a key.
func (b *Bindings) Lookup(k Key) (Command, bool) {
	c, ok := b.keys[k]
	return c, ok
}

// KeysFor returns the keys bound to a command, sorted.
func (b *Bindings) KeysFor(c Command) []Key {
	var keys []Key
	for k, bound := range b.keys {
		if bound == c {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Len returns the number of bound keys.
func (b *Bindings) Len() int {
	return len(b.keys)
}

// InputState translates key events into the held state of each command.
type InputState struct {
	bindings *Bindings
	state    CommandState
	logger   *log.Logger
	limiter  *rate.Limiter // throttles unbound-key diagnostics under key repeat
}

// NewInputState creates an input state for the given bindings.
// A nil logger falls back to the package default logger.
func NewInputState(b *Bindings, logger *log.Logger) *InputState {
	if b == nil {
		b = DefaultBindings()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &InputState{
		bindings: b,
		logger:   logger,
		limiter:  rate.NewLimiter(rate.Every(time.Second), 3),
	}
}

// KeyDown marks the bound command as held.
// Unbound keys are reported as a diagnostic and otherwise ignored.
func (in *InputState) KeyDown(k Key) bool {
	cmd, ok := in.bindings.Lookup(k)
	if !ok {
		if in.limiter.Allow() {
			in.logger.Info("key does not do anything", "key", string(k))
		}
		return false
	}
	in.state.Set(cmd, true)
	return true
}

// KeyUp marks the bound command as released.
func (in *InputState) KeyUp(k Key) bool {
	cmd, ok := in.bindings.Lookup(k)
	if !ok {
		return false
	}
	in.state.Set(cmd, false)
	return true
}

// Apply dispatches a key event. Returns whether the key was bound.
func (in *InputState) Apply(ev KeyEvent) bool {
	if ev.Down {
		return in.KeyDown(ev.Key)
	}
	return in.KeyUp(ev.Key)
}

// State returns a copy of the current command state.
func (in *InputState) State() CommandState {
	return in.state
}

// ReleaseAll releases every command. Terminal platforms call this after
// each tick because they only deliver key presses, never releases.
func (in *InputState) ReleaseAll() {
	in.state.Clear()
}

// Bindings returns the binding table in use.
func (in *InputState) Bindings() *Bindings {
	return in.bindings
}
