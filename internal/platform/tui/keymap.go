package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blueprint-pong/internal/core"
)

// KeyMap holds the key bindings for every semantic key.
// Bindings double as help entries for the footer.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "change"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "change"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to semantic keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a semantic key, KeyNone if unbound.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.KeyQuit
	case key.Matches(msg, km.keys.Up):
		return core.KeyUp
	case key.Matches(msg, km.keys.Down):
		return core.KeyDown
	case key.Matches(msg, km.keys.Left):
		return core.KeyLeft
	case key.Matches(msg, km.keys.Right):
		return core.KeyRight
	case key.Matches(msg, km.keys.Confirm):
		return core.KeyConfirm
	case key.Matches(msg, km.keys.Back):
		return core.KeyBack
	case key.Matches(msg, km.keys.Pause):
		return core.KeyPause
	}
	return core.KeyNone
}

// helpKeys implements help.KeyMap over a fixed list of bindings.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding { return h }

func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
