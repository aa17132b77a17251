package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blueprint-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"w", runeKey('w'), core.KeyUp},
		{"k", runeKey('k'), core.KeyUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{"s", runeKey('s'), core.KeyDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"d", runeKey('d'), core.KeyRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyBack},
		{"b", runeKey('b'), core.KeyBack},
		{"p", runeKey('p'), core.KeyPause},
		{"q", runeKey('q'), core.KeyQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyQuit},
		{"unbound", runeKey('x'), core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.MapKey(tt.msg))
		})
	}
}

func TestHelpKeys(t *testing.T) {
	k := DefaultKeyMap()
	h := helpKeys{k.Up, k.Quit}

	assert.Len(t, h.ShortHelp(), 2)
	assert.Len(t, h.FullHelp(), 1)
	assert.Equal(t, "quit", h.ShortHelp()[1].Help().Desc)
}
