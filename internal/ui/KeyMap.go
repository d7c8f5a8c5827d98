package ui

import (
	"github.com/Mshel/snake/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds terminal keys to game keys.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Quit    key.Binding
	Close   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Restart: key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "play again")),
		Quit:    key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("q", "quit")),
		Close:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "close")),
	}
}

// ForState enables only the bindings that do something in the given state.
func (k KeyMap) ForState(state game.GameState) KeyMap {
	running := state == game.StateRunning
	lost := state == game.StateLost

	k.Up.SetEnabled(running)
	k.Down.SetEnabled(running)
	k.Left.SetEnabled(running)
	k.Right.SetEnabled(running)
	k.Restart.SetEnabled(lost)
	k.Quit.SetEnabled(lost)
	return k
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit, k.Close}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Quit, k.Close},
	}
}

// Translate maps a key press to a game key. Disabled bindings never match.
func (k KeyMap) Translate(msg tea.KeyMsg) (game.Key, bool) {
	switch {
	case key.Matches(msg, k.Close):
		return game.KeyClose, true
	case key.Matches(msg, k.Up):
		return game.KeyUp, true
	case key.Matches(msg, k.Down):
		return game.KeyDown, true
	case key.Matches(msg, k.Left):
		return game.KeyLeft, true
	case key.Matches(msg, k.Right):
		return game.KeyRight, true
	case key.Matches(msg, k.Restart):
		return game.KeyRestart, true
	case key.Matches(msg, k.Quit):
		return game.KeyQuit, true
	}
	return game.KeyNone, false
}
