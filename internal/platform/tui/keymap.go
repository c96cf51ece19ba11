package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-walk/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Run        key.Binding
	Slide      key.Binding
	Jump       key.Binding
	Debug      key.Binding
	NewGame    key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Run: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "run"),
		),
		Slide: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "slide"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Debug: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "hit boxes"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("enter", "r", "n"),
			key.WithHelp("enter", "new game"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Jump, k.Slide, k.Debug, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Jump, k.Slide},
		{k.Debug, k.NewGame, k.Screenshot},
		{k.Back, k.Quit},
	}
}

// GameKey translates a key message to the logical key it presses.
// Keys with no in-game meaning map to core.KeyNone.
func (k KeyMap) GameKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Run):
		return core.KeyMoveRight
	case key.Matches(msg, k.Slide):
		return core.KeyCrouch
	case key.Matches(msg, k.Jump):
		return core.KeyJump
	case key.Matches(msg, k.Debug):
		return core.KeyToggleDebug
	}
	return core.KeyNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
