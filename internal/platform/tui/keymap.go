package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyMap defines the key bindings for the play screen. Movement keys are
// listed for help only; the engine parses them itself.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Down      key.Binding
	Up        key.Binding
	Rotate    key.Binding
	PrevPiece key.Binding
	NextPiece key.Binding

	Start     key.Binding
	Stop      key.Binding
	Pause     key.Binding
	SpeedUp   key.Binding
	SpeedDown key.Binding
	Refresh   key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Stop, k.Rotate, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Up},
		{k.Rotate, k.PrevPiece, k.NextPiece},
		{k.Start, k.Pause, k.Stop, k.Refresh},
		{k.SpeedUp, k.SpeedDown, k.Copy},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "up (debug)"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "rotate"),
		),
		PrevPiece: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev piece"),
		),
		NextPiece: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next piece"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "esc"),
			key.WithHelp("space", "pause/resume"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy frame"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapControl translates a key message to an engine control.
// Returns ControlNone for keys that are not controls.
func (k KeyMap) MapControl(msg tea.KeyMsg) core.Control {
	switch {
	case key.Matches(msg, k.Start):
		return core.ControlStart
	case key.Matches(msg, k.Stop):
		return core.ControlStop
	case key.Matches(msg, k.Pause):
		return core.ControlTogglePause
	case key.Matches(msg, k.SpeedUp):
		return core.ControlSpeedUp
	case key.Matches(msg, k.SpeedDown):
		return core.ControlSpeedDown
	case key.Matches(msg, k.Refresh):
		return core.ControlRefresh
	}
	return core.ControlNone
}
