// Package tui provides the Bubble Tea integration for blockfall.
// It handles the terminal UI loop, key bindings and the fall timer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// TickMsg is one firing of the fall timer generation Gen.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd schedules the next tick of timer. A disarmed timer schedules nothing.
func tickCmd(timer blockfall.Timer) tea.Cmd {
	if !timer.Armed {
		return nil
	}
	gen := timer.Gen
	return tea.Tick(timer.Interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
