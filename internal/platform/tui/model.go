package tui

import (
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for playing blockfall.
type Model struct {
	game     *blockfall.Game
	snap     blockfall.Snapshot
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	copy     func(string) error // Clipboard writer
	tickGen  uint64             // Timer generation a tick chain is running for
	status   string
	quitting bool
}

// NewModel creates a model for game.
func NewModel(game *blockfall.Game, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	snap := game.Snapshot()
	w, h := blockfall.ScreenSize(snap.Frame.Rows(), snap.Frame.Cols())

	return Model{
		game:    game,
		snap:    snap,
		screen:  core.NewScreen(w, h),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		copy:    clipboard.WriteAll,
		tickGen: game.Timer().Gen,
	}
}

// Init starts the fall timer if the game is already running.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.Timer())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyFrame()
		return m, nil
	}

	m.status = ""
	if c := m.keys.MapControl(msg); c != core.ControlNone {
		m.snap = m.game.Update(blockfall.ControlMsg(c))
	} else {
		m.snap = m.game.Update(blockfall.KeyMsg(msg.String()))
	}
	return m, m.syncTimer()
}

// handleTick forwards a timer firing to the engine and keeps the chain
// alive while the engine accepts it.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.game.Tick(msg.Gen) {
		// Stale chain, a newer one is already scheduled
		return m, nil
	}
	m.snap = m.game.Snapshot()
	if cmd := m.syncTimer(); cmd != nil {
		return m, cmd
	}
	return m, tickCmd(m.game.Timer())
}

// syncTimer starts a new tick chain when the engine re-armed its timer.
func (m *Model) syncTimer() tea.Cmd {
	timer := m.game.Timer()
	if timer.Gen == m.tickGen {
		return nil
	}
	m.tickGen = timer.Gen
	return tickCmd(timer)
}

// copyFrame puts the plain-text frame on the system clipboard.
func (m *Model) copyFrame() {
	if err := m.copy(blockfall.RenderASCII(m.snap)); err != nil {
		m.logger.Warn("clipboard copy failed", "error", err)
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "frame copied to clipboard"
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	blockfall.Render(m.snap, m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(statusStyle.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for game.
func Run(game *blockfall.Game, logger *log.Logger) error {
	model := NewModel(game, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
