package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

func newTestModel() Model {
	game := blockfall.New(blockfall.WithSelector(blockfall.NewSequenceSelector(int(blockfall.KindO))))
	return NewModel(game, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelInitStopped(t *testing.T) {
	m := newTestModel()
	if cmd := m.Init(); cmd != nil {
		t.Error("stopped game should not schedule ticks")
	}
}

func TestModelStartSchedulesTick(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.snap.State != blockfall.StateRunning {
		t.Fatalf("State = %s, want PLAY", m.snap.State)
	}
	if cmd == nil {
		t.Fatal("start should schedule a tick")
	}
	if m.tickGen != m.game.Timer().Gen {
		t.Errorf("tickGen = %d, want %d", m.tickGen, m.game.Timer().Gen)
	}
}

func TestModelTickChain(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	gen := m.game.Timer().Gen

	m, cmd := update(t, m, TickMsg{Gen: gen})
	if cmd == nil {
		t.Error("accepted tick should schedule the next one")
	}
	if m.snap.Moves != 1 || m.snap.Y != 1 {
		t.Errorf("moves = %d y = %d, want 1 and 1", m.snap.Moves, m.snap.Y)
	}

	// Speed change starts a new chain; the old one dies out
	m, cmd = update(t, m, runeKey("+"))
	if cmd == nil {
		t.Fatal("speed change should schedule a tick for the new timer")
	}
	m, cmd = update(t, m, TickMsg{Gen: gen})
	if cmd != nil {
		t.Error("stale tick should not be rescheduled")
	}
	if m.snap.Moves != 1 {
		t.Errorf("Moves = %d after stale tick, want 1", m.snap.Moves)
	}
}

func TestModelPauseStopsChain(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	gen := m.game.Timer().Gen

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.snap.State != blockfall.StatePaused {
		t.Fatalf("State = %s, want PAUSE", m.snap.State)
	}
	if cmd != nil {
		t.Error("pause should not schedule ticks")
	}
	if _, cmd = update(t, m, TickMsg{Gen: gen}); cmd != nil {
		t.Error("tick while paused should be dropped")
	}
}

func TestModelMovementKeys(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, runeKey("a"))
	if cmd != nil {
		t.Error("movement should not schedule ticks")
	}
	if m.snap.X != 3 {
		t.Errorf("X = %d, want 3", m.snap.X)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.snap.Y != 1 {
		t.Errorf("Y = %d, want 1", m.snap.Y)
	}
}

func TestModelCopy(t *testing.T) {
	m := newTestModel()
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !strings.HasPrefix(copied, "state=STOP") {
		t.Errorf("copied = %q, want ASCII frame", copied)
	}
	if !strings.Contains(m.View(), "frame copied") {
		t.Error("view should report the copy")
	}

	m.copy = func(string) error { return errors.New("no clipboard") }
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !strings.Contains(m.status, "no clipboard") {
		t.Errorf("status = %q, want error", m.status)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	v := m.View()
	if !strings.Contains(v, "STOP") || !strings.Contains(v, "Speed: 1000") {
		t.Errorf("view missing panel: %q", v)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	m := newTestModel()
	blockfall.Render(m.snap, m.screen)

	out := RenderScreen(m.screen)
	if got := strings.Count(out, "\n"); got != m.screen.Height()-1 {
		t.Errorf("RenderScreen has %d newlines, want %d", got, m.screen.Height()-1)
	}
}
