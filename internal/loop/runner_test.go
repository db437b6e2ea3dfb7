package loop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

type fakeTicker struct {
	interval time.Duration
	c        chan time.Time

	mu      sync.Mutex
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.c }

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeTicker) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

type fakeClock struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (c *fakeClock) newTicker(d time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTicker{interval: d, c: make(chan time.Time)}
	c.tickers = append(c.tickers, t)
	return t
}

func (c *fakeClock) all() []*fakeTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*fakeTicker(nil), c.tickers...)
}

func (c *fakeClock) last() *fakeTicker {
	ts := c.all()
	if len(ts) == 0 {
		return nil
	}
	return ts[len(ts)-1]
}

type harness struct {
	t      *testing.T
	runner *Runner
	clock  *fakeClock
	snaps  chan blockfall.Snapshot
	cancel context.CancelFunc
	errc   chan error
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	game := blockfall.New(blockfall.WithSelector(blockfall.NewSequenceSelector(int(blockfall.KindO))))
	h := &harness{
		t:     t,
		clock: &fakeClock{},
		snaps: make(chan blockfall.Snapshot, 16),
		errc:  make(chan error, 1),
	}
	h.runner = New(game,
		WithTicker(h.clock.newTicker),
		OnSnapshot(func(s blockfall.Snapshot) { h.snaps <- s }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.errc <- h.runner.Run(ctx) }()
	t.Cleanup(cancel)

	h.next() // initial snapshot
	return h
}

// next waits for the snapshot published after the last processed message.
func (h *harness) next() blockfall.Snapshot {
	h.t.Helper()
	select {
	case s := <-h.snaps:
		return s
	case <-time.After(2 * time.Second):
		h.t.Fatal("timed out waiting for snapshot")
		return blockfall.Snapshot{}
	}
}

func (h *harness) control(c core.Control) blockfall.Snapshot {
	h.t.Helper()
	if err := h.runner.Send(context.Background(), blockfall.ControlMsg(c)); err != nil {
		h.t.Fatalf("Send(%s): %v", c, err)
	}
	return h.next()
}

func (h *harness) fire(tk *fakeTicker) blockfall.Snapshot {
	h.t.Helper()
	select {
	case tk.c <- time.Now():
	case <-time.After(2 * time.Second):
		h.t.Fatal("runner is not listening on the ticker")
	}
	return h.next()
}

func TestRunnerArmsTimerOnStart(t *testing.T) {
	h := newHarness(t)

	if n := len(h.clock.all()); n != 0 {
		t.Fatalf("%d tickers created while stopped, want 0", n)
	}

	snap := h.control(core.ControlStart)
	if snap.State != blockfall.StateRunning {
		t.Fatalf("State = %s, want PLAY", snap.State)
	}
	tk := h.clock.last()
	if tk == nil || tk.interval != time.Second {
		t.Fatalf("ticker = %+v, want 1s", tk)
	}

	snap = h.fire(tk)
	if snap.Moves != 1 || snap.Y != 1 {
		t.Errorf("after tick: moves = %d y = %d", snap.Moves, snap.Y)
	}

	// Accepted ticks keep the same repeating ticker
	snap = h.fire(tk)
	if snap.Moves != 2 || len(h.clock.all()) != 1 {
		t.Errorf("moves = %d tickers = %d, want 2 and 1", snap.Moves, len(h.clock.all()))
	}
}

func TestRunnerReplacesTickerOnSpeedChange(t *testing.T) {
	h := newHarness(t)
	h.control(core.ControlStart)
	first := h.clock.last()

	h.control(core.ControlSpeedUp)
	second := h.clock.last()

	if !first.isStopped() {
		t.Error("old ticker should be stopped")
	}
	if second == first || second.interval != 500*time.Millisecond {
		t.Errorf("new ticker interval = %v, want 500ms", second.interval)
	}

	snap := h.fire(second)
	if snap.Moves != 1 {
		t.Errorf("Moves = %d, want 1", snap.Moves)
	}
}

func TestRunnerStopsTickerOnPause(t *testing.T) {
	h := newHarness(t)
	h.control(core.ControlStart)
	tk := h.clock.last()

	snap := h.control(core.ControlPause)
	if snap.State != blockfall.StatePaused {
		t.Fatalf("State = %s, want PAUSE", snap.State)
	}
	if !tk.isStopped() {
		t.Error("ticker should be stopped on pause")
	}
	if n := len(h.clock.all()); n != 1 {
		t.Errorf("%d tickers, want no new ticker while paused", n)
	}

	h.control(core.ControlResume)
	if n := len(h.clock.all()); n != 2 {
		t.Errorf("%d tickers, want a fresh ticker on resume", n)
	}
}

func TestRunnerSuspendsOnZeroSpeed(t *testing.T) {
	h := newHarness(t)
	h.control(core.ControlStart)
	tk := h.clock.last()

	snap := h.control(core.ControlSpeedDown)
	if snap.Speed != 0 {
		t.Fatalf("Speed = %d, want 0", snap.Speed)
	}
	if !tk.isStopped() || len(h.clock.all()) != 1 {
		t.Error("zero speed should stop the ticker without creating a new one")
	}
}

func TestRunnerKeysAndIntents(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if err := h.runner.Send(ctx, blockfall.KeyMsg("a")); err != nil {
		t.Fatal(err)
	}
	if snap := h.next(); snap.X != 3 {
		t.Errorf("X = %d, want 3", snap.X)
	}

	if err := h.runner.Send(ctx, blockfall.IntentMsg(core.IntentMoveDown)); err != nil {
		t.Fatal(err)
	}
	if snap := h.next(); snap.Y != 1 {
		t.Errorf("Y = %d, want 1", snap.Y)
	}
}

func TestRunnerCancel(t *testing.T) {
	h := newHarness(t)
	h.control(core.ControlStart)
	tk := h.clock.last()

	h.cancel()
	select {
	case err := <-h.errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if !tk.isStopped() {
		t.Error("ticker should be stopped when Run exits")
	}
	if err := h.runner.Send(context.Background(), blockfall.KeyMsg("a")); !errors.Is(err, ErrStopped) {
		t.Errorf("Send after stop = %v, want ErrStopped", err)
	}
}

func TestRunnerRunsOnce(t *testing.T) {
	h := newHarness(t)

	if err := h.runner.Run(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Run() = %v, want ErrAlreadyStarted", err)
	}

	// The first loop keeps serving
	if snap := h.control(core.ControlStart); snap.State != blockfall.StateRunning {
		t.Errorf("State = %s, want PLAY", snap.State)
	}

	h.cancel()
	if err := <-h.errc; !errors.Is(err, context.Canceled) {
		t.Errorf("first Run() = %v, want context.Canceled", err)
	}
	if err := h.runner.Run(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("Run() after exit = %v, want ErrAlreadyStarted", err)
	}
}
