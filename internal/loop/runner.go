// Package loop drives a blockfall game without a terminal UI. A Runner
// owns the game on a single goroutine and serializes commands and fall
// timer ticks into it.
package loop

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var (
	// ErrStopped is returned by Send after Run has exited.
	ErrStopped = errors.New("runner stopped")

	// ErrAlreadyStarted is returned by every Run call after the first.
	ErrAlreadyStarted = errors.New("runner already started")
)

// Option configures a Runner.
type Option func(*Runner)

// WithTicker replaces the wall-clock ticker, mainly for tests.
func WithTicker(f TickerFunc) Option {
	return func(r *Runner) {
		r.newTicker = f
	}
}

// WithLogger sets the runner logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// OnSnapshot registers a callback invoked on the run goroutine after every
// processed message, including the initial state.
func OnSnapshot(fn func(blockfall.Snapshot)) Option {
	return func(r *Runner) {
		r.onSnapshot = fn
	}
}

// Runner runs the single-threaded engine loop.
type Runner struct {
	game       *blockfall.Game
	newTicker  TickerFunc
	logger     *log.Logger
	onSnapshot func(blockfall.Snapshot)

	msgs    chan blockfall.Msg
	done    chan struct{}
	started atomic.Bool

	// Driver-side view of the engine timer
	ticker  Ticker
	tickGen uint64
	synced  bool
}

// New creates a runner for game. The game must not be used elsewhere
// once Run is called.
func New(game *blockfall.Game, opts ...Option) *Runner {
	r := &Runner{
		game:      game,
		newTicker: NewRealTicker,
		msgs:      make(chan blockfall.Msg),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r
}

// Send queues a message for the engine and blocks until the run loop
// takes it, ctx is done, or the runner has stopped.
func (r *Runner) Send(ctx context.Context, msg blockfall.Msg) error {
	select {
	case r.msgs <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-r.done:
		return ErrStopped
	}
}

// Run processes messages and ticks until ctx is cancelled.
// A Runner runs once; later calls return ErrAlreadyStarted.
func (r *Runner) Run(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer close(r.done)
	defer r.stopTicker()

	r.sync()
	r.publish(r.game.Snapshot())

	for {
		var tickC <-chan time.Time
		if r.ticker != nil {
			tickC = r.ticker.C()
		}

		select {
		case <-ctx.Done():
			r.logger.Debug("runner stopping", "reason", ctx.Err())
			return ctx.Err()

		case msg := <-r.msgs:
			snap := r.game.Update(msg)
			r.sync()
			r.publish(snap)

		case <-tickC:
			snap := r.game.Update(blockfall.TickMsg{Gen: r.tickGen})
			r.sync()
			r.publish(snap)
		}
	}
}

// sync replaces the running ticker whenever the engine re-armed or
// cancelled its timer.
func (r *Runner) sync() {
	timer := r.game.Timer()
	if r.synced && timer.Gen == r.tickGen {
		return
	}
	r.stopTicker()
	r.tickGen = timer.Gen
	r.synced = true
	if timer.Armed {
		r.ticker = r.newTicker(timer.Interval)
		r.logger.Debug("timer armed", "gen", timer.Gen, "interval", timer.Interval)
	}
}

func (r *Runner) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
		r.ticker = nil
	}
}

func (r *Runner) publish(snap blockfall.Snapshot) {
	if r.onSnapshot != nil {
		r.onSnapshot(snap)
	}
}
