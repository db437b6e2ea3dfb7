// Package blockfall implements the falling-block engine: the playfield,
// the seven-piece catalog, placement and collision, rotation, movement,
// and the stopped/running/paused state machine driven by a fall timer.
//
// The engine is single-threaded. Drivers (the Bubble Tea model, the
// headless loop runner) serialize key presses, controls and timer ticks
// into Update, which returns a read-only Snapshot after every message.
package blockfall

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Speed defaults, in the units of the 1_000_000/speed interval formula.
const (
	DefaultSpeed     = 1000
	DefaultSpeedStep = 1000
)

// RunState is the engine lifecycle state.
type RunState int

const (
	StateStopped RunState = iota
	StateRunning
	StatePaused
)

// String returns the state label shown in the debug panel.
func (s RunState) String() string {
	switch s {
	case StateStopped:
		return "STOP"
	case StateRunning:
		return "PLAY"
	case StatePaused:
		return "PAUSE"
	default:
		return "UNKNOWN"
	}
}

// Msg is a stimulus accepted by Game.Update.
type Msg interface {
	blockfallMsg()
}

// KeyMsg carries a raw key identifier, parsed with core.ParseKey.
type KeyMsg string

// IntentMsg carries an already-normalized intent.
type IntentMsg core.Intent

// ControlMsg carries a start/stop/pause/speed command.
type ControlMsg core.Control

// TickMsg is one firing of the fall timer armed with generation Gen.
type TickMsg struct {
	Gen uint64
}

func (KeyMsg) blockfallMsg()     {}
func (IntentMsg) blockfallMsg()  {}
func (ControlMsg) blockfallMsg() {}
func (TickMsg) blockfallMsg()    {}

// Option configures a Game.
type Option func(*Game)

// WithSelector sets the next-piece policy.
func WithSelector(s Selector) Option {
	return func(g *Game) {
		g.selector = s
	}
}

// WithLogger sets the logger for state transitions and rejected moves.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithBackground sets the settled grid. Its dimensions become the
// playfield dimensions. The grid is copied.
func WithBackground(bg *Grid) Option {
	return func(g *Game) {
		g.background = bg.Clone()
	}
}

// WithSpeed sets the initial speed.
func WithSpeed(speed int) Option {
	return func(g *Game) {
		g.speed = speed
	}
}

// WithSpeedStep sets the amount added or removed by each speed command.
func WithSpeedStep(step int) Option {
	return func(g *Game) {
		g.speedStep = step
	}
}

// Game owns all mutable engine state. It is not safe for concurrent use.
type Game struct {
	background *Grid // settled cells, never written during play
	frame      *Grid // background with the piece projected on it
	selector   Selector
	logger     *log.Logger

	index int   // catalog index of the current piece
	piece Piece // current piece, possibly rotated
	pos   Position

	moves     int
	state     RunState
	speed     int
	speedStep int
	forbidden bool // last movement hit an occupied cell
	timer     Timer
}

// New creates a stopped game on a 20×10 grid with a time-seeded selector.
func New(opts ...Option) *Game {
	g := &Game{
		background: NewGrid(DefaultRows, DefaultCols),
		speed:      DefaultSpeed,
		speedStep:  DefaultSpeedStep,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.selector == nil {
		g.selector = NewRandomSelector(time.Now().UnixNano())
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.reset()
	return g
}

// Update is the single entry point for drivers. It applies one message
// and returns the resulting snapshot.
func (g *Game) Update(msg Msg) Snapshot {
	switch m := msg.(type) {
	case KeyMsg:
		g.HandleKey(string(m))
	case IntentMsg:
		g.Apply(core.Intent(m))
	case ControlMsg:
		g.Control(core.Control(m))
	case TickMsg:
		g.Tick(m.Gen)
	}
	return g.Snapshot()
}

// HandleKey maps a key identifier to an intent and applies it.
// Unrecognized keys are no-ops.
func (g *Game) HandleKey(key string) bool {
	return g.Apply(core.ParseKey(key))
}

// Apply performs one intent. Returns true if state changed.
func (g *Game) Apply(intent core.Intent) bool {
	switch intent {
	case core.IntentMoveLeft:
		return g.MoveLeft()
	case core.IntentMoveRight:
		return g.MoveRight()
	case core.IntentMoveUp:
		return g.MoveUp()
	case core.IntentMoveDown:
		return g.MoveDown()
	case core.IntentRotate:
		return g.Rotate()
	case core.IntentPrevPiece:
		return g.PrevPiece()
	case core.IntentNextPiece:
		return g.NextPiece()
	}
	return false
}

// Control performs a game-level command.
func (g *Game) Control(c core.Control) {
	switch c {
	case core.ControlStart:
		g.Start()
	case core.ControlStop:
		g.Stop()
	case core.ControlPause:
		g.Pause()
	case core.ControlResume:
		g.Resume()
	case core.ControlTogglePause:
		g.TogglePause()
	case core.ControlSpeedUp:
		g.SpeedUp()
	case core.ControlSpeedDown:
		g.SpeedDown()
	case core.ControlRefresh:
		g.Refresh()
	}
}

// Start moves a stopped or paused game to running and arms the timer.
func (g *Game) Start() {
	if g.state == StateRunning {
		return
	}
	g.setState(StateRunning)
	g.armTimer()
}

// Stop resets the move counter, rolls a new piece at the start position
// and cancels the timer. Valid from every state.
func (g *Game) Stop() {
	g.setState(StateStopped)
	g.cancelTimer()
	g.reset()
}

// Pause suspends the timer of a running game.
func (g *Game) Pause() {
	if g.state != StateRunning {
		return
	}
	g.setState(StatePaused)
	g.cancelTimer()
}

// Resume restarts the timer of a paused game.
func (g *Game) Resume() {
	if g.state != StatePaused {
		return
	}
	g.setState(StateRunning)
	g.armTimer()
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.Pause()
	case StatePaused:
		g.Resume()
	}
}

// SpeedUp raises the speed by one step. Unbounded.
func (g *Game) SpeedUp() {
	g.setSpeed(g.speed + g.speedStep)
}

// SpeedDown lowers the speed by one step. The speed may become zero or
// negative, which suspends the timer until it is raised again.
func (g *Game) SpeedDown() {
	g.setSpeed(g.speed - g.speedStep)
}

// Tick handles one timer firing. Ticks from a cancelled timer, or
// arriving while not running, are dropped. Returns true if accepted.
func (g *Game) Tick(gen uint64) bool {
	if g.state != StateRunning || !g.timer.Armed || gen != g.timer.Gen {
		g.logger.Debug("stale tick dropped", "gen", gen, "current", g.timer.Gen, "state", g.state)
		return false
	}
	g.moves++
	g.MoveDown()
	return true
}

// Timer returns the timer a driver should currently be running.
func (g *Game) Timer() Timer {
	return g.timer
}

// State returns the lifecycle state.
func (g *Game) State() RunState {
	return g.state
}

// Speed returns the current speed.
func (g *Game) Speed() int {
	return g.speed
}

// Forbidden reports whether the last movement was rejected.
func (g *Game) Forbidden() bool {
	return g.forbidden
}

// Position returns the committed piece position.
func (g *Game) Position() Position {
	return g.pos
}

// Piece returns a copy of the current piece.
func (g *Game) Piece() Piece {
	return g.piece.Clone()
}

// setState records a transition.
func (g *Game) setState(s RunState) {
	if g.state == s {
		return
	}
	g.logger.Info("state changed", "from", g.state, "to", s)
	g.state = s
}

// setSpeed changes the cadence. A running timer is torn down and re-armed;
// stopped and paused games pick up the new speed on the next start.
func (g *Game) setSpeed(speed int) {
	g.logger.Info("speed changed", "from", g.speed, "to", speed)
	g.speed = speed
	if g.state == StateRunning {
		g.armTimer()
	}
}

// armTimer replaces any running timer with one for the current speed.
func (g *Game) armTimer() {
	g.timer.Gen++
	interval, ok := IntervalForSpeed(g.speed)
	g.timer.Interval = interval
	g.timer.Armed = ok
	if !ok {
		g.logger.Warn("speed is not positive, fall timer suspended", "speed", g.speed)
	}
}

// cancelTimer invalidates every outstanding tick.
func (g *Game) cancelTimer() {
	g.timer.Gen++
	g.timer.Interval = 0
	g.timer.Armed = false
}

// reset rolls a fresh piece at the start position and clears counters.
func (g *Game) reset() {
	g.moves = 0
	g.index = core.Clamp(g.selector.Next(), 0, PieceCount-1)
	g.piece = PieceAt(g.index)
	g.pos = StartPosition(g.piece, g.background.Cols())
	g.recompute()
	g.logger.Debug("piece spawned", "piece", g.piece.Kind, "x", g.pos.X, "y", g.pos.Y)
}
