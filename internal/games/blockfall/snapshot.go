package blockfall

import "time"

// Snapshot is a read-only copy of the engine state handed to presentation.
// Mutating it never affects the engine.
type Snapshot struct {
	Frame      *Grid // background with the piece projected on it
	Kind       Kind
	PieceIndex int
	Shape      [][]uint8
	X, Y       int
	Moves      int
	State      RunState
	Speed      int
	Forbidden  bool
	TimerGen   uint64
	Interval   time.Duration // zero when no timer is armed
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:      g.frame.Clone(),
		Kind:       g.piece.Kind,
		PieceIndex: g.index,
		Shape:      cloneShape(g.piece.Shape),
		X:          g.pos.X,
		Y:          g.pos.Y,
		Moves:      g.moves,
		State:      g.state,
		Speed:      g.speed,
		Forbidden:  g.forbidden,
		TimerGen:   g.timer.Gen,
		Interval:   g.timer.Interval,
	}
}
