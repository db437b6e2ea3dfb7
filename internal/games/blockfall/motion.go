package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// MoveLeft shifts the piece one column left, stopping at the wall.
func (g *Game) MoveLeft() bool {
	return g.move(-1, 0)
}

// MoveRight shifts the piece one column right, stopping at the wall.
func (g *Game) MoveRight() bool {
	return g.move(1, 0)
}

// MoveUp shifts the piece one row up. Debug only.
func (g *Game) MoveUp() bool {
	return g.move(0, -1)
}

// MoveDown shifts the piece one row down, stopping at the floor.
func (g *Game) MoveDown() bool {
	return g.move(0, 1)
}

// move clamps the candidate to the grid, validates it against the
// background and commits it, or keeps the previous position when blocked.
// Returns true if the committed position changed.
func (g *Game) move(dx, dy int) bool {
	if g.forbidden {
		g.logger.Debug("movement ignored while blocked", "x", g.pos.X, "y", g.pos.Y)
		return false
	}

	x, y := g.pos.X, g.pos.Y
	rows, cols := g.background.Rows(), g.background.Cols()

	switch {
	case dx < 0 && x > 0:
		x--
	case dx > 0 && x+g.piece.Width() < cols:
		x++
	case dy < 0 && y > 0:
		y--
	case dy > 0 && y+g.piece.Height() < rows:
		y++
	}

	last := g.pos.At()
	result := Place(g.background, g.piece, Position{X: x, Y: y, Last: &last})
	g.frame = result.Frame

	if result.Forbidden {
		g.forbidden = true
		g.pos.Last = &last
		g.logger.Debug("move rejected", "piece", g.piece.Kind, "x", x, "y", y)
		return false
	}

	g.pos = Position{X: x, Y: y, Last: &last}
	return x != last.X || y != last.Y
}

// Rotate turns the piece clockwise unless its rotated bounding box would
// leave the grid at the current position. Occupied cells are not checked.
func (g *Game) Rotate() bool {
	rotated := Rotate(g.piece)
	box := core.NewRect(g.pos.X, g.pos.Y, rotated.Width(), rotated.Height())
	if !g.background.Bounds().ContainsRect(box) {
		g.logger.Debug("rotation out of bounds", "piece", g.piece.Kind, "x", g.pos.X, "y", g.pos.Y)
		return false
	}

	g.piece = rotated
	g.redraw()
	return true
}

// NextPiece switches to the following catalog piece, stopping at the last.
func (g *Game) NextPiece() bool {
	return g.selectPiece(g.index + 1)
}

// PrevPiece switches to the preceding catalog piece, stopping at the first.
func (g *Game) PrevPiece() bool {
	return g.selectPiece(g.index - 1)
}

// selectPiece swaps in a catalog piece in its canonical orientation at the
// current position. No collision or bounds validation is made.
func (g *Game) selectPiece(i int) bool {
	i = core.Clamp(i, 0, PieceCount-1)
	if i == g.index {
		return false
	}
	g.index = i
	g.piece = PieceAt(i)
	g.redraw()
	return true
}

// Refresh recomputes the frame at the current position.
func (g *Game) Refresh() {
	g.recompute()
}

// redraw projects the piece without a collision check and clears the
// blocked flag.
func (g *Game) redraw() {
	g.frame = Stamp(g.background, g.piece, g.pos.X, g.pos.Y)
	g.forbidden = false
}

// recompute validates the current position. A blocked piece is still drawn.
func (g *Game) recompute() {
	result := Place(g.background, g.piece, Position{X: g.pos.X, Y: g.pos.Y})
	g.forbidden = result.Forbidden
	if result.Forbidden {
		g.frame = Stamp(g.background, g.piece, g.pos.X, g.pos.Y)
		return
	}
	g.frame = result.Frame
}
