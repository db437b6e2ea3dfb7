package blockfall

// Point is a column/row pair.
type Point struct {
	X, Y int
}

// Position is the top-left offset of the piece's bounding box in the grid.
// Last is the position the piece held before the most recent move, if any.
type Position struct {
	X, Y int
	Last *Point
}

// At returns the position as a point.
func (p Position) At() Point {
	return Point{X: p.X, Y: p.Y}
}

// StartPosition centers a piece horizontally on the top row.
func StartPosition(p Piece, cols int) Position {
	return Position{X: floorDiv(cols-p.Width(), 2), Y: 0}
}

// Placement is the result of overlaying a piece on the background grid.
type Placement struct {
	// Frame is a new grid ready for rendering. When the placement is
	// forbidden it shows the piece at the previous position instead.
	Frame *Grid

	// Forbidden is set when any piece cell lands on an occupied in-bounds cell.
	Forbidden bool
}

// Collides reports whether the piece at (x, y) overlaps an occupied
// background cell. Cells that map outside the grid never collide.
func Collides(bg *Grid, p Piece, x, y int) bool {
	for py, row := range p.Shape {
		for px, v := range row {
			if v != 1 {
				continue
			}
			if bg.Occupied(y+py, x+px) {
				return true
			}
		}
	}
	return false
}

// Stamp returns a copy of bg with every in-bounds piece cell at (x, y)
// filled with the piece color. No collision check is made.
func Stamp(bg *Grid, p Piece, x, y int) *Grid {
	frame := bg.Clone()
	for py, row := range p.Shape {
		for px, v := range row {
			if v != 1 {
				continue
			}
			frame.Set(y+py, x+px, Filled(p.Color))
		}
	}
	return frame
}

// Place validates a candidate position and produces the frame to render.
// Neither bg nor p is modified.
func Place(bg *Grid, p Piece, pos Position) Placement {
	if !Collides(bg, p, pos.X, pos.Y) {
		return Placement{Frame: Stamp(bg, p, pos.X, pos.Y)}
	}

	// Fall back to the previous position so the piece stays visible.
	if pos.Last != nil {
		return Placement{Frame: Stamp(bg, p, pos.Last.X, pos.Last.Y), Forbidden: true}
	}
	return Placement{Frame: bg.Clone(), Forbidden: true}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
