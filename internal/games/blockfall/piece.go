package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Kind identifies one of the seven catalog pieces.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// PieceCount is the number of catalog pieces.
const PieceCount = 7

// String returns the piece letter.
func (k Kind) String() string {
	if k < 0 || int(k) >= PieceCount {
		return "?"
	}
	return string("IJLOSTZ"[k])
}

// Piece is a colored binary shape inside its bounding box.
// Shape[row][col] == 1 marks an occupied cell.
type Piece struct {
	Kind  Kind
	Color core.Color
	Shape [][]uint8
}

// catalog holds the canonical orientations. Never hand these out directly.
var catalog = [PieceCount]Piece{
	{Kind: KindI, Color: core.ColorBrightBlue, Shape: [][]uint8{
		{1, 1, 1, 1},
	}},
	{Kind: KindJ, Color: core.ColorBlue, Shape: [][]uint8{
		{1, 0, 0},
		{1, 1, 1},
	}},
	{Kind: KindL, Color: core.ColorOrange, Shape: [][]uint8{
		{0, 0, 1},
		{1, 1, 1},
	}},
	{Kind: KindO, Color: core.ColorYellow, Shape: [][]uint8{
		{1, 1},
		{1, 1},
	}},
	{Kind: KindS, Color: core.ColorBrightGreen, Shape: [][]uint8{
		{0, 1, 1},
		{1, 1, 0},
	}},
	{Kind: KindT, Color: core.ColorMagenta, Shape: [][]uint8{
		{0, 1, 0},
		{1, 1, 1},
	}},
	{Kind: KindZ, Color: core.ColorRed, Shape: [][]uint8{
		{1, 1, 0},
		{0, 1, 1},
	}},
}

// PieceAt returns a copy of catalog entry i, clamped to [0, PieceCount-1].
func PieceAt(i int) Piece {
	return catalog[core.Clamp(i, 0, PieceCount-1)].Clone()
}

// Catalog returns copies of all seven pieces in index order.
func Catalog() []Piece {
	pieces := make([]Piece, PieceCount)
	for i := range catalog {
		pieces[i] = catalog[i].Clone()
	}
	return pieces
}

// Width returns the bounding box width.
func (p Piece) Width() int {
	if len(p.Shape) == 0 {
		return 0
	}
	return len(p.Shape[0])
}

// Height returns the bounding box height.
func (p Piece) Height() int {
	return len(p.Shape)
}

// Clone returns a copy with its own shape matrix.
func (p Piece) Clone() Piece {
	p.Shape = cloneShape(p.Shape)
	return p
}

// Rotate returns the piece turned 90° clockwise: rows reversed, then transposed.
// A w×h shape becomes h×w. The input is not modified.
func Rotate(p Piece) Piece {
	h := p.Height()
	w := p.Width()

	shape := make([][]uint8, w)
	for r := range shape {
		shape[r] = make([]uint8, h)
		for c := range shape[r] {
			// Row c of the reversed matrix is row h-1-c of the input.
			shape[r][c] = p.Shape[h-1-c][r]
		}
	}

	p.Shape = shape
	return p
}

// ShapeEqual reports whether two shape matrices are identical.
func ShapeEqual(a, b [][]uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return false
		}
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}
	return true
}

func cloneShape(shape [][]uint8) [][]uint8 {
	out := make([][]uint8, len(shape))
	for r := range shape {
		out[r] = make([]uint8, len(shape[r]))
		copy(out[r], shape[r])
	}
	return out
}
