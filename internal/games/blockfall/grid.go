package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Default playfield dimensions.
const (
	DefaultRows = 20
	DefaultCols = 10
)

// Cell is a single playfield position.
type Cell struct {
	Empty bool
	Color core.Color
}

// EmptyCell is the sentinel stored in every unoccupied position.
// It carries the inherit color.
var EmptyCell = Cell{Empty: true, Color: core.ColorDefault}

// Filled returns an occupied cell of the given color.
func Filled(c core.Color) Cell {
	return Cell{Empty: false, Color: c}
}

// Grid is a fixed-size, row-major matrix of cells with (0,0) at the top-left.
// Dimensions never change after creation.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid creates a grid with every cell set to EmptyCell.
// Negative dimensions are treated as zero.
func NewGrid(rows, cols int) *Grid {
	rows = max(rows, 0)
	cols = max(cols, 0)

	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]Cell, rows)
	for r := range g.cells {
		g.cells[r] = make([]Cell, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = EmptyCell
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Bounds returns the grid area in column/row coordinates.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.cols, g.rows)
}

// InBounds reports whether (row, col) addresses a cell of this grid.
func (g *Grid) InBounds(row, col int) bool {
	return g.Bounds().Contains(col, row)
}

// At returns the cell at (row, col), or EmptyCell when out of bounds.
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return EmptyCell
	}
	return g.cells[row][col]
}

// Occupied reports whether an in-bounds cell holds a block.
func (g *Grid) Occupied(row, col int) bool {
	return !g.At(row, col).Empty
}

// Set writes a cell. Out-of-bounds writes are ignored.
// Only used to seed the background before play.
func (g *Grid) Set(row, col int, c Cell) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row][col] = c
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	clone := &Grid{rows: g.rows, cols: g.cols}
	clone.cells = make([][]Cell, g.rows)
	for r := range g.cells {
		clone.cells[r] = make([]Cell, g.cols)
		copy(clone.cells[r], g.cells[r])
	}
	return clone
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// OccupiedCount returns the number of non-empty cells.
func (g *Grid) OccupiedCount() int {
	n := 0
	for r := range g.cells {
		for _, cell := range g.cells[r] {
			if !cell.Empty {
				n++
			}
		}
	}
	return n
}
