package blockfall

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestStartPosition(t *testing.T) {
	tests := []struct {
		kind Kind
		cols int
		want int
	}{
		{KindI, 10, 3},
		{KindJ, 10, 3},
		{KindO, 10, 4},
		{KindZ, 10, 3},
		{KindI, 4, 0},
		{KindI, 3, -1}, // wider than the grid rounds toward negative infinity
	}

	for _, tt := range tests {
		got := StartPosition(PieceAt(int(tt.kind)), tt.cols)
		if got.X != tt.want || got.Y != 0 {
			t.Errorf("StartPosition(%s, %d) = (%d,%d), want (%d,0)", tt.kind, tt.cols, got.X, got.Y, tt.want)
		}
	}
}

func TestPlaceEmptyGridNeverForbidden(t *testing.T) {
	bg := NewGrid(DefaultRows, DefaultCols)
	for _, p := range Catalog() {
		for y := 0; y+p.Height() <= bg.Rows(); y++ {
			for x := 0; x+p.Width() <= bg.Cols(); x++ {
				res := Place(bg, p, Position{X: x, Y: y})
				if res.Forbidden {
					t.Fatalf("%s at (%d,%d) forbidden on empty grid", p.Kind, x, y)
				}
				if n := res.Frame.OccupiedCount(); n != 4 {
					t.Fatalf("%s at (%d,%d) drew %d cells, want 4", p.Kind, x, y, n)
				}
			}
		}
	}
	if bg.OccupiedCount() != 0 {
		t.Error("Place modified the background")
	}
}

func TestPlaceStampsPieceColor(t *testing.T) {
	bg := NewGrid(DefaultRows, DefaultCols)
	res := Place(bg, PieceAt(int(KindO)), Position{X: 4, Y: 1})

	for _, rc := range [][2]int{{1, 4}, {1, 5}, {2, 4}, {2, 5}} {
		got := res.Frame.At(rc[0], rc[1])
		if got != Filled(core.ColorYellow) {
			t.Errorf("cell %v = %+v, want yellow", rc, got)
		}
	}
	if res.Frame.Occupied(0, 4) {
		t.Error("row 0 should be empty")
	}
}

func TestPlaceForbiddenRendersLast(t *testing.T) {
	bg := NewGrid(DefaultRows, DefaultCols)
	bg.Set(2, 4, Filled(core.ColorCyan))
	o := PieceAt(int(KindO))

	res := Place(bg, o, Position{X: 4, Y: 1, Last: &Point{X: 4, Y: 0}})
	if !res.Forbidden {
		t.Fatal("expected forbidden placement")
	}
	if want := Stamp(bg, o, 4, 0); !res.Frame.Equal(want) {
		t.Error("forbidden frame should show the piece at the last position")
	}
}

func TestPlaceForbiddenLastAtOrigin(t *testing.T) {
	bg := NewGrid(DefaultRows, DefaultCols)
	bg.Set(0, 2, Filled(core.ColorCyan))
	o := PieceAt(int(KindO))

	res := Place(bg, o, Position{X: 1, Y: 0, Last: &Point{X: 0, Y: 0}})
	if !res.Forbidden {
		t.Fatal("expected forbidden placement")
	}
	if !res.Frame.Occupied(0, 0) || !res.Frame.Occupied(1, 1) {
		t.Error("piece at last position (0,0) should be drawn")
	}
}

func TestPlaceForbiddenWithoutLast(t *testing.T) {
	bg := NewGrid(DefaultRows, DefaultCols)
	bg.Set(0, 4, Filled(core.ColorCyan))

	res := Place(bg, PieceAt(int(KindO)), Position{X: 4, Y: 0})
	if !res.Forbidden {
		t.Fatal("expected forbidden placement")
	}
	if !res.Frame.Equal(bg) {
		t.Error("without a last position the frame should be the background")
	}
}

func TestPlaceOutOfBoundsClipped(t *testing.T) {
	bg := NewGrid(DefaultRows, DefaultCols)
	i := PieceAt(int(KindI))

	tests := []struct {
		name  string
		x, y  int
		cells int
	}{
		{"right overhang", 8, 0, 2},
		{"left overhang", -2, 0, 2},
		{"below floor", 0, 20, 0},
		{"above top", 0, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Place(bg, i, Position{X: tt.x, Y: tt.y})
			if res.Forbidden {
				t.Error("out-of-bounds cells should not collide")
			}
			if n := res.Frame.OccupiedCount(); n != tt.cells {
				t.Errorf("OccupiedCount = %d, want %d", n, tt.cells)
			}
		})
	}
}

func TestCollides(t *testing.T) {
	bg := NewGrid(DefaultRows, DefaultCols)
	bg.Set(5, 5, Filled(core.ColorRed))
	t1 := PieceAt(int(KindT)) // {0,1,0},{1,1,1}

	if !Collides(bg, t1, 4, 4) {
		t.Error("T at (4,4) covers (5,5)")
	}
	if Collides(bg, t1, 5, 5) {
		t.Error("T at (5,5) has an empty corner over (5,5)")
	}
	if Collides(bg, t1, 0, 0) {
		t.Error("T at (0,0) should not collide")
	}
}
