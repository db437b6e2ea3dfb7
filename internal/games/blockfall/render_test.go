package blockfall

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRenderASCII(t *testing.T) {
	g := newTestGame(int(KindO))
	g.MoveDown()

	want := "state=STOP move=0 speed=1000 piece=O pos=4,1 illegal=false\n" +
		"..........\n" +
		"....OO....\n" +
		"....OO....\n" +
		strings.Repeat("..........\n", 17)

	if got := RenderASCII(g.Snapshot()); got != want {
		t.Errorf("RenderASCII mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderASCIIObstacle(t *testing.T) {
	bg := NewGrid(4, 4)
	bg.Set(3, 0, Filled(core.ColorCyan))
	g := New(WithBackground(bg), WithSelector(NewSequenceSelector(int(KindT))))

	lines := strings.Split(RenderASCII(g.Snapshot()), "\n")
	if lines[1] != ".T.." || lines[2] != "TTT." {
		t.Errorf("piece rows = %q %q", lines[1], lines[2])
	}
	if lines[4] != "#..." {
		t.Errorf("obstacle row = %q, want %q", lines[4], "#...")
	}
}

func TestRenderDrawsField(t *testing.T) {
	g := newTestGame(int(KindO))
	snap := g.Snapshot()

	w, h := ScreenSize(snap.Frame.Rows(), snap.Frame.Cols())
	scr := core.NewScreen(w, h)
	Render(snap, scr)

	if got := scr.Get(0, 0); got != '┌' {
		t.Errorf("top-left corner = %q, want '┌'", got)
	}

	// O occupies columns 4-5 of row 0, two screen columns per cell
	for _, x := range []int{9, 10, 11, 12} {
		cell := scr.GetCell(x, 1)
		if cell.Rune != '█' || cell.Color != core.ColorYellow {
			t.Errorf("screen (%d,1) = %q/%s, want yellow block", x, cell.Rune, cell.Color)
		}
	}
	if got := scr.Get(2, 1); got != '·' {
		t.Errorf("empty cell = %q, want '·'", got)
	}

	panel := scr.Row(1)
	if !strings.Contains(panel, "State: STOP") {
		t.Errorf("panel row = %q, want state label", panel)
	}
	if !strings.Contains(scr.Row(4), "illegalMove: false") {
		t.Errorf("panel row 4 = %q, want illegalMove flag", scr.Row(4))
	}
}

func TestRenderSmallScreenDoesNotPanic(t *testing.T) {
	g := newTestGame(int(KindI))
	for range 5 {
		g.MoveRight()
	}
	snap := g.Snapshot()

	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 3}, {200, 60}} {
		scr := core.NewScreen(size[0], size[1])
		Render(snap, scr)
	}
}

func TestScreenSize(t *testing.T) {
	w, h := ScreenSize(20, 10)
	if w != 42 || h != 22 {
		t.Errorf("ScreenSize(20, 10) = %dx%d, want 42x22", w, h)
	}
	if _, h := ScreenSize(4, 4); h != 10 {
		t.Errorf("small field height = %d, want panel minimum 10", h)
	}
}
