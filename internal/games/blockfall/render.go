package blockfall

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Layout of the rendered field: each cell is two columns wide so blocks
// look square in a terminal, surrounded by a one-character border.
const (
	cellWidth  = 2
	panelGap   = 2
	panelWidth = 18
)

// ScreenSize returns the screen dimensions needed to render a field of
// the given size together with the debug panel.
func ScreenSize(rows, cols int) (w, h int) {
	return cols*cellWidth + 2 + panelGap + panelWidth, max(rows+2, 10)
}

// Render paints the snapshot's frame and debug panel into dst.
// Cells that do not fit the screen are clipped.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	rows, cols := snap.Frame.Rows(), snap.Frame.Cols()
	dst.DrawBox(core.NewRect(0, 0, cols*cellWidth+2, rows+2))

	for r := range rows {
		for c := range cols {
			cell := snap.Frame.At(r, c)
			x := 1 + c*cellWidth
			y := 1 + r
			if cell.Empty {
				dst.SetColored(x, y, ' ', core.ColorDefault)
				dst.SetColored(x+1, y, '·', core.ColorGray)
				continue
			}
			dst.SetColored(x, y, '█', cell.Color)
			dst.SetColored(x+1, y, '█', cell.Color)
		}
	}

	renderPanel(snap, dst, cols*cellWidth+2+panelGap)
}

// renderPanel draws the debug readout to the right of the field.
func renderPanel(snap Snapshot, dst *core.Screen, x int) {
	stateColor := core.ColorGreen
	switch snap.State {
	case StateStopped:
		stateColor = core.ColorRed
	case StatePaused:
		stateColor = core.ColorYellow
	}

	dst.DrawText(x, 1, "State: ")
	dst.DrawTextColored(x+7, 1, snap.State.String(), stateColor)
	dst.DrawText(x, 2, fmt.Sprintf("Move: %d", snap.Moves))
	dst.DrawText(x, 3, fmt.Sprintf("Speed: %d", snap.Speed))

	illegalColor := core.ColorDefault
	if snap.Forbidden {
		illegalColor = core.ColorBrightRed
	}
	dst.DrawTextColored(x, 4, fmt.Sprintf("illegalMove: %t", snap.Forbidden), illegalColor)

	dst.DrawText(x, 6, fmt.Sprintf("Piece: %s (%d)", snap.Kind, snap.PieceIndex))
	dst.DrawText(x, 7, fmt.Sprintf("Pos: %d,%d", snap.X, snap.Y))

	color := PieceAt(int(snap.Kind)).Color
	for r, row := range snap.Shape {
		for c, v := range row {
			if v == 1 {
				dst.SetColored(x+c*cellWidth, 9+r, '█', color)
				dst.SetColored(x+c*cellWidth+1, 9+r, '█', color)
			}
		}
	}
}

// RenderASCII returns a plain-text view of the snapshot for logs, golden
// tests and the headless commands.
//
// Format: a header line, then one line per row where '.' is empty, a piece
// letter marks a cell in that piece's color and '#' marks any other color.
func RenderASCII(snap Snapshot) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("state=%s move=%d speed=%d piece=%s pos=%d,%d illegal=%t\n",
		snap.State, snap.Moves, snap.Speed, snap.Kind, snap.X, snap.Y, snap.Forbidden))

	for r := range snap.Frame.Rows() {
		for c := range snap.Frame.Cols() {
			sb.WriteRune(asciiRune(snap.Frame.At(r, c)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// asciiRune maps a cell to its RenderASCII character.
func asciiRune(cell Cell) rune {
	if cell.Empty {
		return '.'
	}
	for _, p := range catalog {
		if p.Color == cell.Color {
			return rune(p.Kind.String()[0])
		}
	}
	return '#'
}
