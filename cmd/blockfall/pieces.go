package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the piece catalog",
	Long:  `Shows the seven pieces with their colors and all four rotations.`,
	Args:  cobra.NoArgs,
	Run:   runPieces,
}

func runPieces(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Pieces:")
	fmt.Fprintln(out)

	for i, p := range blockfall.Catalog() {
		fmt.Fprintf(out, "  %d  %s  %s\n", i, p.Kind, p.Color)

		// Lay the rotations out side by side
		rotations := make([]blockfall.Piece, 4)
		rotations[0] = p
		for r := 1; r < 4; r++ {
			rotations[r] = blockfall.Rotate(rotations[r-1])
		}
		for row := range 4 {
			var sb strings.Builder
			sb.WriteString("     ")
			for _, rp := range rotations {
				sb.WriteString(shapeRow(rp, row, 4))
				sb.WriteString("  ")
			}
			fmt.Fprintln(out, strings.TrimRight(sb.String(), " "))
		}
		fmt.Fprintln(out)
	}
}

// shapeRow renders one row of a shape padded to width cells.
func shapeRow(p blockfall.Piece, row, width int) string {
	var sb strings.Builder
	for c := range width {
		if row < p.Height() && c < p.Width() && p.Shape[row][c] == 1 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
