package tablefc

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/fc"
)

// CellPositions places each cell at (x = sum of prior column widths +
// border-spacing, y = sum of prior row heights + border-spacing), per
// spec.md §4.3.4 phase 4, returned as a LayoutOutput so the position is
// propagated through the same map every other formatting context uses —
// storing it only on the cell node is insufficient, per the spec note.
func CellPositions(s Structure, colWidths, rowHeights []dimen.DU, spacing dimen.DU) fc.LayoutOutput {
	out := fc.NewLayoutOutput()

	colX := make([]dimen.DU, len(colWidths)+1)
	x := spacing
	for i, w := range colWidths {
		colX[i] = x
		x += w + spacing
	}
	colX[len(colWidths)] = x

	rowY := make([]dimen.DU, len(rowHeights)+1)
	y := spacing
	for i, h := range rowHeights {
		rowY[i] = y
		y += h + spacing
	}
	rowY[len(rowHeights)] = y

	for _, c := range s.Cells {
		out.Positions[c.NodeIdx] = dimen.Point{X: colX[c.Col], Y: rowY[c.Row]}
	}
	out.OverflowSize = dimen.Point{X: x, Y: y}
	return out
}
