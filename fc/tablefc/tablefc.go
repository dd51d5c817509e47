package tablefc

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/fc"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom"
)

// Result bundles a table's LayoutOutput with the structural/sizing
// intermediates later phases (painting, border resolution per edge) need.
type Result struct {
	fc.LayoutOutput
	Structure  Structure
	ColWidths  []dimen.DU
	RowHeights []dimen.DU
	CaptionTop bool // true if captions (if any) render above the table grid
}

// Layout runs all of spec.md §4.3.4's phases over tableIdx: structural
// analysis, column sizing, row-height resolution, and cell positioning.
// available is the table wrapper's content-box inline size. Border
// collapse (phase 5) is exposed separately via ResolveEdge, since it
// operates per grid edge rather than per node and is consumed by the
// display-list generator, not by this positioning pass.
func Layout(t *layouttree.Tree, tableIdx int, available dimen.DU) Result {
	n, _ := t.Arena.Get(tableIdx)

	spacing := dimen.DU(0)
	if n.Style.BorderCollapse != styleddom.BorderCollapsed {
		if v, ok := n.Style.BorderSpacingH.Resolve(0); ok {
			spacing = v
		}
	}

	s := Analyze(t, tableIdx)
	colWidths := ColumnWidths(t, s, n.Style.TableLayout, available, spacing)
	rowHeights := RowHeights(t, s)
	out := CellPositions(s, colWidths, rowHeights, spacing)

	captionTop := n.Style.CaptionSide != "bottom"
	if len(s.CaptionIdx) > 0 {
		var capHeight dimen.DU
		for _, capIdx := range s.CaptionIdx {
			cn, _ := t.Arena.Get(capIdx)
			capHeight += cn.UsedSize.Y
		}
		if captionTop {
			for idx, p := range out.Positions {
				out.Positions[idx] = dimen.Point{X: p.X, Y: p.Y + capHeight}
			}
			var y dimen.DU
			for _, capIdx := range s.CaptionIdx {
				cn, _ := t.Arena.Get(capIdx)
				out.Positions[capIdx] = dimen.Point{X: 0, Y: y}
				y += cn.UsedSize.Y
			}
		} else {
			y := out.OverflowSize.Y
			for _, capIdx := range s.CaptionIdx {
				cn, _ := t.Arena.Get(capIdx)
				out.Positions[capIdx] = dimen.Point{X: 0, Y: y}
				y += cn.UsedSize.Y
			}
		}
		out.OverflowSize.Y += capHeight
	}

	return Result{LayoutOutput: out, Structure: s, ColWidths: colWidths, RowHeights: rowHeights, CaptionTop: captionTop}
}
