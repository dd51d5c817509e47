package tablefc

import (
	"github.com/solver3/solver3/layouttree"
)

// Cell is one table cell's resolved grid position, per spec.md §4.3.4
// phase 1: a left-to-right row-major scan over rows/row-groups that
// tracks cells spanning in from earlier rows.
type Cell struct {
	NodeIdx          int
	Row, Col         int
	RowSpan, ColSpan int
}

// Structure is the result of the structural-analysis phase: the ordered
// row node indices, the resolved cells, and the grid dimensions.
type Structure struct {
	RowNodeIdx []int
	Cells      []Cell
	NumRows    int
	NumCols    int
	CaptionIdx []int
}

// Analyze walks tableIdx's post-fixup subtree (row-groups/rows/cells,
// already synthesized by layouttree's builder rule 3) and computes the
// grid. It does not look inside cells; sizing/positioning happen in later
// phases.
func Analyze(t *layouttree.Tree, tableIdx int) Structure {
	var s Structure
	occupancy := make(map[int]int)

	var collectRows func(idx int)
	collectRows = func(idx int) {
		n, ok := t.Arena.Get(idx)
		if !ok {
			return
		}
		switch n.FC {
		case layouttree.FCTableRow:
			s.RowNodeIdx = append(s.RowNodeIdx, idx)
			return
		case layouttree.FCTableRowGroup:
			for _, c := range t.Arena.Children(idx) {
				collectRows(c)
			}
			return
		case layouttree.FCTableCaption:
			s.CaptionIdx = append(s.CaptionIdx, idx)
			return
		}
		// table-column/table-column-group contribute no rows; skip.
	}
	for _, c := range t.Arena.Children(tableIdx) {
		collectRows(c)
	}

	for rowIdx, rowNode := range s.RowNodeIdx {
		col := 0
		for _, cellIdx := range t.Arena.Children(rowNode) {
			for occupancy[col] > 0 {
				col++
			}
			cn, ok := t.Arena.Get(cellIdx)
			if !ok {
				continue
			}
			rowSpan := cn.RowSpan
			if rowSpan < 1 {
				rowSpan = 1
			}
			colSpan := cn.ColSpan
			if colSpan < 1 {
				colSpan = 1
			}
			s.Cells = append(s.Cells, Cell{NodeIdx: cellIdx, Row: rowIdx, Col: col, RowSpan: rowSpan, ColSpan: colSpan})
			for c := col; c < col+colSpan; c++ {
				occupancy[c] = rowSpan
			}
			if col+colSpan > s.NumCols {
				s.NumCols = col + colSpan
			}
			col += colSpan
		}
		for c := range occupancy {
			if occupancy[c] > 0 {
				occupancy[c]--
			}
		}
	}
	s.NumRows = len(s.RowNodeIdx)
	return s
}
