package tablefc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/cssval"
	"github.com/solver3/solver3/fc/tablefc"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/tree"
)

// buildSimpleTable builds table > row(2 cells) > row(1 cell colspan=2).
func buildSimpleTable() (*layouttree.Tree, int) {
	a := tree.NewArena[layouttree.Node]()
	table := a.New(layouttree.Node{FC: layouttree.FCTable}, tree.NoIndex)

	row1 := a.New(layouttree.Node{FC: layouttree.FCTableRow}, table)
	cell1 := a.New(layouttree.Node{FC: layouttree.FCTableCell, UsedSize: dimen.Point{Y: 20 * dimen.PX},
		Intrinsic: layouttree.IntrinsicSizes{MinContentWidth: 20 * dimen.PX, MaxContentWidth: 80 * dimen.PX}}, row1)
	cell2 := a.New(layouttree.Node{FC: layouttree.FCTableCell, UsedSize: dimen.Point{Y: 20 * dimen.PX},
		Intrinsic: layouttree.IntrinsicSizes{MinContentWidth: 30 * dimen.PX, MaxContentWidth: 120 * dimen.PX}}, row1)

	row2 := a.New(layouttree.Node{FC: layouttree.FCTableRow}, table)
	cell3 := a.New(layouttree.Node{FC: layouttree.FCTableCell, ColSpan: 2, UsedSize: dimen.Point{Y: 10 * dimen.PX},
		Intrinsic: layouttree.IntrinsicSizes{MinContentWidth: 60 * dimen.PX, MaxContentWidth: 150 * dimen.PX}}, row2)

	a.SetChildren(row1, []int{cell1, cell2})
	a.SetChildren(row2, []int{cell3})
	a.SetChildren(table, []int{row1, row2})

	return &layouttree.Tree{Arena: a, Root: table}, table
}

func TestAnalyzeComputesGridWithColspan(t *testing.T) {
	lt, table := buildSimpleTable()
	s := tablefc.Analyze(lt, table)
	require.Equal(t, 2, s.NumRows)
	require.Equal(t, 2, s.NumCols)
	require.Len(t, s.Cells, 3)
	assert.Equal(t, 0, s.Cells[2].Col)
	assert.Equal(t, 2, s.Cells[2].ColSpan)
}

func TestAutoColumnWidthsDistributeWithinAvailable(t *testing.T) {
	lt, table := buildSimpleTable()
	s := tablefc.Analyze(lt, table)
	widths := tablefc.ColumnWidths(lt, s, styleddom.TableLayoutAuto, 200*dimen.PX, 0)
	require.Len(t, widths, 2)
	var sum dimen.DU
	for _, w := range widths {
		sum += w
	}
	assert.LessOrEqual(t, int64(sum), int64(200*dimen.PX))
}

func TestRowHeightsUseMaxCellHeight(t *testing.T) {
	lt, table := buildSimpleTable()
	s := tablefc.Analyze(lt, table)
	heights := tablefc.RowHeights(lt, s)
	require.Len(t, heights, 2)
	assert.Equal(t, 20*dimen.PX, heights[0])
}

func TestCellPositionsIncludeSpacing(t *testing.T) {
	s := tablefc.Structure{
		Cells: []tablefc.Cell{{NodeIdx: 1, Row: 0, Col: 0, RowSpan: 1, ColSpan: 1}, {NodeIdx: 2, Row: 0, Col: 1, RowSpan: 1, ColSpan: 1}},
	}
	out := tablefc.CellPositions(s, []dimen.DU{50 * dimen.PX, 50 * dimen.PX}, []dimen.DU{20 * dimen.PX}, 5*dimen.PX)
	assert.Equal(t, 5*dimen.PX, out.Positions[1].X)
	assert.Equal(t, 5*dimen.PX+50*dimen.PX+5*dimen.PX, out.Positions[2].X)
}

func TestResolveEdgeHiddenSuppresses(t *testing.T) {
	edge := tablefc.ResolveEdge([]tablefc.BorderCandidate{
		{Edge: styleddom.BorderEdge{Style: styleddom.BorderSolid, Width: cssval.Just(2 * dimen.PX)}, Source: tablefc.SourceCell},
		{Edge: styleddom.BorderEdge{Style: styleddom.BorderHidden}, Source: tablefc.SourceTable},
	})
	assert.Equal(t, styleddom.BorderHidden, edge.Style)
}

func TestResolveEdgeWidestWins(t *testing.T) {
	edge := tablefc.ResolveEdge([]tablefc.BorderCandidate{
		{Edge: styleddom.BorderEdge{Style: styleddom.BorderSolid, Width: cssval.Just(1 * dimen.PX)}, Source: tablefc.SourceCell},
		{Edge: styleddom.BorderEdge{Style: styleddom.BorderDashed, Width: cssval.Just(3 * dimen.PX)}, Source: tablefc.SourceTable},
	})
	assert.Equal(t, styleddom.BorderDashed, edge.Style)
}

func TestResolveEdgeStylePriorityBreaksWidthTie(t *testing.T) {
	edge := tablefc.ResolveEdge([]tablefc.BorderCandidate{
		{Edge: styleddom.BorderEdge{Style: styleddom.BorderDotted, Width: cssval.Just(2 * dimen.PX)}, Source: tablefc.SourceCell},
		{Edge: styleddom.BorderEdge{Style: styleddom.BorderSolid, Width: cssval.Just(2 * dimen.PX)}, Source: tablefc.SourceTable},
	})
	assert.Equal(t, styleddom.BorderSolid, edge.Style)
}
