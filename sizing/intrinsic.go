package sizing

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom"
)

// TextMeasurer supplies an IFC root's intrinsic widths/height: the widest
// unbreakable word (min-content) and the sum of all inline advances with no
// wrapping (max-content), per spec.md §4.2's "Intrinsic widths" rule.
// text/measure.Measurer implements it; ComputeIntrinsic accepts it as a
// collaborator rather than
// importing text directly, so sizing never depends on shaping internals.
type TextMeasurer interface {
	MeasureIntrinsic(dom styleddom.StyledDom, domChildren []styleddom.NodeID, style styleddom.ComputedStyle) (minContent, maxContent, lineHeight dimen.DU)
}

// ComputeIntrinsic fills in IntrinsicSizes for every node of t, bottom-up:
// an IFC root asks measurer; any other container's min/max width is the
// max over its children and its heights are their sum (flex and grid
// containers included); a node with no children gets zero. Table,
// row-group, row, cell and caption nodes keep whatever IntrinsicSizes they
// already have, though their descendants are still walked; the table
// layout fills cells in later.
func ComputeIntrinsic(t *layouttree.Tree, dom styleddom.StyledDom, measurer TextMeasurer) {
	var walk func(idx int) layouttree.IntrinsicSizes
	walk = func(idx int) layouttree.IntrinsicSizes {
		n, ok := t.Arena.Get(idx)
		if !ok {
			return layouttree.IntrinsicSizes{}
		}

		switch n.FC {
		case layouttree.FCTable, layouttree.FCTableRow, layouttree.FCTableRowGroup,
			layouttree.FCTableCell, layouttree.FCTableCaption:
			// The table FC's own structural-analysis phase computes these;
			// still recurse so descendants below a cell get their own sizes.
			for _, c := range t.Arena.Children(idx) {
				walk(c)
			}
			return n.Intrinsic
		}

		if n.IsIFCRoot {
			minW, maxW, lh := measurer.MeasureIntrinsic(dom, n.InlineDomChildren, n.Style)
			n.Intrinsic = layouttree.IntrinsicSizes{
				MinContentWidth: minW, MaxContentWidth: maxW,
				MinContentHeight: lh, MaxContentHeight: lh,
			}
			t.Arena.Set(idx, n)
			for _, c := range t.Arena.Children(idx) {
				walk(c) // atomic inlines materialized under the IFC root
			}
			return n.Intrinsic
		}

		var agg layouttree.IntrinsicSizes
		for _, c := range t.Arena.Children(idx) {
			cs := walk(c)
			agg.MinContentWidth = dimen.Max(agg.MinContentWidth, cs.MinContentWidth)
			agg.MaxContentWidth = dimen.Max(agg.MaxContentWidth, cs.MaxContentWidth)
			agg.MinContentHeight += cs.MinContentHeight
			agg.MaxContentHeight += cs.MaxContentHeight
		}
		n.Intrinsic = agg
		t.Arena.Set(idx, n)
		return agg
	}
	walk(t.Root)
}
