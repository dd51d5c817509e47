package layouttree

import (
	"github.com/solver3/solver3/styleddom"
)

// buildTableChildren applies rule 3, pass 2 (child wrappers): inside a
// table, contiguous non-row children become an anonymous table-row; inside
// a row-group, the same; inside a row, non-cell children become an
// anonymous cell. Pass 1 (whitespace) needs no extra code here since rule 1
// already never materializes text nodes. Pass 3 (parent wrappers, for a
// cell/row that ends up without the right ancestor) is applied afterwards
// by fixupOrphans over the whole tree, since the orphan case by definition
// arises outside this table-aware call site.
func (b *builder) buildTableChildren(parentFC FormattingContext, kids []styleddom.NodeID, parentIdx int) {
	wantFC := FCTableRow
	if parentFC == FCTableRow {
		wantFC = FCTableCell
	}

	var run []styleddom.NodeID
	var children []int

	flush := func() {
		if len(run) == 0 {
			return
		}
		style := mustGet(b.arena, parentIdx).Style
		style.Margin = styleddom.Sides{} // anonymous table wrappers get no margins
		wrapper := Node{DomNode: styleddom.NoNode, FC: wantFC, Style: style}
		wIdx := b.arena.New(wrapper, parentIdx)
		var adopted []int
		for _, kid := range run {
			adopted = append(adopted, b.buildElement(kid, wIdx))
		}
		b.arena.SetChildren(wIdx, adopted)
		children = append(children, wIdx)
		run = nil
	}

	for _, kid := range kids {
		if b.dom.Kind(kid) == styleddom.KindText {
			continue // pass 1: whitespace-only (and all) text dropped here
		}
		style := b.dom.Style(kid)
		if style.Display == styleddom.DisplayNone {
			continue
		}
		fc := fcFromDisplay(style.Display)
		matches := (wantFC == FCTableRow && fc == FCTableRow) ||
			(wantFC == FCTableCell && fc == FCTableCell) ||
			(parentFC == FCTable && (fc == FCTableRowGroup || fc == FCTableCaption || fc == FCTableColumn || fc == FCTableColumnGroup))
		if matches {
			flush()
			children = append(children, b.buildElement(kid, parentIdx))
			continue
		}
		run = append(run, kid)
	}
	flush()
	b.arena.SetChildren(parentIdx, children)
}

// fixupOrphans applies rule 3, pass 3: a table-cell without a row ancestor
// gets an anonymous row; a table-row outside any table gets an anonymous
// table wrapper. Walked bottom-up is unnecessary since Build already
// produced the whole tree; a single top-down pass catches every case
// because buildChildren/buildTableChildren only ever emit well-formed
// structure for the *direct* parent they were called with — orphans arise
// only where a table part was created under an unrelated ancestor (e.g. a
// bare <td> under a <div>), which this pass detects by FC mismatch alone.
func fixupOrphans(t *Tree) {
	var walk func(idx int)
	walk = func(idx int) {
		n := mustGet(t.Arena, idx)
		children := append([]int(nil), t.Arena.Children(idx)...)

		if n.FC != FCTableRow {
			children = wrapOrphanRuns(t, idx, children, FCTableCell, FCTableRow)
		}
		n = mustGet(t.Arena, idx)
		if n.FC != FCTable && n.FC != FCTableRowGroup {
			children = wrapOrphanRuns(t, idx, children, FCTableRow, FCTable)
		}
		t.Arena.SetChildren(idx, children)

		for _, c := range t.Arena.Children(idx) {
			walk(c)
		}
	}
	walk(t.Root)
}

// wrapOrphanRuns groups contiguous children whose FC equals orphanFC into a
// new anonymous wrapperFC node, reparenting them under it.
func wrapOrphanRuns(t *Tree, parentIdx int, children []int, orphanFC, wrapperFC FormattingContext) []int {
	var out []int
	var run []int
	parentStyle := mustGet(t.Arena, parentIdx).Style
	parentStyle.Margin = styleddom.Sides{} // anonymous table wrappers get no margins

	flush := func() {
		if len(run) == 0 {
			return
		}
		wIdx := t.Arena.New(Node{DomNode: styleddom.NoNode, FC: wrapperFC, Style: parentStyle}, parentIdx)
		for _, c := range run {
			t.Arena.Reparent(c, wIdx)
		}
		out = append(out, wIdx)
		run = nil
	}

	for _, c := range children {
		if mustGet(t.Arena, c).FC == orphanFC {
			run = append(run, c)
			continue
		}
		flush()
		out = append(out, c)
	}
	flush()
	return out
}
