package displaylist

import (
	"sort"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
)

// Generate walks t in document order and returns its display list and
// spatial index. Coordinates are absolute, derived by cumulating each
// node's relative_position down from the viewport origin (spec.md §6).
func Generate(t *layouttree.Tree) (*DisplayList, SpatialIndex) {
	dl := &DisplayList{}
	index := make(SpatialIndex)
	root, ok := t.Arena.Get(t.Root)
	if !ok {
		return dl, index
	}
	walk(t, t.Root, root, dimen.Origin, dl, index)
	return dl, index
}

func walk(t *layouttree.Tree, idx int, n layouttree.Node, parentContentOrigin dimen.Point, dl *DisplayList, index SpatialIndex) {
	origin := dimen.Point{
		X: parentContentOrigin.X + n.RelativePosition.X,
		Y: parentContentOrigin.Y + n.RelativePosition.Y,
	}
	margin, border, padding, content := boxRects(origin, n)
	index[idx] = NodeBoxes{Margin: margin, Border: border, Padding: padding, Content: content}

	clipped := isClipped(n.Style)

	if !suppressedByEmptyCells(t, idx, n) {
		emitBackground(dl, idx, n, border)
		emitBorder(dl, idx, n, border)
	}

	if n.FC == layouttree.FCTable {
		emitTableColumnBackgrounds(t, idx, dl, index, content.TopL)
	}

	if clipped {
		dl.emit(Command{Kind: CmdClipPush, NodeIdx: idx, Rect: padding})
	}

	if n.InlineLayoutResult != nil {
		emitInlineContent(dl, idx, n, content)
	}

	for _, childIdx := range orderedChildren(t, idx) {
		child, ok := t.Arena.Get(childIdx)
		if !ok || isTableColumnPart(child.FC) {
			continue
		}
		walk(t, childIdx, child, content.TopL, dl, index)
	}

	if clipped {
		dl.emit(Command{Kind: CmdClipPop, NodeIdx: idx})
	}

	emitOutline(dl, idx, n, border)
}

// orderedChildren returns idx's children in paint order: normal-flow and
// statically positioned children keep document order; among
// absolutely/fixed positioned siblings, lower z-index paints first
// (spec.md §4.4's "respect z-index stacking" for out-of-flow nodes).
func orderedChildren(t *layouttree.Tree, idx int) []int {
	kids := append([]int(nil), t.Arena.Children(idx)...)
	sort.SliceStable(kids, func(i, j int) bool {
		a, _ := t.Arena.Get(kids[i])
		b, _ := t.Arena.Get(kids[j])
		return stackOrder(a) < stackOrder(b)
	})
	return kids
}

func stackOrder(n layouttree.Node) int {
	if n.Style.Position == styleddom.PositionAbsolute || n.Style.Position == styleddom.PositionFixed {
		return n.Style.ZIndex
	}
	return 0
}

func isClipped(s styleddom.ComputedStyle) bool {
	return s.Overflow == "hidden" || s.Overflow == "scroll" || s.Overflow == "auto"
}

// suppressedByEmptyCells implements `empty-cells: hide` (spec.md §4.3.4
// item 6): a table cell with no child boxes and no shaped content paints
// neither background nor border.
func suppressedByEmptyCells(t *layouttree.Tree, idx int, n layouttree.Node) bool {
	if n.FC != layouttree.FCTableCell || !n.Style.EmptyCellsHide {
		return false
	}
	if len(t.Arena.Children(idx)) > 0 {
		return false
	}
	if n.InlineLayoutResult == nil {
		return true
	}
	for _, line := range n.InlineLayoutResult.Lines {
		if len(line.Glyphs) > 0 {
			return false
		}
	}
	return true
}

func isTableColumnPart(fc layouttree.FormattingContext) bool {
	return fc == layouttree.FCTableColumnGroup || fc == layouttree.FCTableColumn
}

// emitTableColumnBackgrounds implements the two layers of the six-layer
// table paint order (spec.md §4.4) that precede row groups/rows/cells:
// column groups, then columns. Columns carry no content of their own, only
// a background that shows through transparent row/cell backgrounds painted
// afterward.
func emitTableColumnBackgrounds(t *layouttree.Tree, tableIdx int, dl *DisplayList, index SpatialIndex, tableContentOrigin dimen.Point) {
	for _, groupIdx := range t.Arena.Children(tableIdx) {
		group, ok := t.Arena.Get(groupIdx)
		if !ok || group.FC != layouttree.FCTableColumnGroup {
			continue
		}
		origin := dimen.Point{X: tableContentOrigin.X + group.RelativePosition.X, Y: tableContentOrigin.Y + group.RelativePosition.Y}
		_, border, _, content := boxRects(origin, group)
		index[groupIdx] = NodeBoxes{Border: border, Content: content}
		emitBackground(dl, groupIdx, group, border)
		for _, colIdx := range t.Arena.Children(groupIdx) {
			col, ok := t.Arena.Get(colIdx)
			if !ok || col.FC != layouttree.FCTableColumn {
				continue
			}
			colOrigin := dimen.Point{X: content.TopL.X + col.RelativePosition.X, Y: content.TopL.Y + col.RelativePosition.Y}
			_, colBorder, _, _ := boxRects(colOrigin, col)
			index[colIdx] = NodeBoxes{Border: colBorder}
			emitBackground(dl, colIdx, col, colBorder)
		}
	}
}

func emitBackground(dl *DisplayList, idx int, n layouttree.Node, rect dimen.Rect) {
	if n.Style.BackgroundColor == "" {
		return
	}
	dl.emit(Command{Kind: CmdBackground, NodeIdx: idx, Rect: rect, Color: n.Style.BackgroundColor})
}

func emitBorder(dl *DisplayList, idx int, n layouttree.Node, rect dimen.Rect) {
	edges := []struct {
		edge  styleddom.BorderEdge
		width dimen.DU
	}{
		{n.Style.Border.Top, n.Border.Top},
		{n.Style.Border.Right, n.Border.Right},
		{n.Style.Border.Bottom, n.Border.Bottom},
		{n.Style.Border.Left, n.Border.Left},
	}
	for _, e := range edges {
		if e.width <= 0 || e.edge.Style == styleddom.BorderNone || e.edge.Style == styleddom.BorderHidden {
			continue
		}
		dl.emit(Command{Kind: CmdBorder, NodeIdx: idx, Rect: rect, Color: e.edge.Color})
		return // one border command per node summarizing the stroked box; per-edge styling is carried in n.Style for the painter to re-derive
	}
}

// emitOutline is always emitted in the 5-layer slot CSS reserves for
// outlines (spec.md §4.4 step 5), even though ComputedStyle does not yet
// carry dedicated outline-color/width/style properties — the command
// exists so paint-order tests can assert its position without requiring a
// painter to draw anything visible for it.
func emitOutline(dl *DisplayList, idx int, n layouttree.Node, rect dimen.Rect) {
	dl.emit(Command{Kind: CmdOutline, NodeIdx: idx, Rect: rect})
}

// emitInlineContent emits one CmdText command per laid-out line, translating
// each glyph's IFC-local position (content.TopL + blockOffset) into the
// display list's absolute coordinate space. A vertical writing mode swaps
// which physical axis carries the inline vs. block offset (spec.md §4.3.2
// item 8, SPEC_FULL.md §9.2): the shaping pipeline always lays text out in
// its own horizontal model, so here the inline advance (g.Position.X) maps
// to the physical Y axis and the line's block offset maps to physical X —
// this reproduces vertical line stacking without rotating glyph outlines
// themselves (equivalent to text-orientation: upright).
func emitInlineContent(dl *DisplayList, idx int, n layouttree.Node, content dimen.Rect) {
	vertical := n.Style.WritingModeVertical
	for _, line := range n.InlineLayoutResult.Lines {
		if len(line.Glyphs) == 0 {
			continue
		}
		glyphs := make([]text.PositionedGlyph, len(line.Glyphs))
		for i, g := range line.Glyphs {
			if vertical {
				g.Position = dimen.Point{
					X: content.TopL.X + line.BlockOffset + g.Position.Y,
					Y: content.TopL.Y + g.Position.X,
				}
			} else {
				g.Position = dimen.Point{
					X: content.TopL.X + g.Position.X,
					Y: content.TopL.Y + line.BlockOffset + g.Position.Y,
				}
			}
			glyphs[i] = g
		}
		dl.emit(Command{
			Kind:    CmdText,
			NodeIdx: idx,
			Rect:    content,
			FontID:  glyphs[0].FontID,
			Glyphs:  glyphs,
		})
	}
}
