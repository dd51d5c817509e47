package layouttree

import (
	"strings"

	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/tree"
)

// Build constructs a fresh layout tree from dom, applying the builder rules
// of spec.md §4.1 in order: element-to-node mapping with text left
// unmaterialized (rule 1), list-item marker/wrapper synthesis (rule 2),
// table structural fixup (rule 3), and the anonymous block container rule
// for mixed inline/block children (rule 4).
func Build(dom styleddom.StyledDom) *Tree {
	arena := tree.NewArena[Node]()
	b := &builder{dom: dom, arena: arena}
	root := dom.Root()
	rootIdx := b.buildElement(root, tree.NoIndex)
	t := &Tree{Arena: arena, Root: rootIdx}
	fixupOrphans(t)
	return t
}

type builder struct {
	dom   styleddom.StyledDom
	arena *tree.Arena[Node]
}

// buildElement creates a layout node for a styled element (or image/object)
// node, recurses into its children applying rules 2-4, and returns its
// arena index.
func (b *builder) buildElement(domID styleddom.NodeID, parent int) int {
	style := b.dom.Style(domID)
	fc := fcFromDisplay(style.Display)
	n := Node{DomNode: domID, FC: fc, Style: style, ColSpan: style.ColSpan, RowSpan: style.RowSpan}

	idx := b.arena.New(n, parent)

	if style.Display == styleddom.DisplayListItem {
		b.buildListItem(domID, idx, style)
		return idx
	}

	b.buildChildren(domID, idx, style)
	return idx
}

// buildListItem applies rule 2: a marker pseudo-node (Inline FC) followed
// by an anonymous content wrapper (Block FC) that adopts the element's
// normal children.
func (b *builder) buildListItem(domID styleddom.NodeID, idx int, style styleddom.ComputedStyle) {
	b.arena.Set(idx, withFC(mustGet(b.arena, idx), FCListItem))

	marker := Node{
		FC:         FCInline,
		PseudoKind: PseudoMarker,
		DomNode:    domID,
		Style:      style,
		Marker: &MarkerInfo{
			Position: style.ListStylePosition,
		},
	}
	b.arena.New(marker, idx)

	wrapper := Node{DomNode: styleddom.NoNode, FC: FCBlock, PseudoKind: PseudoNone, Style: style}
	wrapIdx := b.arena.New(wrapper, idx)
	b.buildChildren(domID, wrapIdx, style)
}

// buildChildren walks domID's styled-DOM children, classifies each as
// block-level or inline-level, creates layout nodes for block-level and
// atomic-inline children, and marks parentIdx as an IFC root when no
// block-level layout child was created (rule 4) — or runs the table fixup
// passes when parentIdx establishes a table-structural formatting context
// (rule 3).
func (b *builder) buildChildren(domID styleddom.NodeID, parentIdx int, parentStyle styleddom.ComputedStyle) {
	kids := b.dom.Children(domID)
	parentNode := mustGet(b.arena, parentIdx)

	switch parentNode.FC {
	case FCTable, FCTableRowGroup, FCTableRow:
		b.buildTableChildren(parentNode.FC, kids, parentIdx)
		return
	}

	sawBlock := false
	for _, kid := range kids {
		if b.dom.Kind(kid) == styleddom.KindText {
			continue
		}
		if isBlockLevel(b.dom.Style(kid).Display) {
			sawBlock = true
			break
		}
	}

	var inlineRun []styleddom.NodeID
	var blockChildren []int

	flushInlineRun := func() {
		if len(inlineRun) == 0 {
			return
		}
		// A run of whitespace-only text between blocks gets no wrapper
		// (unless white-space preserves it).
		blank := !parentStyle.WhiteSpacePre
		for _, id := range inlineRun {
			if b.dom.Kind(id) != styleddom.KindText || strings.TrimSpace(b.dom.Text(id)) != "" {
				blank = false
			}
		}
		if sawBlock && !blank {
			wrapper := Node{
				DomNode:           styleddom.NoNode,
				FC:                FCBlock,
				IsIFCRoot:         true,
				InlineDomChildren: append([]styleddom.NodeID(nil), inlineRun...),
				Style:             parentStyle,
			}
			wIdx := b.arena.New(wrapper, parentIdx)
			b.materializeAtomicInlines(inlineRun, wIdx)
			blockChildren = append(blockChildren, wIdx)
		}
		inlineRun = nil
	}

	for _, kid := range kids {
		kind := b.dom.Kind(kid)
		if kind == styleddom.KindText {
			inlineRun = append(inlineRun, kid)
			continue
		}
		style := b.dom.Style(kid)
		if style.Display == styleddom.DisplayNone {
			continue
		}
		if isBlockLevel(style.Display) {
			flushInlineRun()
			sawBlock = true
			childIdx := b.buildElement(kid, parentIdx)
			blockChildren = append(blockChildren, childIdx)
			continue
		}
		// inline-level: text, <span>-like, or atomic inline.
		inlineRun = append(inlineRun, kid)
	}

	if !sawBlock {
		// Every in-flow child is inline-level: parentIdx is itself the IFC root.
		n := mustGet(b.arena, parentIdx)
		n.IsIFCRoot = true
		n.InlineDomChildren = inlineRun
		b.arena.Set(parentIdx, n)
		b.materializeAtomicInlines(inlineRun, parentIdx)
		return
	}
	flushInlineRun()
	b.arena.SetChildren(parentIdx, blockChildren)
}

// materializeAtomicInlines creates layout nodes (as children of hostIdx) for
// any atomic inline — inline-block, image, object — among
// domKids, since those still need independent sizing even though their
// parent is an IFC root rather than a BFC. styleddom.Display has no
// inline-table value, so no inline table is materialized here.
func (b *builder) materializeAtomicInlines(domKids []styleddom.NodeID, hostIdx int) {
	for _, kid := range domKids {
		if b.dom.Kind(kid) == styleddom.KindText {
			continue
		}
		style := b.dom.Style(kid)
		if isAtomicInline(style.Display, b.dom.Kind(kid)) {
			b.buildElement(kid, hostIdx)
		}
	}
}

func isBlockLevel(d styleddom.Display) bool {
	switch d {
	case styleddom.DisplayBlock, styleddom.DisplayListItem, styleddom.DisplayFlex,
		styleddom.DisplayGrid, styleddom.DisplayTable, styleddom.DisplayTableRowGroup,
		styleddom.DisplayTableHeaderGroup, styleddom.DisplayTableFooterGroup,
		styleddom.DisplayTableRow, styleddom.DisplayTableCell, styleddom.DisplayTableCaption,
		styleddom.DisplayTableColumn, styleddom.DisplayTableColumnGroup:
		return true
	}
	return false
}

func isAtomicInline(d styleddom.Display, kind styleddom.NodeKind) bool {
	if kind == styleddom.KindImage || kind == styleddom.KindObject {
		return true
	}
	return d == styleddom.DisplayInlineBlock
}

func fcFromDisplay(d styleddom.Display) FormattingContext {
	switch d {
	case styleddom.DisplayBlock, styleddom.DisplayInlineBlock:
		return FCBlock
	case styleddom.DisplayInline:
		return FCInline
	case styleddom.DisplayFlex, styleddom.DisplayInlineFlex:
		return FCFlex
	case styleddom.DisplayGrid:
		return FCGrid
	case styleddom.DisplayTable:
		return FCTable
	case styleddom.DisplayTableRowGroup, styleddom.DisplayTableHeaderGroup, styleddom.DisplayTableFooterGroup:
		return FCTableRowGroup
	case styleddom.DisplayTableRow:
		return FCTableRow
	case styleddom.DisplayTableCell:
		return FCTableCell
	case styleddom.DisplayTableCaption:
		return FCTableCaption
	case styleddom.DisplayTableColumn:
		return FCTableColumn
	case styleddom.DisplayTableColumnGroup:
		return FCTableColumnGroup
	case styleddom.DisplayListItem:
		return FCListItem
	}
	return FCBlock
}

func mustGet(a *tree.Arena[Node], idx int) Node {
	n, _ := a.Get(idx)
	return n
}

func withFC(n Node, fc FormattingContext) Node {
	n.FC = fc
	return n
}
