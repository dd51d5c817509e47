package layouttree

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
	"github.com/solver3/solver3/tree"
)

// FormattingContext is the tag spec.md §3 names on every layout node.
type FormattingContext int

const (
	FCNone FormattingContext = iota
	FCBlock
	FCInline
	FCFlex
	FCGrid
	FCTable
	FCTableRowGroup
	FCTableRow
	FCTableCell
	FCTableCaption
	FCTableColumn
	FCTableColumnGroup
	FCListItem
)

// PseudoKind tags a pseudo-element layout node. Pseudo-elements are ordinary
// layout nodes with this discriminant set, never a separate Go type
// (spec.md §9 Design Notes).
type PseudoKind int

const (
	PseudoNone PseudoKind = iota
	PseudoMarker
	PseudoBefore
	PseudoAfter
)

// DirtyFlag orders from least to most work required to refresh a node.
type DirtyFlag int

const (
	DirtyNone DirtyFlag = iota
	DirtyPaint
	DirtyLayout
)

// MaxDirty returns the more severe of two dirty flags (the Max reducer
// SPEC_FULL §3.1 names for upward propagation).
func MaxDirty(a, b DirtyFlag) DirtyFlag {
	if a > b {
		return a
	}
	return b
}

// BoxEdges holds resolved (post-sizing) dimen.DU values for one box-model
// property across all four physical sides.
type BoxEdges struct {
	Top, Right, Bottom, Left dimen.DU
}

// IntrinsicSizes holds the bottom-up sizing pass's min/max-content results.
type IntrinsicSizes struct {
	MinContentWidth, MaxContentWidth   dimen.DU
	MinContentHeight, MaxContentHeight dimen.DU
}

// MarkerInfo carries a list-item marker's formatted metrics.
type MarkerInfo struct {
	Text     string
	Width    dimen.DU
	Baseline dimen.DU
	Position styleddom.ListStylePosition
}

// Node is one layout-tree node. Parent/children live in the owning Tree's
// arena; Node itself carries only payload.
type Node struct {
	DomNode    styleddom.NodeID // styleddom.NoNode for anonymous boxes
	PseudoKind PseudoKind
	FC         FormattingContext
	Style      styleddom.ComputedStyle

	Margin  BoxEdges
	Padding BoxEdges
	Border  BoxEdges

	Intrinsic        IntrinsicSizes
	UsedSize         dimen.Point
	RelativePosition dimen.Point
	Baseline         dimen.DU

	InlineLayoutResult *text.UnifiedLayout
	Marker             *MarkerInfo

	DirtyFlag   DirtyFlag
	ContentHash uint64

	// IsIFCRoot marks a block-level box whose in-flow content is entirely
	// inline (text, inline elements, atomic inlines): the FC dispatcher
	// runs the inline formatting context directly on it instead of BFC
	// child-stacking. InlineDomChildren is the ordered StyledDom child id
	// list the text engine's content-collection walk starts from — per
	// spec.md §4.3.2, IFC content collection walks styled-DOM children
	// directly, never the layout tree's own child list.
	IsIFCRoot        bool
	InlineDomChildren []styleddom.NodeID

	// ColSpan/RowSpan are copied from the styled node's ComputedStyle by
	// the builder and read by the table formatting context's
	// structural-analysis phase (§4.3.4 item 1) for nodes with
	// FC == FCTableCell. ColumnIndex/RowIndex are not filled in; the cell's
	// grid slot is kept in tablefc.Structure instead.
	ColumnIndex, RowIndex, ColSpan, RowSpan int
}

// IsAnonymous reports whether n has no back-reference to a styled-DOM node.
func (n Node) IsAnonymous() bool {
	return n.DomNode == styleddom.NoNode && n.PseudoKind == PseudoNone
}

// Viewport is the root sizing input alongside a StyledDom.
type Viewport struct {
	Width, Height dimen.DU
}

// Tree is the arena-backed layout tree: a root index plus the node arena.
type Tree struct {
	Arena *tree.Arena[Node]
	Root  int
}

// Walk visits every node of t in document order.
func (t *Tree) Walk(visit func(idx int, n Node)) {
	t.Arena.Walk(t.Root, visit)
}
