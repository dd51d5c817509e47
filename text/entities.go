package text

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/styleddom"
)

// StyledRun is a contiguous text fragment carrying exactly one computed
// style, produced while walking the inline content tree (spec.md §3).
type StyledRun struct {
	Text   string
	Style  styleddom.ComputedStyle
	Origin styleddom.NodeID
}

// ContentKind discriminates an InlineContent item.
type ContentKind int

const (
	ContentText ContentKind = iota
	ContentImage
	ContentShape
	ContentSpace
	ContentTab
	ContentBreak
)

// InlineContent is one item collected while walking an IFC root's children:
// styled text, an atomic inline (image/shape), an explicit space/tab run, or
// a forced line break.
type InlineContent struct {
	Kind     ContentKind
	Run      StyledRun
	Size     dimen.Point
	Baseline dimen.DU
	Breaking bool
	Origin   styleddom.NodeID
}

// LogicalItem is a span of text after itemization: cut at style boundaries,
// atomic inlines, bidi level boundaries, and script-run boundaries, in
// logical (source) order.
type LogicalItem struct {
	Text        string
	Style       styleddom.ComputedStyle
	BidiLevel   int
	Script      string
	SourceStart int
	SourceEnd   int
	Origin      styleddom.NodeID
}

// VisualItem is a LogicalItem reordered into visual (left-to-right paint)
// order by the bidi stage.
type VisualItem struct {
	LogicalItem
	VisualIndex int
}

// ShapedCluster is the shaper's output for one sub-run sharing a single
// resolved font: one or more glyphs for one or more source grapheme
// clusters.
type ShapedCluster struct {
	Glyphs       []uint32
	Advances     []dimen.DU
	ClusterStart int
	ClusterEnd   int
	FontID       string
	Style        styleddom.ComputedStyle
}

// PositionedGlyph is one glyph placed within an IFC's local coordinate
// space, ready for the display-list stage.
type PositionedGlyph struct {
	GlyphID     uint32
	Position    dimen.Point
	Advance     dimen.DU
	FontID      string
	Color       string
	SourceIndex int
}

// Line is one laid-out line of an inline formatting context.
type Line struct {
	Glyphs       []PositionedGlyph
	Width        dimen.DU
	Height       dimen.DU
	Baseline     dimen.DU
	BlockOffset  dimen.DU
	Justified    bool
	TrailingHyphen bool
}

// UnifiedLayout is the complete output of laying out one inline formatting
// context: its lines, overall size, and first-line baseline — stored as the
// IFC root's inline_layout_result.
type UnifiedLayout struct {
	Lines         []Line
	OverflowSize  dimen.Point
	Baseline      dimen.DU
}
