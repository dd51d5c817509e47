/*
Package solver3 wires every per-stage package (layouttree, sizing, fc and
its formatting-context subpackages, text/measure, counters, displaylist)
into the single entry point spec.md §7 names: LayoutDocument. Each stage
was built and tested independently; this file is where they are run in
the order a layout engine actually needs: build the tree, size it bottom
up, position it top down dispatching to the right formatting context per
node, then walk the positioned tree into a display list.
*/
package solver3

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/counters"
	"github.com/solver3/solver3/displaylist"
	"github.com/solver3/solver3/fc"
	"github.com/solver3/solver3/fc/bfc"
	"github.com/solver3/solver3/fc/flexfc"
	"github.com/solver3/solver3/fc/tablefc"
	"github.com/solver3/solver3/fontfallback"
	"github.com/solver3/solver3/layouterr"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/shapes"
	"github.com/solver3/solver3/sizing"
	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text/measure"
)

// T returns the root package's tracer.
func T() tracing.Trace {
	return gtrace.EngineTracer
}

// defaultFonts is the module-wide font-fallback resolver used when a
// caller does not supply one, mirroring fontregistry's own
// package-level GlobalRegistry singleton.
var defaultFonts = fontfallback.NewResolver()

// LayoutDocument builds a layout tree from dom, sizes and positions every
// node against viewport, and returns the resulting display list. Errors
// recovered along the way (spec.md §7) are returned alongside a
// still-usable display list rather than aborting the pass.
func LayoutDocument(dom styleddom.StyledDom, viewport layouttree.Viewport) (*displaylist.DisplayList, []layouterr.RecoveredError) {
	t, e := runLayout(dom, viewport)
	dl, _ := displaylist.Generate(t)
	return dl, e.errs
}

// runLayout builds, sizes and positions a layout tree for dom, returning the
// tree itself alongside the engine that produced it. Split out of
// LayoutDocument so tests can inspect intermediate node state (markers,
// used sizes) that the display list alone doesn't expose.
func runLayout(dom styleddom.StyledDom, viewport layouttree.Viewport) (*layouttree.Tree, *engine) {
	t := layouttree.Build(dom)
	m := measure.NewMeasurer(defaultFonts)

	sizing.ComputeIntrinsic(t, dom, m)

	e := &engine{tree: t, dom: dom, measurer: m, scope: counters.NewScope()}
	e.layoutSubtree(t.Root, viewport.Width, false)
	return t, e
}

type engine struct {
	tree     *layouttree.Tree
	dom      styleddom.StyledDom
	measurer *measure.Measurer
	scope    *counters.Scope
	errs     []layouterr.RecoveredError
}

// layoutSubtree resolves idx's box edges and used width against
// containingWidth, sizes and positions its children per its formatting
// context, and sets its own used size. shrinkToFit selects shrink-to-fit
// width resolution for atomic/inline-block/float/absolute boxes.
func (e *engine) layoutSubtree(idx int, containingWidth dimen.DU, shrinkToFit bool) {
	n, ok := e.tree.Arena.Get(idx)
	if !ok {
		e.errs = append(e.errs, layouterr.InvalidTree(idx, styleddom.NoNode))
		return
	}

	n.Margin = sizing.ResolveEdges(n.Style.Margin, containingWidth)
	n.Padding = sizing.ResolveEdges(n.Style.Padding, containingWidth)
	n.Border = sizing.ResolveBorders(n.Style.Border, containingWidth)

	// Counter ops apply once per styled element: marker pseudo-nodes and
	// anonymous wrappers copy their element's style but do not re-apply it.
	if n.DomNode != styleddom.NoNode && n.PseudoKind == layouttree.PseudoNone {
		undoResets := e.scope.ApplyResets(counters.EffectiveResets(n.Style, e.isListContainer(n)))
		defer undoResets()
		e.scope.ApplyIncrements(counters.EffectiveIncrements(n.Style, n.FC == layouttree.FCListItem))
	}
	if n.PseudoKind == layouttree.PseudoMarker {
		e.formatMarker(&n)
	}

	contentWidth := sizing.ResolveWidth(n, containingWidth, shrinkToFit)
	decoration := n.Padding.Left + n.Padding.Right + n.Border.Left + n.Border.Right

	var contentHeight dimen.DU
	switch {
	case n.IsIFCRoot:
		contentHeight = e.layoutInline(idx, &n, contentWidth)
	case fc.Dispatch(n) == layouttree.FCTable:
		contentHeight = e.layoutTable(idx, &n, contentWidth)
	case fc.Dispatch(n) == layouttree.FCFlex:
		contentHeight = e.layoutFlex(idx, &n, contentWidth)
	default:
		contentHeight = e.layoutBlockChildren(idx, &n, contentWidth)
	}

	if h, ok := sizing.ResolveExplicitHeight(n, dimen.DU(0)); ok {
		contentHeight = h
	}

	n.UsedSize = dimen.Point{
		X: contentWidth + decoration,
		Y: contentHeight + n.Padding.Top + n.Padding.Bottom + n.Border.Top + n.Border.Bottom,
	}
	e.tree.Arena.Set(idx, n)
}

// isListContainer reports whether n is an <ol>/<ul> element, the user-agent
// rule spec.md §4.3.6 resets the implicit list-item counter on.
func (e *engine) isListContainer(n layouttree.Node) bool {
	if n.DomNode == styleddom.NoNode {
		return false
	}
	tag := e.dom.Tag(n.DomNode)
	return tag == "ol" || tag == "ul"
}

// segmentsFor returns the per-line available-width function an IFC root's
// style implies: the full content width normally, or the shape-inside
// function's chord at each line's vertical offset when one is set
// (spec.md §4.3.5's "shape-aware line fitting").
func segmentsFor(style styleddom.ComputedStyle, contentWidth dimen.DU) func(y, h dimen.DU) []shapes.Segment {
	if style.ShapeInside == "" {
		return func(dimen.DU, dimen.DU) []shapes.Segment {
			return shapes.FullLine(contentWidth)
		}
	}
	shape, err := shapes.Parse(style.ShapeInside)
	if err != nil {
		return func(dimen.DU, dimen.DU) []shapes.Segment {
			return shapes.FullLine(contentWidth)
		}
	}
	return func(y, _ dimen.DU) []shapes.Segment {
		seg, ok := shape.ChordAt(y, contentWidth, dimen.Infty)
		if !ok {
			return nil
		}
		return []shapes.Segment{seg}
	}
}

func (e *engine) formatMarker(n *layouttree.Node) {
	value := e.scope.Value(counters.ListItemCounterName)
	text := counters.FormatMarker(value, n.Style.ListStyleType)
	if text != "" && isOrdinalListStyle(n.Style.ListStyleType) {
		text += "."
	}
	_, maxW, lh := e.measurer.MeasureIntrinsic(e.dom, nil, n.Style)
	n.Marker = &layouttree.MarkerInfo{
		Text:     text,
		Width:    maxW,
		Baseline: lh,
		Position: n.Style.ListStylePosition,
	}
}

// isOrdinalListStyle reports whether listStyleType renders as a counted
// value (vs. a fixed bullet glyph), per CSS's UA stylesheet default
// `::marker` content of "<counter>. " for ordinal list styles.
func isOrdinalListStyle(listStyleType styleddom.ListStyleType) bool {
	switch listStyleType {
	case styleddom.ListDisc, styleddom.ListCircle, styleddom.ListSquare, styleddom.ListNone:
		return false
	}
	return true
}

// layoutInline runs the text-measurement pipeline for an IFC root, taking
// each line's segments from segmentsFor: the full content width, or the
// shape-inside chord when one is set. Floats are not subtracted from the
// line segments; text beside a float is laid out at the full width.
func (e *engine) layoutInline(idx int, n *layouttree.Node, contentWidth dimen.DU) dimen.DU {
	available := segmentsFor(n.Style, contentWidth)
	layout := e.measurer.Layout(e.dom, n.InlineDomChildren, n.Style, available)
	if len(layout.Lines) == 0 && len(n.InlineDomChildren) > 0 {
		e.errs = append(e.errs, layouterr.SizingFailed(idx, n.DomNode))
	}
	n.InlineLayoutResult = layout
	n.Baseline = layout.Baseline
	return layout.OverflowSize.Y
}

// layoutBlockChildren recurses into idx's in-flow children (sizing each
// against contentWidth before the block formatting context stacks them,
// since bfc.Layout consumes each child's already-resolved UsedSize and
// Margin), then writes the BFC's positions back onto the tree.
func (e *engine) layoutBlockChildren(idx int, n *layouttree.Node, contentWidth dimen.DU) dimen.DU {
	kids := e.tree.Arena.Children(idx)
	for _, kidIdx := range kids {
		kid, ok := e.tree.Arena.Get(kidIdx)
		if !ok {
			continue
		}
		shrink := kid.Style.Position == styleddom.PositionAbsolute ||
			kid.Style.Position == styleddom.PositionFixed ||
			kid.Style.Float != styleddom.FloatNone ||
			kid.Style.Display == styleddom.DisplayInlineBlock
		e.layoutSubtree(kidIdx, contentWidth, shrink)
	}

	floats := &fc.FloatContext{}
	res := bfc.Layout(e.tree, kids, floats)
	e.applyPositions(res.LayoutOutput)

	for _, d := range res.Deferred {
		e.layoutAbsolute(d.NodeIdx, contentWidth)
	}
	return res.OverflowSize.Y
}

// layoutAbsolute sizes an absolutely/fixed positioned child deferred by
// the block formatting context (spec.md §4.3.1). ComputedStyle carries no
// top/right/bottom/left offset properties, so every deferred box is
// placed at its containing block's origin (the CSS "auto" resolution for
// all four offsets) — a documented limitation until that collaborator
// contract grows inset properties.
func (e *engine) layoutAbsolute(idx int, containingWidth dimen.DU) {
	e.layoutSubtree(idx, containingWidth, true)
	n, ok := e.tree.Arena.Get(idx)
	if !ok {
		return
	}
	n.RelativePosition = dimen.Point{}
	e.tree.Arena.Set(idx, n)
}

func (e *engine) layoutFlex(idx int, n *layouttree.Node, contentWidth dimen.DU) dimen.DU {
	kids := e.tree.Arena.Children(idx)
	row := n.Style.FlexDirection == "" || n.Style.FlexDirection == styleddom.FlexRow
	mainSize := contentWidth
	if !row {
		mainSize = dimen.Infty
	}

	for _, kidIdx := range kids {
		e.layoutSubtree(kidIdx, contentWidth, true)
	}

	items := make([]flexfc.Item, 0, len(kids))
	for _, kidIdx := range kids {
		kid, ok := e.tree.Arena.Get(kidIdx)
		if !ok {
			continue
		}
		items = append(items, flexfc.ItemFromNode(kidIdx, kid, mainSize, row))
	}

	crossSize := contentWidth
	out := flexfc.Layout(items, mainSize, crossSize, n.Style.FlexDirection)
	e.applyPositions(out)
	return out.OverflowSize.Y
}

// layoutTable runs the table structural/sizing phases, recursing into
// each cell with its spanned column width once columns are known, then
// applies the resulting grid positions.
func (e *engine) layoutTable(idx int, n *layouttree.Node, contentWidth dimen.DU) dimen.DU {
	s := tablefc.Analyze(e.tree, idx)
	e.fillCellIntrinsics(s)

	spacing := dimen.DU(0)
	if n.Style.BorderCollapse != styleddom.BorderCollapsed {
		if v, ok := n.Style.BorderSpacingH.Resolve(0); ok {
			spacing = v
		}
	}
	colWidths := tablefc.ColumnWidths(e.tree, s, n.Style.TableLayout, contentWidth, spacing)

	for _, c := range s.Cells {
		span := dimen.DU(0)
		for i := c.Col; i < c.Col+c.ColSpan && i < len(colWidths); i++ {
			span += colWidths[i]
		}
		e.layoutSubtree(c.NodeIdx, span, false)
	}
	for _, capIdx := range s.CaptionIdx {
		e.layoutSubtree(capIdx, contentWidth, false)
	}

	res := tablefc.Layout(e.tree, idx, contentWidth)
	e.applyPositions(res.LayoutOutput)
	return res.OverflowSize.Y
}

// fillCellIntrinsics aggregates each cell's own intrinsic sizes from its
// already-sized descendants, the step sizing.ComputeIntrinsic leaves to
// table layout rather than doing itself.
func (e *engine) fillCellIntrinsics(s tablefc.Structure) {
	for _, c := range s.Cells {
		var agg layouttree.IntrinsicSizes
		for _, childIdx := range e.tree.Arena.Children(c.NodeIdx) {
			child, ok := e.tree.Arena.Get(childIdx)
			if !ok {
				continue
			}
			agg.MinContentWidth = dimen.Max(agg.MinContentWidth, child.Intrinsic.MinContentWidth)
			agg.MaxContentWidth = dimen.Max(agg.MaxContentWidth, child.Intrinsic.MaxContentWidth)
			agg.MinContentHeight += child.Intrinsic.MinContentHeight
			agg.MaxContentHeight += child.Intrinsic.MaxContentHeight
		}
		cell, ok := e.tree.Arena.Get(c.NodeIdx)
		if !ok {
			continue
		}
		cell.Intrinsic = agg
		e.tree.Arena.Set(c.NodeIdx, cell)
	}
}

func (e *engine) applyPositions(out fc.LayoutOutput) {
	for idx, pos := range out.Positions {
		n, ok := e.tree.Arena.Get(idx)
		if !ok {
			continue
		}
		n.RelativePosition = pos
		e.tree.Arena.Set(idx, n)
	}
}
