package sizing

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/cssval"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom"
)

// ResolveEdges resolves a four-side CSS value (margin/padding/border-width)
// against the containing block's inline size: per CSS 2.2 §10.2, percentage
// margins and padding resolve against the containing block's *width* on
// every side, including top/bottom.
func ResolveEdges(s styleddom.Sides, containingWidth dimen.DU) layouttree.BoxEdges {
	resolve := func(v cssval.Value) dimen.DU {
		d, ok := v.Resolve(containingWidth)
		if !ok {
			return 0
		}
		return d
	}
	return layouttree.BoxEdges{
		Top:    resolve(s.Top),
		Right:  resolve(s.Right),
		Bottom: resolve(s.Bottom),
		Left:   resolve(s.Left),
	}
}

// ResolveBorders resolves a node's four physical border widths, treating a
// `none`/`hidden` style as a zero-width edge regardless of any specified
// width (CSS 2.2 §8.5.3).
func ResolveBorders(b styleddom.BorderEdges, containingWidth dimen.DU) layouttree.BoxEdges {
	resolve := func(e styleddom.BorderEdge) dimen.DU {
		if e.Style == styleddom.BorderNone || e.Style == styleddom.BorderHidden {
			return 0
		}
		d, ok := e.Width.Resolve(containingWidth)
		if !ok {
			return 0
		}
		return d
	}
	return layouttree.BoxEdges{
		Top:    resolve(b.Top),
		Right:  resolve(b.Right),
		Bottom: resolve(b.Bottom),
		Left:   resolve(b.Left),
	}
}

// ResolveWidth computes a node's used content-box width against the
// containing block's content width availableWidth, per spec.md §4.2:
// block-level auto fills available space minus its own margin/padding/
// border; inline-level (atomic) auto shrinks to fit, clamped to available;
// min-content/max-content/fit-content draw from the node's own intrinsic
// sizes; box-sizing: border-box subtracts padding+border from the
// specified size to land on a content-box width.
func ResolveWidth(n layouttree.Node, availableWidth dimen.DU, shrinkToFit bool) dimen.DU {
	decoration := n.Margin.Left + n.Margin.Right + n.Padding.Left + n.Padding.Right + n.Border.Left + n.Border.Right
	borderBoxDecoration := n.Padding.Left + n.Padding.Right + n.Border.Left + n.Border.Right

	auto := autoWidth(availableWidth, decoration, n.Intrinsic, shrinkToFit)
	resolved, _ := n.Style.Width.Resolve(availableWidth)

	w := cssval.Match[dimen.DU](n.Style.Width).OneOf(cssval.Patterns[dimen.DU]{
		Unset:      auto,
		Auto:       auto,
		Just:       resolved,
		Percent:    resolved,
		MinContent: n.Intrinsic.MinContentWidth,
		MaxContent: n.Intrinsic.MaxContentWidth,
		FitContent: dimen.Clamp(n.Intrinsic.MaxContentWidth, n.Intrinsic.MinContentWidth, availableWidth-decoration),
	})

	if n.Style.BoxSizing == styleddom.BoxSizingBorder {
		w -= borderBoxDecoration
		if w < 0 {
			w = 0
		}
	}

	minW, hasMin := n.Style.MinWidth.Resolve(availableWidth)
	if !hasMin {
		minW = 0
	}
	maxW, hasMax := n.Style.MaxWidth.Resolve(availableWidth)
	if !hasMax {
		maxW = dimen.Infty
	}
	return dimen.Clamp(w, minW, maxW)
}

func autoWidth(available, decoration dimen.DU, intrinsic layouttree.IntrinsicSizes, shrinkToFit bool) dimen.DU {
	fill := available - decoration
	if fill < 0 {
		fill = 0
	}
	if !shrinkToFit {
		return fill
	}
	return dimen.Clamp(intrinsic.MaxContentWidth, intrinsic.MinContentWidth, fill)
}

// ResolveExplicitHeight resolves a node's height when it is not auto
// (spec.md §4.2: height:auto is left to be determined after child layout
// by the owning formatting context, never by this pass). ok is false when
// the style's height is auto/unset/a content keyword.
func ResolveExplicitHeight(n layouttree.Node, containingHeight dimen.DU) (dimen.DU, bool) {
	if n.Style.Height.IsAuto() || n.Style.Height.IsNone() {
		return 0, false
	}
	h, ok := n.Style.Height.Resolve(containingHeight)
	if !ok {
		return 0, false
	}
	if n.Style.BoxSizing == styleddom.BoxSizingBorder {
		h -= n.Padding.Top + n.Padding.Bottom + n.Border.Top + n.Border.Bottom
		if h < 0 {
			h = 0
		}
	}
	minH, hasMin := n.Style.MinHeight.Resolve(containingHeight)
	if !hasMin {
		minH = 0
	}
	maxH, hasMax := n.Style.MaxHeight.Resolve(containingHeight)
	if !hasMax {
		maxH = dimen.Infty
	}
	return dimen.Clamp(h, minH, maxH), true
}
