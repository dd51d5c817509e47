package bfc

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/fc"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom"
)

// AbsoluteChild records a child set aside during stacking because it is
// absolutely or fixed positioned — its own contribution to the BFC's main
// axis is zero, per spec.md §4.3.1; it is placed later against its
// containing block (the nearest positioned ancestor) by a separate pass.
type AbsoluteChild struct {
	NodeIdx  int
	Position styleddom.Position
}

// Result is a BFC's LayoutOutput plus the absolutely positioned children
// it deferred.
type Result struct {
	fc.LayoutOutput
	Deferred []AbsoluteChild
}

// Layout stacks the in-flow block-level children given by kids (in
// document order) along the block axis. floats is the BFC's float
// registry, shared across the whole BFC (floats introduced by earlier
// siblings affect clearance queries for later ones).
func Layout(t *layouttree.Tree, kids []int, floats *fc.FloatContext) Result {
	out := fc.NewLayoutOutput()
	res := Result{LayoutOutput: out}

	var mainPen dimen.DU
	var lastMarginEnd dimen.DU

	for _, kidIdx := range kids {
		child, ok := t.Arena.Get(kidIdx)
		if !ok {
			continue
		}

		if child.Style.Position == styleddom.PositionAbsolute || child.Style.Position == styleddom.PositionFixed {
			res.Deferred = append(res.Deferred, AbsoluteChild{NodeIdx: kidIdx, Position: child.Style.Position})
			continue
		}

		if child.Style.Float != styleddom.FloatNone {
			placeFloat(t, kidIdx, child, mainPen, lastMarginEnd, floats)
			continue
		}

		if child.Style.Clear != styleddom.ClearNone {
			edge := floats.ClearanceEdge(child.Style.Clear)
			if edge > mainPen {
				mainPen = edge
			}
			lastMarginEnd = 0
		}

		collapsed := collapseMargins(lastMarginEnd, child.Margin.Top)
		pos := dimen.Point{X: child.Margin.Left, Y: mainPen + collapsed}
		res.Positions[kidIdx] = pos

		mainPen += collapsed + child.UsedSize.Y
		lastMarginEnd = child.Margin.Bottom
	}

	res.OverflowSize = dimen.Point{Y: mainPen + lastMarginEnd}
	return res
}

// placeFloat registers kid into floats at the first main-axis coordinate
// at or after mainPen/lastMarginEnd where it fits, per spec.md §4.3.5.
// Horizontal stacking among already-floated siblings on the same side is
// modeled by offsetting from the rightmost (or leftmost) existing float at
// an overlapping vertical band, rather than a full shelf-packing search,
// matching the spec's "advance main coordinate until space is available"
// description for the common single-column float case.
func placeFloat(t *layouttree.Tree, idx int, child layouttree.Node, mainPen, lastMarginEnd dimen.DU, floats *fc.FloatContext) {
	top := dimen.Max(mainPen, lastMarginEnd)
	width := child.UsedSize.X + child.Margin.Left + child.Margin.Right
	height := child.UsedSize.Y + child.Margin.Top + child.Margin.Bottom

	var x dimen.DU
	for _, f := range floats.All() {
		if f.Side != child.Style.Float {
			continue
		}
		if f.MarginBox.TopL.Y >= top+height || f.MarginBox.BotR.Y <= top {
			continue // no vertical overlap with this band
		}
		if child.Style.Float == styleddom.FloatLeft && f.MarginBox.BotR.X > x {
			x = f.MarginBox.BotR.X
		}
	}

	box := dimen.Rect{
		TopL: dimen.Point{X: x, Y: top},
		BotR: dimen.Point{X: x + width, Y: top + height},
	}
	floats.Add(fc.FloatEntry{NodeIdx: idx, Side: child.Style.Float, MarginBox: box})
}

// collapseMargins implements spec.md §4.3.1's collapse rule: two positive
// margins collapse to their max, two negative to their min, mixed sign
// sums.
func collapseMargins(a, b dimen.DU) dimen.DU {
	switch {
	case a >= 0 && b >= 0:
		return dimen.Max(a, b)
	case a <= 0 && b <= 0:
		return dimen.Min(a, b)
	default:
		return a + b
	}
}
