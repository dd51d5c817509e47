package flexfc

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/cssval"
	"github.com/solver3/solver3/fc"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom"
)

// Item is one flex item's resolved main/cross-axis inputs, derived from
// its layout node before calling Layout.
type Item struct {
	NodeIdx int

	Basis          dimen.DU // hypothetical main size before grow/shrink
	MinMain, MaxMain dimen.DU
	Grow, Shrink   float64

	CrossSize     dimen.DU // 0 when stretch-eligible, per spec.md §4.3.3
	StretchEligible bool
	MinCross, MaxCross dimen.DU

	MarginMainStart, MarginMainEnd   dimen.DU
	MarginMainStartAuto, MarginMainEndAuto bool
	MarginCrossStart, MarginCrossEnd dimen.DU
}

// ItemFromNode derives a flex Item from n, the containing flex container's
// content-box main size (parentMainSize, per spec.md §4.3.3's "parent_size
// is the containing block's content-box size" rule), and whether the axis
// is row (horizontal main axis) or column.
func ItemFromNode(idx int, n layouttree.Node, parentMainSize dimen.DU, row bool) Item {
	basis, ok := n.Style.FlexBasis.Resolve(parentMainSize)
	if !ok {
		if row {
			basis = n.Intrinsic.MaxContentWidth
		} else {
			basis = n.UsedSize.Y
		}
	}

	minMain, maxMain := mainClampBounds(n, row, parentMainSize)

	alignSelf := n.Style.AlignSelf
	if alignSelf == "" {
		alignSelf = styleddom.AlignStretch
	}
	stretchEligible := alignSelf == styleddom.AlignStretch && crossSizeIsAuto(n, row)

	item := Item{
		NodeIdx: idx,
		Basis:   dimen.Clamp(basis, minMain, maxMain),
		MinMain: minMain, MaxMain: maxMain,
		Grow: n.Style.FlexGrow, Shrink: n.Style.FlexShrink,
		StretchEligible: stretchEligible,
	}
	if !stretchEligible {
		if row {
			item.CrossSize = n.UsedSize.Y
		} else {
			item.CrossSize = n.UsedSize.X
		}
	}

	if row {
		item.MarginMainStart, item.MarginMainStartAuto = marginOrAuto(n.Style.Margin.Left)
		item.MarginMainEnd, item.MarginMainEndAuto = marginOrAuto(n.Style.Margin.Right)
		item.MarginCrossStart, _ = marginOrAuto(n.Style.Margin.Top)
		item.MarginCrossEnd, _ = marginOrAuto(n.Style.Margin.Bottom)
	} else {
		item.MarginMainStart, item.MarginMainStartAuto = marginOrAuto(n.Style.Margin.Top)
		item.MarginMainEnd, item.MarginMainEndAuto = marginOrAuto(n.Style.Margin.Bottom)
		item.MarginCrossStart, _ = marginOrAuto(n.Style.Margin.Left)
		item.MarginCrossEnd, _ = marginOrAuto(n.Style.Margin.Right)
	}
	return item
}

// marginOrAuto resolves a margin CSS value: `auto` resolves to length zero,
// and an explicitly written auto is reported via the second return value
// (IsAuto reports only an explicit `auto` keyword, not an unset value).
// Layout does not read that flag: auto margins take no share of the free
// space, so they do not center or push an item.
func marginOrAuto(v cssval.Value) (dimen.DU, bool) {
	if v.IsAuto() {
		return 0, true
	}
	d, _ := v.Resolve(0)
	return d, false
}

func mainClampBounds(n layouttree.Node, row bool, parentMainSize dimen.DU) (dimen.DU, dimen.DU) {
	var minV, maxV cssval.Value
	if row {
		minV, maxV = n.Style.MinWidth, n.Style.MaxWidth
	} else {
		minV, maxV = n.Style.MinHeight, n.Style.MaxHeight
	}
	min, hasMin := minV.Resolve(parentMainSize)
	if !hasMin {
		min = 0
	}
	max, hasMax := maxV.Resolve(parentMainSize)
	if !hasMax {
		max = dimen.Infty // max-*: auto stays unbounded, per spec.md §4.3.3
	}
	return min, max
}

func crossSizeIsAuto(n layouttree.Node, row bool) bool {
	if row {
		return n.Style.Height.IsAuto() || n.Style.Height.IsNone()
	}
	return n.Style.Width.IsAuto() || n.Style.Width.IsNone()
}

// Layout distributes free main-axis space among items (grow when there is
// slack, shrink when there is overflow, proportional to shrink*basis per
// the CSS Flexible Box main-size resolution), then aligns each item on the
// cross axis, defaulting to stretch. direction selects the main axis:
// column is vertical, anything else horizontal.
func Layout(items []Item, containerMainSize, containerCrossSize dimen.DU, direction styleddom.FlexDirection) fc.LayoutOutput {
	row := direction != styleddom.FlexColumn

	used := mainAxisUsedSpace(items)
	free := containerMainSize - used

	mainSizes := make([]dimen.DU, len(items))
	switch {
	case free > 0:
		sumGrow := 0.0
		for _, it := range items {
			sumGrow += it.Grow
		}
		for i, it := range items {
			size := it.Basis
			if sumGrow > 0 {
				size += dimen.DU(float64(free) * it.Grow / sumGrow)
			}
			mainSizes[i] = dimen.Clamp(size, it.MinMain, it.MaxMain)
		}
	case free < 0:
		weightSum := 0.0
		weights := make([]float64, len(items))
		for i, it := range items {
			weights[i] = it.Shrink * float64(it.Basis)
			weightSum += weights[i]
		}
		deficit := -free
		for i, it := range items {
			size := it.Basis
			if weightSum > 0 {
				size -= dimen.DU(float64(deficit) * weights[i] / weightSum)
			}
			mainSizes[i] = dimen.Clamp(size, it.MinMain, it.MaxMain)
		}
	default:
		for i, it := range items {
			mainSizes[i] = it.Basis
		}
	}

	lineCross := containerCrossSize
	for _, it := range items {
		if !it.StretchEligible && it.CrossSize > lineCross {
			lineCross = it.CrossSize
		}
	}

	out := fc.NewLayoutOutput()
	var pen dimen.DU
	var maxCrossUsed dimen.DU
	for i, it := range items {
		if it.MarginMainStartAuto {
			pen += 0 // auto-margin free-space partitioning is a later refinement; treated as 0 for now
		} else {
			pen += it.MarginMainStart
		}

		crossPos := it.MarginCrossStart
		crossSize := it.CrossSize
		if it.StretchEligible {
			crossSize = dimen.Clamp(lineCross-it.MarginCrossStart-it.MarginCrossEnd, it.MinCross, orInfty(it.MaxCross))
		}

		if row {
			out.Positions[it.NodeIdx] = dimen.Point{X: pen, Y: crossPos}
		} else {
			out.Positions[it.NodeIdx] = dimen.Point{X: crossPos, Y: pen}
		}
		pen += mainSizes[i] + it.MarginMainEnd
		if used := crossSize + it.MarginCrossStart + it.MarginCrossEnd; used > maxCrossUsed {
			maxCrossUsed = used
		}
	}

	if row {
		out.OverflowSize = dimen.Point{X: pen, Y: maxCrossUsed}
	} else {
		out.OverflowSize = dimen.Point{X: maxCrossUsed, Y: pen}
	}
	return out
}

func mainAxisUsedSpace(items []Item) dimen.DU {
	var sum dimen.DU
	for _, it := range items {
		sum += it.Basis + it.MarginMainStart + it.MarginMainEnd
	}
	return sum
}

func orInfty(d dimen.DU) dimen.DU {
	if d == 0 {
		return dimen.Infty
	}
	return d
}
