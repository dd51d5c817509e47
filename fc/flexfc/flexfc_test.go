package flexfc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/cssval"
	"github.com/solver3/solver3/fc/flexfc"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom"
)

func nodeWithAutoHeight() layouttree.Node {
	return layouttree.Node{
		Style: styleddom.ComputedStyle{
			Width:    cssval.Just(100 * dimen.PX),
			Height:   cssval.Auto(),
			AlignSelf: styleddom.AlignStretch,
		},
	}
}

func TestLayoutGrowDistributesFreeSpace(t *testing.T) {
	items := []flexfc.Item{
		{NodeIdx: 1, Basis: 100 * dimen.PX, Grow: 1, MaxMain: dimen.Infty},
		{NodeIdx: 2, Basis: 100 * dimen.PX, Grow: 1, MaxMain: dimen.Infty},
	}
	out := flexfc.Layout(items, 400*dimen.PX, 50*dimen.PX, styleddom.FlexRow)
	assert.Equal(t, dimen.DU(0), out.Positions[1].X)
	assert.Equal(t, 200*dimen.PX, out.Positions[2].X)
}

func TestLayoutShrinkProportionalToBasis(t *testing.T) {
	items := []flexfc.Item{
		{NodeIdx: 1, Basis: 300 * dimen.PX, Shrink: 1, MaxMain: dimen.Infty},
		{NodeIdx: 2, Basis: 100 * dimen.PX, Shrink: 1, MaxMain: dimen.Infty},
	}
	out := flexfc.Layout(items, 300*dimen.PX, 50*dimen.PX, styleddom.FlexRow)
	// total basis 400, deficit 100, weights 300 and 100 -> shrink 75 and 25
	assert.Equal(t, 225*dimen.PX, out.Positions[2].X-out.Positions[1].X)
}

func TestLayoutStretchEligibleGetsLineCrossSize(t *testing.T) {
	items := []flexfc.Item{
		{NodeIdx: 1, Basis: 100 * dimen.PX, MaxMain: dimen.Infty, StretchEligible: true, MaxCross: dimen.Infty},
	}
	out := flexfc.Layout(items, 200*dimen.PX, 80*dimen.PX, styleddom.FlexRow)
	assert.Equal(t, 80*dimen.PX, out.OverflowSize.Y)
}

func TestItemFromNodeStretchEligibleReportsZeroCrossSize(t *testing.T) {
	n := nodeWithAutoHeight()
	item := flexfc.ItemFromNode(1, n, 400*dimen.PX, true)
	assert.True(t, item.StretchEligible)
	assert.Equal(t, dimen.DU(0), item.CrossSize)
}
