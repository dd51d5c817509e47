package sizing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/core/percent"
	"github.com/solver3/solver3/cssval"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/sizing"
	"github.com/solver3/solver3/styleddom"
)

func TestResolveWidthAutoFillsAvailable(t *testing.T) {
	n := layouttree.Node{Style: styleddom.ComputedStyle{Width: cssval.Auto()}}
	got := sizing.ResolveWidth(n, 800*dimen.PX, false)
	assert.Equal(t, 800*dimen.PX, got)
}

func TestResolveWidthFixedLength(t *testing.T) {
	n := layouttree.Node{Style: styleddom.ComputedStyle{Width: cssval.Just(200 * dimen.PX)}}
	got := sizing.ResolveWidth(n, 800*dimen.PX, false)
	assert.Equal(t, 200*dimen.PX, got)
}

func TestResolveWidthBorderBoxSubtractsDecoration(t *testing.T) {
	n := layouttree.Node{
		Style: styleddom.ComputedStyle{
			Width:     cssval.Just(200 * dimen.PX),
			BoxSizing: styleddom.BoxSizingBorder,
		},
		Padding: layouttree.BoxEdges{Left: 10 * dimen.PX, Right: 10 * dimen.PX},
		Border:  layouttree.BoxEdges{Left: 5 * dimen.PX, Right: 5 * dimen.PX},
	}
	got := sizing.ResolveWidth(n, 800*dimen.PX, false)
	assert.Equal(t, 170*dimen.PX, got)
}

func TestResolveWidthShrinkToFitClampsToMaxContent(t *testing.T) {
	n := layouttree.Node{
		Style: styleddom.ComputedStyle{Width: cssval.Auto()},
		Intrinsic: layouttree.IntrinsicSizes{
			MinContentWidth: 20 * dimen.PX,
			MaxContentWidth: 120 * dimen.PX,
		},
	}
	got := sizing.ResolveWidth(n, 800*dimen.PX, true)
	assert.Equal(t, 120*dimen.PX, got)
}

func TestResolveExplicitHeightAutoIsDeferred(t *testing.T) {
	n := layouttree.Node{Style: styleddom.ComputedStyle{Height: cssval.Auto()}}
	_, ok := sizing.ResolveExplicitHeight(n, 600*dimen.PX)
	assert.False(t, ok)
}

func TestResolveExplicitHeightFixed(t *testing.T) {
	n := layouttree.Node{Style: styleddom.ComputedStyle{Height: cssval.Just(40 * dimen.PX)}}
	h, ok := sizing.ResolveExplicitHeight(n, 600*dimen.PX)
	assert.True(t, ok)
	assert.Equal(t, 40*dimen.PX, h)
}

func TestResolveEdgesPercentResolvesAgainstWidth(t *testing.T) {
	s := styleddom.Sides{
		Top:    cssval.Percentage(percent.FromInt(10)),
		Bottom: cssval.Percentage(percent.FromInt(10)),
	}
	edges := sizing.ResolveEdges(s, 400*dimen.PX)
	assert.Equal(t, 40*dimen.PX, edges.Top)
	assert.Equal(t, 40*dimen.PX, edges.Bottom)
}

func TestResolveBordersNoneStyleIsZeroWidth(t *testing.T) {
	b := styleddom.BorderEdges{
		Top: styleddom.BorderEdge{Width: cssval.Just(5 * dimen.PX), Style: styleddom.BorderNone},
		Left: styleddom.BorderEdge{Width: cssval.Just(3 * dimen.PX), Style: styleddom.BorderSolid},
	}
	edges := sizing.ResolveBorders(b, 400*dimen.PX)
	assert.Equal(t, dimen.DU(0), edges.Top)
	assert.Equal(t, 3*dimen.PX, edges.Left)
}
