package bfc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/fc"
	"github.com/solver3/solver3/fc/bfc"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/tree"
)

func newTree(nodes ...layouttree.Node) (*layouttree.Tree, []int) {
	arena := tree.NewArena[layouttree.Node]()
	root := arena.New(layouttree.Node{FC: layouttree.FCBlock}, tree.NoIndex)
	var ids []int
	for _, n := range nodes {
		ids = append(ids, arena.New(n, root))
	}
	return &layouttree.Tree{Arena: arena, Root: root}, ids
}

func TestBFCStacksWithoutMarginsAdjacent(t *testing.T) {
	a := layouttree.Node{UsedSize: dimen.Point{Y: 40 * dimen.PX}}
	b := layouttree.Node{UsedSize: dimen.Point{Y: 40 * dimen.PX}}
	lt, ids := newTree(a, b)

	out := bfc.Layout(lt, ids, &fc.FloatContext{})
	assert.Equal(t, dimen.DU(0), out.Positions[ids[0]].Y)
	assert.Equal(t, 40*dimen.PX, out.Positions[ids[1]].Y)
	assert.Equal(t, 80*dimen.PX, out.OverflowSize.Y)
}

func TestBFCCollapsesPositiveMargins(t *testing.T) {
	a := layouttree.Node{UsedSize: dimen.Point{Y: 40 * dimen.PX}, Margin: layouttree.BoxEdges{Bottom: 20 * dimen.PX}}
	b := layouttree.Node{UsedSize: dimen.Point{Y: 40 * dimen.PX}, Margin: layouttree.BoxEdges{Top: 30 * dimen.PX}}
	lt, ids := newTree(a, b)

	out := bfc.Layout(lt, ids, &fc.FloatContext{})
	// max(20,30) = 30, not 50 (sum).
	assert.Equal(t, 40*dimen.PX+30*dimen.PX, out.Positions[ids[1]].Y)
}

func TestBFCMixedSignMarginsSum(t *testing.T) {
	a := layouttree.Node{UsedSize: dimen.Point{Y: 40 * dimen.PX}, Margin: layouttree.BoxEdges{Bottom: 20 * dimen.PX}}
	b := layouttree.Node{UsedSize: dimen.Point{Y: 40 * dimen.PX}, Margin: layouttree.BoxEdges{Top: -10 * dimen.PX}}
	lt, ids := newTree(a, b)

	out := bfc.Layout(lt, ids, &fc.FloatContext{})
	assert.Equal(t, 40*dimen.PX+10*dimen.PX, out.Positions[ids[1]].Y)
}

func TestBFCDefersAbsolutelyPositionedChildren(t *testing.T) {
	a := layouttree.Node{UsedSize: dimen.Point{Y: 40 * dimen.PX}}
	b := layouttree.Node{Style: styleddom.ComputedStyle{Position: styleddom.PositionAbsolute}}
	lt, ids := newTree(a, b)

	out := bfc.Layout(lt, ids, &fc.FloatContext{})
	require.Len(t, out.Deferred, 1)
	assert.Equal(t, ids[1], out.Deferred[0].NodeIdx)
	assert.Equal(t, 40*dimen.PX, out.OverflowSize.Y)
}

func TestBFCClearanceAdvancesPastFloat(t *testing.T) {
	floats := &fc.FloatContext{}
	floats.Add(fc.FloatEntry{
		Side:      styleddom.FloatLeft,
		MarginBox: dimen.Rect{TopL: dimen.Point{X: 0, Y: 0}, BotR: dimen.Point{X: 100 * dimen.PX, Y: 200 * dimen.PX}},
	})

	cleared := layouttree.Node{
		UsedSize: dimen.Point{Y: 10 * dimen.PX},
		Style:    styleddom.ComputedStyle{Clear: styleddom.ClearLeft},
	}
	lt, ids := newTree(cleared)

	out := bfc.Layout(lt, ids, floats)
	assert.Equal(t, 200*dimen.PX, out.Positions[ids[0]].Y)
}
