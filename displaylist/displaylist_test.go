package displaylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
	"github.com/solver3/solver3/tree"
)

func px(n int) dimen.DU { return dimen.DU(n) * dimen.PX }

func newTestTree() (*layouttree.Tree, int, int) {
	arena := tree.NewArena[layouttree.Node]()
	root := arena.New(layouttree.Node{
		FC:       layouttree.FCBlock,
		UsedSize: dimen.Point{X: px(200), Y: px(100)},
		Style:    styleddom.ComputedStyle{BackgroundColor: "#ffffff"},
	}, tree.NoIndex)
	child := arena.New(layouttree.Node{
		FC:               layouttree.FCBlock,
		UsedSize:         dimen.Point{X: px(100), Y: px(50)},
		RelativePosition: dimen.Point{X: px(10), Y: px(10)},
		Style: styleddom.ComputedStyle{
			BackgroundColor: "#ff0000",
			Border: styleddom.BorderEdges{
				Top:    styleddom.BorderEdge{Style: styleddom.BorderSolid, Color: "#000000"},
				Right:  styleddom.BorderEdge{Style: styleddom.BorderSolid, Color: "#000000"},
				Bottom: styleddom.BorderEdge{Style: styleddom.BorderSolid, Color: "#000000"},
				Left:   styleddom.BorderEdge{Style: styleddom.BorderSolid, Color: "#000000"},
			},
		},
		Border: layouttree.BoxEdges{Top: px(2), Right: px(2), Bottom: px(2), Left: px(2)},
	}, root)
	return &layouttree.Tree{Arena: arena, Root: root}, root, child
}

func TestGenerateEmitsBackgroundThenBorderBeforeChildren(t *testing.T) {
	tr, root, child := newTestTree()
	dl, index := Generate(tr)
	require.NotEmpty(t, dl.Commands)

	var rootBgAt, childBgAt, childBorderAt = -1, -1, -1
	for i, c := range dl.Commands {
		switch {
		case c.Kind == CmdBackground && c.NodeIdx == root:
			rootBgAt = i
		case c.Kind == CmdBackground && c.NodeIdx == child:
			childBgAt = i
		case c.Kind == CmdBorder && c.NodeIdx == child:
			childBorderAt = i
		}
	}
	require.NotEqual(t, -1, rootBgAt)
	require.NotEqual(t, -1, childBgAt)
	require.NotEqual(t, -1, childBorderAt)
	assert.Less(t, rootBgAt, childBgAt, "parent paints before child")
	assert.Less(t, childBgAt, childBorderAt, "background paints before border on the same node")

	rootBoxes, ok := index[root]
	require.True(t, ok)
	assert.Equal(t, px(200), rootBoxes.Border.BotR.X-rootBoxes.Border.TopL.X)
}

func TestGenerateOutlineAfterChildren(t *testing.T) {
	tr, root, child := newTestTree()
	dl, _ := Generate(tr)

	var rootOutlineAt, childBgAt = -1, -1
	for i, c := range dl.Commands {
		switch {
		case c.Kind == CmdOutline && c.NodeIdx == root:
			rootOutlineAt = i
		case c.Kind == CmdBackground && c.NodeIdx == child:
			childBgAt = i
		}
	}
	require.NotEqual(t, -1, rootOutlineAt)
	require.NotEqual(t, -1, childBgAt)
	assert.Greater(t, rootOutlineAt, childBgAt, "outline paints on top of descendants")
}

func TestGenerateClipsOverflowHiddenNodes(t *testing.T) {
	arena := tree.NewArena[layouttree.Node]()
	root := arena.New(layouttree.Node{
		FC:       layouttree.FCBlock,
		UsedSize: dimen.Point{X: px(50), Y: px(50)},
		Style:    styleddom.ComputedStyle{Overflow: "hidden"},
	}, tree.NoIndex)
	arena.New(layouttree.Node{
		FC:       layouttree.FCBlock,
		UsedSize: dimen.Point{X: px(20), Y: px(20)},
		Style:    styleddom.ComputedStyle{BackgroundColor: "#00ff00"},
	}, root)
	tr := &layouttree.Tree{Arena: arena, Root: root}

	dl, _ := Generate(tr)
	var pushAt, popAt, childAt = -1, -1, -1
	for i, c := range dl.Commands {
		switch c.Kind {
		case CmdClipPush:
			pushAt = i
		case CmdClipPop:
			popAt = i
		case CmdBackground:
			if c.NodeIdx != root {
				childAt = i
			}
		}
	}
	require.NotEqual(t, -1, pushAt)
	require.NotEqual(t, -1, popAt)
	require.NotEqual(t, -1, childAt)
	assert.True(t, pushAt < childAt && childAt < popAt, "child paints between clip push/pop")
}

func TestGenerateSpatialIndexAccumulatesAbsolutePosition(t *testing.T) {
	tr, _, child := newTestTree()
	_, index := Generate(tr)
	childBoxes, ok := index[child]
	require.True(t, ok)
	assert.Equal(t, px(10), childBoxes.Border.TopL.X)
	assert.Equal(t, px(10), childBoxes.Border.TopL.Y)
}

func TestGenerateSuppressesEmptyCellPaintWhenEmptyCellsHide(t *testing.T) {
	arena := tree.NewArena[layouttree.Node]()
	root := arena.New(layouttree.Node{
		FC:       layouttree.FCTableCell,
		UsedSize: dimen.Point{X: px(40), Y: px(20)},
		Style: styleddom.ComputedStyle{
			BackgroundColor: "#ff0000",
			EmptyCellsHide:  true,
			Border: styleddom.BorderEdges{
				Top: styleddom.BorderEdge{Style: styleddom.BorderSolid, Color: "#000000"},
			},
		},
		Border: layouttree.BoxEdges{Top: px(1)},
	}, tree.NoIndex)
	tr := &layouttree.Tree{Arena: arena, Root: root}

	dl, _ := Generate(tr)
	for _, c := range dl.Commands {
		assert.NotEqual(t, CmdBackground, c.Kind)
		assert.NotEqual(t, CmdBorder, c.Kind)
	}
}

func TestGenerateVerticalWritingModeSwapsGlyphAxes(t *testing.T) {
	arena := tree.NewArena[layouttree.Node]()
	root := arena.New(layouttree.Node{
		FC:       layouttree.FCBlock,
		UsedSize: dimen.Point{X: px(100), Y: px(100)},
		Style:    styleddom.ComputedStyle{WritingModeVertical: true},
		InlineLayoutResult: &text.UnifiedLayout{
			Lines: []text.Line{
				{
					BlockOffset: px(10),
					Glyphs: []text.PositionedGlyph{
						{GlyphID: 1, Position: dimen.Point{X: px(5), Y: 0}, Advance: px(5)},
					},
				},
			},
		},
	}, tree.NoIndex)
	tr := &layouttree.Tree{Arena: arena, Root: root}

	dl, _ := Generate(tr)
	var found bool
	for _, c := range dl.Commands {
		if c.Kind != CmdText {
			continue
		}
		found = true
		require.Len(t, c.Glyphs, 1)
		// inline advance (5px) lands on the physical Y axis, the line's
		// block offset (10px) lands on the physical X axis.
		assert.Equal(t, px(10), c.Glyphs[0].Position.X)
		assert.Equal(t, px(5), c.Glyphs[0].Position.Y)
	}
	assert.True(t, found)
}

func TestGenerateNoBorderCommandWhenBorderStyleNone(t *testing.T) {
	arena := tree.NewArena[layouttree.Node]()
	root := arena.New(layouttree.Node{
		FC:       layouttree.FCBlock,
		UsedSize: dimen.Point{X: px(10), Y: px(10)},
	}, tree.NoIndex)
	tr := &layouttree.Tree{Arena: arena, Root: root}

	dl, _ := Generate(tr)
	for _, c := range dl.Commands {
		assert.NotEqual(t, CmdBorder, c.Kind)
	}
}
