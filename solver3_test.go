package solver3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/displaylist"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom/htmlfixture"
)

func px(n int) dimen.DU { return dimen.DU(n) * dimen.PX }

// Scenario 1: two stacked blocks with explicit heights and vertical margins
// collapse between them — the second block sits at max(20px, 30px) below
// the first, not their sum.
func TestLayoutDocument_BlockStackingWithMarginCollapse(t *testing.T) {
	dom, err := htmlfixture.Build(`
		<h1 style="height:40px;margin-bottom:20px">A</h1>
		<p style="height:40px;margin-top:30px">B</p>
	`)
	require.NoError(t, err)

	viewport := layouttree.Viewport{Width: px(800), Height: px(600)}
	tree, e := runLayout(dom, viewport)
	assert.Empty(t, e.errs)

	kids := tree.Arena.Children(tree.Root)
	require.Len(t, kids, 2)
	h1, ok := tree.Arena.Get(kids[0])
	require.True(t, ok)
	p, ok := tree.Arena.Get(kids[1])
	require.True(t, ok)

	assert.Equal(t, px(0), h1.RelativePosition.Y)
	assert.Equal(t, px(70), p.RelativePosition.Y, "collapsed margin is max(20px,30px)=30px, stacked after h1's 40px height")

	dl, _ := displaylist.Generate(tree)
	assert.NotEmpty(t, dl.Commands)
}

// Scenario 2: a paragraph with an explicit LTR base direction mixing Arabic
// and Latin runs must still shape to positioned glyphs without recovered
// errors.
func TestLayoutDocument_BidiParagraphWithExplicitDirection(t *testing.T) {
	dom, err := htmlfixture.Build(`<p dir="ltr">مرحبا - Hello</p>`)
	require.NoError(t, err)

	viewport := layouttree.Viewport{Width: px(400), Height: px(200)}
	_, e := runLayout(dom, viewport)
	assert.Empty(t, e.errs)

	p, ok := e.tree.Arena.Get(e.tree.Arena.Children(e.tree.Root)[0])
	require.True(t, ok)
	require.NotNil(t, p.InlineLayoutResult)
	var total int
	for _, l := range p.InlineLayoutResult.Lines {
		total += len(l.Glyphs)
	}
	assert.Greater(t, total, 0, "bidi paragraph must shape to at least one positioned glyph")
}

// Scenario 3: an unordered list renders bullet markers, an ordered list
// renders numbered markers — the list-style-type each <li> inherits from
// its <ol>/<ul> ancestor must reach the marker's formatted text.
func TestLayoutDocument_ListCounters(t *testing.T) {
	dom, err := htmlfixture.Build(`
		<ul><li>a</li><li>b</li></ul>
		<ol><li>x</li><li>y</li></ol>
	`)
	require.NoError(t, err)

	viewport := layouttree.Viewport{Width: px(400), Height: px(400)}
	tree, e := runLayout(dom, viewport)
	assert.Empty(t, e.errs)

	var markers []string
	tree.Walk(func(idx int, n layouttree.Node) {
		if n.Marker != nil && n.Marker.Text != "" {
			markers = append(markers, n.Marker.Text)
		}
	})
	require.Len(t, markers, 4)
	assert.Equal(t, []string{"•", "•", "1.", "2."}, markers)
}

// Scenario 4: a table with a colspan and collapsed borders lays out without
// error, assigning every cell a positive used size.
func TestLayoutDocument_TableWithColspanAndBorderCollapse(t *testing.T) {
	dom, err := htmlfixture.Build(`
		<table style="border-collapse:collapse">
			<tr><td colspan="2" style="border:4px solid #000">wide</td></tr>
			<tr><td style="border:1px solid #000">a</td><td style="border:2px solid #000">b</td></tr>
		</table>
	`)
	require.NoError(t, err)

	viewport := layouttree.Viewport{Width: px(400), Height: px(400)}
	tree, e := runLayout(dom, viewport)
	assert.Empty(t, e.errs)

	var cellCount int
	tree.Walk(func(idx int, n layouttree.Node) {
		if n.FC == layouttree.FCTableCell {
			cellCount++
			assert.Greater(t, n.UsedSize.X, dimen.DU(0))
			assert.Greater(t, n.UsedSize.Y, dimen.DU(0))
		}
	})
	assert.Equal(t, 3, cellCount)

	dl, _ := displaylist.Generate(tree)
	assert.NotEmpty(t, dl.Commands)
}

// Scenario 5: a paragraph laid inside a circular shape-inside region
// produces a first line (nearest the circle's pole, narrowest chord) no
// wider than a line through the circle's vertical middle (its widest
// chord).
func TestLayoutDocument_ShapeInsideCircle(t *testing.T) {
	dom, err := htmlfixture.Build(`
		<div style="width:200px;height:200px;shape-inside:circle(100px at 100px 100px)">
			a set of several words that should wrap to fill the available circle region across many lines of text
		</div>
	`)
	require.NoError(t, err)

	viewport := layouttree.Viewport{Width: px(800), Height: px(600)}
	tree, e := runLayout(dom, viewport)
	assert.Empty(t, e.errs)

	div, ok := tree.Arena.Get(tree.Arena.Children(tree.Root)[0])
	require.True(t, ok)
	require.NotNil(t, div.InlineLayoutResult)
	lines := div.InlineLayoutResult.Lines
	require.NotEmpty(t, lines)

	mid := lines[len(lines)/2]
	assert.LessOrEqual(t, lines[0].Width, mid.Width+px(1), "line near the circle's pole must not be wider than one through its middle")
}

// Scenario 6: a flex row with flex-grow weights 1:2:3 distributes extra
// space proportionally — width ordering must follow grow-factor ordering.
func TestLayoutDocument_FlexRowStretch(t *testing.T) {
	dom, err := htmlfixture.Build(`
		<div style="display:flex;flex-direction:row;width:600px;height:100px">
			<div style="flex-grow:1;border:2px solid #000"></div>
			<div style="flex-grow:2;border:2px solid #000"></div>
			<div style="flex-grow:3;border:2px solid #000"></div>
		</div>
	`)
	require.NoError(t, err)

	viewport := layouttree.Viewport{Width: px(800), Height: px(600)}
	tree, e := runLayout(dom, viewport)
	assert.Empty(t, e.errs)

	flexRoot := tree.Arena.Children(tree.Root)[0]
	kids := tree.Arena.Children(flexRoot)
	require.Len(t, kids, 3)

	var widths []dimen.DU
	for _, k := range kids {
		n, ok := tree.Arena.Get(k)
		require.True(t, ok)
		widths = append(widths, n.UsedSize.X)
	}
	assert.Less(t, widths[0], widths[1])
	assert.Less(t, widths[1], widths[2])
}

// --- invariants, round-trip properties and boundary behaviors ---

// Invariant: laying out the same document twice from the same StyledDom
// produces identical used sizes — the pass is deterministic, no hidden
// global mutable state leaks between runs.
func TestLayoutDocument_DeterministicAcrossRuns(t *testing.T) {
	dom, err := htmlfixture.Build(`<div style="width:300px"><p>hello world</p></div>`)
	require.NoError(t, err)
	viewport := layouttree.Viewport{Width: px(800), Height: px(600)}

	tree1, _ := runLayout(dom, viewport)
	tree2, _ := runLayout(dom, viewport)

	root1, _ := tree1.Arena.Get(tree1.Root)
	root2, _ := tree2.Arena.Get(tree2.Root)
	assert.Equal(t, root1.UsedSize, root2.UsedSize)
}

// Invariant: a node's border-box used size is never smaller than its
// resolved padding+border decoration, even for a childless empty element.
func TestLayoutDocument_UsedSizeAtLeastCoversDecoration(t *testing.T) {
	dom, err := htmlfixture.Build(`<div style="padding:10px;border:5px solid #000"></div>`)
	require.NoError(t, err)
	viewport := layouttree.Viewport{Width: px(400), Height: px(400)}

	tree, _ := runLayout(dom, viewport)
	div, ok := tree.Arena.Get(tree.Arena.Children(tree.Root)[0])
	require.True(t, ok)

	decorationX := div.Padding.Left + div.Padding.Right + div.Border.Left + div.Border.Right
	decorationY := div.Padding.Top + div.Padding.Bottom + div.Border.Top + div.Border.Bottom
	assert.GreaterOrEqual(t, div.UsedSize.X, decorationX)
	assert.GreaterOrEqual(t, div.UsedSize.Y, decorationY)
}

// Round-trip: the spatial index's content box for every node nests inside
// its padding box, which nests inside its border box, which nests inside
// its margin box — the four boxes boxRects derives never invert.
func TestLayoutDocument_SpatialIndexBoxesNest(t *testing.T) {
	dom, err := htmlfixture.Build(`<div style="margin:5px;padding:10px;border:3px solid #000"><p>x</p></div>`)
	require.NoError(t, err)
	viewport := layouttree.Viewport{Width: px(400), Height: px(400)}

	tree, _ := runLayout(dom, viewport)
	_, index := displaylist.Generate(tree)
	require.NotEmpty(t, index)

	for _, boxes := range index {
		assert.LessOrEqual(t, boxes.Margin.TopL.X, boxes.Border.TopL.X)
		assert.LessOrEqual(t, boxes.Border.TopL.X, boxes.Padding.TopL.X)
		assert.LessOrEqual(t, boxes.Padding.TopL.X, boxes.Content.TopL.X)
		assert.GreaterOrEqual(t, boxes.Margin.BotR.X, boxes.Border.BotR.X)
		assert.GreaterOrEqual(t, boxes.Border.BotR.X, boxes.Padding.BotR.X)
		assert.GreaterOrEqual(t, boxes.Padding.BotR.X, boxes.Content.BotR.X)
	}
}

// Round-trip: every display-list command's NodeIdx is a valid index into
// the layout tree's arena it was generated from.
func TestLayoutDocument_DisplayListNodeIdxValid(t *testing.T) {
	dom, err := htmlfixture.Build(`<div style="background-color:#eee"><p>x</p></div>`)
	require.NoError(t, err)
	viewport := layouttree.Viewport{Width: px(400), Height: px(400)}

	tree, _ := runLayout(dom, viewport)
	dl, _ := displaylist.Generate(tree)
	require.NotEmpty(t, dl.Commands)
	for _, c := range dl.Commands {
		_, ok := tree.Arena.Get(c.NodeIdx)
		assert.True(t, ok, "command %v refers to a live node", c.Kind)
	}
}

// Boundary: an empty document (no children at all) lays out without error
// and an empty display list.
func TestLayoutDocument_EmptyDocument(t *testing.T) {
	dom, err := htmlfixture.Build(``)
	require.NoError(t, err)
	viewport := layouttree.Viewport{Width: px(400), Height: px(400)}

	dl, errs := LayoutDocument(dom, viewport)
	assert.Empty(t, errs)
	assert.NotNil(t, dl)
}

// Boundary: a zero-width viewport still produces a tree with every node
// sized (possibly to zero), never panicking on division-by-zero in
// percentage/shrink-to-fit resolution.
func TestLayoutDocument_ZeroWidthViewport(t *testing.T) {
	dom, err := htmlfixture.Build(`<p>hello</p>`)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		LayoutDocument(dom, layouttree.Viewport{Width: 0, Height: px(400)})
	})
}

// Boundary: an overlong unbreakable word wider than its container is never
// dropped — fitRun always includes at least one cluster per line, so the
// line list is non-empty and the line simply overflows the container.
func TestLayoutDocument_OverlongWordNotDropped(t *testing.T) {
	dom, err := htmlfixture.Build(`<div style="width:20px"><p>supercalifragilisticexpialidocious</p></div>`)
	require.NoError(t, err)
	viewport := layouttree.Viewport{Width: px(400), Height: px(400)}

	tree, e := runLayout(dom, viewport)
	assert.Empty(t, e.errs)

	divIdx := tree.Arena.Children(tree.Root)[0]
	pIdx := tree.Arena.Children(divIdx)
	require.NotEmpty(t, pIdx)
	para, ok := tree.Arena.Get(pIdx[0])
	require.True(t, ok)
	require.NotNil(t, para.InlineLayoutResult)
	require.NotEmpty(t, para.InlineLayoutResult.Lines, "an overlong word must still produce a line, not be dropped")
}
