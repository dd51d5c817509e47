package layouttree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom/htmlfixture"
)

func TestBuildBlockStacking(t *testing.T) {
	dom, err := htmlfixture.Build(`<body>
		<h1 style="display:block;height:40px;margin-bottom:20px">A</h1>
		<p style="height:40px;margin-top:30px">B</p>
	</body>`)
	require.NoError(t, err)

	lt := layouttree.Build(dom)
	kids := lt.Arena.Children(lt.Root)
	require.Len(t, kids, 2)
	for _, k := range kids {
		n, ok := lt.Arena.Get(k)
		require.True(t, ok)
		assert.True(t, n.IsIFCRoot, "h1/p with only text content should be IFC roots")
	}
}

func TestBuildListItemSynthesizesMarkerAndWrapper(t *testing.T) {
	dom, err := htmlfixture.Build(`<body><ul><li>a</li></ul></body>`)
	require.NoError(t, err)

	lt := layouttree.Build(dom)
	ul := lt.Arena.Children(lt.Root)[0]
	li := lt.Arena.Children(ul)[0]
	liNode, _ := lt.Arena.Get(li)
	assert.Equal(t, layouttree.FCListItem, liNode.FC)

	liChildren := lt.Arena.Children(li)
	require.Len(t, liChildren, 2)
	marker, _ := lt.Arena.Get(liChildren[0])
	assert.Equal(t, layouttree.PseudoMarker, marker.PseudoKind)
	wrapper, _ := lt.Arena.Get(liChildren[1])
	assert.True(t, wrapper.IsAnonymous())
	assert.Equal(t, layouttree.FCBlock, wrapper.FC)
}

func TestBuildTableFixupWrapsOrphanCell(t *testing.T) {
	dom, err := htmlfixture.Build(`<body><div><div style="display:table-cell">x</div></div></body>`)
	require.NoError(t, err)

	lt := layouttree.Build(dom)
	div := lt.Arena.Children(lt.Root)[0]
	divChildren := lt.Arena.Children(div)
	require.Len(t, divChildren, 1)
	table, _ := lt.Arena.Get(divChildren[0])
	assert.Equal(t, layouttree.FCTable, table.FC)
	assert.True(t, table.IsAnonymous())

	tableChildren := lt.Arena.Children(divChildren[0])
	require.Len(t, tableChildren, 1)
	row, _ := lt.Arena.Get(tableChildren[0])
	assert.Equal(t, layouttree.FCTableRow, row.FC)
	assert.True(t, row.IsAnonymous())

	rowChildren := lt.Arena.Children(tableChildren[0])
	require.Len(t, rowChildren, 1)
	cell, _ := lt.Arena.Get(rowChildren[0])
	assert.Equal(t, layouttree.FCTableCell, cell.FC)
}

func TestBuildMixedInlineBlockChildrenWrapInAnonymousBlock(t *testing.T) {
	dom, err := htmlfixture.Build(`<body><div>text before<p>a real block</p></div></body>`)
	require.NoError(t, err)

	lt := layouttree.Build(dom)
	div := lt.Arena.Children(lt.Root)[0]
	children := lt.Arena.Children(div)
	require.Len(t, children, 2)
	anon, _ := lt.Arena.Get(children[0])
	assert.True(t, anon.IsAnonymous())
	assert.True(t, anon.IsIFCRoot)
}
