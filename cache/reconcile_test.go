package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/cache"
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom/htmlfixture"
)

func TestReconcileNoOpWhenDomUnchanged(t *testing.T) {
	html := `<body><p style="height:40px">hello</p></body>`
	dom1, err := htmlfixture.Build(html)
	require.NoError(t, err)

	vp := layouttree.Viewport{Width: 800 * dimen.PX, Height: 600 * dimen.PX}
	tree1 := layouttree.Build(dom1)

	hashes := make(cache.Hashes)
	tree1.Walk(func(idx int, n layouttree.Node) {
		if n.DomNode >= 0 {
			hashes[idx] = dom1.ContentHash(n.DomNode)
		}
	})

	dom2, err := htmlfixture.Build(html)
	require.NoError(t, err)

	_, dirty, _ := cache.Reconcile(tree1, hashes, dom2, vp, vp)
	assert.Empty(t, dirty, "identical DOM and viewport should yield no dirty roots")
}

func TestReconcileMarksChangedSubtreeDirty(t *testing.T) {
	dom1, err := htmlfixture.Build(`<body><p style="height:40px">hello</p></body>`)
	require.NoError(t, err)
	dom2, err := htmlfixture.Build(`<body><p style="height:80px">hello</p></body>`)
	require.NoError(t, err)

	vp := layouttree.Viewport{Width: 800 * dimen.PX, Height: 600 * dimen.PX}
	tree1 := layouttree.Build(dom1)
	hashes := make(cache.Hashes)
	tree1.Walk(func(idx int, n layouttree.Node) {
		if n.DomNode >= 0 {
			hashes[idx] = dom1.ContentHash(n.DomNode)
		}
	})

	_, dirty, _ := cache.Reconcile(tree1, hashes, dom2, vp, vp)
	assert.NotEmpty(t, dirty, "changed style should mark at least one layout root dirty")
}

func TestReconcileViewportChangeAlwaysDirtiesRoot(t *testing.T) {
	html := `<body><p>hello</p></body>`
	dom1, err := htmlfixture.Build(html)
	require.NoError(t, err)
	dom2, err := htmlfixture.Build(html)
	require.NoError(t, err)

	oldVp := layouttree.Viewport{Width: 800 * dimen.PX, Height: 600 * dimen.PX}
	newVp := layouttree.Viewport{Width: 400 * dimen.PX, Height: 600 * dimen.PX}
	tree1 := layouttree.Build(dom1)
	hashes := make(cache.Hashes)

	newTree, dirty, _ := cache.Reconcile(tree1, hashes, dom2, newVp, oldVp)
	assert.NotEmpty(t, dirty)
	assert.Contains(t, dirty, newTree.Root)
}
