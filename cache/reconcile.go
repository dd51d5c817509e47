package cache

import (
	"github.com/solver3/solver3/layouttree"
	"github.com/solver3/solver3/styleddom"
)

// ContentHash is the per-node hash spec.md §4.1 reconciles against: a mix
// of style, node kind, and children-list shape, sourced from
// styleddom.StyledDom.ContentHash for DOM-backed nodes.
type ContentHash = uint64

// DirtySet maps a layout-root node index (one that establishes a Block FC,
// per spec.md §4.1's upward-propagation rule) to the severity of work it
// needs: Paint-only or a full Layout recompute. An empty DirtySet means
// nothing changed and the previous tree can be reused as-is.
type DirtySet map[int]layouttree.DirtyFlag

// Hashes snapshots the content hash of every DOM-backed layout node after a
// pass, keyed by layout-tree index, for the next call to Reconcile.
type Hashes map[int]ContentHash

// Reconcile diffs newDom (and viewport) against the previous layout tree
// and its hash snapshot, returning a freshly built tree plus the minimal
// set of layout roots that must be recomputed.
//
// The previous tree is never mutated in place: a fresh tree is always
// built from newDom (builder rules are cheap relative to sizing/text
// shaping), and this function's job is purely to decide, node by node,
// whether the expensive downstream work below each node can be skipped by
// carrying over cached results from prevTree. Where a node's content hash
// and children shape are unchanged from the previous pass, its cached
// sizing/text results are copied into the new tree and it is left out of
// the returned DirtySet; otherwise it is marked dirty and propagated
// upward to the nearest Block-FC ancestor, which becomes a layout root.
func Reconcile(prevTree *layouttree.Tree, prevHashes Hashes, newDom styleddom.StyledDom, viewport layouttree.Viewport, prevViewport layouttree.Viewport) (*layouttree.Tree, DirtySet, Hashes) {
	newTree := layouttree.Build(newDom)
	newHashes := make(Hashes)

	prevByDom := indexByDomNode(prevTree)
	dirtyLeaf := make(map[int]bool)

	viewportChanged := viewport != prevViewport

	newTree.Walk(func(idx int, n layouttree.Node) {
		if n.DomNode == styleddom.NoNode {
			return // anonymous boxes are judged by their descendants below
		}
		h := newDom.ContentHash(n.DomNode)
		newHashes[idx] = h

		oldIdx, ok := prevByDom[n.DomNode]
		if !ok {
			dirtyLeaf[idx] = true
			return
		}
		oldHash, ok := prevHashes[oldIdx]
		if !ok || oldHash != h || viewportChanged {
			dirtyLeaf[idx] = true
			return
		}
		if !sameChildShape(prevTree, oldIdx, newTree, idx) {
			dirtyLeaf[idx] = true
			return
		}
		carryOverCache(prevTree, oldIdx, newTree, idx)
	})

	if viewportChanged {
		dirtyLeaf[newTree.Root] = true
	}

	dirty := make(DirtySet)
	for leaf := range dirtyLeaf {
		propagateToBlockRoot(newTree, leaf, dirty)
	}
	return newTree, dirty, newHashes
}

// indexByDomNode maps every DOM-backed node of t to its layout-tree index.
func indexByDomNode(t *layouttree.Tree) map[styleddom.NodeID]int {
	out := make(map[styleddom.NodeID]int)
	if t == nil {
		return out
	}
	t.Walk(func(idx int, n layouttree.Node) {
		if n.DomNode != styleddom.NoNode {
			out[n.DomNode] = idx
		}
	})
	return out
}

// sameChildShape reports whether oldIdx (in oldTree) and newIdx (in
// newTree) have the same number of children and the same ordered sequence
// of DOM-backed child identities — a proxy for "the children-list differs
// in shape" from spec.md §4.1.
func sameChildShape(oldTree *layouttree.Tree, oldIdx int, newTree *layouttree.Tree, newIdx int) bool {
	oldKids := oldTree.Arena.Children(oldIdx)
	newKids := newTree.Arena.Children(newIdx)
	if len(oldKids) != len(newKids) {
		return false
	}
	for i := range oldKids {
		on, _ := oldTree.Arena.Get(oldKids[i])
		nn, _ := newTree.Arena.Get(newKids[i])
		if on.DomNode != nn.DomNode || on.FC != nn.FC || on.PseudoKind != nn.PseudoKind {
			return false
		}
	}
	return true
}

// carryOverCache copies the expensive-to-recompute fields of oldIdx's
// payload into newIdx's payload, and marks newIdx clean.
func carryOverCache(oldTree *layouttree.Tree, oldIdx int, newTree *layouttree.Tree, newIdx int) {
	old, ok := oldTree.Arena.Get(oldIdx)
	if !ok {
		return
	}
	n, ok := newTree.Arena.Get(newIdx)
	if !ok {
		return
	}
	n.Margin, n.Padding, n.Border = old.Margin, old.Padding, old.Border
	n.Intrinsic = old.Intrinsic
	n.UsedSize = old.UsedSize
	n.RelativePosition = old.RelativePosition
	n.Baseline = old.Baseline
	n.InlineLayoutResult = old.InlineLayoutResult
	n.ContentHash = old.ContentHash
	n.DirtyFlag = layouttree.DirtyNone
	newTree.Arena.Set(newIdx, n)
}

// propagateToBlockRoot walks up from leaf, marking every ancestor
// Layout-dirty, until it reaches (and records) the nearest ancestor that
// establishes a Block FC — that ancestor becomes a layout root in dirty.
// If leaf itself establishes a Block FC it is immediately recorded.
func propagateToBlockRoot(t *layouttree.Tree, leaf int, dirty DirtySet) {
	idx := leaf
	for idx != -1 {
		n, ok := t.Arena.Get(idx)
		if !ok {
			return
		}
		n.DirtyFlag = layouttree.MaxDirty(n.DirtyFlag, layouttree.DirtyLayout)
		t.Arena.Set(idx, n)

		if establishesBlockFC(n) {
			if existing, ok := dirty[idx]; !ok || existing < layouttree.DirtyLayout {
				dirty[idx] = layouttree.DirtyLayout
			}
			return
		}
		idx = t.Arena.Parent(idx)
	}
}

func establishesBlockFC(n layouttree.Node) bool {
	switch n.FC {
	case layouttree.FCBlock, layouttree.FCFlex, layouttree.FCGrid,
		layouttree.FCTable, layouttree.FCTableCell, layouttree.FCListItem:
		return true
	}
	return n.IsIFCRoot
}
