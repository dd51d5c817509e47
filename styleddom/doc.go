/*
Package styleddom defines the contract the layout core expects from the
external CSS parser/cascade collaborator (spec §6). The collaborator hands
the core an already-cascaded, inheritance-resolved tree; this package owns
only the read interface the layout-tree builder walks, never a cascade
implementation.

The node-identity and property-map shape follows
github.com/npillmayer/tyse/engine/dom/styledtree's StyNode, minus its
pointer-tree embedding and its xpath/htmlquery machinery (out of scope per
spec §1 — the styled DOM producer is an external collaborator, not this
module's job to build generally). A minimal, test-only implementation lives
in styleddom/htmlfixture for constructing fixtures in end-to-end tests.
*/
package styleddom

import (
	"github.com/solver3/solver3/core/dimen"
)

// NodeKind is the kind of a styled-DOM node.
type NodeKind int

const (
	KindElement NodeKind = iota
	KindText
	KindImage
	KindObject
)

// NodeID is a stable, ordered identifier for a styled-DOM node.
type NodeID int

// NoNode marks the absence of a node reference.
const NoNode NodeID = -1

// ImageInfo carries an image node's decoded identifier and intrinsic size.
type ImageInfo struct {
	ID     string
	Width  dimen.DU
	Height dimen.DU
	Baseline dimen.DU
}

// StyledDom is the read-only contract the layout-tree builder consumes: an
// ordered tree of nodes, each with a kind, a computed style, and stable
// parent/children links. Implementations own cascade/inheritance resolution
// entirely; the layout core never queries a raw (uncascaded) property.
type StyledDom interface {
	// Root returns the document root node id.
	Root() NodeID

	// Parent returns n's parent, or NoNode for the root.
	Parent(n NodeID) NodeID

	// Children returns n's ordered child node ids.
	Children(n NodeID) []NodeID

	// Kind returns n's node kind.
	Kind(n NodeID) NodeKind

	// Tag returns the element tag name for an element node ("" otherwise).
	Tag(n NodeID) string

	// Text returns the text content of a text node ("" otherwise).
	Text(n NodeID) string

	// Image returns image metadata for an image node (zero value otherwise).
	Image(n NodeID) ImageInfo

	// Style returns n's fully cascaded, inheritance-resolved computed style.
	Style(n NodeID) ComputedStyle

	// ContentHash returns a stable hash over n's own (style, kind, children
	// shape) — used by the reconciliation cache, never by layout itself.
	ContentHash(n NodeID) uint64
}
