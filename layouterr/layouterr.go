/*
Package layouterr defines the core's recoverable error taxonomy (spec.md
§7) as sentinel errors wrapped in RecoveredError. LayoutDocument returns
the RecoveredErrors it collected alongside a normal, usable display list.
The layout pass produces two of them: InvalidTree when a child index has
no live node (that child is skipped, not rebuilt), and SizingFailed when
an IFC root with content yields no lines (its content height is then
zero). FontNotFound, ShapingFailed and ImageUnavailable are defined but
not produced by any layout step, and the recovery steps named on the
sentinels below are not carried out by this module.
*/
package layouterr

import (
	"errors"
	"fmt"

	"github.com/solver3/solver3/styleddom"
)

// Sentinel errors, one per spec.md §7 taxonomy entry. Use errors.Is against
// these; RecoveredError.Unwrap exposes them.
var (
	// ErrInvalidTree signals a broken layout-tree invariant found during
	// reconciliation (an orphan index, a missing required ancestor).
	// Recovery: drop the offending subtree and rebuild it from the DOM.
	ErrInvalidTree = errors.New("layouterr: invalid layout tree")

	// ErrFontNotFound signals that no font in a fallback chain covers a
	// character. Recovery: render with the chain's first font's .notdef
	// glyph (a tofu box) and continue.
	ErrFontNotFound = errors.New("layouterr: no font covers character")

	// ErrShapingError signals that the shaper returned no clusters for a
	// sub-run. Recovery: fall back to per-character glyph lookup, or
	// .notdef if that too fails.
	ErrShapingError = errors.New("layouterr: shaping produced no clusters")

	// ErrSizingFailed signals that intrinsic sizing did not converge.
	// This should be unreachable given the sizing pass's termination
	// bounds; when it happens it is treated exactly like ErrInvalidTree.
	ErrSizingFailed = errors.New("layouterr: intrinsic sizing did not converge")

	// ErrImageUnavailable signals that an image/object id has no known
	// intrinsic size. Recovery: treat the node as a zero-sized atomic
	// inline using its configured alt-text metrics.
	ErrImageUnavailable = errors.New("layouterr: image has no intrinsic size")
)

// RecoveredError is one error layout recovered from and continued past. The
// top-level LayoutDocument collects these instead of propagating them,
// per spec.md §7's "returns a display list even in the presence of
// recoverable errors" propagation policy.
type RecoveredError struct {
	Err      error
	NodeIdx  int              // layout-tree index where recovery happened, or -1
	DomNode  styleddom.NodeID // originating styled-DOM node, or styleddom.NoNode
	Char     rune             // the offending character, for FontNotFound/ShapingError; 0 otherwise
	FontID   string           // the font id involved, if any
}

func (e RecoveredError) Error() string {
	switch {
	case e.Char != 0 && e.FontID != "":
		return fmt.Sprintf("%v (node %d, char %q, font %q)", e.Err, e.NodeIdx, e.Char, e.FontID)
	case e.Char != 0:
		return fmt.Sprintf("%v (node %d, char %q)", e.Err, e.NodeIdx, e.Char)
	default:
		return fmt.Sprintf("%v (node %d)", e.Err, e.NodeIdx)
	}
}

func (e RecoveredError) Unwrap() error {
	return e.Err
}

// InvalidTree builds a RecoveredError for a broken tree invariant.
func InvalidTree(nodeIdx int, dom styleddom.NodeID) RecoveredError {
	return RecoveredError{Err: ErrInvalidTree, NodeIdx: nodeIdx, DomNode: dom}
}

// FontNotFound builds a RecoveredError for an uncovered character.
func FontNotFound(nodeIdx int, char rune, fontID string) RecoveredError {
	return RecoveredError{Err: ErrFontNotFound, NodeIdx: nodeIdx, Char: char, FontID: fontID}
}

// ShapingFailed builds a RecoveredError for a sub-run the shaper refused.
func ShapingFailed(nodeIdx int, fontID string) RecoveredError {
	return RecoveredError{Err: ErrShapingError, NodeIdx: nodeIdx, FontID: fontID}
}

// SizingFailed builds a RecoveredError for non-convergent intrinsic sizing.
func SizingFailed(nodeIdx int, dom styleddom.NodeID) RecoveredError {
	return RecoveredError{Err: ErrSizingFailed, NodeIdx: nodeIdx, DomNode: dom}
}

// ImageUnavailable builds a RecoveredError for a missing image intrinsic size.
func ImageUnavailable(nodeIdx int, dom styleddom.NodeID) RecoveredError {
	return RecoveredError{Err: ErrImageUnavailable, NodeIdx: nodeIdx, DomNode: dom}
}
