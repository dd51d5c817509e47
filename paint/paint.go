/*
Package paint is the display-list consumer contract spec.md §6 names: a
painter backend implements Consumer to turn a *displaylist.DisplayList into
pixels, and reads the accompanying SpatialIndex for hit-testing/scrolling.
Neither is implemented here — the painter backend is an external
collaborator (spec.md §6, SPEC_FULL.md §6).
*/
package paint

import "github.com/solver3/solver3/displaylist"

// SpatialIndex re-exports displaylist's node-to-box mapping under the name
// external callers import from this package, so embedders depend on paint
// for both halves of §6's painter contract without reaching into
// displaylist directly.
type SpatialIndex = displaylist.SpatialIndex

// NodeBoxes re-exports displaylist's per-node box set.
type NodeBoxes = displaylist.NodeBoxes

// Consumer accepts one document's display list and spatial index. A
// Consumer must not retain references into the DisplayList's Glyphs slices
// past the call, since the layout engine reuses node/line storage across
// incremental passes.
type Consumer interface {
	Paint(dl *displaylist.DisplayList, index SpatialIndex) error
}

// ConsumerFunc adapts a function to Consumer, the way http.HandlerFunc
// adapts a function to http.Handler.
type ConsumerFunc func(dl *displaylist.DisplayList, index SpatialIndex) error

func (f ConsumerFunc) Paint(dl *displaylist.DisplayList, index SpatialIndex) error {
	return f(dl, index)
}
