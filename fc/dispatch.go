package fc

import (
	"github.com/solver3/solver3/layouttree"
)

// ListItemMarkerPlacer is the signature of a function that positions a
// list-item's marker pseudo-node relative to its content wrapper. No
// function of this type is defined or called in this module.
type ListItemMarkerPlacer func(t *layouttree.Tree, liIdx, markerIdx, wrapperIdx int)

// Dispatch routes idx to the formatting-context algorithm named by its FC
// tag, per spec.md §4.3: ListItem maps to Block, its marker and content
// wrapper being laid out as ordinary children; every other FC tag is the
// caller's responsibility to run directly (fc intentionally does not
// import fc/bfc, fc/ifc, fc/flexfc, or fc/tablefc itself, since each of
// those needs collaborators — a FloatContext, a TextMeasurer, a
// containing-block size — that only the orchestrator has in scope; this
// function only tells the caller which one applies).
func Dispatch(n layouttree.Node) layouttree.FormattingContext {
	if n.FC == layouttree.FCListItem {
		return layouttree.FCBlock
	}
	return n.FC
}
