package fc

import (
	"sync"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/styleddom"
)

// LayoutOutput is what every formatting-context algorithm returns: each
// in-flow child's position inside the parent's content box, the parent's
// resulting overflow size, and its baseline (for inline-level parents).
type LayoutOutput struct {
	Positions    map[int]dimen.Point
	OverflowSize dimen.Point
	Baseline     dimen.DU
}

// NewLayoutOutput returns a LayoutOutput with its Positions map allocated.
func NewLayoutOutput() LayoutOutput {
	return LayoutOutput{Positions: make(map[int]dimen.Point)}
}

// FloatEntry is one float placed into a BFC's FloatContext: its margin box,
// which side it floats to, and (derived) its bottom outer edge for
// clearance queries.
type FloatEntry struct {
	NodeIdx   int
	Side      styleddom.Float
	MarginBox dimen.Rect
}

// BottomOuterEdge returns the float's margin-box bottom edge, the quantity
// clearance and float placement query (spec.md §4.3.1/§4.3.5), never the
// border-box edge.
func (f FloatEntry) BottomOuterEdge() dimen.DU {
	return f.MarginBox.BotR.Y
}

// FloatContext tracks the floats introduced so far within one BFC, grounded
// on engine/frame/floats.go's FloatList (mutex-guarded slice of entries);
// generalized here to carry side and geometry instead of an opaque
// Container, since the BFC algorithm needs both to place later floats and
// to answer clearance/line-segment queries.
type FloatContext struct {
	mu     sync.Mutex
	floats []FloatEntry
}

// Add registers a new float.
func (fc *FloatContext) Add(e FloatEntry) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.floats = append(fc.floats, e)
}

// All returns a snapshot of every float registered so far.
func (fc *FloatContext) All() []FloatEntry {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	out := make([]FloatEntry, len(fc.floats))
	copy(out, fc.floats)
	return out
}

// ClearanceEdge returns the lowest bottom-outer-edge among registered
// floats on the side(s) named by clear, or 0 if none apply — the value
// §4.3.1/§4.3.5's clearance rule maxes main_pen against.
func (fc *FloatContext) ClearanceEdge(clear styleddom.Clear) dimen.DU {
	var edge dimen.DU
	for _, f := range fc.All() {
		if !clearMatches(clear, f.Side) {
			continue
		}
		if b := f.BottomOuterEdge(); b > edge {
			edge = b
		}
	}
	return edge
}

func clearMatches(clear styleddom.Clear, side styleddom.Float) bool {
	switch clear {
	case styleddom.ClearBoth:
		return side == styleddom.FloatLeft || side == styleddom.FloatRight
	case styleddom.ClearLeft:
		return side == styleddom.FloatLeft
	case styleddom.ClearRight:
		return side == styleddom.FloatRight
	}
	return false
}
