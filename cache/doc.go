/*
Package cache implements the reconciliation cache of spec.md §4.1: diffing a
new styled DOM against a previous layout tree to compute a minimal dirty
set, so a layout pass recomputes only what actually changed instead of the
whole tree.

No third-party tree-diff library from the retrieved corpus fits a
from-scratch arena-indexed diff any better than hand-written code (see
DESIGN.md); this package is plain Go maps and slices over layouttree.Tree.
*/
package cache

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the cache package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
