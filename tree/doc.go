/*
Package tree implements the arena-plus-indices tree every layout node lives
in. The source architecture this module is built from used a pointer tree
with cyclic parent↔child ownership (github.com/npillmayer/tyse/engine/tree,
consumed by boxtree and frame but itself never reachable from this corpus).
Rather than recreate a pointer tree, nodes live in a flat slice and every
relationship — parent, children, siblings — is an integer index. This gives
stable identity across reconciliation passes, cheap reordering, and a
natural free list for reclaiming dropped indices instead of shrinking and
renumbering the slice.

Index 0 is reserved for the root and is never returned to the free list.
*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the tree package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}

// NoIndex marks the absence of a node reference (no parent, no such child).
const NoIndex = -1
