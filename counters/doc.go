/*
Package counters implements CSS counters, list-item numbering, and marker
text formatting, per spec.md §4.3.6: counter-reset/counter-increment
scoping during a document-order tree descent, the `<ol>`/`<ul>`/`<li>`
user-agent defaults, and list-style-type marker text formatting.

Grounded on github.com/emirpasic/gods/stacks/arraystack for the
per-counter scope stack (push on counter-reset, pop on leaving the node
that pushed it) — the same third-party container family
engine/frame/khipu/linebreak/knuthplass already imports from (gods/sets/
hashset), here the stack variant instead of the set variant since scoping
is LIFO. The teacher has no counter implementation of its own (its
typesetting model has no CSS counters), so this package is new relative
to the teacher.
*/
package counters

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the counters package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
