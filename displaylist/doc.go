/*
Package displaylist walks a positioned layout tree in document order and
emits paint commands in CSS paint order (spec.md §4.4): per node,
background, borders, content, children, then outline; per table, the
six-layer table order (table box, column groups, columns, row groups,
rows, cells). Clip regions are pushed and popped around nodes whose
resolved `overflow` clips their descendants.

Grounded on framedebug/debug.go's recursive tree-walk-and-emit shape
(a GraphViz dumper in the teacher, retargeted here from debug strings to
paint commands).
*/
package displaylist

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the displaylist package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
