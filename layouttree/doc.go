/*
Package layouttree builds the layout tree from a styleddom.StyledDom: one
layout node per styled element, plus the anonymous boxes CSS mandates
(list-item marker/wrapper pairs, table structural fixup, anonymous block
wrappers around mixed inline/block runs).

The box-kind taxonomy (principal box / anonymous box / text-derived pseudo
box) is grounded in engine/frame/boxtree/container.go's Container/Type
hierarchy; the run-length interval bookkeeping that file uses to place
anonymous boxes at the right position among a parent's real children
(runlength/intv, Condense/Translate) is reimplemented here as the run
collection in buildChildren, buildTableChildren and wrapOrphanRuns,
operating directly on the arena's child-index slices rather than on a
separate position-translation table, since the arena already gives each
child a stable index to splice around.
*/
package layouttree

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the layouttree package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
