/*
Package tablefc implements the Table Formatting Context of spec.md §4.3.4:
structural analysis (row/col/span scan), column sizing (fixed or auto),
row-height resolution, cell positioning, border-collapse conflict
resolution, border-spacing, and caption placement.

No teacher file implements CSS table layout; grounded directly on spec.md
§4.3.4's phase-by-phase description, in the plain-Go idiom of fc/bfc and
fc/flexfc. The border-style ordering used for conflict resolution is
styleddom.BorderStyle, already ranked per CSS 2.2 §17.6.2.1 at the point
where style.go defines it.
*/
package tablefc

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the tablefc package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
