/*
Package fc names the formatting-context algorithm a layout node's FC tag
selects — Block, Inline, Flex, or Table, with ListItem laid out as Block —
and holds the LayoutOutput (child positions, overflow size, baseline)
every algorithm returns, per spec.md §4.3.

Each concrete algorithm lives in its own subpackage (fc/bfc, fc/ifc,
fc/flexfc, fc/tablefc) grounded on the teacher file closest to that
algorithm; this package only owns the dispatch switch and the shared
LayoutOutput/Context types every algorithm produces and consumes.
*/
package fc

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the fc package and its subpackages.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
