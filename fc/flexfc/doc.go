/*
Package flexfc implements the Flex Formatting Context of spec.md §4.3.3:
main-axis distribution (grow/shrink against a flex basis) and cross-axis
alignment, with the design decisions the spec calls out explicitly —
align-items defaulting to stretch, stretch-eligible children reporting a
zero cross-axis intrinsic size, auto margins not being synthesized as the
solver's auto-margin sentinel unless authored, and max-*: auto staying
unbounded.

No teacher file implements flexbox; the main-axis solver is grounded on
the CSS Flexible Box spec's own single-line grow/shrink algorithm as
named by spec.md §4.3.3, written in the idiom of fc/bfc (plain Go over
sizing's resolved box edges, no third-party flex solver in the corpus).
*/
package flexfc

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the flexfc package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
