/*
Package linebreak implements text engine pipeline step 6 (spec.md
§4.3.2): enumerating Unicode line-break opportunities and greedily filling
shape-aware line segments one at a time.

Break-opportunity enumeration is grounded on
engine/khipu/khipukamayuq.go's use of github.com/npillmayer/uax/uax14 as
the "primary breaker" (mandatory and line-wrap-opportunity breaks) layered
with github.com/npillmayer/uax/segment — the same pairing is used here,
feeding a segment.Segmenter configured with uax14.NewLineWrap() directly
over each shaped run's source text rather than over an io.Reader, since
the shaped clusters are already in memory. The greedy fill loop itself
follows the line-fit description in spec.md §4.3.5, consuming the
shapes package's per-line available Segments instead of a fixed line
width.
*/
package linebreak

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the linebreak package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
