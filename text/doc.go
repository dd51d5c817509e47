/*
Package text holds the entity types the text engine's pipeline stages
(text/itemize, text/bidiwrap, text/shape, text/linebreak, text/justify)
produce and consume, plus the UnifiedLayout an inline formatting context
root stores as its inline_layout_result.

The pipeline itself is grounded on engine/khipu/khipukamayuq.go's
TypesettingPipeline (a segmenter wired from github.com/npillmayer/uax's
uax14/uax29/segment packages) and engine/khipu/styled/paragraph.go (styled
runs over a github.com/npillmayer/cords rope) — adapted from khipu's
knot-sequence (glue/penalty/box) model to the StyledRun/LogicalItem/
VisualItem/ShapedCluster/PositionedGlyph vocabulary spec.md §3 names, since
the source model spec.md distills from never used knots as its unit.
*/
package text

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the text package and its subpackages.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
