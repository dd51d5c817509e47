/*
Package bidiwrap implements text engine pipeline step 2 (spec.md
§4.3.2): running the Unicode Bidi Algorithm over itemized content with an
explicit paragraph base direction, never inferred from the first strong
character, and reordering logical items into visual order.

Grounded on golang.org/x/text/unicode/bidi, the same bidi implementation
engine/khipu/khipukamayuq.go's typesetting pipeline wraps its input
through via golang.org/x/text/unicode/norm (its sibling package in the
x/text module); no example repo in this pack runs bidi reordering itself,
so the wiring here follows bidi's own documented Paragraph API directly.
*/
package bidiwrap

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the bidiwrap package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
