/*
Package shape implements text engine pipeline step 5 (spec.md §4.3.2):
shaping each font-resolved sub-run into ShapedClusters carrying glyph ids,
advances, and source cluster ranges.

The actual shaping backend is github.com/benoitkugler/textlayout's
harfbuzz-compatible shaper (SPEC_FULL.md §DOMAIN STACK) — wired in behind
the Shaper interface here rather than imported directly by this package,
the same collaborator-interface split sizing.TextMeasurer uses to keep
package layering acyclic: fontfallback owns font resolution (step 3) and
is the natural place to also own the loaded-font handle textlayout needs,
so it implements Shaper and this package only orchestrates calling it per
style-run boundary.
*/
package shape

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the shape package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
