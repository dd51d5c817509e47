/*
Package itemize implements text engine pipeline step 1 (spec.md §4.3.2):
cutting collected inline content at style boundaries, atomic-inline
boundaries, and script-run boundaries into text.LogicalItem values. Bidi
level boundaries are assigned later by text/bidiwrap, which re-splits
items the Unicode Bidi Algorithm determines straddle a level change.

Grounded on engine/khipu/khipukamayuq.go's PrepareTypesettingPipeline,
which wraps the input in a golang.org/x/text/unicode/norm NFC-normalizing
reader before segmentation — the same normalization is applied here before
script-run splitting, since script boundaries must be computed over
normalized text. Script-run detection itself has no teacher or pack
grounding (uax14/uax29 classify line-break and word-break opportunities,
not script), so it falls back to the standard library's unicode.Scripts
range tables — the one package in this module built directly on the
standard library rather than a pack dependency, justified in DESIGN.md.
*/
package itemize

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the itemize package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
