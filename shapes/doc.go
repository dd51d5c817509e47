/*
Package shapes derives the horizontal line-fitting segments an IFC line
must wrap text within, per spec.md §4.3.5: start from the full content-box
width, subtract floats intersecting the line's vertical band, then replace
the remainder with a shape-inside chord set when the IFC root has one.
SubtractFloats always subtracts a float's margin box; a float's
shape-outside is not used.

Grounded on engine/frame/floats.go's FloatList for the float-geometry
input (already generalized into fc.FloatContext/fc.FloatEntry) and on
spec.md's own chord-formula/scanline description for shape-inside/
shape-outside, since no teacher or pack file implements CSS Shapes.
*/
package shapes

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the shapes package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
