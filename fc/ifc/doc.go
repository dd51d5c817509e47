/*
Package ifc implements the inline formatting context: collecting an IFC
root's inline content per spec.md §4.3.2, and driving the text package's
pipeline stages (itemize, bidiwrap, shape, linebreak, justify) over the
result to produce a text.UnifiedLayout.

Content collection is grounded on
engine/dom/styledtree/styledtree.go's child-walk shape combined with
engine/khipu/styled/paragraph.go's "collect styled runs from a subtree"
role — adapted to walk styleddom.StyledDom directly (this module's styled
DOM contract) rather than khipu's cord-backed paragraph buffer, since
solver3 never materializes text into a rope (spec.md §3 Node.dom_node
rule 1).
*/
package ifc

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the ifc package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
