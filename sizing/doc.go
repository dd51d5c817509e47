/*
Package sizing computes intrinsic sizes (min-content/max-content, bottom-up)
and used sizes (top-down, against a containing block) for layout-tree nodes,
per spec.md §4.2.

Grounded in engine/frame/box.go's box-dimension algebra (ContentWidth/
ContentHeight/FixContentWidth, box-sizing border-box vs content-box,
padding/border/margin resolution), generalized to dispatch over
cssval.Value via cssval.Matcher/OneOf instead of box.go's
core/option-based Match(option.Of{}) — auto is a first-class Value kind
rather than an unset/zero DimenT, matching the newer
engine/dom/style/css/dimen.go idiom the teacher itself prefers for new
code (see DESIGN.md).
*/
package sizing

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the sizing package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
