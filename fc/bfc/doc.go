/*
Package bfc implements the Block Formatting Context algorithm of spec.md
§4.3.1: stack in-flow block-level children along the block axis with
margin collapsing and clearance, placing floats into a fc.FloatContext and
setting aside absolutely positioned children for a later pass.

Grounded on engine/frame/box.go's box-dimension bookkeeping for the
per-child edge values this algorithm consumes, and on spec.md's own
collapse/clearance rules (the teacher has no margin-collapsing BFC stacker
of its own to ground the control flow on, since it targets paged
typesetting rather than a general CSS flow).
*/
package bfc

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the bfc package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
