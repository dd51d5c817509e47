/*
Package justify implements text engine pipeline step 7 (spec.md §4.3.2):
distributing extra space among a justified line's break opportunities.
No example repo in this pack implements CSS justification, so the
distribution formula follows spec.md's own description directly
(inter-word for the general case; the last line of a justified block is
excluded unless text-align-last opts in, per spec.md).
*/
package justify

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the justify package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
