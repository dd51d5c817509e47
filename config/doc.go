/*
Package config holds the scoped parameter registers that every formatting
context reads during a layout pass: viewport size, default font stack,
language/script defaults, and the bounded-iteration limits table auto-layout
and justification rely on to guarantee termination.

The register set is a scoped stack, pushed/popped around recursive descent,
generalized from the fixed typesetting-parameter enum of
github.com/npillmayer/tyse/core/parameters. Where that package hard-coded
ten TeX-derived parameters, Registers carries the set solver3 actually
needs and keeps the same group/begingroup/endgroup discipline: a value set
inside a group is visible only until the matching Endgroup, so a formatting
context can locally override a default (e.g. a table's border-spacing) without
leaking the override to sibling subtrees.
*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the config package, bound to the engine tracer
// like every other solver3 package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
