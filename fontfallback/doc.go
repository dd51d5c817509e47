/*
Package fontfallback resolves a CSS font-family list plus weight/style to an
ordered chain of concrete fonts and picks, per grapheme cluster, the first
font in that chain whose cmap covers it (spec.md §4.3.2 step 4, SPEC_FULL.md
§4.5).

System font discovery is github.com/flopp/go-findfont; font loading and
typecase caching reuse core/font and core/font/fontregistry; coverage
bitmaps come from core/font/opentype/ot's cmap parser. Resolved chains are
cached by (families, weight, italic, oblique) only — never by the text being
shaped, since the same four CSS properties always resolve to the same chain
regardless of content.
*/
package fontfallback

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"
)

// T returns the tracer for the fontfallback package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
