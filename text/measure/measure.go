/*
Package measure is the text engine's bridge into package sizing: it
implements sizing.TextMeasurer by running the full shaping pipeline
(content collection, itemization, bidi reordering, font-fallback
splitting, shaping) far enough to report intrinsic widths, and it exposes
Layout to run that same pipeline all the way to a positioned
text.UnifiedLayout once a containing width is known. Kept outside package
text itself because fc/ifc already imports text, and measure needs
fc/ifc.CollectContent — importing it from inside text would cycle.

Grounded on the shaping pipeline the teacher's khipu package strings
together (itemize -> reorder -> shape -> break), here composed from this
module's text/itemize, text/bidiwrap, fontfallback and text/linebreak
packages instead of tyse's.
*/
package measure

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gtrace"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/fc/ifc"
	"github.com/solver3/solver3/fontfallback"
	"github.com/solver3/solver3/shapes"
	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
	"github.com/solver3/solver3/text/bidiwrap"
	"github.com/solver3/solver3/text/itemize"
	"github.com/solver3/solver3/text/linebreak"
	"github.com/solver3/solver3/text/shape"
)

// T returns the tracer for the measure package.
func T() tracing.Trace {
	return gtrace.EngineTracer
}

// Measurer runs the shaping pipeline against a font-fallback resolver. It
// implements sizing.TextMeasurer.
type Measurer struct {
	Fonts *fontfallback.Resolver
}

// NewMeasurer builds a Measurer backed by resolver.
func NewMeasurer(resolver *fontfallback.Resolver) *Measurer {
	return &Measurer{Fonts: resolver}
}

// shapedParagraph runs content collection through shaping for one IFC
// root, returning its shaped clusters, concatenated source text (for line-
// break opportunity search) and resolved line height.
func (m *Measurer) shapedParagraph(dom styleddom.StyledDom, domChildren []styleddom.NodeID, style styleddom.ComputedStyle) ([]text.ShapedCluster, string, dimen.DU) {
	content := ifc.CollectContent(dom, domChildren)
	items := itemize.Itemize(content)
	if len(items) == 0 {
		return nil, "", lineHeightOf(style)
	}

	visual := bidiwrap.Reorder(items, style.Direction)
	chain := m.Fonts.Resolve(style.FontFamilies, style.FontWeight, style.FontItalic, style.FontOblique)
	split, fontIDs := fontfallback.SplitByFont(visual, chain)
	shaper := fontfallback.NewShaper(chain)
	clusters := shape.Shape(split, fontIDs, shaper)

	var src string
	for _, it := range visual {
		src += it.Text
	}
	return clusters, src, lineHeightOf(style)
}

// MeasureIntrinsic implements sizing.TextMeasurer: min-content is the
// widest unbreakable segment between two line-break opportunities,
// max-content is the sum of every cluster's advances with no wrapping at
// all, per spec.md §4.2's intrinsic-width rule.
func (m *Measurer) MeasureIntrinsic(dom styleddom.StyledDom, domChildren []styleddom.NodeID, style styleddom.ComputedStyle) (minContent, maxContent, lineHeight dimen.DU) {
	clusters, src, lh := m.shapedParagraph(dom, domChildren, style)
	lineHeight = lh
	if len(clusters) == 0 {
		return 0, 0, lineHeight
	}

	breaks := linebreak.Opportunities(src)
	// A zero-width line ends at every break opportunity, so each line is one
	// unbreakable segment.
	lines := linebreak.FitLines(clusters, breaks, lineHeight, func(dimen.DU, dimen.DU) []shapes.Segment {
		return shapes.FullLine(0)
	})
	for _, l := range lines {
		if l.Width > minContent {
			minContent = l.Width
		}
	}
	for _, c := range clusters {
		for _, a := range c.Advances {
			maxContent += a
		}
	}
	return minContent, maxContent, lineHeight
}

// Layout runs the full pipeline to a positioned text.UnifiedLayout,
// wrapping clusters into lines that fit within available, the caller's
// shape-aware segment source (spec.md §4.3.5).
func (m *Measurer) Layout(dom styleddom.StyledDom, domChildren []styleddom.NodeID, style styleddom.ComputedStyle, available linebreak.AvailableSegments) *text.UnifiedLayout {
	clusters, src, lineHeight := m.shapedParagraph(dom, domChildren, style)
	if len(clusters) == 0 {
		return &text.UnifiedLayout{}
	}

	breaks := linebreak.Opportunities(src)
	lines := linebreak.FitLines(clusters, breaks, lineHeight, available)

	overflow := dimen.Point{}
	for _, l := range lines {
		if l.Width > overflow.X {
			overflow.X = l.Width
		}
		overflow.Y += l.Height
	}

	baseline := dimen.DU(0)
	if len(lines) > 0 {
		baseline = lines[0].Baseline
		if baseline == 0 {
			baseline = lines[0].Height
		}
	}

	return &text.UnifiedLayout{Lines: lines, OverflowSize: overflow, Baseline: baseline}
}

func lineHeightOf(style styleddom.ComputedStyle) dimen.DU {
	fontSize := dimen.DU(style.FontSizePx * float64(dimen.PX))
	if lh, ok := style.LineHeight.Resolve(fontSize); ok {
		return lh
	}
	return fontSize * 6 / 5
}
