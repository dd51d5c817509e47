package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/fontfallback"
	"github.com/solver3/solver3/shapes"
	"github.com/solver3/solver3/styleddom/htmlfixture"
)

func TestMeasureIntrinsicWidensOnLongerText(t *testing.T) {
	resolver := fontfallback.NewResolver()
	m := NewMeasurer(resolver)

	short, err := htmlfixture.Build(`<p>hi</p>`)
	require.NoError(t, err)
	long, err := htmlfixture.Build(`<p>hi there, a much longer line of text</p>`)
	require.NoError(t, err)

	pShort := short.Children(short.Root())[0]
	pLong := long.Children(long.Root())[0]

	_, maxShort, lhShort := m.MeasureIntrinsic(short, short.Children(pShort), short.Style(pShort))
	_, maxLong, lhLong := m.MeasureIntrinsic(long, long.Children(pLong), long.Style(pLong))

	assert.Greater(t, maxLong, maxShort)
	assert.Greater(t, lhShort, dimen.DU(0))
	assert.Greater(t, lhLong, dimen.DU(0))
}

func TestMeasureIntrinsicEmptyContent(t *testing.T) {
	resolver := fontfallback.NewResolver()
	m := NewMeasurer(resolver)

	dom, err := htmlfixture.Build(`<div></div>`)
	require.NoError(t, err)
	root := dom.Root()

	minW, maxW, lh := m.MeasureIntrinsic(dom, dom.Children(root), dom.Style(root))
	assert.Equal(t, dimen.DU(0), minW)
	assert.Equal(t, dimen.DU(0), maxW)
	assert.Greater(t, lh, dimen.DU(0))
}

func TestLayoutProducesPositionedGlyphsWithinWidth(t *testing.T) {
	resolver := fontfallback.NewResolver()
	m := NewMeasurer(resolver)

	dom, err := htmlfixture.Build(`<p>a set of several words to wrap across lines</p>`)
	require.NoError(t, err)
	p := dom.Children(dom.Root())[0]

	available := func(dimen.DU, dimen.DU) []shapes.Segment {
		return shapes.FullLine(40 * dimen.PX)
	}
	layout := m.Layout(dom, dom.Children(p), dom.Style(p), available)

	require.NotEmpty(t, layout.Lines)
	assert.Greater(t, len(layout.Lines), 1, "narrow width should force wrapping onto multiple lines")
	for _, line := range layout.Lines {
		assert.LessOrEqual(t, line.Width, dimen.DU(40*dimen.PX)+dimen.DU(1), "line must not exceed available width except for an unbreakable overlong word")
	}
	assert.NotEmpty(t, layout.Lines[0].Glyphs)
}
