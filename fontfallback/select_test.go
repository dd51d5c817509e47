package fontfallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/text"
)

func TestGraphemeClustersSplitsPlainAscii(t *testing.T) {
	segs := graphemeClusters("abc")
	require.Len(t, segs, 3)
	assert.Equal(t, "a", segs[0].text)
	assert.Equal(t, "c", segs[2].text)
}

func TestSplitByFontPassesThroughAtomicInline(t *testing.T) {
	items := []text.VisualItem{{}}
	chain := &Chain{}
	outItems, outIDs := SplitByFont(items, chain)
	require.Len(t, outItems, 1)
	require.Len(t, outIDs, 1)
	assert.Equal(t, "", outIDs[0])
}

func TestSplitByFontProducesOneIDPerItem(t *testing.T) {
	chain := &Chain{entries: []chainEntry{{id: "fallback"}}}
	items := []text.VisualItem{
		{LogicalItem: text.LogicalItem{Text: "hi"}},
	}
	outItems, outIDs := SplitByFont(items, chain)
	require.Len(t, outItems, 1)
	require.Len(t, outIDs, 1)
	assert.Equal(t, "fallback", outIDs[0])
	assert.Equal(t, "hi", outItems[0].Text)
}
