package itemize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
	"github.com/solver3/solver3/text/itemize"
)

func TestItemizeSplitsOnScriptChange(t *testing.T) {
	content := []text.InlineContent{
		{Kind: text.ContentText, Run: text.StyledRun{Text: "hello 你好"}},
	}
	items := itemize.Itemize(content)
	require.Len(t, items, 2)
	assert.Equal(t, "Latin", items[0].Script)
	assert.Equal(t, "Han", items[1].Script)
}

func TestItemizeKeepsPunctuationAttachedToSurroundingScript(t *testing.T) {
	content := []text.InlineContent{
		{Kind: text.ContentText, Run: text.StyledRun{Text: "hi, there."}},
	}
	items := itemize.Itemize(content)
	require.Len(t, items, 1)
	assert.Equal(t, "hi, there.", items[0].Text)
}

func TestItemizeEmitsPlaceholderForAtomicInline(t *testing.T) {
	content := []text.InlineContent{
		{Kind: text.ContentImage, Origin: 7},
	}
	items := itemize.Itemize(content)
	require.Len(t, items, 1)
	assert.Equal(t, styleddom.NodeID(7), items[0].Origin)
	assert.Empty(t, items[0].Text)
}

func TestSplitByStyleGroupsContiguousMatchingStyle(t *testing.T) {
	a := styleddom.ComputedStyle{FontSizePx: 16}
	b := styleddom.ComputedStyle{FontSizePx: 20}
	items := []text.LogicalItem{
		{Text: "a", Style: a},
		{Text: "b", Style: a},
		{Text: "c", Style: b},
	}
	groups := itemize.SplitByStyle(items)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 2)
	assert.Len(t, groups[1], 1)
}
