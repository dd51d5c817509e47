package bidiwrap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
	"github.com/solver3/solver3/text/bidiwrap"
)

func TestReorderLeavesPureLTRTextInSourceOrder(t *testing.T) {
	items := []text.LogicalItem{
		{Text: "hello ", Script: "Latin"},
		{Text: "world", Script: "Latin"},
	}
	out := bidiwrap.Reorder(items, styleddom.DirLTR)
	require.Len(t, out, 2)
	assert.Equal(t, "hello ", out[0].Text)
	assert.Equal(t, "world", out[1].Text)
	assert.Equal(t, 0, out[0].BidiLevel)
}

func TestReorderHandlesMixedRTLEmbedding(t *testing.T) {
	items := []text.LogicalItem{
		{Text: "abc ", Script: "Latin"},
		{Text: "אבג", Script: "Hebrew"},
		{Text: " def", Script: "Latin"},
	}
	out := bidiwrap.Reorder(items, styleddom.DirLTR)
	require.NotEmpty(t, out)
	var sawRTL bool
	for _, v := range out {
		if v.BidiLevel == 1 {
			sawRTL = true
		}
	}
	assert.True(t, sawRTL, "expected at least one run resolved RTL for Hebrew text")
}

func TestReorderEmptyInputReturnsNil(t *testing.T) {
	assert.Nil(t, bidiwrap.Reorder(nil, styleddom.DirLTR))
}
