package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
	"github.com/solver3/solver3/text/shape"
)

type recordingShaper struct {
	calls []string
}

func (r *recordingShaper) ShapeRun(runText, fontID string, style styleddom.ComputedStyle, script, lang string, rtl bool) []text.ShapedCluster {
	r.calls = append(r.calls, runText)
	return []text.ShapedCluster{{ClusterStart: 0, ClusterEnd: len(runText), FontID: fontID}}
}

func TestShapeMergesContiguousSameFontItemsIntoOneRun(t *testing.T) {
	items := []text.VisualItem{
		{LogicalItem: text.LogicalItem{Text: "hello ", Script: "Latin"}, VisualIndex: 0},
		{LogicalItem: text.LogicalItem{Text: "world", Script: "Latin"}, VisualIndex: 1},
	}
	s := &recordingShaper{}
	out := shape.Shape(items, []string{"font-a", "font-a"}, s)
	require.Len(t, s.calls, 1)
	assert.Equal(t, "hello world", s.calls[0])
	assert.Len(t, out, 1)
}

func TestShapeSplitsOnFontChange(t *testing.T) {
	items := []text.VisualItem{
		{LogicalItem: text.LogicalItem{Text: "abc", Script: "Latin"}, VisualIndex: 0},
		{LogicalItem: text.LogicalItem{Text: "defg", Script: "Han"}, VisualIndex: 1},
	}
	s := &recordingShaper{}
	shape.Shape(items, []string{"font-a", "font-b"}, s)
	require.Len(t, s.calls, 2)
}

func TestShapePassesThroughAtomicInlinePlaceholder(t *testing.T) {
	items := []text.VisualItem{
		{LogicalItem: text.LogicalItem{Text: "", Origin: 3}, VisualIndex: 0},
	}
	s := &recordingShaper{}
	out := shape.Shape(items, nil, s)
	require.Len(t, out, 1)
	assert.Empty(t, s.calls)
}
