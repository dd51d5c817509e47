package linebreak_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/shapes"
	"github.com/solver3/solver3/text"
	"github.com/solver3/solver3/text/linebreak"
)

func TestOpportunitiesBreaksBetweenWords(t *testing.T) {
	offsets := linebreak.Opportunities("hello world")
	assert.NotEmpty(t, offsets)
}

func TestFitLinesWrapsWhenExceedingWidth(t *testing.T) {
	clusters := []text.ShapedCluster{
		{Advances: []dimen.DU{5 * dimen.PX}, ClusterStart: 0, ClusterEnd: 5},
		{Advances: []dimen.DU{5 * dimen.PX}, ClusterStart: 5, ClusterEnd: 6}, // space
		{Advances: []dimen.DU{5 * dimen.PX}, ClusterStart: 6, ClusterEnd: 11},
	}
	breaks := []int{6}
	avail := func(y, h dimen.DU) []shapes.Segment {
		return shapes.FullLine(8 * dimen.PX)
	}
	lines := linebreak.FitLines(clusters, breaks, 10*dimen.PX, avail)
	require.Len(t, lines, 2)
}

func TestFitLinesNeverDropsAnOverlongWord(t *testing.T) {
	clusters := []text.ShapedCluster{
		{Advances: []dimen.DU{100 * dimen.PX}, ClusterStart: 0, ClusterEnd: 1},
	}
	avail := func(y, h dimen.DU) []shapes.Segment {
		return shapes.FullLine(8 * dimen.PX)
	}
	lines := linebreak.FitLines(clusters, nil, 10*dimen.PX, avail)
	require.Len(t, lines, 1)
	assert.Equal(t, 100*dimen.PX, lines[0].Width)
}
