package shapes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/fc"
	"github.com/solver3/solver3/shapes"
	"github.com/solver3/solver3/styleddom"
)

func TestSubtractSplitsSegmentInMiddle(t *testing.T) {
	segs := shapes.FullLine(100 * dimen.PX)
	out := shapes.Subtract(segs, 40*dimen.PX, 60*dimen.PX)
	require.Len(t, out, 2)
	assert.Equal(t, dimen.DU(0), out[0].Start)
	assert.Equal(t, 40*dimen.PX, out[0].End)
	assert.Equal(t, 60*dimen.PX, out[1].Start)
	assert.Equal(t, 100*dimen.PX, out[1].End)
}

func TestSubtractFloatsOnlyAffectsOverlappingBand(t *testing.T) {
	segs := shapes.FullLine(200 * dimen.PX)
	floats := []fc.FloatEntry{
		{Side: styleddom.FloatLeft, MarginBox: dimen.Rect{TopL: dimen.Point{X: 0, Y: 0}, BotR: dimen.Point{X: 50 * dimen.PX, Y: 100 * dimen.PX}}},
	}
	within := shapes.SubtractFloats(segs, 10*dimen.PX, 20*dimen.PX, floats)
	require.Len(t, within, 1)
	assert.Equal(t, 50*dimen.PX, within[0].Start)

	outside := shapes.SubtractFloats(segs, 150*dimen.PX, 20*dimen.PX, floats)
	require.Len(t, outside, 1)
	assert.Equal(t, dimen.DU(0), outside[0].Start)
}

func TestNormalizeMergesOverlapping(t *testing.T) {
	out := shapes.Normalize([]shapes.Segment{{Start: 50 * dimen.PX, End: 100 * dimen.PX}, {Start: 0, End: 60 * dimen.PX}})
	require.Len(t, out, 1)
	assert.Equal(t, dimen.DU(0), out[0].Start)
	assert.Equal(t, 100*dimen.PX, out[0].End)
}

func TestCircleShapeChordNarrowsNearEdges(t *testing.T) {
	shape, err := shapes.Parse("circle(50px at 100px 100px)")
	require.NoError(t, err)

	mid, ok := shape.ChordAt(100*dimen.PX, 0, 0)
	require.True(t, ok)
	assert.InDelta(t, float64(100*dimen.PX), float64(mid.Width()), float64(dimen.PX))

	edge, ok := shape.ChordAt(100*dimen.PX+49*dimen.PX, 0, 0)
	require.True(t, ok)
	assert.Less(t, edge.Width(), mid.Width())

	_, ok = shape.ChordAt(200*dimen.PX, 0, 0)
	assert.False(t, ok)
}

func TestInsetShapeChordIsBoxMinusInsets(t *testing.T) {
	shape, err := shapes.Parse("inset(10px 10px 10px 10px)")
	require.NoError(t, err)
	seg, ok := shape.ChordAt(50*dimen.PX, 200*dimen.PX, 200*dimen.PX)
	require.True(t, ok)
	assert.Equal(t, 10*dimen.PX, seg.Start)
	assert.Equal(t, 190*dimen.PX, seg.End)
}
