package justify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
	"github.com/solver3/solver3/text/justify"
)

func TestShouldJustifyExcludesLastLineByDefault(t *testing.T) {
	assert.True(t, justify.ShouldJustify(styleddom.TextAlignJustify, false, ""))
	assert.False(t, justify.ShouldJustify(styleddom.TextAlignJustify, true, ""))
	assert.True(t, justify.ShouldJustify(styleddom.TextAlignJustify, true, styleddom.TextAlignJustify))
	assert.False(t, justify.ShouldJustify(styleddom.TextAlignLeft, false, ""))
}

func TestJustifyDistributesExtraSpaceAcrossGaps(t *testing.T) {
	line := text.Line{
		Width: 80 * dimen.PX,
		Glyphs: []text.PositionedGlyph{
			{Position: dimen.Point{X: 0}},
			{Position: dimen.Point{X: 20 * dimen.PX}},
			{Position: dimen.Point{X: 50 * dimen.PX}},
		},
	}
	out := justify.Justify(line, 100*dimen.PX, []int{1})
	assert.Equal(t, 100*dimen.PX, out.Width)
	assert.True(t, out.Justified)
	assert.Equal(t, dimen.DU(0), out.Glyphs[0].Position.X)
	assert.Equal(t, 20*dimen.PX, out.Glyphs[1].Position.X)
	assert.Equal(t, 70*dimen.PX, out.Glyphs[2].Position.X)
}

func TestJustifyNoOpWhenNoGaps(t *testing.T) {
	line := text.Line{Width: 50 * dimen.PX}
	out := justify.Justify(line, 100*dimen.PX, nil)
	assert.Equal(t, 50*dimen.PX, out.Width)
}
