package justify

import (
	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
)

// ShouldJustify reports whether a line should be justified, per spec.md
// §4.3.2 step 7: every line of a `text-align: justify` block is
// justified except the last, unless `text-align-last` opts it in.
func ShouldJustify(align styleddom.TextAlign, isLastLine bool, alignLast styleddom.TextAlign) bool {
	if align != styleddom.TextAlignJustify {
		return false
	}
	if !isLastLine {
		return true
	}
	return alignLast == styleddom.TextAlignJustify
}

// Justify distributes targetWidth-line.Width extra space evenly across
// the inter-word gaps identified by gapGlyphIndices (the index, within
// line.Glyphs, of the glyph after which each gap opens, typically the
// space glyph; every later glyph shifts right by the gap's share) — the
// inter-word case spec.md names explicitly. If there are no gaps the line
// is returned unchanged (a single unbreakable word cannot be justified by
// stretching space that does not exist).
func Justify(line text.Line, targetWidth dimen.DU, gapGlyphIndices []int) text.Line {
	extra := targetWidth - line.Width
	if extra <= 0 || len(gapGlyphIndices) == 0 {
		return line
	}
	perGap := extra / dimen.DU(len(gapGlyphIndices))

	isGap := make(map[int]bool, len(gapGlyphIndices))
	for _, i := range gapGlyphIndices {
		isGap[i] = true
	}

	out := line
	out.Glyphs = append([]text.PositionedGlyph(nil), line.Glyphs...)
	shift := dimen.DU(0)
	for i := range out.Glyphs {
		out.Glyphs[i].Position.X += shift
		if isGap[i] {
			shift += perGap
		}
	}
	out.Width = targetWidth
	out.Justified = true
	return out
}
