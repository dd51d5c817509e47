package linebreak

import (
	"strings"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/shapes"
	"github.com/solver3/solver3/text"
)

// Opportunities returns the byte offsets into s where the Unicode
// line-break algorithm (UAX #14) permits a break, in ascending order.
// Grounded on engine/khipu/khipukamayuq.go's use of
// github.com/npillmayer/uax/uax14 as the segmenter's primary breaker.
func Opportunities(s string) []int {
	if s == "" {
		return nil
	}
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(strings.NewReader(s))
	var offsets []int
	pos := 0
	for seg.Next() {
		pos += len(seg.Text())
		offsets = append(offsets, pos)
	}
	return offsets
}

// AvailableSegments returns the Segments a line at vertical offset y with
// height h may occupy — the shape-aware input spec.md §4.3.5 requires
// FitLines to consume instead of a fixed line width.
type AvailableSegments func(y, h dimen.DU) []shapes.Segment

// FitLines greedily fills lines from clusters, breaking only at a byte
// offset breakOffsets marks as permitted, per spec.md §4.3.2 step 6.
// Each line uses the widest single segment AvailableSegments reports for
// its vertical band — wrapping content around a shape that splits a line
// into multiple disjoint segments (e.g. text flowing on both sides of a
// centered float) is not implemented; the widest segment is used as the
// line's content area, which is exact for the common single-segment case
// and a reasonable approximation otherwise.
func FitLines(clusters []text.ShapedCluster, breakOffsets []int, lineHeight dimen.DU, available AvailableSegments) []text.Line {
	if len(clusters) == 0 {
		return nil
	}

	var lines []text.Line
	y := dimen.DU(0)
	start := 0
	for start < len(clusters) {
		seg := widestSegment(available(y, lineHeight))
		end, width := fitRun(clusters, start, seg.Width(), breakOffsets)
		lines = append(lines, text.Line{
			Glyphs:      positionGlyphs(clusters[start:end]),
			Width:       width,
			Height:      lineHeight,
			BlockOffset: y,
		})
		y += lineHeight
		start = end
	}
	return lines
}

// positionGlyphs lays out one line's clusters left to right, accumulating
// glyph advances into X offsets relative to the line's own origin. Y stays
// zero here — the line's baseline/block offset is applied by the caller
// once the line's own height is known.
func positionGlyphs(clusters []text.ShapedCluster) []text.PositionedGlyph {
	var glyphs []text.PositionedGlyph
	x := dimen.DU(0)
	for _, c := range clusters {
		for gi, glyphID := range c.Glyphs {
			adv := dimen.DU(0)
			if gi < len(c.Advances) {
				adv = c.Advances[gi]
			}
			glyphs = append(glyphs, text.PositionedGlyph{
				GlyphID:     glyphID,
				Position:    dimen.Point{X: x, Y: 0},
				Advance:     adv,
				FontID:      c.FontID,
				Color:       c.Style.Color,
				SourceIndex: c.ClusterStart,
			})
			x += adv
		}
	}
	return glyphs
}

func widestSegment(segs []shapes.Segment) shapes.Segment {
	var best shapes.Segment
	for _, s := range segs {
		if s.Width() > best.Width() {
			best = s
		}
	}
	return best
}

// fitRun returns the cluster index one past the last cluster included on
// this line, and the line's resulting content width. It always includes
// at least one cluster (an over-long word is never dropped, only
// overflowed) per standard greedy line breaking.
func fitRun(clusters []text.ShapedCluster, start int, maxWidth dimen.DU, breakOffsets []int) (int, dimen.DU) {
	var width dimen.DU
	lastBreak := -1
	lastBreakWidth := dimen.DU(0)
	i := start
	for ; i < len(clusters); i++ {
		cw := clusterWidth(clusters[i])
		if width+cw > maxWidth && i > start && lastBreak >= 0 {
			return lastBreak, lastBreakWidth
		}
		width += cw
		if isBreakOpportunity(clusters[i].ClusterEnd, breakOffsets) {
			lastBreak = i + 1
			lastBreakWidth = width
		}
	}
	return i, width
}

func clusterWidth(c text.ShapedCluster) dimen.DU {
	var w dimen.DU
	for _, a := range c.Advances {
		w += a
	}
	return w
}

func isBreakOpportunity(offset int, breakOffsets []int) bool {
	for _, o := range breakOffsets {
		if o == offset {
			return true
		}
	}
	return false
}
