package shapes

import (
	"sort"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/fc"
)

// Segment is a non-overlapping open horizontal interval [Start, End) a
// line's content may occupy.
type Segment struct {
	Start, End dimen.DU
}

// Width returns the segment's extent.
func (s Segment) Width() dimen.DU { return s.End - s.Start }

// FullLine returns the single segment spanning a content box of the given
// width, the starting point before any subtraction.
func FullLine(width dimen.DU) []Segment {
	if width <= 0 {
		return nil
	}
	return []Segment{{Start: 0, End: width}}
}

// SubtractFloats removes, from segments, every float in floats whose
// margin box intersects the vertical band [y, y+h), per spec.md §4.3.5
// step 2.
func SubtractFloats(segments []Segment, y, h dimen.DU, floats []fc.FloatEntry) []Segment {
	for _, f := range floats {
		if f.MarginBox.TopL.Y >= y+h || f.MarginBox.BotR.Y <= y {
			continue
		}
		segments = Subtract(segments, f.MarginBox.TopL.X, f.MarginBox.BotR.X)
	}
	return segments
}

// Subtract removes the interval [cut0, cut1) from every segment,
// splitting a segment into two when the cut falls strictly inside it —
// standard rectangle-set subtraction over a 1-D interval list.
func Subtract(segments []Segment, cut0, cut1 dimen.DU) []Segment {
	if cut1 <= cut0 {
		return segments
	}
	var out []Segment
	for _, s := range segments {
		if cut1 <= s.Start || cut0 >= s.End {
			out = append(out, s)
			continue
		}
		if cut0 > s.Start {
			out = append(out, Segment{Start: s.Start, End: cut0})
		}
		if cut1 < s.End {
			out = append(out, Segment{Start: cut1, End: s.End})
		}
	}
	return out
}

// Intersect restricts segments to fall entirely within [within.Start,
// within.End) — used to apply a shape-inside chord, which replaces the
// available region rather than subtracting from it, per spec.md §4.3.5
// step 3.
func Intersect(segments []Segment, within Segment) []Segment {
	var out []Segment
	for _, s := range segments {
		start := dimen.Max(s.Start, within.Start)
		end := dimen.Min(s.End, within.End)
		if end > start {
			out = append(out, Segment{Start: start, End: end})
		}
	}
	return out
}

// Normalize sorts segments by start and merges any that touch or overlap,
// restoring the "sorted list of non-overlapping open intervals"
// invariant spec.md §4.3.5 requires of the line fitter's input.
func Normalize(segments []Segment) []Segment {
	if len(segments) < 2 {
		return segments
	}
	sorted := append([]Segment(nil), segments...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	out := []Segment{sorted[0]}
	for _, s := range sorted[1:] {
		last := &out[len(out)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		out = append(out, s)
	}
	return out
}
