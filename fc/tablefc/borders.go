package tablefc

import (
	"github.com/solver3/solver3/styleddom"
)

// BorderSource ranks where a candidate border came from for conflict
// resolution, ordered highest-priority first per CSS 2.2 §17.6.2.1 (a
// lower value wins a source-priority tie).
type BorderSource int

const (
	SourceCell BorderSource = iota
	SourceRow
	SourceRowGroup
	SourceColumn
	SourceColumnGroup
	SourceTable
)

// Position distinguishes the two contributions that can apply to one
// shared grid edge (the right border of the left cell vs the left border
// of the right cell; similarly top/bottom) for the final tie-break.
type Position int

const (
	PositionLeading  Position = iota // left or top edge, in LTR tables
	PositionTrailing                 // right or bottom edge
)

// BorderCandidate is one source's contribution to a shared grid edge.
type BorderCandidate struct {
	Edge     styleddom.BorderEdge
	Source   BorderSource
	Position Position
}

// ResolveEdge implements spec.md §4.3.4 phase 5's border-collapse conflict
// resolution: hidden suppresses the edge entirely; none loses to any
// other style; the widest remaining border wins; ties break by style
// priority (BorderStyle is already ordered double > solid > ... > inset,
// per styleddom's own comment), then by source priority, then by
// position (leading wins over trailing).
func ResolveEdge(candidates []BorderCandidate) styleddom.BorderEdge {
	if len(candidates) == 0 {
		return styleddom.BorderEdge{Style: styleddom.BorderNone}
	}
	for _, c := range candidates {
		if c.Edge.Style == styleddom.BorderHidden {
			return styleddom.BorderEdge{Style: styleddom.BorderHidden}
		}
	}

	var nonNone []BorderCandidate
	for _, c := range candidates {
		if c.Edge.Style != styleddom.BorderNone {
			nonNone = append(nonNone, c)
		}
	}
	if len(nonNone) == 0 {
		return styleddom.BorderEdge{Style: styleddom.BorderNone}
	}

	best := nonNone[0]
	for _, c := range nonNone[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best.Edge
}

// better reports whether a outranks b under the tie-break chain: widest
// first, then style priority, then source priority, then leading
// position.
func better(a, b BorderCandidate) bool {
	aw, _ := a.Edge.Width.Resolve(0)
	bw, _ := b.Edge.Width.Resolve(0)
	if aw != bw {
		return aw > bw
	}
	if a.Edge.Style != b.Edge.Style {
		return a.Edge.Style > b.Edge.Style
	}
	if a.Source != b.Source {
		return a.Source < b.Source
	}
	return a.Position < b.Position
}
