package bidiwrap

import (
	"strings"

	"golang.org/x/text/unicode/bidi"

	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
)

// Reorder runs the Unicode Bidi Algorithm over items with base an explicit
// paragraph base direction (spec.md §4.3.2 step 2: "never guess from
// first strong character"), splitting any item that straddles a run
// boundary and returning the sequence in visual (left-to-right paint)
// order with VisualIndex set to its position in that order.
func Reorder(items []text.LogicalItem, base styleddom.Direction) []text.VisualItem {
	if len(items) == 0 {
		return nil
	}

	spans, concat := spansOf(items)

	var p bidi.Paragraph
	dir := bidi.LeftToRight
	if base == styleddom.DirRTL {
		dir = bidi.RightToLeft
	}
	if err := p.SetString(concat, bidi.DefaultDirection(dir)); err != nil {
		return straightOrder(items)
	}
	ordering, err := p.Order()
	if err != nil {
		return straightOrder(items)
	}

	var out []text.VisualItem
	visualIdx := 0
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		runText := run.String()
		runStart := strings.Index(concat, runText)
		if runStart < 0 {
			continue
		}
		runEnd := runStart + len(runText)
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for _, sp := range spans {
			lo := max(sp.start, runStart)
			hi := min(sp.end, runEnd)
			if hi <= lo {
				continue
			}
			it := sp.item
			sub := it
			sub.Text = concat[lo:hi]
			sub.BidiLevel = level
			sub.SourceStart = it.SourceStart + (lo - sp.start)
			sub.SourceEnd = it.SourceStart + (hi - sp.start)
			out = append(out, text.VisualItem{LogicalItem: sub, VisualIndex: visualIdx})
			visualIdx++
		}
	}
	return out
}

type span struct {
	start, end int
	item       text.LogicalItem
}

func spansOf(items []text.LogicalItem) ([]span, string) {
	var b strings.Builder
	spans := make([]span, 0, len(items))
	for _, it := range items {
		start := b.Len()
		b.WriteString(it.Text)
		spans = append(spans, span{start: start, end: b.Len(), item: it})
	}
	return spans, b.String()
}

func straightOrder(items []text.LogicalItem) []text.VisualItem {
	out := make([]text.VisualItem, len(items))
	for i, it := range items {
		out[i] = text.VisualItem{LogicalItem: it, VisualIndex: i}
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
