package fontfallback

import (
	"golang.org/x/text/unicode/norm"

	"github.com/solver3/solver3/text"
)

// SplitByFont walks each visual item's text grapheme cluster by grapheme
// cluster (spec.md §4.3.2 step 4), selecting a font per cluster from chain,
// and splits an item wherever the selected font changes. It returns a new,
// possibly longer, slice of items in lockstep with a parallel slice of font
// ids — exactly the (items, fontIDs) pair text/shape.Shape expects, with one
// font id already resolved per item.
//
// Items with empty text (atomic inlines, forced breaks) pass through
// unsplit with an empty font id; Shape treats those as opaque placeholders
// regardless.
func SplitByFont(items []text.VisualItem, chain *Chain) ([]text.VisualItem, []string) {
	var outItems []text.VisualItem
	var outIDs []string

	for _, it := range items {
		if it.Text == "" {
			outItems = append(outItems, it)
			outIDs = append(outIDs, "")
			continue
		}
		for _, seg := range graphemeClusters(it.Text) {
			fontID := chain.SelectFont(firstRune(seg.text))
			if n := len(outItems); n > 0 && outIDs[n-1] == fontID && sameParent(outItems[n-1], it) {
				merged := outItems[n-1]
				merged.Text += seg.text
				merged.SourceEnd = it.SourceStart + seg.end
				outItems[n-1] = merged
				continue
			}
			piece := it
			piece.Text = seg.text
			piece.SourceStart = it.SourceStart + seg.start
			piece.SourceEnd = it.SourceStart + seg.end
			outItems = append(outItems, piece)
			outIDs = append(outIDs, fontID)
		}
	}
	return outItems, outIDs
}

// sameParent reports whether a split piece still belongs to the same source
// item, so merging adjacent same-font clusters never bridges two different
// original items.
func sameParent(merged, original text.VisualItem) bool {
	return merged.Origin == original.Origin && merged.Script == original.Script &&
		merged.BidiLevel == original.BidiLevel
}

type cluster struct {
	text       string
	start, end int
}

// graphemeClusters splits s at normalization-form segment boundaries, which
// keep a base character and its combining marks together — close enough to
// true UAX#29 grapheme clusters for the purpose of picking one font per
// visual unit, and grounded on the same golang.org/x/text/unicode/norm API
// text/itemize already uses for NFC boundary detection.
func graphemeClusters(s string) []cluster {
	var out []cluster
	var it norm.Iter
	it.InitString(norm.NFC, s)
	pos := 0
	for !it.Done() {
		seg := it.Next()
		out = append(out, cluster{text: string(seg), start: pos, end: pos + len(seg)})
		pos += len(seg)
	}
	return out
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
