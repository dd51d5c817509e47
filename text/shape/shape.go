package shape

import (
	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
)

// Shaper shapes one sub-run of text already narrowed to a single resolved
// font (spec.md §4.3.2 step 4 has already grouped contiguous grapheme
// clusters sharing one font before this stage runs). fontID identifies the
// font chosen by that step; script and lang drive the shaping engine's
// script-specific rules (e.g. Arabic contextual forms, Devanagari
// reordering); rtl is the run's resolved bidi direction.
type Shaper interface {
	ShapeRun(runText string, fontID string, style styleddom.ComputedStyle, script, lang string, rtl bool) []text.ShapedCluster
}

// Shape walks visual items in visual order, grouping contiguous items that
// share a font into sub-runs (spec.md §4.3.2 step 4's grouping is assumed
// already reflected in consecutive items carrying equal fontID; callers
// typically pass one font id per item since per-grapheme font selection
// happens before this stage) and shapes each sub-run via shaper. A visual
// item with empty Text (an atomic inline or forced break placeholder) is
// passed straight through as a single-glyph cluster with no shaping.
func Shape(items []text.VisualItem, fontIDs []string, shaper Shaper) []text.ShapedCluster {
	var out []text.ShapedCluster
	i := 0
	for i < len(items) {
		it := items[i]
		if it.Text == "" {
			out = append(out, text.ShapedCluster{
				ClusterStart: it.SourceStart,
				ClusterEnd:   it.SourceEnd,
				Style:        it.Style,
			})
			i++
			continue
		}
		fontID := ""
		if i < len(fontIDs) {
			fontID = fontIDs[i]
		}
		j := i + 1
		runText := it.Text
		for j < len(items) && items[j].Text != "" && fontIDOf(fontIDs, j) == fontID && sameStyleAndDirection(items[j], it) {
			runText += items[j].Text
			j++
		}
		rtl := it.BidiLevel%2 == 1
		clusters := shaper.ShapeRun(runText, fontID, it.Style, it.Script, languageOf(it.Style), rtl)
		out = append(out, clusters...)
		i = j
	}
	return out
}

func fontIDOf(ids []string, i int) string {
	if i < len(ids) {
		return ids[i]
	}
	return ""
}

func sameStyleAndDirection(a, b text.VisualItem) bool {
	return a.BidiLevel == b.BidiLevel && a.Script == b.Script
}

func languageOf(style styleddom.ComputedStyle) string {
	if style.Lang != "" {
		return style.Lang
	}
	return ""
}
