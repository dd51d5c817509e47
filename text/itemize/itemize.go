package itemize

import (
	"reflect"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/solver3/solver3/text"
)

// Itemize cuts content at style boundaries, atomic-inline boundaries, and
// script-run boundaries, per spec.md §4.3.2 step 1. Bidi level boundaries
// are not cut here: text/bidiwrap re-splits an item when the Unicode Bidi
// Algorithm finds a level change inside it.
//
// A non-text item (image, shape, forced break) becomes a zero-length
// LogicalItem whose Origin identifies the originating content.Origin so
// later stages can look the real content back up; Script is left empty
// for these, a value no real script run produces.
func Itemize(content []text.InlineContent) []text.LogicalItem {
	var items []text.LogicalItem
	for _, c := range content {
		switch c.Kind {
		case text.ContentText:
			items = append(items, itemizeRun(c.Run)...)
		default:
			items = append(items, text.LogicalItem{Origin: c.Origin})
		}
	}
	return items
}

func itemizeRun(run text.StyledRun) []text.LogicalItem {
	normalized := norm.NFC.String(run.Text)
	runes := []rune(normalized)
	if len(runes) == 0 {
		return nil
	}

	var items []text.LogicalItem
	start := 0
	curScript := scriptOf(runes[0])
	for i := 1; i <= len(runes); i++ {
		atEnd := i == len(runes)
		var s string
		if !atEnd {
			s = scriptOf(runes[i])
		}
		// Common runes (space/punctuation/digits) attach to the
		// enclosing run rather than forcing a boundary; only a change
		// between two real scripts cuts a new item.
		boundary := !atEnd && s != "Common" && s != curScript
		if atEnd || boundary {
			items = append(items, text.LogicalItem{
				Text:        string(runes[start:i]),
				Style:       run.Style,
				Script:      curScript,
				SourceStart: start,
				SourceEnd:   i,
				Origin:      run.Origin,
			})
			if !atEnd {
				start = i
				curScript = s
			}
		}
	}
	return items
}

// SplitByStyle groups logical items into runs that share an identical
// style, the unit text/shape's font-fallback cache keys on (spec.md
// §4.3.2 step 3: "resolve once ... never by text content").
func SplitByStyle(items []text.LogicalItem) [][]text.LogicalItem {
	var groups [][]text.LogicalItem
	var cur []text.LogicalItem
	for _, it := range items {
		if len(cur) > 0 && !reflect.DeepEqual(cur[0].Style, it.Style) {
			groups = append(groups, cur)
			cur = nil
		}
		cur = append(cur, it)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// scriptOf classifies r into a coarse script family using the standard
// library's unicode range tables. "Common" covers punctuation/digits/
// whitespace, which never forces a run boundary on its own — it attaches
// to whichever real script run surrounds it.
func scriptOf(r rune) string {
	switch {
	case unicode.Is(unicode.Latin, r):
		return "Latin"
	case unicode.Is(unicode.Han, r):
		return "Han"
	case unicode.Is(unicode.Hiragana, r):
		return "Hiragana"
	case unicode.Is(unicode.Katakana, r):
		return "Katakana"
	case unicode.Is(unicode.Hangul, r):
		return "Hangul"
	case unicode.Is(unicode.Arabic, r):
		return "Arabic"
	case unicode.Is(unicode.Hebrew, r):
		return "Hebrew"
	case unicode.Is(unicode.Cyrillic, r):
		return "Cyrillic"
	case unicode.Is(unicode.Devanagari, r):
		return "Devanagari"
	case unicode.IsSpace(r), unicode.IsPunct(r), unicode.IsDigit(r):
		return "Common"
	default:
		return "Common"
	}
}

