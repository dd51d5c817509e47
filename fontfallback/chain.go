package fontfallback

import (
	"github.com/solver3/solver3/core/font"
	"github.com/solver3/solver3/core/font/opentype/ot"
)

// chainEntry is one font in a resolved fallback chain: the loaded scalable
// font plus its parsed cmap for coverage testing.
type chainEntry struct {
	id       string
	sf       *font.ScalableFont
	otf      *ot.Font // nil if the font's tables could not be parsed
}

// covers reports whether the entry's font has a glyph for r.
func (e chainEntry) covers(r rune) bool {
	if e.otf == nil || e.otf.CMap == nil || e.otf.CMap.GlyphIndexMap == nil {
		return false
	}
	return e.otf.CMap.GlyphIndexMap.Lookup(r) != 0
}

// Chain is an ordered, resolved font-fallback chain for one
// (font-family-list, weight, italic, oblique) combination. The last entry is
// always the system fallback font, which is considered to cover everything.
type Chain struct {
	entries []chainEntry
}

// SelectFont returns the font id of the first chain entry that covers r. If
// no entry explicitly covers it, the fallback font's id is returned.
func (c Chain) SelectFont(r rune) string {
	for _, e := range c.entries {
		if e.covers(r) {
			return e.id
		}
	}
	if len(c.entries) > 0 {
		return c.entries[len(c.entries)-1].id
	}
	return "fallback"
}

// FontID returns the id of the chain's nth entry, or the fallback id if n is
// out of range.
func (c Chain) FontID(n int) string {
	if n < 0 || n >= len(c.entries) {
		return c.SelectFont(0)
	}
	return c.entries[n].id
}

// scalableFontFor returns the loaded font backing fontID, used by the
// shaper to resolve glyph metrics once SelectFont has picked a font.
func (c Chain) scalableFontFor(fontID string) *font.ScalableFont {
	for _, e := range c.entries {
		if e.id == fontID {
			return e.sf
		}
	}
	return nil
}
