package fontfallback

import (
	"bytes"

	"github.com/benoitkugler/textlayout/fonts/truetype"
	"github.com/benoitkugler/textlayout/harfbuzz"
	hblang "github.com/benoitkugler/textlayout/language"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/core/font"
	"github.com/solver3/solver3/styleddom"
	"github.com/solver3/solver3/text"
)

// Shaper implements text/shape.Shaper on top of a Resolver's resolved
// chains: it looks the font id back up to its loaded bytes and shapes with
// harfbuzz (github.com/benoitkugler/textlayout/harfbuzz), falling back to
// advance widths straight from the font's glyph metrics if harfbuzz cannot
// load the font's tables (e.g. a stripped or malformed face).
type Shaper struct {
	chain  *Chain
	hbFont map[string]*harfbuzz.Font
}

// NewShaper wraps a resolved chain as a text/shape.Shaper.
func NewShaper(chain *Chain) *Shaper {
	return &Shaper{chain: chain, hbFont: make(map[string]*harfbuzz.Font)}
}

func (s *Shaper) ShapeRun(runText string, fontID string, style styleddom.ComputedStyle, script, lang string, rtl bool) []text.ShapedCluster {
	hb := s.hbFontFor(fontID)
	if hb == nil {
		return s.metricsFallback(runText, fontID, style)
	}

	buf := harfbuzz.NewBuffer()
	buf.AddRunes([]rune(runText), 0, -1)
	if rtl {
		buf.Props.Direction = harfbuzz.RightToLeft
	} else {
		buf.Props.Direction = harfbuzz.LeftToRight
	}
	buf.Props.Script = scriptTag(script)
	if lang != "" {
		buf.Props.Language = hblang.NewLanguage(lang)
	}
	buf.Shape(hb, nil)

	out := make([]text.ShapedCluster, 0, len(buf.Info))
	scale := style.FontSizePx * float64(dimen.PX) / 1000.0
	for i, info := range buf.Info {
		pos := buf.Pos[i]
		out = append(out, text.ShapedCluster{
			Glyphs:       []uint32{info.Glyph},
			Advances:     []dimen.DU{dimen.DU(float64(pos.XAdvance) * scale)},
			ClusterStart: int(info.Cluster),
			ClusterEnd:   int(info.Cluster) + 1,
			FontID:       fontID,
			Style:        style,
		})
	}
	return out
}

// metricsFallback shapes one cluster per rune using plain glyph-advance
// metrics from the font's golang.org/x/image/font.Face, with no ligatures,
// kerning, or contextual substitution — used only when harfbuzz could not
// load the font's tables at all.
func (s *Shaper) metricsFallback(runText string, fontID string, style styleddom.ComputedStyle) []text.ShapedCluster {
	sf := s.chain.scalableFontFor(fontID)
	var tc *font.TypeCase
	if sf != nil {
		tc, _ = sf.PrepareCase(style.FontSizePx)
	}
	var out []text.ShapedCluster
	pos := 0
	for _, r := range runText {
		adv := dimen.DU(style.FontSizePx * 0.6 * float64(dimen.PX))
		if tc != nil {
			if a, ok := tc.Face().GlyphAdvance(r); ok {
				adv = dimen.DU(a.Round()) * dimen.PX / 64
			}
		}
		n := len(string(r))
		out = append(out, text.ShapedCluster{
			Glyphs:       []uint32{uint32(r)},
			Advances:     []dimen.DU{adv},
			ClusterStart: pos,
			ClusterEnd:   pos + n,
			FontID:       fontID,
			Style:        style,
		})
		pos += n
	}
	return out
}

func (s *Shaper) hbFontFor(fontID string) *harfbuzz.Font {
	if hb, ok := s.hbFont[fontID]; ok {
		return hb
	}
	sf := s.chain.scalableFontFor(fontID)
	if sf == nil || len(sf.Binary) == 0 {
		s.hbFont[fontID] = nil
		return nil
	}
	face, err := truetype.Parse(bytes.NewReader(sf.Binary), 0)
	if err != nil {
		T().Infof("fontfallback: harfbuzz could not load %s: %v", sf.Fontname, err)
		s.hbFont[fontID] = nil
		return nil
	}
	hb := harfbuzz.NewFont(face)
	s.hbFont[fontID] = hb
	return hb
}

func scriptTag(script string) hblang.Script {
	tag, _ := hblang.ParseScript(script)
	return tag
}
