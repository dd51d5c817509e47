package fontfallback

import (
	"strings"
	"sync"

	"github.com/flopp/go-findfont"

	"github.com/solver3/solver3/core/font"
	"github.com/solver3/solver3/core/font/fontregistry"
	"github.com/solver3/solver3/core/font/opentype/ot"
)

// cacheKey is exactly the four CSS properties that determine a fallback
// chain — never the text being rendered (SPEC_FULL.md §4.5, §5).
type cacheKey struct {
	families string
	weight   int
	italic   bool
	oblique  bool
}

func makeCacheKey(families []string, weight int, italic, oblique bool) cacheKey {
	return cacheKey{
		families: strings.Join(families, ","),
		weight:   weight,
		italic:   italic,
		oblique:  oblique,
	}
}

// Resolver resolves CSS font descriptors to fallback chains, caching the
// result per cacheKey behind a reader/writer mutex (the same guarded-shared-
// state shape as engine/frame's float-list bookkeeping).
type Resolver struct {
	mutex    sync.RWMutex
	cache    map[cacheKey]*Chain
	registry *fontregistry.Registry
	loaded   map[string]chainEntry
}

// NewResolver creates a Resolver backed by a fresh font registry.
func NewResolver() *Resolver {
	return &Resolver{
		cache:    make(map[cacheKey]*Chain),
		registry: fontregistry.NewRegistry(),
		loaded:   make(map[string]chainEntry),
	}
}

// FontBytes returns the raw bytes behind a previously resolved font id, for
// lazy table parsing by a painter or shaper (spec.md §6's
// "get_font_bytes(font_id) → bytes").
func (r *Resolver) FontBytes(fontID string) ([]byte, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	e, ok := r.loaded[fontID]
	if !ok || e.sf == nil {
		return nil, false
	}
	return e.sf.Binary, true
}

// Installed lists every font this resolver has discovered and loaded so
// far (not a full system font enumeration — discovery here is lazy, driven
// by the families layout actually asked to resolve).
func (r *Resolver) Installed() []Descriptor {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	out := make([]Descriptor, 0, len(r.loaded))
	for id, e := range r.loaded {
		if e.sf == nil {
			continue
		}
		out = append(out, Descriptor{ID: id, Family: e.sf.Fontname})
	}
	return out
}

// Descriptor is one loaded font's identity, exposed to fontsvc.Service
// implementations without requiring a dependency on fontsvc here (which
// would invert the intended dependency direction).
type Descriptor struct {
	ID     string
	Family string
}

// Resolve returns the fallback chain for the given CSS font properties,
// resolving and caching it on first use. The system fallback font is always
// appended as the chain's last, catch-all entry.
func (r *Resolver) Resolve(families []string, weight int, italic, oblique bool) *Chain {
	key := makeCacheKey(families, weight, italic, oblique)

	r.mutex.RLock()
	if c, ok := r.cache[key]; ok {
		r.mutex.RUnlock()
		return c
	}
	r.mutex.RUnlock()

	chain := r.build(families, weight, italic, oblique)

	r.mutex.Lock()
	r.cache[key] = chain
	for _, e := range chain.entries {
		r.loaded[e.id] = e
	}
	r.mutex.Unlock()
	return chain
}

func (r *Resolver) build(families []string, weight int, italic, oblique bool) *Chain {
	var entries []chainEntry
	for _, family := range families {
		e, ok := r.loadFamily(family, weight, italic, oblique)
		if ok {
			entries = append(entries, e)
		}
	}
	fb := font.FallbackFont()
	entries = append(entries, chainEntry{
		id:  "fallback",
		sf:  fb,
		otf: parseOT(fb),
	})
	return &Chain{entries: entries}
}

// loadFamily discovers a system font file for family via go-findfont, loads
// and parses it, and registers it under a normalized id in the resolver's
// registry so repeated resolutions of the same family reuse the same
// *font.ScalableFont.
func (r *Resolver) loadFamily(family string, weight int, italic, oblique bool) (chainEntry, bool) {
	id := fontregistry.NormalizeFontname(family, styleToXFont(italic, oblique), weightToXFont(weight))

	path, err := findfont.Find(family)
	if err != nil {
		T().Infof("fontfallback: system font %q not found: %v", family, err)
		return chainEntry{}, false
	}
	sf, err := font.LoadOpenTypeFont(path)
	if err != nil {
		T().Errorf("fontfallback: failed to parse %q (%s): %v", family, path, err)
		return chainEntry{}, false
	}
	r.registry.StoreFont(id, sf)
	return chainEntry{id: id, sf: sf, otf: parseOT(sf)}, true
}

// parseOT parses a scalable font's cmap for coverage testing. A parse
// failure just means the font contributes no coverage and is effectively
// skipped by Chain.SelectFont.
func parseOT(sf *font.ScalableFont) *ot.Font {
	if sf == nil || len(sf.Binary) == 0 {
		return nil
	}
	otf, err := ot.Parse(sf.Binary)
	if err != nil {
		T().Infof("fontfallback: cannot parse OpenType tables for %s: %v", sf.Fontname, err)
		return nil
	}
	return otf
}

