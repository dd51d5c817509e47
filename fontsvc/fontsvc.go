/*
Package fontsvc is the font discovery collaborator contract spec.md §6
names: build-time enumeration of installed fonts and lazy byte access for
a resolved font id. fontfallback.Resolver is the concrete implementation
this module ships; an embedder may substitute another (a bundled font set,
a remote font service) as long as it satisfies this interface.
*/
package fontsvc

import "github.com/solver3/solver3/fontfallback"

// Descriptor is one discovered font: its family, weight/style, and the id
// ResolveChain/GetFontBytes key off of.
type Descriptor struct {
	ID      string
	Family  string
	Weight  int
	Italic  bool
	Oblique bool
}

// Service is the font discovery collaborator: chain resolution cached
// strictly by (families, weight, italic, oblique), plus lazy byte access
// for a resolved font id.
type Service interface {
	// ResolveChain resolves a CSS font descriptor to a fallback chain. The
	// cache key is exactly (families, weight, italic, oblique) — never any
	// representative text, per spec.md §4.5/§5.
	ResolveChain(families []string, weight int, italic, oblique bool) *fontfallback.Chain

	// GetFontBytes returns the raw font bytes backing fontID, for a
	// painter or shaper that needs to parse tables lazily.
	GetFontBytes(fontID string) ([]byte, bool)

	// ListInstalled enumerates fonts discovered at build/start time.
	ListInstalled() []Descriptor
}
