package fontsvc

import "github.com/solver3/solver3/fontfallback"

// ResolverService adapts a *fontfallback.Resolver to the Service interface.
type ResolverService struct {
	Resolver *fontfallback.Resolver
}

// NewResolverService wraps resolver as a Service.
func NewResolverService(resolver *fontfallback.Resolver) *ResolverService {
	return &ResolverService{Resolver: resolver}
}

func (s *ResolverService) ResolveChain(families []string, weight int, italic, oblique bool) *fontfallback.Chain {
	return s.Resolver.Resolve(families, weight, italic, oblique)
}

func (s *ResolverService) GetFontBytes(fontID string) ([]byte, bool) {
	return s.Resolver.FontBytes(fontID)
}

// ListInstalled returns the fonts the Resolver has loaded so far. The
// Resolver discovers fonts lazily, as families are resolved; system fonts
// are not scanned up front. Only ID and Family are filled in.
func (s *ResolverService) ListInstalled() []Descriptor {
	loaded := s.Resolver.Installed()
	out := make([]Descriptor, 0, len(loaded))
	for _, d := range loaded {
		out = append(out, Descriptor{ID: d.ID, Family: d.Family})
	}
	return out
}

var _ Service = (*ResolverService)(nil)
