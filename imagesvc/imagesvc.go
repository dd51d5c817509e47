/*
Package imagesvc is the image/object collaborator contract spec.md §6
names: intrinsic size (width, height, baseline) for any referenced
image/object id. The core never decodes image bytes itself — an embedder
supplies a Service backed by whatever image/object store it has.
*/
package imagesvc

import "github.com/solver3/solver3/core/dimen"

// Intrinsic is an image or object's natural size and baseline, the only
// information the layout core needs to size an atomic inline or
// replaced-element box (spec.md §6).
type Intrinsic struct {
	Width, Height dimen.DU
	Baseline      dimen.DU
}

// Service resolves a referenced image/object id to its intrinsic size.
// When an id is unknown, Lookup returns ok == false; callers recover per
// spec.md §7's ImageUnavailable policy (treat as a zero-sized atomic
// inline with alt-text metrics) rather than treating this as fatal.
type Service interface {
	Lookup(id string) (Intrinsic, bool)
}

// Static is a Service backed by a fixed, pre-populated map — the shape the
// end-to-end test fixtures and any embedder without a live image store use.
type Static map[string]Intrinsic

func (s Static) Lookup(id string) (Intrinsic, bool) {
	i, ok := s[id]
	return i, ok
}

var _ Service = Static(nil)
