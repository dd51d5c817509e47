/*
Package cssval implements the CSS dimension value type sizing and the
formatting contexts match against: a length, a percentage, auto, or one of
the content-dependent keywords (min-content/max-content/fit-content).

This is the generics-based DMatchExpr[T]/OneOf pattern from
github.com/npillmayer/tyse/engine/dom/style/css's DimenT, chosen over the
teacher's older core/option-based Match(option.Of{...}) monadic dispatch:
it composes with Go generics instead of interface{} type-switches, and auto
is a distinct flag bit rather than a value that could be confused with a
resolved zero. The flag-bitset encoding and the OneOf dispatch table shape
are kept; the unit set is the one spec.md §4.2 actually needs.
*/
package cssval

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/solver3/solver3/core/dimen"
	"github.com/solver3/solver3/core/percent"
)

type flag uint32

const (
	unset flag = 0

	fAbsolute flag = 0x0001
	fAuto     flag = 0x0002
	fPercent  flag = 0x0003
	fMinContent flag = 0x0004
	fMaxContent flag = 0x0005
	fFitContent flag = 0x0006
	kindMask    flag = 0x000f
)

// Value is a CSS dimension: a resolved length, a percentage, auto, or a
// content-dependent keyword. The zero Value is unset (distinct from 0sp).
type Value struct {
	d       dimen.DU
	percent percent.Percent
	flags   flag
}

// Auto returns the `auto` value.
func Auto() Value { return Value{flags: fAuto} }

// Just returns a fixed-length value.
func Just(d dimen.DU) Value { return Value{d: d, flags: fAbsolute} }

// Percentage returns a percentage value.
func Percentage(p percent.Percent) Value { return Value{percent: p, flags: fPercent} }

// MinContent returns the `min-content` keyword value.
func MinContent() Value { return Value{flags: fMinContent} }

// MaxContent returns the `max-content` keyword value.
func MaxContent() Value { return Value{flags: fMaxContent} }

// FitContent returns the `fit-content` keyword value.
func FitContent() Value { return Value{flags: fFitContent} }

// IsNone reports whether v is unset.
func (v Value) IsNone() bool { return v.flags == unset }

// IsAuto reports whether v is the `auto` keyword.
func (v Value) IsAuto() bool { return v.flags == fAuto }

// IsPercent reports whether v is a percentage.
func (v Value) IsPercent() bool { return v.flags == fPercent }

// IsAbsolute reports whether v is a fixed length.
func (v Value) IsAbsolute() bool { return v.flags == fAbsolute }

// Dimen returns the fixed length; only meaningful if IsAbsolute.
func (v Value) Dimen() dimen.DU { return v.d }

// Percent returns the percentage; only meaningful if IsPercent.
func (v Value) Percent() percent.Percent { return v.percent }

// Resolve computes v against a containing-block dimension, per spec.md
// §4.2: percentages resolve against the containing-block's logical size on
// the matching axis; auto and content-dependent keywords have no resolution
// without further context and return (0, false).
func (v Value) Resolve(containingBlock dimen.DU) (dimen.DU, bool) {
	switch v.flags {
	case fAbsolute:
		return v.d, true
	case fPercent:
		return dimen.DU(int64(containingBlock) * int64(v.percent) / 100), true
	default:
		return 0, false
	}
}

// Patterns is the OneOf dispatch table: supply a result of type T for each
// value kind that applies to the call site.
type Patterns[T any] struct {
	Unset      T
	Auto       T
	Just       T
	Percent    T
	MinContent T
	MaxContent T
	FitContent T
}

// Matcher binds a Value for OneOf dispatch.
type Matcher[T any] struct {
	v Value
}

// Match starts a OneOf dispatch over v.
func Match[T any](v Value) *Matcher[T] {
	return &Matcher[T]{v: v}
}

// OneOf returns the pattern matching v's kind.
func (m *Matcher[T]) OneOf(p Patterns[T]) T {
	switch m.v.flags {
	case unset:
		return p.Unset
	case fAuto:
		return p.Auto
	case fAbsolute:
		return p.Just
	case fPercent:
		return p.Percent
	case fMinContent:
		return p.MinContent
	case fMaxContent:
		return p.MaxContent
	case fFitContent:
		return p.FitContent
	}
	var zero T
	return zero
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)(%|[a-zA-Z]{2,4})?$`)

// Parse parses a CSS length/percentage/auto string into a Value. Empty input
// and "none" give an unset Value and no error; input it cannot read (a
// malformed number or an unknown unit) gives an unset Value and an error.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return Value{}, nil
	}
	switch s {
	case "auto":
		return Auto(), nil
	case "min-content":
		return MinContent(), nil
	case "max-content":
		return MaxContent(), nil
	case "fit-content":
		return FitContent(), nil
	case "thin":
		return Just(dimen.PX / 2), nil
	case "medium":
		return Just(dimen.PX), nil
	case "thick":
		return Just(dimen.PX * 2), nil
	}
	parts := dimenPattern.FindStringSubmatch(s)
	if len(parts) < 2 {
		return Value{}, errors.New("cssval: format error parsing dimension")
	}
	n, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Value{}, errors.New("cssval: format error parsing dimension")
	}
	if len(parts) > 2 && parts[2] == "%" {
		return Percentage(percent.FromFloat(n)), nil
	}
	scale := dimen.SP
	if len(parts) > 2 {
		switch strings.ToLower(parts[2]) {
		case "pt":
			scale = dimen.PT
		case "mm":
			scale = dimen.MM
		case "bp", "px":
			scale = dimen.BP
		case "cm":
			scale = dimen.CM
		case "in":
			scale = dimen.IN
		case "", "sp":
			scale = dimen.SP
		default:
			return Value{}, errors.New("cssval: unknown unit")
		}
	}
	return Just(dimen.DU(n * float64(scale))), nil
}
