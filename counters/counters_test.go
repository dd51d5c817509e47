package counters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solver3/solver3/counters"
	"github.com/solver3/solver3/styleddom"
)

func TestListItemIncrementReadsFromParent(t *testing.T) {
	s := counters.NewScope()
	pop := s.ApplyResets(counters.EffectiveResets(styleddom.ComputedStyle{}, true))
	defer pop()

	s.ApplyIncrements(counters.EffectiveIncrements(styleddom.ComputedStyle{}, true))
	assert.Equal(t, 1, s.Value(counters.ListItemCounterName))
	s.ApplyIncrements(counters.EffectiveIncrements(styleddom.ComputedStyle{}, true))
	assert.Equal(t, 2, s.Value(counters.ListItemCounterName))
}

func TestNestedListScopesIndependently(t *testing.T) {
	s := counters.NewScope()
	popOuter := s.ApplyResets(counters.EffectiveResets(styleddom.ComputedStyle{}, true))
	s.ApplyIncrements(counters.EffectiveIncrements(styleddom.ComputedStyle{}, true))
	assert.Equal(t, 1, s.Value(counters.ListItemCounterName))

	popInner := s.ApplyResets(counters.EffectiveResets(styleddom.ComputedStyle{}, true))
	assert.Equal(t, 0, s.Value(counters.ListItemCounterName))
	s.ApplyIncrements(counters.EffectiveIncrements(styleddom.ComputedStyle{}, true))
	assert.Equal(t, 1, s.Value(counters.ListItemCounterName))
	popInner()

	assert.Equal(t, 1, s.Value(counters.ListItemCounterName))
	popOuter()
}

func TestFormatMarkerDecimalLeadingZero(t *testing.T) {
	assert.Equal(t, "05", counters.FormatMarker(5, styleddom.ListDecimalLeadingZero))
	assert.Equal(t, "12", counters.FormatMarker(12, styleddom.ListDecimalLeadingZero))
}

func TestFormatMarkerRoman(t *testing.T) {
	assert.Equal(t, "XIV", counters.FormatMarker(14, styleddom.ListUpperRoman))
	assert.Equal(t, "xiv", counters.FormatMarker(14, styleddom.ListLowerRoman))
}

func TestFormatMarkerAlpha(t *testing.T) {
	assert.Equal(t, "A", counters.FormatMarker(1, styleddom.ListUpperAlpha))
	assert.Equal(t, "z", counters.FormatMarker(26, styleddom.ListLowerAlpha))
	assert.Equal(t, "AA", counters.FormatMarker(27, styleddom.ListUpperAlpha))
}
