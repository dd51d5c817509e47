package cssval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solver3/solver3/core/dimen"
)

func TestParseAuto(t *testing.T) {
	v, err := Parse("auto")
	assert.NoError(t, err)
	assert.True(t, v.IsAuto())
}

func TestParsePixels(t *testing.T) {
	v, err := Parse("12px")
	assert.NoError(t, err)
	assert.True(t, v.IsAbsolute())
	assert.Equal(t, 12*dimen.BP, v.Dimen())
}

func TestParsePercent(t *testing.T) {
	v, err := Parse("50%")
	assert.NoError(t, err)
	assert.True(t, v.IsPercent())
	resolved, ok := v.Resolve(200 * dimen.BP)
	assert.True(t, ok)
	assert.Equal(t, 100*dimen.BP, resolved)
}

func TestAutoNeverConflatesWithZero(t *testing.T) {
	auto := Auto()
	zero := Just(0)
	assert.NotEqual(t, auto, zero)
	_, ok := auto.Resolve(100 * dimen.BP)
	assert.False(t, ok, "auto must not resolve to a concrete dimension")
}

func TestOneOfDispatch(t *testing.T) {
	result := Match[string](Auto()).OneOf(Patterns[string]{
		Auto: "auto-branch",
		Just: "just-branch",
	})
	assert.Equal(t, "auto-branch", result)

	result = Match[string](Just(5 * dimen.PT)).OneOf(Patterns[string]{
		Auto: "auto-branch",
		Just: "just-branch",
	})
	assert.Equal(t, "just-branch", result)
}
