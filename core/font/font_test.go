package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackFontParses(t *testing.T) {
	f := FallbackFont()
	require.NotNil(t, f)
	assert.NotNil(t, f.SFNT)
	assert.Equal(t, "Go Sans", f.Fontname)
}

func TestFallbackFontIsCachedSingleton(t *testing.T) {
	a := FallbackFont()
	b := FallbackFont()
	assert.Same(t, a, b)
}

func TestPrepareCaseFromFallbackFont(t *testing.T) {
	f := FallbackFont()
	tc, err := f.PrepareCase(12.0)
	require.NoError(t, err)
	assert.Equal(t, 12.0, tc.PtSize())
	assert.Same(t, f, tc.ScalableFontParent())
}

func TestNormalizeFontname(t *testing.T) {
	assert.Equal(t, "gill_sans_mt", NormalizeFontname("Gill Sans MT.ttf"))
	assert.Equal(t, "clarendon", NormalizeFontname("  Clarendon  "))
}
