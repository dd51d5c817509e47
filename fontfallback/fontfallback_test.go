package fontfallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFallsBackWhenNoSystemFontMatches(t *testing.T) {
	r := NewResolver()
	chain := r.Resolve([]string{"Some Font That Does Not Exist Anywhere"}, 400, false, false)
	require.NotNil(t, chain)
	require.NotEmpty(t, chain.entries)
	assert.Equal(t, "fallback", chain.entries[len(chain.entries)-1].id)
}

func TestResolveCachesByExactKeyOnly(t *testing.T) {
	r := NewResolver()
	a := r.Resolve([]string{"Arial", "Helvetica"}, 400, false, false)
	b := r.Resolve([]string{"Arial", "Helvetica"}, 400, false, false)
	assert.Same(t, a, b)

	c := r.Resolve([]string{"Arial", "Helvetica"}, 700, false, false)
	assert.NotSame(t, a, c)
}

func TestSelectFontCoversAsciiViaFallback(t *testing.T) {
	r := NewResolver()
	chain := r.Resolve([]string{"Nonexistent Family"}, 400, false, false)
	id := chain.SelectFont('A')
	assert.Equal(t, "fallback", id)
}

func TestMakeCacheKeyIgnoresTextContent(t *testing.T) {
	k1 := makeCacheKey([]string{"Arial"}, 400, false, false)
	k2 := makeCacheKey([]string{"Arial"}, 400, false, false)
	assert.Equal(t, k1, k2)
}
