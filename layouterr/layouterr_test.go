package layouterr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solver3/solver3/layouterr"
)

func TestRecoveredErrorUnwrapsToSentinel(t *testing.T) {
	re := layouterr.FontNotFound(3, 'A', "fallback")
	assert.True(t, errors.Is(re, layouterr.ErrFontNotFound))
	assert.False(t, errors.Is(re, layouterr.ErrShapingError))
}

func TestRecoveredErrorMessageIncludesContext(t *testing.T) {
	re := layouterr.FontNotFound(3, 'A', "fallback")
	msg := re.Error()
	assert.Contains(t, msg, "3")
	assert.Contains(t, msg, "fallback")
}
