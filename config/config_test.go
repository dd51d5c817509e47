package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solver3/solver3/core/dimen"
)

func TestRegistersDefaults(t *testing.T) {
	regs := NewRegisters()
	assert.Equal(t, "en", regs.S(P_LANGUAGE))
	assert.Equal(t, 5, regs.N(P_MINHYPHENLENGTH))
}

func TestRegistersScopedOverride(t *testing.T) {
	regs := NewRegisters()
	regs.Begingroup()
	regs.Push(P_BORDERSPACINGH, 10*dimen.PT)
	assert.Equal(t, 10*dimen.PT, regs.D(P_BORDERSPACINGH))
	regs.Endgroup()
	assert.Equal(t, dimen.DU(0), regs.D(P_BORDERSPACINGH))
}

func TestRegistersNestedGroups(t *testing.T) {
	regs := NewRegisters()
	regs.Push(P_LANGUAGE, "en")
	regs.Begingroup()
	regs.Push(P_LANGUAGE, "de")
	regs.Begingroup()
	regs.Push(P_LANGUAGE, "fr")
	assert.Equal(t, "fr", regs.S(P_LANGUAGE))
	regs.Endgroup()
	assert.Equal(t, "de", regs.S(P_LANGUAGE))
	regs.Endgroup()
	assert.Equal(t, "en", regs.S(P_LANGUAGE))
}
