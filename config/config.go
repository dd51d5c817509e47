package config

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/solver3/solver3/core/dimen"
)

// Parameter identifies a scoped configuration register.
type Parameter int

const (
	none Parameter = iota
	P_LANGUAGE
	P_SCRIPT
	P_TEXTDIRECTION
	P_VIEWPORTWIDTH
	P_VIEWPORTHEIGHT
	P_FONTSTACK
	P_HYPHENPENALTY
	P_MINHYPHENLENGTH
	P_TABLEAUTOLAYOUTMAXPASSES
	P_JUSTIFYMAXPASSES
	P_BORDERSPACINGH
	P_BORDERSPACINGV
	stopper
)

// Group is one level of pushed overrides.
type Group struct {
	params map[Parameter]interface{}
	level  int
	next   *Group
}

// Registers is the scoped register stack every formatting context reads
// from and locally overrides via Begingroup/Push/Endgroup.
type Registers struct {
	base       [stopper]interface{}
	groups     *Group
	grouplevel int
}

// NewRegisters creates a register set with solver3's defaults.
func NewRegisters() *Registers {
	regs := &Registers{}
	initDefaults(&regs.base)
	return regs
}

func initDefaults(p *[stopper]interface{}) {
	p[P_LANGUAGE] = "en"
	p[P_SCRIPT] = "Latn"
	p[P_TEXTDIRECTION] = bidi.LeftToRight
	p[P_VIEWPORTWIDTH] = dimen.DU(0)
	p[P_VIEWPORTHEIGHT] = dimen.DU(0)
	p[P_FONTSTACK] = []string{"serif"}
	p[P_HYPHENPENALTY] = 50
	p[P_MINHYPHENLENGTH] = 5
	p[P_TABLEAUTOLAYOUTMAXPASSES] = 8
	p[P_JUSTIFYMAXPASSES] = 4
	p[P_BORDERSPACINGH] = dimen.DU(0)
	p[P_BORDERSPACINGV] = dimen.DU(0)
}

// Begingroup opens a new override scope. Call before recursing into a
// subtree that may locally shadow registers.
func (regs *Registers) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the most recently opened override scope, discarding any
// values pushed into it.
func (regs *Registers) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

// Push sets key to value, scoped to the currently open group (or the base
// level if no group is open).
func (regs *Registers) Push(key Parameter, value interface{}) {
	if regs.grouplevel > 0 {
		var g *Group
		switch {
		case regs.groups == nil:
			g = &Group{params: map[Parameter]interface{}{}, level: regs.grouplevel}
			regs.groups = g
		case regs.groups.level < regs.grouplevel:
			g = &Group{params: map[Parameter]interface{}{}, level: regs.grouplevel, next: regs.groups}
			regs.groups = g
		default:
			g = regs.groups
		}
		g.params[key] = value
		return
	}
	regs.base[key] = value
}

// Get returns the value currently visible for key, walking open groups from
// innermost to outermost before falling back to the base level.
func (regs *Registers) Get(key Parameter) interface{} {
	if key <= 0 || key >= stopper {
		panic("config: parameter key out of range")
	}
	for g := regs.groups; g != nil; g = g.next {
		if v, ok := g.params[key]; ok {
			return v
		}
	}
	return regs.base[key]
}

// S returns key's value as a string.
func (regs *Registers) S(key Parameter) string { return regs.Get(key).(string) }

// N returns key's value as an int.
func (regs *Registers) N(key Parameter) int { return regs.Get(key).(int) }

// D returns key's value as a dimen.DU.
func (regs *Registers) D(key Parameter) dimen.DU { return regs.Get(key).(dimen.DU) }

// Dir returns key's value as a bidi.Direction.
func (regs *Registers) Dir(key Parameter) bidi.Direction { return regs.Get(key).(bidi.Direction) }

// Fonts returns key's value as a font stack ([]string).
func (regs *Registers) Fonts(key Parameter) []string { return regs.Get(key).([]string) }
