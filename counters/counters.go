package counters

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/solver3/solver3/styleddom"
)

// Scope tracks every named counter's value stack across one document-order
// tree descent: counter-reset pushes a new value before descending into a
// node's children, counter-increment mutates the top of the stack, and
// leaving the node pops whatever it pushed.
type Scope struct {
	stacks map[string]*arraystack.Stack
}

// NewScope returns an empty counter scope.
func NewScope() *Scope {
	return &Scope{stacks: make(map[string]*arraystack.Stack)}
}

func (s *Scope) stackFor(name string) *arraystack.Stack {
	st, ok := s.stacks[name]
	if !ok {
		st = arraystack.New()
		s.stacks[name] = st
	}
	return st
}

// Reset pushes a fresh value for name, per a `counter-reset: name N`
// declaration (or the `<ol>`/`<ul>` user-agent default of
// `counter-reset: list-item 0`). Returns a function that pops it again —
// call it when leaving the node that pushed this scope.
func (s *Scope) Reset(name string, value int) func() {
	st := s.stackFor(name)
	st.Push(value)
	return func() { st.Pop() }
}

// Increment adds delta to the top of name's stack, per a
// `counter-increment: name K` declaration (or the `<li>` user-agent
// default of `counter-increment: list-item 1`). If no scope has reset
// this counter yet, Increment creates an implicit one starting at 0, per
// CSS's own implicit-root-scope behavior.
func (s *Scope) Increment(name string, delta int) {
	st := s.stackFor(name)
	top, ok := st.Peek()
	if !ok {
		st.Push(0)
		top = 0
	}
	st.Pop()
	st.Push(top.(int) + delta)
}

// Value returns the current top-of-stack value for name, or 0 if name has
// never been reset or incremented.
func (s *Scope) Value(name string) int {
	st := s.stackFor(name)
	top, ok := st.Peek()
	if !ok {
		return 0
	}
	return top.(int)
}

// ApplyResets pushes every counter-reset op in resets, returning the
// combined pop function (call once, in reverse order, when leaving the
// node).
func (s *Scope) ApplyResets(resets []styleddom.CounterOp) func() {
	var pops []func()
	for _, op := range resets {
		pops = append(pops, s.Reset(op.Name, op.Value))
	}
	return func() {
		for i := len(pops) - 1; i >= 0; i-- {
			pops[i]()
		}
	}
}

// ApplyIncrements applies every counter-increment op in increments.
func (s *Scope) ApplyIncrements(increments []styleddom.CounterOp) {
	for _, op := range increments {
		s.Increment(op.Name, op.Value)
	}
}

// FormatMarker renders value as list-item marker text per
// listStyleType, per spec.md §4.3.6.
func FormatMarker(value int, listStyleType styleddom.ListStyleType) string {
	switch listStyleType {
	case styleddom.ListNone:
		return ""
	case styleddom.ListDecimal:
		return strconv.Itoa(value)
	case styleddom.ListDecimalLeadingZero:
		s := strconv.Itoa(value)
		if len(s) < 2 {
			s = "0" + s
		}
		return s
	case styleddom.ListLowerRoman:
		return strings.ToLower(toRoman(value))
	case styleddom.ListUpperRoman:
		return toRoman(value)
	case styleddom.ListLowerAlpha:
		return strings.ToLower(toAlpha(value))
	case styleddom.ListUpperAlpha:
		return toAlpha(value)
	case styleddom.ListDisc:
		return "•"
	case styleddom.ListCircle:
		return "◦"
	case styleddom.ListSquare:
		return "▪"
	}
	return strconv.Itoa(value) // fallback: the formatted integer
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func toRoman(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}

// toAlpha renders n (1-based) as a base-26 letter sequence (a, b, ..., z,
// aa, ab, ...), the CSS lower/upper-alpha counter style.
func toAlpha(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for n > 0 {
		n--
		b.WriteByte(byte('A' + n%26))
		n /= 26
	}
	s := []byte(b.String())
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return string(s)
}
