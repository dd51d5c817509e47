package counters

import "github.com/solver3/solver3/styleddom"

// ListItemCounterName is the implicit counter `<ol>`/`<ul>`/`<li>` share,
// per spec.md §4.3.6's user-agent rules.
const ListItemCounterName = "list-item"

// EffectiveResets returns style's own counter-reset ops, plus the implicit
// `counter-reset: list-item 0` the user-agent stylesheet applies to
// `<ol>`/`<ul>` elements.
func EffectiveResets(style styleddom.ComputedStyle, isListContainer bool) []styleddom.CounterOp {
	ops := append([]styleddom.CounterOp(nil), style.CounterReset...)
	if isListContainer && !hasOp(ops, ListItemCounterName) {
		ops = append(ops, styleddom.CounterOp{Name: ListItemCounterName, Value: 0})
	}
	return ops
}

// EffectiveIncrements returns style's own counter-increment ops, plus the
// implicit `counter-increment: list-item 1` the user-agent stylesheet
// applies to `<li>` elements.
func EffectiveIncrements(style styleddom.ComputedStyle, isListItem bool) []styleddom.CounterOp {
	ops := append([]styleddom.CounterOp(nil), style.CounterIncrement...)
	if isListItem && !hasOp(ops, ListItemCounterName) {
		ops = append(ops, styleddom.CounterOp{Name: ListItemCounterName, Value: 1})
	}
	return ops
}

func hasOp(ops []styleddom.CounterOp, name string) bool {
	for _, op := range ops {
		if op.Name == name {
			return true
		}
	}
	return false
}
