package lit

import "github.com/nnf/saturn/order"

// Policy names a literal selection function (spec.md §4.4). Selection
// restricts which literals of a clause generating inferences may pivot
// on; an empty selection means all literals are eligible.
type Policy int

const (
	// SelectNone never restricts a clause: every literal is eligible.
	SelectNone Policy = iota
	// SelectOneNegative picks a single negative literal, arbitrarily the
	// first one found, when the clause has any.
	SelectOneNegative
	// SelectAllNegative picks every negative literal.
	SelectAllNegative
	// SelectMaximalNegative picks the negative literals that are maximal
	// (Gt or incomparable-to-none-greater) among the clause's negative
	// literals under the literal ordering.
	SelectMaximalNegative
)

// Select returns the indices, into lits, of the literals a policy
// selects. The result is always a subset of the negative literals
// (equality resolution and superposition-into-negative-literal rules
// are the only consumers of a non-empty selection in spec.md §4.5),
// except for SelectNone, whose empty return means "no restriction",
// not "select nothing" — callers must special-case len(selected)==0
// against policy==SelectNone to tell the two apart.
func Select(policy Policy, lits []*Literal, ord order.Ordering) []int {
	switch policy {
	case SelectOneNegative:
		for i, l := range lits {
			if l.IsNegative() {
				return []int{i}
			}
		}
		return nil
	case SelectAllNegative:
		var sel []int
		for i, l := range lits {
			if l.IsNegative() {
				sel = append(sel, i)
			}
		}
		return sel
	case SelectMaximalNegative:
		return selectMaximalNegative(lits, ord)
	default:
		return nil
	}
}

func selectMaximalNegative(lits []*Literal, ord order.Ordering) []int {
	var neg []int
	for i, l := range lits {
		if l.IsNegative() {
			neg = append(neg, i)
		}
	}
	if len(neg) == 0 {
		return nil
	}
	var sel []int
	for _, i := range neg {
		maximal := true
		for _, j := range neg {
			if i == j {
				continue
			}
			if Compare(ord, lits[j], lits[i]) == order.Gt {
				maximal = false
				break
			}
		}
		if maximal {
			sel = append(sel, i)
		}
	}
	return sel
}
