package simplify

import "github.com/nnf/saturn/lit"

func without(lits []*lit.Literal, idx int) []*lit.Literal {
	out := make([]*lit.Literal, 0, len(lits)-1)
	for i, l := range lits {
		if i != idx {
			out = append(out, l)
		}
	}
	return out
}
