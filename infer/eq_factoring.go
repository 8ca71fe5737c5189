package infer

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
	"github.com/nnf/saturn/unify"
)

// EqualityFactoring computes every equality-factoring inference from
// c: for two positive equations s ≈ t and u ≈ v with σ = mgu(s, u) and
// sσ ≥ tσ, derive Cσ ∨ t ≉ v ∨ u ≈ v (spec.md §4.5).
func EqualityFactoring(st *term.Store, cs *clause.Store, ord order.Ordering, c *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	lits := c.Lits()
	for i, li := range lits {
		if li.Kind() != lit.KEquation || !li.Sign() || !c.IsSelected(i) {
			continue
		}
		for j, lj := range lits {
			if i == j || lj.Kind() != lit.KEquation || !lj.Sign() {
				continue
			}
			for _, sPair := range [2][2]*term.Term{{li.L(), li.R()}, {li.R(), li.L()}} {
				s, t := sPair[0], sPair[1]
				for _, uPair := range [2][2]*term.Term{{lj.L(), lj.R()}, {lj.R(), lj.L()}} {
					u, v := uPair[0], uPair[1]
					if c := tryOneEqFactoring(st, cs, ord, c, i, j, s, t, u, v); c != nil {
						out = append(out, c)
					}
				}
			}
		}
	}
	return out
}

func tryOneEqFactoring(st *term.Store, cs *clause.Store, ord order.Ordering, c *clause.Clause, i, j int, s, t, u, v *term.Term) *clause.Clause {
	mgu, err := unify.Unify(st, subst.New(), subst.Scoped{Term: s, Scope: fromScope}, subst.Scoped{Term: u, Scope: fromScope})
	if err != nil {
		return nil
	}
	ren := subst.NewRenamer(outScope, 1)

	sσ := mgu.Apply(st, subst.Scoped{Term: s, Scope: fromScope}, ren)
	tσ := mgu.Apply(st, subst.Scoped{Term: t, Scope: fromScope}, ren)
	if cmp := ord.Compare(sσ, tσ); cmp != order.Gt && cmp != order.Eq {
		return nil // sσ ≥ tσ is required
	}

	lits := c.Lits()
	Cσ := applyClauseLits(st, ord, mgu, ren, lits, fromScope)
	pivotσ := lit.NewEquation(ord, sσ, tσ, true)
	if !isMaximalLit(ord, pivotσ, without(Cσ, i)) {
		return nil
	}

	uσ := mgu.Apply(st, subst.Scoped{Term: u, Scope: fromScope}, ren)
	vσ := mgu.Apply(st, subst.Scoped{Term: v, Scope: fromScope}, ren)

	remainder := make([]*lit.Literal, 0, len(lits)-2)
	for k, l := range Cσ {
		if k != i && k != j {
			remainder = append(remainder, l)
		}
	}
	remainder = append(remainder, lit.NewEquation(ord, tσ, vσ, false), lit.NewEquation(ord, uσ, vσ, true))

	return cs.New(ord, remainder, c.Trail(),
		clause.Inference(clause.RuleEqualityFactoring, clause.Parent{Clause: c, Subst: mgu}))
}
