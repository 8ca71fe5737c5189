package infer

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
	"github.com/nnf/saturn/unify"
)

// EqualityResolution computes every equality-resolution inference from
// c: for each selected negative literal s ≉ t, if σ = mgu(s, t)
// succeeds, derive Cσ (spec.md §4.5).
func EqualityResolution(st *term.Store, cs *clause.Store, ord order.Ordering, c *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	for i, l := range c.Lits() {
		if l.Kind() != lit.KEquation || l.Sign() {
			continue
		}
		if !c.IsSelected(i) {
			continue
		}
		mgu, err := unify.Unify(st, subst.New(),
			subst.Scoped{Term: l.L(), Scope: fromScope}, subst.Scoped{Term: l.R(), Scope: fromScope})
		if err != nil {
			continue
		}
		ren := subst.NewRenamer(outScope, 1)
		concLits := applyClauseLits(st, ord, mgu, ren, without(c.Lits(), i), fromScope)
		out = append(out, cs.New(ord, concLits, c.Trail(),
			clause.Inference(clause.RuleEqualityResolution, clause.Parent{Clause: c, Subst: mgu})))
	}
	return out
}
