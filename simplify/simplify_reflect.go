package simplify

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
	"github.com/nnf/saturn/unify"
)

// PositiveSimplifyReflect removes a negative literal s ≉ t from target
// when some unit positive equation u ≈ v in rules matches (s, t) (in
// either order) under a single substitution, meaning s ≈ t is already
// known and the disjunct is unsatisfiable in context (spec.md §4.6).
// Only a single matching instance is tried, not a full congruence
// closure over rules; see DESIGN.md.
func PositiveSimplifyReflect(st *term.Store, cs *clause.Store, ord order.Ordering, rules []*clause.Clause, target *clause.Clause) (*clause.Clause, bool) {
	return simplifyReflect(st, cs, ord, rules, target, false, true, clause.RuleSimplifyReflectPos)
}

// NegativeSimplifyReflect removes a positive literal s ≈ t from target
// when some unit negative equation u ≉ v in rules matches (s, t),
// dual to PositiveSimplifyReflect.
func NegativeSimplifyReflect(st *term.Store, cs *clause.Store, ord order.Ordering, rules []*clause.Clause, target *clause.Clause) (*clause.Clause, bool) {
	return simplifyReflect(st, cs, ord, rules, target, true, false, clause.RuleSimplifyReflectNeg)
}

func simplifyReflect(st *term.Store, cs *clause.Store, ord order.Ordering, rules []*clause.Clause, target *clause.Clause, targetSign, ruleSign bool, rule clause.Rule) (*clause.Clause, bool) {
	lits := target.Lits()
	startID := maxVarID(target.Vars()) + 1
	for _, rl := range rules {
		if !rl.IsUnit() {
			continue
		}
		req := rl.Lits()[0]
		if req.Kind() != lit.KEquation || req.Sign() != ruleSign {
			continue
		}
		startID = maxVarID(target.Vars(), rl.Vars()) + 1
		for i, l := range lits {
			if l.Kind() != lit.KEquation || l.Sign() != targetSign {
				continue
			}
			if matchesPair(st, req.L(), req.R(), l.L(), l.R(), startID) ||
				matchesPair(st, req.L(), req.R(), l.R(), l.L(), startID) {
				newLits := without(lits, i)
				return cs.New(ord, newLits, target.Trail(),
					clause.Inference(rule, clause.Parent{Clause: target}, clause.Parent{Clause: rl})), true
			}
		}
	}
	return nil, false
}

func matchesPair(st *term.Store, u, v, s, t *term.Term, startID int) bool {
	m, err := unify.Match(st, subst.New(), subst.Scoped{Term: u, Scope: ruleScope}, subst.Scoped{Term: s, Scope: targetScope})
	if err != nil {
		return false
	}
	ren := subst.NewRenamer(targetScope, startID)
	vσ := m.Apply(st, subst.Scoped{Term: v, Scope: ruleScope}, ren)
	return vσ == t
}
