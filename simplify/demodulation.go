package simplify

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/index"
	"github.com/nnf/saturn/infer"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
	"github.com/nnf/saturn/unify"
)

const (
	ruleScope   subst.Scope = 0
	targetScope subst.Scope = 1
)

// Demodulation rewrites one subterm of target using a positively
// oriented unit equation l ≈ r drawn from rules (the simplification
// set), when the matching instance lσ = the subterm and rσ is
// strictly smaller under ord, per spec.md §4.6. It returns the
// rewritten clause and true on the first applicable rewrite, or
// (nil, false) if no rule applies; callers loop this to a fixpoint.
//
// rules is indexed by its oriented equations' left-hand sides (spec.md
// §4.7's term index) so target's subterms are matched against a small
// candidate set instead of every rule in turn.
func Demodulation(st *term.Store, cs *clause.Store, ord order.Ordering, rules []*clause.Clause, target *clause.Clause) (*clause.Clause, bool) {
	ix := ruleIndex(st, ord, rules)
	lits := target.Lits()
	for li, l := range lits {
		if l.Kind() != lit.KEquation {
			continue
		}
		for side := 0; side < 2; side++ {
			sideTerm := l.L()
			if side == 1 {
				sideTerm = l.R()
			}
			for _, pos := range infer.Positions(sideTerm) {
				sub := infer.GetAt(sideTerm, pos)
				if sub.Kind() == term.KVar {
					continue
				}
				if c, ok := tryRewriteAt(st, cs, ord, ix, target, lits, li, l, side, sideTerm, pos, sub); ok {
					return c, true
				}
			}
		}
	}
	return nil, false
}

// ruleIndex builds a term index mapping each oriented unit equation's
// left-hand side to the rule clause it came from, so RetrieveGeneralizations
// against a target subterm returns only rules whose l could match it.
func ruleIndex(st *term.Store, ord order.Ordering, rules []*clause.Clause) *index.TermIndex[*clause.Clause] {
	ix := index.NewTermIndex[*clause.Clause](st)
	for _, rule := range rules {
		if !rule.IsUnit() {
			continue
		}
		req := rule.Lits()[0]
		if req.Kind() != lit.KEquation || !req.Sign() {
			continue
		}
		if ord.Compare(req.L(), req.R()) != order.Gt {
			continue
		}
		ix.Add(req.L(), rule)
	}
	return ix
}

func tryRewriteAt(st *term.Store, cs *clause.Store, ord order.Ordering, ix *index.TermIndex[*clause.Clause], target *clause.Clause, lits []*lit.Literal, li int, l *lit.Literal, side int, sideTerm *term.Term, pos []int, sub *term.Term) (*clause.Clause, bool) {
	for _, e := range ix.RetrieveGeneralizations(sub) {
		rule := e.Payload
		req := rule.Lits()[0]
		m, err := unify.Match(st, subst.New(),
			subst.Scoped{Term: req.L(), Scope: ruleScope}, subst.Scoped{Term: sub, Scope: targetScope})
		if err != nil {
			continue
		}
		startID := maxVarID(rule.Vars(), target.Vars()) + 1
		ren := subst.NewRenamer(targetScope, startID)
		newSub := m.Apply(st, subst.Scoped{Term: req.R(), Scope: ruleScope}, ren)
		if ord.Compare(sub, newSub) != order.Gt {
			continue
		}
		newSide := infer.ReplaceAt(st, sideTerm, pos, newSub)
		var newLit *lit.Literal
		if side == 0 {
			newLit = lit.NewEquation(ord, newSide, l.R(), l.Sign())
		} else {
			newLit = lit.NewEquation(ord, l.L(), newSide, l.Sign())
		}
		newLits := append([]*lit.Literal(nil), lits...)
		newLits[li] = newLit
		return cs.New(ord, newLits, target.Trail(),
			clause.Inference(clause.RuleDemodulation,
				clause.Parent{Clause: target, Subst: m}, clause.Parent{Clause: rule, Subst: m})), true
	}
	return nil, false
}

func maxVarID(varSets ...[]int) int {
	max := 0
	for _, vs := range varSets {
		for _, v := range vs {
			if v > max {
				max = v
			}
		}
	}
	return max
}
