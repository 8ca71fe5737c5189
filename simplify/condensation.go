package simplify

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
	"github.com/nnf/saturn/unify"
)

const condScope subst.Scope = 0

// Condensation looks for two literals of c that unify with each other
// (within c's own variable namespace) such that applying the unifier
// and dropping the resulting duplicate collapses c to a strictly
// shorter clause that still subsumes c, per spec.md §4.6. It returns
// the condensed clause and true on the first such pair found.
func Condensation(st *term.Store, cs *clause.Store, ord order.Ordering, c *clause.Clause) (*clause.Clause, bool) {
	lits := c.Lits()
	for i := range lits {
		for j := range lits {
			if i == j {
				continue
			}
			mgu, ok := unifyLits(st, lits[i], lits[j])
			if !ok {
				continue
			}
			ren := subst.NewRenamer(condScope, maxVarID(c.Vars())+1)
			newLits := make([]*lit.Literal, len(lits))
			for k, l := range lits {
				newLits[k] = applyLiteral(st, ord, mgu, ren, l)
			}
			deduped := dedupeLits(newLits)
			if len(deduped) >= len(lits) {
				continue
			}
			cand := cs.New(ord, deduped, c.Trail(), clause.Inference(clause.RuleCondensation, clause.Parent{Clause: c, Subst: mgu}))
			if Subsumes(st, cand, c) {
				return cand, true
			}
		}
	}
	return nil, false
}

func unifyLits(st *term.Store, a, b *lit.Literal) (*subst.Subst, bool) {
	if a.Kind() != b.Kind() || a.Sign() != b.Sign() || a.Kind() != lit.KEquation {
		return nil, false
	}
	if m, ok := unifyTermPair(st, a.L(), a.R(), b.L(), b.R()); ok {
		return m, true
	}
	return unifyTermPair(st, a.L(), a.R(), b.R(), b.L())
}

func unifyTermPair(st *term.Store, a1, a2, b1, b2 *term.Term) (*subst.Subst, bool) {
	s, err := unify.Unify(st, subst.New(), subst.Scoped{Term: a1, Scope: condScope}, subst.Scoped{Term: b1, Scope: condScope})
	if err != nil {
		return nil, false
	}
	s, err = unify.Unify(st, s, subst.Scoped{Term: a2, Scope: condScope}, subst.Scoped{Term: b2, Scope: condScope})
	if err != nil {
		return nil, false
	}
	return s, true
}

func applyLiteral(st *term.Store, ord order.Ordering, s *subst.Subst, ren *subst.Renamer, l *lit.Literal) *lit.Literal {
	switch l.Kind() {
	case lit.KTrue:
		return lit.True()
	case lit.KFalse:
		return lit.False()
	default:
		lσ := s.Apply(st, subst.Scoped{Term: l.L(), Scope: condScope}, ren)
		rσ := s.Apply(st, subst.Scoped{Term: l.R(), Scope: condScope}, ren)
		return lit.NewEquation(ord, lσ, rσ, l.Sign())
	}
}

func dedupeLits(lits []*lit.Literal) []*lit.Literal {
	out := make([]*lit.Literal, 0, len(lits))
	for _, l := range lits {
		dup := false
		for _, o := range out {
			if sameLiteral(l, o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, l)
		}
	}
	return out
}

func sameLiteral(a, b *lit.Literal) bool {
	if a.Kind() != b.Kind() || a.Sign() != b.Sign() {
		return false
	}
	if a.Kind() != lit.KEquation {
		return true
	}
	return a.L() == b.L() && a.R() == b.R()
}
