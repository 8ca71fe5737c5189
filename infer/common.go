package infer

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
)

// applyClauseLits applies s (through ren, into ren's output scope) to
// every literal of lits (scoped at sc), recomputing each equation's
// cached orientation under ord.
func applyClauseLits(st *term.Store, ord order.Ordering, s *subst.Subst, ren *subst.Renamer, lits []*lit.Literal, sc subst.Scope) []*lit.Literal {
	out := make([]*lit.Literal, len(lits))
	for i, l := range lits {
		out[i] = applyLit(st, ord, s, ren, l, sc)
	}
	return out
}

func applyLit(st *term.Store, ord order.Ordering, s *subst.Subst, ren *subst.Renamer, l *lit.Literal, sc subst.Scope) *lit.Literal {
	switch l.Kind() {
	case lit.KTrue:
		return lit.True()
	case lit.KFalse:
		return lit.False()
	default:
		lσ := s.Apply(st, subst.Scoped{Term: l.L(), Scope: sc}, ren)
		rσ := s.Apply(st, subst.Scoped{Term: l.R(), Scope: sc}, ren)
		return lit.NewEquation(ord, lσ, rσ, l.Sign())
	}
}

// isMaximalLit reports whether l is strictly maximal in lits under
// ord: no literal in lits compares Gt or Eq to l. This is the strict
// maximality side condition spec.md §4.5 imposes on superposition's
// positive-equation premise and on equality factoring's pivot literal;
// callers pass lits with l's own clause position already removed, so a
// verbatim duplicate elsewhere in the clause correctly defeats
// maximality instead of tying against itself.
func isMaximalLit(ord order.Ordering, l *lit.Literal, lits []*lit.Literal) bool {
	for _, other := range lits {
		if other == l {
			continue
		}
		switch lit.Compare(ord, other, l) {
		case order.Gt, order.Eq:
			return false
		}
	}
	return true
}

func without(lits []*lit.Literal, idx int) []*lit.Literal {
	out := make([]*lit.Literal, 0, len(lits)-1)
	for i, l := range lits {
		if i != idx {
			out = append(out, l)
		}
	}
	return out
}

func concat(as, bs []*lit.Literal) []*lit.Literal {
	out := make([]*lit.Literal, 0, len(as)+len(bs))
	out = append(out, as...)
	out = append(out, bs...)
	return out
}

// premiseTrail merges two premises' trails for a binary inference.
func premiseTrail(a, b *clause.Clause) clause.Trail {
	return clause.Union(a.Trail(), b.Trail())
}
