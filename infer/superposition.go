package infer

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/index"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
	"github.com/nnf/saturn/unify"
)

// fromScope and intoScope are the fixed scope tags the binary rules
// use to keep the two premises' variables disjoint before unification;
// conclusions are always renamed into scope 0.
const (
	fromScope subst.Scope = 0
	intoScope subst.Scope = 1
	outScope  subst.Scope = 0
)

// intoOccurrence records where a candidate subterm sits in the into
// clause: which literal, which side of its equation, and the subterm
// position within that side.
type intoOccurrence struct {
	litIdx int
	side   int
	pos    []int
}

// buildIntoIndex indexes every non-variable subterm of into's selected
// equation literals, the term index of spec.md §4.7 that lets a pivot
// term retrieve its candidate rewrite targets instead of every literal
// and position in into being scanned in turn.
func buildIntoIndex(st *term.Store, into *clause.Clause, intoLits []*lit.Literal) *index.TermIndex[intoOccurrence] {
	ix := index.NewTermIndex[intoOccurrence](st)
	for j, target := range intoLits {
		if target.Kind() != lit.KEquation {
			continue
		}
		if !into.IsSelected(j) {
			continue
		}
		for side := 0; side < 2; side++ {
			sideTerm := target.L()
			if side == 1 {
				sideTerm = target.R()
			}
			for _, pos := range Positions(sideTerm) {
				s0 := GetAt(sideTerm, pos)
				if s0.Kind() == term.KVar {
					continue
				}
				ix.Add(s0, intoOccurrence{litIdx: j, side: side, pos: pos})
			}
		}
	}
	return ix
}

// Superposition computes every superposition inference from `from`
// (the equation premise, C ∨ l ≈ r) into `into` (D[s]), per spec.md
// §4.5. Both directions of the pivot equation are tried since which
// side is greater depends on the substitution.
func Superposition(st *term.Store, cs *clause.Store, ord order.Ordering, from, into *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	fromLits := from.Lits()
	intoLits := into.Lits()
	ix := buildIntoIndex(st, into, intoLits)

	for i, pivot := range fromLits {
		if pivot.Kind() != lit.KEquation || !pivot.Sign() {
			continue
		}
		if !from.IsSelected(i) {
			continue
		}
		for _, dir := range [2][2]*term.Term{{pivot.L(), pivot.R()}, {pivot.R(), pivot.L()}} {
			l, r := dir[0], dir[1]
			out = append(out, superposeInto(st, cs, ord, from, into, i, l, r, ix)...)
		}
	}
	return out
}

func superposeInto(st *term.Store, cs *clause.Store, ord order.Ordering, from, into *clause.Clause, pivotIdx int, l, r *term.Term, ix *index.TermIndex[intoOccurrence]) []*clause.Clause {
	var out []*clause.Clause
	for _, e := range ix.RetrieveUnifiable(l) {
		occ := e.Payload
		c := tryOneSuperposition(st, cs, ord, from, into, pivotIdx, l, r, occ.litIdx, occ.side, occ.pos, e.Term)
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

func tryOneSuperposition(st *term.Store, cs *clause.Store, ord order.Ordering, from, into *clause.Clause, pivotIdx int, l, r *term.Term, targetIdx, side int, pos []int, s0 *term.Term) *clause.Clause {
	mgu, err := unify.Unify(st, subst.New(), subst.Scoped{Term: l, Scope: fromScope}, subst.Scoped{Term: s0, Scope: intoScope})
	if err != nil {
		return nil
	}
	ren := subst.NewRenamer(outScope, 1)

	lσ := mgu.Apply(st, subst.Scoped{Term: l, Scope: fromScope}, ren)
	rσ := mgu.Apply(st, subst.Scoped{Term: r, Scope: fromScope}, ren)
	if cmp := ord.Compare(lσ, rσ); cmp != order.Gt && cmp != order.Eq {
		return nil // l ≈ r must be positively oriented: lσ ≥ rσ
	}

	Cσ := applyClauseLits(st, ord, mgu, ren, from.Lits(), fromScope)
	pivotσ := lit.NewEquation(ord, lσ, rσ, true)
	if !isMaximalLit(ord, pivotσ, without(Cσ, pivotIdx)) {
		return nil
	}

	Dσ := applyClauseLits(st, ord, mgu, ren, into.Lits(), intoScope)
	targetσ := Dσ[targetIdx]
	if targetσ.Kind() != lit.KEquation {
		return nil
	}
	sideTerm, other := targetσ.L(), targetσ.R()
	pickedIsL := side == 0
	if !pickedIsL {
		sideTerm, other = targetσ.R(), targetσ.L()
	}
	switch ord.Compare(sideTerm, other) {
	case order.Lt:
		return nil // the rewritten position must be on a maximal side
	}

	newSide := ReplaceAt(st, sideTerm, pos, rσ)
	var newTarget *lit.Literal
	if pickedIsL {
		newTarget = lit.NewEquation(ord, newSide, other, targetσ.Sign())
	} else {
		newTarget = lit.NewEquation(ord, other, newSide, targetσ.Sign())
	}

	concLits := concat(without(Cσ, pivotIdx), append(without(Dσ, targetIdx), newTarget))
	trail := premiseTrail(from, into)
	return cs.New(ord, concLits, trail, clause.Inference(clause.RuleSuperposition,
		clause.Parent{Clause: from, Subst: mgu}, clause.Parent{Clause: into, Subst: mgu}))
}
