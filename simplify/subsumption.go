package simplify

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
	"github.com/nnf/saturn/unify"
)

const (
	subPatScope  subst.Scope = 0
	subSubjScope subst.Scope = 1
)

// Subsumes reports whether pat subsumes subj: whether some
// substitution σ (binding only pat's variables) makes every literal
// of patσ occur among subj's literals (spec.md §4.6). Several
// literals of pat are allowed to match the same literal of subj; a
// strict multiset count would be more precise but this set-style
// relaxation is what most implementations use in practice.
func Subsumes(st *term.Store, pat, subj *clause.Clause) bool {
	return SubsumesLits(st, pat.Lits(), subj.Lits())
}

// SubsumesLits is Subsumes over bare literal lists, for callers (like
// contextual literal cutting) that need to probe a hypothetical
// literal set without hash-consing a clause for it.
func SubsumesLits(st *term.Store, patLits, subjLits []*lit.Literal) bool {
	if len(patLits) > len(subjLits) {
		return false
	}
	return subsumeFrom(st, subst.New(), patLits, subjLits)
}

func subsumeFrom(st *term.Store, s *subst.Subst, patLits, subjLits []*lit.Literal) bool {
	if len(patLits) == 0 {
		return true
	}
	head, rest := patLits[0], patLits[1:]
	for _, cand := range subjLits {
		if m, ok := matchLiteralInto(st, s, head, cand); ok {
			if subsumeFrom(st, m, rest, subjLits) {
				return true
			}
		}
	}
	return false
}

// matchLiteralInto extends s so that pat, matched at subPatScope,
// equals cand at subSubjScope, trying both sides of an equation since
// ≈ is symmetric.
func matchLiteralInto(st *term.Store, s *subst.Subst, pat, cand *lit.Literal) (*subst.Subst, bool) {
	if pat.Kind() != cand.Kind() || pat.Sign() != cand.Sign() {
		return nil, false
	}
	if pat.Kind() != lit.KEquation {
		return s, true
	}
	if m, ok := matchTermPair(st, s, pat.L(), pat.R(), cand.L(), cand.R()); ok {
		return m, true
	}
	return matchTermPair(st, s, pat.L(), pat.R(), cand.R(), cand.L())
}

func matchTermPair(st *term.Store, s *subst.Subst, p1, p2, c1, c2 *term.Term) (*subst.Subst, bool) {
	m, err := unify.Match(st, s, subst.Scoped{Term: p1, Scope: subPatScope}, subst.Scoped{Term: c1, Scope: subSubjScope})
	if err != nil {
		return nil, false
	}
	m, err = unify.Match(st, m, subst.Scoped{Term: p2, Scope: subPatScope}, subst.Scoped{Term: c2, Scope: subSubjScope})
	if err != nil {
		return nil, false
	}
	return m, true
}
