package unify

import (
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
)

// Locked is a set of (VarId, Scope) pairs matching must not bind,
// used by demodulation and subsumption to keep the simplification-set
// side's variables from being instantiated (spec.md §4.2).
type Locked map[subst.SVar]bool

// Match unifies a pattern against a subject, restricting new bindings
// to pattern's variables: it is one-sided unification. On success,
// patσ = subj for the returned σ, and σ binds only variables of pat
// (spec.md §8, "Matching is one-sided unification").
func Match(st *term.Store, s *subst.Subst, pat, subj subst.Scoped) (*subst.Subst, error) {
	return MatchLocked(st, s, pat, subj, nil)
}

// MatchLocked is Match but additionally fails if pat would need to
// bind a variable in locked.
func MatchLocked(st *term.Store, s *subst.Subst, pat, subj subst.Scoped, locked Locked) (*subst.Subst, error) {
	patD := s.Deref(pat)
	// subj is used as is, without dereferencing through s: matching
	// only binds pattern variables, and a pattern variable already
	// bound earlier in this match is compared against subj below.
	subjD := subst.Scoped{Term: subj.Term, Scope: subj.Scope}

	if patD.Term.Kind() == term.KVar {
		if bound, ok := s.Lookup(patD.Term.VarID(), patD.Scope); ok {
			if bound.Term != subjD.Term || bound.Scope != subjD.Scope {
				return nil, fail(FailHeads)
			}
			return s, nil
		}
		if patD.Term.Type() != subjD.Term.Type() {
			return nil, fail(FailType)
		}
		if locked[subst.SVar{ID: patD.Term.VarID(), Scope: patD.Scope}] {
			return nil, fail(FailOccurs)
		}
		return s.Bind(patD.Term.VarID(), patD.Scope, subjD), nil
	}

	if subjD.Term.Kind() == term.KVar && patD.Term != subjD.Term {
		return nil, fail(FailHeads)
	}
	if patD.Term.Kind() != subjD.Term.Kind() {
		return nil, fail(FailHeads)
	}
	switch patD.Term.Kind() {
	case term.KBVar:
		if patD.Term.BIndex() != subjD.Term.BIndex() {
			return nil, fail(FailHeads)
		}
		return s, nil
	case term.KConst:
		if patD.Term.Sym() != subjD.Term.Sym() {
			return nil, fail(FailHeads)
		}
		return s, nil
	case term.KApp:
		var err error
		s, err = MatchLocked(st, s, sc(patD, patD.Term.Head()), sc(subjD, subjD.Term.Head()), locked)
		if err != nil {
			return nil, err
		}
		if len(patD.Term.Args()) != len(subjD.Term.Args()) {
			return nil, fail(FailArity)
		}
		for i := range patD.Term.Args() {
			s, err = MatchLocked(st, s, sc(patD, patD.Term.Args()[i]), sc(subjD, subjD.Term.Args()[i]), locked)
			if err != nil {
				return nil, err
			}
		}
		return s, nil
	case term.KFun:
		return MatchLocked(st, s, sc(patD, patD.Term.Body()), sc(subjD, subjD.Term.Body()), locked)
	case term.KBuiltin:
		if patD.Term.Tag() != subjD.Term.Tag() || len(patD.Term.Args()) != len(subjD.Term.Args()) {
			return nil, fail(FailHeads)
		}
		var err error
		for i := range patD.Term.Args() {
			s, err = MatchLocked(st, s, sc(patD, patD.Term.Args()[i]), sc(subjD, subjD.Term.Args()[i]), locked)
			if err != nil {
				return nil, err
			}
		}
		return s, nil
	}
	return nil, fail(FailHeads)
}
