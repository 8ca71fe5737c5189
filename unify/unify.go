// Package unify implements syntactic unification, one-sided matching,
// and (in ho.go) a higher-order pattern-unification fragment with
// pruning, over scoped term.Term values, per spec.md §4.2.
package unify

import (
	"errors"

	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
)

// Fail categorizes why a unification/matching attempt failed. Rules
// catch these locally and skip the inference; they never propagate
// past the rule boundary, per spec.md §7.
type Fail int

const (
	FailNone Fail = iota
	FailHeads
	FailArity
	FailOccurs
	FailType
)

var failText = map[Fail]string{
	FailHeads:  "distinct function heads",
	FailArity:  "arity mismatch",
	FailOccurs: "occurs-check failure",
	FailType:   "type mismatch",
}

// Error wraps a Fail reason; it does not record the failing terms.
// Rule code branches on Reason, not on the error string.
type Error struct {
	Reason Fail
}

func (e *Error) Error() string { return failText[e.Reason] }

func fail(r Fail) error { return &Error{Reason: r} }

// Reason extracts the Fail reason from err, or FailNone if err is nil
// or not an *Error.
func Reason(err error) Fail {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return FailNone
}

// Unify computes the most general unifier of a and b (scoped terms)
// extending the substitution s, using a Robinson-style algorithm with
// occurs-check. On success, sσ = tσ for the returned σ (spec.md §8,
// "Unifier correctness").
func Unify(st *term.Store, s *subst.Subst, a, b subst.Scoped) (*subst.Subst, error) {
	a = s.Deref(a)
	b = s.Deref(b)

	if a.Term == b.Term && a.Scope == b.Scope {
		return s, nil
	}
	if a.Term.Kind() == term.KVar {
		return bindVar(st, s, a, b)
	}
	if b.Term.Kind() == term.KVar {
		return bindVar(st, s, b, a)
	}
	if a.Term.Kind() != b.Term.Kind() {
		return nil, fail(FailHeads)
	}
	switch a.Term.Kind() {
	case term.KBVar:
		if a.Term.BIndex() != b.Term.BIndex() {
			return nil, fail(FailHeads)
		}
		return s, nil
	case term.KConst:
		if a.Term.Sym() != b.Term.Sym() {
			return nil, fail(FailHeads)
		}
		return s, nil
	case term.KApp:
		var err error
		s, err = Unify(st, s, sc(a, a.Term.Head()), sc(b, b.Term.Head()))
		if err != nil {
			return nil, err
		}
		if len(a.Term.Args()) != len(b.Term.Args()) {
			return nil, fail(FailArity)
		}
		for i := range a.Term.Args() {
			s, err = Unify(st, s, sc(a, a.Term.Args()[i]), sc(b, b.Term.Args()[i]))
			if err != nil {
				return nil, err
			}
		}
		return s, nil
	case term.KFun:
		return Unify(st, s, sc(a, a.Term.Body()), sc(b, b.Term.Body()))
	case term.KBuiltin:
		if a.Term.Tag() != b.Term.Tag() || len(a.Term.Args()) != len(b.Term.Args()) {
			return nil, fail(FailHeads)
		}
		var err error
		for i := range a.Term.Args() {
			s, err = Unify(st, s, sc(a, a.Term.Args()[i]), sc(b, b.Term.Args()[i]))
			if err != nil {
				return nil, err
			}
		}
		return s, nil
	}
	return nil, fail(FailHeads)
}

func sc(around subst.Scoped, t *term.Term) subst.Scoped {
	return subst.Scoped{Term: t, Scope: around.Scope}
}

func bindVar(st *term.Store, s *subst.Subst, v, to subst.Scoped) (*subst.Subst, error) {
	if to.Term.Kind() == term.KVar && to.Term.VarID() == v.Term.VarID() && to.Scope == v.Scope {
		return s, nil
	}
	if v.Term.Type() != to.Term.Type() {
		return nil, fail(FailType)
	}
	if occurs(s, v.Term.VarID(), v.Scope, to) {
		return nil, fail(FailOccurs)
	}
	return s.Bind(v.Term.VarID(), v.Scope, to), nil
}

// occurs reports whether variable vid@sc occurs (after dereferencing
// through s) in the scoped term t.
func occurs(s *subst.Subst, vid int, sc Scope, t subst.Scoped) bool {
	t = s.Deref(t)
	switch t.Term.Kind() {
	case term.KVar:
		return t.Term.VarID() == vid && t.Scope == sc
	case term.KBVar, term.KConst:
		return false
	case term.KApp:
		if occurs(s, vid, sc, subst.Scoped{Term: t.Term.Head(), Scope: t.Scope}) {
			return true
		}
		for _, a := range t.Term.Args() {
			if occurs(s, vid, sc, subst.Scoped{Term: a, Scope: t.Scope}) {
				return true
			}
		}
		return false
	case term.KFun:
		return occurs(s, vid, sc, subst.Scoped{Term: t.Term.Body(), Scope: t.Scope})
	case term.KBuiltin:
		for _, a := range t.Term.Args() {
			if occurs(s, vid, sc, subst.Scoped{Term: a, Scope: t.Scope}) {
				return true
			}
		}
		return false
	}
	return false
}

// Scope is a local alias avoiding an import cycle in doc comments;
// it is exactly subst.Scope.
type Scope = subst.Scope
