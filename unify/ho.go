package unify

import (
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
)

const (
	// FailNotInFragment signals the current pair falls outside the
	// higher-order pattern fragment: a flex head is not applied to a
	// sequence of pairwise-distinct bound variables.
	FailNotInFragment Fail = iota + 100
	// FailNotUnifiable signals occurs-check failure, a sort mismatch,
	// or binding a bound variable under a binder it doesn't escape.
	FailNotUnifiable
)

func init() {
	failText[FailNotInFragment] = "not in the higher-order pattern fragment"
	failText[FailNotUnifiable] = "not unifiable (occurs, sort, or escape failure)"
}

// patternArgs returns the de Bruijn indices of t's arguments if t is a
// flex head (a free variable) applied to a sequence of pairwise
// distinct bound variables — the pattern fragment of spec.md §4.2 —
// and whether t qualifies.
func patternArgs(t *term.Term) ([]int, bool) {
	if t.Kind() == term.KVar {
		return nil, true // a bare flex variable is trivially in the fragment
	}
	if t.Kind() != term.KApp {
		return nil, false
	}
	if t.Head().Kind() != term.KVar {
		return nil, false
	}
	idxs := make([]int, 0, len(t.Args()))
	seen := map[int]bool{}
	for _, a := range t.Args() {
		if a.Kind() != term.KBVar {
			return nil, false
		}
		if seen[a.BIndex()] {
			return nil, false
		}
		seen[a.BIndex()] = true
		idxs = append(idxs, a.BIndex())
	}
	return idxs, true
}

// HOUnify unifies a and b, using the higher-order pattern fragment
// when a flex head is applied to distinct bound variables, and its own
// structural recursion over rigid-rigid pairs otherwise. Pruned
// existential variables are named by incrementing *fresh and taking
// its negation as the variable id; sg is passed through unchanged.
func HOUnify(st *term.Store, sg *symb.Signature, fresh *int, s *subst.Subst, a, b subst.Scoped) (*subst.Subst, error) {
	a = s.Deref(a)
	b = s.Deref(b)
	if a.Term == b.Term && a.Scope == b.Scope {
		return s, nil
	}
	if flexHeadVar(a.Term) >= 0 {
		idxs, ok := patternArgs(a.Term)
		if !ok {
			return nil, fail(FailNotInFragment)
		}
		return flexRigid(st, fresh, s, a, idxs, b)
	}
	if flexHeadVar(b.Term) >= 0 {
		idxs, ok := patternArgs(b.Term)
		if !ok {
			return nil, fail(FailNotInFragment)
		}
		return flexRigid(st, fresh, s, b, idxs, a)
	}
	// rigid-rigid: recurse structurally, staying in the HO algorithm
	// under binders so nested flex-rigid pairs are still pruned.
	if a.Term.Kind() != b.Term.Kind() {
		return nil, fail(FailNotUnifiable)
	}
	switch a.Term.Kind() {
	case term.KBVar:
		if a.Term.BIndex() != b.Term.BIndex() {
			return nil, fail(FailNotUnifiable)
		}
		return s, nil
	case term.KConst:
		if a.Term.Sym() != b.Term.Sym() {
			return nil, fail(FailNotUnifiable)
		}
		return s, nil
	case term.KApp:
		var err error
		s, err = HOUnify(st, sg, fresh, s, sc(a, a.Term.Head()), sc(b, b.Term.Head()))
		if err != nil {
			return nil, err
		}
		if len(a.Term.Args()) != len(b.Term.Args()) {
			return nil, fail(FailNotUnifiable)
		}
		for i := range a.Term.Args() {
			s, err = HOUnify(st, sg, fresh, s, sc(a, a.Term.Args()[i]), sc(b, b.Term.Args()[i]))
			if err != nil {
				return nil, err
			}
		}
		return s, nil
	case term.KFun:
		return HOUnify(st, sg, fresh, s, sc(a, a.Term.Body()), sc(b, b.Term.Body()))
	default:
		return nil, fail(FailNotInFragment)
	}
}

func flexHeadVar(t *term.Term) int {
	if t.Kind() == term.KVar {
		return t.VarID()
	}
	if t.Kind() == term.KApp && t.Head().Kind() == term.KVar {
		return t.Head().VarID()
	}
	return -1
}

// flexRigid solves flex (a pattern-fragment flex term with parameter
// bound-variable indices idxs) against rigid, pruning any part of
// rigid whose free bound variables escape idxs into a fresh
// existential, per spec.md §4.2.
func flexRigid(st *term.Store, fresh *int, s *subst.Subst, flex subst.Scoped, idxs []int, rigid subst.Scoped) (*subst.Subst, error) {
	allowed := map[int]bool{}
	for _, i := range idxs {
		allowed[i] = true
	}
	pruned, ok := prune(st, fresh, rigid.Term, rigid.Scope, allowed, 0)
	if !ok {
		return nil, fail(FailNotUnifiable)
	}
	// occurs-check: the flex head must not occur in the pruned solution.
	head := flexHeadVar(flex.Term)
	if occursTermRaw(head, pruned) {
		return nil, fail(FailNotUnifiable)
	}
	return s.Bind(head, flex.Scope, subst.Scoped{Term: pruned, Scope: rigid.Scope}), nil
}

// prune walks t (scoped at sc, depth binders deep so far) and replaces
// every bound-variable leaf that escapes allowed with a fresh
// existential variable, per spec.md §4.2's pruning rule. Bound
// variables introduced by binders crossed during the walk itself
// (rel < 0) are always fine, since they are local to t and don't
// depend on the flex head's argument sequence.
func prune(st *term.Store, fresh *int, t *term.Term, sc subst.Scope, allowed map[int]bool, depth int) (*term.Term, bool) {
	switch t.Kind() {
	case term.KBVar:
		rel := t.BIndex() - depth
		if rel < 0 || allowed[rel] {
			return t, true
		}
		*fresh++
		return st.Var(-(*fresh), t.Type()), true
	case term.KVar, term.KConst:
		return t, true
	case term.KApp:
		h, ok := prune(st, fresh, t.Head(), sc, allowed, depth)
		if !ok {
			return nil, false
		}
		args := make([]*term.Term, len(t.Args()))
		for i, a := range t.Args() {
			pa, ok := prune(st, fresh, a, sc, allowed, depth)
			if !ok {
				return nil, false
			}
			args[i] = pa
		}
		return st.App(h, t.Type(), args...), true
	case term.KFun:
		b, ok := prune(st, fresh, t.Body(), sc, allowed, depth+1)
		if !ok {
			return nil, false
		}
		return st.Fun(t.Type().Args()[0], t.Type().Ret(), b), true
	case term.KBuiltin:
		args := make([]*term.Term, len(t.Args()))
		for i, a := range t.Args() {
			pa, ok := prune(st, fresh, a, sc, allowed, depth)
			if !ok {
				return nil, false
			}
			args[i] = pa
		}
		return st.Builtin(t.Tag(), args...), true
	}
	return t, true
}

func occursTermRaw(vid int, t *term.Term) bool {
	switch t.Kind() {
	case term.KVar:
		return t.VarID() == vid
	case term.KBVar, term.KConst:
		return false
	case term.KApp:
		if occursTermRaw(vid, t.Head()) {
			return true
		}
		for _, a := range t.Args() {
			if occursTermRaw(vid, a) {
				return true
			}
		}
		return false
	case term.KFun:
		return occursTermRaw(vid, t.Body())
	case term.KBuiltin:
		for _, a := range t.Args() {
			if occursTermRaw(vid, a) {
				return true
			}
		}
		return false
	}
	return false
}
