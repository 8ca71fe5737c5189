package subst

import "github.com/nnf/saturn/term"

// Subst is a persistent (copy-on-bind) finite map from scoped
// variables to scoped terms. The zero value is the empty (identity)
// substitution, matching the "Idₛ t = t" property of spec.md §8.
type Subst struct {
	bindings map[SVar]Scoped
}

// New creates an empty substitution.
func New() *Subst {
	return &Subst{bindings: make(map[SVar]Scoped, 8)}
}

// Bind returns a new Subst extending s with vid@sc ↦ to, leaving s
// itself untouched (persistent map semantics).
func (s *Subst) Bind(vid int, sc Scope, to Scoped) *Subst {
	out := &Subst{bindings: make(map[SVar]Scoped, len(s.bindings)+1)}
	for k, v := range s.bindings {
		out.bindings[k] = v
	}
	out.bindings[SVar{vid, sc}] = to
	return out
}

// Lookup returns the binding of vid@sc and whether it exists.
func (s *Subst) Lookup(vid int, sc Scope) (Scoped, bool) {
	v, ok := s.bindings[SVar{vid, sc}]
	return v, ok
}

// Len returns the number of bindings.
func (s *Subst) Len() int { return len(s.bindings) }

// Domain reports whether vid@sc is bound.
func (s *Subst) Domain(vid int, sc Scope) bool {
	_, ok := s.bindings[SVar{vid, sc}]
	return ok
}

// Deref follows chained bindings for (vid, sc) until it reaches a
// term that isn't itself an unbound-in-s variable, or an unbound
// variable, returning the final Scoped value. Deref does not apply s
// recursively into the result's subterms; use Apply for that.
func (s *Subst) Deref(sc Scoped) Scoped {
	for sc.Term.Kind() == term.KVar {
		next, ok := s.Lookup(sc.Term.VarID(), sc.Scope)
		if !ok {
			return sc
		}
		sc = next
	}
	return sc
}

// Apply applies s to t (scoped at sc), producing a term in ren's
// output scope. Every variable Apply encounters — bound in s or not —
// is passed through ren, so two calls to Apply with the same ren
// produce α-equivalent results for α-equivalent inputs, per the
// substitution application contract of spec.md §4.2.
func (s *Subst) Apply(st *term.Store, sc Scoped, ren *Renamer) *term.Term {
	return s.apply(st, sc.Term, sc.Scope, ren)
}

func (s *Subst) apply(st *term.Store, t *term.Term, sc Scope, ren *Renamer) *term.Term {
	switch t.Kind() {
	case term.KVar:
		if next, ok := s.Lookup(t.VarID(), sc); ok {
			return s.apply(st, next.Term, next.Scope, ren)
		}
		fresh := ren.Rename(t.VarID(), sc)
		return st.Var(fresh, t.Type())
	case term.KBVar, term.KConst:
		return t
	case term.KApp:
		h := s.apply(st, t.Head(), sc, ren)
		args := make([]*term.Term, len(t.Args()))
		for i, a := range t.Args() {
			args[i] = s.apply(st, a, sc, ren)
		}
		return st.App(h, t.Type(), args...)
	case term.KFun:
		body := s.apply(st, t.Body(), sc, ren)
		return st.Fun(t.Type().Args()[0], t.Type().Ret(), body)
	case term.KBuiltin:
		args := make([]*term.Term, len(t.Args()))
		for i, a := range t.Args() {
			args[i] = s.apply(st, a, sc, ren)
		}
		return st.Builtin(t.Tag(), args...)
	}
	return t
}

// Compose returns a substitution equivalent to first applying inner
// then s (i.e. (s∘inner)), materializing inner's bindings through s
// eagerly. Both substitutions are assumed to already share a single
// scope (composition across scopes goes through Apply/Renamer
// instead), matching the "(σ∘τ) t = σ(τ t) modulo renaming" property
// of spec.md §8.
func Compose(st *term.Store, s, inner *Subst, sc Scope, ren *Renamer) *Subst {
	out := New()
	for k, v := range inner.bindings {
		if k.Scope != sc {
			out.bindings[k] = v
			continue
		}
		composed := s.Apply(st, v, ren)
		out.bindings[k] = Scoped{Term: composed, Scope: ren.OutScope()}
	}
	for k, v := range s.bindings {
		if _, already := out.bindings[k]; !already {
			out.bindings[k] = v
		}
	}
	return out
}
