package unify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
	"github.com/nnf/saturn/unify"
)

func fixture() (*symb.Signature, *ty.Store, *term.Store) {
	sg := symb.New()
	ts := ty.NewStore()
	return sg, ts, term.NewStore(sg, ts)
}

func TestUnifyVarWithConst(t *testing.T) {
	sg, ts, st := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := sg.Intern("a", 0)
	x := st.Var(1, iota)
	ca := st.Const(a, iota)

	s, err := unify.Unify(st, subst.New(), subst.Scoped{Term: x, Scope: 0}, subst.Scoped{Term: ca, Scope: 0})
	require.NoError(t, err)
	ren := subst.NewRenamer(0, 1000)
	got := s.Apply(st, subst.Scoped{Term: x, Scope: 0}, ren)
	require.Same(t, ca, got)
}

func TestUnifyDistinctHeadsFails(t *testing.T) {
	sg, ts, st := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := sg.Intern("a", 0)
	b := sg.Intern("b", 0)
	ca := st.Const(a, iota)
	cb := st.Const(b, iota)

	_, err := unify.Unify(st, subst.New(), subst.Scoped{Term: ca, Scope: 0}, subst.Scoped{Term: cb, Scope: 0})
	require.Error(t, err)
	require.Equal(t, unify.FailHeads, unify.Reason(err))
}

func TestUnifyOccursCheck(t *testing.T) {
	sg, ts, st := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	f := sg.Intern("f", 1)
	x := st.Var(1, iota)
	fx := st.App(st.Const(f, ts.Arrow(iota, iota)), iota, x)

	_, err := unify.Unify(st, subst.New(), subst.Scoped{Term: x, Scope: 0}, subst.Scoped{Term: fx, Scope: 0})
	require.Error(t, err)
	require.Equal(t, unify.FailOccurs, unify.Reason(err))
}

func TestUnifyCrossScopeDisjoint(t *testing.T) {
	sg, ts, st := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	f := sg.Intern("f", 2)
	a := sg.Intern("a", 0)
	b := sg.Intern("b", 0)
	x := st.Var(1, iota)
	fxx := st.App(st.Const(f, ts.Arrow(iota, iota, iota)), iota, x, x)
	fab := st.App(st.Const(f, ts.Arrow(iota, iota, iota)), iota, st.Const(a, iota), st.Const(b, iota))

	_, err := unify.Unify(st, subst.New(), subst.Scoped{Term: fxx, Scope: 0}, subst.Scoped{Term: fab, Scope: 1})
	require.Error(t, err, "x can't be both a and b")
}

func TestMatchBindsOnlyPatternVars(t *testing.T) {
	sg, ts, st := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	f := sg.Intern("f", 1)
	a := sg.Intern("a", 0)
	x := st.Var(1, iota)
	pat := st.App(st.Const(f, ts.Arrow(iota, iota)), iota, x)
	subj := st.App(st.Const(f, ts.Arrow(iota, iota)), iota, st.Const(a, iota))

	s, err := unify.Match(st, subst.New(), subst.Scoped{Term: pat, Scope: 0}, subst.Scoped{Term: subj, Scope: 1})
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
}

func TestMatchLockedRejectsLockedVar(t *testing.T) {
	sg, ts, st := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	f := sg.Intern("f", 1)
	a := sg.Intern("a", 0)
	x := st.Var(1, iota)
	pat := st.App(st.Const(f, ts.Arrow(iota, iota)), iota, x)
	subj := st.App(st.Const(f, ts.Arrow(iota, iota)), iota, st.Const(a, iota))

	locked := unify.Locked{{ID: 1, Scope: 0}: true}
	_, err := unify.MatchLocked(st, subst.New(), subst.Scoped{Term: pat, Scope: 0}, subst.Scoped{Term: subj, Scope: 1}, locked)
	require.Error(t, err)
}

func TestHOUnifyPatternFragmentTrivial(t *testing.T) {
	sg, ts, st := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := sg.Intern("a", 0)
	x := st.Var(1, iota)
	ca := st.Const(a, iota)

	fresh := 0
	s, err := unify.HOUnify(st, sg, &fresh, subst.New(), subst.Scoped{Term: x, Scope: 0}, subst.Scoped{Term: ca, Scope: 0})
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
}
