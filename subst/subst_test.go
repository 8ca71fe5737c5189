package subst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
)

func fixture() (*symb.Signature, *ty.Store, *term.Store) {
	sg := symb.New()
	ts := ty.NewStore()
	return sg, ts, term.NewStore(sg, ts)
}

func TestIdentitySubst(t *testing.T) {
	sg, ts, st := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	x := st.Var(1, iota)

	s := subst.New()
	ren := subst.NewRenamer(0, 100)
	got := s.Apply(st, subst.Scoped{Term: x, Scope: 0}, ren)
	require.Equal(t, x.Type(), got.Type())
	require.Equal(t, term.KVar, got.Kind())
}

func TestBindAndApply(t *testing.T) {
	sg, ts, st := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := sg.Intern("a", 0)
	x := st.Var(1, iota)
	ca := st.Const(a, iota)

	s := subst.New().Bind(1, 0, subst.Scoped{Term: ca, Scope: 0})
	ren := subst.NewRenamer(0, 100)
	got := s.Apply(st, subst.Scoped{Term: x, Scope: 0}, ren)
	require.Same(t, ca, got)
}

func TestApplyRenamesConsistently(t *testing.T) {
	sg, ts, st := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	f := sg.Intern("f", 2)
	x := st.Var(1, iota)
	pair := st.App(st.Const(f, ts.Arrow(iota, iota, iota)), iota, x, x)

	s := subst.New()
	ren := subst.NewRenamer(7, 0)
	got := s.Apply(st, subst.Scoped{Term: pair, Scope: 3}, ren)
	require.Equal(t, got.Args()[0], got.Args()[1], "same source variable renames identically")
	require.Equal(t, 0, got.Args()[0].VarID())
}
