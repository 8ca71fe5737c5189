package clause_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/term"
)

func fixture() (*symb.Signature, *ty.Store, *term.Store, *order.KBO) {
	sg := symb.New()
	ts := ty.NewStore()
	st := term.NewStore(sg, ts)
	sg.SetPrecedence(symb.PrecArity, nil)
	return sg, ts, st, order.NewKBO(sg)
}

func TestHashConsingMergesLiteralPermutations(t *testing.T) {
	sg, ts, st, kbo := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := sg.Intern("a", 0)
	b := sg.Intern("b", 0)
	ca := st.Const(a, iota)
	cb := st.Const(b, iota)

	cs := clause.NewStore(st)
	l1 := lit.NewEquation(kbo, ca, cb, true)
	l2 := lit.NewEquation(kbo, cb, ca, false)

	c1 := cs.New(kbo, []*lit.Literal{l1, l2}, clause.EmptyTrail, clause.Axiom("ax1"))
	c2 := cs.New(kbo, []*lit.Literal{l2, l1}, clause.EmptyTrail, clause.Axiom("ax1"))
	require.Same(t, c1, c2)
}

func TestHashConsingMergesAlphaVariants(t *testing.T) {
	sg, ts, st, kbo := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	f := sg.Intern("f", 1)
	fty := ts.Arrow(iota, iota)

	x := st.Var(1, iota)
	y := st.Var(2, iota)
	fx := st.App(st.Const(f, fty), iota, x)
	fy := st.App(st.Const(f, fty), iota, y)

	cs := clause.NewStore(st)
	l1 := lit.NewEquation(kbo, fx, x, true)
	l2 := lit.NewEquation(kbo, fy, y, true)

	c1 := cs.New(kbo, []*lit.Literal{l1}, clause.EmptyTrail, clause.Axiom("ax1"))
	c2 := cs.New(kbo, []*lit.Literal{l2}, clause.EmptyTrail, clause.Axiom("ax1"))
	require.Same(t, c1, c2)
	require.Equal(t, []int{1}, c1.Vars())
}

func TestEmptyClause(t *testing.T) {
	_, _, st, kbo := fixture()
	cs := clause.NewStore(st)
	c := cs.New(kbo, nil, clause.EmptyTrail, clause.Inference(clause.RuleEqualityResolution))
	require.True(t, c.IsEmpty())
}

func TestSelectedDefaultsToAllLiterals(t *testing.T) {
	sg, ts, st, kbo := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := sg.Intern("a", 0)
	ca := st.Const(a, iota)

	cs := clause.NewStore(st)
	c := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, ca, ca, true)}, clause.EmptyTrail, clause.Axiom("ax"))
	require.True(t, c.IsSelected(0))
}
