package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/simplify"
	"github.com/nnf/saturn/term"
)

func fixture() (*symb.Signature, *ty.Store, *term.Store, *order.KBO, *clause.Store) {
	sg := symb.New()
	ts := ty.NewStore()
	st := term.NewStore(sg, ts)
	sg.SetPrecedence(symb.PrecArity, nil)
	return sg, ts, st, order.NewKBO(sg), clause.NewStore(st)
}

func TestIsTautologyDetectsReflexiveEquation(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	x := st.Var(1, iota)
	c := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, x, x, true)}, clause.EmptyTrail, clause.Axiom("refl"))
	require.True(t, simplify.IsTautology(c))
}

func TestIsTautologyDetectsComplementaryLiterals(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := st.Const(sg.Intern("a", 0), iota)
	b := st.Const(sg.Intern("b", 0), iota)
	c := cs.New(kbo, []*lit.Literal{
		lit.NewEquation(kbo, a, b, true),
		lit.NewEquation(kbo, a, b, false),
	}, clause.EmptyTrail, clause.Axiom("comp"))
	require.True(t, simplify.IsTautology(c))
}

func TestIsTautologyRejectsGenuineClause(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := st.Const(sg.Intern("a", 0), iota)
	b := st.Const(sg.Intern("b", 0), iota)
	c := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, a, b, true)}, clause.EmptyTrail, clause.Axiom("nontrivial"))
	require.False(t, simplify.IsTautology(c))
}

func TestDemodulationRewritesWithOrientedUnit(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	b := sg.Intern("b", 0)
	a := sg.Intern("a", 0) // interned after b so PrecArity ranks a above b, orienting a ≈ b left-to-right
	p := sg.Intern("p", 1)
	pty := ts.Arrow(iota, iota)

	ca := st.Const(a, iota)
	cb := st.Const(b, iota)
	pa := st.App(st.Const(p, pty), iota, ca)

	rule := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, ca, cb, true)}, clause.EmptyTrail, clause.Axiom("rule"))
	target := cs.New(kbo, []*lit.Literal{lit.NewAtom(st.True(), pa, true)}, clause.EmptyTrail, clause.Axiom("target"))

	rewritten, ok := simplify.Demodulation(st, cs, kbo, []*clause.Clause{rule}, target)
	require.True(t, ok)
	require.NotNil(t, rewritten)
	require.NotEqual(t, target.ID(), rewritten.ID())

	_, ok = simplify.Demodulation(st, cs, kbo, []*clause.Clause{rule}, rewritten)
	require.False(t, ok, "p(b) should already be fully demodulated")
}

func TestPositiveSimplifyReflectDropsKnownDisequation(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := st.Const(sg.Intern("a", 0), iota)
	b := st.Const(sg.Intern("b", 0), iota)
	c := st.Const(sg.Intern("c", 0), iota)

	rule := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, a, b, true)}, clause.EmptyTrail, clause.Axiom("rule"))
	target := cs.New(kbo, []*lit.Literal{
		lit.NewEquation(kbo, a, b, false),
		lit.NewEquation(kbo, a, c, true),
	}, clause.EmptyTrail, clause.Axiom("target"))

	out, ok := simplify.PositiveSimplifyReflect(st, cs, kbo, []*clause.Clause{rule}, target)
	require.True(t, ok)
	require.Len(t, out.Lits(), 1)
	require.Equal(t, clause.RuleSimplifyReflectPos, out.Proof().Rule())
}

func TestNegativeSimplifyReflectDropsKnownEquation(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := st.Const(sg.Intern("a", 0), iota)
	b := st.Const(sg.Intern("b", 0), iota)
	c := st.Const(sg.Intern("c", 0), iota)

	rule := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, a, b, false)}, clause.EmptyTrail, clause.Axiom("rule"))
	target := cs.New(kbo, []*lit.Literal{
		lit.NewEquation(kbo, a, b, true),
		lit.NewEquation(kbo, a, c, true),
	}, clause.EmptyTrail, clause.Axiom("target"))

	out, ok := simplify.NegativeSimplifyReflect(st, cs, kbo, []*clause.Clause{rule}, target)
	require.True(t, ok)
	require.Len(t, out.Lits(), 1)
	require.Equal(t, clause.RuleSimplifyReflectNeg, out.Proof().Rule())
}

func TestSubsumesMatchesUnitIntoLargerClause(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := st.Const(sg.Intern("a", 0), iota)
	b := st.Const(sg.Intern("b", 0), iota)
	c := st.Const(sg.Intern("c", 0), iota)

	pat := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, a, b, true)}, clause.EmptyTrail, clause.Axiom("pat"))
	subj := cs.New(kbo, []*lit.Literal{
		lit.NewEquation(kbo, a, b, true),
		lit.NewEquation(kbo, a, c, false),
	}, clause.EmptyTrail, clause.Axiom("subj"))

	require.True(t, simplify.Subsumes(st, pat, subj))
}

func TestSubsumesRejectsWhenNoMatchExists(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := st.Const(sg.Intern("a", 0), iota)
	b := st.Const(sg.Intern("b", 0), iota)
	c := st.Const(sg.Intern("c", 0), iota)

	pat := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, a, c, true)}, clause.EmptyTrail, clause.Axiom("pat"))
	subj := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, a, b, true)}, clause.EmptyTrail, clause.Axiom("subj"))

	require.False(t, simplify.Subsumes(st, pat, subj))
}

func TestSubsumesWithVariablePatternGeneralizesGroundClause(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := st.Const(sg.Intern("a", 0), iota)
	b := st.Const(sg.Intern("b", 0), iota)
	f := sg.Intern("f", 1)
	fty := ts.Arrow(iota, iota)
	x := st.Var(1, iota)

	fa := st.App(st.Const(f, fty), iota, a)
	fx := st.App(st.Const(f, fty), iota, x)

	pat := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, fx, b, true)}, clause.EmptyTrail, clause.Axiom("pat"))
	subj := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, fa, b, true)}, clause.EmptyTrail, clause.Axiom("subj"))

	require.True(t, simplify.Subsumes(st, pat, subj))
}

func TestContextualCuttingRemovesRedundantLiteral(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := st.Const(sg.Intern("a", 0), iota)
	b := st.Const(sg.Intern("b", 0), iota)
	c := st.Const(sg.Intern("c", 0), iota)

	rule := cs.New(kbo, []*lit.Literal{
		lit.NewEquation(kbo, a, c, true),
		lit.NewEquation(kbo, a, b, false),
	}, clause.EmptyTrail, clause.Axiom("rule"))
	target := cs.New(kbo, []*lit.Literal{
		lit.NewEquation(kbo, a, c, true),
		lit.NewEquation(kbo, a, b, true),
	}, clause.EmptyTrail, clause.Axiom("target"))

	out, ok := simplify.ContextualCutting(st, cs, kbo, []*clause.Clause{rule}, target)
	require.True(t, ok)
	require.Len(t, out.Lits(), 1)
}

func TestCondensationCollapsesUnifiableDuplicateLiterals(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := st.Const(sg.Intern("a", 0), iota)
	x := st.Var(1, iota)
	y := st.Var(2, iota)

	c := cs.New(kbo, []*lit.Literal{
		lit.NewEquation(kbo, x, a, true),
		lit.NewEquation(kbo, y, a, true),
	}, clause.EmptyTrail, clause.Axiom("dup"))

	out, ok := simplify.Condensation(st, cs, kbo, c)
	require.True(t, ok)
	require.Len(t, out.Lits(), 1)
	require.Equal(t, clause.RuleCondensation, out.Proof().Rule())
}
