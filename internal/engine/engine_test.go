package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/internal/engine"
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
	"github.com/nnf/saturn/inter"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/term"
)

func fixture() (*symb.Signature, *ty.Store, *term.Store, *order.KBO, *clause.Store) {
	sg := symb.New()
	ts := ty.NewStore()
	st := term.NewStore(sg, ts)
	sg.SetPrecedence(symb.PrecArity, nil)
	return sg, ts, st, order.NewKBO(sg), clause.NewStore(st)
}

func newEngine(st *term.Store, cs *clause.Store, ord order.Ordering) *engine.Engine {
	return engine.New(st, cs, ord, inter.SuperpositionCalculus{}, lit.SelectOneNegative)
}

// TestReflexivityRefutesViaEqualityResolution is spec.md §8 scenario 1:
// { ¬(a = a) } → Unsatisfiable.
func TestReflexivityRefutesViaEqualityResolution(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := st.Const(sg.Intern("a", 0), iota)

	goal := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, a, a, false)}, clause.EmptyTrail, clause.Axiom("goal"))

	e := newEngine(st, cs, kbo)
	e.AddPassive(goal)

	res := e.Run(engine.NewCtl(5*time.Second, 1000))
	require.Equal(t, engine.OutcomeUnsatisfiable, res.Outcome)
	require.NotNil(t, res.Proof)
	require.True(t, res.Proof.IsEmpty())
}

// TestModusPonensViaSuperposition is spec.md §8 scenario 2:
// { p(a), ¬p(X) ∨ q(X) } plus goal ¬q(a) → empty clause.
func TestModusPonensViaSuperposition(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	pty := ts.Arrow(iota, iota)
	a := st.Const(sg.Intern("a", 0), iota)
	p := st.Const(sg.Intern("p", 1), pty)
	q := st.Const(sg.Intern("q", 1), pty)
	x := st.Var(1, iota)

	pa := st.App(p, iota, a)
	px := st.App(p, iota, x)
	qa := st.App(q, iota, a)
	qx := st.App(q, iota, x)

	factPA := cs.New(kbo, []*lit.Literal{lit.NewAtom(st.True(), pa, true)}, clause.EmptyTrail, clause.Axiom("p(a)"))
	rule := cs.New(kbo, []*lit.Literal{
		lit.NewAtom(st.True(), px, false),
		lit.NewAtom(st.True(), qx, true),
	}, clause.EmptyTrail, clause.Axiom("rule"))
	negGoal := cs.New(kbo, []*lit.Literal{lit.NewAtom(st.True(), qa, false)}, clause.EmptyTrail, clause.Axiom("goal"))

	e := newEngine(st, cs, kbo)
	e.AddPassive(factPA, rule, negGoal)

	res := e.Run(engine.NewCtl(5*time.Second, 1000))
	require.Equal(t, engine.OutcomeUnsatisfiable, res.Outcome)
}

// TestSaturationWithoutRefutation is spec.md §8 scenario 4: { p(a) }
// alone saturates with no proof.
func TestSaturationWithoutRefutation(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	pty := ts.Arrow(iota, iota)
	a := st.Const(sg.Intern("a", 0), iota)
	p := st.Const(sg.Intern("p", 1), pty)
	pa := st.App(p, iota, a)

	factPA := cs.New(kbo, []*lit.Literal{lit.NewAtom(st.True(), pa, true)}, clause.EmptyTrail, clause.Axiom("p(a)"))

	e := newEngine(st, cs, kbo)
	e.AddPassive(factPA)

	res := e.Run(engine.NewCtl(5*time.Second, 1000))
	require.Equal(t, engine.OutcomeSaturated, res.Outcome)
}

// TestDemodulationRewritesActiveClauseDuringSaturation is spec.md §8
// scenario 5: { f(a) = b, p(f(a)) } → after demodulation { p(b) }.
func TestDemodulationRewritesActiveClauseDuringSaturation(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	fty := ts.Arrow(iota, iota)
	pty := ts.Arrow(iota, iota)
	b := sg.Intern("b", 0)
	a := sg.Intern("a", 0)
	f := st.Const(sg.Intern("f", 1), fty)
	p := st.Const(sg.Intern("p", 1), pty)

	ca, cb := st.Const(a, iota), st.Const(b, iota)
	fa := st.App(f, iota, ca)
	pfa := st.App(p, iota, fa)

	// f(a) outweighs b under KBO, so the equation orients f(a) -> b
	// regardless of precedence.
	eqRule := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, fa, cb, true)}, clause.EmptyTrail, clause.Axiom("f(a)=b"))
	target := cs.New(kbo, []*lit.Literal{lit.NewAtom(st.True(), pfa, true)}, clause.EmptyTrail, clause.Axiom("p(f(a))"))

	e := newEngine(st, cs, kbo)
	e.AddPassive(eqRule, target)

	res := e.Run(engine.NewCtl(5*time.Second, 1000))
	require.Equal(t, engine.OutcomeSaturated, res.Outcome)

	pb := st.App(p, iota, cb)
	found := false
	for _, c := range e.Active() {
		if c.IsUnit() && c.Lits()[0].Kind() == lit.KEquation && c.Lits()[0].L() == pb {
			found = true
		}
	}
	require.True(t, found, "expected Active to contain the demodulated p(b)")
}

// TestSubsumptionDiscardsWeakerClause is spec.md §8 scenario 6: once
// p(X) is in Active, p(a) ∨ q(b) added to Passive is discarded as
// subsumed.
func TestSubsumptionDiscardsWeakerClause(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	pty := ts.Arrow(iota, iota)
	qty := ts.Arrow(iota, iota)
	a := st.Const(sg.Intern("a", 0), iota)
	b := st.Const(sg.Intern("b", 0), iota)
	p := st.Const(sg.Intern("p", 1), pty)
	q := st.Const(sg.Intern("q", 1), qty)
	x := st.Var(1, iota)

	px := st.App(p, iota, x)
	pa := st.App(p, iota, a)
	qb := st.App(q, iota, b)

	general := cs.New(kbo, []*lit.Literal{lit.NewAtom(st.True(), px, true)}, clause.EmptyTrail, clause.Axiom("p(X)"))
	weaker := cs.New(kbo, []*lit.Literal{
		lit.NewAtom(st.True(), pa, true),
		lit.NewAtom(st.True(), qb, true),
	}, clause.EmptyTrail, clause.Axiom("p(a)|q(b)"))

	e := newEngine(st, cs, kbo)
	e.AddPassive(general, weaker)

	res := e.Run(engine.NewCtl(5*time.Second, 1000))
	require.Equal(t, engine.OutcomeSaturated, res.Outcome)
	require.True(t, res.Stats.Discarded >= 1)
	for _, c := range e.Active() {
		require.NotEqual(t, weaker.ID(), c.ID(), "the subsumed clause must not end up in Active")
	}
}

// TestBackwardSubsumptionRemovesWeakerActiveMember pushes the weaker
// clause first so it reaches Active before the general clause is
// given, exercising BackwardSimpl's subsumption path (and the
// feature-vector index that prunes its candidate set) rather than the
// forward ActiveSimpl check TestSubsumptionDiscardsWeakerClause
// covers.
func TestBackwardSubsumptionRemovesWeakerActiveMember(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	pty := ts.Arrow(iota, iota)
	qty := ts.Arrow(iota, iota)
	a := st.Const(sg.Intern("a", 0), iota)
	b := st.Const(sg.Intern("b", 0), iota)
	p := st.Const(sg.Intern("p", 1), pty)
	q := st.Const(sg.Intern("q", 1), qty)
	x := st.Var(1, iota)

	px := st.App(p, iota, x)
	pa := st.App(p, iota, a)
	qb := st.App(q, iota, b)

	weaker := cs.New(kbo, []*lit.Literal{
		lit.NewAtom(st.True(), pa, true),
		lit.NewAtom(st.True(), qb, true),
	}, clause.EmptyTrail, clause.Axiom("p(a)|q(b)"))
	general := cs.New(kbo, []*lit.Literal{lit.NewAtom(st.True(), px, true)}, clause.EmptyTrail, clause.Axiom("p(X)"))

	e := newEngine(st, cs, kbo)
	e.AddPassive(weaker, general)

	res := e.Run(engine.NewCtl(5*time.Second, 1000))
	require.Equal(t, engine.OutcomeSaturated, res.Outcome)
	require.True(t, res.Stats.Simplified >= 1)
	for _, c := range e.Active() {
		require.NotEqual(t, weaker.ID(), c.ID(), "the backward-subsumed clause must not remain in Active")
	}
}
