package saturn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	saturn "github.com/nnf/saturn"
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/config"
	"github.com/nnf/saturn/event"
	"github.com/nnf/saturn/lit"
)

func TestProveRefutesReflexiveDisequation(t *testing.T) {
	prob, err := saturn.NewProblem(config.Default())
	require.NoError(t, err)

	iota := prob.Types.App(prob.Sig.Intern("iota", 0))
	a := prob.Terms.Const(prob.Sig.Intern("a", 0), iota)
	goal := prob.Clauses.New(prob.Ordering, []*lit.Literal{
		lit.NewEquation(prob.Ordering, a, a, false),
	}, clause.EmptyTrail, clause.Axiom("goal"))
	prob.Input = []*clause.Clause{goal}

	p := saturn.New(config.Default())
	res, err := p.Prove(prob)
	require.NoError(t, err)
	require.Equal(t, saturn.OutcomeUnsatisfiable, res.Outcome)
}

func TestProveReportsSaturatedOnUnrefutableInput(t *testing.T) {
	prob, err := saturn.NewProblem(config.Default())
	require.NoError(t, err)

	iota := prob.Types.App(prob.Sig.Intern("iota", 0))
	pty := prob.Types.Arrow(iota, iota)
	a := prob.Terms.Const(prob.Sig.Intern("a", 0), iota)
	p1 := prob.Terms.Const(prob.Sig.Intern("p", 1), pty)
	pa := prob.Terms.App(p1, iota, a)
	fact := prob.Clauses.New(prob.Ordering, []*lit.Literal{
		lit.NewAtom(prob.Terms.True(), pa, true),
	}, clause.EmptyTrail, clause.Axiom("p(a)"))
	prob.Input = []*clause.Clause{fact}

	prover := saturn.New(config.Default())
	res, err := prover.Prove(prob)
	require.NoError(t, err)
	require.Equal(t, saturn.OutcomeSaturated, res.Outcome)
}

func TestProveRejectsUnknownOrdering(t *testing.T) {
	strategy := config.Default()
	strategy.Ordering = "bogus"
	_, err := saturn.NewProblem(strategy)
	require.Error(t, err)
}

func TestProverPublishesDoneEvent(t *testing.T) {
	prob, err := saturn.NewProblem(config.Default())
	require.NoError(t, err)
	iota := prob.Types.App(prob.Sig.Intern("iota", 0))
	a := prob.Terms.Const(prob.Sig.Intern("a", 0), iota)
	fact := prob.Clauses.New(prob.Ordering, []*lit.Literal{
		lit.NewEquation(prob.Ordering, a, a, true),
	}, clause.EmptyTrail, clause.Axiom("a=a"))
	prob.Input = []*clause.Clause{fact}

	prover := saturn.New(config.Default())
	ch, cancel := prover.Bus().Subscribe(8)
	defer cancel()

	_, err = prover.Prove(prob)
	require.NoError(t, err)

	select {
	case ev := <-ch:
		require.Equal(t, event.KindGiven, ev.Kind)
	default:
		t.Fatal("expected at least one event to have been published")
	}
}
