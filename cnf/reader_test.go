package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/cnf"
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/term"
)

func fixture() *cnf.Reader {
	sig := symb.New()
	types := ty.NewStore()
	terms := term.NewStore(sig, types)
	sig.SetPrecedence(symb.PrecArity, nil)
	cs := clause.NewStore(terms)
	ord := order.NewKBO(sig)
	return cnf.NewReader(sig, types, terms, cs, ord)
}

func TestReadStringParsesGroundUnitClause(t *testing.T) {
	r := fixture()
	stmts, err := r.ReadString(`cnf(c1, axiom, p(a)).`)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	require.Equal(t, "c1", stmts[0].Name)
	require.Equal(t, cnf.RoleAxiom, stmts[0].Role)
	require.True(t, stmts[0].Clause.IsUnit())
}

func TestReadStringParsesDisjunctionAndNegation(t *testing.T) {
	r := fixture()
	stmts, err := r.ReadString(`cnf(rule, axiom, ~p(X) | q(X)).`)
	require.NoError(t, err)
	require.Len(t, stmts[0].Clause.Lits(), 2)
	require.True(t, stmts[0].Clause.Lits()[0].IsNegative() || stmts[0].Clause.Lits()[1].IsNegative())
}

func TestReadStringParsesEquations(t *testing.T) {
	r := fixture()
	stmts, err := r.ReadString(`cnf(eq1, axiom, f(a) = b). cnf(eq2, axiom, f(a) != c).`)
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	require.True(t, stmts[0].Clause.Lits()[0].IsPositive())
	require.True(t, stmts[1].Clause.Lits()[0].IsNegative())
}

func TestReadStringNegatesConjectureAndFlagsGoal(t *testing.T) {
	r := fixture()
	stmts, err := r.ReadString(`cnf(goal, conjecture, q(a)).`)
	require.NoError(t, err)
	c := stmts[0].Clause
	require.True(t, c.HasFlag(clause.FlagGoal))
	require.True(t, c.Lits()[0].IsNegative())
}

func TestReadStringSharesVariableAcrossLiteralsInOneClause(t *testing.T) {
	r := fixture()
	stmts, err := r.ReadString(`cnf(c1, axiom, p(X) | q(X)).`)
	require.NoError(t, err)
	lits := stmts[0].Clause.Lits()
	require.Equal(t, lits[0].L().Args()[0], lits[1].L().Args()[0])
}

func TestReadStringRejectsMalformedInput(t *testing.T) {
	r := fixture()
	_, err := r.ReadString(`cnf(c1, axiom, p(a)`)
	require.Error(t, err)
}
