package gen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/gen"
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/term"
)

func fixture(t *testing.T) (*gen.Sig, *clause.Store, order.Ordering) {
	t.Helper()
	sg := symb.New()
	types := ty.NewStore()
	terms := term.NewStore(sg, types)
	sg.SetPrecedence(symb.PrecArity, nil)
	cs := clause.NewStore(terms)
	ord := order.NewKBO(sg)
	s := gen.NewSig(sg, types, terms, 3)
	return s, cs, ord
}

func TestRandTermRespectsDepthBudgetAndNeverPanics(t *testing.T) {
	gen.Seed(1)
	s, _, _ := fixture(t)
	for i := 0; i < 200; i++ {
		tm := s.RandTerm(3, 2)
		require.NotNil(t, tm)
		require.LessOrEqual(t, tm.Depth(), 3)
	}
}

func TestRandClauseProducesAtLeastOneLiteral(t *testing.T) {
	gen.Seed(2)
	s, cs, ord := fixture(t)
	for i := 0; i < 50; i++ {
		c := s.RandClause(cs, ord, 4, 2, 2)
		require.NotEmpty(t, c.Lits())
		require.LessOrEqual(t, len(c.Lits()), 4)
	}
}

func TestRandProblemBuildsRequestedClauseCount(t *testing.T) {
	gen.Seed(3)
	s, cs, ord := fixture(t)
	prob := s.RandProblem(cs, ord, 25, 3, 2, 2)
	require.Len(t, prob, 25)
	for _, c := range prob {
		require.NotNil(t, c)
	}
}

func TestSeedMakesGenerationDeterministic(t *testing.T) {
	s1, cs1, ord1 := fixture(t)
	gen.Seed(42)
	p1 := s1.RandProblem(cs1, ord1, 10, 3, 2, 2)

	s2, cs2, ord2 := fixture(t)
	gen.Seed(42)
	p2 := s2.RandProblem(cs2, ord2, 10, 3, 2, 2)

	require.Len(t, p1, len(p2))
	for i := range p1 {
		require.Equal(t, p1[i].String(), p2[i].String())
	}
}
