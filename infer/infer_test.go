package infer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/infer"
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
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

// TestSuperpositionRewritesGroundTerm builds a ≈ b (from) and p(a)
// (into, as an atom) and checks superposition derives p(b).
func TestSuperpositionRewritesGroundTerm(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	b := sg.Intern("b", 0)
	a := sg.Intern("a", 0) // interned after b so PrecArity's id tie-break ranks a above b
	p := sg.Intern("p", 1)
	pty := ts.Arrow(iota, iota)

	ca := st.Const(a, iota)
	cb := st.Const(b, iota)
	pa := st.App(st.Const(p, pty), iota, ca)

	// orient a > b so a ≈ b is a valid rewrite rule left-to-right.
	require.Equal(t, order.Gt, kbo.Compare(ca, cb))

	eqAB := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, ca, cb, true)}, clause.EmptyTrail, clause.Axiom("eq"))
	pAtom := cs.New(kbo, []*lit.Literal{lit.NewAtom(st.True(), pa, true)}, clause.EmptyTrail, clause.Axiom("goal"))

	results := infer.Superposition(st, cs, kbo, eqAB, pAtom)
	require.NotEmpty(t, results)

	found := false
	for _, r := range results {
		for _, l := range r.Lits() {
			if l.Kind() == lit.KEquation && l.L().Kind() == term.KApp {
				if len(l.L().Args()) == 1 && l.L().Args()[0] == cb {
					found = true
				}
			}
		}
	}
	require.True(t, found, "expected a conclusion containing p(b)")
}

func TestEqualityResolutionDerivesEmptyClause(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	a := sg.Intern("a", 0)
	ca := st.Const(a, iota)

	c := cs.New(kbo, []*lit.Literal{lit.NewEquation(kbo, ca, ca, false)}, clause.EmptyTrail, clause.Axiom("refl-neg"))
	results := infer.EqualityResolution(st, cs, kbo, c)
	require.Len(t, results, 1)
	require.True(t, results[0].IsEmpty())
}

func TestEqualityFactoringProducesExpectedShape(t *testing.T) {
	sg, ts, st, kbo, cs := fixture()
	iota := ts.App(sg.Intern("iota", 0))
	b := sg.Intern("b", 0)
	cc := sg.Intern("c", 0)
	a := sg.Intern("a", 0) // interned last so PrecArity's id tie-break ranks a above b and c
	ca := st.Const(a, iota)
	cb := st.Const(b, iota)
	ccc := st.Const(cc, iota)

	// a ≈ b ∨ a ≈ c : factoring on the shared left side a.
	c := cs.New(kbo, []*lit.Literal{
		lit.NewEquation(kbo, ca, cb, true),
		lit.NewEquation(kbo, ca, ccc, true),
	}, clause.EmptyTrail, clause.Axiom("fact"))

	results := infer.EqualityFactoring(st, cs, kbo, c)
	require.NotEmpty(t, results)
}
