// Package gen generates random well-typed terms and clauses for
// property-based tests, the same "package-level seedable rng behind a
// mutex, Rand* functions writing into a caller-supplied sink" shape a
// SAT solver's own random-CNF generator uses, adapted from random CNF
// instances to random term/clause structure over a small signature.
package gen

import (
	"math/rand"
	"sync"

	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/term"
)

var (
	mu  sync.Mutex
	rng = rand.New(rand.NewSource(33))
)

// Seed reseeds the package-level generator, keeping it
// deterministic-by-default but reseedable on demand.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

func intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return rng.Intn(n)
}

// Sig builds a small fixed signature: nConst constants, one unary
// function symbol f, one binary function symbol g, one unary
// predicate p, and one binary predicate q. It's deliberately tiny
// since term-generator fuzzing wants many collisions and repeated
// substructure, not a wide vocabulary.
type Sig struct {
	sg     *symb.Signature
	types  *ty.Store
	terms  *term.Store
	base   *ty.Type
	consts []*symb.Symbol
	f, g   *symb.Symbol
	p, q   *symb.Symbol
}

// NewSig interns nConst constants plus the fixed f/g/p/q symbols into
// sg, returning a Sig ready for RandTerm and RandClause.
func NewSig(sg *symb.Signature, types *ty.Store, terms *term.Store, nConst int) *Sig {
	base := types.App(sg.Intern("$i", 0))
	s := &Sig{sg: sg, types: types, terms: terms, base: base}
	for i := 0; i < nConst; i++ {
		s.consts = append(s.consts, sg.Intern(constName(i), 0))
	}
	s.f = sg.Intern("f", 1)
	s.g = sg.Intern("g", 2)
	s.p = sg.Intern("p", 1)
	s.q = sg.Intern("q", 2)
	return s
}

func constName(i int) string {
	names := []string{"a", "b", "c", "d", "e"}
	if i < len(names) {
		return names[i]
	}
	return "k" + string(rune('0'+i))
}

// RandTerm returns a random term of depth at most maxDepth, drawing
// variables from a pool of nVars ids shared across a single clause's
// literals (callers wanting a fresh scope pass their own nVars/varID
// bookkeeping the way cnf.Reader does).
func (s *Sig) RandTerm(maxDepth, nVars int) *term.Term {
	if maxDepth <= 0 || intn(3) == 0 {
		return s.randLeaf(nVars)
	}
	switch intn(2) {
	case 0:
		arg := s.RandTerm(maxDepth-1, nVars)
		head := s.terms.Const(s.f, s.base)
		return s.terms.App(head, s.base, arg)
	default:
		l := s.RandTerm(maxDepth-1, nVars)
		r := s.RandTerm(maxDepth-1, nVars)
		head := s.terms.Const(s.g, s.base)
		return s.terms.App(head, s.base, l, r)
	}
}

func (s *Sig) randLeaf(nVars int) *term.Term {
	if nVars > 0 && intn(2) == 0 {
		return s.terms.Var(intn(nVars), s.base)
	}
	c := s.consts[intn(len(s.consts))]
	return s.terms.Const(c, s.base)
}

// RandLiteral returns a random literal: an equation between two
// random terms, or an application of p or q to random arguments,
// each independently negated with roughly even odds. ord is only
// needed to cache the equation's orientation; atoms are always Gt.
func (s *Sig) RandLiteral(ord order.Ordering, maxDepth, nVars int) *lit.Literal {
	sign := intn(2) == 0
	switch intn(3) {
	case 0:
		l := s.RandTerm(maxDepth, nVars)
		r := s.RandTerm(maxDepth, nVars)
		return lit.NewEquation(ord, l, r, sign)
	case 1:
		arg := s.RandTerm(maxDepth, nVars)
		head := s.terms.Const(s.p, s.base)
		app := s.terms.App(head, s.base, arg)
		return lit.NewAtom(s.terms.True(), app, sign)
	default:
		l := s.RandTerm(maxDepth, nVars)
		r := s.RandTerm(maxDepth, nVars)
		head := s.terms.Const(s.q, s.base)
		app := s.terms.App(head, s.base, l, r)
		return lit.NewAtom(s.terms.True(), app, sign)
	}
}

// RandClause builds a random clause of up to maxLits literals, each
// up to maxDepth deep, sharing a pool of nVars variables across the
// whole clause so that shared-variable literals (the common case a
// unification-heavy calculus needs to exercise) actually occur.
func (s *Sig) RandClause(cs *clause.Store, ord order.Ordering, maxLits, maxDepth, nVars int) *clause.Clause {
	if maxLits < 1 {
		maxLits = 1
	}
	n := 1 + intn(maxLits)
	lits := make([]*lit.Literal, n)
	for i := range lits {
		lits[i] = s.RandLiteral(ord, maxDepth, nVars)
	}
	return cs.New(ord, lits, clause.EmptyTrail, clause.Axiom("random"))
}

// RandProblem builds n random clauses under the given store/ordering,
// the batch entry point AddPassive-driven saturation tests loop over.
func (s *Sig) RandProblem(cs *clause.Store, ord order.Ordering, n, maxLits, maxDepth, nVars int) []*clause.Clause {
	out := make([]*clause.Clause, n)
	for i := range out {
		out[i] = s.RandClause(cs, ord, maxLits, maxDepth, nVars)
	}
	return out
}
