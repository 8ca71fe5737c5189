// Package inter defines the Calculus abstraction the saturation loop
// drives: the five rule families of spec.md §9's design note (binary,
// unary, simpl, active_simpl, backward_simpl) plus the trivial /
// redundant / preprocess hooks, so the loop itself never names a
// concrete inference or simplification rule directly.
package inter

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/term"
)

// BackwardResult records what a backward-simplification pass did to
// one clause already in Active: New is the simplified replacement, or
// nil if the clause was discarded outright (e.g. backward subsumed).
type BackwardResult struct {
	Old *clause.Clause
	New *clause.Clause
}

// Calculus is the seam between the given-clause loop (internal/engine)
// and a specific set of inference and simplification rules. The
// engine never calls infer/simplify functions directly; it only ever
// goes through a Calculus, so a different calculus (e.g. one that
// drops equality reasoning, or adds a resolution rule) plugs in
// without touching the loop.
type Calculus interface {
	// Binary computes every binary generating inference between given
	// and each member of active (spec.md §4.8 step 8's "binary
	// inference rule between C and all clauses in Active").
	Binary(st *term.Store, cs *clause.Store, ord order.Ordering, given *clause.Clause, active []*clause.Clause) []*clause.Clause

	// Unary computes every unary generating inference on given alone.
	Unary(st *term.Store, cs *clause.Store, ord order.Ordering, given *clause.Clause) []*clause.Clause

	// Simpl forward-rewrites given to a fixpoint using simplSet (the
	// SimplSet ⊆ Active of spec.md §4.8), returning the normal form.
	Simpl(st *term.Store, cs *clause.Store, ord order.Ordering, simplSet []*clause.Clause, given *clause.Clause) *clause.Clause

	// ActiveSimpl reports whether given is redundant with respect to
	// active and should be discarded rather than kept (spec.md §4.8
	// step 5, "trivial/redundant check").
	ActiveSimpl(st *term.Store, ord order.Ordering, active []*clause.Clause, given *clause.Clause) bool

	// BackwardSimpl uses given, just admitted to Active, to simplify
	// or discard members of active (spec.md §4.8 step 6).
	// subsumptionCandidates is a feature-vector-pruned superset of
	// active (spec.md §4.7) consulted for the backward-subsumption
	// check only; demodulation and simplify-reflect still walk the
	// full active set, since the pruning vector isn't sound for those
	// checks. Only clauses that actually changed are returned.
	BackwardSimpl(st *term.Store, cs *clause.Store, ord order.Ordering, given *clause.Clause, active, subsumptionCandidates []*clause.Clause) []BackwardResult

	// IsTrivial reports a cheap, self-contained triviality check
	// (e.g. tautology) that does not need to consult active.
	IsTrivial(c *clause.Clause) bool

	// IsRedundant is the fuller check ActiveSimpl is built from,
	// exposed separately so preprocessing passes can reuse it without
	// re-deriving the trivial case.
	IsRedundant(st *term.Store, ord order.Ordering, active []*clause.Clause, c *clause.Clause) bool

	// Preprocess normalizes a freshly generated clause (e.g. by
	// condensation) before it is enqueued in Passive.
	Preprocess(st *term.Store, cs *clause.Store, ord order.Ordering, c *clause.Clause) *clause.Clause
}
