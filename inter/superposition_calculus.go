package inter

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/infer"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/simplify"
	"github.com/nnf/saturn/term"
)

// SuperpositionCalculus wires the superposition/equality-resolution/
// equality-factoring generating rules (package infer) together with
// the demodulation/simplify-reflect/subsumption/condensation/
// contextual-cutting/tautology-deletion simplifying rules (package
// simplify) into the Calculus interface the given-clause loop drives.
// Its zero value runs the full rule set; set the No* fields to drop a
// simplification rule from the pipeline, the mechanism config.Strategy
// drives via its RuleToggles.
type SuperpositionCalculus struct {
	NoSubsumption       bool
	NoDemodulation      bool
	NoSimplifyReflect   bool
	NoContextualCutting bool
	NoCondensation      bool
}

var _ Calculus = SuperpositionCalculus{}

func (SuperpositionCalculus) Binary(st *term.Store, cs *clause.Store, ord order.Ordering, given *clause.Clause, active []*clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	for _, other := range active {
		out = append(out, infer.Superposition(st, cs, ord, given, other)...)
		out = append(out, infer.Superposition(st, cs, ord, other, given)...)
	}
	return out
}

func (SuperpositionCalculus) Unary(st *term.Store, cs *clause.Store, ord order.Ordering, given *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	out = append(out, infer.EqualityResolution(st, cs, ord, given)...)
	out = append(out, infer.EqualityFactoring(st, cs, ord, given)...)
	return out
}

// Simpl rewrites given to a fixpoint against simplSet, trying each
// simplifying rewrite rule in turn and restarting from the first rule
// whenever one applies, per spec.md §4.8 step 4 ("until fixpoint").
func (c SuperpositionCalculus) Simpl(st *term.Store, cs *clause.Store, ord order.Ordering, simplSet []*clause.Clause, given *clause.Clause) *clause.Clause {
	cur := given
	for {
		if !c.NoDemodulation {
			if next, ok := simplify.Demodulation(st, cs, ord, simplSet, cur); ok {
				cur = next
				continue
			}
		}
		if !c.NoSimplifyReflect {
			if next, ok := simplify.PositiveSimplifyReflect(st, cs, ord, simplSet, cur); ok {
				cur = next
				continue
			}
			if next, ok := simplify.NegativeSimplifyReflect(st, cs, ord, simplSet, cur); ok {
				cur = next
				continue
			}
		}
		if !c.NoContextualCutting {
			if next, ok := simplify.ContextualCutting(st, cs, ord, simplSet, cur); ok {
				cur = next
				continue
			}
		}
		return cur
	}
}

func (c SuperpositionCalculus) ActiveSimpl(st *term.Store, ord order.Ordering, active []*clause.Clause, given *clause.Clause) bool {
	return c.IsRedundant(st, ord, active, given)
}

func (SuperpositionCalculus) IsTrivial(c *clause.Clause) bool {
	return simplify.IsTautology(c)
}

func (c SuperpositionCalculus) IsRedundant(st *term.Store, ord order.Ordering, active []*clause.Clause, given *clause.Clause) bool {
	if c.IsTrivial(given) {
		return true
	}
	if c.NoSubsumption {
		return false
	}
	for _, a := range active {
		if a == given {
			continue
		}
		if simplify.Subsumes(st, a, given) {
			return true
		}
	}
	return false
}

// BackwardSimpl uses given as the sole simplification rule to
// demodulate, simplify-reflect, and backward-subsume the current
// members of active, per spec.md §4.8 step 6. subsumptionCandidates
// restricts the backward-subsumption scan to the members a
// feature-vector index says given could possibly subsume; active
// still carries the full set for demodulation and simplify-reflect,
// which have no comparable pruning vector.
func (c SuperpositionCalculus) BackwardSimpl(st *term.Store, cs *clause.Store, ord order.Ordering, given *clause.Clause, active, subsumptionCandidates []*clause.Clause) []BackwardResult {
	rules := []*clause.Clause{given}
	var out []BackwardResult
	subsumed := make(map[*clause.Clause]bool)
	if !c.NoSubsumption {
		for _, a := range subsumptionCandidates {
			if a == given || subsumed[a] {
				continue
			}
			if simplify.Subsumes(st, given, a) {
				out = append(out, BackwardResult{Old: a, New: nil})
				subsumed[a] = true
			}
		}
	}
	for _, a := range active {
		if a == given || subsumed[a] {
			continue
		}
		cur := a
		changed := false
		for {
			if !c.NoDemodulation {
				if next, ok := simplify.Demodulation(st, cs, ord, rules, cur); ok {
					cur, changed = next, true
					continue
				}
			}
			if !c.NoSimplifyReflect {
				if next, ok := simplify.PositiveSimplifyReflect(st, cs, ord, rules, cur); ok {
					cur, changed = next, true
					continue
				}
				if next, ok := simplify.NegativeSimplifyReflect(st, cs, ord, rules, cur); ok {
					cur, changed = next, true
					continue
				}
			}
			break
		}
		if changed {
			out = append(out, BackwardResult{Old: a, New: cur})
		}
	}
	return out
}

// Preprocess condenses a freshly derived clause to a fixpoint before
// it is enqueued in Passive, so Active never carries a clause with an
// internal redundancy another clause could have removed for free.
func (c SuperpositionCalculus) Preprocess(st *term.Store, cs *clause.Store, ord order.Ordering, cl *clause.Clause) *clause.Clause {
	if c.NoCondensation {
		return cl
	}
	cur := cl
	for {
		next, ok := simplify.Condensation(st, cs, ord, cur)
		if !ok {
			return cur
		}
		cur = next
	}
}
