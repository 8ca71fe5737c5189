package simplify

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/term"
)

// ContextualCutting removes one literal L from target when some
// clause among rules subsumes (target minus L) ∨ ¬L, i.e. the rest of
// the clause together with L's negation is already implied, so L adds
// nothing (spec.md §4.6, "contextual literal cutting" / subsumption
// resolution). It returns the shortened clause and true on the first
// literal this applies to.
func ContextualCutting(st *term.Store, cs *clause.Store, ord order.Ordering, rules []*clause.Clause, target *clause.Clause) (*clause.Clause, bool) {
	lits := target.Lits()
	for i, l := range lits {
		probe := append(without(lits, i), l.Negate())
		for _, rl := range rules {
			if rl == target {
				continue
			}
			if SubsumesLits(st, rl.Lits(), probe) {
				newLits := without(lits, i)
				return cs.New(ord, newLits, target.Trail(),
					clause.Inference(clause.RuleContextualCutting, clause.Parent{Clause: target}, clause.Parent{Clause: rl})), true
			}
		}
	}
	return nil, false
}
