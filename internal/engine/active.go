package engine

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/index"
	"github.com/nnf/saturn/lit"
)

// Active holds the fully processed, indexed clauses of spec.md §4.8,
// plus SimplSet ⊆ Active (its unit positive members, the rewrite
// rules forward/backward simplification draw from) and a
// feature-vector index over the whole set for pruning subsumption
// candidates before the exact check runs (spec.md §4.7).
type Active struct {
	clauses   []*clause.Clause
	simplSet  []*clause.Clause
	fv        *index.FVIndex[*clause.Clause]
}

// NewActive creates an empty Active set.
func NewActive() *Active {
	return &Active{fv: index.NewFVIndex[*clause.Clause]()}
}

// All returns every clause currently in Active.
func (a *Active) All() []*clause.Clause { return a.clauses }

// SimplSet returns the current unit-positive simplification rules.
func (a *Active) SimplSet() []*clause.Clause { return a.simplSet }

// Add admits c to Active, updating the feature-vector index and
// SimplSet membership (spec.md §4.8 step 7).
func (a *Active) Add(c *clause.Clause) {
	c.SetFlag(clause.FlagProcessed)
	a.clauses = append(a.clauses, c)
	a.fv.Add(index.VectorOf(c), c)
	if isSimplRule(c) {
		a.simplSet = append(a.simplSet, c)
	}
}

// Remove drops c from Active, its index, and SimplSet.
func (a *Active) Remove(c *clause.Clause) {
	a.clauses = removeClause(a.clauses, c)
	a.simplSet = removeClause(a.simplSet, c)
	a.fv.Remove(c, sameClausePtr)
}

// SubsumerCandidates returns the members of Active whose feature
// vector could possibly subsume a clause with vector v — a superset
// the exact Subsumes check then filters (spec.md §4.7).
func (a *Active) SubsumerCandidates(v index.Vector) []*clause.Clause {
	var out []*clause.Clause
	for _, e := range a.fv.CandidateSubsumers(v) {
		out = append(out, e.Payload)
	}
	return out
}

// SubsumedCandidates returns the members of Active a clause with
// vector v could possibly subsume.
func (a *Active) SubsumedCandidates(v index.Vector) []*clause.Clause {
	var out []*clause.Clause
	for _, e := range a.fv.CandidateSubsumed(v) {
		out = append(out, e.Payload)
	}
	return out
}

func isSimplRule(c *clause.Clause) bool {
	if !c.IsUnit() {
		return false
	}
	l := c.Lits()[0]
	return l.Kind() == lit.KEquation && l.Sign()
}

func removeClause(cs []*clause.Clause, target *clause.Clause) []*clause.Clause {
	out := cs[:0]
	for _, c := range cs {
		if c != target {
			out = append(out, c)
		}
	}
	return out
}

func sameClausePtr(a, b *clause.Clause) bool { return a == b }
