// Package proof reconstructs and renders the proof DAG rooted at a
// derived clause (spec.md §4.9): a topological walk over ProofStep
// parent pointers feeding a pluggable Emitter, so the saturation loop
// itself never depends on any one output format.
package proof

import (
	"fmt"

	"github.com/nnf/saturn/clause"
)

// dfs walks the proof DAG in the same three-color, post-order style as
// a combinational-circuit DFS: mark 1 means "on the current path"
// (used to catch a cycle, which would mean a bug elsewhere since proof
// steps are supposed to form a DAG), mark 2 means "emitted".
type dfs struct {
	marks map[uint64]byte
	order []*clause.Clause
}

func newDFS() *dfs {
	return &dfs{marks: make(map[uint64]byte, 64)}
}

func (d *dfs) visit(c *clause.Clause) {
	switch d.marks[c.ID()] {
	case 2:
		return
	case 1:
		panic(fmt.Sprintf("proof: cycle through clause %d", c.ID()))
	}
	d.marks[c.ID()] = 1
	if c.Proof() != nil {
		for _, p := range c.Proof().Parents() {
			d.visit(p.Clause)
		}
	}
	d.marks[c.ID()] = 2
	d.order = append(d.order, c)
}

// Walk returns the clauses in root's proof DAG in a topological order
// where every parent precedes its children, root last.
func Walk(root *clause.Clause) []*clause.Clause {
	d := newDFS()
	d.visit(root)
	return d.order
}

// Emitter renders one ordered proof (as returned by Walk) to text.
// Implementations are read-only: they inspect clauses and ProofSteps
// and never mutate stores, so a proof can be rendered from a run that
// has already finished.
type Emitter interface {
	Emit(steps []*clause.Clause) string
}

// Render walks root's proof DAG and renders it with e.
func Render(root *clause.Clause, e Emitter) string {
	return e.Emit(Walk(root))
}
