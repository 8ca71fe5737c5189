package proof

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nnf/saturn/clause"
)

// TPTPEmitter renders a proof in the TSTP derivation format TPTP-based
// provers exchange: one cnf(id, role, formula, source) line per step,
// axioms sourced as file(unknown, name) and inferences sourced as
// inference(rule, [status(thm)], [parent_ids]).
type TPTPEmitter struct{}

func (TPTPEmitter) Emit(steps []*clause.Clause) string {
	var b strings.Builder
	ids := assignIDs(steps)
	for _, c := range steps {
		role := "plain"
		if c.HasFlag(clause.FlagGoal) {
			role = "negated_conjecture"
		}
		fmt.Fprintf(&b, "cnf(%s, %s, %s, %s).\n", ids[c.ID()], role, clauseFormula(c), tptpSource(c, ids))
	}
	return b.String()
}

func assignIDs(steps []*clause.Clause) map[uint64]string {
	ids := make(map[uint64]string, len(steps))
	for i, c := range steps {
		ids[c.ID()] = "c" + strconv.Itoa(i+1)
	}
	return ids
}

func clauseFormula(c *clause.Clause) string {
	if c.IsEmpty() {
		return "$false"
	}
	return c.String()
}

func tptpSource(c *clause.Clause, ids map[uint64]string) string {
	p := c.Proof()
	if p == nil || p.Kind() == clause.StepAxiom {
		src := "unknown"
		if p != nil && p.Source() != "" {
			src = p.Source()
		}
		return fmt.Sprintf("file(unknown, %s)", src)
	}
	parents := make([]string, len(p.Parents()))
	for i, par := range p.Parents() {
		parents[i] = ids[par.Clause.ID()]
	}
	return fmt.Sprintf("inference(%s, [status(thm)], [%s])", p.Rule(), strings.Join(parents, ", "))
}
