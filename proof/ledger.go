package proof

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nnf/saturn/clause"
)

// LedgerEmitter renders a proof as a numbered, human-readable trace:
// one line per step, each clause followed by the rule and parent step
// numbers that produced it. This is the terser sibling of TPTPEmitter,
// meant for terminal output rather than tool interchange.
type LedgerEmitter struct{}

func (LedgerEmitter) Emit(steps []*clause.Clause) string {
	var b strings.Builder
	ids := assignIDs(steps)
	for i, c := range steps {
		fmt.Fprintf(&b, "%d. %s\t%s\n", i+1, clauseFormula(c), ledgerSource(c, ids))
	}
	return b.String()
}

func ledgerSource(c *clause.Clause, ids map[uint64]string) string {
	p := c.Proof()
	if p == nil {
		return "axiom"
	}
	if p.Kind() == clause.StepAxiom {
		if p.Source() == "" {
			return "axiom"
		}
		return "axiom(" + p.Source() + ")"
	}
	parents := make([]string, len(p.Parents()))
	for i, par := range p.Parents() {
		parents[i] = strconv.Itoa(indexOf(ids, par.Clause.ID()))
	}
	return string(p.Rule()) + "(" + strings.Join(parents, ",") + ")"
}

func indexOf(ids map[uint64]string, id uint64) int {
	target := ids[id]
	n, _ := strconv.Atoi(strings.TrimPrefix(target, "c"))
	return n
}
