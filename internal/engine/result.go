package engine

import "github.com/nnf/saturn/clause"

// Outcome is the top-level verdict of a saturation run (spec.md §6's
// "Output": one of Theorem, CounterSatisfiable, Unknown, ResourceOut).
type Outcome int

const (
	// OutcomeUnsatisfiable means an empty clause was derived: the
	// input clause set is unsatisfiable (a "Theorem" against a
	// negated conjecture).
	OutcomeUnsatisfiable Outcome = iota
	// OutcomeSaturated means Passive emptied without an empty clause:
	// the clause set is saturated (CounterSatisfiable up to the
	// calculus's completeness for the input fragment).
	OutcomeSaturated
	// OutcomeResourceOut means a resource limit (timeout, step count,
	// external cancellation) ended the run before either of the above.
	OutcomeResourceOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnsatisfiable:
		return "Unsatisfiable"
	case OutcomeSaturated:
		return "Saturated"
	case OutcomeResourceOut:
		return "ResourceOut"
	default:
		return "Unknown"
	}
}

// ExitCode maps Outcome to the process exit codes of spec.md §6.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeUnsatisfiable:
		return 0
	case OutcomeSaturated:
		return 1
	default:
		return 2
	}
}

// Result is what Run returns: the outcome, the empty clause's proof
// when Outcome is OutcomeUnsatisfiable, the limit that ended the run
// when Outcome is OutcomeResourceOut, and accumulated Stats.
type Result struct {
	Outcome Outcome
	Proof   *clause.Clause
	Limit   Limit
	Stats   Stats
}
