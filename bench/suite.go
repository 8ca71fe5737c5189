// Package bench runs the seed end-to-end scenarios of spec.md §8 item
// by item and reports pass/fail/duration per scenario, the same
// named-problem-suite shape a bench harness uses for named SAT
// instances, adapted from subprocess-per-instance DIMACS runs to
// in-process saturn.Prove calls over small TPTP-CNF-flavored problem
// texts.
package bench

import (
	"time"

	"github.com/nnf/saturn"
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/cnf"
	"github.com/nnf/saturn/config"
)

// Scenario is one named seed problem plus the outcome it is expected
// to reach, spec.md §8's "end-to-end scenarios (seed tests)".
type Scenario struct {
	Name  string
	Input string
	Want  saturn.Outcome
}

// Seeds holds spec.md §8's six seed scenarios in order.
var Seeds = []Scenario{
	{
		Name:  "reflexivity",
		Input: `cnf(neq, axiom, a != a).`,
		Want:  saturn.OutcomeUnsatisfiable,
	},
	{
		Name: "modus_ponens",
		Input: `cnf(fact, axiom, p(a)).
cnf(rule, axiom, ~p(X) | q(X)).
cnf(goal, axiom, ~q(a)).`,
		Want: saturn.OutcomeUnsatisfiable,
	},
	{
		Name: "group_inverse_involution",
		Input: `cnf(assoc, axiom, m(m(X,Y),Z) = m(X,m(Y,Z))).
cnf(left_identity, axiom, m(e,X) = X).
cnf(left_inverse, axiom, m(i(X),X) = e).
cnf(goal, conjecture, i(i(a)) = a).`,
		Want: saturn.OutcomeUnsatisfiable,
	},
	{
		Name:  "saturation_without_refutation",
		Input: `cnf(fact, axiom, p(a)).`,
		Want:  saturn.OutcomeSaturated,
	},
	{
		Name: "demodulation",
		Input: `cnf(eq, axiom, f(a) = b).
cnf(fact, axiom, p(f(a))).
cnf(goal, axiom, ~p(b)).`,
		Want: saturn.OutcomeUnsatisfiable,
	},
	{
		Name: "subsumption",
		Input: `cnf(general, axiom, p(X)).
cnf(specific, axiom, p(a) | q(b)).
cnf(goal, axiom, ~p(a)).`,
		Want: saturn.OutcomeUnsatisfiable,
	},
}

// Result is one scenario's outcome, mirroring an InstRun's
// Result/Dur/Error fields but for an in-process run.
type Result struct {
	Scenario Scenario
	Got      saturn.Outcome
	Dur      time.Duration
	Err      error
}

// Pass reports whether the run reached the scenario's expected
// outcome without error.
func (r Result) Pass() bool { return r.Err == nil && r.Got == r.Scenario.Want }

// Run executes one scenario under strategy and reports its outcome
// and wall-clock duration.
func Run(s Scenario, strategy config.Strategy) Result {
	start := time.Now()
	res, err := run(s, strategy)
	dur := time.Since(start)
	if err != nil {
		return Result{Scenario: s, Dur: dur, Err: err}
	}
	return Result{Scenario: s, Got: res.Outcome, Dur: dur}
}

func run(s Scenario, strategy config.Strategy) (saturn.Result, error) {
	prob, err := saturn.NewProblem(strategy)
	if err != nil {
		return saturn.Result{}, err
	}
	reader := cnf.NewReader(prob.Sig, prob.Types, prob.Terms, prob.Clauses, prob.Ordering)
	stmts, err := reader.ReadString(s.Input)
	if err != nil {
		return saturn.Result{}, err
	}
	prob.Input = make([]*clause.Clause, len(stmts))
	for i, st := range stmts {
		prob.Input[i] = st.Clause
	}
	prover := saturn.New(strategy)
	return prover.Prove(prob)
}

// RunSuite runs every scenario in scenarios under strategy, in order.
func RunSuite(scenarios []Scenario, strategy config.Strategy) []Result {
	out := make([]Result, len(scenarios))
	for i, s := range scenarios {
		out[i] = Run(s, strategy)
	}
	return out
}
