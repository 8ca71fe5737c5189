// Package portfolio runs several independently configured strategies
// over the same problem concurrently and takes the first conclusive
// result, cancelling the rest — an explicit extension beyond the
// single-threaded core loop (spec.md §5's closing paragraph), grounded
// on an ax-style worker-pool idiom but built on
// golang.org/x/sync/errgroup instead of a hand-rolled channel pool,
// since portfolio strategies don't share solving state the way ax's
// pooled inter.S copies do.
package portfolio

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nnf/saturn"
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/cnf"
	"github.com/nnf/saturn/config"
)

// Run parses input (TPTP-CNF-flavored source, per cnf.Reader) into a
// fresh Problem for each strategy and drives one saturn.Prover per
// strategy concurrently, returning the first result whose Outcome is
// Unsatisfiable or Saturated. Every strategy gets its own Problem
// (its own term/clause stores) built from the same logical input,
// since a Problem's hash-consed clauses can't be shared across
// strategies with independent stores — the same reason bench.run
// reparses its scenario text once per (scenario, strategy) pair
// rather than sharing a *clause.Clause slice. If every strategy ends
// in ResourceOut (or errors), the last-observed result is returned.
// ctx cancellation stops every worker at its next Ctl check.
func Run(ctx context.Context, input string, strategies []config.Strategy) (saturn.Result, error) {
	if len(strategies) == 0 {
		return saturn.Result{}, nil
	}

	type outcome struct {
		res saturn.Result
		err error
	}
	results := make(chan outcome, len(strategies))

	gctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(gctx)
	for _, strategy := range strategies {
		strategy := strategy
		g.Go(func() error {
			prob, err := buildProblem(strategy, input)
			if err != nil {
				results <- outcome{err: err}
				return nil
			}
			res, err := saturn.New(strategy).ProveContext(gctx, prob)
			results <- outcome{res: res, err: err}
			return nil
		})
	}

	go func() {
		g.Wait()
		close(results)
	}()

	var last outcome
	seen := 0
	for o := range results {
		seen++
		if o.err == nil && conclusive(o.res.Outcome) {
			cancel()
			return o.res, nil
		}
		last = o
		if seen == len(strategies) {
			break
		}
	}
	return last.res, last.err
}

func conclusive(o saturn.Outcome) bool {
	return o == saturn.OutcomeUnsatisfiable || o == saturn.OutcomeSaturated
}

// buildProblem builds a fresh Problem under strategy and parses input
// into its Input clauses, mirroring bench.run's per-strategy Problem
// construction.
func buildProblem(strategy config.Strategy, input string) (*saturn.Problem, error) {
	prob, err := saturn.NewProblem(strategy)
	if err != nil {
		return nil, err
	}
	reader := cnf.NewReader(prob.Sig, prob.Types, prob.Terms, prob.Clauses, prob.Ordering)
	stmts, err := reader.ReadString(input)
	if err != nil {
		return nil, err
	}
	prob.Input = make([]*clause.Clause, len(stmts))
	for i, st := range stmts {
		prob.Input[i] = st.Clause
	}
	return prob, nil
}
