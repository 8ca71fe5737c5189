// Package saturn is a first-order superposition prover: hash-consed
// terms and clauses, a Knuth-Bendix or lexicographic path ordering, and
// a given-clause saturation loop over the superposition calculus. A
// caller builds a Problem with NewProblem, creates a Prover with New,
// and runs it with Prover.Prove (or ProveContext) to get a Result:
// the run opens no files, dials no network, and blocks only for the
// duration the caller's Strategy (or context) allows.
package saturn

import (
	"context"
	"fmt"

	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/config"
	"github.com/nnf/saturn/event"
	"github.com/nnf/saturn/internal/engine"
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
	"github.com/nnf/saturn/inter"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/term"
)

// Outcome re-exports engine.Outcome so callers need not import the
// internal/engine package to inspect a Result.
type Outcome = engine.Outcome

const (
	OutcomeUnsatisfiable = engine.OutcomeUnsatisfiable
	OutcomeSaturated     = engine.OutcomeSaturated
	OutcomeResourceOut   = engine.OutcomeResourceOut
)

// Result re-exports engine.Result.
type Result = engine.Result

// Limit re-exports engine.Limit.
type Limit = engine.Limit

// Problem bundles the hash-consing stores a set of input clauses was
// built against with the ordering that will drive the run: a Problem
// is a self-contained unit of work a Prover can execute, with no
// implicit dependence on process-global state.
type Problem struct {
	Sig      *symb.Signature
	Types    *ty.Store
	Terms    *term.Store
	Clauses  *clause.Store
	Ordering order.Ordering
	Input    []*clause.Clause
}

// NewProblem creates the term/clause infrastructure for one problem
// under strategy, ready for a caller to build clauses with (via Terms,
// Clauses, Sig) before handing the result to Prove.
func NewProblem(strategy config.Strategy) (*Problem, error) {
	sig := symb.New()
	policy, err := strategy.Precedence.Policy()
	if err != nil {
		return nil, err
	}
	sig.SetPrecedence(policy, nil)

	types := ty.NewStore()
	terms := term.NewStore(sig, types)
	clauses := clause.NewStore(terms)

	ord, err := newOrdering(strategy.Ordering, sig)
	if err != nil {
		return nil, err
	}

	return &Problem{Sig: sig, Types: types, Terms: terms, Clauses: clauses, Ordering: ord}, nil
}

func newOrdering(o config.Ordering, sig *symb.Signature) (order.Ordering, error) {
	switch o {
	case "", config.OrderingKBO:
		return order.NewKBO(sig), nil
	case config.OrderingLPO:
		return order.NewLPO(sig), nil
	default:
		return nil, fmt.Errorf("saturn: unknown ordering %q", o)
	}
}

// Prover runs the given-clause saturation loop with a fixed strategy
// and, optionally, an event.Bus observers can subscribe to.
type Prover struct {
	strategy config.Strategy
	bus      *event.Bus
}

// New creates a Prover configured by strategy.
func New(strategy config.Strategy) *Prover {
	return &Prover{strategy: strategy}
}

// Bus lazily creates and returns the Prover's event bus, so a caller
// that never asks for one pays nothing for it.
func (p *Prover) Bus() *event.Bus {
	if p.bus == nil {
		p.bus = event.NewBus()
	}
	return p.bus
}

// Prove admits prob.Input to Passive and runs the saturation loop
// under prob.Ordering to completion or resource exhaustion.
func (p *Prover) Prove(prob *Problem) (Result, error) {
	return p.ProveContext(context.Background(), prob)
}

// ProveContext is Prove, additionally stopping the run at its next
// step boundary if ctx is cancelled before the run would otherwise
// end — the hook portfolio.Run uses to abandon strategies still
// working once another has reached a conclusive result.
func (p *Prover) ProveContext(ctx context.Context, prob *Problem) (Result, error) {
	sel, err := p.strategy.Selection.Policy()
	if err != nil {
		return Result{}, err
	}
	calc := inter.SuperpositionCalculus{
		NoSubsumption:       p.strategy.RuleToggles.NoSubsumption,
		NoDemodulation:      p.strategy.RuleToggles.NoDemodulation,
		NoSimplifyReflect:   p.strategy.RuleToggles.NoSimplifyReflect,
		NoContextualCutting: p.strategy.RuleToggles.NoContextualCutting,
		NoCondensation:      p.strategy.RuleToggles.NoCondensation,
	}

	e := engine.New(prob.Terms, prob.Clauses, prob.Ordering, calc, sel)
	if p.bus != nil {
		e.SetBus(p.bus)
	}
	e.AddPassive(prob.Input...)

	ctl := engine.NewCtl(p.strategy.Timeout.Duration(), p.strategy.MaxSteps).WithMemLimit(p.strategy.MaxMemMB)
	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			ctl.Stop()
		case <-stopped:
		}
	}()
	return e.Run(ctl), nil
}
