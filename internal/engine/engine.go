// Package engine implements the given-clause saturation loop of
// spec.md §4.8 over the Calculus abstraction of package inter.
package engine

import (
	"time"

	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/event"
	"github.com/nnf/saturn/index"
	"github.com/nnf/saturn/inter"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/term"
)

// Hook is a registration point run at the end of every step (spec.md
// §4.8 step 9 / §6's "Extension interface"), e.g. to log progress or
// to add clauses derived by an out-of-band rule.
type Hook func(e *Engine, given *clause.Clause)

// Engine drives one saturation run: Active/Passive/SimplSet state,
// the calculus that supplies its rules, and the literal selection
// policy new clauses are tagged with as they enter Passive.
type Engine struct {
	st   *term.Store
	cs   *clause.Store
	ord  order.Ordering
	calc inter.Calculus
	sel  lit.Policy

	active  *Active
	passive *Passive

	emptyFound *clause.Clause
	stats      Stats
	hooks      []Hook
	bus        *event.Bus
}

// New creates an Engine over st/cs with the given ordering, calculus,
// and literal selection policy.
func New(st *term.Store, cs *clause.Store, ord order.Ordering, calc inter.Calculus, sel lit.Policy) *Engine {
	return &Engine{
		st:      st,
		cs:      cs,
		ord:     ord,
		calc:    calc,
		sel:     sel,
		active:  NewActive(),
		passive: NewPassive(),
	}
}

// RegisterHook adds h to the set of step-boundary hooks.
func (e *Engine) RegisterHook(h Hook) { e.hooks = append(e.hooks, h) }

// SetBus attaches an event.Bus the run publishes progress events to.
// A nil bus (the default) disables publishing entirely at no cost.
func (e *Engine) SetBus(b *event.Bus) { e.bus = b }

func (e *Engine) publish(k event.Kind, payload interface{}) {
	if e.bus != nil {
		e.bus.Publish(event.Event{Kind: k, Payload: payload})
	}
}

// Stats returns a snapshot of the run's counters so far.
func (e *Engine) Stats() Stats { return e.stats }

// Active exposes the current Active set, mainly for diagnostics and tests.
func (e *Engine) Active() []*clause.Clause { return e.active.All() }

// AddPassive admits clauses to Passive directly, the entry point
// spec.md §6 calls add_passive(clauses): a preprocessor feeds the
// initial (possibly negated-conjecture-augmented) clause set in this
// way before the loop starts.
func (e *Engine) AddPassive(clauses ...*clause.Clause) {
	for _, c := range clauses {
		e.enqueue(c)
	}
}

func (e *Engine) enqueue(c *clause.Clause) {
	e.applySelection(c)
	if c.IsEmpty() && e.emptyFound == nil {
		e.emptyFound = c
	}
	e.passive.Push(c)
}

func (e *Engine) applySelection(c *clause.Clause) {
	c.SetSelected(lit.Select(e.sel, c.Lits(), e.ord))
}

// Run drives the given-clause loop (spec.md §4.8) to completion,
// checking ctl at every step boundary.
func (e *Engine) Run(ctl *Ctl) Result {
	start := time.Now()
	for {
		e.stats.Elapsed = time.Since(start)
		if lim, stop := ctl.Check(); stop {
			res := Result{Outcome: OutcomeResourceOut, Limit: lim, Stats: e.stats}
			e.publish(event.KindDone, res)
			return res
		}
		// Step 1.
		if e.emptyFound != nil {
			res := Result{Outcome: OutcomeUnsatisfiable, Proof: e.emptyFound, Stats: e.stats}
			e.publish(event.KindDone, res)
			return res
		}
		// Step 2.
		if e.passive.Len() == 0 {
			res := Result{Outcome: OutcomeSaturated, Stats: e.stats}
			e.publish(event.KindDone, res)
			return res
		}
		e.step(ctl)
	}
}

func (e *Engine) step(ctl *Ctl) {
	// Step 3.
	given := e.passive.Pop()
	e.stats.Given++
	e.publish(event.KindGiven, given)

	// Step 4: forward simplification to fixpoint.
	given = e.calc.Simpl(e.st, e.cs, e.ord, e.active.SimplSet(), given)
	if given.IsEmpty() {
		e.emptyFound = given
		return
	}

	// Step 5: trivial/redundant check, pruned by the feature-vector index.
	vec := index.VectorOf(given)
	if e.calc.ActiveSimpl(e.st, e.ord, e.active.SubsumerCandidates(vec), given) {
		e.stats.Discarded++
		e.publish(event.KindDiscarded, given)
		return
	}

	// Step 6: backward simplification, subsumption pruned by the
	// feature-vector index.
	for _, r := range e.calc.BackwardSimpl(e.st, e.cs, e.ord, given, e.active.All(), e.active.SubsumedCandidates(vec)) {
		e.active.Remove(r.Old)
		e.stats.Simplified++
		e.publish(event.KindSimplified, r)
		if r.New != nil {
			e.enqueue(r.New)
		}
	}

	// Step 7: add to Active.
	e.applySelection(given)
	e.active.Add(given)

	// Step 8: generate.
	var generated []*clause.Clause
	generated = append(generated, e.calc.Binary(e.st, e.cs, e.ord, given, e.active.All())...)
	generated = append(generated, e.calc.Unary(e.st, e.cs, e.ord, given)...)
	for _, nc := range generated {
		nc = e.calc.Preprocess(e.st, e.cs, e.ord, nc)
		if e.calc.IsTrivial(nc) {
			continue
		}
		e.stats.Generated++
		e.publish(event.KindGenerated, nc)
		e.enqueue(nc)
	}

	// Step 9: step hooks.
	for _, h := range e.hooks {
		h(e, given)
	}

	// Step 10: loop (handled by Run's for-loop).
	ctl.Tick()
	e.stats.Steps++
}
