package engine

import (
	"container/heap"

	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/index"
)

// passiveItem is one clause waiting in Passive, indexed into both the
// age heap and the weight heap simultaneously so either pop path can
// remove it from the other in O(log n).
type passiveItem struct {
	c           *clause.Clause
	age         int64
	weight      int
	ageIndex    int
	weightIndex int
}

func weightOf(c *clause.Clause) int {
	v := index.VectorOf(c)
	return v.SymbolMass
}

type ageHeap []*passiveItem

func (h ageHeap) Len() int            { return len(h) }
func (h ageHeap) Less(i, j int) bool  { return h[i].age < h[j].age }
func (h ageHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].ageIndex, h[j].ageIndex = i, j
}
func (h *ageHeap) Push(x any) {
	it := x.(*passiveItem)
	it.ageIndex = len(*h)
	*h = append(*h, it)
}
func (h *ageHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

type weightHeap []*passiveItem

func (h weightHeap) Len() int           { return len(h) }
func (h weightHeap) Less(i, j int) bool { return h[i].weight < h[j].weight }
func (h weightHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].weightIndex, h[j].weightIndex = i, j
}
func (h *weightHeap) Push(x any) {
	it := x.(*passiveItem)
	it.weightIndex = len(*h)
	*h = append(*h, it)
}
func (h *weightHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// Passive is the priority queue of spec.md §4.8: clauses waiting to
// be given, ordered by a Luby-paced interleave of age and weight so
// neither a purely-oldest nor a purely-lightest policy can starve the
// other (the fairness invariant needs every enqueued clause to
// eventually surface).
type Passive struct {
	byAge    ageHeap
	byWeight weightHeap
	nextAge  int64
	luby     *Luby
	budget   int
}

// NewPassive creates an empty Passive queue.
func NewPassive() *Passive {
	return &Passive{luby: NewLuby()}
}

// Len reports how many clauses are currently queued.
func (p *Passive) Len() int { return len(p.byAge) }

// Push enqueues c, timestamping it with the next age counter.
func (p *Passive) Push(c *clause.Clause) {
	it := &passiveItem{c: c, age: p.nextAge, weight: weightOf(c)}
	p.nextAge++
	heap.Push(&p.byAge, it)
	heap.Push(&p.byWeight, it)
}

// Pop removes and returns the next given clause according to the
// interleave: Luby.Next() weight-ordered pops for every one
// age-ordered pop, refilling the budget once it is exhausted.
func (p *Passive) Pop() *clause.Clause {
	if p.Len() == 0 {
		return nil
	}
	if p.budget <= 0 {
		p.budget = p.luby.Next()
		return p.popAge()
	}
	p.budget--
	return p.popWeight()
}

func (p *Passive) popAge() *clause.Clause {
	it := heap.Pop(&p.byAge).(*passiveItem)
	heap.Remove(&p.byWeight, it.weightIndex)
	return it.c
}

func (p *Passive) popWeight() *clause.Clause {
	it := heap.Pop(&p.byWeight).(*passiveItem)
	heap.Remove(&p.byAge, it.ageIndex)
	return it.c
}
