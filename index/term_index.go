// Package index implements the two clause indexes of spec.md §4.7: a
// term index for superposition/demodulation partner lookup, and a
// feature-vector index for subsumption candidate retrieval.
package index

import (
	"github.com/nnf/saturn/subst"
	"github.com/nnf/saturn/term"
	"github.com/nnf/saturn/unify"
)

// Entry is one indexed occurrence: a term (typically the maximal side
// of a unit equation, or a maximal literal's side) together with
// whatever payload the caller needs to recover the owning clause and
// position.
type Entry[T any] struct {
	Term    *term.Term
	Payload T
}

// TermIndex maps terms to payloads, supporting the retrieval contract
// of spec.md §4.7: add, remove, retrieve_unifiable, retrieve_generalizations,
// retrieve_specializations. It buckets entries by head symbol so a
// query only scans occurrences that could plausibly match, falling
// back to a full scan when either side has a variable head — the
// simplification a full discrimination tree would remove, traded here
// for a much smaller implementation (see DESIGN.md).
type TermIndex[T any] struct {
	st       *term.Store
	byHead   map[headKey][]*Entry[T]
	varBucket []*Entry[T]
}

type headKey struct {
	symID uint32
	arity int
}

// NewTermIndex creates an empty term index over terms from st.
func NewTermIndex[T any](st *term.Store) *TermIndex[T] {
	return &TermIndex[T]{st: st, byHead: make(map[headKey][]*Entry[T])}
}

func keyOf(t *term.Term) (headKey, bool) {
	switch t.Kind() {
	case term.KConst:
		return headKey{uint32(t.Sym().ID()), 0}, true
	case term.KApp:
		if t.Sym() == nil {
			return headKey{}, false
		}
		return headKey{uint32(t.Sym().ID()), len(t.Args())}, true
	default:
		return headKey{}, false
	}
}

// Add indexes t with payload p.
func (ix *TermIndex[T]) Add(t *term.Term, p T) {
	e := &Entry[T]{Term: t, Payload: p}
	if k, ok := keyOf(t); ok {
		ix.byHead[k] = append(ix.byHead[k], e)
		return
	}
	ix.varBucket = append(ix.varBucket, e)
}

// Remove removes every entry with the given term and a payload equal
// to p under eq.
func (ix *TermIndex[T]) Remove(t *term.Term, p T, eq func(a, b T) bool) {
	if k, ok := keyOf(t); ok {
		ix.byHead[k] = removeMatching(ix.byHead[k], t, p, eq)
		return
	}
	ix.varBucket = removeMatching(ix.varBucket, t, p, eq)
}

func removeMatching[T any](es []*Entry[T], t *term.Term, p T, eq func(a, b T) bool) []*Entry[T] {
	out := es[:0]
	for _, e := range es {
		if e.Term == t && eq(e.Payload, p) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// candidates returns every entry that could plausibly relate to
// query: same-head entries plus everything in the variable bucket,
// and — because a variable query can unify or match against any
// shape — every entry when query itself has no fixed head.
func (ix *TermIndex[T]) candidates(query *term.Term) []*Entry[T] {
	if k, ok := keyOf(query); ok {
		return append(append([]*Entry[T](nil), ix.byHead[k]...), ix.varBucket...)
	}
	var all []*Entry[T]
	for _, es := range ix.byHead {
		all = append(all, es...)
	}
	return append(all, ix.varBucket...)
}

// RetrieveUnifiable returns every indexed entry whose term unifies
// with query (query at scope 1, indexed terms at scope 0).
func (ix *TermIndex[T]) RetrieveUnifiable(query *term.Term) []*Entry[T] {
	var out []*Entry[T]
	for _, e := range ix.candidates(query) {
		if _, err := unify.Unify(ix.st, subst.New(),
			subst.Scoped{Term: e.Term, Scope: 0}, subst.Scoped{Term: query, Scope: 1}); err == nil {
			out = append(out, e)
		}
	}
	return out
}

// RetrieveGeneralizations returns every indexed entry whose term is a
// generalization of query: entries that Match query as the subject.
func (ix *TermIndex[T]) RetrieveGeneralizations(query *term.Term) []*Entry[T] {
	var out []*Entry[T]
	for _, e := range ix.candidates(query) {
		if _, err := unify.Match(ix.st, subst.New(),
			subst.Scoped{Term: e.Term, Scope: 0}, subst.Scoped{Term: query, Scope: 1}); err == nil {
			out = append(out, e)
		}
	}
	return out
}

// RetrieveSpecializations returns every indexed entry whose term is an
// instance of query: query Matches the entry as the subject.
func (ix *TermIndex[T]) RetrieveSpecializations(query *term.Term) []*Entry[T] {
	var out []*Entry[T]
	for _, e := range ix.candidates(query) {
		if _, err := unify.Match(ix.st, subst.New(),
			subst.Scoped{Term: query, Scope: 0}, subst.Scoped{Term: e.Term, Scope: 1}); err == nil {
			out = append(out, e)
		}
	}
	return out
}
