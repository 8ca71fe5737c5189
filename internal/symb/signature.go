package symb

import "sort"

// key interns by (name, arity): the same name at two arities is two
// distinct symbols, matching most first-order presentations.
type key struct {
	name  string
	arity int
}

// Signature is a process-wide (or per-problem) table of interned
// symbols plus the precedence order the term ordering reads.
//
// A Signature grows monotonically: symbols are never removed, matching
// the append-only hash-cons tables of term.Store. Callers that want
// isolation between problems create a fresh Signature per problem,
// mirroring the "fresh context per problem" guidance of the design
// notes on global mutable state.
type Signature struct {
	byKey  map[key]ID
	syms   []*Symbol
	prec   []ID // precedence[i] < precedence[j] in array order means lower rank
	rank   []int
	freshN int
}

// New creates an empty Signature.
func New() *Signature {
	return &Signature{
		byKey: make(map[key]ID, 64),
		syms:  make([]*Symbol, 0, 64),
	}
}

// Intern returns the Symbol for name/arity, creating it if this is the
// first time this pair has been seen. Interning is idempotent: calling
// Intern twice with the same name/arity returns the identical *Symbol.
func (sg *Signature) Intern(name string, arity int) *Symbol {
	k := key{name, arity}
	if id, ok := sg.byKey[k]; ok {
		return sg.syms[id]
	}
	id := ID(len(sg.syms))
	s := &Symbol{id: id, name: name, arity: arity, weight: 1}
	sg.syms = append(sg.syms, s)
	sg.byKey[k] = id
	sg.prec = append(sg.prec, id)
	sg.rank = append(sg.rank, 0)
	sg.invalidatePrecedence()
	return s
}

// Fresh creates a brand new symbol guaranteed distinct from every
// symbol interned so far, used by Skolemization and internal rewrites.
// Fresh symbols carry AttrSkolem when isSkolem is true.
func (sg *Signature) Fresh(baseName string, arity int, isSkolem bool) *Symbol {
	sg.freshN++
	id := ID(len(sg.syms))
	s := &Symbol{id: id, name: baseName, arity: arity, weight: 1, fresh: sg.freshN}
	if isSkolem {
		s.attr |= AttrSkolem
	}
	sg.syms = append(sg.syms, s)
	sg.prec = append(sg.prec, id)
	sg.rank = append(sg.rank, 0)
	sg.invalidatePrecedence()
	return s
}

// Lookup returns the interned symbol for name/arity and whether it exists.
func (sg *Signature) Lookup(name string, arity int) (*Symbol, bool) {
	id, ok := sg.byKey[key{name, arity}]
	if !ok {
		return nil, false
	}
	return sg.syms[id], true
}

// Get returns the symbol for id. It panics on an id from a different
// Signature, since ids are not portable across signatures.
func (sg *Signature) Get(id ID) *Symbol { return sg.syms[id] }

// Len returns the number of interned symbols, including fresh ones.
func (sg *Signature) Len() int { return len(sg.syms) }

// All returns every interned symbol, in interning order.
func (sg *Signature) All() []*Symbol { return sg.syms }

// PrecedencePolicy orders symbols for the precedence-based term orderings.
type PrecedencePolicy int

const (
	// PrecArity orders by arity then declaration order, low to high.
	PrecArity PrecedencePolicy = iota
	// PrecInvArity orders by arity then declaration order, high to low.
	PrecInvArity
	// PrecFreq orders by occurrence frequency, low to high (rare symbols
	// precede common ones); frequency must be supplied via SetFrequency.
	PrecFreq
	// PrecInvFreq is the reverse of PrecFreq.
	PrecInvFreq
	// PrecArrival orders symbols by interning order (declaration order).
	PrecArrival
)

// freq holds occurrence counts used by PrecFreq/PrecInvFreq, keyed by
// symbol ID. It is supplied by whatever pass counted symbol occurrences
// in the input problem (typically the CNF front end).
type freqTable map[ID]int

// SetPrecedence recomputes the total precedence order using policy. It
// must be called at least once before Compare is used, and again
// whenever new symbols are interned if determinism across runs matters.
func (sg *Signature) SetPrecedence(policy PrecedencePolicy, freq map[ID]int) {
	ids := make([]ID, len(sg.syms))
	for i := range ids {
		ids[i] = ID(i)
	}
	less := func(i, j int) bool {
		a, b := sg.syms[ids[i]], sg.syms[ids[j]]
		switch policy {
		case PrecArity:
			if a.arity != b.arity {
				return a.arity < b.arity
			}
		case PrecInvArity:
			if a.arity != b.arity {
				return a.arity > b.arity
			}
		case PrecFreq:
			fa, fb := freqTable(freq)[a.id], freqTable(freq)[b.id]
			if fa != fb {
				return fa < fb
			}
		case PrecInvFreq:
			fa, fb := freqTable(freq)[a.id], freqTable(freq)[b.id]
			if fa != fb {
				return fa > fb
			}
		case PrecArrival:
			return a.id < b.id
		}
		return a.id < b.id
	}
	sort.SliceStable(ids, less)
	sg.prec = ids
	for rank, id := range ids {
		sg.rank[id] = rank
	}
}

func (sg *Signature) invalidatePrecedence() {
	// grow rank/prec lazily; a new symbol gets rank len-1, above every
	// earlier symbol, until SetPrecedence is called again. This keeps Intern O(1) amortized.
	if len(sg.rank) > 0 {
		sg.rank[len(sg.rank)-1] = len(sg.rank) - 1
	}
}

// Rank returns id's position in the current precedence order: a smaller
// rank means the symbol is smaller in the term ordering's precedence.
func (sg *Signature) Rank(id ID) int { return sg.rank[id] }

// Compare compares two symbols by the current precedence order.
func (sg *Signature) Compare(a, b ID) int {
	ra, rb := sg.rank[a], sg.rank[b]
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}
