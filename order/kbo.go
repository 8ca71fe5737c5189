package order

import (
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/term"
)

// varWeight is the fixed KBO weight assigned to every variable
// occurrence, the conventional w0 > 0.
const varWeight = 1

// KBO is a Knuth-Bendix ordering parameterized by a symbol precedence
// (from sg) and per-symbol weights (also carried on the symbols in
// sg). It satisfies the subterm property, stability under
// substitution, and monotonicity required by spec.md §4.3, modulo the
// higher-order extension: comparisons touching a non-first-order head
// (an application whose head is itself a variable or a lambda) are
// reported Incomparable rather than given a possibly-unsound answer.
type KBO struct {
	sg *symb.Signature
}

// NewKBO creates a KBO ordering reading precedence and weights from sg.
func NewKBO(sg *symb.Signature) *KBO { return &KBO{sg: sg} }

// Compare implements Ordering.
func (k *KBO) Compare(s, t *term.Term) Result {
	if s == t {
		return Eq
	}
	if s.Kind() == term.KVar {
		if occursIn(s, t) {
			return Lt
		}
		return Incomparable
	}
	if t.Kind() == term.KVar {
		if occursIn(t, s) {
			return Gt
		}
		return Incomparable
	}
	// ⊤ is the distinguished minimal constant the p(x) ≈ ⊤ atom
	// encoding relies on (spec.md §9's predicate-vs-equation open
	// question): every other ground-headed term dominates it, so a
	// positive atom's equation is always orientable left-to-right.
	if isTop(s) {
		if isTop(t) {
			return Eq
		}
		return Lt
	}
	if isTop(t) {
		return Gt
	}
	hs, argsS, okS := headArgs(s)
	ht, argsT, okT := headArgs(t)
	if !okS || !okT {
		return Incomparable
	}

	sw := kboWeight(s)
	tw := kboWeight(t)
	svc := varCounts(s)
	tvc := varCounts(t)
	ge := dominatesCounts(svc, tvc) // s could be >= t: t's vars all present, no fewer, in s
	le := dominatesCounts(tvc, svc)

	switch {
	case sw > tw && ge:
		return Gt
	case tw > sw && le:
		return Lt
	case sw == tw:
		if hs == ht && len(argsS) == len(argsT) {
			return k.compareArgsLex(argsS, argsT, ge, le)
		}
		pc := k.sg.Compare(hs.ID(), ht.ID())
		switch {
		case pc > 0 && ge:
			return Gt
		case pc < 0 && le:
			return Lt
		default:
			return Incomparable
		}
	default:
		return Incomparable
	}
}

// compareArgsLex compares same-headed, same-arity argument lists left
// to right: the first position that differs decides the result,
// provided the overall variable-count condition for that direction
// still holds; ties on every position give Eq.
func (k *KBO) compareArgsLex(as, bs []*term.Term, ge, le bool) Result {
	for i := range as {
		r := k.Compare(as[i], bs[i])
		switch r {
		case Eq:
			continue
		case Gt:
			if ge {
				return Gt
			}
			return Incomparable
		case Lt:
			if le {
				return Lt
			}
			return Incomparable
		default:
			return Incomparable
		}
	}
	return Eq
}

// isTop reports whether t is the builtin ⊤.
func isTop(t *term.Term) bool {
	return t.Kind() == term.KBuiltin && t.Tag() == term.TagTrue
}

func headArgs(t *term.Term) (*symb.Symbol, []*term.Term, bool) {
	switch t.Kind() {
	case term.KConst:
		return t.Sym(), nil, true
	case term.KApp:
		if t.Sym() == nil {
			return nil, nil, false
		}
		return t.Sym(), t.Args(), true
	default:
		return nil, nil, false
	}
}

func kboWeight(t *term.Term) uint64 {
	switch t.Kind() {
	case term.KVar, term.KBVar:
		return varWeight
	case term.KConst:
		return uint64(t.Sym().Weight())
	case term.KApp:
		w := uint64(0)
		if t.Sym() != nil {
			w = uint64(t.Sym().Weight())
		}
		for _, a := range t.Args() {
			w += kboWeight(a)
		}
		return w
	case term.KBuiltin:
		w := uint64(1)
		for _, a := range t.Args() {
			w += kboWeight(a)
		}
		return w
	default:
		return 1
	}
}

func varCounts(t *term.Term) map[int]int {
	m := map[int]int{}
	var walk func(*term.Term)
	walk = func(t *term.Term) {
		switch t.Kind() {
		case term.KVar:
			m[t.VarID()]++
		case term.KApp:
			walk(t.Head())
			for _, a := range t.Args() {
				walk(a)
			}
		case term.KFun:
			walk(t.Body())
		case term.KBuiltin:
			for _, a := range t.Args() {
				walk(a)
			}
		}
	}
	walk(t)
	return m
}

// dominatesCounts reports whether a has at least as many occurrences
// of every variable that appears in b (a superset-with-multiplicity
// condition), the KBO variable-count side condition.
func dominatesCounts(a, b map[int]int) bool {
	for v, n := range b {
		if a[v] < n {
			return false
		}
	}
	return true
}

func occursIn(v, t *term.Term) bool {
	switch t.Kind() {
	case term.KVar:
		return t == v
	case term.KApp:
		if occursIn(v, t.Head()) {
			return true
		}
		for _, a := range t.Args() {
			if occursIn(v, a) {
				return true
			}
		}
		return false
	case term.KFun:
		return occursIn(v, t.Body())
	case term.KBuiltin:
		for _, a := range t.Args() {
			if occursIn(v, a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
