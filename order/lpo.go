package order

import (
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/term"
)

// LPO is a lexicographic path ordering over first-order-headed terms,
// parameterized by the same symbol precedence a KBO would use. Like
// KBO, it treats an application headed by a variable (a flex head) as
// outside its first-order fragment and reports Incomparable for it.
type LPO struct {
	sg *symb.Signature
}

// NewLPO creates an LPO ordering reading precedence from sg.
func NewLPO(sg *symb.Signature) *LPO { return &LPO{sg: sg} }

// Compare implements Ordering.
func (l *LPO) Compare(s, t *term.Term) Result {
	if s == t {
		return Eq
	}
	if l.ge(s, t) {
		return Gt
	}
	if l.ge(t, s) {
		return Lt
	}
	return Incomparable
}

// ge reports s ⪰ t under the standard LPO recursive definition: s ⪰ t
// iff s == t, or some subterm of s dominates t, or s's head dominates
// t's head by precedence (or equals it) with s's arguments dominating
// t's argument list appropriately.
func (l *LPO) ge(s, t *term.Term) bool {
	if s == t {
		return true
	}
	if t.Kind() == term.KVar {
		return occursIn(t, s) || s == t
	}
	if s.Kind() == term.KVar {
		return false
	}
	// ⊤ is the distinguished minimal constant the p(x) ≈ ⊤ atom
	// encoding relies on; see kbo.go's isTop.
	if isTop(t) {
		return true
	}
	if isTop(s) {
		return false
	}
	hs, argsS, okS := headArgs(s)
	ht, argsT, okT := headArgs(t)
	if !okS || !okT {
		return false
	}

	// LPO1: some argument of s already dominates t.
	for _, a := range argsS {
		if l.ge(a, t) {
			return true
		}
	}

	if hs == ht {
		// LPO2: same head, s dominates t if s dominates every arg of t
		// and the argument tuples are lexicographically s > t at the
		// first differing position.
		for _, b := range argsT {
			if !l.gt(s, b) {
				return false
			}
		}
		return l.lexGt(argsS, argsT)
	}

	pc := l.sg.Compare(hs.ID(), ht.ID())
	if pc > 0 {
		// LPO3: s's head strictly precedes t's in precedence order
		// (higher rank), s dominates if it dominates every argument of t.
		for _, b := range argsT {
			if !l.gt(s, b) {
				return false
			}
		}
		return true
	}
	return false
}

func (l *LPO) gt(s, t *term.Term) bool {
	return s != t && l.ge(s, t)
}

// lexGt compares two same-length argument tuples lexicographically
// left to right under gt/eq(==); it requires equal length since hs ==
// ht here implies s and t share a symbol and hence an arity.
func (l *LPO) lexGt(as, bs []*term.Term) bool {
	for i := range as {
		if as[i] == bs[i] {
			continue
		}
		return l.gt(as[i], bs[i])
	}
	return false
}
