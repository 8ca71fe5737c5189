// Package lit implements literals: signed equations between terms,
// their derived ordering, and the literal selection functions of
// spec.md §3 and §4.4.
package lit

import (
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/term"
)

// Kind discriminates the literal formers: a genuine equation, or one
// of the two degenerate constants a clause can carry mid-simplification.
type Kind uint8

const (
	KEquation Kind = iota
	KTrue
	KFalse
)

// Literal is `Equation(l, r, sign, cached_orientation) | True | False`
// per spec.md §3. A propositional atom p is represented as the
// positive or negative equation p ≈ ⊤ (see NewAtom).
type Literal struct {
	kind        Kind
	l, r        *term.Term
	sign        bool // true: l ≈ r ; false: l ≉ r
	orientation order.Result
}

// NewEquation builds an equational literal l ≈ r (sign true) or l ≉ r
// (sign false), computing its cached orientation under ord. l and r
// must carry identical types (spec.md §3's Literal invariant); callers
// are expected to have type-checked before reaching this constructor.
func NewEquation(ord order.Ordering, l, r *term.Term, sign bool) *Literal {
	return &Literal{kind: KEquation, l: l, r: r, sign: sign, orientation: ord.Compare(l, r)}
}

// NewAtom builds a propositional-atom literal p (sign true) or ¬p
// (sign false), encoded as p ≈ ⊤ per spec.md §3, whose orientation is
// always Gt since ⊤ is a fixed minimal builtin.
func NewAtom(top *term.Term, p *term.Term, sign bool) *Literal {
	return &Literal{kind: KEquation, l: p, r: top, sign: sign, orientation: order.Gt}
}

// True returns the trivially satisfied literal ⊤ that tautology
// deletion and simplification collapse a clause's disjuncts to.
func True() *Literal { return &Literal{kind: KTrue} }

// False returns the trivially unsatisfiable literal ⊥, the empty
// clause's sole possible disjunct once represented as a Literal.
func False() *Literal { return &Literal{kind: KFalse} }

func (l *Literal) Kind() Kind { return l.kind }

// L and R return the literal's two sides; only meaningful for KEquation.
func (l *Literal) L() *term.Term { return l.l }
func (l *Literal) R() *term.Term { return l.r }

// Sign reports whether the literal is positive (l ≈ r) or negative (l ≉ r).
func (l *Literal) Sign() bool { return l.sign }

// IsPositive and IsNegative are convenience predicates over Sign,
// meaningful only for KEquation; the constants are neither.
func (l *Literal) IsPositive() bool { return l.kind == KEquation && l.sign }
func (l *Literal) IsNegative() bool { return l.kind == KEquation && !l.sign }

// Orientation returns the cached comparison of L against R.
func (l *Literal) Orientation() order.Result { return l.orientation }

// RefreshOrientation recomputes the cached orientation, needed
// whenever the term ordering's precedence changes (spec.md §3).
func (l *Literal) RefreshOrientation(ord order.Ordering) {
	if l.kind == KEquation {
		l.orientation = ord.Compare(l.l, l.r)
	}
}

// IsOriented reports whether the literal's positive equation is
// oriented l ≥ r under its cached orientation, the side condition
// superposition's active-literal rule requires (spec.md §4.5).
func (l *Literal) IsOriented() bool {
	return l.kind == KEquation && (l.orientation == order.Gt || l.orientation == order.Eq)
}

// IsTautologous reports whether the literal is trivially true: the
// builtin ⊤ constant, or a reflexive positive equation s ≈ s.
func (l *Literal) IsTautologous() bool {
	if l.kind == KTrue {
		return true
	}
	return l.kind == KEquation && l.sign && l.l == l.r
}

// Negate returns the literal's logical negation. Negating an equation
// flips its sign; True and False swap.
func (l *Literal) Negate() *Literal {
	switch l.kind {
	case KEquation:
		return &Literal{kind: KEquation, l: l.l, r: l.r, sign: !l.sign, orientation: l.orientation}
	case KTrue:
		return False()
	default:
		return True()
	}
}

// Sides returns the Bachmair-Ganzinger multiset encoding of the
// literal used to derive the literal ordering from the term ordering
// via CompareMultiset: {l, r} for a positive equation, {l, l, r, r}
// for a negative one, doubling the negative literal's weight so that
// s ≉ t always outranks the equally-sided s ≈ t (spec.md §4.3's
// "derived literal ordering").
func (l *Literal) Sides() []*term.Term {
	switch l.kind {
	case KEquation:
		if l.sign {
			return []*term.Term{l.l, l.r}
		}
		return []*term.Term{l.l, l.l, l.r, l.r}
	default:
		return nil
	}
}

// Compare derives the literal ordering from a term ordering ord via
// the multiset extension over Sides (spec.md §4.3).
func Compare(ord order.Ordering, a, b *Literal) order.Result {
	if a.kind == KTrue && b.kind == KTrue {
		return order.Eq
	}
	if a.kind == KFalse && b.kind == KFalse {
		return order.Eq
	}
	if a.kind != KEquation && b.kind != KEquation {
		// True vs False: True is always strictly greater (it survives,
		// False is the immediate contradiction).
		if a.kind == KTrue {
			return order.Gt
		}
		return order.Lt
	}
	if a.kind != KEquation || b.kind != KEquation {
		// A constant literal against a genuine equation is not part of
		// any standard reduction ordering; treat as incomparable.
		return order.Incomparable
	}
	return order.CompareMultiset(ord.Compare, a.Sides(), b.Sides())
}
