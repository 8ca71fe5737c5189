// Package order implements the simplification ordering on terms
// (spec.md §4.3) and the generic multiset-extension machinery used to
// derive literal and clause orderings from it.
package order

import "github.com/nnf/saturn/term"

// Result is the outcome of comparing two terms (or, via the derived
// orderings, two literals or clauses): a partial order on open terms
// that is total on ground terms.
type Result int

const (
	Lt Result = iota - 2
	Incomparable
	Eq
	Gt
)

func (r Result) String() string {
	switch r {
	case Lt:
		return "<"
	case Eq:
		return "="
	case Gt:
		return ">"
	default:
		return "?"
	}
}

// Flip returns the ordering result for the arguments swapped.
func (r Result) Flip() Result {
	switch r {
	case Lt:
		return Gt
	case Gt:
		return Lt
	default:
		return r
	}
}

// Ordering is a reduction ordering on terms: subterm property, stable
// under substitution, monotone (spec.md §4.3).
type Ordering interface {
	Compare(a, b *term.Term) Result
}

// CompareMultiset extends a comparator over elements of type T to a
// comparator over multisets (represented as slices), by the standard
// Dershowitz-Manna construction: repeatedly remove a maximal element
// of one side matched against a strictly smaller element it dominates
// on the other. It is the mechanism spec.md §4.3 uses to derive the
// literal ordering (multiset of a literal's term "ends") and clause
// ordering (multiset of literal orderings) from a single term-level
// comparator.
func CompareMultiset[T any](cmp func(a, b T) Result, xs, ys []T) Result {
	xs = append([]T(nil), xs...)
	ys = append([]T(nil), ys...)

	// cancel exact matches (Eq) pairwise; anything left decides the result.
	for i := 0; i < len(xs); i++ {
		matched := -1
		for j := 0; j < len(ys); j++ {
			if cmp(xs[i], ys[j]) == Eq {
				matched = j
				break
			}
		}
		if matched >= 0 {
			xs = append(xs[:i], xs[i+1:]...)
			ys = append(ys[:matched], ys[matched+1:]...)
			i--
		}
	}
	if len(xs) == 0 && len(ys) == 0 {
		return Eq
	}
	if len(xs) == 0 {
		return Lt
	}
	if len(ys) == 0 {
		return Gt
	}

	xDominates := multisetDominates(cmp, xs, ys)
	yDominates := multisetDominates(cmp, ys, xs)
	switch {
	case xDominates && !yDominates:
		return Gt
	case yDominates && !xDominates:
		return Lt
	default:
		return Incomparable
	}
}

// multisetDominates reports whether every element of ys is strictly
// dominated (Lt) by some element of xs, the condition for xs > ys in
// the multiset extension once exact matches are cancelled.
func multisetDominates[T any](cmp func(a, b T) Result, xs, ys []T) bool {
	for _, y := range ys {
		dominated := false
		for _, x := range xs {
			if cmp(x, y) == Gt {
				dominated = true
				break
			}
		}
		if !dominated {
			return false
		}
	}
	return true
}
