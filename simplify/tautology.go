// Package simplify implements the simplification (non-generating)
// rules of spec.md §4.6: demodulation, simplify-reflect, subsumption,
// contextual literal cutting, condensation, tautology deletion.
package simplify

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/lit"
)

// IsTautology reports whether c is trivially true: it contains a
// reflexive positive equation, the builtin ⊤ literal, or two
// complementary equational literals (spec.md §4.6).
func IsTautology(c *clause.Clause) bool {
	lits := c.Lits()
	for _, l := range lits {
		if l.IsTautologous() {
			return true
		}
	}
	for i := range lits {
		for j := i + 1; j < len(lits); j++ {
			if complementary(lits[i], lits[j]) {
				return true
			}
		}
	}
	return false
}

func complementary(a, b *lit.Literal) bool {
	if a.Kind() != lit.KEquation || b.Kind() != lit.KEquation {
		return false
	}
	if a.Sign() == b.Sign() {
		return false
	}
	return sameEquation(a, b)
}

// sameEquation reports whether a and b denote the same equation up to
// the symmetry of ≈ (l ≈ r is the same equation as r ≈ l).
func sameEquation(a, b *lit.Literal) bool {
	return (a.L() == b.L() && a.R() == b.R()) || (a.L() == b.R() && a.R() == b.L())
}
