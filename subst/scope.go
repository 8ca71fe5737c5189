// Package subst implements scoped substitutions over term.Term, per
// spec.md §3 ("Scoped object", "Substitution") and §4.2.
package subst

import "github.com/nnf/saturn/term"

// Scope is a renaming namespace tag: two terms with identical free
// variable numbers but different scopes are disjoint, so clauses can
// be manipulated without eagerly renaming apart.
type Scope int

// Scoped pairs a term with the scope its free variables live in.
type Scoped struct {
	Term  *term.Term
	Scope Scope
}

// SVar pairs a bare variable id with a scope, the key type Subst maps from.
type SVar struct {
	ID    int
	Scope Scope
}

// Renamer maps (VarId, Scope) to a fresh variable id in a single
// output scope, memoizing so that repeated lookups of the same
// (VarId, Scope) pair return the same fresh variable, preserving
// α-equivalence across an entire Apply call.
type Renamer struct {
	out   Scope
	next  int
	table map[SVar]int
}

// NewRenamer creates a Renamer that allocates fresh variable ids
// starting at startID, all tagged with output scope out.
func NewRenamer(out Scope, startID int) *Renamer {
	return &Renamer{out: out, next: startID, table: make(map[SVar]int, 16)}
}

// Rename returns the fresh output-scope variable id standing for
// (vid, sc), allocating one on first use.
func (r *Renamer) Rename(vid int, sc Scope) int {
	k := SVar{vid, sc}
	if id, ok := r.table[k]; ok {
		return id
	}
	id := r.next
	r.next++
	r.table[k] = id
	return id
}

// OutScope returns the single scope every renamed variable belongs to.
func (r *Renamer) OutScope() Scope { return r.out }
