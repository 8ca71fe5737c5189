// Package infer implements the generating inference rules of spec.md
// §4.5: superposition, equality resolution, equality factoring.
package infer

import "github.com/nnf/saturn/term"

// Positions enumerates every non-variable position in t reachable by
// descending through application arguments only: the root position
// (nil) when t itself is not a variable, then recursively through
// each argument. Positions inside a Fun body or a Builtin's operands
// are not enumerated — rewriting into a binder position would need
// capture-avoiding substitution the rest of this fragment does not
// exercise, so it is left out rather than risking an unsound rewrite.
// Simplification rules (package simplify) reuse this traversal.
func Positions(t *term.Term) [][]int {
	var out [][]int
	if t.Kind() != term.KVar {
		out = append(out, nil)
	}
	if t.Kind() == term.KApp {
		for i, a := range t.Args() {
			for _, p := range Positions(a) {
				out = append(out, append([]int{i}, p...))
			}
		}
	}
	return out
}

// GetAt returns the subterm of t at position pos.
func GetAt(t *term.Term, pos []int) *term.Term {
	if len(pos) == 0 {
		return t
	}
	return GetAt(t.Args()[pos[0]], pos[1:])
}

// ReplaceAt rebuilds t with the subterm at pos replaced by sub.
func ReplaceAt(st *term.Store, t *term.Term, pos []int, sub *term.Term) *term.Term {
	if len(pos) == 0 {
		return sub
	}
	args := append([]*term.Term(nil), t.Args()...)
	args[pos[0]] = ReplaceAt(st, args[pos[0]], pos[1:], sub)
	return st.App(t.Head(), t.Type(), args...)
}
