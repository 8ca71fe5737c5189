package clause

import (
	"strconv"
	"strings"

	"github.com/nnf/saturn/term"
)

// shapeKey builds a variable-blind structural fingerprint of t: every
// free variable maps to the same placeholder regardless of its id, so
// two literals that differ only in which variable numbers they use
// sort identically. This is what lets canonical variable renaming
// (below) assign canonical ids by first occurrence in a fixed,
// renaming-independent literal order, the "canonical variable
// renaming... applied on construction" of spec.md §3.
func shapeKey(t *term.Term) string {
	var b strings.Builder
	writeShapeKey(&b, t)
	return b.String()
}

func writeShapeKey(b *strings.Builder, t *term.Term) {
	switch t.Kind() {
	case term.KVar:
		b.WriteByte('v')
	case term.KBVar:
		b.WriteByte('b')
		b.WriteString(strconv.Itoa(t.BIndex()))
	case term.KConst:
		b.WriteByte('c')
		b.WriteString(t.Sym().Name())
	case term.KApp:
		b.WriteByte('(')
		writeShapeKey(b, t.Head())
		for _, a := range t.Args() {
			b.WriteByte(' ')
			writeShapeKey(b, a)
		}
		b.WriteByte(')')
	case term.KFun:
		b.WriteString("L.")
		writeShapeKey(b, t.Body())
	case term.KBuiltin:
		b.WriteByte('u')
		b.WriteString(strconv.Itoa(int(t.Tag())))
		for _, a := range t.Args() {
			b.WriteByte(' ')
			writeShapeKey(b, a)
		}
	}
}

// renameVars rewrites t, replacing every free variable id via mapping,
// allocating a fresh canonical id (starting at *next) the first time a
// variable is seen. Structural sharing is preserved: rebuilding a term
// through st re-interns it, so isomorphic subtrees still collapse to
// the same *Term.
func renameVars(st *term.Store, t *term.Term, mapping map[int]int, next *int) *term.Term {
	switch t.Kind() {
	case term.KVar:
		nv, ok := mapping[t.VarID()]
		if !ok {
			nv = *next
			*next++
			mapping[t.VarID()] = nv
		}
		return st.Var(nv, t.Type())
	case term.KBVar, term.KConst:
		return t
	case term.KApp:
		h := renameVars(st, t.Head(), mapping, next)
		args := make([]*term.Term, len(t.Args()))
		for i, a := range t.Args() {
			args[i] = renameVars(st, a, mapping, next)
		}
		return st.App(h, t.Type(), args...)
	case term.KFun:
		b := renameVars(st, t.Body(), mapping, next)
		return st.Fun(t.Type().Args()[0], t.Type().Ret(), b)
	case term.KBuiltin:
		args := make([]*term.Term, len(t.Args()))
		for i, a := range t.Args() {
			args[i] = renameVars(st, a, mapping, next)
		}
		return st.Builtin(t.Tag(), args...)
	default:
		return t
	}
}
