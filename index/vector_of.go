package index

import (
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/term"
)

// VectorOf computes c's feature vector.
func VectorOf(c *clause.Clause) Vector {
	v := Vector{NumLits: len(c.Lits())}
	for _, l := range c.Lits() {
		if l.Kind() != lit.KEquation {
			continue
		}
		if l.Sign() {
			v.NumPosLits++
		} else {
			v.NumNegLits++
		}
		if d := l.L().Depth(); d > v.MaxDepth {
			v.MaxDepth = d
		}
		if d := l.R().Depth(); d > v.MaxDepth {
			v.MaxDepth = d
		}
		v.SymbolMass += symbolMass(l.L()) + symbolMass(l.R())
	}
	return v
}

func symbolMass(t *term.Term) int {
	switch t.Kind() {
	case term.KVar, term.KBVar:
		return 1
	case term.KConst:
		return 1
	case term.KApp:
		n := symbolMass(t.Head())
		for _, a := range t.Args() {
			n += symbolMass(a)
		}
		return n
	case term.KFun:
		return 1 + symbolMass(t.Body())
	case term.KBuiltin:
		n := 1
		for _, a := range t.Args() {
			n += symbolMass(a)
		}
		return n
	default:
		return 1
	}
}
