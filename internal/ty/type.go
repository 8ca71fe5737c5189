// Package ty implements hash-consed types for the term language:
// Var(int) | App(Symbol, Type*) | Arrow(Type*, Type) | TType.
package ty

import (
	"strings"

	"github.com/nnf/saturn/internal/symb"
)

// Kind discriminates the four type formers.
type Kind uint8

const (
	KVar Kind = iota
	KApp
	KArrow
	KType
)

// Type is a hash-consed inductive type. Two structurally equal types
// are the same *Type, so equality is pointer identity.
type Type struct {
	kind  Kind
	vr    int
	sym   *symb.Symbol // KApp head
	args  []*Type      // KApp args, or KArrow's argument types
	ret   *Type        // KArrow's return type
	ident uint64        // stable id assigned at interning, for hashing/printing
}

// Kind returns the type former.
func (t *Type) Kind() Kind { return t.kind }

// Var returns the de Bruijn-free type variable index; only meaningful
// for KVar.
func (t *Type) Var() int { return t.vr }

// Head returns the applied symbol; only meaningful for KApp.
func (t *Type) Head() *symb.Symbol { return t.sym }

// Args returns the applied type's arguments (KApp) or an arrow's
// argument types (KArrow).
func (t *Type) Args() []*Type { return t.args }

// Ret returns an arrow type's return type; only meaningful for KArrow.
func (t *Type) Ret() *Type { return t.ret }

func (t *Type) String() string {
	switch t.kind {
	case KVar:
		return "'a" + itoa(t.vr)
	case KType:
		return "TType"
	case KApp:
		if len(t.args) == 0 {
			return t.sym.Name()
		}
		parts := make([]string, len(t.args))
		for i, a := range t.args {
			parts[i] = a.String()
		}
		return t.sym.Name() + "(" + strings.Join(parts, ", ") + ")"
	case KArrow:
		parts := make([]string, len(t.args))
		for i, a := range t.args {
			parts[i] = a.String()
		}
		return "(" + strings.Join(parts, ", ") + ") -> " + t.ret.String()
	}
	return "?ty"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
