// Package term implements hash-consed first-order terms with an
// optional higher-order (de Bruijn) extension, as specified by
// spec.md §4.1 and the Term data model of §3.
package term

import (
	"fmt"
	"strings"

	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
)

// Kind discriminates the term formers:
// Var | BVar | Const | App | Fun | Builtin.
type Kind uint8

const (
	KVar Kind = iota
	KBVar
	KConst
	KApp
	KFun
	KBuiltin
)

// BuiltinTag names a built-in operator carried by a Builtin node
// (e.g. the propositional top used to encode p ≈ ⊤).
type BuiltinTag uint8

const (
	// TagTrue is the nullary propositional truth constant ⊤.
	TagTrue BuiltinTag = iota
	// TagEq is a reified equality builtin, used only by extensions that
	// need equality as first-class data rather than as a Literal.
	TagEq
)

// Term is a hash-consed, typed term node. Structurally equal terms are
// the same *Term (see Store), so equality of two terms is a pointer
// comparison; nothing in this package or its callers should compare
// Terms field-by-field.
//
// Size, depth and free variables are computed on first access and
// cached on the node; the cache is a plain field, never a pointer back
// into anything that could form a cycle, since terms form a DAG only
// through Store's hash-consing, never a self-reference.
type Term struct {
	kind Kind
	typ  *ty.Type

	vid  int // KVar: variable identifier (unscoped; see subst.Scoped)
	bidx int // KBVar: de Bruijn index

	sym *symb.Symbol // KConst / KApp head symbol shortcut when App is symbol-headed

	head *Term   // KApp: the applied term (a Const or a bound/free variable for HO heads)
	args []*Term // KApp: the arguments; KBuiltin: the builtin's operands

	body *Term // KFun: the lambda body, under one more bound variable

	tag BuiltinTag // KBuiltin

	id uint64 // stable hash-cons id in its Store, used for fast ordering ties and printing

	sizeCache  int
	depthCache int
	sizeOk     bool
	depthOk    bool
	freeCache  []int
	freeOk     bool
	closed     bool
}

// Kind returns the term former.
func (t *Term) Kind() Kind { return t.kind }

// Type returns the term's type. Every term carries its type once type
// inference has run, per the Term invariants of spec.md §3.
func (t *Term) Type() *ty.Type { return t.typ }

// ID returns the term's stable identity within its Store. Two terms
// with the same ID are, by the hash-consing invariant, identical.
func (t *Term) ID() uint64 { return t.id }

// VarID returns the free variable identifier; only meaningful for KVar.
func (t *Term) VarID() int { return t.vid }

// BIndex returns the de Bruijn index; only meaningful for KBVar.
func (t *Term) BIndex() int { return t.bidx }

// Sym returns the constant/applied head symbol for KConst or a
// symbol-headed KApp; nil otherwise.
func (t *Term) Sym() *symb.Symbol { return t.sym }

// Head returns the applied term of a KApp node.
func (t *Term) Head() *Term { return t.head }

// Args returns a KApp's arguments or a KBuiltin's operands.
func (t *Term) Args() []*Term { return t.args }

// Body returns a KFun's body, under one bound variable.
func (t *Term) Body() *Term { return t.body }

// Tag returns a KBuiltin's tag.
func (t *Term) Tag() BuiltinTag { return t.tag }

// IsGround reports whether the term contains no free variables. It is
// O(1) after the first FreeVars/IsGround call, per the operations
// contract of spec.md §4.1.
func (t *Term) IsGround() bool {
	return len(t.freeVarsCached()) == 0
}

// IsClosed reports whether every de Bruijn index in the term is bound
// by an enclosing Fun, the invariant spec.md §4.1 requires of terms
// once clause form is reached.
func (t *Term) IsClosed() bool { return t.closed }

// Size returns the number of nodes in the term (memoized).
func (t *Term) Size() int {
	if !t.sizeOk {
		t.sizeCache = computeSize(t)
		t.sizeOk = true
	}
	return t.sizeCache
}

// Depth returns the term's nesting depth (memoized).
func (t *Term) Depth() int {
	if !t.depthOk {
		t.depthCache = computeDepth(t)
		t.depthOk = true
	}
	return t.depthCache
}

// FreeVars returns the sorted, deduplicated set of free variable ids
// occurring in the term (memoized).
func (t *Term) FreeVars() []int { return t.freeVarsCached() }

func (t *Term) freeVarsCached() []int {
	if !t.freeOk {
		set := map[int]bool{}
		collectFreeVars(t, set)
		fv := make([]int, 0, len(set))
		for v := range set {
			fv = append(fv, v)
		}
		sortInts(fv)
		t.freeCache = fv
		t.freeOk = true
	}
	return t.freeCache
}

func computeSize(t *Term) int {
	switch t.kind {
	case KVar, KBVar, KConst:
		return 1
	case KApp:
		n := computeSize(t.head)
		for _, a := range t.args {
			n += a.Size()
		}
		return n
	case KFun:
		return 1 + t.body.Size()
	case KBuiltin:
		n := 1
		for _, a := range t.args {
			n += a.Size()
		}
		return n
	}
	return 1
}

func computeDepth(t *Term) int {
	switch t.kind {
	case KVar, KBVar, KConst:
		return 0
	case KApp:
		d := computeDepth(t.head)
		for _, a := range t.args {
			if ad := a.Depth(); ad > d {
				d = ad
			}
		}
		return d + 1
	case KFun:
		return 1 + t.body.Depth()
	case KBuiltin:
		d := 0
		for _, a := range t.args {
			if ad := a.Depth(); ad > d {
				d = ad
			}
		}
		return d + 1
	}
	return 0
}

func collectFreeVars(t *Term, set map[int]bool) {
	switch t.kind {
	case KVar:
		set[t.vid] = true
	case KBVar, KConst:
	case KApp:
		collectFreeVars(t.head, set)
		for _, a := range t.args {
			for _, v := range a.FreeVars() {
				set[v] = true
			}
		}
	case KFun:
		for _, v := range t.body.FreeVars() {
			set[v] = true
		}
	case KBuiltin:
		for _, a := range t.args {
			for _, v := range a.FreeVars() {
				set[v] = true
			}
		}
	}
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func (t *Term) String() string {
	switch t.kind {
	case KVar:
		return fmt.Sprintf("X%d", t.vid)
	case KBVar:
		return fmt.Sprintf("#%d", t.bidx)
	case KConst:
		return t.sym.Name()
	case KApp:
		parts := make([]string, len(t.args))
		for i, a := range t.args {
			parts[i] = a.String()
		}
		return t.head.String() + "(" + strings.Join(parts, ", ") + ")"
	case KFun:
		return "λ." + t.body.String()
	case KBuiltin:
		if t.tag == TagTrue {
			return "⊤"
		}
		return "<builtin>"
	}
	return "?term"
}
