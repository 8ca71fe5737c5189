package term

import (
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
)

// chain is a hash-consing bucket entry: the interned term plus the
// index of the next node in the same bucket, or 0 for end-of-chain.
// This is the same chained strash technique a boolean-circuit
// builder's logic.C.And uses for its AND-node table, generalized from
// a single (a,b) pair key to arbitrary term shapes.
type chain struct {
	t    *Term
	next uint32
}

// Store is a hash-consing arena for Terms: structurally equal terms
// always resolve to the same *Term, which is the Term equality
// invariant tested in spec.md §8 ("hash-consing").
//
// A Store is not safe for concurrent use; the saturation loop and its
// preprocessing run on one logical thread of control (spec.md §5), so
// callers own their own Store per problem.
type Store struct {
	buckets []uint32 // bucket -> 1-based index into arena; 0 means empty
	arena   []chain  // arena[0] is an unused sentinel, mirroring logic.C's node 0
	nextID  uint64

	tstore *ty.Store
	sg     *symb.Signature

	trueLit *Term
}

// NewStore creates a Store backed by the given type store and signature.
func NewStore(sg *symb.Signature, ts *ty.Store) *Store {
	s := &Store{
		buckets: make([]uint32, 1024),
		arena:   make([]chain, 1, 1024),
		tstore:  ts,
		sg:      sg,
	}
	s.trueLit = s.Builtin(TagTrue)
	return s
}

// True returns the builtin ⊤ used to encode propositional atoms as
// p ≈ ⊤ (spec.md §3, Literal invariants).
func (s *Store) True() *Term { return s.trueLit }

func (s *Store) nextTermID() uint64 {
	s.nextID++
	return s.nextID
}

// Var returns the hash-consed free variable of id vid and type typ.
func (s *Store) Var(vid int, typ *ty.Type) *Term {
	return s.intern(hashVar(vid), func(c *Term) bool {
		return c.kind == KVar && c.vid == vid && c.typ == typ
	}, func() *Term {
		return &Term{kind: KVar, vid: vid, typ: typ, closed: false}
	})
}

// BVar returns the hash-consed bound-variable reference at de Bruijn
// index idx and type typ.
func (s *Store) BVar(idx int, typ *ty.Type) *Term {
	return s.intern(hashBVar(idx), func(c *Term) bool {
		return c.kind == KBVar && c.bidx == idx && c.typ == typ
	}, func() *Term {
		return &Term{kind: KBVar, bidx: idx, typ: typ, closed: false}
	})
}

// Const returns the hash-consed nullary (or curried-head) constant for sym.
func (s *Store) Const(sym *symb.Symbol, typ *ty.Type) *Term {
	return s.intern(hashConst(sym), func(c *Term) bool {
		return c.kind == KConst && c.sym == sym && c.typ == typ
	}, func() *Term {
		return &Term{kind: KConst, sym: sym, typ: typ, closed: true}
	})
}

// App returns the hash-consed application of head to args, typed typ.
// If head is a KConst, the resulting App node carries the same symbol
// shortcut via Sym() so first-order code need not unwrap Head().
func (s *Store) App(head *Term, typ *ty.Type, args ...*Term) *Term {
	h := hashApp(head, args)
	closed := head.closed
	for _, a := range args {
		closed = closed && a.closed
	}
	return s.intern(h, func(c *Term) bool {
		return c.kind == KApp && c.head == head && c.typ == typ && sameTerms(c.args, args)
	}, func() *Term {
		cp := append([]*Term(nil), args...)
		sym := head.sym
		return &Term{kind: KApp, head: head, sym: sym, args: cp, typ: typ, closed: closed}
	})
}

// Fun returns the hash-consed lambda abstraction over one bound
// variable of type argTy, with the given body under that binder.
func (s *Store) Fun(argTy *ty.Type, retTy *ty.Type, body *Term) *Term {
	h := hashFun(body)
	closed := body.closed
	funTy := s.tstore.Arrow(retTy, argTy)
	return s.intern(h, func(c *Term) bool {
		return c.kind == KFun && c.body == body && c.typ == funTy
	}, func() *Term {
		return &Term{kind: KFun, body: body, typ: funTy, closed: closed}
	})
}

// Builtin returns the hash-consed builtin node for tag applied to args.
func (s *Store) Builtin(tag BuiltinTag, args ...*Term) *Term {
	h := hashBuiltin(tag, args)
	closed := true
	for _, a := range args {
		closed = closed && a.closed
	}
	var typ *ty.Type
	if s.tstore != nil {
		typ = s.tstore.TType()
	}
	return s.intern(h, func(c *Term) bool {
		return c.kind == KBuiltin && c.tag == tag && sameTerms(c.args, args)
	}, func() *Term {
		cp := append([]*Term(nil), args...)
		return &Term{kind: KBuiltin, tag: tag, args: cp, typ: typ, closed: closed}
	})
}

func sameTerms(a, b []*Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// intern finds or creates the term matching eq under hash h, growing
// the strash table when chains get long, exactly the way logic.C.And
// grows its node/strash arrays together.
func (s *Store) intern(h uint32, eq func(*Term) bool, mk func() *Term) *Term {
	l := uint32(len(s.buckets))
	i := h % l
	ci := s.buckets[i]
	for ci != 0 {
		c := &s.arena[ci]
		if eq(c.t) {
			return c.t
		}
		ci = c.next
	}
	if uint32(len(s.arena)) == uint32(cap(s.arena)) && len(s.arena) >= len(s.buckets) {
		s.grow()
		i = h % uint32(len(s.buckets))
	}
	t := mk()
	t.id = s.nextTermID()
	idx := uint32(len(s.arena))
	s.arena = append(s.arena, chain{t: t, next: s.buckets[i]})
	s.buckets[i] = idx
	return t
}

func (s *Store) grow() {
	newBuckets := make([]uint32, len(s.buckets)*2)
	for idx := 1; idx < len(s.arena); idx++ {
		c := &s.arena[idx]
		h := hashOf(c.t)
		b := h % uint32(len(newBuckets))
		c.next = newBuckets[b]
		newBuckets[b] = uint32(idx)
	}
	s.buckets = newBuckets
}

func hashOf(t *Term) uint32 {
	switch t.kind {
	case KVar:
		return hashVar(t.vid)
	case KBVar:
		return hashBVar(t.bidx)
	case KConst:
		return hashConst(t.sym)
	case KApp:
		return hashApp(t.head, t.args)
	case KFun:
		return hashFun(t.body)
	case KBuiltin:
		return hashBuiltin(t.tag, t.args)
	}
	return 0
}

func hashVar(vid int) uint32     { return mix(1, uint32(vid)) }
func hashBVar(idx int) uint32    { return mix(2, uint32(idx)) }
func hashConst(sym *symb.Symbol) uint32 {
	return mix(3, uint32(sym.ID()))
}
func hashApp(head *Term, args []*Term) uint32 {
	h := mix(4, uint32(head.id))
	for _, a := range args {
		h = mix(h, uint32(a.id))
	}
	return h
}
func hashFun(body *Term) uint32 { return mix(5, uint32(body.id)) }
func hashBuiltin(tag BuiltinTag, args []*Term) uint32 {
	h := mix(6, uint32(tag))
	for _, a := range args {
		h = mix(h, uint32(a.id))
	}
	return h
}

func mix(a, b uint32) uint32 {
	h := a*2654435761 + b
	h ^= h >> 15
	return h
}
