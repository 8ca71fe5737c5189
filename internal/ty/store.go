package ty

import "github.com/nnf/saturn/internal/symb"

// Store hash-conses Types in a map keyed by a canonical string built
// from each type's former, head symbol id and argument type ids, so
// structurally equal types are always the same physical *Type.
type Store struct {
	table map[string]*Type // canonical string form is a simple, adequate hash key here
	next  uint64
	tt    *Type
}

// NewStore creates an empty type store, pre-seeded with the TType sort.
func NewStore() *Store {
	s := &Store{table: make(map[string]*Type, 256)}
	s.tt = &Type{kind: KType, ident: s.id()}
	s.table["TType"] = s.tt
	return s
}

func (s *Store) id() uint64 {
	s.next++
	return s.next
}

// TType returns the sort of types.
func (s *Store) TType() *Type { return s.tt }

// Var returns the hash-consed type variable of index n.
func (s *Store) Var(n int) *Type {
	return s.intern("v"+itoa(n), func() *Type { return &Type{kind: KVar, vr: n, ident: s.id()} })
}

// App returns the hash-consed application of sym to args.
func (s *Store) App(sym *symb.Symbol, args ...*Type) *Type {
	return s.intern(appKey(sym, args), func() *Type {
		cp := append([]*Type(nil), args...)
		return &Type{kind: KApp, sym: sym, args: cp, ident: s.id()}
	})
}

// Arrow returns the hash-consed function type from args to ret.
func (s *Store) Arrow(ret *Type, args ...*Type) *Type {
	return s.intern(arrowKey(ret, args), func() *Type {
		cp := append([]*Type(nil), args...)
		return &Type{kind: KArrow, args: cp, ret: ret, ident: s.id()}
	})
}

func (s *Store) intern(k string, mk func() *Type) *Type {
	if t, ok := s.table[k]; ok {
		return t
	}
	t := mk()
	s.table[k] = t
	return t
}

func appKey(sym *symb.Symbol, args []*Type) string {
	b := []byte{'a', ':'}
	b = append(b, uint64ToBytes(uint64(sym.ID()))...)
	for _, a := range args {
		b = append(b, ':')
		b = append(b, uint64ToBytes(a.ident)...)
	}
	return string(b)
}

func arrowKey(ret *Type, args []*Type) string {
	b := []byte{'r', ':'}
	b = append(b, uint64ToBytes(ret.ident)...)
	for _, a := range args {
		b = append(b, ':')
		b = append(b, uint64ToBytes(a.ident)...)
	}
	return string(b)
}

func uint64ToBytes(u uint64) []byte {
	var buf [20]byte
	i := len(buf)
	if u == 0 {
		return []byte{'0'}
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	return buf[i:]
}
