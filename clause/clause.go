// Package clause implements clauses: hash-consed multisets of
// literals carrying a trail and a proof record, per spec.md §3.
package clause

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/term"
)

// Flags carries boolean clause state beyond its logical content.
type Flags uint32

const (
	// FlagRedundant marks a clause the saturation loop has determined
	// is subsumed or otherwise made obsolete but has not yet unlinked.
	FlagRedundant Flags = 1 << iota
	// FlagProcessed marks a clause that has completed its
	// backward-simplification pass and is a full member of Active.
	FlagProcessed
	// FlagGoal marks a clause descended from the negated conjecture,
	// used by age/weight heuristics that prefer goal-directed clauses.
	FlagGoal
)

// Clause is `{lits, trail, proof, vars, selected, flags}` (spec.md §3).
// Its zero value is not meaningful; construct via Store.New.
type Clause struct {
	id       uint64
	lits     []*lit.Literal
	trail    Trail
	proof    *ProofStep
	vars     []int
	selected []int
	flags    Flags
}

func (c *Clause) ID() uint64          { return c.id }
func (c *Clause) Lits() []*lit.Literal { return c.lits }
func (c *Clause) Trail() Trail        { return c.trail }
func (c *Clause) Proof() *ProofStep   { return c.proof }
func (c *Clause) Vars() []int         { return c.vars }
func (c *Clause) Selected() []int     { return c.selected }
func (c *Clause) Flags() Flags        { return c.flags }

// SetSelected records which literal indices generating inferences may
// pivot on, per the clause's selection function (spec.md §4.4). An
// empty slice means "no restriction, all literals eligible".
func (c *Clause) SetSelected(idx []int) { c.selected = idx }

func (c *Clause) HasFlag(f Flags) bool { return c.flags&f != 0 }
func (c *Clause) SetFlag(f Flags)      { c.flags |= f }
func (c *Clause) ClearFlag(f Flags)    { c.flags &^= f }

// IsSelected reports whether literal index i is eligible for
// generating inferences: every literal is, when Selected is empty.
func (c *Clause) IsSelected(i int) bool {
	if len(c.selected) == 0 {
		return true
	}
	for _, s := range c.selected {
		if s == i {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the clause is the empty clause ⊥, the
// refutation the saturation loop searches for.
func (c *Clause) IsEmpty() bool { return len(c.lits) == 0 }

// IsUnit reports whether the clause has exactly one literal.
func (c *Clause) IsUnit() bool { return len(c.lits) == 1 }

// IsGround reports whether every literal's terms are ground.
func (c *Clause) IsGround() bool { return len(c.vars) == 0 }

func (c *Clause) String() string {
	if c.IsEmpty() {
		return "[]"
	}
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = literalString(l)
	}
	return strings.Join(parts, " | ")
}

func literalString(l *lit.Literal) string {
	switch l.Kind() {
	case lit.KTrue:
		return "$true"
	case lit.KFalse:
		return "$false"
	default:
		op := "="
		if !l.Sign() {
			op = "!="
		}
		return l.L().String() + " " + op + " " + l.R().String()
	}
}

// Store hash-conses clauses by (literals modulo renaming, trail),
// mirroring term.Store's strash and giving the saturation loop cheap
// duplicate-clause detection on insertion into Passive. Literals are
// put in a variable-blind shape order and variables are then renamed
// by first occurrence, so clauses that differ only in variable names,
// or in the order of literals with distinct shapes, resolve to the
// same *Clause. Renaming-equivalent clauses whose same-shaped literals
// appear in a different order are not merged: they get distinct
// *Clause values.
type Store struct {
	st     *term.Store
	table  map[string]*Clause
	nextID uint64
}

// NewStore creates an empty clause Store backed by a term Store.
func NewStore(st *term.Store) *Store {
	return &Store{st: st, table: make(map[string]*Clause, 256)}
}

// New builds (or retrieves, if an equal clause already exists) the
// clause with the given literals, trail, and proof, under ordering ord
// used to (re)compute each equational literal's cached orientation
// once variables have been canonically renamed.
func (s *Store) New(ord order.Ordering, lits []*lit.Literal, trail Trail, proof *ProofStep) *Clause {
	perm := sortLiteralOrder(lits)
	sorted := make([]*lit.Literal, len(lits))
	for i, idx := range perm {
		sorted[i] = lits[idx]
	}

	mapping := map[int]int{}
	next := 1
	canon := make([]*lit.Literal, len(sorted))
	for i, l := range sorted {
		canon[i] = canonLiteral(s.st, ord, l, mapping, &next)
	}

	key := clauseKey(canon, trail)
	if existing, ok := s.table[key]; ok {
		return existing
	}

	vars := make([]int, 0, len(mapping))
	for _, v := range mapping {
		vars = append(vars, v)
	}
	sort.Ints(vars)

	s.nextID++
	c := &Clause{id: s.nextID, lits: canon, trail: trail, proof: proof, vars: vars}
	s.table[key] = c
	return c
}

func canonLiteral(st *term.Store, ord order.Ordering, l *lit.Literal, mapping map[int]int, next *int) *lit.Literal {
	switch l.Kind() {
	case lit.KTrue:
		return lit.True()
	case lit.KFalse:
		return lit.False()
	default:
		cl := renameVars(st, l.L(), mapping, next)
		cr := renameVars(st, l.R(), mapping, next)
		return lit.NewEquation(ord, cl, cr, l.Sign())
	}
}

// sortLiteralOrder returns a permutation of indices into lits sorted
// by their variable-blind shape, the renaming-independent fixed order
// spec.md §3 requires ("order is immaterial for semantics but fixed
// in representation for indexing").
func sortLiteralOrder(lits []*lit.Literal) []int {
	keys := make([]string, len(lits))
	for i, l := range lits {
		keys[i] = literalShapeKey(l)
	}
	idx := make([]int, len(lits))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]] < keys[idx[b]] })
	return idx
}

func literalShapeKey(l *lit.Literal) string {
	switch l.Kind() {
	case lit.KTrue:
		return "T"
	case lit.KFalse:
		return "F"
	default:
		sign := "+"
		if !l.Sign() {
			sign = "-"
		}
		return sign + shapeKey(l.L()) + "|" + shapeKey(l.R())
	}
}

func clauseKey(canon []*lit.Literal, trail Trail) string {
	var b strings.Builder
	for _, l := range canon {
		switch l.Kind() {
		case lit.KTrue:
			b.WriteString("T;")
		case lit.KFalse:
			b.WriteString("F;")
		default:
			if l.Sign() {
				b.WriteByte('+')
			} else {
				b.WriteByte('-')
			}
			b.WriteString(strconv.FormatUint(l.L().ID(), 36))
			b.WriteByte(':')
			b.WriteString(strconv.FormatUint(l.R().ID(), 36))
			b.WriteByte(';')
		}
	}
	b.WriteByte('#')
	for _, a := range trail {
		b.WriteString(strconv.Itoa(int(a)))
		b.WriteByte(',')
	}
	return b.String()
}
