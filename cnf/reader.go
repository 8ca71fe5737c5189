// Package cnf reads a small TPTP-CNF-flavored clause format directly
// into hash-consed clauses (spec.md §6's "External Interfaces"): every
// symbol it meets is interned once into the caller's Signature, and
// every clause it builds is a real clause.Store entry ready for
// engine.AddPassive, with no intermediate AST the caller has to walk.
//
// The grammar accepted is a single-sorted subset of TPTP CNF:
//
//	problem    := statement*
//	statement  := "cnf" "(" name "," role "," disjunction ")" "."
//	disjunction:= literal ("|" literal)*
//	literal    := ["~"] atom
//	atom       := "$true" | "$false" | term "=" term | term "!=" term | name ["(" termlist ")"]
//	term       := name ["(" termlist ")"] | VAR
//	termlist   := term ("," term)*
//
// Every term lives in one implicit base sort; the format has no type
// declarations. name tokens starting with an uppercase letter are
// variables, scoped to the enclosing statement.
package cnf

import (
	"fmt"
	"io"

	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/internal/ty"
	"github.com/nnf/saturn/lit"
	"github.com/nnf/saturn/order"
	"github.com/nnf/saturn/term"
)

// Role names a TPTP annotated-formula role. Roles this reader does not
// recognize are treated as Plain.
type Role string

const (
	RolePlain             Role = "plain"
	RoleAxiom             Role = "axiom"
	RoleHypothesis        Role = "hypothesis"
	RoleConjecture        Role = "conjecture"
	RoleNegatedConjecture Role = "negated_conjecture"
)

// Statement is one parsed cnf(...) annotated formula.
type Statement struct {
	Name   string
	Role   Role
	Clause *clause.Clause
}

// Reader parses cnf(...) statements against a fixed term/clause/symbol
// store set, interning every symbol and variable it meets.
type Reader struct {
	sig     *symb.Signature
	types   *ty.Store
	terms   *term.Store
	clauses *clause.Store
	ord     order.Ordering
	base    *ty.Type

	nextVar int
	varID   int
	scope   map[string]*term.Term
}

// NewReader creates a Reader that builds clauses in the given stores
// under ord, interning symbols into sig.
func NewReader(sig *symb.Signature, types *ty.Store, terms *term.Store, clauses *clause.Store, ord order.Ordering) *Reader {
	base := types.App(sig.Intern("$i", 0))
	return &Reader{sig: sig, types: types, terms: terms, clauses: clauses, ord: ord, base: base}
}

// ReadString parses src as a whole problem.
func (r *Reader) ReadString(src string) ([]Statement, error) {
	lx := newLexer(src)
	tok, err := lx.next()
	if err != nil {
		return nil, err
	}
	var out []Statement
	for tok.kind != tokEOF {
		stmt, next, err := r.parseStatement(lx, tok)
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
		tok = next
	}
	return out, nil
}

// Read parses a problem from rd, buffering it fully first: TPTP-style
// problems are small enough that streaming buys nothing here, unlike
// a line-oriented DIMACS format.
func (r *Reader) Read(rd io.Reader) ([]Statement, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("cnf: %w", err)
	}
	return r.ReadString(string(data))
}

func (r *Reader) expect(lx *lexer, tok token, kind tokenKind, what string) (token, error) {
	if tok.kind != kind {
		return token{}, fmt.Errorf("cnf: line %d: expected %s", tok.line, what)
	}
	return lx.next()
}

func (r *Reader) parseStatement(lx *lexer, tok token) (Statement, token, error) {
	if tok.kind != tokIdent || tok.text != "cnf" {
		return Statement{}, token{}, fmt.Errorf("cnf: line %d: expected 'cnf'", tok.line)
	}
	tok, err := lx.next()
	if err != nil {
		return Statement{}, token{}, err
	}
	tok, err = r.expect(lx, tok, tokLParen, "'('")
	if err != nil {
		return Statement{}, token{}, err
	}
	if tok.kind != tokIdent {
		return Statement{}, token{}, fmt.Errorf("cnf: line %d: expected statement name", tok.line)
	}
	name := tok.text
	tok, err = lx.next()
	if err != nil {
		return Statement{}, token{}, err
	}
	tok, err = r.expect(lx, tok, tokComma, "','")
	if err != nil {
		return Statement{}, token{}, err
	}
	if tok.kind != tokIdent {
		return Statement{}, token{}, fmt.Errorf("cnf: line %d: expected role", tok.line)
	}
	role := Role(tok.text)
	tok, err = lx.next()
	if err != nil {
		return Statement{}, token{}, err
	}
	tok, err = r.expect(lx, tok, tokComma, "','")
	if err != nil {
		return Statement{}, token{}, err
	}

	r.scope = make(map[string]*term.Term)
	r.varID = 0
	lits, tok, err := r.parseDisjunction(lx, tok)
	if err != nil {
		return Statement{}, token{}, err
	}

	tok, err = r.expect(lx, tok, tokRParen, "')'")
	if err != nil {
		return Statement{}, token{}, err
	}
	tok, err = r.expect(lx, tok, tokDot, "'.'")
	if err != nil {
		return Statement{}, token{}, err
	}

	if role == RoleConjecture {
		lits = negateAll(lits)
	}
	proof := clause.Axiom(name)
	c := r.clauses.New(r.ord, lits, clause.EmptyTrail, proof)
	if role == RoleConjecture || role == RoleNegatedConjecture {
		c.SetFlag(clause.FlagGoal)
	}
	return Statement{Name: name, Role: role, Clause: c}, tok, nil
}

func negateAll(lits []*lit.Literal) []*lit.Literal {
	out := make([]*lit.Literal, len(lits))
	for i, l := range lits {
		out[i] = l.Negate()
	}
	return out
}

func (r *Reader) parseDisjunction(lx *lexer, tok token) ([]*lit.Literal, token, error) {
	var lits []*lit.Literal
	for {
		l, next, err := r.parseLiteral(lx, tok)
		if err != nil {
			return nil, token{}, err
		}
		lits = append(lits, l)
		tok = next
		if tok.kind != tokPipe {
			return lits, tok, nil
		}
		tok, err = lx.next()
		if err != nil {
			return nil, token{}, err
		}
	}
}

func (r *Reader) parseLiteral(lx *lexer, tok token) (*lit.Literal, token, error) {
	sign := true
	if tok.kind == tokTilde {
		sign = false
		var err error
		tok, err = lx.next()
		if err != nil {
			return nil, token{}, err
		}
	}
	return r.parseAtom(lx, tok, sign)
}

func (r *Reader) parseAtom(lx *lexer, tok token, sign bool) (*lit.Literal, token, error) {
	if tok.kind == tokIdent && tok.text == "$true" {
		next, err := lx.next()
		if err != nil {
			return nil, token{}, err
		}
		return lit.NewEquation(r.ord, r.terms.True(), r.terms.True(), sign), next, nil
	}
	if tok.kind == tokIdent && tok.text == "$false" {
		next, err := lx.next()
		if err != nil {
			return nil, token{}, err
		}
		return lit.NewEquation(r.ord, r.terms.True(), r.terms.True(), !sign), next, nil
	}

	lhs, tok, err := r.parseTerm(lx, tok)
	if err != nil {
		return nil, token{}, err
	}
	switch tok.kind {
	case tokEq:
		tok, err = lx.next()
		if err != nil {
			return nil, token{}, err
		}
		rhs, next, err := r.parseTerm(lx, tok)
		if err != nil {
			return nil, token{}, err
		}
		return lit.NewEquation(r.ord, lhs, rhs, sign), next, nil
	case tokNeq:
		tok, err = lx.next()
		if err != nil {
			return nil, token{}, err
		}
		rhs, next, err := r.parseTerm(lx, tok)
		if err != nil {
			return nil, token{}, err
		}
		return lit.NewEquation(r.ord, lhs, rhs, !sign), next, nil
	default:
		return lit.NewAtom(r.terms.True(), lhs, sign), tok, nil
	}
}

func (r *Reader) parseTerm(lx *lexer, tok token) (*term.Term, token, error) {
	switch tok.kind {
	case tokVar:
		if v, ok := r.scope[tok.text]; ok {
			next, err := lx.next()
			return v, next, err
		}
		v := r.terms.Var(r.varID, r.base)
		r.varID++
		r.scope[tok.text] = v
		next, err := lx.next()
		return v, next, err
	case tokIdent:
		name := tok.text
		next, err := lx.next()
		if err != nil {
			return nil, token{}, err
		}
		if next.kind != tokLParen {
			sym := r.sig.Intern(name, 0)
			return r.terms.Const(sym, r.base), next, nil
		}
		next, err = lx.next()
		if err != nil {
			return nil, token{}, err
		}
		var args []*term.Term
		for {
			var arg *term.Term
			arg, next, err = r.parseTerm(lx, next)
			if err != nil {
				return nil, token{}, err
			}
			args = append(args, arg)
			if next.kind != tokComma {
				break
			}
			next, err = lx.next()
			if err != nil {
				return nil, token{}, err
			}
		}
		next, err = r.expect(lx, next, tokRParen, "')'")
		if err != nil {
			return nil, token{}, err
		}
		sym := r.sig.Intern(name, len(args))
		head := r.terms.Const(sym, r.base)
		return r.terms.App(head, r.base, args...), next, nil
	default:
		return nil, token{}, fmt.Errorf("cnf: line %d: expected a term", tok.line)
	}
}
