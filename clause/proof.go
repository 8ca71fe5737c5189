package clause

import "github.com/nnf/saturn/subst"

// StepKind discriminates a clause's derivation record.
type StepKind uint8

const (
	// StepAxiom marks a clause taken directly from the input problem
	// (or a conjecture negated during preprocessing).
	StepAxiom StepKind = iota
	// StepInference marks a clause produced by a generating or
	// simplifying rule from one or more parents.
	StepInference
)

// Rule names the inference or simplification that produced a clause,
// recorded on its ProofStep for reconstruction and reporting.
type Rule string

const (
	RuleSuperposition      Rule = "superposition"
	RuleEqualityResolution Rule = "equality_resolution"
	RuleEqualityFactoring  Rule = "equality_factoring"
	RuleDemodulation       Rule = "demodulation"
	RuleSimplifyReflectPos Rule = "simplify_reflect_pos"
	RuleSimplifyReflectNeg Rule = "simplify_reflect_neg"
	RuleSubsumption        Rule = "subsumption"
	RuleContextualCutting  Rule = "contextual_literal_cutting"
	RuleCondensation       Rule = "condensation"
	RuleTautologyDeletion  Rule = "tautology_deletion"
	RuleCNF                Rule = "cnf"
)

// Parent is one premise of an inference: the clause it came from and
// the substitution the rule applied to it.
type Parent struct {
	Clause *Clause
	Subst  *subst.Subst
}

// ProofStep is `Axiom(src) | Inference(rule, parents)` (spec.md §3):
// a node in the proof DAG whose leaves are axioms and conjectures.
type ProofStep struct {
	kind    StepKind
	source  string // StepAxiom: the input clause's name or conjecture label
	rule    Rule
	parents []Parent
}

// Axiom builds a ProofStep for a clause read directly from the problem.
func Axiom(source string) *ProofStep {
	return &ProofStep{kind: StepAxiom, source: source}
}

// Inference builds a ProofStep for a clause derived by rule from parents.
func Inference(rule Rule, parents ...Parent) *ProofStep {
	return &ProofStep{kind: StepInference, rule: rule, parents: parents}
}

func (p *ProofStep) Kind() StepKind { return p.kind }
func (p *ProofStep) Source() string { return p.source }
func (p *ProofStep) Rule() Rule     { return p.rule }
func (p *ProofStep) Parents() []Parent { return p.parents }
