// Package config loads a saturation Strategy from YAML, the same
// declarative-config idiom the rest of the corpus reaches for over
// hand-rolled flag parsing whenever a setting set is large enough to
// want a file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nnf/saturn/internal/symb"
	"github.com/nnf/saturn/lit"
)

// Ordering names a term ordering choice.
type Ordering string

const (
	OrderingKBO Ordering = "kbo"
	OrderingLPO Ordering = "lpo"
)

// Precedence names a symbol precedence policy, mirroring symb.PrecedencePolicy.
type Precedence string

const (
	PrecedenceArity    Precedence = "arity"
	PrecedenceInvArity Precedence = "inv_arity"
	PrecedenceFreq     Precedence = "freq"
	PrecedenceInvFreq  Precedence = "inv_freq"
	PrecedenceArrival  Precedence = "arrival"
)

// Policy converts a Precedence to the symb package's enum.
func (p Precedence) Policy() (symb.PrecedencePolicy, error) {
	switch p {
	case "", PrecedenceArity:
		return symb.PrecArity, nil
	case PrecedenceInvArity:
		return symb.PrecInvArity, nil
	case PrecedenceFreq:
		return symb.PrecFreq, nil
	case PrecedenceInvFreq:
		return symb.PrecInvFreq, nil
	case PrecedenceArrival:
		return symb.PrecArrival, nil
	default:
		return 0, fmt.Errorf("config: unknown precedence %q", p)
	}
}

// Selection names a literal selection function, mirroring lit.Policy.
type Selection string

const (
	SelectionNone            Selection = "none"
	SelectionOneNegative     Selection = "one_negative"
	SelectionAllNegative     Selection = "all_negative"
	SelectionMaximalNegative Selection = "maximal_negative"
)

// Policy converts a Selection to the lit package's enum.
func (s Selection) Policy() (lit.Policy, error) {
	switch s {
	case "", SelectionOneNegative:
		return lit.SelectOneNegative, nil
	case SelectionNone:
		return lit.SelectNone, nil
	case SelectionAllNegative:
		return lit.SelectAllNegative, nil
	case SelectionMaximalNegative:
		return lit.SelectMaximalNegative, nil
	default:
		return 0, fmt.Errorf("config: unknown selection %q", s)
	}
}

// RuleToggles disables individual simplification rules, wired straight
// into inter.SuperpositionCalculus's like-named fields.
type RuleToggles struct {
	NoSubsumption       bool `yaml:"no_subsumption"`
	NoDemodulation      bool `yaml:"no_demodulation"`
	NoSimplifyReflect   bool `yaml:"no_simplify_reflect"`
	NoContextualCutting bool `yaml:"no_contextual_cutting"`
	NoCondensation      bool `yaml:"no_condensation"`
}

// Duration wraps time.Duration so it can be written in a strategy file
// the way flag.Duration parses it on the command line ("10s", "2m30s"),
// rather than as a raw integer of nanoseconds.
type Duration time.Duration

func (d Duration) Duration() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Strategy is the full set of knobs a saturation run is parameterized
// by (spec.md §6's External Interfaces): ordering and precedence,
// literal selection, resource limits, and which simplification rules
// are active. The zero Strategy is a usable default.
type Strategy struct {
	Ordering    Ordering    `yaml:"ordering"`
	Precedence  Precedence  `yaml:"precedence"`
	Selection   Selection   `yaml:"selection"`
	Timeout     Duration    `yaml:"timeout"`
	MaxSteps    int64       `yaml:"max_steps"`
	MaxMemMB    int64       `yaml:"max_mem_mb"`
	RuleToggles RuleToggles `yaml:"rules"`
}

// Default returns the strategy the engine runs with when the caller
// specifies nothing: KBO ordering, arity precedence, select-one-negative,
// a 10s timeout, no step cap, every simplification rule enabled.
func Default() Strategy {
	return Strategy{
		Ordering:   OrderingKBO,
		Precedence: PrecedenceArity,
		Selection:  SelectionOneNegative,
		Timeout:    Duration(10 * time.Second),
	}
}

// Load reads a Strategy from a YAML file at path, filling in Default's
// values for anything the file leaves at its zero value.
func Load(path string) (Strategy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Strategy{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse reads a Strategy from YAML bytes.
func Parse(data []byte) (Strategy, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Strategy{}, fmt.Errorf("config: parsing strategy: %w", err)
	}
	return s, nil
}
