package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	saturn "github.com/nnf/saturn"
	"github.com/nnf/saturn/clause"
	"github.com/nnf/saturn/cnf"
	"github.com/nnf/saturn/config"
	"github.com/nnf/saturn/proof"
)

type flags struct {
	timeout             time.Duration
	maxSteps            int64
	maxMemMB            int64
	ordering            string
	precedence          string
	selection           string
	noSubsumption       bool
	noDemodulation      bool
	noSimplifyReflect   bool
	noContextualCutting bool
	noCondensation      bool
	model               string
	strategyFile        string
	verbose             bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "saturn [problem-file]",
		Short: "A first-order superposition prover",
		Long: `saturn saturates a TPTP-CNF-flavored clause set under the
superposition calculus, reporting Unsatisfiable, Saturated, or
ResourceOut and exiting 0, 1, or 2 respectively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}
	cmd.Flags().DurationVar(&f.timeout, "timeout", 10*time.Second, "wall-clock budget for the run")
	cmd.Flags().Int64Var(&f.maxSteps, "steps", 0, "given-clause step budget (0 = unbounded)")
	cmd.Flags().Int64Var(&f.maxMemMB, "mem", 0, "approximate heap budget in MB, sampled between steps (0 = unbounded)")
	cmd.Flags().StringVar(&f.ordering, "ord", "kbo", "term ordering: kbo or lpo")
	cmd.Flags().StringVar(&f.precedence, "precedence", "arity", "symbol precedence: arity, inv_arity, arrival")
	cmd.Flags().StringVar(&f.selection, "select", "one_negative", "literal selection: none, one_negative, all_negative, maximal_negative")
	cmd.Flags().BoolVar(&f.noSubsumption, "no-subsumption", false, "disable forward/backward subsumption")
	cmd.Flags().BoolVar(&f.noDemodulation, "no-demod", false, "disable demodulation")
	cmd.Flags().BoolVar(&f.noSimplifyReflect, "no-simplify-reflect", false, "disable simplify-reflect")
	cmd.Flags().BoolVar(&f.noContextualCutting, "no-contextual-cutting", false, "disable contextual literal cutting")
	cmd.Flags().BoolVar(&f.noCondensation, "no-condensation", false, "disable condensation")
	cmd.Flags().StringVar(&f.model, "proof", "ledger", "proof rendering on Unsatisfiable: ledger or tptp")
	cmd.Flags().StringVar(&f.strategyFile, "strategy", "", "YAML strategy file overriding the flags above")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "debug-level logging")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	logger, err := newLogger(f.verbose)
	if err != nil {
		return fmt.Errorf("saturn: building logger: %w", err)
	}
	defer logger.Sync()

	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	strategy, err := resolveStrategy(f)
	if err != nil {
		return err
	}

	prob, err := saturn.NewProblem(strategy)
	if err != nil {
		return fmt.Errorf("saturn: %w", err)
	}

	var src *os.File
	if len(args) == 0 || args[0] == "-" {
		src = os.Stdin
	} else {
		src, err = os.Open(args[0])
		if err != nil {
			return fmt.Errorf("saturn: %w", err)
		}
		defer src.Close()
	}

	reader := cnf.NewReader(prob.Sig, prob.Types, prob.Terms, prob.Clauses, prob.Ordering)
	stmts, err := reader.Read(src)
	if err != nil {
		return fmt.Errorf("saturn: %w", err)
	}
	prob.Input = make([]*clause.Clause, len(stmts))
	for i, s := range stmts {
		prob.Input[i] = s.Clause
	}
	logger.Info("loaded problem", zap.Int("clauses", len(prob.Input)))

	prover := saturn.New(strategy)
	res, err := prover.Prove(prob)
	if err != nil {
		return fmt.Errorf("saturn: %w", err)
	}

	logger.Info("finished",
		zap.String("outcome", res.Outcome.String()),
		zap.Int64("steps", res.Stats.Steps),
		zap.Int64("given", res.Stats.Given),
		zap.Duration("elapsed", res.Stats.Elapsed))

	fmt.Printf("%% SZS status %s\n", szsStatus(res.Outcome))
	if res.Outcome == saturn.OutcomeUnsatisfiable && res.Proof != nil {
		fmt.Print(renderProof(f.model, res.Proof))
	}

	os.Exit(res.Outcome.ExitCode())
	return nil
}

func szsStatus(o saturn.Outcome) string {
	switch o {
	case saturn.OutcomeUnsatisfiable:
		return "Unsatisfiable"
	case saturn.OutcomeSaturated:
		return "Satisfiable"
	default:
		return "ResourceOut"
	}
}

func renderProof(kind string, root *clause.Clause) string {
	switch kind {
	case "tptp":
		return proof.Render(root, proof.TPTPEmitter{})
	default:
		return proof.Render(root, proof.LedgerEmitter{})
	}
}

func resolveStrategy(f *flags) (config.Strategy, error) {
	if f.strategyFile != "" {
		return config.Load(f.strategyFile)
	}
	s := config.Default()
	s.Timeout = config.Duration(f.timeout)
	s.MaxSteps = f.maxSteps
	s.MaxMemMB = f.maxMemMB
	s.Ordering = config.Ordering(f.ordering)
	s.Precedence = config.Precedence(f.precedence)
	s.Selection = config.Selection(f.selection)
	s.RuleToggles = config.RuleToggles{
		NoSubsumption:       f.noSubsumption,
		NoDemodulation:      f.noDemodulation,
		NoSimplifyReflect:   f.noSimplifyReflect,
		NoContextualCutting: f.noContextualCutting,
		NoCondensation:      f.noCondensation,
	}
	return s, nil
}
