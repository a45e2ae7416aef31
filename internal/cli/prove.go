package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/saturn-prover/saturn/internal/clause"
	"github.com/saturn-prover/saturn/internal/lexer"
	"github.com/saturn-prover/saturn/internal/prover"
)

// ProveOptions holds flags for the prove command.
type ProveOptions struct {
	*RootOptions
	Config         string
	MaxIterations  int
	FunctionWeight int
	VariableWeight int
}

// NewProveCommand creates the prove command.
func NewProveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "prove <file>",
		Short: "Run the saturation loop on a clause file",
		Long: `Run the given-clause saturation loop on a cnf clause file.

The prover repeatedly selects the lightest pending clause, computes all
resolvents against the processed set and all factors, and pushes the results
back onto the frontier. Deriving the empty clause proves the input
unsatisfiable.

Example:
  saturn prove problem.p
  saturn prove --config saturn.yaml --max-iterations 10000 problem.p`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProve(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "path to YAML config file")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", 0, "iteration quota (0 = unbounded)")
	cmd.Flags().IntVar(&opts.FunctionWeight, "function-weight", 0, "function symbol weight (overrides config)")
	cmd.Flags().IntVar(&opts.VariableWeight, "variable-weight", 0, "variable weight (overrides config)")

	return cmd
}

func runProve(opts *ProveOptions, path string, cmd *cobra.Command) error {
	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	set, err := parseClauseFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to parse clause file", err)
	}
	slog.Debug("clause file parsed", "path", path, "clauses", set.Len())

	p := prover.New(cfg)
	for _, c := range set.Clauses() {
		p.AddClause(c)
	}
	report := p.Saturate()
	slog.Info("saturation finished",
		"run_id", report.RunID,
		"result", report.Result,
		"iterations", report.Iterations,
		"generated", report.Generated)

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if err := formatter.Success(report, func(w io.Writer) {
		fmt.Fprintf(w, "Result:     %s\n", report.Result)
		fmt.Fprintf(w, "Iterations: %d\n", report.Iterations)
		fmt.Fprintf(w, "Generated:  %d\n", report.Generated)
		fmt.Fprintf(w, "Processed:  %d\n", report.Processed)
		fmt.Fprintf(w, "Pending:    %d\n", report.Pending)
	}); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}

	if report.Result != prover.ResultProof {
		return NewExitError(ExitFailure, fmt.Sprintf("no proof found (%s)", report.Result))
	}
	return nil
}

// resolveConfig layers flag overrides on top of the config file (or the
// defaults when no file is given).
func resolveConfig(opts *ProveOptions, cmd *cobra.Command) (prover.Config, error) {
	cfg := prover.DefaultConfig()
	if opts.Config != "" {
		loaded, err := prover.LoadConfig(opts.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("max-iterations") {
		cfg.MaxIterations = opts.MaxIterations
	}
	if cmd.Flags().Changed("function-weight") {
		cfg.FunctionWeight = opts.FunctionWeight
	}
	if cmd.Flags().Changed("variable-weight") {
		cfg.VariableWeight = opts.VariableWeight
	}
	return cfg, cfg.Validate()
}

func parseClauseFile(path string) (*clause.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := lexer.New(path, string(data))
	if err != nil {
		return nil, err
	}
	return clause.ParseSet(stream)
}
