package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ParseOptions holds flags for the parse command.
type ParseOptions struct {
	*RootOptions
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a clause file and reprint it in canonical form",
		Long: `Parse a cnf clause file and reprint every clause in canonical form.

Negative equations print with !=, empty clause bodies print as $false, and
$false disjuncts absorbed during parsing are not reprinted. The output parses
back to the same clauses.

Example:
  saturn parse problem.p`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(opts, args[0], cmd)
		},
	}

	return cmd
}

func runParse(opts *ParseOptions, path string, cmd *cobra.Command) error {
	set, err := parseClauseFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to parse clause file", err)
	}

	type parsed struct {
		Clauses []string `json:"clauses"`
	}
	data := parsed{Clauses: make([]string, 0, set.Len())}
	for _, c := range set.Clauses() {
		data.Clauses = append(data.Clauses, c.String())
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if err := formatter.Success(data, func(w io.Writer) {
		for _, line := range data.Clauses {
			fmt.Fprintln(w, line)
		}
	}); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	return nil
}
