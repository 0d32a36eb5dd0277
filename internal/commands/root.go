package commands

import (
	"github.com/schemakit/yml2block"
	"github.com/schemakit/yml2block/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the yml2block CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "yml2block",
		Short: "Lint and convert Dataverse metadata block definitions",
		Long: `yml2block validates Dataverse metadata block definitions and converts
them from YAML to the TSV format the Dataverse installer expects.

It checks both YAML and TSV files against the same rule catalog:
  • structural rules (known top-level keywords, each occurring once)
  • block rules (list shape, unique names, unique titles per parent)
  • entry rules (required keys, known keys, no nesting, trailing spaces)
  • heuristics (likely typos in field names)

Every rule can be forced to ERROR or WARNING or skipped entirely.`,
		Version: yml2block.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
