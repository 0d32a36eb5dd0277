package commands

import (
	"fmt"
	"os"

	"github.com/schemakit/yml2block/internal/lint"
	"github.com/schemakit/yml2block/internal/output"
	"github.com/spf13/cobra"
)

// CheckCmd creates the check command
func CheckCmd() *cobra.Command {
	var (
		errorRules   []string
		warnRules    []string
		skipRules    []string
		warnExitCode int
	)

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Lint metadata block files without converting them",
		Long: `Check one or more metadata block files (YAML or TSV) against the full
rule catalog. Arguments are glob patterns, so a whole directory of blocks
can be checked in one invocation.

Examples:
  yml2block check citation.yml
  yml2block check blocks/*.tsv
  yml2block check --skip no_trailing_spaces citation.yml
  yml2block check -e possible_typo_in_entry blocks/*.yml
  yml2block check --warn-ec 2 citation.yml   # exit 2 on warnings`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			project, err := LoadProjectConfig()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			cfg := buildLintConfig(project, errorRules, warnRules, skipRules)
			if !cmd.Flags().Changed("warn-ec") && project.WarnExitCode != 0 {
				warnExitCode = project.WarnExitCode
			}

			paths := expandGlobs(args)
			if len(paths) == 0 {
				output.Error("No files found at path. No check was performed.")
				os.Exit(1)
			}

			report := lint.NewReport()
			for _, path := range paths {
				output.Debug(fmt.Sprintf("Checking %s", path))
				checkFile(path, cfg, report)
			}

			printReport(report)
			if report.Total() == 0 {
				output.Success("All checks passed! 🎉")
			}
			os.Exit(exitCode(report, warnExitCode))
		},
	}

	cmd.Flags().StringArrayVarP(&errorRules, "error", "e", nil, "Rule name or id to force to ERROR (repeatable)")
	cmd.Flags().StringArrayVarP(&warnRules, "warn", "w", nil, "Rule name or id to force to WARNING (repeatable)")
	cmd.Flags().StringArrayVarP(&skipRules, "skip", "s", nil, "Rule name or id to skip (repeatable)")
	cmd.Flags().IntVar(&warnExitCode, "warn-ec", 0, "Exit code when the most severe finding is a warning")

	return cmd
}
