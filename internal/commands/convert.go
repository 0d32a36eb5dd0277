package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schemakit/yml2block/internal/block"
	"github.com/schemakit/yml2block/internal/input"
	"github.com/schemakit/yml2block/internal/lint"
	"github.com/schemakit/yml2block/internal/output"
	"github.com/schemakit/yml2block/internal/reader"
	"github.com/schemakit/yml2block/internal/writer"
	"github.com/spf13/cobra"
)

// ConvertCmd creates the convert command
func ConvertCmd() *cobra.Command {
	var (
		errorRules   []string
		warnRules    []string
		skipRules    []string
		warnExitCode int
		outfile      string
		strict       bool
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a YAML metadata block to TSV",
		Long: `Convert a YAML metadata block definition into the TSV format the
Dataverse installer expects. The file is linted first; no TSV is written
when errors are found, and --strict also blocks conversion on warnings.

Examples:
  yml2block convert citation.yml
  yml2block convert citation.yml -o /tmp/citation.tsv
  yml2block convert --strict citation.yml`,
		Args: cobra.ExactArgs(1),
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

			path := args[0]
			if outfile == "" {
				outfile = strings.TrimSuffix(path, filepath.Ext(path)) + ".tsv"
			}

			report := lint.NewReport()
			kind, violations := lint.GuessInputType(path, cfg)
			report.Add(path, violations...)

			var (
				doc        *block.Document
				longestRow int
			)
			switch kind {
			case lint.InputYAML:
				d, width, fileViolations, err := reader.ReadYAML(path, cfg)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				report.Add(path, fileViolations...)
				doc, longestRow = d, width
			case lint.InputTSV, lint.InputCSV:
				// TSV input is linted but there is nothing to convert.
				_, _, fileViolations, err := reader.ReadTSV(path, cfg)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				report.Add(path, fileViolations...)
			}

			printReport(report)

			if !report.SafeConversion(path, strict) {
				output.Error("Errors detected. No TSV file was written.")
				os.Exit(exitCode(report, warnExitCode))
			}
			if doc == nil {
				output.Error("Only YAML files can be converted to TSV. No file was written.")
				os.Exit(1)
			}

			if _, err := os.Stat(outfile); err == nil && !force {
				if !input.Confirm(fmt.Sprintf("Overwrite existing file %s?", outfile), false) {
					output.Info("Aborted. No TSV file was written.")
					os.Exit(exitCode(report, warnExitCode))
				}
			}

			if err := writer.WriteFile(outfile, doc, longestRow); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			output.Success(fmt.Sprintf("Wrote %s", outfile))
			os.Exit(exitCode(report, warnExitCode))
		},
	}

	cmd.Flags().StringArrayVarP(&errorRules, "error", "e", nil, "Rule name or id to force to ERROR (repeatable)")
	cmd.Flags().StringArrayVarP(&warnRules, "warn", "w", nil, "Rule name or id to force to WARNING (repeatable)")
	cmd.Flags().StringArrayVarP(&skipRules, "skip", "s", nil, "Rule name or id to skip (repeatable)")
	cmd.Flags().IntVar(&warnExitCode, "warn-ec", 0, "Exit code when the most severe finding is a warning")
	cmd.Flags().StringVarP(&outfile, "outfile", "o", "", "Output path (default: input path with .tsv extension)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Refuse conversion on warnings, not only on errors")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing output file without asking")

	return cmd
}
