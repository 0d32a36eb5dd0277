package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schemakit/yml2block/internal/lint"
	"github.com/schemakit/yml2block/internal/output"
	"github.com/schemakit/yml2block/internal/reader"
)

// buildLintConfig merges project config and command-line rule lists into a
// lint config. Flag values are applied after the project config, so a flag
// override on the same rule wins. An unresolvable rule name aborts the run
// before any file is touched.
func buildLintConfig(project *ProjectConfig, errorRules, warnRules, skipRules []string) *lint.Config {
	cfg, err := lint.ConfigFromNames(
		append(append([]string{}, project.ErrorRules...), errorRules...),
		append(append([]string{}, project.WarnRules...), warnRules...),
		append(append([]string{}, project.SkipRules...), skipRules...),
	)
	if err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
	return cfg
}

// expandGlobs resolves each argument as a glob pattern and returns the
// matched paths in argument order. A literal path with no glob characters
// matches itself when it exists.
func expandGlobs(args []string) []string {
	var paths []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			output.Error(fmt.Sprintf("Invalid pattern '%s': %v", arg, err))
			os.Exit(1)
		}
		paths = append(paths, matches...)
	}
	return paths
}

// checkFile lints a single file and records its findings in the report. The
// input type decides the reader; files with an unsupported extension are
// recorded but never opened. An unreadable file aborts the run.
func checkFile(path string, cfg *lint.Config, report *lint.Report) {
	kind, violations := lint.GuessInputType(path, cfg)
	report.Add(path, violations...)

	var (
		fileViolations []lint.Violation
		err            error
	)
	switch kind {
	case lint.InputYAML:
		_, _, fileViolations, err = reader.ReadYAML(path, cfg)
	case lint.InputTSV, lint.InputCSV:
		_, _, fileViolations, err = reader.ReadTSV(path, cfg)
	default:
		return
	}
	if err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
	report.Add(path, fileViolations...)
}

// printReport prints per-file findings: a heading per file, one line per
// violation colored by severity, and a success line for clean files.
func printReport(report *lint.Report) {
	for _, path := range report.Paths() {
		violations := report.File(path)
		if len(violations) == 0 {
			output.Success(fmt.Sprintf("All checks passed for %s! 🎉", path))
			continue
		}

		output.Info(path)
		for _, v := range violations {
			switch v.Severity {
			case lint.SeverityError:
				output.Error(v.String())
			case lint.SeverityWarning:
				output.Warning(v.String())
			default:
				output.Plain(v.String())
			}
		}
		output.Step(fmt.Sprintf("A total of %d lint(s) failed, highest level was '%s'.",
			len(violations), report.FileSeverity(path)))
	}
}

// exitCode maps the report's most severe finding to a process exit code.
// Warnings use the configurable warning exit code so CI setups can decide
// whether warnings fail the build.
func exitCode(report *lint.Report, warnExitCode int) int {
	switch report.MaxSeverity() {
	case lint.SeverityError:
		return 1
	case lint.SeverityWarning:
		return warnExitCode
	default:
		return 0
	}
}
