package lint

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Input kinds recognized by GuessInputType.
const (
	InputYAML = "yaml"
	InputTSV  = "tsv"
	InputCSV  = "csv"
)

// GuessInputType classifies an input file by its extension. A .csv file is
// accepted but flagged, since only tab separators are supported; an unknown
// extension is an error and the file is not processed at all.
func GuessInputType(path string, cfg *Config) (string, []Violation) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".tsv":
		return InputTSV, nil
	case ".yml", ".yaml":
		return InputYAML, nil
	case ".csv":
		violations := cfg.applyAt(RuleGuessInputType, SeverityWarning, func(sev Severity) []Violation {
			return []Violation{{
				Severity: sev,
				Rule:     RuleGuessInputType,
				Message:  fmt.Sprintf("Invalid file extension '%s'. Will be treated as tsv. Currently non-tab separators are not supported.", ext),
			}}
		})
		return InputCSV, violations
	default:
		violations := cfg.applyAt(RuleGuessInputType, SeverityError, func(sev Severity) []Violation {
			return []Violation{{
				Severity: sev,
				Rule:     RuleGuessInputType,
				Message:  fmt.Sprintf("Invalid file extension '%s'. Only .tsv and .yaml/.yml files are supported.", ext),
			}}
		})
		return "", violations
	}
}
