package reader

import (
	"fmt"
	"strings"

	"github.com/schemakit/yml2block/internal/lint"
)

// sectionMarker starts the header line of each section in a Dataverse TSV
// metadata block.
const sectionMarker = "#"

// SplitResult is the outcome of partitioning a tabular file into its logical
// sections. Exactly one of Sections/Passthrough is set: Sections holds the
// marker-inclusive slices when the file has a recognizable shape (the third
// entry is nil, not empty, when the vocabulary section is absent), and
// Passthrough carries the whole file unmodified when the marker count makes
// splitting ambiguous.
type SplitResult struct {
	Sections    [3][]string
	Starts      [3]int // 0-based line index of each section's marker line
	Passthrough []string
}

// Ambiguous reports whether the splitter fell back to passing the file
// through unmodified.
func (r SplitResult) Ambiguous() bool {
	return r.Passthrough != nil
}

// SplitSections scans the lines of a tabular file for section-marker lines
// and partitions the file into 2 or 3 contiguous, marker-inclusive slices.
//
// Exactly 3 markers produce 3 slices, exactly 2 produce 2 slices with a nil
// third (the vocabulary section is genuinely absent, not empty). Any other
// marker count makes the split ambiguous: the file is passed through
// unmodified and a WARNING is emitted, because a later, more specific rule
// may still pinpoint the real defect. Consecutive markers with nothing
// between them yield a valid, empty section.
func SplitSections(lines []string, cfg *lint.Config) (SplitResult, []lint.Violation) {
	var markers []int
	for i, line := range lines {
		if strings.HasPrefix(line, sectionMarker) {
			markers = append(markers, i)
		}
	}

	switch len(markers) {
	case 3:
		return SplitResult{
			Sections: [3][]string{
				lines[markers[0]:markers[1]],
				lines[markers[1]:markers[2]],
				lines[markers[2]:],
			},
			Starts: [3]int{markers[0], markers[1], markers[2]},
		}, nil
	case 2:
		return SplitResult{
			Sections: [3][]string{
				lines[markers[0]:markers[1]],
				lines[markers[1]:],
				nil,
			},
			Starts: [3]int{markers[0], markers[1], 0},
		}, nil
	}

	violations := cfg.Apply(lint.RuleIdentifyBreakPoints, func(sev lint.Severity) []lint.Violation {
		return []lint.Violation{{
			Severity: sev,
			Rule:     lint.RuleIdentifyBreakPoints,
			Message:  splitProblem(len(markers)),
		}}
	})
	return SplitResult{Passthrough: lines}, violations
}

// splitProblem describes why the marker count prevents a clean split.
func splitProblem(count int) string {
	switch count {
	case 0:
		return "No section marker lines ('#...') found. Is this a metadata block file?"
	case 1:
		return "Only one section marker line found; a metadata block needs at least the metadataBlock and datasetField sections."
	default:
		return fmt.Sprintf("Found %d section marker lines, expected 2 or 3. The file cannot be split into sections.", count)
	}
}
