package lint

import (
	"fmt"
	"strings"
)

// Violation is a single diagnostic finding. Violations are values: rules
// return them, callers collect them, nothing mutates them afterwards.
type Violation struct {
	Severity Severity
	Rule     string
	Message  string
	// Line and Column locate the finding in the source file; zero means the
	// coordinate is unknown.
	Line   int
	Column int
}

// String formats the violation as a log-style record, e.g.
//
//	[ERROR] line 12 column 3 unique_names: Name 'title' occurs 2 times ...
func (v Violation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] ", v.Severity)
	if v.Line > 0 {
		fmt.Fprintf(&b, "line %d ", v.Line)
	}
	if v.Column > 0 {
		fmt.Fprintf(&b, "column %d ", v.Column)
	}
	fmt.Fprintf(&b, "%s: %s", v.Rule, v.Message)
	return b.String()
}

// Report collects violations grouped by file path, preserving the order in
// which files were processed. It is the per-run accumulator; each processing
// step returns its violations and the caller merges them here, so no state
// is shared across files.
type Report struct {
	paths  []string
	byPath map[string][]Violation
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{byPath: make(map[string][]Violation)}
}

// Add records violations for a file. Adding an empty list still registers
// the file, so clean files show up in the summary.
func (r *Report) Add(path string, violations ...Violation) {
	if _, seen := r.byPath[path]; !seen {
		r.paths = append(r.paths, path)
	}
	r.byPath[path] = append(r.byPath[path], violations...)
}

// Paths returns the processed file paths in order.
func (r *Report) Paths() []string {
	return r.paths
}

// File returns the violations recorded for a path.
func (r *Report) File(path string) []Violation {
	return r.byPath[path]
}

// FileSeverity returns the most severe level recorded for a path, or
// SeverityNone when the file is clean.
func (r *Report) FileSeverity(path string) Severity {
	return MostSevere(r.byPath[path])
}

// MaxSeverity returns the most severe level across all files.
func (r *Report) MaxSeverity() Severity {
	max := SeverityNone
	for _, path := range r.paths {
		if s := r.FileSeverity(path); s.MoreSevere(max) {
			max = s
		}
	}
	return max
}

// Total returns the number of violations across all files.
func (r *Report) Total() int {
	n := 0
	for _, path := range r.paths {
		n += len(r.byPath[path])
	}
	return n
}

// SafeConversion reports whether a file may be converted to TSV: clean files
// always may, files with warnings only when strict mode is off, files with
// errors never.
func (r *Report) SafeConversion(path string, strict bool) bool {
	switch r.FileSeverity(path) {
	case SeverityNone:
		return true
	case SeverityWarning:
		return !strict
	default:
		return false
	}
}
