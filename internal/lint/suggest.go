package lint

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/schemakit/yml2block/internal/block"
)

// suggestionThreshold is the minimum similarity ratio at which an unknown
// name is close enough to a permitted one to propose a rename instead of
// listing all permitted names.
const suggestionThreshold = 0.5

// similarity computes a normalized shared-subsequence ratio between two
// strings (1.0 = identical, 0.0 = nothing in common). This is deliberately a
// different, cheaper measure than the edit distance the typo heuristic uses.
func similarity(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}

// closestMatch returns the candidate most similar to input and its ratio.
func closestMatch(input string, candidates []string) (string, float64) {
	best := ""
	bestRatio := -1.0
	for _, c := range candidates {
		if r := similarity(input, c); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	return best, bestRatio
}

// fixKeywordsValid builds the message for an invalid top-level keyword set:
// a rename suggestion for each unknown keyword and a note for each missing
// required one.
func fixKeywordsValid(keywords []string) string {
	permitted := make(map[string]bool, len(block.PermissibleKeywords))
	for _, kw := range block.PermissibleKeywords {
		permitted[kw] = true
	}

	var parts []string
	seen := make(map[string]bool)
	for _, kw := range keywords {
		if permitted[kw] || seen[kw] {
			continue
		}
		seen[kw] = true
		match, ratio := closestMatch(kw, block.PermissibleKeywords)
		if ratio > suggestionThreshold {
			parts = append(parts, fmt.Sprintf("Invalid keyword '%s'. Did you mean '%s'?", kw, match))
		} else {
			parts = append(parts, fmt.Sprintf("Invalid keyword '%s'. Valid keywords are: '%s'",
				kw, strings.Join(block.PermissibleKeywords, "', '")))
		}
	}

	present := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		present[kw] = true
	}
	for _, kw := range block.RequiredKeywords {
		if !present[kw] {
			parts = append(parts, fmt.Sprintf("Missing required keyword: '%s'", kw))
		}
	}

	return strings.Join(parts, "; ")
}

// fixKeysValid builds the message for an unknown field name inside a record,
// proposing the closest permitted name when it is close enough.
func fixKeysValid(key string, rec block.Record, keyword string, permitted []string) string {
	match, ratio := closestMatch(key, permitted)
	name := block.Describe(rec, keyword)
	msg := fmt.Sprintf("Invalid key '%s' present for '%s' in block '%s'.", key, name, keyword)
	if ratio > suggestionThreshold {
		return msg + fmt.Sprintf(" Did you mean '%s'?", match)
	}
	return msg + fmt.Sprintf(" Valid keys are: '%s'", strings.Join(permitted, "', '"))
}

// fixRequiredKeysPresent builds the message naming all missing required
// fields of one record at once.
func fixRequiredKeysPresent(missing []string, rec block.Record, keyword string) string {
	name := block.Describe(rec, keyword)
	return fmt.Sprintf("Missing keys '%s' for '%s' in block '%s'.",
		strings.Join(missing, "', '"), name, keyword)
}
