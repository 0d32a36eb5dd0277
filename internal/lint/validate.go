package lint

import (
	"github.com/schemakit/yml2block/internal/block"
)

// Validate runs every applicable rule against a document and returns the
// layout metric (widest record, in columns) together with all violations in
// discovery order: top-level rules first, then sections in canonical keyword
// order, then records in source order.
//
// An invalid keyword set does not short-circuit the per-section rules; one
// pass surfaces every defect. Re-running Validate on the same document with
// the same config yields an identical violation list.
func Validate(doc *block.Document, cfg *Config) (int, []Violation) {
	keywords := doc.Keywords()
	violations := validateKeywords(keywords, cfg)

	longestRow := 0
	for _, keyword := range sectionOrder(keywords) {
		b, ok := doc.Section(keyword)
		if !ok {
			continue
		}
		rowMax, sectionViolations := validateSection(b, keyword, cfg)
		violations = append(violations, sectionViolations...)
		if rowMax > longestRow {
			longestRow = rowMax
		}
	}

	return longestRow, violations
}

// sectionOrder yields the known keywords in canonical order followed by any
// unknown keywords in document order, so diagnostics stay deterministic even
// for malformed keyword sets.
func sectionOrder(keywords []string) []string {
	present := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		present[kw] = true
	}

	var ordered []string
	for _, kw := range block.PermissibleKeywords {
		if present[kw] {
			ordered = append(ordered, kw)
		}
	}
	seen := make(map[string]bool, len(ordered))
	for _, kw := range ordered {
		seen[kw] = true
	}
	for _, kw := range keywords {
		if !block.KnownKeyword(kw) && !seen[kw] {
			ordered = append(ordered, kw)
			seen[kw] = true
		}
	}
	return ordered
}

// validateKeywords runs the top-level keyword rules.
func validateKeywords(keywords []string, cfg *Config) []Violation {
	var violations []Violation
	violations = append(violations, cfg.Apply(RuleKeywordsValid, func(sev Severity) []Violation {
		return keywordsValid(keywords, sev)
	})...)
	violations = append(violations, cfg.Apply(RuleKeywordsUnique, func(sev Severity) []Violation {
		return keywordsUnique(keywords, sev)
	})...)
	return violations
}

// validateSection runs the block-content rules once for the whole record
// list, then the record-level rules once per record, and computes the
// section's widest row.
func validateSection(b block.Block, keyword string, cfg *Config) (int, []Violation) {
	var violations []Violation

	violations = append(violations, cfg.Apply(RuleBlockIsList, func(sev Severity) []Violation {
		return blockIsList(b, sev)
	})...)
	violations = append(violations, cfg.Apply(RuleUniqueNames, func(sev Severity) []Violation {
		return uniqueNames(b, keyword, sev)
	})...)
	violations = append(violations, cfg.Apply(RuleUniqueTitles, func(sev Severity) []Violation {
		return uniqueTitles(b, keyword, sev)
	})...)
	violations = append(violations, cfg.Apply(RulePossibleTypo, func(sev Severity) []Violation {
		return possibleTypoInEntry(b, keyword, sev)
	})...)

	longestRow := 0
	for _, rec := range b.Records {
		rec := rec
		violations = append(violations, cfg.Apply(RuleRequiredKeysPresent, func(sev Severity) []Violation {
			return requiredKeysPresent(rec, keyword, sev)
		})...)
		violations = append(violations, cfg.Apply(RuleKeysValid, func(sev Severity) []Violation {
			return keysValid(rec, keyword, sev)
		})...)
		violations = append(violations, cfg.Apply(RuleNoSubstructures, func(sev Severity) []Violation {
			return noSubstructures(rec, keyword, sev)
		})...)
		violations = append(violations, cfg.Apply(RuleNoTrailingSpaces, func(sev Severity) []Violation {
			return noTrailingSpaces(rec, keyword, sev)
		})...)
		violations = append(violations, cfg.Apply(RuleNestedCompound, func(sev Severity) []Violation {
			return nestedCompoundMetadata(rec, keyword, sev)
		})...)
		violations = append(violations, cfg.Apply(RuleNestedCompoundVocab, func(sev Severity) []Violation {
			return nestedCompoundMetadataControlledVocab(rec, keyword, sev)
		})...)

		if width := block.RowWidth(rec, keyword); width > longestRow {
			longestRow = width
		}
	}

	return longestRow, violations
}
