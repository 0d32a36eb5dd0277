package lint

import (
	"fmt"
	"strings"

	"github.com/schemakit/yml2block/internal/block"
)

// Rule identifiers. Every rule has a full name and a short alias (see
// ruleAliases); both resolve in override configuration.
const (
	RuleKeywordsValid       = "keywords_valid"
	RuleKeywordsUnique      = "keywords_unique"
	RuleUniqueNames         = "unique_names"
	RuleBlockIsList         = "block_is_list"
	RuleUniqueTitles        = "unique_titles"
	RuleKeysValid           = "keys_valid"
	RuleRequiredKeysPresent = "required_keys_present"
	RuleNoSubstructures     = "no_substructures"
	RuleNoTrailingSpaces    = "no_trailing_spaces"
	RuleNestedCompound      = "nested_compound_metadata"
	RuleNestedCompoundVocab = "nested_compound_metadata_controlled_vocab"
	RulePossibleTypo        = "possible_typo_in_entry"
	RuleIdentifyBreakPoints = "identify_break_points"
	RuleGuessInputType      = "guess_input_type"
)

// ruleAliases maps short codes to full rule names. The k/b/e prefixes group
// the rules by scope: keyword level, block level, entry level. Reader-side
// rules carry t (tabular) and f (file) prefixes.
var ruleAliases = map[string]string{
	"k001": RuleKeywordsValid,
	"k002": RuleKeywordsUnique,
	"b001": RuleUniqueNames,
	"b002": RuleBlockIsList,
	"b003": RuleUniqueTitles,
	"e001": RuleKeysValid,
	"e002": RuleRequiredKeysPresent,
	"e003": RuleNoSubstructures,
	"e004": RuleNoTrailingSpaces,
	"e005": RuleNestedCompound,
	"e006": RuleNestedCompoundVocab,
	"e007": RulePossibleTypo,
	"t001": RuleIdentifyBreakPoints,
	"f001": RuleGuessInputType,
}

// baselineSeverities records the default level of every rule. Overrides can
// raise, lower, or skip any of them for a whole run.
var baselineSeverities = map[string]Severity{
	RuleKeywordsValid:       SeverityError,
	RuleKeywordsUnique:      SeverityError,
	RuleUniqueNames:         SeverityError,
	RuleBlockIsList:         SeverityError,
	RuleUniqueTitles:        SeverityError,
	RuleKeysValid:           SeverityError,
	RuleRequiredKeysPresent: SeverityError,
	RuleNoSubstructures:     SeverityError,
	RuleNoTrailingSpaces:    SeverityWarning,
	RuleNestedCompound:      SeverityWarning,
	RuleNestedCompoundVocab: SeverityError,
	RulePossibleTypo:        SeverityWarning,
	RuleIdentifyBreakPoints: SeverityWarning,
	RuleGuessInputType:      SeverityError,
}

// RuleNames returns every full rule name followed by its aliases, for the
// "valid names" listing shown on a bad override identifier.
func RuleNames() []string {
	names := make([]string, 0, len(baselineSeverities)+len(ruleAliases))
	for name := range baselineSeverities {
		names = append(names, name)
	}
	for alias := range ruleAliases {
		names = append(names, alias)
	}
	return names
}

// keywordsValid checks that the set of top-level keywords equals either the
// full keyword set or the required subset. Anything else yields exactly one
// violation carrying rename suggestions.
func keywordsValid(keywords []string, sev Severity) []Violation {
	if sameKeywordSet(keywords, block.PermissibleKeywords) ||
		sameKeywordSet(keywords, block.RequiredKeywords) {
		return nil
	}
	return []Violation{{
		Severity: sev,
		Rule:     RuleKeywordsValid,
		Message:  fixKeywordsValid(keywords),
	}}
}

// keywordsUnique checks that no top-level keyword appears twice. The YAML
// reader already rejects duplicate mapping keys; this covers the tabular
// path and acts as a second layer for hand-built documents.
func keywordsUnique(keywords []string, sev Severity) []Violation {
	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		if seen[kw] {
			return []Violation{{
				Severity: sev,
				Rule:     RuleKeywordsUnique,
				Message:  fmt.Sprintf("Keyword list '%s' contains duplicate keys.", strings.Join(keywords, ", ")),
			}}
		}
		seen[kw] = true
	}
	return nil
}

func sameKeywordSet(keywords, want []string) bool {
	if len(unique(keywords)) != len(want) {
		return false
	}
	wanted := make(map[string]bool, len(want))
	for _, kw := range want {
		wanted[kw] = true
	}
	for _, kw := range keywords {
		if !wanted[kw] {
			return false
		}
	}
	return true
}

func unique(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

// blockIsList checks that a section's value is list-shaped.
func blockIsList(b block.Block, sev Severity) []Violation {
	if b.IsList {
		return nil
	}
	return []Violation{{
		Severity: sev,
		Rule:     RuleBlockIsList,
		Message:  "Entry is not a list",
		Line:     b.Pos.Line,
		Column:   b.Pos.Column,
	}}
}

// uniqueNames checks that each "name" occurs only once within a
// metadataBlock or datasetField section: one violation per distinct
// duplicated name, listing every occurrence.
func uniqueNames(b block.Block, keyword string, sev Severity) []Violation {
	if keyword != block.KeywordMetadataBlock && keyword != block.KeywordDatasetField {
		return nil
	}
	return duplicateValueViolations(b, sev, RuleUniqueNames,
		func(r block.Record) (string, string, bool) {
			v, ok := r.Get("name")
			if !ok {
				return "", "", false
			}
			name := v.Render()
			return name, name, true
		},
		"Name '%s' occurs %d times: %s. Names have to be unique.")
}

// uniqueTitles checks that each (title, parent) pair occurs only once within
// datasetField. Scoping by parent lets fields nested under different
// compounds legitimately share a title.
func uniqueTitles(b block.Block, keyword string, sev Severity) []Violation {
	if keyword != block.KeywordDatasetField {
		return nil
	}
	return duplicateValueViolations(b, sev, RuleUniqueTitles,
		func(r block.Record) (string, string, bool) {
			title, ok := r.Get("title")
			if !ok {
				return "", "", false
			}
			parent, _ := r.Get("parent")
			return title.Render() + "\x00" + parent.Render(), title.Render(), true
		},
		"Title '%s' occurs %d times: %s. Titles should be unique.")
}

// duplicateValueViolations is the shared body of the uniqueness lints: group
// records by key, report each key with more than one occurrence.
func duplicateValueViolations(b block.Block, sev Severity, rule string,
	keyOf func(block.Record) (key, display string, ok bool), format string) []Violation {

	type group struct {
		display string
		lines   []string
	}
	var order []string
	groups := make(map[string]*group)

	for _, rec := range b.Records {
		key, display, ok := keyOf(rec)
		if !ok {
			continue
		}
		g := groups[key]
		if g == nil {
			g = &group{display: display}
			groups[key] = g
			order = append(order, key)
		}
		g.lines = append(g.lines, fmt.Sprintf("line %d", rec.Pos.Line))
	}

	var violations []Violation
	for _, key := range order {
		g := groups[key]
		if len(g.lines) > 1 {
			violations = append(violations, Violation{
				Severity: sev,
				Rule:     rule,
				Message:  fmt.Sprintf(format, g.display, len(g.lines), strings.Join(g.lines, ", ")),
			})
		}
	}
	return violations
}

// keysValid checks that every field name in the record is permitted for the
// section kind. Unknown names get a rename suggestion when one is close
// enough.
func keysValid(rec block.Record, keyword string, sev Severity) []Violation {
	permitted, ok := block.PermissibleKeys[keyword]
	if !ok {
		return []Violation{{
			Severity: sev,
			Rule:     RuleKeysValid,
			Message:  fmt.Sprintf("Cannot check entry for invalid keyword '%s'. Skipping entry.", keyword),
			Line:     rec.Pos.Line,
			Column:   rec.Pos.Column,
		}}
	}

	allowed := make(map[string]bool, len(permitted))
	for _, k := range permitted {
		allowed[k] = true
	}

	var violations []Violation
	for _, f := range rec.Fields {
		if !allowed[f.Name] {
			violations = append(violations, Violation{
				Severity: sev,
				Rule:     RuleKeysValid,
				Message:  fixKeysValid(f.Name, rec, keyword, permitted),
				Line:     f.Value.Pos.Line,
				Column:   f.Value.Pos.Column,
			})
		}
	}
	return violations
}

// requiredKeysPresent checks that every required field of the section kind
// is present: one violation per record naming all missing fields at once.
func requiredKeysPresent(rec block.Record, keyword string, sev Severity) []Violation {
	required, ok := block.RequiredKeys[keyword]
	if !ok {
		return []Violation{{
			Severity: sev,
			Rule:     RuleRequiredKeysPresent,
			Message:  fmt.Sprintf("Cannot check entry for invalid keyword '%s'. Skipping entry.", keyword),
			Line:     rec.Pos.Line,
			Column:   rec.Pos.Column,
		}}
	}

	var missing []string
	for _, key := range required {
		if !rec.Has(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return []Violation{{
		Severity: sev,
		Rule:     RuleRequiredKeysPresent,
		Message:  fixRequiredKeysPresent(missing, rec, keyword),
		Line:     rec.Pos.Line,
		Column:   rec.Pos.Column,
	}}
}

// noSubstructures checks the flat-grammar invariant: no field value may be a
// nested mapping or list.
func noSubstructures(rec block.Record, keyword string, sev Severity) []Violation {
	var violations []Violation
	for _, f := range rec.Fields {
		if f.Value.IsNested() {
			violations = append(violations, Violation{
				Severity: sev,
				Rule:     RuleNoSubstructures,
				Message: fmt.Sprintf("Key %s in block %s has a substructure of type %s. Only strings, booleans, and numericals are allowed here.",
					f.Name, keyword, f.Value.Kind),
				Line:   f.Value.Pos.Line,
				Column: f.Value.Pos.Column,
			})
		}
	}
	return violations
}

// noTrailingSpaces checks the per-kind allow-list of string-valued fields
// for trailing whitespace. A formatting nit, not a structural break, hence
// the WARNING baseline.
func noTrailingSpaces(rec block.Record, keyword string, sev Severity) []Violation {
	checked, ok := block.TrailingSpaceChecked[keyword]
	if !ok {
		// Invalid keywords are flagged by keywords_valid; nothing to do here.
		return nil
	}

	var violations []Violation
	for _, key := range checked {
		v, ok := rec.Get(key)
		if !ok {
			// Missing required fields are flagged by required_keys_present.
			continue
		}
		rendered := v.Render()
		if rendered != "" && strings.HasSuffix(rendered, " ") {
			violations = append(violations, Violation{
				Severity: sev,
				Rule:     RuleNoTrailingSpaces,
				Message:  fmt.Sprintf("The entry '%s' has one or more trailing spaces.", rendered),
				Line:     v.Pos.Line,
				Column:   v.Pos.Column,
			})
		}
	}
	return violations
}

// nestedCompoundMetadata flags datasetField records that are children of a
// compound field, allow multiple values, and do not use a controlled
// vocabulary. Dataverse's UI cannot express this shape at all.
func nestedCompoundMetadata(rec block.Record, keyword string, sev Severity) []Violation {
	return nestedCompoundCheck(rec, keyword, sev, false, RuleNestedCompound)
}

// nestedCompoundMetadataControlledVocab flags the same shape with a
// controlled vocabulary attached, a stricter nesting case Dataverse does not
// support either.
func nestedCompoundMetadataControlledVocab(rec block.Record, keyword string, sev Severity) []Violation {
	return nestedCompoundCheck(rec, keyword, sev, true, RuleNestedCompoundVocab)
}

func nestedCompoundCheck(rec block.Record, keyword string, sev Severity, wantVocab bool, rule string) []Violation {
	if keyword != block.KeywordDatasetField {
		return nil
	}
	parent, ok := rec.Get("parent")
	if !ok || parent.IsNull() {
		return nil
	}
	multiples, ok := rec.Get("allowmultiples")
	if !ok || multiples.Kind != block.BoolValue || !multiples.Bool {
		return nil
	}
	vocab, ok := rec.Get("allowControlledVocabulary")
	if !ok || vocab.Kind != block.BoolValue || vocab.Bool != wantVocab {
		return nil
	}
	return []Violation{{
		Severity: sev,
		Rule:     rule,
		Message:  fmt.Sprintf("The entry '%s' allows multiple entries in a nested field.", block.Describe(rec, keyword)),
		Line:     multiples.Pos.Line,
		Column:   multiples.Pos.Column,
	}}
}

// possibleTypoInEntry runs the prefix-clustering typo heuristic over the
// "name" values of a section. Findings are heuristic by nature and stay at
// WARNING level regardless of how confident the distance looks.
func possibleTypoInEntry(b block.Block, keyword string, sev Severity) []Violation {
	if keyword != block.KeywordMetadataBlock && keyword != block.KeywordDatasetField {
		return nil
	}
	var names []string
	for _, rec := range b.Records {
		if v, ok := rec.Get("name"); ok {
			names = append(names, v.Render())
		}
	}

	candidates := EstimateTypos(names, DefaultMinPrefixLength, DefaultDistanceThreshold)
	violations := make([]Violation, 0, len(candidates))
	for _, c := range candidates {
		violations = append(violations, Violation{
			Severity: sev,
			Rule:     RulePossibleTypo,
			Message: fmt.Sprintf("Field name '%s' might be a typo of the prefix '%s' shared by: %s.",
				c.Singleton.Members[0], c.Candidate.Prefix, strings.Join(c.Candidate.Members, ", ")),
		})
	}
	return violations
}
