package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/schemakit/yml2block/internal/block"
	"github.com/schemakit/yml2block/internal/lint"
)

// ReadTSV loads a Dataverse TSV metadata block file, validates it, and
// returns the document, the layout metric, and all violations. When the
// section split is ambiguous the file degrades to an empty document; the
// keyword rules then report the missing sections with a clearer message.
func ReadTSV(path string, cfg *lint.Config) (*block.Document, int, []lint.Violation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, longestRow, violations := ParseTSV(data, cfg)
	return doc, longestRow, violations, nil
}

// ParseTSV builds and validates a document from raw TSV bytes.
func ParseTSV(data []byte, cfg *lint.Config) (*block.Document, int, []lint.Violation) {
	lines := splitLines(string(data))
	result, violations := SplitSections(lines, cfg)

	doc := &block.Document{}
	if !result.Ambiguous() {
		for i, section := range result.Sections {
			if section == nil {
				continue
			}
			keyword, b, sectionViolations := parseSection(section, result.Starts[i])
			violations = append(violations, sectionViolations...)
			doc.Sections = append(doc.Sections, block.Section{Keyword: keyword, Block: b})
		}
	}

	longestRow, lintViolations := lint.Validate(doc, cfg)
	return doc, longestRow, append(violations, lintViolations...)
}

// splitLines splits the raw file into lines, tolerating CRLF endings and a
// trailing newline.
func splitLines(data string) []string {
	data = strings.TrimSuffix(data, "\n")
	if data == "" {
		return nil
	}
	lines := strings.Split(data, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// parseSection converts one marker-inclusive section slice into a keyword
// and a block. start is the 0-based index of the marker line in the file;
// record positions are synthesized from row indices (no column available).
func parseSection(section []string, start int) (string, block.Block, []lint.Violation) {
	keyword, headers := parseHeader(section[0])
	b := block.Block{
		IsList: true,
		Pos:    block.Pos{Line: start + 1},
	}

	var violations []lint.Violation
	for i, line := range section[1:] {
		fileLine := start + 1 + i + 1
		if strings.TrimSpace(strings.ReplaceAll(line, "\t", "")) == "" {
			continue
		}
		cells, err := parseRow(line)
		if err != nil {
			violations = append(violations, lint.Violation{
				Severity: lint.SeverityError,
				Rule:     lint.RuleBlockIsList,
				Message:  fmt.Sprintf("Row cannot be parsed as tab-separated values: %v", err),
				Line:     fileLine,
			})
			continue
		}
		b.Records = append(b.Records, buildTSVRecord(headers, cells, fileLine))
	}

	return keyword, b, violations
}

// parseHeader splits the marker line into the section keyword and the
// header field names. Header names are stripped of stray spaces: several
// metadata blocks shipped by Dataverse itself pad the fieldType column, and
// rejecting those files would make the linter useless against upstream
// data. Trailing empty header cells are layout padding, not fields.
func parseHeader(line string) (string, []string) {
	cells := strings.Split(strings.TrimRight(line, "\n\t"), "\t")
	keyword := strings.TrimSpace(strings.TrimPrefix(cells[0], sectionMarker))

	var headers []string
	for _, cell := range cells[1:] {
		headers = append(headers, strings.TrimSpace(cell))
	}
	for len(headers) > 0 && headers[len(headers)-1] == "" {
		headers = headers[:len(headers)-1]
	}
	return keyword, headers
}

// parseRow delegates the actual field decoding to encoding/csv with a tab
// separator, which handles quoting rules for us.
func parseRow(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	return r.Read()
}

// buildTSVRecord pairs row cells with header names. The leading cell is the
// implicit key column and carries no field; cells beyond the header width
// are padding. A short row simply yields fewer fields, which the
// required-keys rule reports.
func buildTSVRecord(headers, cells []string, fileLine int) block.Record {
	rec := block.Record{Pos: block.Pos{Line: fileLine}}
	values := cells
	if len(values) > 0 {
		values = values[1:]
	}
	for i, name := range headers {
		if i >= len(values) {
			break
		}
		rec.Fields = append(rec.Fields, block.Field{
			Name:  name,
			Value: tsvValue(values[i]).At(fileLine, 0),
		})
	}
	return rec
}

// tsvValue maps a TSV cell to the tagged scalar variant: the writer's
// TRUE/FALSE/"" renderings round-trip back to bool and null, everything
// else stays a string.
func tsvValue(cell string) block.Value {
	switch cell {
	case "TRUE":
		return block.Bool(true)
	case "FALSE":
		return block.Bool(false)
	case "":
		return block.Null()
	default:
		return block.String(cell)
	}
}
