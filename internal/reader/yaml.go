package reader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schemakit/yml2block/internal/block"
	"github.com/schemakit/yml2block/internal/lint"
)

// ReadYAML loads a YAML metadata block file, validates it, and returns the
// document, the layout metric, and all violations. A duplicate top-level
// keyword or a fundamentally malformed document yields a single synthetic
// ERROR violation and skips validation; only an unreadable file is an error.
func ReadYAML(path string, cfg *lint.Config) (*block.Document, int, []lint.Violation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, longestRow, violations := ParseYAML(data, cfg)
	return doc, longestRow, violations, nil
}

// ParseYAML builds and validates a document from raw YAML bytes.
func ParseYAML(data []byte, cfg *lint.Config) (*block.Document, int, []lint.Violation) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, 0, []lint.Violation{{
			Severity: lint.SeverityError,
			Rule:     lint.RuleKeywordsValid,
			Message:  fmt.Sprintf("Malformed YAML document: %v", err),
		}}
	}

	mapping := documentMapping(&root)
	if mapping == nil {
		doc := &block.Document{}
		longestRow, violations := lint.Validate(doc, cfg)
		return doc, longestRow, violations
	}
	if mapping.Kind != yaml.MappingNode {
		return nil, 0, []lint.Violation{{
			Severity: lint.SeverityError,
			Rule:     lint.RuleKeywordsValid,
			Message:  "Top level of the document is not a mapping of section keywords.",
			Line:     mapping.Line,
			Column:   mapping.Column,
		}}
	}

	doc, parseViolation := buildDocument(mapping)
	if parseViolation != nil {
		return doc, 0, []lint.Violation{*parseViolation}
	}

	longestRow, violations := lint.Validate(doc, cfg)
	return doc, longestRow, violations
}

// documentMapping unwraps the document node; nil for an empty file.
func documentMapping(root *yaml.Node) *yaml.Node {
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		return root.Content[0]
	}
	if root.Kind == 0 {
		return nil
	}
	return root
}

// buildDocument converts the root mapping into a Document. A duplicate
// section keyword is a parse failure: the first occurrence is kept and a
// synthetic ERROR violation is returned so no further validation runs.
func buildDocument(mapping *yaml.Node) (*block.Document, *lint.Violation) {
	doc := &block.Document{}
	seen := make(map[string]int)

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valueNode := mapping.Content[i+1]
		keyword := keyNode.Value

		if firstLine, dup := seen[keyword]; dup {
			return doc, &lint.Violation{
				Severity: lint.SeverityError,
				Rule:     lint.RuleKeywordsUnique,
				Message: fmt.Sprintf("Keyword '%s' is defined twice (first definition on line %d).",
					keyword, firstLine),
				Line:   keyNode.Line,
				Column: keyNode.Column,
			}
		}
		seen[keyword] = keyNode.Line

		doc.Sections = append(doc.Sections, block.Section{
			Keyword: keyword,
			Block:   buildBlock(valueNode),
		})
	}

	return doc, nil
}

// buildBlock converts a section value node. Anything that is not a sequence
// becomes a non-list block for the block_is_list rule to report.
func buildBlock(node *yaml.Node) block.Block {
	node = resolveAlias(node)
	if node.Kind != yaml.SequenceNode {
		return block.Block{
			IsList: false,
			Pos:    block.Pos{Line: node.Line, Column: node.Column},
		}
	}

	b := block.Block{
		IsList: true,
		Pos:    block.Pos{Line: node.Line, Column: node.Column},
	}
	for _, item := range node.Content {
		b.Records = append(b.Records, buildRecord(resolveAlias(item)))
	}
	return b
}

// buildRecord converts one list item. Non-mapping items become empty records
// so the required-keys rule points at them.
func buildRecord(node *yaml.Node) block.Record {
	rec := block.Record{Pos: block.Pos{Line: node.Line, Column: node.Column}}
	if node.Kind != yaml.MappingNode {
		return rec
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := resolveAlias(node.Content[i+1])
		rec.Fields = append(rec.Fields, block.Field{
			Name:  keyNode.Value,
			Value: buildValue(valueNode),
		})
	}
	return rec
}

// buildValue converts a field value node into the tagged scalar variant,
// marking nested structures so the flat-grammar rule can flag them.
func buildValue(node *yaml.Node) block.Value {
	switch node.Kind {
	case yaml.MappingNode:
		return block.Value{Kind: block.MappingValue}.At(node.Line, node.Column)
	case yaml.SequenceNode:
		return block.Value{Kind: block.ListValue}.At(node.Line, node.Column)
	}

	var decoded any
	if err := node.Decode(&decoded); err != nil {
		return block.String(node.Value).At(node.Line, node.Column)
	}
	switch v := decoded.(type) {
	case nil:
		return block.Null().At(node.Line, node.Column)
	case bool:
		return block.Bool(v).At(node.Line, node.Column)
	case int:
		return block.Int(int64(v)).At(node.Line, node.Column)
	case int64:
		return block.Int(v).At(node.Line, node.Column)
	case uint64:
		return block.Int(int64(v)).At(node.Line, node.Column)
	case float64:
		return block.Float(v).At(node.Line, node.Column)
	case string:
		return block.String(v).At(node.Line, node.Column)
	default:
		return block.String(fmt.Sprint(v)).At(node.Line, node.Column)
	}
}

// resolveAlias follows alias nodes to their anchor target.
func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
