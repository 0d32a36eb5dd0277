package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemakit/yml2block/internal/block"
	"github.com/schemakit/yml2block/internal/lint"
)

var validYAML = []byte(`metadataBlock:
  - name: demoBlock
    displayName: Demo Block
datasetField:
  - name: demoField
    title: Demo Field
    description: A field
    fieldType: text
    displayOrder: 1
    advancedSearchField: true
    allowControlledVocabulary: false
    allowmultiples: false
    facetable: true
    displayoncreate: true
    required: false
    metadatablock_id: demoBlock
`)

func TestParseYAMLValidBlock(t *testing.T) {
	doc, longestRow, violations := ParseYAML(validYAML, nil)

	require.NotNil(t, doc)
	assert.Empty(t, violations)
	assert.Equal(t, 13, longestRow)
	assert.Equal(t, []string{"metadataBlock", "datasetField"}, doc.Keywords())

	b, ok := doc.Section(block.KeywordDatasetField)
	require.True(t, ok)
	require.True(t, b.IsList)
	require.Len(t, b.Records, 1)

	rec := b.Records[0]
	name, ok := rec.Get("name")
	require.True(t, ok)
	assert.Equal(t, "demoField", name.Render())
	assert.Equal(t, 5, name.Pos.Line)

	order, ok := rec.Get("displayOrder")
	require.True(t, ok)
	assert.Equal(t, block.IntValue, order.Kind)

	multi, ok := rec.Get("allowmultiples")
	require.True(t, ok)
	assert.Equal(t, block.BoolValue, multi.Kind)
	assert.False(t, multi.Bool)
}

func TestParseYAMLMalformedDocument(t *testing.T) {
	doc, _, violations := ParseYAML([]byte("metadataBlock: [unclosed"), nil)

	assert.Nil(t, doc)
	require.Len(t, violations, 1)
	assert.Equal(t, lint.SeverityError, violations[0].Severity)
	assert.Contains(t, violations[0].Message, "Malformed YAML document")
}

func TestParseYAMLEmptyFile(t *testing.T) {
	doc, longestRow, violations := ParseYAML(nil, nil)

	require.NotNil(t, doc)
	assert.Equal(t, 0, longestRow)
	// An empty document still runs the keyword rules.
	require.NotEmpty(t, violations)
	assert.Equal(t, lint.RuleKeywordsValid, violations[0].Rule)
}

func TestParseYAMLNonMappingRoot(t *testing.T) {
	doc, _, violations := ParseYAML([]byte("- just\n- a\n- list\n"), nil)

	assert.Nil(t, doc)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "not a mapping")
}

func TestParseYAMLDuplicateKeywordStopsValidation(t *testing.T) {
	data := []byte(`metadataBlock:
  - name: demoBlock
metadataBlock:
  - name: demoBlockAgain
`)
	_, _, violations := ParseYAML(data, nil)

	require.Len(t, violations, 1)
	assert.Equal(t, lint.RuleKeywordsUnique, violations[0].Rule)
	assert.Equal(t, lint.SeverityError, violations[0].Severity)
	assert.Contains(t, violations[0].Message, "Keyword 'metadataBlock' is defined twice")
	assert.Equal(t, 3, violations[0].Line)
}

func TestParseYAMLNonListSection(t *testing.T) {
	data := []byte(`metadataBlock:
  name: demoBlock
datasetField: []
`)
	doc, _, violations := ParseYAML(data, nil)

	require.NotNil(t, doc)
	rules := make(map[string]bool)
	for _, v := range violations {
		rules[v.Rule] = true
	}
	assert.True(t, rules[lint.RuleBlockIsList])
}

func TestParseYAMLFlagsSubstructures(t *testing.T) {
	data := []byte(`metadataBlock:
  - name: demoBlock
    displayName:
      nested: mapping
datasetField: []
`)
	_, _, violations := ParseYAML(data, nil)

	found := false
	for _, v := range violations {
		if v.Rule == lint.RuleNoSubstructures {
			found = true
			assert.Contains(t, v.Message, "substructure of type mapping")
		}
	}
	assert.True(t, found)
}

func TestParseYAMLNullValues(t *testing.T) {
	data := []byte(`metadataBlock:
  - name: demoBlock
    displayName: Demo
    dataverseAlias:
datasetField: []
`)
	doc, _, _ := ParseYAML(data, nil)

	b, ok := doc.Section(block.KeywordMetadataBlock)
	require.True(t, ok)
	require.Len(t, b.Records, 1)

	alias, ok := b.Records[0].Get("dataverseAlias")
	require.True(t, ok)
	assert.True(t, alias.IsNull())
}
