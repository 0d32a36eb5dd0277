package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemakit/yml2block/internal/block"
)

func TestWriteRendersScalarsAndPads(t *testing.T) {
	doc := &block.Document{Sections: []block.Section{
		{
			Keyword: block.KeywordDatasetField,
			Block: block.Block{IsList: true, Records: []block.Record{
				{Fields: []block.Field{
					{Name: "name", Value: block.String("demoField")},
					{Name: "required", Value: block.Bool(true)},
					{Name: "parent", Value: block.Null()},
				}},
			}},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, 5))

	assert.Equal(t,
		"#datasetField\tname\trequired\tparent\t\n"+
			"\tdemoField\tTRUE\t\t\n",
		buf.String())
}

func TestWriteCanonicalSectionOrder(t *testing.T) {
	doc := &block.Document{Sections: []block.Section{
		{
			Keyword: block.KeywordDatasetField,
			Block: block.Block{IsList: true, Records: []block.Record{
				{Fields: []block.Field{{Name: "name", Value: block.String("demoField")}}},
			}},
		},
		{
			Keyword: block.KeywordMetadataBlock,
			Block: block.Block{IsList: true, Records: []block.Record{
				{Fields: []block.Field{{Name: "name", Value: block.String("demoBlock")}}},
			}},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, 2))

	assert.Equal(t,
		"#metadataBlock\tname\n"+
			"\tdemoBlock\n"+
			"#datasetField\tname\n"+
			"\tdemoField\n",
		buf.String())
}

func TestWriteHeaderUnionAcrossRecords(t *testing.T) {
	// Field names are collected across all records in first-seen order, so a
	// field missing from one record still gets its column.
	doc := &block.Document{Sections: []block.Section{
		{
			Keyword: block.KeywordMetadataBlock,
			Block: block.Block{IsList: true, Records: []block.Record{
				{Fields: []block.Field{
					{Name: "name", Value: block.String("a")},
					{Name: "displayName", Value: block.String("A")},
				}},
				{Fields: []block.Field{
					{Name: "name", Value: block.String("b")},
					{Name: "blockURI", Value: block.String("https://example.org/b")},
				}},
			}},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, 4))

	assert.Equal(t,
		"#metadataBlock\tname\tdisplayName\tblockURI\n"+
			"\ta\tA\t\n"+
			"\tb\t\thttps://example.org/b\n",
		buf.String())
}

func TestWriteSkipsAbsentSections(t *testing.T) {
	doc := &block.Document{Sections: []block.Section{
		{
			Keyword: block.KeywordMetadataBlock,
			Block: block.Block{IsList: true, Records: []block.Record{
				{Fields: []block.Field{{Name: "name", Value: block.String("demo")}}},
			}},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, 2))

	assert.NotContains(t, buf.String(), "#datasetField")
	assert.NotContains(t, buf.String(), "#controlledVocabulary")
}

func TestWriteFileCreatesOutput(t *testing.T) {
	doc := &block.Document{Sections: []block.Section{
		{
			Keyword: block.KeywordMetadataBlock,
			Block: block.Block{IsList: true, Records: []block.Record{
				{Fields: []block.Field{{Name: "name", Value: block.String("demo")}}},
			}},
		},
	}}

	path := filepath.Join(t.TempDir(), "demo.tsv")
	require.NoError(t, WriteFile(path, doc, 2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#metadataBlock\tname\n\tdemo\n", string(data))
}
