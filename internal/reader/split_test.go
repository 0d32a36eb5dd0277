package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemakit/yml2block/internal/lint"
)

func TestSplitThreeSections(t *testing.T) {
	lines := []string{
		"#metadataBlock\tname",
		"\tdemoBlock",
		"#datasetField\tname",
		"\tdemoField",
		"\totherField",
		"#controlledVocabulary\tDatasetField",
		"\tdemoField",
	}

	result, violations := SplitSections(lines, nil)

	assert.Empty(t, violations)
	require.False(t, result.Ambiguous())
	assert.Equal(t, lines[0:2], result.Sections[0])
	assert.Equal(t, lines[2:5], result.Sections[1])
	assert.Equal(t, lines[5:7], result.Sections[2])
	assert.Equal(t, [3]int{0, 2, 5}, result.Starts)
}

func TestSplitTwoSections(t *testing.T) {
	lines := []string{
		"#metadataBlock\tname",
		"\tdemoBlock",
		"#datasetField\tname",
		"\tdemoField",
	}

	result, violations := SplitSections(lines, nil)

	assert.Empty(t, violations)
	require.False(t, result.Ambiguous())
	assert.Equal(t, lines[0:2], result.Sections[0])
	assert.Equal(t, lines[2:4], result.Sections[1])
	// Absent vocabulary section stays nil, it is not an empty section.
	assert.Nil(t, result.Sections[2])
}

func TestSplitSectionsReconstructInput(t *testing.T) {
	lines := []string{
		"#metadataBlock\tname",
		"#datasetField\tname",
		"\tdemoField",
		"#controlledVocabulary\tDatasetField",
	}

	result, _ := SplitSections(lines, nil)

	var rejoined []string
	for _, section := range result.Sections {
		rejoined = append(rejoined, section...)
	}
	assert.Equal(t, lines, rejoined)
	// Consecutive markers yield a valid empty section.
	assert.Len(t, result.Sections[0], 1)
}

func TestSplitAmbiguousMarkerCounts(t *testing.T) {
	cases := map[string][]string{
		"no markers":   {"name\tvalue", "demo\t1"},
		"one marker":   {"#metadataBlock\tname", "\tdemo"},
		"four markers": {"#a", "#b", "#c", "#d"},
	}

	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			result, violations := SplitSections(lines, nil)

			assert.True(t, result.Ambiguous())
			assert.Equal(t, lines, result.Passthrough)
			require.Len(t, violations, 1)
			assert.Equal(t, lint.SeverityWarning, violations[0].Severity)
			assert.Equal(t, lint.RuleIdentifyBreakPoints, violations[0].Rule)
		})
	}
}

func TestSplitRespectsSkipOverride(t *testing.T) {
	cfg := lint.NewConfig()
	require.NoError(t, cfg.Skip(lint.RuleIdentifyBreakPoints))

	result, violations := SplitSections([]string{"name\tvalue"}, cfg)

	assert.True(t, result.Ambiguous())
	assert.Empty(t, violations)
}
