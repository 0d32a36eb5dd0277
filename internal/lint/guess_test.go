package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessInputTypeKnownExtensions(t *testing.T) {
	kind, violations := GuessInputType("blocks/citation.tsv", nil)
	assert.Equal(t, InputTSV, kind)
	assert.Empty(t, violations)

	kind, violations = GuessInputType("citation.yml", nil)
	assert.Equal(t, InputYAML, kind)
	assert.Empty(t, violations)

	kind, violations = GuessInputType("CITATION.YAML", nil)
	assert.Equal(t, InputYAML, kind)
	assert.Empty(t, violations)
}

func TestGuessInputTypeCSVWarns(t *testing.T) {
	kind, violations := GuessInputType("citation.csv", nil)
	assert.Equal(t, InputCSV, kind)
	require.Len(t, violations, 1)
	assert.Equal(t, SeverityWarning, violations[0].Severity)
	assert.Contains(t, violations[0].Message, "treated as tsv")
}

func TestGuessInputTypeUnknownExtension(t *testing.T) {
	kind, violations := GuessInputType("citation.json", nil)
	assert.Equal(t, "", kind)
	require.Len(t, violations, 1)
	assert.Equal(t, SeverityError, violations[0].Severity)
	assert.Contains(t, violations[0].Message, "'.json'")
}

func TestGuessInputTypeSkippable(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Skip("f001"))

	kind, violations := GuessInputType("citation.csv", cfg)
	assert.Equal(t, InputCSV, kind)
	assert.Empty(t, violations)
}
