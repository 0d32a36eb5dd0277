package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBaselineSeverity(t *testing.T) {
	cfg := NewConfig()

	var got Severity
	cfg.Apply(RuleNoTrailingSpaces, func(sev Severity) []Violation {
		got = sev
		return nil
	})
	assert.Equal(t, SeverityWarning, got)

	cfg.Apply(RuleUniqueNames, func(sev Severity) []Violation {
		got = sev
		return nil
	})
	assert.Equal(t, SeverityError, got)
}

func TestApplyOnNilConfig(t *testing.T) {
	var cfg *Config

	var got Severity
	violations := cfg.Apply(RuleKeysValid, func(sev Severity) []Violation {
		got = sev
		return []Violation{{Severity: sev, Rule: RuleKeysValid}}
	})
	assert.Equal(t, SeverityError, got)
	assert.Len(t, violations, 1)
}

func TestApplyForcedSeverity(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.ForceError(RuleNoTrailingSpaces))
	require.NoError(t, cfg.ForceWarning(RuleUniqueNames))

	var got Severity
	cfg.Apply(RuleNoTrailingSpaces, func(sev Severity) []Violation {
		got = sev
		return nil
	})
	assert.Equal(t, SeverityError, got)

	cfg.Apply(RuleUniqueNames, func(sev Severity) []Violation {
		got = sev
		return nil
	})
	assert.Equal(t, SeverityWarning, got)
}

func TestApplySkippedRuleNeverRuns(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Skip(RulePossibleTypo))

	ran := false
	violations := cfg.Apply(RulePossibleTypo, func(Severity) []Violation {
		ran = true
		return []Violation{{}}
	})
	assert.False(t, ran)
	assert.Empty(t, violations)
}

func TestConfigResolvesAliases(t *testing.T) {
	cfg, err := ConfigFromNames([]string{"e004"}, nil, []string{"e007"})
	require.NoError(t, err)

	var got Severity
	cfg.Apply(RuleNoTrailingSpaces, func(sev Severity) []Violation {
		got = sev
		return nil
	})
	assert.Equal(t, SeverityError, got)

	assert.Empty(t, cfg.Apply(RulePossibleTypo, func(Severity) []Violation {
		return []Violation{{}}
	}))
}

func TestConfigRejectsUnknownRule(t *testing.T) {
	_, err := ConfigFromNames(nil, []string{"no_such_rule"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find lint with name or id 'no_such_rule'")
	assert.Contains(t, err.Error(), RuleKeywordsValid)
}

func TestLastOverrideWins(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.ForceError(RuleNoTrailingSpaces))
	require.NoError(t, cfg.Skip("e004"))

	assert.Empty(t, cfg.Apply(RuleNoTrailingSpaces, func(Severity) []Violation {
		return []Violation{{}}
	}))
}
