package lint

import (
	"fmt"
	"sort"
	"strings"
)

// override is a resolved per-rule adjustment: either skip the rule entirely
// or pin it at a fixed severity for the whole run.
type override struct {
	skip     bool
	severity Severity
}

// Config holds the per-rule override table for one invocation. It is built
// once from user-supplied identifiers and never changes afterwards; Apply
// consults it on every rule dispatch.
type Config struct {
	overrides map[string]override
}

// NewConfig creates a config with no overrides: every rule runs at its
// baseline severity.
func NewConfig() *Config {
	return &Config{overrides: make(map[string]override)}
}

// ConfigFromNames builds a config from identifier lists: rules to force to
// ERROR, rules to force to WARNING, and rules to skip. Identifiers may be
// full rule names or short aliases. An unresolvable identifier is a fatal
// configuration error; the caller must report it before processing any file.
func ConfigFromNames(errorRules, warnRules, skipRules []string) (*Config, error) {
	cfg := NewConfig()
	for _, name := range errorRules {
		if err := cfg.ForceError(name); err != nil {
			return nil, err
		}
	}
	for _, name := range warnRules {
		if err := cfg.ForceWarning(name); err != nil {
			return nil, err
		}
	}
	for _, name := range skipRules {
		if err := cfg.Skip(name); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// ForceError pins a rule at ERROR severity.
func (c *Config) ForceError(name string) error {
	return c.set(name, override{severity: SeverityError})
}

// ForceWarning pins a rule at WARNING severity.
func (c *Config) ForceWarning(name string) error {
	return c.set(name, override{severity: SeverityWarning})
}

// Skip replaces a rule with a no-op that reports nothing for any input.
func (c *Config) Skip(name string) error {
	return c.set(name, override{skip: true})
}

func (c *Config) set(name string, ov override) error {
	canonical, err := resolveRuleName(name)
	if err != nil {
		return err
	}
	c.overrides[canonical] = ov
	return nil
}

// resolveRuleName tries the full rule name first, then the short alias.
func resolveRuleName(name string) (string, error) {
	if _, ok := baselineSeverities[name]; ok {
		return name, nil
	}
	if full, ok := ruleAliases[name]; ok {
		return full, nil
	}
	names := RuleNames()
	sort.Strings(names)
	return "", fmt.Errorf("could not find lint with name or id '%s'; valid lint names are: %s",
		name, strings.Join(names, ", "))
}

// Apply dispatches one rule through the override table: skipped rules return
// nothing, overridden rules run at their pinned severity, everything else
// runs at the rule's baseline. Callers never special-case skipping.
func (c *Config) Apply(rule string, fn func(Severity) []Violation) []Violation {
	return c.applyAt(rule, baselineSeverities[rule], fn)
}

// applyAt is Apply with an explicit baseline, for the few dispatch sites
// where one rule reports at different levels depending on the input (the
// input-type guess treats .csv as a warning but unknown extensions as
// errors).
func (c *Config) applyAt(rule string, baseline Severity, fn func(Severity) []Violation) []Violation {
	if c == nil {
		return fn(baseline)
	}
	if ov, ok := c.overrides[rule]; ok {
		if ov.skip {
			return nil
		}
		return fn(ov.severity)
	}
	return fn(baseline)
}
