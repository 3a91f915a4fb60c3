// Package yaml provides YAML-based mirror-rule parsing.
package yaml

import (
	"fmt"
	"os"

	"github.com/tur-wheels/wheeldex/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlRuleFile represents the raw YAML structure
type yamlRuleFile struct {
	Rules []yamlRule `yaml:"rules"`
}

type yamlRule struct {
	Marker  string `yaml:"marker"`
	FromTag string `yaml:"from_tag"`
	ToTag   string `yaml:"to_tag"`
}

// RulesParser parses YAML mirror-rule files
type RulesParser struct{}

// NewRulesParser creates a new YAML parser
func NewRulesParser() *RulesParser {
	return &RulesParser{}
}

// ParseFile reads and validates the mirror rules in path
func (p *RulesParser) ParseFile(path string) ([]entities.MirrorRule, error) {
	//nolint:gosec // G304: File path is a user-supplied rules file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var file yamlRuleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s defines no rules", path)
	}

	rules := make([]entities.MirrorRule, 0, len(file.Rules))
	for i, r := range file.Rules {
		if r.FromTag == "" || r.ToTag == "" {
			return nil, fmt.Errorf("rule %d: from_tag and to_tag are required", i)
		}
		rules = append(rules, entities.MirrorRule{
			Marker:  r.Marker,
			FromTag: r.FromTag,
			ToTag:   r.ToTag,
		})
	}

	return rules, nil
}
