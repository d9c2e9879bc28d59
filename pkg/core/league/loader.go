package league

import (
	"fmt"
	"os"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"
)

// LoadRules reads a rules file and overlays it on DefaultRules, so partial
// configs only need to state what differs from the standard league.
// .yaml/.yml files parse as YAML; anything else is tried as Hjson, which
// tolerates comments and trailing commas in hand-edited league files.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	return ParseRules(data, strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml"))
}

// ParseRules decodes raw rule bytes over the defaults.
func ParseRules(data []byte, isYAML bool) (Rules, error) {
	rules := DefaultRules()
	if isYAML {
		if err := yaml.Unmarshal(data, &rules); err != nil {
			return Rules{}, fmt.Errorf("failed to parse rules yaml: %w", err)
		}
	} else {
		if err := hjson.Unmarshal(data, &rules); err != nil {
			return Rules{}, fmt.Errorf("failed to parse rules hjson: %w", err)
		}
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Validate rejects configurations the engine cannot price under.
func (r Rules) Validate() error {
	if r.SalaryCap <= 0 {
		return fmt.Errorf("invalid rules: salary_cap must be positive, got %d", r.SalaryCap)
	}
	if r.MinimumSalary <= 0 {
		return fmt.Errorf("invalid rules: minimum_salary must be positive, got %d", r.MinimumSalary)
	}
	if r.MinimumSalary > r.SalaryCap {
		return fmt.Errorf("invalid rules: minimum_salary %d exceeds salary_cap %d", r.MinimumSalary, r.SalaryCap)
	}
	if r.EscalationRate < 0 {
		return fmt.Errorf("invalid rules: escalation_rate must be non-negative, got %f", r.EscalationRate)
	}
	if r.TaxiSquadRate < 0 || r.TaxiSquadRate > 1 {
		return fmt.Errorf("invalid rules: taxi_squad_rate must be in [0,1], got %f", r.TaxiSquadRate)
	}
	return nil
}
