package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/beergame-sim/beergame-sim/sim"
)

// Scenario is the YAML shape for a fully specified game: an explicit
// demand sequence and explicit per-week order rows. Short or missing
// demand and orders fall back to the game defaults, matching the
// engine's own coercion rules.
type Scenario struct {
	Weeks  int     `yaml:"weeks"`
	Demand []int   `yaml:"demand"`
	Orders [][]int `yaml:"orders"`
}

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &scenario, nil
}

// writeReportJSON writes the report as indented JSON, for consumption by
// external chart renderers.
func writeReportJSON(report *sim.SimulationReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
