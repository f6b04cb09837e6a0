package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ozplan/retirement-planner/internal/calculation"
	"github.com/ozplan/retirement-planner/internal/domain"
)

// ScenarioFile is the parsed YAML input: a settings overlay applied on top
// of the built-in defaults, plus one or more planner scenarios to project.
type ScenarioFile struct {
	Settings  domain.Settings       `yaml:"settings"`
	Scenarios []domain.PlannerInput `yaml:"scenarios"`
}

// InputParser handles parsing of scenario input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file. Keys absent from the settings block
// keep their built-in defaults, and presets declared in the file extend the
// built-in preset table rather than replacing it.
func (ip *InputParser) LoadFromFile(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates raw YAML scenario data.
func (ip *InputParser) Parse(data []byte) (*ScenarioFile, error) {
	file := &ScenarioFile{Settings: domain.DefaultSettings()}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(file); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return file, nil
}

// Validate checks the scenario file against every engine invariant. Errors
// carry the scenario name so multi-scenario files report precisely.
func (ip *InputParser) Validate(file *ScenarioFile) error {
	if len(file.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	if file.Settings.PreservationAge <= 0 {
		return fmt.Errorf("settings: preservation age must be positive")
	}
	if !file.Settings.WithdrawalRate.IsPositive() {
		return fmt.Errorf("settings: withdrawal rate must be positive")
	}
	if !file.Settings.ConcessionalCapYearly.IsPositive() {
		return fmt.Errorf("settings: concessional cap must be positive")
	}

	for i := range file.Scenarios {
		sc := &file.Scenarios[i]
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if err := calculation.ValidateInput(sc, &file.Settings); err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		// Resolve rates up front so preset problems surface at load time,
		// not mid-batch.
		if _, err := calculation.ResolveRates(sc, &file.Settings); err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}
	return nil
}
