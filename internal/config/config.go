// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/Mrfrozenthunder/loan-calculator/internal/calculator"
	"github.com/Mrfrozenthunder/loan-calculator/pkg/constants"
	"github.com/Mrfrozenthunder/loan-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for loan-calculator.
type Configuration struct {
	Calculator CalculatorConfig `yaml:"calculator,omitempty"`
	Scenarios  []Scenario
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// CalculatorConfig holds engine options shared by all scenarios.
type CalculatorConfig struct {
	FundingPolicy string `yaml:"fundingPolicy,omitempty"` // proportional, fixed80
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Scenario holds one named set of loan inputs.
type Scenario struct {
	Name            string
	Active          bool
	ProjectCapex    float64
	EquityShare     float64
	BankLoan        float64
	BankRate        float64
	TenureYears     int
	PremiumRate     float64
	PartnerLoanRate float64
	TargetShare     float64
}

// LoanInputs converts the scenario into the engine's input value.
func (s Scenario) LoanInputs() calculator.LoanInputs {
	return calculator.LoanInputs{
		ProjectCapex:    s.ProjectCapex,
		EquityShare:     s.EquityShare,
		BankLoan:        s.BankLoan,
		BankRate:        s.BankRate,
		TenureYears:     s.TenureYears,
		PremiumRate:     s.PremiumRate,
		PartnerLoanRate: s.PartnerLoanRate,
		TargetShare:     s.TargetShare,
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from the
// given reader; used by the HTTP server for posted configs.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ActiveScenarios returns the scenarios marked active.
func (conf *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range conf.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}

// ValidateConfiguration checks the configuration for conditions that are
// legal but probably unintended and returns human-readable warnings.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if policy := conf.Calculator.FundingPolicy; policy != "" {
		if err := validation.ValidateFundingPolicy(policy); err != nil {
			warnings = append(warnings, fmt.Sprintf("Funding policy: %s; falling back to %s",
				err, constants.FundingPolicyProportional))
		}
	}

	if len(conf.ActiveScenarios()) == 0 {
		warnings = append(warnings, "No active scenarios defined - nothing will be evaluated")
	}

	seen := make(map[string]struct{})
	for _, scenario := range conf.Scenarios {
		if _, duplicate := seen[scenario.Name]; duplicate {
			warnings = append(warnings, fmt.Sprintf("Duplicate scenario name '%s'", scenario.Name))
		}
		seen[scenario.Name] = struct{}{}

		if !scenario.Active {
			continue
		}
		if scenario.BankLoan > scenario.ProjectCapex {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s': bank loan %.2f exceeds project capex %.2f",
				scenario.Name, scenario.BankLoan, scenario.ProjectCapex))
		}
	}

	return warnings
}

// FundingPolicy returns the configured funding policy, defaulting to
// proportional when unset or invalid.
func (conf *Configuration) FundingPolicy() string {
	policy := conf.Calculator.FundingPolicy
	if err := validation.ValidateFundingPolicy(policy); err != nil {
		return constants.FundingPolicyProportional
	}
	return policy
}
