package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mrfrozenthunder/loan-calculator/pkg/constants"
)

const sampleConfig = `---
calculator:
  fundingPolicy: fixed80
logging:
  level: debug
  format: console
output:
  format: csv
scenarios:
  - name: base
    active: true
    projectCapex: 10000000
    equityShare: 20
    bankLoan: 10000000
    bankRate: 10
    tenureYears: 4
    premiumRate: 2.5
    partnerLoanRate: 12
    targetShare: 10
  - name: shelved
    active: false
    projectCapex: 5000000
    equityShare: 25
    bankLoan: 4000000
    bankRate: 9
    tenureYears: 7
    premiumRate: 2
    partnerLoanRate: 11
    targetShare: 15
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error: %v", err)
	}

	if conf.Calculator.FundingPolicy != constants.FundingPolicyFixed80 {
		t.Errorf("FundingPolicy = %q, expected %q", conf.Calculator.FundingPolicy, constants.FundingPolicyFixed80)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("Logging = %+v, expected debug/console", conf.Logging)
	}
	if conf.Output.Format != constants.OutputFormatCSV {
		t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
	}

	if len(conf.Scenarios) != 2 {
		t.Fatalf("len(Scenarios) = %d, expected 2", len(conf.Scenarios))
	}

	base := conf.Scenarios[0]
	if base.Name != "base" || !base.Active {
		t.Errorf("first scenario = %+v, expected active 'base'", base)
	}
	if base.ProjectCapex != 10000000 || base.TenureYears != 4 || base.PremiumRate != 2.5 {
		t.Errorf("scenario values not decoded: %+v", base)
	}

	inputs := base.LoanInputs()
	if inputs.BankLoan != 10000000 || inputs.TargetShare != 10 || inputs.TenureYears != 4 {
		t.Errorf("LoanInputs() = %+v, conversion mismatch", inputs)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("LoadConfiguration() succeeded for a missing file")
	}
}

func TestActiveScenarios(t *testing.T) {
	conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error: %v", err)
	}

	active := conf.ActiveScenarios()
	if len(active) != 1 || active[0].Name != "base" {
		t.Errorf("ActiveScenarios() = %+v, expected just 'base'", active)
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error: %v", err)
	}
	if len(conf.Scenarios) != 2 {
		t.Errorf("len(Scenarios) = %d, expected 2", len(conf.Scenarios))
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(*Configuration)
		expectedPortion string
	}{
		{
			name:            "Clean configuration",
			mutate:          func(conf *Configuration) {},
			expectedPortion: "",
		},
		{
			name: "Invalid funding policy",
			mutate: func(conf *Configuration) {
				conf.Calculator.FundingPolicy = "aggressive"
			},
			expectedPortion: "Funding policy",
		},
		{
			name: "No active scenarios",
			mutate: func(conf *Configuration) {
				for i := range conf.Scenarios {
					conf.Scenarios[i].Active = false
				}
			},
			expectedPortion: "No active scenarios",
		},
		{
			name: "Duplicate scenario names",
			mutate: func(conf *Configuration) {
				conf.Scenarios[1].Name = conf.Scenarios[0].Name
			},
			expectedPortion: "Duplicate scenario name",
		},
		{
			name: "Loan exceeds capex",
			mutate: func(conf *Configuration) {
				conf.Scenarios[0].BankLoan = conf.Scenarios[0].ProjectCapex + 1
			},
			expectedPortion: "exceeds project capex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := LoadConfiguration(writeConfig(t, sampleConfig))
			if err != nil {
				t.Fatalf("LoadConfiguration() error: %v", err)
			}
			tt.mutate(conf)

			warnings := conf.ValidateConfiguration()
			if tt.expectedPortion == "" {
				if len(warnings) != 0 {
					t.Errorf("ValidateConfiguration() = %v, expected no warnings", warnings)
				}
				return
			}

			found := false
			for _, warning := range warnings {
				if strings.Contains(warning, tt.expectedPortion) {
					found = true
				}
			}
			if !found {
				t.Errorf("ValidateConfiguration() = %v, expected a warning containing %q", warnings, tt.expectedPortion)
			}
		})
	}
}

func TestFundingPolicyDefault(t *testing.T) {
	conf := &Configuration{}
	if policy := conf.FundingPolicy(); policy != constants.FundingPolicyProportional {
		t.Errorf("FundingPolicy() = %q, expected default %q", policy, constants.FundingPolicyProportional)
	}

	conf.Calculator.FundingPolicy = constants.FundingPolicyFixed80
	if policy := conf.FundingPolicy(); policy != constants.FundingPolicyFixed80 {
		t.Errorf("FundingPolicy() = %q, expected %q", policy, constants.FundingPolicyFixed80)
	}

	conf.Calculator.FundingPolicy = "bogus"
	if policy := conf.FundingPolicy(); policy != constants.FundingPolicyProportional {
		t.Errorf("FundingPolicy() = %q, expected fallback %q", policy, constants.FundingPolicyProportional)
	}
}
