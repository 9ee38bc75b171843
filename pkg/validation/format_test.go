package validation

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{"Pretty format", "pretty", false},
		{"CSV format", "csv", false},
		{"Unknown format", "xml", true},
		{"Empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, expectErr %v", tt.format, err, tt.expectErr)
			}
		})
	}
}

func TestValidateFundingPolicy(t *testing.T) {
	tests := []struct {
		name      string
		policy    string
		expectErr bool
	}{
		{"Proportional policy", "proportional", false},
		{"Fixed 80 policy", "fixed80", false},
		{"Unknown policy", "aggressive", true},
		{"Empty policy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFundingPolicy(tt.policy)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateFundingPolicy(%q) error = %v, expectErr %v", tt.policy, err, tt.expectErr)
			}
		})
	}
}
