// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/Mrfrozenthunder/loan-calculator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateFundingPolicy checks if the funding policy is one of the supported policies.
func ValidateFundingPolicy(policy string) error {
	if policy != constants.FundingPolicyProportional && policy != constants.FundingPolicyFixed80 {
		return fmt.Errorf("expected funding policy of %s or %s, got %s",
			constants.FundingPolicyProportional, constants.FundingPolicyFixed80, policy)
	}
	return nil
}
