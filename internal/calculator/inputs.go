package calculator

import (
	"fmt"
	"math"

	"github.com/Mrfrozenthunder/loan-calculator/pkg/constants"
)

// LoanInputs holds the eight user-supplied values for one evaluation. The
// value is immutable once constructed; evaluation never mutates it.
type LoanInputs struct {
	ProjectCapex    float64
	EquityShare     float64
	BankLoan        float64
	BankRate        float64
	TenureYears     int
	PremiumRate     float64
	PartnerLoanRate float64
	TargetShare     float64
}

// Validate checks that every field is a finite, non-negative number within
// its documented range. It returns a single human-readable error for the
// first violation found; no computation may proceed on invalid inputs.
func (in LoanInputs) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"project capex", in.ProjectCapex},
		{"equity share", in.EquityShare},
		{"bank loan", in.BankLoan},
		{"bank rate", in.BankRate},
		{"premium rate", in.PremiumRate},
		{"partner loan rate", in.PartnerLoanRate},
		{"target share", in.TargetShare},
	}
	for _, field := range fields {
		if math.IsNaN(field.value) || math.IsInf(field.value, 0) {
			return fmt.Errorf("%s must be a number", field.name)
		}
		if field.value < 0 {
			return fmt.Errorf("%s must not be negative, got %.2f", field.name, field.value)
		}
	}

	if in.ProjectCapex == 0 {
		return fmt.Errorf("project capex must be greater than zero")
	}
	if in.BankLoan == 0 {
		return fmt.Errorf("bank loan must be greater than zero")
	}
	if in.TenureYears <= 0 {
		return fmt.Errorf("tenure must be at least one year, got %d", in.TenureYears)
	}
	if in.EquityShare > constants.PercentageMultiplier {
		return fmt.Errorf("equity share must not exceed 100, got %.2f", in.EquityShare)
	}
	if in.TargetShare > constants.PercentageMultiplier {
		return fmt.Errorf("target share must not exceed 100, got %.2f", in.TargetShare)
	}

	return nil
}
