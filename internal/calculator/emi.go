// Package calculator implements the partner loan evaluation engine: the
// EMI amortization formula, the premium-adjusted sub-loan split, the
// inverse-amortization partner-loan solver, and the coordinating
// evaluation pipeline that ties them together.
package calculator

import (
	"math"

	"github.com/Mrfrozenthunder/loan-calculator/pkg/constants"
	"github.com/Mrfrozenthunder/loan-calculator/pkg/mathutil"
)

// InstallmentFactor returns the monthly installment per unit of principal
// for a loan at the given annual percentage rate over the given tenure.
// For a zero rate the factor degenerates to 1/n; the general formula would
// divide by zero there.
func InstallmentFactor(annualRatePercent float64, tenureYears int) float64 {
	months := float64(tenureYears * constants.MonthsPerYear)
	if annualRatePercent == 0 {
		return 1.0 / months
	}

	monthlyRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.0+monthlyRate, months)
	return monthlyRate * power / (power - 1.0)
}

// MonthlyInstallment calculates the fixed monthly installment (EMI) for a
// loan using the standard reducing-balance amortization formula. The
// result is rounded to two decimals.
func MonthlyInstallment(principal, annualRatePercent float64, tenureYears int) float64 {
	return mathutil.Round(principal * InstallmentFactor(annualRatePercent, tenureYears))
}
