package calculator

import (
	"github.com/Mrfrozenthunder/loan-calculator/pkg/constants"
	"github.com/Mrfrozenthunder/loan-calculator/pkg/mathutil"
)

// PartnerLoan describes the supplementary loan that shifts part of Partner
// A's installment burden to the other partners.
type PartnerLoan struct {
	Principal       float64
	MonthlyPayment  float64
	ShareDifference float64
}

// SolvePartnerLoan inverse-solves the amortization formula for the
// principal of a bridging loan whose own EMI equals the monthly payment
// Partner A needs to transfer to move from currentShare to targetShare.
// currentEMI is the undivided bank EMI, so share points convert directly
// to currency.
//
// The solve is only meaningful when targetShare < currentShare; callers
// skip it otherwise.
func SolvePartnerLoan(currentEMI, currentShare, targetShare, annualRatePercent float64, tenureYears int) PartnerLoan {
	shareDifference := currentShare - targetShare
	monthlyPayment := mathutil.Round(currentEMI * shareDifference / constants.PercentageMultiplier)
	principal := mathutil.Round(monthlyPayment / InstallmentFactor(annualRatePercent, tenureYears))

	return PartnerLoan{
		Principal:       principal,
		MonthlyPayment:  monthlyPayment,
		ShareDifference: shareDifference,
	}
}
