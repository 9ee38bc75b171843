package calculator

import (
	"github.com/Mrfrozenthunder/loan-calculator/pkg/constants"
	"github.com/Mrfrozenthunder/loan-calculator/pkg/mathutil"
)

// LoanSplit holds the installment split between Partner A and the B/C/D
// group for a premium-adjusted bank loan.
type LoanSplit struct {
	TotalEMI      float64
	PartnerAEMI   float64
	PartnerBCDEMI float64
	PartnerAShare float64
	BCDShare      float64
}

// SplitLoan divides the bank EMI between Partner A and the B/C/D group.
// The B/C/D portion is amortized at the bank rate plus the premium; Partner
// A's installment is the residual of the undivided total, so A absorbs the
// compounding interaction between the two sub-loans rather than paying a
// cleanly separate EMI on their own principal.
//
// partnerAPrincipal must lie in [0, totalLoan]. Shares are percentages of
// the total EMI and sum to exactly 100; a zero total EMI (only possible
// with a zero total loan) yields zero shares.
func SplitLoan(totalLoan, partnerAPrincipal, bankRate, premiumRate float64, tenureYears int) LoanSplit {
	totalEMI := MonthlyInstallment(totalLoan, bankRate, tenureYears)
	remainder := totalLoan - partnerAPrincipal
	bcdEMI := MonthlyInstallment(remainder, bankRate+premiumRate, tenureYears)
	partnerAEMI := mathutil.Round(totalEMI - bcdEMI)

	partnerAShare := mathutil.CalculatePercentage(partnerAEMI, totalEMI)
	bcdShare := 0.0
	if totalEMI != 0 {
		bcdShare = constants.PercentageMultiplier - partnerAShare
	}

	return LoanSplit{
		TotalEMI:      totalEMI,
		PartnerAEMI:   partnerAEMI,
		PartnerBCDEMI: bcdEMI,
		PartnerAShare: partnerAShare,
		BCDShare:      bcdShare,
	}
}
