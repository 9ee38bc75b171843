package calculator

import (
	"fmt"

	"github.com/Mrfrozenthunder/loan-calculator/pkg/constants"
	"github.com/Mrfrozenthunder/loan-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

// CalculationResult is the complete outcome of one evaluation. It is
// assembled fresh on every invocation and fully replaces any prior result.
type CalculationResult struct {
	PartnerAPrincipal      float64
	BankEMI                float64
	PartnerAEMI            float64
	PartnerBCDEMI          float64
	PartnerAShare          float64
	PartnerBCDShare        float64
	EffectiveOwnershipCost float64
	TotalOutflow           float64

	// Partner loan figures; populated only when the target share is below
	// the split share.
	HasPartnerLoan          bool
	PartnerLoanPrincipal    float64
	PartnerLoanEMI          float64
	FinalPartnerAShare      float64
	FinalPartnerAEMI        float64
	FinalPartnerBCDTotalEMI float64
}

// Calculator evaluates loan inputs under a configured funding policy.
type Calculator struct {
	logger        *zap.Logger
	fundingPolicy string
}

// New creates a Calculator. An empty policy defaults to proportional
// funding; a nil logger is replaced with a no-op logger.
func New(logger *zap.Logger, fundingPolicy string) (*Calculator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fundingPolicy == "" {
		fundingPolicy = constants.FundingPolicyProportional
	}
	switch fundingPolicy {
	case constants.FundingPolicyProportional, constants.FundingPolicyFixed80:
	default:
		return nil, fmt.Errorf("unknown funding policy %q", fundingPolicy)
	}
	return &Calculator{logger: logger, fundingPolicy: fundingPolicy}, nil
}

// FundingPolicy returns the policy this calculator applies.
func (c *Calculator) FundingPolicy() string {
	return c.fundingPolicy
}

// partnerAPrincipal derives the portion of the bank loan attributed to
// Partner A under the configured funding policy.
func (c *Calculator) partnerAPrincipal(inputs LoanInputs) float64 {
	switch c.fundingPolicy {
	case constants.FundingPolicyFixed80:
		return mathutil.ApplyPercentage(inputs.BankLoan, constants.FixedPartnerAUsage)
	default:
		required := mathutil.ApplyPercentage(inputs.ProjectCapex, inputs.EquityShare)
		return mathutil.Clamp(required, 0, inputs.BankLoan)
	}
}

// Evaluate validates the inputs and runs the full pipeline: bank EMI,
// premium-adjusted split, derived cost metrics, and, when the target share
// is below the split share, the partner-loan solve. Evaluation is pure and
// deterministic; identical inputs always yield identical results.
func (c *Calculator) Evaluate(inputs LoanInputs) (*CalculationResult, error) {
	if err := inputs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	partnerAPrincipal := c.partnerAPrincipal(inputs)
	bankEMI := MonthlyInstallment(inputs.BankLoan, inputs.BankRate, inputs.TenureYears)
	split := SplitLoan(inputs.BankLoan, partnerAPrincipal, inputs.BankRate, inputs.PremiumRate, inputs.TenureYears)

	c.logger.Debug("split computed",
		zap.String("op", "calculator.Evaluate"),
		zap.String("fundingPolicy", c.fundingPolicy),
		zap.Float64("partnerAPrincipal", partnerAPrincipal),
		zap.Float64("totalEMI", split.TotalEMI),
		zap.Float64("partnerAShare", split.PartnerAShare),
	)

	// Partner A's loan-funded share of the installment, expressed as a
	// percentage of the total project cost rather than of the loan.
	ownershipCost := mathutil.CalculatePercentage(
		mathutil.ApplyPercentage(inputs.BankLoan, split.PartnerAShare), inputs.ProjectCapex)

	result := &CalculationResult{
		PartnerAPrincipal:       partnerAPrincipal,
		BankEMI:                 bankEMI,
		PartnerAEMI:             split.PartnerAEMI,
		PartnerBCDEMI:           split.PartnerBCDEMI,
		PartnerAShare:           split.PartnerAShare,
		PartnerBCDShare:         split.BCDShare,
		EffectiveOwnershipCost:  ownershipCost,
		TotalOutflow:            split.PartnerAEMI * float64(inputs.TenureYears*constants.MonthsPerYear),
		FinalPartnerAShare:      split.PartnerAShare,
		FinalPartnerAEMI:        split.PartnerAEMI,
		FinalPartnerBCDTotalEMI: split.PartnerBCDEMI,
	}

	// The solver only runs for a genuine reduction; at or above the split
	// share it would produce a negative bridging principal.
	if inputs.TargetShare < split.PartnerAShare {
		loan := SolvePartnerLoan(bankEMI, split.PartnerAShare, inputs.TargetShare,
			inputs.PartnerLoanRate, inputs.TenureYears)

		c.logger.Debug("partner loan solved",
			zap.String("op", "calculator.Evaluate"),
			zap.Float64("principal", loan.Principal),
			zap.Float64("monthlyPayment", loan.MonthlyPayment),
			zap.Float64("shareDifference", loan.ShareDifference),
		)

		result.HasPartnerLoan = true
		result.PartnerLoanPrincipal = loan.Principal
		result.PartnerLoanEMI = loan.MonthlyPayment
		result.FinalPartnerAShare = inputs.TargetShare
		result.FinalPartnerAEMI = mathutil.Round(split.PartnerAEMI - loan.MonthlyPayment)
		result.FinalPartnerBCDTotalEMI = mathutil.Round(split.PartnerBCDEMI + loan.MonthlyPayment)
	}

	return result, nil
}
