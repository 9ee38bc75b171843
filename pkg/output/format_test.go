package output

import (
	"strings"
	"testing"

	"github.com/Mrfrozenthunder/loan-calculator/internal/calculator"
	"github.com/Mrfrozenthunder/loan-calculator/pkg/constants"
)

func sampleResults(t *testing.T) []ScenarioResult {
	t.Helper()

	calc, err := calculator.New(nil, constants.FundingPolicyProportional)
	if err != nil {
		t.Fatalf("calculator.New() error: %v", err)
	}

	result, err := calc.Evaluate(calculator.LoanInputs{
		ProjectCapex:    10000000,
		EquityShare:     20,
		BankLoan:        10000000,
		BankRate:        10,
		TenureYears:     4,
		PremiumRate:     2.5,
		PartnerLoanRate: 12,
		TargetShare:     10,
	})
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	return []ScenarioResult{{Name: "base", Result: result}}
}

func TestPrettyString(t *testing.T) {
	rendered := PrettyString(sampleResults(t))

	for _, want := range []string{
		"--- Results for scenario base ---",
		"Bank EMI",
		"Partner A EMI",
		"Partners B/C/D EMI",
		"Effective ownership cost",
		"Partner loan principal",
		"Final Partner A EMI",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("PrettyString() output missing %q:\n%s", want, rendered)
		}
	}

	// Currency values carry thousands separators.
	if !strings.Contains(rendered, ",") {
		t.Errorf("PrettyString() output has no thousands separators:\n%s", rendered)
	}
}

func TestCsvString(t *testing.T) {
	rendered := CsvString(sampleResults(t))

	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("CsvString() produced %d lines, expected header plus one row:\n%s", len(lines), rendered)
	}

	header := strings.Split(lines[0], ",")
	row := strings.Split(lines[1], ",")
	if len(header) != len(row) {
		t.Errorf("CsvString() header has %d columns but row has %d:\n%s", len(header), len(row), rendered)
	}

	if !strings.HasPrefix(lines[1], `"base"`) {
		t.Errorf("CsvString() row does not start with the scenario name:\n%s", rendered)
	}
}
