// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"
	"strings"

	"github.com/Mrfrozenthunder/loan-calculator/internal/calculator"
	"github.com/Mrfrozenthunder/loan-calculator/pkg/format"
)

// ScenarioResult pairs a scenario name with its calculation result.
type ScenarioResult struct {
	Name   string
	Result *calculator.CalculationResult
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []ScenarioResult) {
	fmt.Print(PrettyString(results))
}

// PrettyString renders the human-readable table as a string.
func PrettyString(results []ScenarioResult) string {
	var b strings.Builder
	for i, scenario := range results {
		r := scenario.Result
		fmt.Fprintf(&b, "--- Results for scenario %s ---\n", scenario.Name)
		fmt.Fprintf(&b, "Bank EMI                 | %s\n", format.Currency(r.BankEMI))
		fmt.Fprintf(&b, "Partner A EMI            | %s (%s)\n", format.Currency(r.PartnerAEMI), format.Percent(r.PartnerAShare))
		fmt.Fprintf(&b, "Partners B/C/D EMI       | %s (%s)\n", format.Currency(r.PartnerBCDEMI), format.Percent(r.PartnerBCDShare))
		fmt.Fprintf(&b, "Partner A principal      | %s\n", format.Currency(r.PartnerAPrincipal))
		fmt.Fprintf(&b, "Effective ownership cost | %s\n", format.Percent(r.EffectiveOwnershipCost))
		fmt.Fprintf(&b, "Total outflow            | %s\n", format.Currency(r.TotalOutflow))
		if r.HasPartnerLoan {
			fmt.Fprintf(&b, "Partner loan principal   | %s\n", format.Currency(r.PartnerLoanPrincipal))
			fmt.Fprintf(&b, "Partner loan EMI         | %s\n", format.Currency(r.PartnerLoanEMI))
			fmt.Fprintf(&b, "Final Partner A EMI      | %s (%s)\n", format.Currency(r.FinalPartnerAEMI), format.Percent(r.FinalPartnerAShare))
			fmt.Fprintf(&b, "Final B/C/D total EMI    | %s\n", format.Currency(r.FinalPartnerBCDTotalEMI))
		}
		if i < len(results)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []ScenarioResult) {
	fmt.Print(CsvString(results))
}

// CsvString renders the results in comma-separated value format.
func CsvString(results []ScenarioResult) string {
	var b strings.Builder
	b.WriteString(`"scenario","bank emi","partner a emi","partner bcd emi","partner a share","partner bcd share",` +
		`"effective ownership cost","total outflow","partner loan principal","partner loan emi",` +
		`"final partner a share","final partner a emi","final partner bcd total emi"` + "\n")
	for _, scenario := range results {
		r := scenario.Result
		fmt.Fprintf(&b, `"%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			scenario.Name, r.BankEMI, r.PartnerAEMI, r.PartnerBCDEMI,
			r.PartnerAShare, r.PartnerBCDShare, r.EffectiveOwnershipCost, r.TotalOutflow)
		if r.HasPartnerLoan {
			fmt.Fprintf(&b, `,"%.2f","%.2f","%.2f","%.2f","%.2f"`,
				r.PartnerLoanPrincipal, r.PartnerLoanEMI,
				r.FinalPartnerAShare, r.FinalPartnerAEMI, r.FinalPartnerBCDTotalEMI)
		} else {
			b.WriteString(`,"","","","",""`)
		}
		b.WriteString("\n")
	}
	return b.String()
}
