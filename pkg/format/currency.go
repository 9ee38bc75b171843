// Package format provides locale-aware formatting for currency amounts and
// percentages.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := printer.Sprint(number.Decimal(math.Abs(amount),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but
// with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	formatted := printer.Sprint(number.Decimal(math.Abs(amount),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	if amount < 0 {
		return "-" + formatted
	}
	return formatted
}

// Percent renders a percentage with two decimal places (e.g., "42.50%").
func Percent(value float64) string {
	return printer.Sprintf("%.2f%%", value)
}
