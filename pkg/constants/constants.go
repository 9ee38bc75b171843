// Package constants provides shared constants for the loan-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// FixedPartnerAUsage is Partner A's assumed portion of the bank loan
	// under the fixed funding policy, as a percentage.
	FixedPartnerAUsage = 80.0
)

// Funding policy constants
const (
	// FundingPolicyProportional derives Partner A's loan-funded principal
	// from the equity-proportional capex requirement, clamped to the loan.
	FundingPolicyProportional = "proportional"

	// FundingPolicyFixed80 attributes a fixed 80% of the bank loan to
	// Partner A regardless of equity share.
	FundingPolicyFixed80 = "fixed80"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size
	// for the calculation API (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024
)
