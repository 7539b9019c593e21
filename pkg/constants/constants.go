// Package constants provides shared constants for the goal-forecast application.
package constants

// DateLayout is the format expected for dates in config files and is also the
// output date format.
const DateLayout = "2006-01-02"

// Goal defaults, applied when the configuration leaves them unset.
const (
	// DefaultTargetAmountUSD is the default net-worth target.
	DefaultTargetAmountUSD = 1_000_000.0

	// DefaultTargetDate is the default target date.
	DefaultTargetDate = "2035-01-01"

	// DefaultGrowthRate is the default annual growth rate in percent, applied
	// to new contributions and to investment accounts without their own rate.
	// Matches the historical S&P 500 average return.
	DefaultGrowthRate = 8.0
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// CompoundsPerYear is the default compounding frequency (monthly)
	CompoundsPerYear = 12

	// DaysPerYear is the mean Gregorian year length used for date math
	DaysPerYear = 365.25

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Solver constants for the years-to-target search.
const (
	// SearchHorizonYears caps the years-to-target binary search
	SearchHorizonYears = 100.0

	// SearchToleranceYears is the binary search resolution
	SearchToleranceYears = 0.01
)

// OnTrackContributionShare is the share of current net worth below which the
// required monthly contribution still counts as "on track". This is a
// business heuristic, not a derived threshold.
const OnTrackContributionShare = 0.1

// Milestones is the fixed ladder of net-worth milestones, in USD.
var Milestones = []float64{
	10_000,
	25_000,
	50_000,
	100_000,
	250_000,
	500_000,
	750_000,
	1_000_000,
}

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

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum size for projection
	// request bodies (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)

// DefaultTimelineYears is the horizon for the year-by-year projection
// timeline when the caller does not ask for a specific span.
const DefaultTimelineYears = 10
