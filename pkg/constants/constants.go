// Package constants provides shared constants for the mortgage-engine application.
package constants

// DateTimeLayout is the format of every date in mortgage documents and is
// also the output date format.
const DateTimeLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// DefaultCurrency is the currency code assumed when a mortgage omits one
	DefaultCurrency = "ILS"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format, identical to the HTTP response body
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix prefixes every environment override, e.g. MORTGAGE_ENGINE_LOGGING_LEVEL
	EnvPrefix = "MORTGAGE_ENGINE"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8000"

	// DefaultMaxUploadSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultRequestsPerSecond is the default sustained request rate per client
	DefaultRequestsPerSecond = 5.0

	// DefaultBurst is the default request burst per client
	DefaultBurst = 10

	// ServiceName is reported by the health endpoint
	ServiceName = "Israeli Mortgage Engine API"
)

// Cache backends
const (
	CacheBackendNone   = "none"
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)
