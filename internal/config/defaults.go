package config

const (
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "test-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".unitlite"
	// EnvVerbose enables verbose per-test tracing
	EnvVerbose = "UNITLITE_VERBOSE"
	// EnvDatabaseDSN selects the MySQL storage backend when set
	EnvDatabaseDSN = "UNITLITE_DB_DSN"
	// EnvOutputDir overrides the output directory
	EnvOutputDir = "UNITLITE_OUTPUT_DIR"
)
