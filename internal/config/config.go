package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// MySQL DSN for run-history storage; empty means JSON file storage
	DatabaseDSN string

	// Verbose enables per-test tracing during a run
	Verbose bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Verbose      bool
	NameFilter   string
	OpenFailures bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
}

// Load creates a config, applies the environment and then flag overrides
func Load(flags Flags) *Config {
	cfg := New()
	cfg.LoadEnv()
	cfg.Flags = flags
	if flags.Verbose {
		cfg.Verbose = true
	}
	return cfg
}

// LoadEnv applies .env and environment variable settings
func (c *Config) LoadEnv() {
	// .env might not exist, that's okay - use environment variables
	_ = godotenv.Load(".env")

	if os.Getenv(EnvVerbose) != "" {
		c.Verbose = true
	}
	if dsn := os.Getenv(EnvDatabaseDSN); dsn != "" {
		c.DatabaseDSN = dsn
	}
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.OutputJSONDir = dir
	}
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and failures always read/write the
// same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
