// Package config provides configuration management.
//
// Configuration comes from defaults, then an optional JSON file, then
// GRIDIN_* environment variables.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"gridin/internal/errors"
	"gridin/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP API configuration
	Server ServerConfig `json:"server"`

	// Parity contains settings for the database implementation
	Parity ParityConfig `json:"parity"`

	// Fixtures contains shared fixture settings
	Fixtures FixturesConfig `json:"fixtures"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" env:"GRIDIN_ADDR"`

	// ReadTimeoutSeconds bounds request reading
	ReadTimeoutSeconds int `json:"read_timeout_seconds" env:"GRIDIN_READ_TIMEOUT_SECONDS"`

	// WriteTimeoutSeconds bounds response writing
	WriteTimeoutSeconds int `json:"write_timeout_seconds" env:"GRIDIN_WRITE_TIMEOUT_SECONDS"`
}

// ParityConfig points at the PostgreSQL implementation of the grader
type ParityConfig struct {
	// DatabaseURL is the PostgreSQL connection string
	DatabaseURL string `json:"database_url,omitempty" env:"GRIDIN_DATABASE_URL"`

	// SetupSQL is a SQL file that defines the grading functions
	SetupSQL string `json:"setup_sql,omitempty" env:"GRIDIN_SETUP_SQL"`

	// EquivalentFunc is the SQL function for equivalence
	EquivalentFunc string `json:"equivalent_func" env:"GRIDIN_EQUIVALENT_FUNC"`

	// MixedFunc is the SQL function for mixed-number detection
	MixedFunc string `json:"mixed_func" env:"GRIDIN_MIXED_FUNC"`
}

// FixturesConfig locates the shared fixture files
type FixturesConfig struct {
	// Dir holds *.hcl fixture files
	Dir string `json:"dir" env:"GRIDIN_FIXTURES_DIR"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
		},
		Parity: ParityConfig{
			EquivalentFunc: "pg_temp.gridin_equivalent",
			MixedFunc:      "pg_temp.gridin_mixed_answer",
		},
		Fixtures: FixturesConfig{
			Dir: filepath.Join("testdata", "fixtures"),
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file and the environment.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, errors.Config("invalid config file "+path, err)
			}
		case !os.IsNotExist(err):
			return nil, errors.Config("cannot read config file "+path, err)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with GRIDIN_* environment variables
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return errors.Config("invalid environment", err)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
