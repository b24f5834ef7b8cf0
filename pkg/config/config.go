// Package config provides configuration management for gntaxa.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Taxonomy: url, fallback_url, use_cache, cleanup, snapshot_format,
//     fetch_timeout
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Server: port
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNTAXA_ prefix with underscores for nesting:
//
//	GNTAXA_TAXONOMY_USE_CACHE=false
//	GNTAXA_DATABASE_HOST=localhost
//	GNTAXA_SERVER_PORT=8888
//	GNTAXA_LOG_LEVEL=info
//	GNTAXA_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete gntaxa configuration.
type Config struct {
	// Taxonomy contains settings for fetching and caching the NCBI
	// taxonomy dump.
	Taxonomy TaxonomyConfig `mapstructure:"taxonomy" yaml:"taxonomy"`

	// Database contains PostgreSQL connection settings used by push.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Server contains settings of the HTTP query service.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `yaml:"-"`
}

// TaxonomyConfig contains settings of the taxonomy loader.
type TaxonomyConfig struct {
	// URL of the taxdump.tar.gz archive.
	URL string `mapstructure:"url" yaml:"url"`

	// FallbackURL is the base URL of separately gzipped
	// names.dmp.gz, nodes.dmp.gz and merged.dmp.gz files. It is used
	// when the archive at URL cannot be retrieved.
	FallbackURL string `mapstructure:"fallback_url" yaml:"fallback_url"`

	// UseCache allows loading the taxonomy from a local snapshot.
	// When false, the snapshot is removed and the dump is fetched again.
	UseCache bool `mapstructure:"use_cache" yaml:"use_cache"`

	// Cleanup removes downloaded dump files after they are parsed.
	Cleanup bool `mapstructure:"cleanup" yaml:"cleanup"`

	// SnapshotFormat is one of 'sqlite', 'gob' or 'badger'.
	SnapshotFormat string `mapstructure:"snapshot_format" yaml:"snapshot_format"`

	// FetchTimeout limits the time (in seconds) of downloading dumps.
	FetchTimeout int `mapstructure:"fetch_timeout" yaml:"fetch_timeout"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of records sent to PostgreSQL
	// in one COPY operation.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ServerConfig contains settings of the HTTP service.
type ServerConfig struct {
	// Port the service listens to.
	Port int `mapstructure:"port" yaml:"port"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Taxonomy: TaxonomyConfig{
			URL:            TaxdumpURL,
			FallbackURL:    FallbackURL,
			UseCache:       true,
			Cleanup:        true,
			SnapshotFormat: "sqlite",
			FetchTimeout:   1800,
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gntaxa",
			SSLMode:   "disable",
			BatchSize: 50_000,
		},
		Server: ServerConfig{
			Port: 8888,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
