// Package config loads run configuration. It keeps the teacher's
// Config/sub-config struct shape and Validate() contract, but sources
// values through github.com/spf13/viper (env vars, an optional config
// file, and defaults) instead of the teacher's hand-rolled os.Getenv
// parsing, per SPEC_FULL.md's ambient-stack upgrade. API/Embedder
// concerns don't survive the port — they belonged to the teacher's
// out-of-scope query surface and benchmarking harness (spec §1).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all run configuration for one indexing pass.
type Config struct {
	Scan     ScanConfig
	Indexer  IndexerConfig
	Database DatabaseConfig
}

// ScanConfig controls what the file filter admits, per spec §6.
type ScanConfig struct {
	RootPath                string
	ExcludePatterns         []string
	ExcludeTests            bool
	IncludeDeclarationFiles bool
	IncludeConfigFiles      bool
	DomainsConfigPath       string
}

// IndexerConfig controls the worker pool and cache sizing, per spec §5.
type IndexerConfig struct {
	WorkerCount   int
	ParseCacheCap int
	Verbose       bool
}

// DatabaseConfig configures the example graph sink (internal/store), out
// of core scope per spec §1 but needed to run the CLI end to end.
type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// Load reads configuration from the environment (prefix CODEINDEX_), an
// optional ./codeindex.yaml, and these defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("codeindex")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("scan.rootpath", ".")
	v.SetDefault("scan.excludetests", true)
	v.SetDefault("scan.includedeclarationfiles", false)
	v.SetDefault("scan.includeconfigfiles", false)
	v.SetDefault("indexer.workercount", 0) // 0 means "use GOMAXPROCS"
	v.SetDefault("indexer.parsecachecap", 2048)
	v.SetDefault("indexer.verbose", false)
	v.SetDefault("database.maxopenconns", 10)
	v.SetDefault("database.connmaxlifetime", 5*time.Minute)

	v.SetConfigName("codeindex")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Scan: ScanConfig{
			RootPath:                v.GetString("scan.rootpath"),
			ExcludePatterns:         v.GetStringSlice("scan.excludepatterns"),
			ExcludeTests:            v.GetBool("scan.excludetests"),
			IncludeDeclarationFiles: v.GetBool("scan.includedeclarationfiles"),
			IncludeConfigFiles:      v.GetBool("scan.includeconfigfiles"),
			DomainsConfigPath:       v.GetString("scan.domainsconfigpath"),
		},
		Indexer: IndexerConfig{
			WorkerCount:   v.GetInt("indexer.workercount"),
			ParseCacheCap: v.GetInt("indexer.parsecachecap"),
			Verbose:       v.GetBool("indexer.verbose"),
		},
		Database: DatabaseConfig{
			DSN:             v.GetString("database.dsn"),
			MaxOpenConns:    v.GetInt("database.maxopenconns"),
			ConnMaxLifetime: v.GetDuration("database.connmaxlifetime"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks invariants that would otherwise surface as a confusing
// failure deep inside the pipeline.
func (c *Config) Validate() error {
	if c.Scan.RootPath == "" {
		return fmt.Errorf("scan.rootPath must not be empty")
	}
	if c.Indexer.WorkerCount < 0 {
		return fmt.Errorf("indexer.workerCount must be >= 0")
	}
	if c.Indexer.ParseCacheCap < 0 {
		return fmt.Errorf("indexer.parseCacheCap must be >= 0")
	}
	if c.Database.MaxOpenConns < 0 {
		return fmt.Errorf("database.maxOpenConns must be >= 0")
	}
	return nil
}
