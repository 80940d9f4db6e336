// Package model holds the configuration record and shared constants
// of the Eternal toolkit.
package model

import (
	"time"

	"github.com/eternal-math/eternal/internal/numtheory"
)

// Config is the toolkit configuration. It is constructed once at
// process start (defaults, config file, environment, flags, in
// ascending priority) and passed by value; nothing mutates it after
// startup.
type Config struct {
	Sieve  numtheory.SieveConfig `yaml:"sieve" json:"sieve"`
	Cache  CacheConfig           `yaml:"cache" json:"cache"`
	Bench  BenchConfig           `yaml:"bench" json:"bench"`
	Output OutputConfig          `yaml:"output" json:"output"`
}

// CacheConfig controls the session prime cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// BenchConfig controls the benchmark harness.
type BenchConfig struct {
	Iterations int   `yaml:"iterations" json:"iterations"` // timing repetitions per case
	SieveSizes []int `yaml:"sieve_sizes" json:"sieve_sizes"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Sieve: numtheory.DefaultSieveConfig(),
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Bench: BenchConfig{
			Iterations: 10,
			SieveSizes: []int{100, 500, 1000, 5000, 10000},
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
