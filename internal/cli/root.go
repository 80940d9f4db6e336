package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/eternal-math/eternal/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "eternal",
	Short: "Eternal - an educational mathematics toolkit",
	Long: `Eternal is a toolkit for exploring number theory, proofs, symbolic
math and linear algebra from the terminal.

It generates primes (with a segmented sieve for large bounds), finds
perfect numbers and twin primes, verifies Goldbach's conjecture over a
range, solves systems of congruences, walks Collatz sequences, and
carries a worked proof of the Fundamental Theorem of Arithmetic.

Run 'eternal shell' for an interactive session.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number for Eternal.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("eternal v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.eternal/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.eternal")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match ETERNAL_*
	viper.SetEnvPrefix("ETERNAL")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults overridden
// by whatever the config file and environment provide. The result is
// passed by value and never mutated after this point.
func loadConfig() model.Config {
	cfg := model.DefaultConfig()

	if viper.IsSet("sieve.segment_threshold") {
		cfg.Sieve.SegmentThreshold = viper.GetInt("sieve.segment_threshold")
	}
	if viper.IsSet("sieve.min_window") {
		cfg.Sieve.MinWindow = viper.GetInt("sieve.min_window")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("cache.ttl") {
		if ttl := viper.GetDuration("cache.ttl"); ttl > 0 {
			cfg.Cache.TTL = ttl
		}
	}
	if viper.IsSet("bench.iterations") {
		if n := viper.GetInt("bench.iterations"); n > 0 {
			cfg.Bench.Iterations = n
		}
	}
	if viper.GetBool("verbose") {
		cfg.Output.Verbose = true
	}

	// Guard against nonsense from the config file.
	if cfg.Sieve.MinWindow < 1 {
		cfg.Sieve.MinWindow = 1
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = 15 * time.Minute
	}
	return cfg
}
