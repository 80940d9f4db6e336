package cli

import (
	"fmt"
	"os"

	"github.com/eternal-math/eternal/internal/bench"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	benchReport     string
	benchIterations int
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the number-theory core",
	Long: `Time the core algorithms as black boxes and report mean, deviation
and extremes per case. Results can be written to a YAML report.

Example:
  eternal bench
  eternal bench --iterations 25 --report bench.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		iterations := cfg.Bench.Iterations
		if benchIterations > 0 {
			iterations = benchIterations
		}

		log := setupLogger(cfg.Output.Verbose)
		log.WithField("iterations", iterations).Info("starting benchmark suite")

		suite := bench.NewSuite(log, iterations)
		suite.Sieve(cfg.Bench.SieveSizes)
		suite.PrimeChecks()
		suite.Fibonacci([]int{10, 100, 1000})
		suite.PerfectScan([]int{1000, 10000})
		suite.Totient([]int{360, 9973, 100000})

		results := suite.Results()
		fmt.Print(bench.Summary(results))

		if benchReport != "" {
			if err := bench.WriteReport(benchReport, results); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			log.WithField("path", benchReport).Info("report written")
		}
		return nil
	},
}

// setupLogger configures the harness logger; verbose runs log each
// case at debug level.
func setupLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

func init() {
	benchCmd.Flags().StringVar(&benchReport, "report", "", "write YAML report to this path")
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 0, "timing repetitions per case (0 = config default)")
	rootCmd.AddCommand(benchCmd)
}
