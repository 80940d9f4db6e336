package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eternal-math/eternal/internal/numtheory"
	"github.com/eternal-math/eternal/internal/search"
	"github.com/spf13/cobra"
)

var (
	primesCountOnly bool
	perfectWorkers  int
)

// parseInt reports parse failures distinctly from domain failures:
// a non-integer argument is the caller handing us the wrong kind of
// value, not a value outside a function's domain.
func parseInt(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", arg)
	}
	return n, nil
}

func parseIntList(arg string) ([]int, error) {
	parts := strings.Split(arg, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := parseInt(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

var primesCmd = &cobra.Command{
	Use:   "primes <limit>",
	Short: "Generate all primes up to a limit",
	Long: `Generate all prime numbers up to the given limit with the Sieve of
Eratosthenes. Limits above the configured segment threshold are sieved
in fixed-size windows so memory stays proportional to sqrt(limit).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := parseInt(args[0])
		if err != nil {
			return err
		}
		cfg := loadConfig()
		if cfg.Output.Verbose && limit > cfg.Sieve.SegmentThreshold {
			fmt.Fprintf(os.Stderr, "Using segmented sieve (threshold %d, window >= %d)\n",
				cfg.Sieve.SegmentThreshold, cfg.Sieve.MinWindow)
		}
		primes := numtheory.SieveWithConfig(limit, cfg.Sieve)
		if primesCountOnly {
			fmt.Printf("%d primes <= %d\n", len(primes), limit)
			return nil
		}
		fmt.Println(formatInts(primes))
		fmt.Printf("Found %d primes\n", len(primes))
		return nil
	},
}

var factorCmd = &cobra.Command{
	Use:   "factor <n>",
	Short: "Prime factorization of n",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		factors, err := numtheory.PrimeFactorization(n)
		if err != nil {
			return err
		}
		parts := make([]string, len(factors))
		for i, f := range factors {
			parts[i] = strconv.Itoa(f)
		}
		fmt.Printf("%d = %s\n", n, strings.Join(parts, " * "))
		return nil
	},
}

var gcdCmd = &cobra.Command{
	Use:   "gcd <a> <b>",
	Short: "Greatest common divisor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseInt(args[0])
		if err != nil {
			return err
		}
		b, err := parseInt(args[1])
		if err != nil {
			return err
		}
		g, err := numtheory.GCD(a, b)
		if err != nil {
			return err
		}
		fmt.Printf("gcd(%d, %d) = %d\n", a, b, g)
		return nil
	},
}

var lcmCmd = &cobra.Command{
	Use:   "lcm <a> <b>",
	Short: "Least common multiple",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseInt(args[0])
		if err != nil {
			return err
		}
		b, err := parseInt(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("lcm(%d, %d) = %d\n", a, b, numtheory.LCM(a, b))
		return nil
	},
}

var fibCmd = &cobra.Command{
	Use:   "fib <count>",
	Short: "First count Fibonacci numbers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := parseInt(args[0])
		if err != nil {
			return err
		}
		fmt.Println(formatInts(numtheory.FibonacciSequence(count)))
		return nil
	},
}

var perfectCmd = &cobra.Command{
	Use:   "perfect <limit>",
	Short: "Find perfect numbers up to a limit",
	Long: `Scan [1, limit] for perfect numbers. The scan is split across
workers; each candidate is still checked by the sequential core.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := parseInt(args[0])
		if err != nil {
			return err
		}
		found, err := search.PerfectNumbers(context.Background(), limit, perfectWorkers)
		if err != nil {
			return err
		}
		fmt.Printf("Perfect numbers up to %d: %s\n", limit, formatInts(found))
		return nil
	},
}

var twinsCmd = &cobra.Command{
	Use:   "twins <limit>",
	Short: "Twin prime pairs up to a limit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := parseInt(args[0])
		if err != nil {
			return err
		}
		pairs := numtheory.TwinPrimes(limit)
		for _, p := range pairs {
			fmt.Printf("(%d, %d)\n", p[0], p[1])
		}
		fmt.Printf("Found %d twin prime pairs\n", len(pairs))
		return nil
	},
}

var goldbachCmd = &cobra.Command{
	Use:   "goldbach <limit>",
	Short: "Verify Goldbach's conjecture up to a limit",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := parseInt(args[0])
		if err != nil {
			return err
		}
		if numtheory.VerifyGoldbach(limit) {
			fmt.Printf("Goldbach's conjecture holds for all even numbers up to %d\n", limit)
		} else {
			fmt.Printf("Counterexample found below %d!\n", limit)
		}
		return nil
	},
	Args: cobra.ExactArgs(1),
}

var totientCmd = &cobra.Command{
	Use:   "totient <n>",
	Short: "Euler's totient φ(n)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		phi, err := numtheory.Totient(n)
		if err != nil {
			return err
		}
		fmt.Printf("φ(%d) = %d\n", n, phi)
		return nil
	},
}

var collatzCmd = &cobra.Command{
	Use:   "collatz <n>",
	Short: "Collatz sequence starting at n",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		seq := numtheory.Collatz(n)
		fmt.Println(formatInts(seq))
		fmt.Printf("Reached 1 in %d steps\n", len(seq)-1)
		return nil
	},
}

var crtCmd = &cobra.Command{
	Use:   "crt <remainders> <moduli>",
	Short: "Chinese Remainder Theorem solver",
	Long: `Solve x ≡ r_i (mod m_i) for pairwise coprime moduli. Remainders and
moduli are comma-separated lists.

Example:
  eternal crt 2,3 3,5`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		remainders, err := parseIntList(args[0])
		if err != nil {
			return err
		}
		moduli, err := parseIntList(args[1])
		if err != nil {
			return err
		}
		x, err := numtheory.CRT(remainders, moduli)
		if err != nil {
			return err
		}
		prod := 1
		for _, m := range moduli {
			prod *= m
		}
		fmt.Printf("x = %d (mod %d)\n", x, prod)
		return nil
	},
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func init() {
	primesCmd.Flags().BoolVar(&primesCountOnly, "count", false, "print only the prime count")
	perfectCmd.Flags().IntVar(&perfectWorkers, "workers", 0, "scan workers (0 = one per CPU)")

	rootCmd.AddCommand(primesCmd)
	rootCmd.AddCommand(factorCmd)
	rootCmd.AddCommand(gcdCmd)
	rootCmd.AddCommand(lcmCmd)
	rootCmd.AddCommand(fibCmd)
	rootCmd.AddCommand(perfectCmd)
	rootCmd.AddCommand(twinsCmd)
	rootCmd.AddCommand(goldbachCmd)
	rootCmd.AddCommand(totientCmd)
	rootCmd.AddCommand(collatzCmd)
	rootCmd.AddCommand(crtCmd)
}
