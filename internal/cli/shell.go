package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eternal-math/eternal/internal/cache"
	"github.com/eternal-math/eternal/internal/model"
	"github.com/eternal-math/eternal/internal/numtheory"
	"github.com/eternal-math/eternal/internal/proof"
	"github.com/eternal-math/eternal/internal/search"
	"github.com/spf13/cobra"
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive exploration session",
	Long: `Start an interactive session. Commands mirror the one-shot CLI;
sieve results are cached per limit for the lifetime of the session, so
repeating a limit is free.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newShellSession(loadConfig(), os.Stdout)
		s.run(os.Stdin)
		return nil
	},
}

// shellSession holds the per-session state: the effective config and
// the prime cache shared across commands.
type shellSession struct {
	cfg    model.Config
	primes cache.PrimeCache // nil when caching is disabled
	out    io.Writer
	quit   bool
}

func newShellSession(cfg model.Config, out io.Writer) *shellSession {
	s := &shellSession{cfg: cfg, out: out}
	if cfg.Cache.Enabled {
		s.primes = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
	}
	return s
}

// sieve returns primes up to limit, consulting the session cache
// first. Entries are keyed by the exact limit, so differing limits
// never share results.
func (s *shellSession) sieve(limit int) []int {
	if s.primes != nil {
		if p, ok := s.primes.Get(limit); ok {
			return p
		}
	}
	p := numtheory.SieveWithConfig(limit, s.cfg.Sieve)
	if s.primes != nil {
		s.primes.Set(limit, p)
	}
	return p
}

func (s *shellSession) run(in io.Reader) {
	fmt.Fprintln(s.out, "Welcome to the Eternal interactive shell.")
	fmt.Fprintln(s.out, "Type 'help' for available commands or 'quit' to exit.")

	scanner := bufio.NewScanner(in)
	for !s.quit {
		fmt.Fprint(s.out, "eternal> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return
		}
		s.dispatch(scanner.Text())
	}
}

// dispatch parses one input line and routes it through the static
// command table. Errors are printed and the session continues.
func (s *shellSession) dispatch(line string) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]

	h, ok := shellCommands[name]
	if !ok {
		fmt.Fprintf(s.out, "Unknown command: %s\nType 'help' for available commands.\n", name)
		return
	}
	if err := h.run(s, args); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

type shellHandler struct {
	usage   string
	summary string
	run     func(s *shellSession, args []string) error
}

// shellOrder fixes the help listing; the map alone has no order.
var shellOrder = []string{
	"primes", "factor", "fib", "perfect", "twins", "goldbach",
	"euler", "collatz", "crt", "theorem", "constants", "help", "quit",
}

// shellCommands is populated in init: the help handler lists the
// table it lives in, which a composite literal cannot reference.
var shellCommands map[string]shellHandler

func init() {
	shellCommands = map[string]shellHandler{
		"help": {
			usage:   "help",
			summary: "Show this help",
			run: func(s *shellSession, args []string) error {
				fmt.Fprintln(s.out, "Available commands:")
				for _, name := range shellOrder {
					h := shellCommands[name]
					fmt.Fprintf(s.out, "  %-22s %s\n", h.usage, h.summary)
				}
				return nil
			},
		},
		"primes": {
			usage:   "primes <limit>",
			summary: "Generate primes up to a limit",
			run: func(s *shellSession, args []string) error {
				limit, err := shellArg(args, "primes <limit>")
				if err != nil {
					return err
				}
				primes := s.sieve(limit)
				fmt.Fprintf(s.out, "%s\n%d primes <= %d\n", formatInts(primes), len(primes), limit)
				return nil
			},
		},
		"factor": {
			usage:   "factor <n>",
			summary: "Prime factorization of n",
			run: func(s *shellSession, args []string) error {
				n, err := shellArg(args, "factor <n>")
				if err != nil {
					return err
				}
				factors, err := numtheory.PrimeFactorization(n)
				if err != nil {
					return err
				}
				fmt.Fprintf(s.out, "%d = %s\n", n, strings.Trim(strings.ReplaceAll(formatInts(factors), ", ", " * "), "[]"))
				return nil
			},
		},
		"fib": {
			usage:   "fib <count>",
			summary: "First count Fibonacci numbers",
			run: func(s *shellSession, args []string) error {
				count, err := shellArg(args, "fib <count>")
				if err != nil {
					return err
				}
				fmt.Fprintln(s.out, formatInts(numtheory.FibonacciSequence(count)))
				return nil
			},
		},
		"perfect": {
			usage:   "perfect <limit>",
			summary: "Perfect numbers up to a limit",
			run: func(s *shellSession, args []string) error {
				limit, err := shellArg(args, "perfect <limit>")
				if err != nil {
					return err
				}
				found, err := search.PerfectNumbers(context.Background(), limit, 0)
				if err != nil {
					return err
				}
				fmt.Fprintln(s.out, formatInts(found))
				return nil
			},
		},
		"twins": {
			usage:   "twins <limit>",
			summary: "Twin prime pairs up to a limit",
			run: func(s *shellSession, args []string) error {
				limit, err := shellArg(args, "twins <limit>")
				if err != nil {
					return err
				}
				pairs := numtheory.TwinPrimes(limit)
				for _, p := range pairs {
					fmt.Fprintf(s.out, "(%d, %d)\n", p[0], p[1])
				}
				fmt.Fprintf(s.out, "%d twin prime pairs\n", len(pairs))
				return nil
			},
		},
		"goldbach": {
			usage:   "goldbach <limit>",
			summary: "Verify Goldbach's conjecture up to a limit",
			run: func(s *shellSession, args []string) error {
				limit, err := shellArg(args, "goldbach <limit>")
				if err != nil {
					return err
				}
				if numtheory.VerifyGoldbach(limit) {
					fmt.Fprintf(s.out, "Holds for all even numbers up to %d\n", limit)
				} else {
					fmt.Fprintf(s.out, "Counterexample found below %d!\n", limit)
				}
				return nil
			},
		},
		"euler": {
			usage:   "euler <n>",
			summary: "Euler's totient φ(n)",
			run: func(s *shellSession, args []string) error {
				n, err := shellArg(args, "euler <n>")
				if err != nil {
					return err
				}
				phi, err := numtheory.Totient(n)
				if err != nil {
					return err
				}
				fmt.Fprintf(s.out, "φ(%d) = %d\n", n, phi)
				return nil
			},
		},
		"collatz": {
			usage:   "collatz <n>",
			summary: "Collatz sequence for n",
			run: func(s *shellSession, args []string) error {
				n, err := shellArg(args, "collatz <n>")
				if err != nil {
					return err
				}
				seq := numtheory.Collatz(n)
				fmt.Fprintf(s.out, "%s\nReached 1 in %d steps\n", formatInts(seq), len(seq)-1)
				return nil
			},
		},
		"crt": {
			usage:   "crt <rems> <mods>",
			summary: "Chinese Remainder Theorem solver",
			run: func(s *shellSession, args []string) error {
				if len(args) != 2 {
					return fmt.Errorf("usage: crt <remainders> <moduli> (e.g. crt 2,3 3,5)")
				}
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
				fmt.Fprintf(s.out, "x = %d\n", x)
				return nil
			},
		},
		"theorem": {
			usage:   "theorem",
			summary: "Show the Fundamental Theorem of Arithmetic",
			run: func(s *shellSession, args []string) error {
				th := proof.BuildFundamentalTheoremOfArithmetic()
				fmt.Fprintln(s.out, th.String())
				for i, step := range th.Proof.Steps() {
					fmt.Fprintf(s.out, "  %d. [%s] %s\n", i+1, step.Rule, step.Conclusion.Description)
				}
				return nil
			},
		},
		"constants": {
			usage:   "constants",
			summary: "Show the fundamental constants",
			run: func(s *shellSession, args []string) error {
				c := model.DefaultConstants()
				fmt.Fprintf(s.out, "pi    = %.15f\n", c.Pi)
				fmt.Fprintf(s.out, "e     = %.15f\n", c.E)
				fmt.Fprintf(s.out, "tau   = %.15f\n", c.Tau)
				fmt.Fprintf(s.out, "phi   = %.15f\n", c.Phi)
				fmt.Fprintf(s.out, "gamma = %.15f\n", c.Gamma)
				fmt.Fprintf(s.out, "sqrt2 = %.15f\n", c.Sqrt2)
				return nil
			},
		},
		"quit": {
			usage:   "quit | exit",
			summary: "Exit the shell",
			run: func(s *shellSession, args []string) error {
				s.quit = true
				fmt.Fprintln(s.out, "Goodbye!")
				return nil
			},
		},
	}
	shellCommands["exit"] = shellCommands["quit"]
}

// shellArg extracts the single integer argument most commands take.
func shellArg(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	return parseInt(args[0])
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
