package cli

import (
	"fmt"

	"github.com/eternal-math/eternal/internal/symbolic"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <polynomial>",
	Short: "Differentiate a univariate polynomial",
	Long: `Differentiate a polynomial with respect to its variable.

Example:
  eternal diff "3x^2 - 2x + 1"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, name, err := symbolic.ParsePolynomial(args[0])
		if err != nil {
			return err
		}
		if name == "" {
			fmt.Println("0")
			return nil
		}
		fmt.Printf("d/d%s (%s) = %s\n", name, expr, expr.Diff(name).Simplify())
		return nil
	},
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify <polynomial>",
	Short: "Simplify a univariate polynomial",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, _, err := symbolic.ParsePolynomial(args[0])
		if err != nil {
			return err
		}
		fmt.Println(expr.Simplify())
		return nil
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <polynomial> <x>",
	Short: "Evaluate a polynomial at an integer point",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, name, err := symbolic.ParsePolynomial(args[0])
		if err != nil {
			return err
		}
		x, err := parseInt(args[1])
		if err != nil {
			return err
		}
		if name != "" {
			expr = expr.Sub(name, symbolic.N(int64(x)))
		}
		v, ok := expr.Eval()
		if !ok {
			return fmt.Errorf("expression did not reduce to a number")
		}
		fmt.Println(v.RatString())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(evalCmd)
}
