package cli

import (
	"fmt"

	"github.com/eternal-math/eternal/internal/numtheory"
	"github.com/eternal-math/eternal/internal/visualize"
	"github.com/spf13/cobra"
)

var plotHeight int

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render toolkit sequences as terminal charts",
}

var plotCollatzCmd = &cobra.Command{
	Use:   "collatz <n>",
	Short: "Chart the Collatz trajectory of n",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		seq := numtheory.Collatz(n)
		chart, err := visualize.Chart(visualize.ToFloats(seq),
			fmt.Sprintf("Collatz trajectory of %d (%d steps)", n, len(seq)-1), plotHeight)
		if err != nil {
			return err
		}
		fmt.Println(chart)
		return nil
	},
}

var plotGapsCmd = &cobra.Command{
	Use:   "gaps <limit>",
	Short: "Chart prime gaps up to a limit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := parseInt(args[0])
		if err != nil {
			return err
		}
		primes := numtheory.Sieve(limit)
		chart, err := visualize.Chart(visualize.Gaps(primes),
			fmt.Sprintf("Prime gaps up to %d", limit), plotHeight)
		if err != nil {
			return err
		}
		fmt.Println(chart)
		return nil
	},
}

var plotTotientCmd = &cobra.Command{
	Use:   "totient <n>",
	Short: "Chart φ(k) for k in [1, n]",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		values := make([]float64, 0, n)
		for k := 1; k <= n; k++ {
			phi, err := numtheory.Totient(k)
			if err != nil {
				return err
			}
			values = append(values, float64(phi))
		}
		chart, err := visualize.Chart(values,
			fmt.Sprintf("Euler's totient over [1, %d]", n), plotHeight)
		if err != nil {
			return err
		}
		fmt.Println(chart)
		return nil
	},
}

func init() {
	plotCmd.PersistentFlags().IntVar(&plotHeight, "height", visualize.DefaultHeight, "chart height in rows")
	plotCmd.AddCommand(plotCollatzCmd)
	plotCmd.AddCommand(plotGapsCmd)
	plotCmd.AddCommand(plotTotientCmd)
	rootCmd.AddCommand(plotCmd)
}
