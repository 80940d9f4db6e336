package cli

import (
	"fmt"

	"github.com/eternal-math/eternal/internal/proof"
	"github.com/spf13/cobra"
)

// theoremCmd represents the theorem command
var theoremCmd = &cobra.Command{
	Use:   "theorem",
	Short: "Show the Fundamental Theorem of Arithmetic and its proof",
	Long: `Print the Fundamental Theorem of Arithmetic as a structured proof
object: the axioms it rests on, each derivation step with its
inference rule, and the result of the structural verification walk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		th := proof.BuildFundamentalTheoremOfArithmetic()
		fmt.Println(th.String())
		fmt.Println()

		fmt.Println("Axioms:")
		for i, a := range th.Proof.Axioms() {
			fmt.Printf("  A%d. %s\n", i+1, a.Description)
		}
		fmt.Println()

		fmt.Printf("Proof (%s):\n", th.Proof.Method())
		for i, s := range th.Proof.Steps() {
			fmt.Printf("  %d. [%s] %s\n", i+1, s.Rule, s.Conclusion.Description)
			fmt.Printf("     %s\n", s.Justification)
		}
		fmt.Println()

		if th.Proof.Verify() {
			fmt.Println("Verification: all premises resolve in order, proof is well-formed")
		} else {
			fmt.Println("Verification: FAILED, dependency chain is broken")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(theoremCmd)
}
