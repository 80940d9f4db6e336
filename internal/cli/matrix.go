package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eternal-math/eternal/internal/linalg"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

// parseMatrix parses "1,2;3,4" into a dense matrix: rows separated by
// semicolons, values by commas.
func parseMatrix(arg string) (*mat.Dense, error) {
	rows := strings.Split(arg, ";")
	var data []float64
	cols := -1
	for _, row := range rows {
		parts := strings.Split(row, ",")
		if cols == -1 {
			cols = len(parts)
		} else if len(parts) != cols {
			return nil, fmt.Errorf("ragged matrix: row %q has %d values, want %d", row, len(parts), cols)
		}
		for _, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("not a number: %q", p)
			}
			data = append(data, v)
		}
	}
	return linalg.NewMatrix(len(rows), cols, data)
}

func parseFloatList(arg string) ([]float64, error) {
	parts := strings.Split(arg, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

var detCmd = &cobra.Command{
	Use:   "det <matrix>",
	Short: "Determinant of a square matrix",
	Long: `Compute the determinant. Rows are separated by semicolons, values by
commas.

Example:
  eternal det "1,2;3,4"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := parseMatrix(args[0])
		if err != nil {
			return err
		}
		det, err := linalg.Determinant(m)
		if err != nil {
			return err
		}
		fmt.Printf("det = %g\n", det)
		return nil
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve <matrix> <rhs>",
	Short: "Solve the linear system A x = b",
	Long: `Solve a linear system. The matrix uses semicolon-separated rows; the
right-hand side is a comma-separated list.

Example:
  eternal solve "1,1;1,-1" 3,1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseMatrix(args[0])
		if err != nil {
			return err
		}
		b, err := parseFloatList(args[1])
		if err != nil {
			return err
		}
		x, err := linalg.Solve(a, b)
		if err != nil {
			return err
		}
		fmt.Printf("x = %v\n", x)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detCmd)
	rootCmd.AddCommand(solveCmd)
}
