package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NewMatrix builds a dense matrix from row-major data.
func NewMatrix(rows, cols int, data []float64) (*mat.Dense, error) {
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for a %dx%d matrix", ErrDimMismatch, len(data), rows, cols)
	}
	return mat.NewDense(rows, cols, data), nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Zeros returns an all-zero rows x cols matrix.
func Zeros(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// Determinant returns det(a) for a square matrix.
func Determinant(a *mat.Dense) (float64, error) {
	r, c := a.Dims()
	if r != c {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}
	return mat.Det(a), nil
}

// Inverse returns a^-1, or ErrSingular when a is not invertible.
func Inverse(a *mat.Dense) (*mat.Dense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return &inv, nil
}

// Solve solves a*x = b for x.
func Solve(a *mat.Dense, b []float64) ([]float64, error) {
	r, _ := a.Dims()
	if len(b) != r {
		return nil, fmt.Errorf("%w: %d equations, %d right-hand values", ErrDimMismatch, r, len(b))
	}
	var x mat.VecDense
	if err := x.SolveVec(a, mat.NewVecDense(len(b), b)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	out := make([]float64, x.Len())
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}

// Rank returns the rank of a, counting singular values above a small
// tolerance relative to the largest.
func Rank(a *mat.Dense) int {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return 0
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 0
	}
	tol := 1e-10 * values[0]
	rank := 0
	for _, v := range values {
		if v > tol {
			rank++
		}
	}
	return rank
}
