package linalg

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func mustVector(t *testing.T, components ...float64) Vector {
	t.Helper()
	v, err := NewVector(components...)
	if err != nil {
		t.Fatalf("NewVector(%v): %v", components, err)
	}
	return v
}

func TestNewVectorEmpty(t *testing.T) {
	if _, err := NewVector(); !errors.Is(err, ErrEmptyVector) {
		t.Errorf("NewVector() error = %v, want ErrEmptyVector", err)
	}
}

func TestVectorAddSub(t *testing.T) {
	v := mustVector(t, 1, 2, 3)
	w := mustVector(t, 4, 5, 6)

	sum, err := v.Add(w)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	for i, want := range []float64{5, 7, 9} {
		assertFloat(t, "sum", sum.At(i), want)
	}

	diff, err := w.Sub(v)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	for i := 0; i < 3; i++ {
		assertFloat(t, "diff", diff.At(i), 3)
	}

	if _, err := v.Add(mustVector(t, 1, 2)); !errors.Is(err, ErrDimMismatch) {
		t.Errorf("mismatched Add error = %v, want ErrDimMismatch", err)
	}
}

func TestVectorDotCross(t *testing.T) {
	v := mustVector(t, 1, 0, 0)
	w := mustVector(t, 0, 1, 0)

	dot, err := v.Dot(w)
	if err != nil {
		t.Fatalf("Dot: %v", err)
	}
	assertFloat(t, "dot", dot, 0)

	cross, err := v.Cross(w)
	if err != nil {
		t.Fatalf("Cross: %v", err)
	}
	for i, want := range []float64{0, 0, 1} {
		assertFloat(t, "cross", cross.At(i), want)
	}

	if _, err := mustVector(t, 1, 2).Cross(mustVector(t, 3, 4)); !errors.Is(err, ErrNot3D) {
		t.Errorf("2D cross error = %v, want ErrNot3D", err)
	}
}

func TestVectorMagnitudeNormalize(t *testing.T) {
	v := mustVector(t, 3, 4)
	assertFloat(t, "magnitude", v.Magnitude(), 5)

	unit, err := v.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	assertFloat(t, "unit magnitude", unit.Magnitude(), 1)
	assertFloat(t, "unit[0]", unit.At(0), 0.6)

	if _, err := mustVector(t, 0, 0).Normalize(); !errors.Is(err, ErrZeroVector) {
		t.Errorf("zero Normalize error = %v, want ErrZeroVector", err)
	}
}

func TestDeterminant(t *testing.T) {
	m, err := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	det, err := Determinant(m)
	if err != nil {
		t.Fatalf("Determinant: %v", err)
	}
	assertFloat(t, "det", det, -2)

	rect, _ := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if _, err := Determinant(rect); !errors.Is(err, ErrNotSquare) {
		t.Errorf("rectangular det error = %v, want ErrNotSquare", err)
	}
}

func TestInverse(t *testing.T) {
	m, _ := NewMatrix(2, 2, []float64{4, 7, 2, 6})
	inv, err := Inverse(m)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	assertFloat(t, "inv[0,0]", inv.At(0, 0), 0.6)
	assertFloat(t, "inv[0,1]", inv.At(0, 1), -0.7)
	assertFloat(t, "inv[1,0]", inv.At(1, 0), -0.2)
	assertFloat(t, "inv[1,1]", inv.At(1, 1), 0.4)

	singular, _ := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	if _, err := Inverse(singular); !errors.Is(err, ErrSingular) {
		t.Errorf("singular Inverse error = %v, want ErrSingular", err)
	}
}

func TestSolve(t *testing.T) {
	// x + y = 3, x - y = 1 -> x = 2, y = 1
	a, _ := NewMatrix(2, 2, []float64{1, 1, 1, -1})
	x, err := Solve(a, []float64{3, 1})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	assertFloat(t, "x", x[0], 2)
	assertFloat(t, "y", x[1], 1)

	if _, err := Solve(a, []float64{1}); !errors.Is(err, ErrDimMismatch) {
		t.Errorf("short rhs error = %v, want ErrDimMismatch", err)
	}
}

func TestRank(t *testing.T) {
	full, _ := NewMatrix(2, 2, []float64{1, 0, 0, 1})
	if got := Rank(full); got != 2 {
		t.Errorf("Rank(identity) = %d, want 2", got)
	}
	deficient, _ := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	if got := Rank(deficient); got != 1 {
		t.Errorf("Rank(rank-1) = %d, want 1", got)
	}
}

func TestIdentityZeros(t *testing.T) {
	id := Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assertFloat(t, "identity", id.At(i, j), want)
		}
	}
	z := Zeros(2, 3)
	r, c := z.Dims()
	if r != 2 || c != 3 {
		t.Errorf("Zeros dims = %dx%d", r, c)
	}
}
