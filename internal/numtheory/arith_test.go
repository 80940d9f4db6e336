package numtheory

import (
	"errors"
	"testing"
)

func TestGCD(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{12, 8, 4},
		{8, 12, 4},
		{17, 5, 1},
		{0, 9, 9},
		{9, 0, 9},
		{-12, 8, 4},
		{12, -8, 4},
		{-12, -8, 4},
		{1, 1, 1},
	}
	for _, c := range cases {
		got, err := GCD(c.a, c.b)
		if err != nil {
			t.Errorf("GCD(%d, %d) returned error: %v", c.a, c.b, err)
			continue
		}
		if got != c.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestGCDSymmetryAndDivisibility(t *testing.T) {
	pairs := [][2]int{{48, 180}, {-27, 18}, {7, 0}, {1000000, 999999}}
	for _, p := range pairs {
		g1, err1 := GCD(p[0], p[1])
		g2, err2 := GCD(p[1], p[0])
		if err1 != nil || err2 != nil {
			t.Fatalf("GCD(%d, %d) errored: %v %v", p[0], p[1], err1, err2)
		}
		if g1 != g2 {
			t.Errorf("GCD not symmetric for %v: %d vs %d", p, g1, g2)
		}
		if g1 < 0 {
			t.Errorf("GCD(%d, %d) = %d, want non-negative", p[0], p[1], g1)
		}
		if p[0]%g1 != 0 || p[1]%g1 != 0 {
			t.Errorf("GCD(%d, %d) = %d does not divide both", p[0], p[1], g1)
		}
	}
}

func TestGCDBothZero(t *testing.T) {
	_, err := GCD(0, 0)
	if !errors.Is(err, ErrUndefinedGCD) {
		t.Errorf("GCD(0, 0) error = %v, want ErrUndefinedGCD", err)
	}
}

func TestLCM(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{4, 6, 12},
		{6, 4, 12},
		{7, 13, 91},
		{0, 5, 0},
		{5, 0, 0},
		{0, 0, 0},
		{-4, 6, 12},
	}
	for _, c := range cases {
		if got := LCM(c.a, c.b); got != c.want {
			t.Errorf("LCM(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 97, 997, 7919}
	for _, p := range primes {
		if !IsPrime(p) {
			t.Errorf("IsPrime(%d) = false, want true", p)
		}
	}
	composites := []int{-7, 0, 1, 4, 9, 15, 91, 1001, 7917}
	for _, c := range composites {
		if IsPrime(c) {
			t.Errorf("IsPrime(%d) = true, want false", c)
		}
	}
}

func TestPrimeFactorization(t *testing.T) {
	cases := []struct {
		n    int
		want []int
	}{
		{2, []int{2}},
		{12, []int{2, 2, 3}},
		{17, []int{17}},
		{360, []int{2, 2, 2, 3, 3, 5}},
		{9973, []int{9973}},
	}
	for _, c := range cases {
		got, err := PrimeFactorization(c.n)
		if err != nil {
			t.Errorf("PrimeFactorization(%d) returned error: %v", c.n, err)
			continue
		}
		if !equalInts(got, c.want) {
			t.Errorf("PrimeFactorization(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestPrimeFactorizationDomain(t *testing.T) {
	for _, n := range []int{-5, 0, 1} {
		if _, err := PrimeFactorization(n); !errors.Is(err, ErrFactorDomain) {
			t.Errorf("PrimeFactorization(%d) error = %v, want ErrFactorDomain", n, err)
		}
	}
}

func TestPrimeFactorizationProduct(t *testing.T) {
	for n := 2; n <= 500; n++ {
		factors, err := PrimeFactorization(n)
		if err != nil {
			t.Fatalf("PrimeFactorization(%d): %v", n, err)
		}
		prod := 1
		prev := 0
		for _, f := range factors {
			if !IsPrime(f) {
				t.Errorf("PrimeFactorization(%d) contains composite %d", n, f)
			}
			if f < prev {
				t.Errorf("PrimeFactorization(%d) = %v not ascending", n, factors)
			}
			prev = f
			prod *= f
		}
		if prod != n {
			t.Errorf("PrimeFactorization(%d) product = %d", n, prod)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
