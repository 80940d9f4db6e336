package numtheory

import "fmt"

// CRT solves the system x ≡ remainders[i] (mod moduli[i]) by the
// standard Chinese Remainder Theorem construction and returns the
// unique solution in [0, M) where M is the product of the moduli.
//
// The moduli must be positive and pairwise coprime and the two slices
// must have equal length; violations are domain errors. The coprime
// check runs gcd over every pair, O(k^2) in the number of moduli;
// callers are responsible for keeping k reasonable.
func CRT(remainders, moduli []int) (int, error) {
	if len(remainders) != len(moduli) {
		return 0, fmt.Errorf("%w: %d remainders, %d moduli", ErrLengthMismatch, len(remainders), len(moduli))
	}
	for _, m := range moduli {
		if m < 1 {
			return 0, fmt.Errorf("%w: got %d", ErrInvalidModulus, m)
		}
	}
	for i := 0; i < len(moduli); i++ {
		for j := i + 1; j < len(moduli); j++ {
			g, err := GCD(moduli[i], moduli[j])
			if err != nil {
				return 0, err
			}
			if g != 1 {
				return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNotCoprime, moduli[i], moduli[j], g)
			}
		}
	}

	prod := 1
	for _, m := range moduli {
		prod *= m
	}

	total := 0
	for i, m := range moduli {
		p := prod / m
		total = (total + remainders[i]*p%prod*modInverse(p, m)) % prod
	}
	return ((total % prod) + prod) % prod, nil
}

// modInverse returns a^-1 mod m via the extended Euclidean algorithm.
// Precondition: gcd(a, m) == 1 and m >= 1.
func modInverse(a, m int) int {
	if m == 1 {
		return 0
	}
	t, newT := 0, 1
	r, newR := m, ((a%m)+m)%m
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if t < 0 {
		t += m
	}
	return t
}
