// Package numtheory implements the number-theory core of the Eternal
// toolkit: arithmetic primitives, prime sieves, perfect numbers,
// Euler's totient, Collatz sequences, twin primes, Goldbach
// verification and the Chinese Remainder Theorem.
//
// Every function is a deterministic, synchronous computation over its
// input. Failures are domain violations, never transient conditions,
// so nothing here retries or suppresses an error.
package numtheory

// GCD computes the greatest common divisor of a and b using the
// Euclidean algorithm. The result is always non-negative. gcd(0, 0)
// is undefined and returns ErrUndefinedGCD.
func GCD(a, b int) (int, error) {
	if a == 0 && b == 0 {
		return 0, ErrUndefinedGCD
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a, nil
}

// LCM computes the least common multiple of a and b. By definition
// lcm is 0 when either argument is 0; the zero case is handled before
// GCD is consulted so gcd(0, 0) is never reached.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	g, _ := GCD(a, b)
	m := a / g * b
	if m < 0 {
		m = -m
	}
	return m
}

// IsPrime reports whether n is prime, by trial division. Even
// divisors are skipped after 2 is ruled out.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// PrimeFactorization returns the prime factors of n in ascending
// order with multiplicity. Factorization is only defined for n >= 2;
// smaller inputs return ErrFactorDomain.
func PrimeFactorization(n int) ([]int, error) {
	if n < 2 {
		return nil, ErrFactorDomain
	}
	var factors []int
	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}
	for d := 3; d*d <= n; d += 2 {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors, nil
}
