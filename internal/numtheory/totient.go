package numtheory

// Totient computes Euler's totient: the count of integers in [1, n]
// coprime to n. Uses the product formula over distinct prime factors
// with exact integer arithmetic; at each step the accumulator is
// still divisible by the factor being processed, so no precision is
// lost.
func Totient(n int) (int, error) {
	if n < 1 {
		return 0, ErrTotientDomain
	}
	if n == 1 {
		return 1, nil
	}

	factors, err := PrimeFactorization(n)
	if err != nil {
		return 0, err
	}

	result := n
	seen := make(map[int]struct{}, len(factors))
	for _, p := range factors {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		result = result / p * (p - 1)
	}
	return result, nil
}
