package numtheory

// IsPerfect reports whether n equals the sum of its proper divisors.
//
// Even perfect numbers have the Euclid-Euler form 2^(p-1) * (2^p - 1)
// with 2^p - 1 a Mersenne prime, so that shape is checked first: the
// powers of two are factored out and the odd remainder compared
// against the matching Mersenne candidate. Everything else falls back
// to a paired trial-division divisor sum with an early exit once the
// running sum exceeds n.
func IsPerfect(n int) bool {
	if n <= 1 {
		return false
	}

	if n%2 == 0 {
		m, k := n, 0
		for m%2 == 0 {
			m /= 2
			k++
		}
		if m == (1<<(k+1))-1 && IsPrime(m) {
			return true
		}
	}

	sum := 1 // 1 is a proper divisor of every n > 1
	for i := 2; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		sum += i
		if j := n / i; j != i {
			sum += j
		}
		if sum > n {
			return false
		}
	}
	return sum == n
}
