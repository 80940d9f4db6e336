package numtheory

// TwinPrimes returns every pair (p, p+2) with both members prime and
// p <= limit, ordered by p ascending. Each p yields at most one pair,
// so no deduplication is needed.
func TwinPrimes(limit int) [][2]int {
	primes := Sieve(limit)
	set := make(map[int]struct{}, len(primes))
	for _, p := range primes {
		set[p] = struct{}{}
	}

	pairs := [][2]int{}
	for _, p := range primes {
		if _, ok := set[p+2]; ok {
			pairs = append(pairs, [2]int{p, p + 2})
		}
	}
	return pairs
}
