package numtheory

// VerifyGoldbach checks Goldbach's conjecture for every even n in
// [4, limit]: each must decompose as p + q with both prime. Returns
// false on the first even number with no decomposition. A true result
// verifies the conjecture up to limit only, it proves nothing beyond.
//
// The p > n/2 cutoff requires ascending iteration over the primes.
func VerifyGoldbach(limit int) bool {
	primes := Sieve(limit)
	set := make(map[int]struct{}, len(primes))
	for _, p := range primes {
		set[p] = struct{}{}
	}

	for n := 4; n <= limit; n += 2 {
		found := false
		for _, p := range primes {
			if p > n/2 {
				break
			}
			if _, ok := set[n-p]; ok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
