package cache

import "strconv"

// PrimeCache defines the interface for memoizing sieve results.
//
// Entries are keyed by the exact sieve limit and never shared across
// differing limits, so a hit is always exactly what the sieve would
// have produced. The number-theory core stays cache-free; this layer
// exists so an interactive session does not re-sieve the same limit
// over and over.
type PrimeCache interface {
	Get(limit int) ([]int, bool)
	Set(limit int, primes []int)
	Clear()
}

// Key generates the cache key for a sieve limit.
func Key(limit int) string {
	return "primes:v1:" + strconv.Itoa(limit)
}
