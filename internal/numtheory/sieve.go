package numtheory

import "math"

// SieveConfig carries the tuning parameters of the sieve engine. The
// defaults come from the reference implementation; neither value is a
// correctness boundary, only a memory/speed trade-off point.
type SieveConfig struct {
	// SegmentThreshold is the largest limit handled by the classic
	// one-array sieve. Above it the segmented sieve takes over.
	SegmentThreshold int `yaml:"segment_threshold" json:"segment_threshold"`
	// MinWindow is the smallest segment size used by the segmented
	// sieve; the actual window is max(sqrt(limit), MinWindow).
	MinWindow int `yaml:"min_window" json:"min_window"`
}

// DefaultSieveConfig returns the standard tuning parameters.
func DefaultSieveConfig() SieveConfig {
	return SieveConfig{
		SegmentThreshold: 1_000_000,
		MinWindow:        32_768,
	}
}

// Sieve returns all primes <= limit in ascending order, empty when
// limit < 2. Limits above the default segment threshold are handled
// by the segmented sieve; the output is identical either way.
func Sieve(limit int) []int {
	return SieveWithConfig(limit, DefaultSieveConfig())
}

// SieveWithConfig is Sieve with explicit tuning parameters. Setting
// SegmentThreshold below the limit forces the segmented path, which
// is how the cross-check tests exercise both algorithms on the same
// input.
func SieveWithConfig(limit int, cfg SieveConfig) []int {
	if limit < 2 {
		return []int{}
	}
	if limit <= cfg.SegmentThreshold {
		return sieveClassic(limit)
	}
	return sieveSegmented(limit, cfg.MinWindow)
}

// sieveClassic is the textbook Sieve of Eratosthenes over a single
// boolean array indexed 0..limit.
func sieveClassic(limit int) []int {
	if limit < 2 {
		return []int{}
	}
	composite := make([]bool, limit+1)
	for i := 2; i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	primes := make([]int, 0, limit/2)
	for i := 2; i <= limit; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// sieveSegmented sieves (sqrt(limit), limit] in fixed-size windows
// using base primes up to sqrt(limit). Peak memory is
// O(sqrt(limit) + window) instead of O(limit).
func sieveSegmented(limit, minWindow int) []int {
	root := intSqrt(limit)
	base := sieveClassic(root)

	window := root
	if window < minWindow {
		window = minWindow
	}

	primes := make([]int, len(base), len(base)+limit/10)
	copy(primes, base)

	marked := make([]bool, window)
	for low := root + 1; low <= limit; low += window {
		high := low + window - 1
		if high > limit {
			high = limit
		}
		span := marked[:high-low+1]
		for i := range span {
			span[i] = false
		}
		for _, p := range base {
			start := p * p
			if start < low {
				// first multiple of p at or above the window start
				start = (low + p - 1) / p * p
			}
			for m := start; m <= high; m += p {
				span[m-low] = true
			}
		}
		for i, composite := range span {
			if !composite {
				primes = append(primes, low+i)
			}
		}
	}
	return primes
}

// intSqrt returns floor(sqrt(n)), corrected for float rounding.
func intSqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
