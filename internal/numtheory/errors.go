package numtheory

import "errors"

// Sentinel errors for domain violations.
// Use errors.Is to check: errors.Is(err, numtheory.ErrUndefinedGCD)
var (
	ErrUndefinedGCD   = errors.New("numtheory: gcd(0, 0) is undefined")
	ErrFactorDomain   = errors.New("numtheory: prime factorization requires n >= 2")
	ErrTotientDomain  = errors.New("numtheory: totient requires n >= 1")
	ErrLengthMismatch = errors.New("numtheory: remainders and moduli must have the same length")
	ErrNotCoprime     = errors.New("numtheory: moduli must be pairwise coprime")
	ErrInvalidModulus = errors.New("numtheory: moduli must be positive")
)
