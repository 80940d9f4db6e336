package bench

import (
	"fmt"

	"github.com/eternal-math/eternal/internal/numtheory"
	"github.com/sirupsen/logrus"
)

// Suite runs the standard benchmark set against the number-theory
// core.
type Suite struct {
	runner     *Runner
	iterations int
}

// NewSuite creates a suite running each case iterations times.
func NewSuite(log *logrus.Logger, iterations int) *Suite {
	return &Suite{runner: NewRunner(log), iterations: iterations}
}

// Sieve benchmarks prime generation across the given limits.
func (s *Suite) Sieve(limits []int) {
	for _, limit := range limits {
		limit := limit
		s.runner.Time(fmt.Sprintf("sieve(%d)", limit), limit, s.iterations, func() {
			numtheory.Sieve(limit)
		})
	}
}

// PrimeChecks benchmarks IsPrime against known primes of growing size.
func (s *Suite) PrimeChecks() {
	for _, n := range []int{97, 997, 9973, 99991, 999983} {
		n := n
		s.runner.Time(fmt.Sprintf("is_prime(%d)", n), n, s.iterations*10, func() {
			numtheory.IsPrime(n)
		})
	}
}

// Fibonacci benchmarks sequence generation across lengths.
func (s *Suite) Fibonacci(counts []int) {
	for _, count := range counts {
		count := count
		s.runner.Time(fmt.Sprintf("fibonacci_sequence(%d)", count), count, s.iterations, func() {
			numtheory.FibonacciSequence(count)
		})
	}
}

// PerfectScan benchmarks a full perfect-number scan up to each limit.
func (s *Suite) PerfectScan(limits []int) {
	for _, limit := range limits {
		limit := limit
		s.runner.Time(fmt.Sprintf("perfect_scan(%d)", limit), limit, s.iterations, func() {
			for i := 1; i <= limit; i++ {
				numtheory.IsPerfect(i)
			}
		})
	}
}

// Totient benchmarks the totient across inputs.
func (s *Suite) Totient(values []int) {
	for _, n := range values {
		n := n
		s.runner.Time(fmt.Sprintf("totient(%d)", n), n, s.iterations, func() {
			_, _ = numtheory.Totient(n)
		})
	}
}

// Results returns all recorded results in run order.
func (s *Suite) Results() []Result {
	return s.runner.Results()
}
