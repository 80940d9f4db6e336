// Package bench times core functions as black boxes and reports
// statistics over the observed wall-clock timings.
package bench

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// Result holds the timing statistics for one benchmarked case.
type Result struct {
	Name       string        `yaml:"name" json:"name"`
	InputSize  int           `yaml:"input_size" json:"input_size"`
	Iterations int           `yaml:"iterations" json:"iterations"`
	Total      time.Duration `yaml:"total" json:"total"`
	Mean       time.Duration `yaml:"mean" json:"mean"`
	StdDev     time.Duration `yaml:"std_dev" json:"std_dev"`
	Min        time.Duration `yaml:"min" json:"min"`
	Max        time.Duration `yaml:"max" json:"max"`
}

// Runner executes benchmark cases and accumulates their results.
// Timing loops run strictly sequentially; concurrency here would
// distort the per-operation statistics.
type Runner struct {
	log     *logrus.Logger
	results []Result
}

// NewRunner creates a runner logging progress through log.
func NewRunner(log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &Runner{log: log}
}

// Time runs fn iterations times and records the timing statistics
// under name with the given representative input size.
func (r *Runner) Time(name string, inputSize, iterations int, fn func()) Result {
	if iterations < 1 {
		iterations = 1
	}

	times := make([]time.Duration, iterations)
	var total time.Duration
	for i := 0; i < iterations; i++ {
		start := time.Now()
		fn()
		times[i] = time.Since(start)
		total += times[i]
	}

	res := Result{
		Name:       name,
		InputSize:  inputSize,
		Iterations: iterations,
		Total:      total,
		Mean:       total / time.Duration(iterations),
		StdDev:     stdDev(times),
		Min:        minOf(times),
		Max:        maxOf(times),
	}
	r.results = append(r.results, res)

	r.log.WithFields(logrus.Fields{
		"case": name,
		"n":    inputSize,
		"mean": res.Mean,
		"std":  res.StdDev,
	}).Debug("benchmark case complete")

	return res
}

// Results returns every result recorded so far, in run order.
func (r *Runner) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// stdDev computes the sample standard deviation, 0 for a single
// observation.
func stdDev(times []time.Duration) time.Duration {
	if len(times) < 2 {
		return 0
	}
	var sum time.Duration
	for _, t := range times {
		sum += t
	}
	mean := float64(sum) / float64(len(times))

	var sq float64
	for _, t := range times {
		d := float64(t) - mean
		sq += d * d
	}
	return time.Duration(math.Sqrt(sq / float64(len(times)-1)))
}

func minOf(times []time.Duration) time.Duration {
	m := times[0]
	for _, t := range times[1:] {
		if t < m {
			m = t
		}
	}
	return m
}

func maxOf(times []time.Duration) time.Duration {
	m := times[0]
	for _, t := range times[1:] {
		if t > m {
			m = t
		}
	}
	return m
}
