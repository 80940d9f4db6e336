// Package visualize renders toolkit sequences as terminal charts.
// Pure formatting: it consumes sequences the core produced and
// returns strings, nothing else.
package visualize

import (
	"errors"

	"github.com/guptarohit/asciigraph"
)

// ErrEmptySeries marks a chart request with nothing to draw.
var ErrEmptySeries = errors.New("visualize: empty series")

// DefaultHeight is the chart height in rows used when callers pass 0.
const DefaultHeight = 12

// Chart renders a series as an ascii line chart with a caption.
func Chart(series []float64, caption string, height int) (string, error) {
	if len(series) == 0 {
		return "", ErrEmptySeries
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	), nil
}

// ToFloats widens an int sequence for charting.
func ToFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Gaps returns the differences between consecutive values; for a
// prime list these are the prime gaps.
func Gaps(values []int) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		out[i-1] = float64(values[i] - values[i-1])
	}
	return out
}
