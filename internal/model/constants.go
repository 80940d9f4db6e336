package model

import "math"

// MathConstants is an immutable record of the fundamental constants
// the toolkit exposes. It is built once and passed around by value,
// never as a process-wide mutable singleton.
type MathConstants struct {
	Pi         float64
	E          float64
	Tau        float64 // 2π
	Phi        float64 // golden ratio (1 + √5) / 2
	PhiInverse float64
	Gamma      float64 // Euler-Mascheroni constant
	Sqrt2      float64
	Sqrt3      float64
	Sqrt5      float64
	Ln2        float64
	Ln10       float64
}

// DefaultConstants returns the standard constants record.
func DefaultConstants() MathConstants {
	return MathConstants{
		Pi:         math.Pi,
		E:          math.E,
		Tau:        2 * math.Pi,
		Phi:        (1 + math.Sqrt(5)) / 2,
		PhiInverse: 2 / (1 + math.Sqrt(5)),
		Gamma:      0.5772156649015329,
		Sqrt2:      math.Sqrt2,
		Sqrt3:      math.Sqrt(3),
		Sqrt5:      math.Sqrt(5),
		Ln2:        math.Ln2,
		Ln10:       math.Log(10),
	}
}
