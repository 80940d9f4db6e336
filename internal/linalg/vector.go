// Package linalg provides vector and matrix helpers as a thin layer
// over gonum. The toolkit delegates all the numerics; this package
// only adds the domain checks and the small-vector conveniences the
// CLI and examples need.
package linalg

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for vector and matrix domain violations.
var (
	ErrEmptyVector = errors.New("linalg: vector must have at least one component")
	ErrDimMismatch = errors.New("linalg: dimension mismatch")
	ErrNot3D       = errors.New("linalg: cross product requires 3D vectors")
	ErrZeroVector  = errors.New("linalg: cannot normalize zero vector")
	ErrNotSquare   = errors.New("linalg: matrix must be square")
	ErrSingular    = errors.New("linalg: matrix is singular")
)

// Vector is an immutable real vector.
type Vector struct {
	components []float64
}

// NewVector builds a vector from its components.
func NewVector(components ...float64) (Vector, error) {
	if len(components) == 0 {
		return Vector{}, ErrEmptyVector
	}
	c := make([]float64, len(components))
	copy(c, components)
	return Vector{components: c}, nil
}

// Dim returns the number of components.
func (v Vector) Dim() int { return len(v.components) }

// At returns the ith component.
func (v Vector) At(i int) float64 { return v.components[i] }

// Components returns a copy of the component slice.
func (v Vector) Components() []float64 {
	out := make([]float64, len(v.components))
	copy(out, v.components)
	return out
}

// Add returns v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	if v.Dim() != w.Dim() {
		return Vector{}, fmt.Errorf("%w: %d vs %d", ErrDimMismatch, v.Dim(), w.Dim())
	}
	out := make([]float64, v.Dim())
	for i := range out {
		out[i] = v.components[i] + w.components[i]
	}
	return Vector{components: out}, nil
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) (Vector, error) {
	if v.Dim() != w.Dim() {
		return Vector{}, fmt.Errorf("%w: %d vs %d", ErrDimMismatch, v.Dim(), w.Dim())
	}
	out := make([]float64, v.Dim())
	for i := range out {
		out[i] = v.components[i] - w.components[i]
	}
	return Vector{components: out}, nil
}

// Scale returns s * v.
func (v Vector) Scale(s float64) Vector {
	out := make([]float64, v.Dim())
	for i := range out {
		out[i] = s * v.components[i]
	}
	return Vector{components: out}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) (float64, error) {
	if v.Dim() != w.Dim() {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimMismatch, v.Dim(), w.Dim())
	}
	sum := 0.0
	for i := range v.components {
		sum += v.components[i] * w.components[i]
	}
	return sum, nil
}

// Cross returns the cross product; both vectors must be 3D.
func (v Vector) Cross(w Vector) (Vector, error) {
	if v.Dim() != 3 || w.Dim() != 3 {
		return Vector{}, ErrNot3D
	}
	a, b, c := v.components[0], v.components[1], v.components[2]
	d, e, f := w.components[0], w.components[1], w.components[2]
	return Vector{components: []float64{b*f - c*e, c*d - a*f, a*e - b*d}}, nil
}

// Magnitude returns the Euclidean norm.
func (v Vector) Magnitude() float64 {
	sum := 0.0
	for _, c := range v.components {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// Normalize returns the unit vector in the direction of v.
func (v Vector) Normalize() (Vector, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector{}, ErrZeroVector
	}
	return v.Scale(1 / mag), nil
}

func (v Vector) String() string {
	return fmt.Sprintf("%v", v.components)
}
