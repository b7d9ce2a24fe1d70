package morph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Norm selects how per-vertex distances are aggregated when scoring a
// candidate alignment offset.
//
// The norms trade off differently: L1 tolerates a single bad vertex cheaply,
// L2 penalizes one large error more than several small ones, and L∞
// minimizes the single worst gap.
type Norm string

const (
	// NormL1 sums the per-vertex distances. The default.
	NormL1 Norm = "l1"
	// NormL2 takes the square root of the sum of squared distances.
	NormL2 Norm = "l2"
	// NormLinf takes the maximum distance (minimax).
	NormLinf Norm = "linf"
)

// ParseNorm converts a configuration string to a Norm.
func ParseNorm(s string) (Norm, error) {
	switch Norm(s) {
	case NormL1, NormL2, NormLinf:
		return Norm(s), nil
	default:
		return "", fmt.Errorf("morph: invalid norm %q (valid: l1, l2, linf)", s)
	}
}

// aggregate folds a slice of non-negative per-vertex distances into a single
// score.
func (n Norm) aggregate(d []float64) float64 {
	switch n {
	case NormL2:
		return floats.Norm(d, 2)
	case NormLinf:
		return floats.Norm(d, math.Inf(1))
	default:
		return floats.Norm(d, 1)
	}
}

// AngleDistanceFunc scores pairing the angle sequence a against b rotated by
// offset. Custom implementations may replace the built-in norms in
// [AngularAligner].
type AngleDistanceFunc func(a, b []float64, offset int) float64

// PointDistanceFunc scores pairing the vertex sequence a against b rotated
// by offset. Custom implementations may replace the built-in norms in
// [EuclideanAligner].
type PointDistanceFunc func(a, b []Point, offset int) float64

// angleNormDistance returns the built-in AngleDistanceFunc for a norm.
func angleNormDistance(norm Norm) AngleDistanceFunc {
	return func(a, b []float64, offset int) float64 {
		n := len(a)
		d := make([]float64, n)
		for i := range a {
			d[i] = angleDistance(a[i], b[(i+offset)%n])
		}
		return norm.aggregate(d)
	}
}

// pointNormDistance returns the built-in PointDistanceFunc for a norm.
func pointNormDistance(norm Norm) PointDistanceFunc {
	return func(a, b []Point, offset int) float64 {
		n := len(a)
		d := make([]float64, n)
		for i := range a {
			d[i] = a[i].Distance(b[(i+offset)%n])
		}
		return norm.aggregate(d)
	}
}
