// Package assign provides assignment-problem solvers for loop matching.
//
// The root morph package declares the AssignmentSolver interface but takes no
// dependency on any particular solver; importing this package is only needed
// when the hungarian loop mapper strategy is in use.
package assign

import (
	"errors"
	"math"

	hungarianAlgorithm "github.com/oddg/hungarian-algorithm"
)

// costScale converts float64 distances to the integer costs the underlying
// solver works on. Distances are normalized by the matrix maximum first, so
// the scale bounds the relative precision, not the absolute magnitude.
const costScale = 1e6

// Hungarian solves the linear assignment problem exactly in O(n³) using the
// Hungarian (Kuhn-Munkres) algorithm. The zero value is ready to use.
type Hungarian struct{}

// Solve returns, for each row of the square cost matrix, the index of the
// column assigned to it, minimizing the total cost.
func (Hungarian) Solve(cost [][]float64) ([]int, error) {
	n := len(cost)
	if n == 0 {
		return []int{}, nil
	}
	for _, row := range cost {
		if len(row) != n {
			return nil, errors.New("assign: cost matrix is not square")
		}
	}

	max := 0.0
	for _, row := range cost {
		for _, c := range row {
			if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, errors.New("assign: cost matrix entries must be finite and non-negative")
			}
			if c > max {
				max = c
			}
		}
	}

	scaled := make([][]int, n)
	for i, row := range cost {
		scaled[i] = make([]int, n)
		if max == 0 {
			continue
		}
		for j, c := range row {
			scaled[i][j] = int(math.Round(c / max * costScale))
		}
	}

	return hungarianAlgorithm.Solve(scaled)
}
