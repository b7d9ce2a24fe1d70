package assign

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHungarianSolve(t *testing.T) {
	got, err := Hungarian{}.Solve([][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, got)
}

func TestHungarianSolveScaleInvariant(t *testing.T) {
	// Scaling all costs must not change the optimal assignment.
	base := [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	scaled := make([][]float64, len(base))
	for i, row := range base {
		scaled[i] = make([]float64, len(row))
		for j, c := range row {
			scaled[i][j] = c * 1e-4
		}
	}
	a, err := Hungarian{}.Solve(base)
	require.NoError(t, err)
	b, err := Hungarian{}.Solve(scaled)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHungarianSolveTrivial(t *testing.T) {
	got, err := Hungarian{}.Solve([][]float64{{0}})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)

	got, err = Hungarian{}.Solve(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHungarianSolveInvalid(t *testing.T) {
	_, err := Hungarian{}.Solve([][]float64{{1, 2}})
	assert.Error(t, err)

	_, err = Hungarian{}.Solve([][]float64{{1, -2}, {3, 4}})
	assert.Error(t, err)

	_, err = Hungarian{}.Solve([][]float64{{1, math.NaN()}, {3, 4}})
	assert.Error(t, err)

	_, err = Hungarian{}.Solve([][]float64{{1, math.Inf(1)}, {3, 4}})
	assert.Error(t, err)
}
