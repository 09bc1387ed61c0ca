// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/matrix"
	"github.com/stretchr/testify/require"
)

// TestElementwise checks Add/Sub/Minimum/Scale on both Dense and hidden operands.
func TestElementwise(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{0, 60, 40}, {10, 0, 90}, {50, 50, 0}})
	b := MustDense(t, [][]float64{{0, 10, 50}, {60, 0, 50}, {40, 90, 0}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireClose(t, MustDense(t, [][]float64{{0, 70, 90}, {70, 0, 140}, {90, 140, 0}}), sum, 0)

	diff, err := matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	requireClose(t, MustDense(t, [][]float64{{0, 50, -10}, {-50, 0, 40}, {10, -40, 0}}), diff, 0)

	low, err := matrix.Minimum(a, hide{b})
	require.NoError(t, err)
	requireClose(t, MustDense(t, [][]float64{{0, 10, 40}, {10, 0, 50}, {40, 50, 0}}), low, 0)

	half, err := matrix.Scale(a, 0.5)
	require.NoError(t, err)
	require.Equal(t, 30.0, MustAt(t, half, 0, 1))
	require.Equal(t, 60.0, MustAt(t, a, 0, 1), "inputs are never mutated")

	_, err = matrix.Add(a, MustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Minimum(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose checks shape and values, including a hidden operand.
func TestTranspose(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	requireClose(t, MustDense(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}), at, 0)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRowColSums checks marginal sums.
func TestRowColSums(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{0, 60, 40}, {10, 0, 90}, {50, 50, 0}})
	rows, err := matrix.RowSums(a)
	require.NoError(t, err)
	require.Equal(t, []float64{100, 100, 100}, rows)

	cols, err := matrix.ColSums(hide{a})
	require.NoError(t, err)
	require.Equal(t, []float64{60, 110, 130}, cols)
}
