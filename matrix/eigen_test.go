// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Jacobi eigensolver.
package matrix_test

import (
	"testing"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/matrix"
	"github.com/stretchr/testify/require"
)

// TestEigen_Diagonal returns sorted eigenvalues with permuted unit vectors.
func TestEigen_Diagonal(t *testing.T) {
	t.Parallel()

	d := MustDense(t, [][]float64{{3, 0, 0}, {0, 1, 0}, {0, 0, 2}})
	vals, vecs, err := matrix.Eigen(d, 0, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, vals)
	require.Equal(t, 1.0, MustAt(t, vecs, 1, 0))
	require.Equal(t, 1.0, MustAt(t, vecs, 2, 1))
	require.Equal(t, 1.0, MustAt(t, vecs, 0, 2))
}

// TestEigen_Reconstruction checks A·v = λ·v and Q orthonormality on a dense symmetric input.
func TestEigen_Reconstruction(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{
		{4, 1, 2, 0.5},
		{1, 3, 0, 1},
		{2, 0, 5, 1.5},
		{0.5, 1, 1.5, 2},
	})
	vals, vecs, err := matrix.Eigen(hide{a}, 1e-12, 50)
	require.NoError(t, err)
	require.Len(t, vals, 4)
	for k := 1; k < len(vals); k++ {
		require.LessOrEqual(t, vals[k-1], vals[k])
	}

	for k := 0; k < 4; k++ {
		v, err := vecs.Col(k)
		require.NoError(t, err)
		av := matVec(t, a, v)
		lv := make([]float64, len(v))
		for i := range v {
			lv[i] = vals[k] * v[i]
		}
		require.Truef(t, sliceClose(av, lv, 1e-9), "column %d: %v vs %v", k, av, lv)
	}

	qt, err := matrix.Transpose(vecs)
	require.NoError(t, err)
	qtq := mul(t, qt, vecs)
	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	requireClose(t, id, qtq, 1e-9)
}

// TestEigen_Errors covers asymmetric input and a sweep cap too small to converge.
func TestEigen_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.Eigen(MustDense(t, [][]float64{{0, 1}, {2, 0}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.Eigen(MustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	big := MustDense(t, [][]float64{
		{1, 2, 3, 4},
		{2, 1, 5, 6},
		{3, 5, 1, 7},
		{4, 6, 7, 1},
	})
	_, _, err = matrix.Eigen(big, 1e-15, 1)
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}
