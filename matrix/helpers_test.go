// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"math"
	"testing"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type and force the At-based paths.
type hide struct{ matrix.Matrix }

// MustDense builds a *Dense from rows or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireClose asserts element-wise |a-b| ≤ eps over two same-shaped matrices.
func requireClose(t *testing.T, want, got matrix.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, g := MustAt(t, want, i, j), MustAt(t, got, i, j)
			require.InDeltaf(t, w, g, eps, "(%d,%d)", i, j)
		}
	}
}

// matVec returns m·x computed through At.
func matVec(t *testing.T, m matrix.Matrix, x []float64) []float64 {
	t.Helper()
	require.Len(t, x, m.Cols())
	y := make([]float64, m.Rows())
	for i := range y {
		for j, xj := range x {
			y[i] += MustAt(t, m, i, j) * xj
		}
	}

	return y
}

// mul returns the product a×b computed through At.
func mul(t *testing.T, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	require.Equal(t, a.Cols(), b.Rows())
	out, err := matrix.NewDense(a.Rows(), b.Cols())
	require.NoError(t, err)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			sum := 0.0
			for k := 0; k < a.Cols(); k++ {
				sum += MustAt(t, a, i, k) * MustAt(t, b, k, j)
			}
			require.NoError(t, out.Set(i, j, sum))
		}
	}

	return out
}

// sliceClose reports whether two slices match element-wise within eps.
func sliceClose(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}

	return true
}
