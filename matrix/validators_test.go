// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSymmetric covers nil, non-square, tolerance and the At fallback.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := MustDense(t, [][]float64{{0, 2}, {2, 0}})
	near := MustDense(t, [][]float64{{0, 2}, {2.0005, 0}})
	rect := MustDense(t, [][]float64{{0, 1, 2}, {1, 0, 3}})
	var typedNil *matrix.Dense

	tests := []struct {
		name string
		m    matrix.Matrix
		eps  float64
		want error
	}{
		{"nil", nil, 0, matrix.ErrNilMatrix},
		{"typed nil", typedNil, 0, matrix.ErrNilMatrix},
		{"rectangular", rect, 0, matrix.ErrNonSquare},
		{"exact", sym, 0, nil},
		{"hidden exact", hide{sym}, 0, nil},
		{"within eps", near, 1e-3, nil},
		{"outside eps", near, 1e-4, matrix.ErrAsymmetry},
		{"hidden outside eps", hide{near}, 1e-4, matrix.ErrAsymmetry},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSymmetric(tc.m, tc.eps)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

// TestValidateZeroDiagonalAndSign covers the affinity-shape validators.
func TestValidateZeroDiagonalAndSign(t *testing.T) {
	t.Parallel()

	ok := MustDense(t, [][]float64{{0, 1}, {1, 0}})
	diag := MustDense(t, [][]float64{{0.5, 1}, {1, 0}})
	neg := MustDense(t, [][]float64{{0, -1}, {1, 0}})

	require.NoError(t, matrix.ValidateZeroDiagonal(ok, 0))
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(diag, 1e-9), matrix.ErrNonZeroDiagonal)
	require.NoError(t, matrix.ValidateZeroDiagonal(diag, 1))
	require.NoError(t, matrix.ValidateNonNegative(ok))
	require.ErrorIs(t, matrix.ValidateNonNegative(neg), matrix.ErrNegative)
	require.ErrorIs(t, matrix.ValidateNonNegative(nil), matrix.ErrNilMatrix)
}
