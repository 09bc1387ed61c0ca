// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise and linear kernels used to build and check affinity matrices:
//     Add, Sub, Scale, Minimum, Transpose, RowSums, ColSums.
//
// Determinism:
//   - Fixed loop orders (flat 0..r*c−1 or i→j); no goroutines, no maps.
//
// Contract:
//   - Inputs are never mutated; every kernel returns a freshly allocated *Dense.
//   - Non-Dense operands are materialized once through At (see asDense).

package matrix

import (
	"fmt"
	"math"
)

// asDense returns m itself when it is a *Dense, otherwise a Dense copy built via At.
// The returned value must be treated as read-only by callers.
// Complexity: O(1) fast path, O(r*c) fallback.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// zipWith applies f element-wise over two same-shaped operands.
// Implementation:
//   - Stage 1: ValidateBinarySameShape.
//   - Stage 2: materialize both operands as Dense and walk the flat buffers 0..r*c−1.
//
// Complexity: Time O(r*c), Space O(r*c).
func zipWith(a, b Matrix, opTag string, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = f(da.data[idx], db.data[idx])
	}

	return res, nil
}

// Add computes C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	return zipWith(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub computes C = A − B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	return zipWith(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// Minimum computes the element-wise minimum C[i,j] = min(A[i,j], B[i,j]).
// With B = Aᵀ this yields the reciprocated (mutual) part of a directed weight matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Minimum(a, b Matrix) (*Dense, error) {
	return zipWith(a, b, opMinimum, math.Min)
}

// Scale returns alpha·M.
// Errors: ErrNilMatrix; ErrNaNInf when alpha is not finite.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(dm.r, dm.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range dm.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// Transpose returns Mᵀ.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(dm.c, dm.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < dm.r; i++ {
		for j = 0; j < dm.c; j++ {
			res.data[j*dm.r+i] = dm.data[i*dm.c+j]
		}
	}

	return res, nil
}

// RowSums returns s[i] = Σ_j M[i,j].
// Complexity: Time O(r*c), Space O(r).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums := make([]float64, dm.r)
	var i, j int
	for i = 0; i < dm.r; i++ {
		for j = 0; j < dm.c; j++ {
			sums[i] += dm.data[i*dm.c+j]
		}
	}

	return sums, nil
}

// ColSums returns s[j] = Σ_i M[i,j].
// Complexity: Time O(r*c), Space O(c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	sums := make([]float64, dm.c)
	var i, j int
	for i = 0; i < dm.r; i++ {
		for j = 0; j < dm.c; j++ {
			sums[j] += dm.data[i*dm.c+j]
		}
	}

	return sums, nil
}
