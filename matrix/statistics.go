// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column and row statistics for feature pipelines:
//     StandardizeColumns (population z-score), NormalizeRowsL2.
//
// Determinism:
//   - Columns and rows are processed in ascending index order. Per-column moments come
//     from gonum's stat package, which sums in slice order.
//
// Policies:
//   - Zero-variance columns standardize to all-zero (no division by ~0).
//   - Zero-norm rows are left unchanged by NormalizeRowsL2.

package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// varianceFloor is the smallest standard deviation treated as non-zero.
const varianceFloor = 1e-12

// columnMoments returns the population mean and standard deviation of every column.
// Complexity: Time O(r*c), Space O(r + c).
func columnMoments(d *Dense) (means, stds []float64) {
	means = make([]float64, d.c)
	stds = make([]float64, d.c)
	col := make([]float64, d.r)
	var i, j int
	for j = 0; j < d.c; j++ {
		for i = 0; i < d.r; i++ {
			col[i] = d.data[i*d.c+j]
		}
		means[j], stds[j] = stat.PopMeanStdDev(col, nil)
	}

	return means, stds
}

// StandardizeColumns z-scores every column: (x − mean) / std with the population
// standard deviation (denominator r). Columns whose std is below varianceFloor
// become all-zero.
//
// Returns:
//   - *Dense: standardized copy.
//   - []float64: column means.
//   - []float64: column population standard deviations.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func StandardizeColumns(x Matrix) (*Dense, []float64, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}
	dx, err := asDense(x)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}
	means, stds := columnMoments(dx)
	out, err := NewDense(dx.r, dx.c)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}
	var i, j int
	for j = 0; j < dx.c; j++ {
		if stds[j] < varianceFloor {
			continue
		}
		for i = 0; i < dx.r; i++ {
			out.data[i*dx.c+j] = (dx.data[i*dx.c+j] - means[j]) / stds[j]
		}
	}

	return out, means, stds, nil
}

// NormalizeRowsL2 scales each row to unit Euclidean norm and returns the original norms.
// Rows with zero norm are left unchanged.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func NormalizeRowsL2(x Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRows, err)
	}
	dx, err := asDense(x)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRows, err)
	}
	out := dx.Clone().(*Dense)
	norms := make([]float64, out.r)
	var row []float64
	for i := 0; i < out.r; i++ {
		row = out.data[i*out.c : (i+1)*out.c]
		norms[i] = floats.Norm(row, 2)
		if norms[i] > 0 {
			floats.Scale(1/norms[i], row)
		}
	}

	return out, norms, nil
}
