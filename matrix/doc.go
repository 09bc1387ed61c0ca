// SPDX-License-Identifier: MIT

// Package matrix offers a small dense linear-algebra toolkit for affinity analysis.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors.
//   - Element-wise kernels (Add, Sub, Scale, Minimum), Transpose, RowSums and ColSums.
//   - Validators for shape, symmetry, zero diagonal and sign.
//   - Eigen, a cyclic Jacobi eigensolver for symmetric matrices returning
//     ascending eigenpairs.
//   - Column z-scores (StandardizeColumns) and NormalizeRowsL2.
//
// Every kernel returns a fresh result and never mutates its inputs. Errors are
// package sentinels wrapped with the operation name; match them with errors.Is.
package matrix
