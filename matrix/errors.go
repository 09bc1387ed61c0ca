// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// Every algorithm in this package returns one of these sentinels, optionally
// wrapped with an operation tag via matrixErrorf. Callers match with errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not,
	// within the tolerance passed by the caller.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals that a diagonal entry required to be ~0 is not.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNegative signals a negative entry where only non-negative values are allowed.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEigenFailed indicates that the Jacobi routine did not converge
	// within the configured number of sweeps.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// Operation tags used by matrixErrorf.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opScale         = "Scale"
	opTranspose     = "Transpose"
	opMinimum       = "Minimum"
	opRowSums       = "RowSums"
	opColSums       = "ColSums"
	opEigen         = "Eigen"
	opNormalizeRows = "NormalizeRowsL2"
	opStandardize   = "StandardizeColumns"
)

// matrixErrorf wraps err with an operation tag, keeping the sentinel reachable
// through errors.Is. Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
