// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Symmetric eigendecomposition by cyclic Jacobi sweeps, used for spectral embeddings.
//
// Determinism:
//   - Rotations are applied in fixed (p,q) row-major order, p<q, sweep after sweep.
//   - Output is sorted by ascending eigenvalue; ties keep the original diagonal order.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Eigen defaults. Callers may pass tol<=0 / maxSweeps<=0 to select them.
const (
	DefaultEigenTol    = 1e-12
	DefaultEigenSweeps = 100
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via cyclic Jacobi sweeps.
// Implementation:
//   - Stage 1: Validate symmetric square input within tol (not nil, square, |A[i,j]-A[j,i]| ≤ tol).
//   - Stage 2: Each sweep rotates every off-diagonal pair (p,q), p<q, whose |A[p,q]| exceeds
//     the scaled threshold; Q accumulates the rotations.
//   - Stage 3: Stop once the off-diagonal Frobenius norm is ≤ tol·max(1, ‖A‖_F).
//   - Stage 4: Sort eigenpairs by ascending eigenvalue (stable), permuting Q's columns.
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (≤0 ⇒ DefaultEigenTol).
//   - maxSweeps: safety cap on full sweeps (≤0 ⇒ DefaultEigenSweeps).
//
// Returns:
//   - []float64: eigenvalues in ascending order.
//   - *Dense: Q whose column k is the unit eigenvector of values[k].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (validation).
//   - ErrEigenFailed when the off-diagonal mass is still above threshold after maxSweeps.
//
// Complexity:
//   - Time O(maxSweeps · n³), Space O(n²).
func Eigen(m Matrix, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxSweeps <= 0 {
		maxSweeps = DefaultEigenSweeps
	}
	if err := ValidateSymmetric(m, math.Max(tol, 1e-9)); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	a := src.Clone().(*Dense)
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	scale := math.Max(1, frobenius(a))
	threshold := tol * scale
	converged := offDiagonalNorm(a) <= threshold

	var (
		sweep, p, r, k int
		app, aqq, apq  float64
		theta, t, c, s float64
		akp, akq       float64
	)
	for sweep = 0; sweep < maxSweeps && !converged; sweep++ {
		for p = 0; p < n-1; p++ {
			for r = p + 1; r < n; r++ {
				apq = a.data[p*n+r]
				if math.Abs(apq) <= threshold*1e-3 {
					continue
				}
				app = a.data[p*n+p]
				aqq = a.data[r*n+r]
				// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1))
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				a.data[p*n+p] = app - t*apq
				a.data[r*n+r] = aqq + t*apq
				a.data[p*n+r] = 0
				a.data[r*n+p] = 0
				for k = 0; k < n; k++ {
					if k == p || k == r {
						continue
					}
					akp = a.data[k*n+p]
					akq = a.data[k*n+r]
					a.data[k*n+p] = c*akp - s*akq
					a.data[p*n+k] = a.data[k*n+p]
					a.data[k*n+r] = s*akp + c*akq
					a.data[r*n+k] = a.data[k*n+r]
				}
				for k = 0; k < n; k++ {
					akp = q.data[k*n+p]
					akq = q.data[k*n+r]
					q.data[k*n+p] = c*akp - s*akq
					q.data[k*n+r] = s*akp + c*akq
				}
			}
		}
		converged = offDiagonalNorm(a) <= threshold
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("%d sweeps: %w", maxSweeps, ErrEigenFailed))
	}

	// Stage 4: ascending order, stable on ties.
	order := make([]int, n)
	for k = 0; k < n; k++ {
		order[k] = k
	}
	sort.SliceStable(order, func(x, y int) bool {
		return a.data[order[x]*n+order[x]] < a.data[order[y]*n+order[y]]
	})
	values := make([]float64, n)
	vectors, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for k = 0; k < n; k++ {
		values[k] = a.data[order[k]*n+order[k]]
		for r = 0; r < n; r++ {
			vectors.data[r*n+k] = q.data[r*n+order[k]]
		}
	}

	return values, vectors, nil
}

// frobenius returns ‖A‖_F.
func frobenius(a *Dense) float64 {
	var sq float64
	for _, v := range a.data {
		sq += v * v
	}

	return math.Sqrt(sq)
}

// offDiagonalNorm returns sqrt(Σ_{i≠j} A[i,j]²) for a square Dense.
func offDiagonalNorm(a *Dense) float64 {
	n := a.r
	var (
		sq   float64
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				sq += a.data[i*n+j] * a.data[i*n+j]
			}
		}
	}

	return math.Sqrt(sq)
}
