// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/matrix"
)

// Spectral clusters the affinity graph (Ng–Jordan–Weiss):
//
//  1. N = D^{-1/2} W D^{-1/2}, D = diag(row sums of W); isolated nodes get D^{-1/2} = 0.
//  2. Take the eigenvectors of the k largest eigenvalues of N as an n×k embedding.
//  3. L2-normalize every embedding row.
//  4. Run KMeans on the rows.
type Spectral struct {
	KMeans      KMeans
	EigenTol    float64
	EigenSweeps int
}

// NewSpectral returns a Spectral with default settings.
func NewSpectral() Spectral {
	return Spectral{
		KMeans:      NewKMeans(),
		EigenTol:    matrix.DefaultEigenTol,
		EigenSweeps: matrix.DefaultEigenSweeps,
	}
}

// Name implements Strategy.
func (Spectral) Name() string { return KindSpectral.String() }

// Cluster implements Strategy.
//
// Errors (as Result.Err):
//   - ErrMissingInput when in.Affinity is nil;
//   - ErrInvalidK;
//   - ErrDegenerateAffinity when W has no positive entry or is not square/symmetric;
//   - ErrNoConvergence wrapping the eigensolver error.
func (s Spectral) Cluster(in Input, k int, seed int64) Result {
	if in.Affinity == nil {
		return failed(fmt.Errorf("spectral: affinity: %w", ErrMissingInput))
	}
	w, err := rowsOf(in.Affinity)
	if err != nil {
		return failed(fmt.Errorf("spectral: %w", err))
	}
	n := len(w)
	if err = checkK(k, n); err != nil {
		return failed(err)
	}
	if err = matrix.ValidateSymmetric(in.Affinity, 1e-9); err != nil {
		return failed(fmt.Errorf("spectral: %w: %w", ErrDegenerateAffinity, err))
	}

	positive := false
	for _, row := range w {
		for _, v := range row {
			if v > 0 {
				positive = true
			}
		}
	}
	if !positive {
		return failed(fmt.Errorf("spectral: no positive affinity: %w", ErrDegenerateAffinity))
	}
	dinv, err := matrix.RowSums(in.Affinity)
	if err != nil {
		return failed(fmt.Errorf("spectral: degrees: %w", err))
	}
	for i, deg := range dinv {
		if deg > 0 {
			dinv[i] = 1 / math.Sqrt(deg)
		} else {
			dinv[i] = 0
		}
	}

	norm, err := matrix.NewDense(n, n)
	if err != nil {
		return failed(fmt.Errorf("spectral: %w", err))
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v := dinv[i] * w[i][j] * dinv[j]
			if err = norm.Set(i, j, v); err != nil {
				return failed(fmt.Errorf("spectral: %w", err))
			}
			if err = norm.Set(j, i, v); err != nil {
				return failed(fmt.Errorf("spectral: %w", err))
			}
		}
	}

	_, vecs, err := matrix.Eigen(norm, s.EigenTol, s.EigenSweeps)
	if err != nil {
		return failed(fmt.Errorf("spectral: %w: %w", ErrNoConvergence, err))
	}

	embed, err := matrix.NewDense(n, k)
	if err != nil {
		return failed(fmt.Errorf("spectral: %w", err))
	}
	var col []float64
	for c := 0; c < k; c++ {
		// largest eigenvalue first
		if col, err = vecs.Col(n - 1 - c); err != nil {
			return failed(fmt.Errorf("spectral: %w", err))
		}
		for i = 0; i < n; i++ {
			if err = embed.Set(i, c, col[i]); err != nil {
				return failed(fmt.Errorf("spectral: %w", err))
			}
		}
	}
	unit, _, err := matrix.NormalizeRowsL2(embed)
	if err != nil {
		return failed(fmt.Errorf("spectral: %w", err))
	}
	points, err := rowsOf(unit)
	if err != nil {
		return failed(fmt.Errorf("spectral: %w", err))
	}
	labels, _ := s.KMeans.fit(points, k, rngFromSeed(seed))

	return Result{Labels: labels}
}
