// SPDX-License-Identifier: MIT

package grouping

import (
	"fmt"
	"math"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/matrix"
)

// Weights is a read-only prefetch of an n×n affinity matrix into a flat
// buffer w[i*n+j], so hot loops avoid interface calls and error checks.
type Weights struct {
	n int
	w []float64
}

// NewWeights copies m. NaN/Inf entries are rejected.
func NewWeights(m matrix.Matrix) (*Weights, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWeights, err)
	}
	n := m.Rows()
	w := &Weights{n: n, w: make([]float64, n*n)}
	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidWeights, err)
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("(%d,%d): %w", i, j, ErrInvalidWeights)
			}
			w.w[i*n+j] = x
		}
	}

	return w, nil
}

// N returns the participant count.
func (w *Weights) N() int { return w.n }

// At returns a_ij.
func (w *Weights) At(i, j int) float64 { return w.w[i*w.n+j] }

// Pair returns a_ij + a_ji.
func (w *Weights) Pair(i, j int) float64 { return w.w[i*w.n+j] + w.w[j*w.n+i] }

// Popularity returns the row plus column sum of participant i.
func (w *Weights) Popularity(i int) float64 {
	s := 0.0
	for j := 0; j < w.n; j++ {
		s += w.w[i*w.n+j] + w.w[j*w.n+i]
	}

	return s
}

// Affinity returns Σ_{t∈g, t≠p} Pair(p, t).
func (w *Weights) Affinity(p int, g Group) float64 {
	s := 0.0
	for _, t := range g {
		if t != p {
			s += w.Pair(p, t)
		}
	}

	return s
}

// MovementGain is the affinity change of moving p from group from to group to:
// Σ_{t∈to} Pair(p,t) − Σ_{s∈from, s≠p} Pair(p,s).
func (w *Weights) MovementGain(p int, from, to Group) float64 {
	return w.Affinity(p, to) - w.Affinity(p, from)
}

// checkMembers ensures every index in p is inside [0,n).
func (w *Weights) checkMembers(p Partition) error {
	for gi, g := range p {
		for _, i := range g {
			if i < 0 || i >= w.n {
				return fmt.Errorf("group %d: participant %d out of range [0,%d): %w", gi, i, w.n, ErrInvalidPartition)
			}
		}
	}

	return nil
}
