// SPDX-License-Identifier: MIT

package cluster

import "fmt"

// Random draws a uniform label in [0,k) per participant. It only needs n.
type Random struct{}

// Name implements Strategy.
func (Random) Name() string { return KindRandom.String() }

// Cluster implements Strategy.
func (Random) Cluster(in Input, k int, seed int64) Result {
	n := in.N()
	if n == 0 {
		return failed(fmt.Errorf("random: %w", ErrMissingInput))
	}
	if err := checkK(k, n); err != nil {
		return failed(err)
	}
	rng := rngFromSeed(seed)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = rng.Intn(k)
	}

	return Result{Labels: labels}
}
