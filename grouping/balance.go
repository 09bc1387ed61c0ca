// SPDX-License-Identifier: MIT

package grouping

import (
	"fmt"
	"sort"
)

// DefaultBalanceIterations returns the iteration cap used when Balance gets maxIter <= 0.
func DefaultBalanceIterations(n int) int { return 4*n + 16 }

// Balance returns a partition with exactly ceil(n/m) groups and size spread ≤ 1.
//
// Stage 1 fixes the group count: empty groups are dropped; while there are too
// many groups the smallest one is dissolved, each member joining the currently
// smallest remaining group (highest affinity, then lowest group index, on ties);
// while there are too few, empty groups are appended.
//
// Stage 2 repeats up to maxIter times: take the largest and the smallest group
// (lowest group index on ties), stop if their sizes differ by ≤ 1, otherwise
// move the member of the largest group with the highest MovementGain towards
// the smallest (lowest participant index on ties).
//
// The input partition is not modified.
func Balance(p Partition, w *Weights, m, maxIter int) (Partition, error) {
	if m < 1 {
		return nil, fmt.Errorf("m=%d: %w", m, ErrInvalidGroupSize)
	}
	if err := w.checkMembers(p); err != nil {
		return nil, err
	}
	n := p.Len()
	if n == 0 {
		return Partition{}, nil
	}
	if maxIter <= 0 {
		maxIter = DefaultBalanceIterations(n)
	}
	target := (n + m - 1) / m

	groups := make(Partition, 0, len(p))
	for _, g := range p {
		if len(g) > 0 {
			groups = append(groups, append(Group(nil), g...))
		}
	}

	for len(groups) > target {
		s := smallest(groups)
		dissolved := groups[s]
		groups = append(groups[:s], groups[s+1:]...)
		for _, member := range sortedCopy(dissolved) {
			dst := smallest(groups)
			for gi, g := range groups {
				if len(g) == len(groups[dst]) && w.Affinity(member, g) > w.Affinity(member, groups[dst]) {
					dst = gi
				}
			}
			groups[dst] = append(groups[dst], member)
		}
	}
	for len(groups) < target {
		groups = append(groups, Group{})
	}

	for iter := 0; iter < maxIter; iter++ {
		lo, hi := smallest(groups), largest(groups)
		if len(groups[hi])-len(groups[lo]) <= 1 {
			break
		}
		best, bestGain := -1, 0.0
		for _, c := range sortedCopy(groups[hi]) {
			if g := w.MovementGain(c, groups[hi], groups[lo]); best < 0 || g > bestGain {
				best, bestGain = c, g
			}
		}
		groups[hi] = groups[hi].remove(groups[hi].indexOf(best))
		groups[lo] = append(groups[lo], best)
	}

	return groups, nil
}

// smallest returns the index of the first group with minimal size.
func smallest(p Partition) int {
	idx := 0
	for i, g := range p {
		if len(g) < len(p[idx]) {
			idx = i
		}
	}

	return idx
}

// largest returns the index of the first group with maximal size.
func largest(p Partition) int {
	idx := 0
	for i, g := range p {
		if len(g) > len(p[idx]) {
			idx = i
		}
	}

	return idx
}

// sortedCopy returns g's members in ascending order.
func sortedCopy(g Group) []int {
	out := append([]int(nil), g...)
	sort.Ints(out)

	return out
}
