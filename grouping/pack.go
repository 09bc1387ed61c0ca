// SPDX-License-Identifier: MIT

package grouping

import (
	"fmt"
	"sort"
)

// Pack greedily splits one cluster's members into groups of size m.
//
// While at least m members are unassigned:
//   - seed with the unassigned pair maximizing Pair(i,j), provided it is > 0;
//     otherwise seed with the most popular unassigned member (row + column sum);
//   - grow by the unassigned member with the highest total Pair to the current
//     group until the group has m members.
//
// Leftover members (fewer than m) form one final short group. Ties resolve to
// the lowest participant index. Complexity O(|members|³/m) in the worst case.
func Pack(members []int, w *Weights, m int) ([]Group, error) {
	if m < 1 {
		return nil, fmt.Errorf("m=%d: %w", m, ErrInvalidGroupSize)
	}
	free := append([]int(nil), members...)
	sort.Ints(free)
	for k, i := range free {
		if i < 0 || i >= w.N() {
			return nil, fmt.Errorf("participant %d out of range [0,%d): %w", i, w.N(), ErrInvalidPartition)
		}
		if k > 0 && free[k-1] == i {
			return nil, fmt.Errorf("participant %d listed twice: %w", i, ErrInvalidPartition)
		}
	}

	var groups []Group
	for len(free) >= m {
		group := seed(free, w, m)
		free = without(free, group...)
		for len(group) < m {
			best, bestScore := -1, 0.0
			for _, c := range free {
				if s := w.Affinity(c, group); best < 0 || s > bestScore {
					best, bestScore = c, s
				}
			}
			group = append(group, best)
			free = without(free, best)
		}
		groups = append(groups, group)
	}
	if len(free) > 0 {
		groups = append(groups, Group(free))
	}

	return groups, nil
}

// seed picks the opening members of a new group from the sorted free list.
func seed(free []int, w *Weights, m int) Group {
	if m >= 2 {
		bi, bj, best := -1, -1, 0.0
		for a := 0; a < len(free); a++ {
			for b := a + 1; b < len(free); b++ {
				if s := w.Pair(free[a], free[b]); s > best {
					bi, bj, best = free[a], free[b], s
				}
			}
		}
		if bi >= 0 {
			return Group{bi, bj}
		}
	}
	top, topScore := free[0], w.Popularity(free[0])
	for _, c := range free[1:] {
		if s := w.Popularity(c); s > topScore {
			top, topScore = c, s
		}
	}

	return Group{top}
}

// without returns sorted free minus the given members, preserving order.
func without(free []int, drop ...int) []int {
	out := free[:0]
	for _, i := range free {
		keep := true
		for _, d := range drop {
			if i == d {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, i)
		}
	}

	return out
}

// PackAll runs Pack over every cluster of a labeling and concatenates the groups
// in cluster order.
func PackAll(labels []int, w *Weights, m int) (Partition, error) {
	if len(labels) != w.N() {
		return nil, fmt.Errorf("%d labels for %d participants: %w", len(labels), w.N(), ErrInvalidPartition)
	}
	var out Partition
	for ci, members := range FromLabels(labels) {
		groups, err := Pack(members, w, m)
		if err != nil {
			return nil, fmt.Errorf("cluster %d: %w", ci, err)
		}
		out = append(out, groups...)
	}

	return out, nil
}
