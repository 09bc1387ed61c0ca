// SPDX-License-Identifier: MIT

package grouping

import (
	"fmt"
	"sort"
)

// Group is a set of participant indices; order carries no meaning.
type Group []int

// Partition is a list of disjoint groups covering every participant.
type Partition []Group

// FromLabels groups participant indices by label. Groups appear in order of the
// first participant carrying each label; members are ascending.
func FromLabels(labels []int) Partition {
	order := make(map[int]int, len(labels))
	var p Partition
	for i, l := range labels {
		g, ok := order[l]
		if !ok {
			g = len(p)
			order[l] = g
			p = append(p, nil)
		}
		p[g] = append(p[g], i)
	}

	return p
}

// Clone returns a deep copy.
func (p Partition) Clone() Partition {
	out := make(Partition, len(p))
	for i, g := range p {
		out[i] = append(Group(nil), g...)
	}

	return out
}

// Len returns the number of participants across all groups.
func (p Partition) Len() int {
	n := 0
	for _, g := range p {
		n += len(g)
	}

	return n
}

// Sizes returns the size of every group.
func (p Partition) Sizes() []int {
	out := make([]int, len(p))
	for i, g := range p {
		out[i] = len(g)
	}

	return out
}

// Spread returns max size − min size (0 for an empty partition).
func (p Partition) Spread() int {
	if len(p) == 0 {
		return 0
	}
	lo, hi := len(p[0]), len(p[0])
	for _, g := range p[1:] {
		if len(g) < lo {
			lo = len(g)
		}
		if len(g) > hi {
			hi = len(g)
		}
	}

	return hi - lo
}

// Canonical returns a copy with members sorted ascending, empty groups
// dropped, and groups ordered by their smallest member.
func (p Partition) Canonical() Partition {
	out := make(Partition, 0, len(p))
	for _, g := range p {
		if len(g) == 0 {
			continue
		}
		c := append(Group(nil), g...)
		sort.Ints(c)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// Validate checks that the groups are disjoint, non-empty, and cover exactly 0..n-1.
func (p Partition) Validate(n int) error {
	seen := make([]bool, n)
	count := 0
	for gi, g := range p {
		if len(g) == 0 {
			return fmt.Errorf("group %d is empty: %w", gi, ErrInvalidPartition)
		}
		for _, i := range g {
			if i < 0 || i >= n {
				return fmt.Errorf("group %d: participant %d out of range [0,%d): %w", gi, i, n, ErrInvalidPartition)
			}
			if seen[i] {
				return fmt.Errorf("group %d: participant %d assigned twice: %w", gi, i, ErrInvalidPartition)
			}
			seen[i] = true
			count++
		}
	}
	if count != n {
		return fmt.Errorf("%d of %d participants assigned: %w", count, n, ErrInvalidPartition)
	}

	return nil
}

// remove returns g without the member at position pos (order not preserved).
func (g Group) remove(pos int) Group {
	last := len(g) - 1
	g[pos] = g[last]

	return g[:last]
}

// indexOf returns the position of participant i in g, or -1.
func (g Group) indexOf(i int) int {
	for pos, v := range g {
		if v == i {
			return pos
		}
	}

	return -1
}
