// SPDX-License-Identifier: MIT

package grouping

import (
	"fmt"
	"math"
)

// LocalSearch defaults.
const (
	DefaultMaxIterations   = 50
	DefaultEquityTolerance = 1.0
	DefaultEps             = 1e-9
)

// SearchOptions configures LocalSearch. Zero MaxIterations and Eps select the
// defaults; a negative EquityTolerance is clamped to 0.
type SearchOptions struct {
	// TargetSize is the desired group size m.
	TargetSize int
	// MaxIterations caps the number of accepted moves and swaps.
	MaxIterations int
	// EquityTolerance is how much a single move may worsen |len(S)−m| + |len(T)−m|.
	EquityTolerance float64
	// Eps is the minimal affinity gain counted as an improvement.
	Eps float64
	// DisableSwaps restricts the search to single-member moves.
	DisableSwaps bool
}

// DefaultSearchOptions returns the standard options for group size m.
func DefaultSearchOptions(m int) SearchOptions {
	return SearchOptions{
		TargetSize:      m,
		MaxIterations:   DefaultMaxIterations,
		EquityTolerance: DefaultEquityTolerance,
		Eps:             DefaultEps,
	}
}

// Stats reports what LocalSearch did.
type Stats struct {
	Moves int // accepted single-member moves
	Swaps int // accepted pairwise exchanges
	Scans int // full or partial neighbourhood scans started
}

// LocalSearch runs deterministic first-improvement hill climbing.
//
// Move p from S to T is accepted iff
//   - S keeps at least one member (the group count never changes);
//   - the size spread stays ≤ max(1, spread of the input);
//   - newLoss ≤ oldLoss + EquityTolerance, with loss = |len(S)−m| + |len(T)−m|;
//   - MovementGain(p,S,T) > Eps or newLoss < oldLoss.
//
// When no move is accepted, pairwise exchanges of p∈S and q∈T are tried; a swap
// keeps every size and is accepted iff its affinity gain exceeds Eps.
// After every accepted change the scan restarts from the first group. The search
// stops on a scan without changes or after MaxIterations changes.
//
// Complexity: one scan is O(g·n²) for moves and O(n³) for swaps.
func LocalSearch(p Partition, w *Weights, opts SearchOptions) (Partition, Stats, error) {
	var stats Stats
	if opts.TargetSize < 1 {
		return nil, stats, fmt.Errorf("m=%d: %w", opts.TargetSize, ErrInvalidGroupSize)
	}
	if err := w.checkMembers(p); err != nil {
		return nil, stats, err
	}
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	eps := opts.Eps
	if eps <= 0 {
		eps = DefaultEps
	}
	tol := math.Max(0, opts.EquityTolerance)

	groups := p.Clone()
	limit := groups.Spread()
	if limit < 1 {
		limit = 1
	}
	s := searcher{groups: groups, w: w, m: opts.TargetSize, tol: tol, eps: eps, limit: limit}

	for stats.Moves+stats.Swaps < maxIter {
		stats.Scans++
		if s.tryMove() {
			stats.Moves++
			continue
		}
		if !opts.DisableSwaps && s.trySwap() {
			stats.Swaps++
			continue
		}
		break
	}

	return s.groups, stats, nil
}

// searcher holds the mutable state of one LocalSearch run.
type searcher struct {
	groups Partition
	w      *Weights
	m      int
	tol    float64
	eps    float64
	limit  int
}

// equity returns |size − m|.
func (s *searcher) equity(size int) float64 { return math.Abs(float64(size - s.m)) }

// spreadAfter returns the size spread if one member moved from group a to group b.
func (s *searcher) spreadAfter(a, b int) int {
	lo, hi := math.MaxInt, -1
	for gi, g := range s.groups {
		size := len(g)
		switch gi {
		case a:
			size--
		case b:
			size++
		}
		if size < lo {
			lo = size
		}
		if size > hi {
			hi = size
		}
	}

	return hi - lo
}

// tryMove applies the first acceptable single-member move.
func (s *searcher) tryMove() bool {
	for a := range s.groups {
		if len(s.groups[a]) <= 1 {
			continue
		}
		for _, p := range sortedCopy(s.groups[a]) {
			for b := range s.groups {
				if a == b {
					continue
				}
				sa, sb := len(s.groups[a]), len(s.groups[b])
				oldLoss := s.equity(sa) + s.equity(sb)
				newLoss := s.equity(sa-1) + s.equity(sb+1)
				if newLoss > oldLoss+s.tol {
					continue
				}
				if s.spreadAfter(a, b) > s.limit {
					continue
				}
				gain := s.w.MovementGain(p, s.groups[a], s.groups[b])
				if gain > s.eps || newLoss < oldLoss {
					s.groups[a] = s.groups[a].remove(s.groups[a].indexOf(p))
					s.groups[b] = append(s.groups[b], p)

					return true
				}
			}
		}
	}

	return false
}

// trySwap applies the first exchange with positive gain.
// The gain of swapping p∈A with q∈B is
// MovementGain(p,A,B) + MovementGain(q,B,A) − 2·Pair(p,q).
func (s *searcher) trySwap() bool {
	for a := range s.groups {
		for b := a + 1; b < len(s.groups); b++ {
			for _, p := range sortedCopy(s.groups[a]) {
				for _, q := range sortedCopy(s.groups[b]) {
					gain := s.w.MovementGain(p, s.groups[a], s.groups[b]) +
						s.w.MovementGain(q, s.groups[b], s.groups[a]) -
						2*s.w.Pair(p, q)
					if gain <= s.eps {
						continue
					}
					s.groups[a][s.groups[a].indexOf(p)] = q
					s.groups[b][s.groups[b].indexOf(q)] = p

					return true
				}
			}
		}
	}

	return false
}
