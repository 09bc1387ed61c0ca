// SPDX-License-Identifier: MIT

package hybrid

import (
	"github.com/google/uuid"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/affinity"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/grouping"
)

// StrategyTrivial names the solution of a single-participant run, where no
// clustering is attempted.
const StrategyTrivial = "trivial"

// Attempt records one pipeline run. Exactly one of Err and Partition is set.
type Attempt struct {
	Index int
	// Strategy is the strategy that produced the labels (after fallback).
	Strategy string
	Seed     int64
	Fallback bool

	Partition grouping.Partition
	Score     grouping.Score
	Search    grouping.Stats
	Err       error
}

// OK reports whether the attempt produced a valid partition.
func (a Attempt) OK() bool { return a.Err == nil }

// Solution is the best partition found by a run.
type Solution struct {
	RunID uuid.UUID

	// Partition is in canonical form: members ascending, groups ordered by
	// their first member.
	Partition grouping.Partition
	Score     grouping.Score

	// Attempt, Strategy, Seed and Fallback describe the winning attempt.
	Attempt  int
	Strategy string
	Seed     int64
	Fallback bool

	Affinity *affinity.Affinity
	// Attempts lists every attempt in index order.
	Attempts []Attempt
}

// Groups returns participant names per group, in Partition order.
func (s *Solution) Groups() [][]string {
	out := make([][]string, len(s.Partition))
	for gi, g := range s.Partition {
		names := make([]string, len(g))
		for i, p := range g {
			names[i] = s.Affinity.Roster.Name(p)
		}
		out[gi] = names
	}

	return out
}
