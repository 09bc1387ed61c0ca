// SPDX-License-Identifier: MIT

package hybrid_test

import (
	"sync"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/affinity"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/cluster"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/hybrid"
)

// vote builds a ballot from alternating name/points pairs.
func vote(voter string, pairs ...any) affinity.Ballot {
	b := affinity.Ballot{Voter: voter, Points: map[string]float64{}}
	for i := 0; i+1 < len(pairs); i += 2 {
		b.Points[pairs[i].(string)] = float64(pairs[i+1].(int))
	}

	return b
}

// bestFriends: three reciprocal pairs that cannot all fit in two groups of 3.
func bestFriends() []affinity.Ballot {
	return []affinity.Ballot{
		vote("A", "B", 100), vote("B", "A", 100),
		vote("C", "D", 100), vote("D", "C", 100),
		vote("E", "F", 100), vote("F", "E", 100),
	}
}

// uniform: every voter spreads the budget evenly over all others.
func uniform(names ...string) []affinity.Ballot {
	out := make([]affinity.Ballot, len(names))
	share := 100 / (len(names) - 1)
	for i, voter := range names {
		out[i] = affinity.Ballot{Voter: voter, Points: map[string]float64{}}
		for _, target := range names {
			if target != voter {
				out[i].Points[target] = float64(share)
			}
		}
	}

	return out
}

// together reports whether a and b share a group.
func together(sol *hybrid.Solution, a, b string) bool {
	for _, g := range sol.Groups() {
		var hasA, hasB bool
		for _, name := range g {
			hasA = hasA || name == a
			hasB = hasB || name == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}

	return false
}

// failing is a strategy that always fails with err.
type failing struct{ err error }

func (failing) Name() string { return "failing" }

func (f failing) Cluster(cluster.Input, int, int64) cluster.Result {
	return cluster.Result{Err: f.err}
}

// countingRecorder counts observations.
type countingRecorder struct {
	mu        sync.Mutex
	attempts  map[string]int
	fallbacks int
	runs      int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{attempts: map[string]int{}}
}

func (r *countingRecorder) ObserveAttempt(strategy, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts[strategy+"/"+outcome]++
}

func (r *countingRecorder) ObserveFallback(_, _ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallbacks++
}

func (r *countingRecorder) ObserveSatisfaction(float64) {}

func (r *countingRecorder) ObserveRun(float64, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs++
}
