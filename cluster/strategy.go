// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"strings"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/matrix"
)

// Kind selects a clustering strategy.
type Kind int

const (
	// KindKMeans runs k-means on standardized feature vectors.
	KindKMeans Kind = iota
	// KindSpectral embeds the normalized affinity graph and runs k-means there.
	KindSpectral
	// KindRandom assigns uniform random labels; a diversity baseline.
	KindRandom
)

// Kinds lists every strategy kind in schedule order.
var Kinds = []Kind{KindKMeans, KindSpectral, KindRandom}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindKMeans:
		return "kmeans"
	case KindSpectral:
		return "spectral"
	case KindRandom:
		return "random"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String (case-insensitive).
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Input is what a strategy may look at. Features is n×d (standardized),
// Affinity is the n×n symmetric final affinity. A strategy reads only the
// field it needs; neither is mutated.
type Input struct {
	Features matrix.Matrix
	Affinity matrix.Matrix
}

// N returns the participant count carried by the input.
func (in Input) N() int {
	switch {
	case in.Features != nil:
		return in.Features.Rows()
	case in.Affinity != nil:
		return in.Affinity.Rows()
	default:
		return 0
	}
}

// Result is the explicit outcome of one clustering call: Labels on success,
// Err on failure. Exactly one of them is set.
type Result struct {
	Labels []int
	Err    error
}

// OK reports whether the call produced labels.
func (r Result) OK() bool { return r.Err == nil }

// failed builds a failure Result.
func failed(err error) Result { return Result{Err: err} }

// Strategy partitions participants into at most k clusters.
// Implementations must be deterministic for a given (input, k, seed) and safe
// to call from multiple goroutines.
type Strategy interface {
	Name() string
	Cluster(in Input, k int, seed int64) Result
}

// New returns the default-configured strategy for a kind.
func New(kind Kind) (Strategy, error) {
	switch kind {
	case KindKMeans:
		return NewKMeans(), nil
	case KindSpectral:
		return NewSpectral(), nil
	case KindRandom:
		return Random{}, nil
	default:
		return nil, fmt.Errorf("%s: %w", kind, ErrUnknownKind)
	}
}

// TargetGroupCount returns ceil(n/groupSize), at least 1. A groupSize below 1 is treated as 1.
func TargetGroupCount(n, groupSize int) int {
	if groupSize < 1 {
		groupSize = 1
	}
	k := (n + groupSize - 1) / groupSize
	if k < 1 {
		k = 1
	}

	return k
}

// Compact relabels clusters to 0..c-1 in order of first appearance, dropping
// empty cluster ids, and returns the new labels with c.
func Compact(labels []int) ([]int, int) {
	remap := make(map[int]int, len(labels))
	out := make([]int, len(labels))
	for i, l := range labels {
		id, ok := remap[l]
		if !ok {
			id = len(remap)
			remap[l] = id
		}
		out[i] = id
	}

	return out, len(remap)
}

// checkK validates 1 ≤ k ≤ n.
func checkK(k, n int) error {
	if k < 1 || k > n {
		return fmt.Errorf("k=%d with n=%d: %w", k, n, ErrInvalidK)
	}

	return nil
}
