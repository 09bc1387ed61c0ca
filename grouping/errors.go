// SPDX-License-Identifier: MIT

package grouping

import "errors"

var (
	// ErrInvalidPartition is returned by Partition.Validate when groups overlap,
	// miss a participant, or reference an index outside [0,n).
	ErrInvalidPartition = errors.New("grouping: invalid partition")

	// ErrInvalidGroupSize is returned for a target group size below 1.
	ErrInvalidGroupSize = errors.New("grouping: group size must be >= 1")

	// ErrInvalidWeights is returned when the affinity matrix is nil, not square,
	// or holds a non-finite value.
	ErrInvalidWeights = errors.New("grouping: invalid affinity weights")
)
