// SPDX-License-Identifier: MIT

package hybrid

import "errors"

var (
	// ErrNoParticipants is returned when no ballot survives exclusions.
	ErrNoParticipants = errors.New("hybrid: no participants")

	// ErrNoValidSolution is returned when every attempt failed. The attempt
	// errors are joined to it.
	ErrNoValidSolution = errors.New("hybrid: no valid solution")

	// ErrNilAffinity is returned by Optimize for a nil affinity.
	ErrNilAffinity = errors.New("hybrid: nil affinity")
)
