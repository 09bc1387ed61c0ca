// SPDX-License-Identifier: MIT

package affinity

import "errors"

// Sentinel errors returned by the affinity package. All of them describe bad input
// data and abort a run before any clustering happens.
var (
	// ErrEmptyName is returned when a participant or voter name is blank.
	ErrEmptyName = errors.New("affinity: empty participant name")

	// ErrDuplicateName is returned when a name appears twice in a roster or two
	// ballots share the same voter.
	ErrDuplicateName = errors.New("affinity: duplicate participant name")

	// ErrEmptyRoster is returned when no participant remains after exclusions.
	ErrEmptyRoster = errors.New("affinity: no participants")

	// ErrInvalidParams is returned by Params.Validate.
	ErrInvalidParams = errors.New("affinity: invalid parameters")

	// ErrNilRoster is returned when Build receives a nil roster.
	ErrNilRoster = errors.New("affinity: nil roster")
)
