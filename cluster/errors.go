// SPDX-License-Identifier: MIT

package cluster

import "errors"

var (
	// ErrInvalidK is returned when k < 1 or k exceeds the number of participants.
	ErrInvalidK = errors.New("cluster: invalid cluster count")

	// ErrMissingInput is returned when the matrix a strategy needs is absent.
	ErrMissingInput = errors.New("cluster: missing input matrix")

	// ErrDegenerateAffinity is returned by Spectral when the affinity has no
	// positive entry, so no meaningful graph embedding exists.
	ErrDegenerateAffinity = errors.New("cluster: degenerate affinity matrix")

	// ErrNoConvergence is returned by Spectral when the eigendecomposition fails.
	ErrNoConvergence = errors.New("cluster: spectral decomposition did not converge")

	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("cluster: unknown strategy kind")
)
