// SPDX-License-Identifier: MIT

package affinity

import (
	"fmt"
	"math"
)

// Default parameter values.
const (
	DefaultTotalPoints      = 100.0
	DefaultTolerance        = 1.0
	DefaultMutualBonus      = 1.5
	DefaultUnilateralWeight = 1.0
)

// Params controls ballot normalization and the symmetrization of the affinity matrix.
type Params struct {
	// TotalPoints is the budget every participant is expected to distribute.
	TotalPoints float64
	// Tolerance is the allowed |sum − TotalPoints| before a Warning is raised.
	Tolerance float64
	// MutualBonus multiplies the reciprocated part of a pair's preferences.
	MutualBonus float64
	// UnilateralWeight multiplies the one-sided remainder.
	UnilateralWeight float64
}

// DefaultParams returns the standard parameters: 100 points, 1 point tolerance,
// mutual bonus 1.5, unilateral weight 1.0.
func DefaultParams() Params {
	return Params{
		TotalPoints:      DefaultTotalPoints,
		Tolerance:        DefaultTolerance,
		MutualBonus:      DefaultMutualBonus,
		UnilateralWeight: DefaultUnilateralWeight,
	}
}

// Validate checks that every field is finite and that reciprocated
// preferences weigh more than one-sided ones.
func (p Params) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"totalPoints", p.TotalPoints},
		{"tolerance", p.Tolerance},
		{"mutualBonus", p.MutualBonus},
		{"unilateralWeight", p.UnilateralWeight},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s is not finite: %w", f.name, ErrInvalidParams)
		}
	}
	switch {
	case p.TotalPoints <= 0:
		return fmt.Errorf("totalPoints must be > 0, got %g: %w", p.TotalPoints, ErrInvalidParams)
	case p.Tolerance < 0:
		return fmt.Errorf("tolerance must be >= 0, got %g: %w", p.Tolerance, ErrInvalidParams)
	case p.UnilateralWeight < 0:
		return fmt.Errorf("unilateralWeight must be >= 0, got %g: %w", p.UnilateralWeight, ErrInvalidParams)
	case p.MutualBonus <= p.UnilateralWeight:
		return fmt.Errorf("mutualBonus (%g) must exceed unilateralWeight (%g): %w",
			p.MutualBonus, p.UnilateralWeight, ErrInvalidParams)
	}

	return nil
}
