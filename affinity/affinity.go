// SPDX-License-Identifier: MIT

package affinity

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/go-logr/logr"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/logging"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/matrix"
)

// Ballot is one participant's distribution of preference points among peers.
type Ballot struct {
	Voter  string             `json:"voter" yaml:"voter"`
	Points map[string]float64 `json:"points" yaml:"points"`
}

// Warning records a ballot whose raw total deviated from the budget by more
// than the tolerance. The ballot was renormalized and used anyway.
type Warning struct {
	Participant string
	Total       float64
	Expected    float64
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return fmt.Sprintf("%s distributed %g points instead of %g", w.Participant, w.Total, w.Expected)
}

// Affinity is the output of Build.
//
// Raw[i][j] holds the normalized points i gave to j. Final is the symmetrized
// matrix: mutualBonus·min(Raw, Rawᵀ) + unilateralWeight·(Raw + Rawᵀ − 2·min(Raw, Rawᵀ)).
// Final is symmetric, non-negative and has a zero diagonal.
type Affinity struct {
	Roster   *Roster
	Raw      *matrix.Dense
	Final    *matrix.Dense
	Warnings []Warning
	Params   Params
}

// N returns the number of participants.
func (a *Affinity) N() int { return a.Roster.Len() }

// FromBallots builds the roster from ballot voters (in order, minus exclusions)
// and then runs Build.
func FromBallots(ballots []Ballot, exclusions []string, p Params, log logr.Logger) (*Affinity, error) {
	names := make([]string, len(ballots))
	for i, b := range ballots {
		names[i] = b.Voter
	}
	roster, err := NewRoster(names, exclusions)
	if err != nil {
		return nil, err
	}

	return Build(roster, ballots, p, log)
}

// Build normalizes ballots into Raw and derives Final.
//
// Policy:
//   - ballots from voters not in roster (excluded or unknown) are skipped;
//   - targets not in roster and self-votes are dropped;
//   - non-positive and NaN point values are ignored;
//   - keys resolving to the same participant are summed;
//   - when the raw positive total differs from p.TotalPoints by more than
//     p.Tolerance a Warning is logged and recorded;
//   - the kept points are rescaled to sum to p.TotalPoints, a row with nothing
//     kept stays all-zero.
//
// Ballot keys are visited in sorted order so identical input yields a
// bit-identical Final.
func Build(roster *Roster, ballots []Ballot, p Params, log logr.Logger) (*Affinity, error) {
	if roster == nil {
		return nil, ErrNilRoster
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := roster.Len()
	if n == 0 {
		return nil, ErrEmptyRoster
	}

	raw, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("affinity: allocate: %w", err)
	}
	out := &Affinity{Roster: roster, Raw: raw, Params: p}
	seen := make([]bool, n)

	var (
		targets  []string
		rawTotal float64
		kept     float64
		idx      []int
		vals     []float64
	)
	for pos, b := range ballots {
		voter := strings.TrimSpace(b.Voter)
		if voter == "" {
			return nil, fmt.Errorf("ballot %d: %w", pos, ErrEmptyName)
		}
		i, ok := roster.Index(voter)
		if !ok {
			log.V(logging.DEBUG).Info("skipping ballot", "participant", voter, "reason", "not in roster")
			continue
		}
		if seen[i] {
			return nil, fmt.Errorf("ballot from participant %q: %w", voter, ErrDuplicateName)
		}
		seen[i] = true

		targets = targets[:0]
		for t := range b.Points {
			targets = append(targets, t)
		}
		sort.Strings(targets)

		rawTotal, kept = 0, 0
		idx, vals = idx[:0], vals[:0]
		for _, t := range targets {
			v := b.Points[t]
			if !(v > 0) || math.IsInf(v, 0) {
				continue
			}
			rawTotal += v
			k, known := roster.Index(t)
			if !known || k == i {
				continue
			}
			kept += v
			if e := slices.Index(idx, k); e >= 0 {
				// two spellings of one name
				vals[e] += v
				continue
			}
			idx = append(idx, k)
			vals = append(vals, v)
		}

		if math.Abs(rawTotal-p.TotalPoints) > p.Tolerance {
			w := Warning{Participant: voter, Total: rawTotal, Expected: p.TotalPoints}
			out.Warnings = append(out.Warnings, w)
			log.Info("ballot total deviates from budget", "participant", voter, "total", rawTotal, "expected", p.TotalPoints)
		}
		if kept <= 0 {
			continue
		}
		factor := p.TotalPoints / kept
		for e, k := range idx {
			if err = raw.Set(i, k, vals[e]*factor); err != nil {
				return nil, fmt.Errorf("participant %q: %w", voter, err)
			}
		}
	}

	if out.Final, err = Symmetrize(raw, p.MutualBonus, p.UnilateralWeight); err != nil {
		return nil, err
	}
	log.V(logging.DEBUG).Info("affinity built", "participants", n, "warnings", len(out.Warnings))

	return out, nil
}

// Symmetrize derives the final affinity from a directional matrix:
// mutual = min(R, Rᵀ), unilateral = R + Rᵀ − 2·mutual,
// final = mutualBonus·mutual + unilateralWeight·unilateral.
func Symmetrize(raw matrix.Matrix, mutualBonus, unilateralWeight float64) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(raw); err != nil {
		return nil, fmt.Errorf("affinity: symmetrize: %w", err)
	}
	rawT, err := matrix.Transpose(raw)
	if err != nil {
		return nil, fmt.Errorf("affinity: symmetrize: %w", err)
	}
	mutual, err := matrix.Minimum(raw, rawT)
	if err != nil {
		return nil, fmt.Errorf("affinity: symmetrize: %w", err)
	}
	both, err := matrix.Add(raw, rawT)
	if err != nil {
		return nil, fmt.Errorf("affinity: symmetrize: %w", err)
	}
	twice, err := matrix.Scale(mutual, 2)
	if err != nil {
		return nil, fmt.Errorf("affinity: symmetrize: %w", err)
	}
	unilateral, err := matrix.Sub(both, twice)
	if err != nil {
		return nil, fmt.Errorf("affinity: symmetrize: %w", err)
	}
	bonus, err := matrix.Scale(mutual, mutualBonus)
	if err != nil {
		return nil, fmt.Errorf("affinity: symmetrize: %w", err)
	}
	weighted, err := matrix.Scale(unilateral, unilateralWeight)
	if err != nil {
		return nil, fmt.Errorf("affinity: symmetrize: %w", err)
	}
	final, err := matrix.Add(bonus, weighted)
	if err != nil {
		return nil, fmt.Errorf("affinity: symmetrize: %w", err)
	}
	if err = matrix.ValidateSymmetric(final, 0); err != nil {
		return nil, fmt.Errorf("affinity: symmetrize: %w", err)
	}
	if err = matrix.ValidateZeroDiagonal(final, 0); err != nil {
		return nil, fmt.Errorf("affinity: symmetrize: %w", err)
	}
	if err = matrix.ValidateNonNegative(final); err != nil {
		return nil, fmt.Errorf("affinity: symmetrize: %w", err)
	}

	return final, nil
}
