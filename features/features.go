// SPDX-License-Identifier: MIT

// Package features projects participants of an affinity matrix into a vector
// space suitable for Euclidean clustering.
package features

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/matrix"
)

// AggregateCount is the number of scalar aggregates appended to every feature row.
const AggregateCount = 5

// ErrInvalidAffinity is returned when the input is not a square matrix.
var ErrInvalidAffinity = errors.New("features: affinity must be a non-nil square matrix")

// Width returns the feature dimension for n participants: 2n + AggregateCount.
func Width(n int) int { return 2*n + AggregateCount }

// Project builds one row per participant i:
//
//	final[i,·] ‖ final[·,i] ‖ [Σ emitted, Σ received, Σ min(emitted, received),
//	                          max emitted, mean of positive emitted (0 if none)]
//
// Complexity: Time O(n²), Space O(n²).
func Project(final matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(final); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAffinity, err)
	}
	n := final.Rows()
	emittedTotal, err := matrix.RowSums(final)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}
	receivedTotal, err := matrix.ColSums(final)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	rows := make([][]float64, n)
	emitted := make([]float64, n)
	received := make([]float64, n)
	reciprocal := make([]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if emitted[j], err = final.At(i, j); err != nil {
				return nil, err
			}
			if received[j], err = final.At(j, i); err != nil {
				return nil, err
			}
		}
		for j = 0; j < n; j++ {
			reciprocal[j] = math.Min(emitted[j], received[j])
		}

		positive, count := 0.0, 0
		for _, v := range emitted {
			if v > 0 {
				positive += v
				count++
			}
		}
		meanPositive := 0.0
		if count > 0 {
			meanPositive = positive / float64(count)
		}

		row := make([]float64, 0, Width(n))
		row = append(row, emitted...)
		row = append(row, received...)
		rows[i] = append(row,
			emittedTotal[i],
			receivedTotal[i],
			floats.Sum(reciprocal),
			floats.Max(emitted),
			meanPositive,
		)
	}

	out, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	return out, nil
}

// Standardize z-scores every feature column with the population standard
// deviation. Constant columns become zero.
func Standardize(x matrix.Matrix) (*matrix.Dense, error) {
	z, _, _, err := matrix.StandardizeColumns(x)
	if err != nil {
		return nil, fmt.Errorf("features: standardize: %w", err)
	}

	return z, nil
}

// Build runs Project followed by Standardize.
func Build(final matrix.Matrix) (*matrix.Dense, error) {
	raw, err := Project(final)
	if err != nil {
		return nil, err
	}

	return Standardize(raw)
}
