// SPDX-License-Identifier: MIT
package grouping_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/grouping"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/matrix"
)

// mustWeights builds Weights from a literal matrix.
func mustWeights(t *testing.T, rows [][]float64) *grouping.Weights {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	w, err := grouping.NewWeights(m)
	require.NoError(t, err)

	return w
}

// symmetric builds an n×n symmetric matrix with zero diagonal from the listed
// undirected edges {i, j, value}.
func symmetric(n int, edges ...[3]float64) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for _, e := range edges {
		i, j := int(e[0]), int(e[1])
		rows[i][j], rows[j][i] = e[2], e[2]
	}

	return rows
}

// randomWeights draws a symmetric sparse affinity matrix.
func randomWeights(t *testing.T, rng *rand.Rand, n int) *grouping.Weights {
	t.Helper()
	rows := symmetric(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < 0.3 {
				v := rng.Float64() * 150
				rows[i][j], rows[j][i] = v, v
			}
		}
	}

	return mustWeights(t, rows)
}

// randomLabels assigns n participants to k random labels.
func randomLabels(rng *rand.Rand, n, k int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = rng.Intn(k)
	}

	return labels
}
