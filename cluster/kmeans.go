// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/matrix"
)

// KMeans defaults.
const (
	DefaultRestarts = 10
	DefaultMaxIter  = 300
	DefaultTol      = 1e-4
)

// KMeans is Lloyd's algorithm with k-means++ seeding over Input.Features.
// Zero fields select the defaults.
type KMeans struct {
	// Restarts is the number of independent seedings; the lowest inertia wins.
	Restarts int
	// MaxIter caps Lloyd iterations per restart.
	MaxIter int
	// Tol is the convergence threshold on total squared center shift,
	// relative to the mean per-feature variance of the data.
	Tol float64
}

// NewKMeans returns a KMeans with default settings.
func NewKMeans() KMeans {
	return KMeans{Restarts: DefaultRestarts, MaxIter: DefaultMaxIter, Tol: DefaultTol}
}

// Name implements Strategy.
func (KMeans) Name() string { return KindKMeans.String() }

// Cluster implements Strategy.
func (km KMeans) Cluster(in Input, k int, seed int64) Result {
	if in.Features == nil {
		return failed(fmt.Errorf("kmeans: features: %w", ErrMissingInput))
	}
	points, err := rowsOf(in.Features)
	if err != nil {
		return failed(fmt.Errorf("kmeans: %w", err))
	}
	if err = checkK(k, len(points)); err != nil {
		return failed(err)
	}

	labels, _ := km.fit(points, k, rngFromSeed(seed))

	return Result{Labels: labels}
}

// fit runs all restarts and returns the labels with the lowest inertia
// (earliest restart on ties) together with that inertia.
func (km KMeans) fit(points [][]float64, k int, rng *rand.Rand) ([]int, float64) {
	restarts, maxIter, tol := km.Restarts, km.MaxIter, km.Tol
	if restarts <= 0 {
		restarts = DefaultRestarts
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	if tol <= 0 {
		tol = DefaultTol
	}
	tol *= meanVariance(points)

	var (
		best        []int
		bestInertia = math.Inf(1)
	)
	for r := 0; r < restarts; r++ {
		labels, inertia := lloyd(points, seedPlusPlus(points, k, rng), maxIter, tol)
		if inertia < bestInertia {
			best, bestInertia = labels, inertia
		}
	}

	return best, bestInertia
}

// seedPlusPlus picks k initial centers: the first uniformly, each next one with
// probability proportional to its squared distance to the nearest chosen center.
// When every point coincides with a chosen center the pick falls back to uniform.
func seedPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	centers := make([][]float64, 0, k)
	first := rng.Intn(n)
	centers = append(centers, append([]float64(nil), points[first]...))

	d2 := make([]float64, n)
	for i, p := range points {
		d2[i] = sqDist(p, centers[0])
	}
	for len(centers) < k {
		total := floats.Sum(d2)
		pick := -1
		if total > 0 {
			target := rng.Float64() * total
			acc := 0.0
			for i, w := range d2 {
				acc += w
				if w > 0 && acc >= target {
					pick = i
					break
				}
			}
		}
		if pick < 0 {
			pick = rng.Intn(n)
		}
		c := append([]float64(nil), points[pick]...)
		centers = append(centers, c)
		for i, p := range points {
			d2[i] = math.Min(d2[i], sqDist(p, c))
		}
	}

	return centers
}

// lloyd iterates assignment/update steps from the given centers.
// Empty clusters are re-seeded with the point farthest from its current center.
// Returns labels and inertia (sum of squared distances to assigned centers).
func lloyd(points [][]float64, centers [][]float64, maxIter int, tol float64) ([]int, float64) {
	n, k := len(points), len(centers)
	dim := len(points[0])
	labels := make([]int, n)
	counts := make([]int, k)
	next := make([][]float64, k)
	for c := range next {
		next[c] = make([]float64, dim)
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := assign(points, centers, labels)

		for c := range next {
			floats.Scale(0, next[c])
			counts[c] = 0
		}
		for i, p := range points {
			floats.Add(next[labels[i]], p)
			counts[labels[i]]++
		}
		for c := range next {
			if counts[c] == 0 {
				far := farthest(points, centers, labels)
				copy(next[c], points[far])
				labels[far] = c
				continue
			}
			floats.Scale(1/float64(counts[c]), next[c])
		}

		shift := 0.0
		for c := range centers {
			shift += sqDist(centers[c], next[c])
			copy(centers[c], next[c])
		}
		if (!changed && iter > 0) || shift <= tol {
			break
		}
	}
	assign(points, centers, labels)

	inertia := 0.0
	for i, p := range points {
		inertia += sqDist(p, centers[labels[i]])
	}

	return labels, inertia
}

// assign sets each label to its nearest center (lowest index on ties) and
// reports whether any label changed.
func assign(points [][]float64, centers [][]float64, labels []int) bool {
	changed := false
	for i, p := range points {
		best, bestD := 0, math.Inf(1)
		for c, ctr := range centers {
			if d := sqDist(p, ctr); d < bestD {
				best, bestD = c, d
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed = true
		}
	}

	return changed
}

// farthest returns the point with the largest squared distance to its assigned center.
func farthest(points [][]float64, centers [][]float64, labels []int) int {
	idx, dist := 0, -1.0
	for i, p := range points {
		if d := sqDist(p, centers[labels[i]]); d > dist {
			idx, dist = i, d
		}
	}

	return idx
}

// sqDist returns the squared Euclidean distance.
func sqDist(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)

	return d * d
}

// meanVariance returns the mean over features of the population variance.
func meanVariance(points [][]float64) float64 {
	dim := len(points[0])
	col := make([]float64, len(points))
	total := 0.0
	for j := 0; j < dim; j++ {
		for i, p := range points {
			col[i] = p[j]
		}
		_, v := stat.PopMeanVariance(col, nil)
		total += v
	}

	return total / float64(dim)
}

// rowsOf copies a matrix into a slice of rows.
func rowsOf(m matrix.Matrix) ([][]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		out := make([][]float64, d.Rows())
		var err error
		for i := range out {
			if out[i], err = d.Row(i); err != nil {
				return nil, err
			}
		}

		return out, nil
	}
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
