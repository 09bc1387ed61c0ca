// SPDX-License-Identifier: MIT
package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/cluster"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// sameBlocks asserts that labels put every member of a block together and
// different blocks apart.
func sameBlocks(t *testing.T, labels []int, blocks ...[]int) {
	t.Helper()
	seen := map[int]bool{}
	for _, b := range blocks {
		l := labels[b[0]]
		for _, i := range b {
			require.Equalf(t, l, labels[i], "participant %d split from its block", i)
		}
		require.Falsef(t, seen[l], "blocks share label %d", l)
		seen[l] = true
	}
}

func TestTargetGroupCount(t *testing.T) {
	t.Parallel()

	cases := []struct{ n, m, want int }{
		{0, 3, 1}, {1, 3, 1}, {3, 3, 1}, {4, 3, 2}, {7, 3, 3}, {9, 3, 3}, {10, 3, 4}, {5, 0, 5},
	}
	for _, c := range cases {
		require.Equalf(t, c.want, cluster.TargetGroupCount(c.n, c.m), "n=%d m=%d", c.n, c.m)
	}
}

func TestCompact(t *testing.T) {
	t.Parallel()

	labels, k := cluster.Compact([]int{4, 4, 1, 7, 1})
	require.Equal(t, []int{0, 0, 1, 2, 1}, labels)
	require.Equal(t, 3, k)

	labels, k = cluster.Compact(nil)
	require.Empty(t, labels)
	require.Zero(t, k)
}

func TestKind(t *testing.T) {
	t.Parallel()

	for _, k := range cluster.Kinds {
		got, err := cluster.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)

		s, err := cluster.New(k)
		require.NoError(t, err)
		require.Equal(t, k.String(), s.Name())
	}
	got, err := cluster.ParseKind(" Spectral ")
	require.NoError(t, err)
	require.Equal(t, cluster.KindSpectral, got)

	_, err = cluster.ParseKind("dbscan")
	require.ErrorIs(t, err, cluster.ErrUnknownKind)
	_, err = cluster.New(cluster.Kind(42))
	require.ErrorIs(t, err, cluster.ErrUnknownKind)
	require.Equal(t, "Kind(42)", cluster.Kind(42).String())
}

func TestDeriveSeed(t *testing.T) {
	t.Parallel()

	require.Equal(t, cluster.DeriveSeed(42, 3), cluster.DeriveSeed(42, 3))
	require.Equal(t, cluster.DeriveSeed(0, 3), cluster.DeriveSeed(1, 3), "zero parent uses the default stream")

	seen := map[int64]bool{}
	for a := uint64(0); a < 100; a++ {
		s := cluster.DeriveSeed(7, a)
		require.Falsef(t, seen[s], "collision at stream %d", a)
		seen[s] = true
	}
}

func blobs() [][]float64 {
	return [][]float64{
		{0, 0}, {0.1, -0.1}, {-0.1, 0.05},
		{10, 10}, {10.2, 9.9}, {9.8, 10.1},
		{-10, 10}, {-10.1, 10.2}, {-9.9, 9.8},
	}
}

func TestKMeans_SeparatedBlobs(t *testing.T) {
	t.Parallel()

	in := cluster.Input{Features: mustDense(t, blobs())}
	km := cluster.NewKMeans()
	for seed := int64(0); seed < 5; seed++ {
		res := km.Cluster(in, 3, seed)
		require.True(t, res.OK(), "%v", res.Err)
		sameBlocks(t, res.Labels, []int{0, 1, 2}, []int{3, 4, 5}, []int{6, 7, 8})

		again := km.Cluster(in, 3, seed)
		require.Equal(t, res.Labels, again.Labels, "same seed ⇒ same labels")
	}
}

func TestKMeans_Errors(t *testing.T) {
	t.Parallel()

	km := cluster.KMeans{} // zero value uses defaults
	res := km.Cluster(cluster.Input{}, 2, 1)
	require.ErrorIs(t, res.Err, cluster.ErrMissingInput)
	require.False(t, res.OK())

	in := cluster.Input{Features: mustDense(t, blobs())}
	require.ErrorIs(t, km.Cluster(in, 0, 1).Err, cluster.ErrInvalidK)
	require.ErrorIs(t, km.Cluster(in, 10, 1).Err, cluster.ErrInvalidK)
}

func TestKMeans_IdenticalPoints(t *testing.T) {
	t.Parallel()

	in := cluster.Input{Features: mustDense(t, [][]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}})}
	res := cluster.NewKMeans().Cluster(in, 2, 9)
	require.NoError(t, res.Err)
	require.Len(t, res.Labels, 4)
	for _, l := range res.Labels {
		require.GreaterOrEqual(t, l, 0)
		require.Less(t, l, 2)
	}
}

// twoCommunities has strong ties inside {0,1,2} and {3,4,5} and one weak bridge.
func twoCommunities(t *testing.T) *matrix.Dense {
	return mustDense(t, [][]float64{
		{0, 90, 80, 1, 0, 0},
		{90, 0, 85, 0, 0, 0},
		{80, 85, 0, 0, 0, 0},
		{1, 0, 0, 0, 70, 95},
		{0, 0, 0, 70, 0, 75},
		{0, 0, 0, 95, 75, 0},
	})
}

func TestSpectral_Communities(t *testing.T) {
	t.Parallel()

	sp := cluster.NewSpectral()
	for seed := int64(1); seed <= 3; seed++ {
		res := sp.Cluster(cluster.Input{Affinity: twoCommunities(t)}, 2, seed)
		require.NoError(t, res.Err)
		sameBlocks(t, res.Labels, []int{0, 1, 2}, []int{3, 4, 5})
	}
}

func TestSpectral_IsolatedParticipant(t *testing.T) {
	t.Parallel()

	w := mustDense(t, [][]float64{
		{0, 50, 0},
		{50, 0, 0},
		{0, 0, 0},
	})
	res := cluster.NewSpectral().Cluster(cluster.Input{Affinity: w}, 2, 4)
	require.NoError(t, res.Err)
	require.Len(t, res.Labels, 3)
	require.Equal(t, res.Labels[0], res.Labels[1])
}

func TestSpectral_Failures(t *testing.T) {
	t.Parallel()

	zero, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	res := cluster.NewSpectral().Cluster(cluster.Input{Affinity: zero}, 2, 1)
	require.ErrorIs(t, res.Err, cluster.ErrDegenerateAffinity)

	res = cluster.NewSpectral().Cluster(cluster.Input{}, 2, 1)
	require.ErrorIs(t, res.Err, cluster.ErrMissingInput)

	asym := mustDense(t, [][]float64{{0, 1}, {2, 0}})
	res = cluster.NewSpectral().Cluster(cluster.Input{Affinity: asym}, 2, 1)
	require.ErrorIs(t, res.Err, cluster.ErrDegenerateAffinity)

	// A single sweep with an unreachable tolerance cannot converge on a dense input.
	rng := rand.New(rand.NewSource(3))
	n := 8
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := 1 + rng.Float64()*99
			rows[i][j], rows[j][i] = v, v
		}
	}
	sp := cluster.NewSpectral()
	sp.EigenTol, sp.EigenSweeps = 1e-300, 1
	res = sp.Cluster(cluster.Input{Affinity: mustDense(t, rows)}, 3, 1)
	require.ErrorIs(t, res.Err, cluster.ErrNoConvergence)
	require.ErrorIs(t, res.Err, matrix.ErrEigenFailed)
}

func TestRandom(t *testing.T) {
	t.Parallel()

	in := cluster.Input{Features: mustDense(t, blobs())}
	res := cluster.Random{}.Cluster(in, 3, 11)
	require.NoError(t, res.Err)
	require.Len(t, res.Labels, 9)
	for _, l := range res.Labels {
		require.GreaterOrEqual(t, l, 0)
		require.Less(t, l, 3)
	}
	require.Equal(t, res.Labels, cluster.Random{}.Cluster(in, 3, 11).Labels)

	require.ErrorIs(t, cluster.Random{}.Cluster(cluster.Input{}, 1, 1).Err, cluster.ErrMissingInput)
	require.ErrorIs(t, cluster.Random{}.Cluster(in, 12, 1).Err, cluster.ErrInvalidK)
}
