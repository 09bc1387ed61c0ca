// SPDX-License-Identifier: MIT

package hybrid

import (
	"github.com/Clement-Szewczyk/clusteringDeCamarades/cluster"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/config"
)

// Schedule assigns a clustering strategy to every attempt index. It repeats
// with period w.Total(): the first w.KMeans slots are k-means, the next
// w.Spectral spectral, the rest random. The default 3/3/4 weights give
// attempt a: a%10 < 3 k-means, < 6 spectral, otherwise random.
type Schedule []cluster.Kind

// NewSchedule expands weights into one period. Weights are assumed validated.
func NewSchedule(w config.StrategyWeights) Schedule {
	s := make(Schedule, 0, w.Total())
	for _, slot := range []struct {
		kind  cluster.Kind
		count int
	}{
		{cluster.KindKMeans, w.KMeans},
		{cluster.KindSpectral, w.Spectral},
		{cluster.KindRandom, w.Random},
	} {
		for i := 0; i < slot.count; i++ {
			s = append(s, slot.kind)
		}
	}

	return s
}

// At returns the strategy for attempt a.
func (s Schedule) At(a int) cluster.Kind { return s[a%len(s)] }
