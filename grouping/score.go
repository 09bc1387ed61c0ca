// SPDX-License-Identifier: MIT

package grouping

import "math"

// Scoring defaults.
const (
	DefaultEquityWeight       = 100.0
	DefaultSatisfactionWeight = 10.0
)

// ScoreParams configures Evaluate.
type ScoreParams struct {
	TargetSize         int
	TotalPoints        float64
	MutualBonus        float64
	EquityWeight       float64
	SatisfactionWeight float64
}

// Score is the evaluation of one partition.
type Score struct {
	// Satisfaction is Realized / Possible, clamped to [0,1].
	Satisfaction float64
	// Realized is Σ over groups and pairs i<j of Pair(i,j).
	Realized float64
	// Possible is Σ over the same pairs of 2·TotalPoints·MutualBonus.
	Possible float64
	// EquityLoss is Σ |len(g) − TargetSize|.
	EquityLoss float64
	// Composite is −EquityWeight·EquityLoss + SatisfactionWeight·Satisfaction.
	Composite float64
}

// Satisfaction returns the ratio of realized to maximum possible intra-group
// affinity, along with both sums. Groups with fewer than two members
// contribute nothing. A zero denominator yields 0.
func Satisfaction(p Partition, w *Weights, totalPoints, mutualBonus float64) (ratio, realized, possible float64) {
	perPair := 2 * totalPoints * mutualBonus
	for _, g := range p {
		if len(g) < 2 {
			continue
		}
		for a := 0; a < len(g); a++ {
			for b := a + 1; b < len(g); b++ {
				realized += w.Pair(g[a], g[b])
				possible += perPair
			}
		}
	}
	if possible <= 0 {
		return 0, realized, possible
	}
	ratio = realized / math.Max(possible, 1)

	return math.Min(1, math.Max(0, ratio)), realized, possible
}

// EquityLoss returns Σ |len(g) − m|.
func EquityLoss(p Partition, m int) float64 {
	loss := 0.0
	for _, g := range p {
		loss += math.Abs(float64(len(g) - m))
	}

	return loss
}

// Evaluate scores a partition.
func Evaluate(p Partition, w *Weights, sp ScoreParams) Score {
	ratio, realized, possible := Satisfaction(p, w, sp.TotalPoints, sp.MutualBonus)
	loss := EquityLoss(p, sp.TargetSize)

	return Score{
		Satisfaction: ratio,
		Realized:     realized,
		Possible:     possible,
		EquityLoss:   loss,
		Composite:    -sp.EquityWeight*loss + sp.SatisfactionWeight*ratio,
	}
}
