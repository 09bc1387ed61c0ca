// SPDX-License-Identifier: MIT

// Package report turns a partition into a readable account of the result:
// per-group members, the preference links inside each group and size
// balance statistics. Summary is plain data; Write renders it as text,
// YAML or JSON.
package report

import (
	"fmt"
	"math"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/affinity"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/grouping"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/hybrid"
)

// Size status of a group relative to the target size.
const (
	SizeExact = "exact" // len == target
	SizeNear  = "near"  // off by one
	SizeOff   = "off"   // off by more
)

// Link is a preference between two members of the same group. Points are
// the normalized points each gave the other.
type Link struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	FromTo float64 `json:"fromTo" yaml:"fromTo"`
	ToFrom float64 `json:"toFrom" yaml:"toFrom"`
	Mutual bool    `json:"mutual" yaml:"mutual"`
}

// GroupDetail describes one group.
type GroupDetail struct {
	Number  int      `json:"number" yaml:"number"`
	Members []string `json:"members" yaml:"members"`
	Status  string   `json:"status" yaml:"status"`
	// Points is the sum of normalized points exchanged inside the group.
	Points float64 `json:"points" yaml:"points"`
	// Affinity is the same sum over the symmetrized affinity.
	Affinity float64 `json:"affinity" yaml:"affinity"`
	Links    []Link  `json:"links" yaml:"links"`
}

// Summary is the full report of one run.
type Summary struct {
	RunID    string `json:"runId,omitempty" yaml:"runId,omitempty"`
	Strategy string `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Attempt  int    `json:"attempt" yaml:"attempt"`
	Fallback bool   `json:"fallback" yaml:"fallback"`

	Satisfaction float64 `json:"satisfaction" yaml:"satisfaction"`
	RawScore     float64 `json:"rawScore" yaml:"rawScore"`
	Composite    float64 `json:"composite" yaml:"composite"`

	Target       int     `json:"target" yaml:"target"`
	Sizes        []int   `json:"sizes" yaml:"sizes"`
	AvgSize      float64 `json:"avgSize" yaml:"avgSize"`
	SizeVariance float64 `json:"sizeVariance" yaml:"sizeVariance"`
	// BalanceScore is 1 − (max−min)/max over group sizes.
	BalanceScore float64 `json:"balanceScore" yaml:"balanceScore"`

	Warnings []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Groups   []GroupDetail `json:"groups" yaml:"groups"`
}

// Build analyses partition p of aff's participants.
func Build(aff *affinity.Affinity, p grouping.Partition, score grouping.Score, target int) (Summary, error) {
	if aff == nil {
		return Summary{}, fmt.Errorf("report: nil affinity")
	}
	if err := p.Validate(aff.N()); err != nil {
		return Summary{}, fmt.Errorf("report: %w", err)
	}
	s := Summary{
		Satisfaction: score.Satisfaction,
		RawScore:     score.Realized,
		Composite:    score.Composite,
		Target:       target,
		Sizes:        p.Sizes(),
		Groups:       make([]GroupDetail, len(p)),
	}
	for _, w := range aff.Warnings {
		s.Warnings = append(s.Warnings, w.String())
	}
	s.AvgSize, s.SizeVariance, s.BalanceScore = sizeStats(s.Sizes)

	for gi, g := range p {
		s.Groups[gi] = detail(aff, g, gi+1, target)
	}

	return s, nil
}

// FromSolution builds the report of a hybrid run.
func FromSolution(sol *hybrid.Solution, target int) (Summary, error) {
	if sol == nil {
		return Summary{}, fmt.Errorf("report: nil solution")
	}
	s, err := Build(sol.Affinity, sol.Partition, sol.Score, target)
	if err != nil {
		return Summary{}, err
	}
	s.RunID = sol.RunID.String()
	s.Strategy = sol.Strategy
	s.Attempt = sol.Attempt
	s.Fallback = sol.Fallback

	return s, nil
}

func detail(aff *affinity.Affinity, g grouping.Group, number, target int) GroupDetail {
	d := GroupDetail{Number: number, Members: make([]string, len(g)), Status: status(len(g), target)}
	for i, p := range g {
		d.Members[i] = aff.Roster.Name(p)
	}
	var (
		i, j           int
		ab, ba, fa, fb float64
	)
	for i = 0; i < len(g); i++ {
		for j = i + 1; j < len(g); j++ {
			ab, _ = aff.Raw.At(g[i], g[j])
			ba, _ = aff.Raw.At(g[j], g[i])
			fa, _ = aff.Final.At(g[i], g[j])
			fb, _ = aff.Final.At(g[j], g[i])
			d.Points += ab + ba
			d.Affinity += fa + fb
			if ab <= 0 && ba <= 0 {
				continue
			}
			d.Links = append(d.Links, Link{
				From:   d.Members[i],
				To:     d.Members[j],
				FromTo: ab,
				ToFrom: ba,
				Mutual: ab > 0 && ba > 0,
			})
		}
	}

	return d
}

func status(size, target int) string {
	switch diff := size - target; {
	case diff == 0:
		return SizeExact
	case diff == 1 || diff == -1:
		return SizeNear
	default:
		return SizeOff
	}
}

// sizeStats returns the mean, population variance and balance score of sizes.
func sizeStats(sizes []int) (avg, variance, balance float64) {
	if len(sizes) == 0 {
		return 0, 0, 0
	}
	lo, hi := math.MaxInt, 0
	for _, s := range sizes {
		avg += float64(s)
		lo = min(lo, s)
		hi = max(hi, s)
	}
	avg /= float64(len(sizes))
	for _, s := range sizes {
		variance += (float64(s) - avg) * (float64(s) - avg)
	}
	variance /= float64(len(sizes))
	if hi > 0 {
		balance = 1 - float64(hi-lo)/float64(hi)
	}

	return avg, variance, balance
}
