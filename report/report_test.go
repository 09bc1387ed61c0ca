// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/affinity"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/grouping"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/logging"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/report"
)

func fixture(t *testing.T) report.Summary {
	t.Helper()
	ballots := []affinity.Ballot{
		{Voter: "Ana", Points: map[string]float64{"Bob": 60, "Cleo": 40}},
		{Voter: "Bob", Points: map[string]float64{"Ana": 100}},
		{Voter: "Cleo", Points: map[string]float64{"Dan": 100}},
		{Voter: "Dan", Points: map[string]float64{}},
	}
	aff, err := affinity.FromBallots(ballots, nil, affinity.DefaultParams(), logging.Discard())
	require.NoError(t, err)

	s, err := report.Build(aff, grouping.Partition{{0, 1, 2}, {3}}, grouping.Score{Satisfaction: 0.25, Realized: 340}, 3)
	require.NoError(t, err)

	return s
}

func TestBuild(t *testing.T) {
	s := fixture(t)

	require.Equal(t, []int{3, 1}, s.Sizes)
	require.InDelta(t, 2.0, s.AvgSize, 1e-12)
	require.InDelta(t, 1.0, s.SizeVariance, 1e-12)
	require.InDelta(t, 1.0/3, s.BalanceScore, 1e-12)
	require.Equal(t, []string{"Dan distributed 0 points instead of 100"}, s.Warnings)

	require.Len(t, s.Groups, 2)
	g := s.Groups[0]
	require.Equal(t, report.SizeExact, g.Status)
	require.InDelta(t, 200.0, g.Points, 1e-9)
	require.InDelta(t, 340.0, g.Affinity, 1e-9)
	require.Empty(t, cmp.Diff([]report.Link{
		{From: "Ana", To: "Bob", FromTo: 60, ToFrom: 100, Mutual: true},
		{From: "Ana", To: "Cleo", FromTo: 40},
	}, g.Links))

	require.Equal(t, report.SizeOff, s.Groups[1].Status)
	require.Empty(t, s.Groups[1].Links)
}

func TestBuild_Errors(t *testing.T) {
	_, err := report.Build(nil, nil, grouping.Score{}, 3)
	require.Error(t, err)

	aff, err := affinity.FromBallots([]affinity.Ballot{{Voter: "Ana"}, {Voter: "Bob"}}, nil, affinity.DefaultParams(), logging.Discard())
	require.NoError(t, err)
	_, err = report.Build(aff, grouping.Partition{{0}}, grouping.Score{}, 3)
	require.ErrorIs(t, err, grouping.ErrInvalidPartition)

	_, err = report.FromSolution(nil, 3)
	require.Error(t, err)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, fixture(t), ""))

	want := `Warnings:
  Dan distributed 0 points instead of 100

Results
  Satisfaction: 25.0%
  Raw score: 340.0
  Groups: 2 | Sizes: [3 1] | Target: 3
  Size balance: avg=2.0 variance=1.00 balance=33.3%

[=] Group 1: Ana, Bob, Cleo (3 people)
  Points exchanged: 200.0
  Ana <-> Bob (mutual: 60.0 <-> 100.0)
  Ana -> Cleo (40.0)

[!] Group 2: Dan (1 people)
`
	require.Equal(t, want, buf.String())
}

func TestWrite_Structured(t *testing.T) {
	s := fixture(t)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, s, report.FormatYAML))
	var fromYAML report.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	require.Empty(t, cmp.Diff(s, fromYAML, cmpopts.EquateEmpty()))

	buf.Reset()
	require.NoError(t, report.Write(&buf, s, report.FormatJSON))
	var fromJSON report.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	require.Empty(t, cmp.Diff(s, fromJSON, cmpopts.EquateEmpty()))

	require.ErrorIs(t, report.Write(&buf, s, "html"), report.ErrUnknownFormat)
}
