// SPDX-License-Identifier: MIT

// Package hybrid runs the group-formation pipeline end to end.
//
// One run builds the affinity from ballots, projects features, then evaluates
// Config.MaxAttempts independent attempts. Each attempt clusters with the
// strategy its index selects (see Schedule), packs every cluster into groups,
// balances group sizes, refines by local search and scores the partition.
// The attempt with the highest composite score wins; ties go to the lowest
// attempt index, so the result does not depend on Parallelism.
//
// A failed spectral clustering falls back to k-means with the same seed. An
// attempt that still fails is recorded and skipped; the run fails only when
// every attempt did.
package hybrid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/affinity"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/cluster"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/config"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/features"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/grouping"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/logging"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/metrics"
)

// Optimizer is immutable after New and safe for concurrent Run calls.
type Optimizer struct {
	cfg         config.Config
	log         logr.Logger
	rec         metrics.Recorder
	parallelism int
	strategies  map[cluster.Kind]cluster.Strategy
	schedule    Schedule
}

// New validates cfg and returns an Optimizer.
func New(cfg config.Config, opts ...Option) (*Optimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	km := cluster.NewKMeans()
	km.Restarts = cfg.KMeansRestarts
	sp := cluster.NewSpectral()
	sp.KMeans = km

	o := &Optimizer{
		cfg:         cfg,
		log:         logging.Discard(),
		rec:         metrics.NewNop(),
		parallelism: cfg.Parallelism,
		strategies: map[cluster.Kind]cluster.Strategy{
			cluster.KindKMeans:   km,
			cluster.KindSpectral: sp,
			cluster.KindRandom:   cluster.Random{},
		},
		schedule: NewSchedule(cfg.ScheduleWeights()),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// Config returns the configuration the optimizer was built with.
func (o *Optimizer) Config() config.Config { return o.cfg }

// Run builds the affinity from ballots (minus Config.Exclusions) and
// optimizes it.
//
// Errors: ErrNoParticipants; affinity data errors (ErrEmptyName,
// ErrDuplicateName); ErrNoValidSolution; ctx.Err() on cancellation.
func (o *Optimizer) Run(ctx context.Context, ballots []affinity.Ballot) (*Solution, error) {
	if len(ballots) == 0 {
		return nil, ErrNoParticipants
	}
	aff, err := affinity.FromBallots(ballots, o.cfg.Exclusions, o.cfg.AffinityParams(), o.log)
	if errors.Is(err, affinity.ErrEmptyRoster) {
		return nil, fmt.Errorf("%w: %w", ErrNoParticipants, err)
	}
	if err != nil {
		return nil, err
	}

	return o.Optimize(ctx, aff)
}

// Optimize searches for the best partition of aff's participants.
func (o *Optimizer) Optimize(ctx context.Context, aff *affinity.Affinity) (*Solution, error) {
	if aff == nil {
		return nil, ErrNilAffinity
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	runID := uuid.New()
	log := o.log.WithValues("run", runID.String())

	n := aff.N()
	if n == 0 {
		return nil, ErrNoParticipants
	}
	w, err := grouping.NewWeights(aff.Final)
	if err != nil {
		return nil, fmt.Errorf("hybrid: %w", err)
	}

	var sol *Solution
	if n == 1 {
		sol = o.single(aff, w)
	} else {
		if sol, err = o.search(ctx, log, aff, w); err != nil {
			return nil, err
		}
	}
	sol.RunID = runID

	elapsed := time.Since(start)
	o.rec.ObserveSatisfaction(sol.Score.Satisfaction)
	o.rec.ObserveRun(elapsed.Seconds(), n)
	log.Info("optimization finished",
		"participants", n,
		"groups", len(sol.Partition),
		"attempt", sol.Attempt,
		"strategy", sol.Strategy,
		"satisfaction", sol.Score.Satisfaction,
		"composite", sol.Score.Composite,
		"elapsed", elapsed.String())

	return sol, nil
}

// single handles n == 1: one singleton group, no clustering.
func (o *Optimizer) single(aff *affinity.Affinity, w *grouping.Weights) *Solution {
	p := grouping.Partition{{0}}

	return &Solution{
		Partition: p,
		Score:     grouping.Evaluate(p, w, o.cfg.ScoreParams()),
		Strategy:  StrategyTrivial,
		Affinity:  aff,
		Attempts:  []Attempt{},
	}
}

// search evaluates every attempt on up to o.parallelism goroutines and keeps
// the best.
func (o *Optimizer) search(ctx context.Context, log logr.Logger, aff *affinity.Affinity, w *grouping.Weights) (*Solution, error) {
	x, err := features.Build(aff.Final)
	if err != nil {
		return nil, fmt.Errorf("hybrid: features: %w", err)
	}
	n := aff.N()
	in := cluster.Input{Features: x, Affinity: aff.Final}
	k := cluster.TargetGroupCount(n, o.cfg.GroupSize)
	log.V(logging.DEBUG).Info("starting attempts",
		"participants", n, "clusters", k, "attempts", o.cfg.MaxAttempts, "parallelism", o.parallelism)

	attempts := make([]Attempt, o.cfg.MaxAttempts)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for a := range attempts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			attempts[a] = o.attempt(log, a, in, w, k)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	best := -1
	var errs []error
	for i := range attempts {
		at := &attempts[i]
		if !at.OK() {
			o.rec.ObserveAttempt(at.Strategy, metrics.OutcomeFailed)
			errs = append(errs, at.Err)
			continue
		}
		o.rec.ObserveAttempt(at.Strategy, metrics.OutcomeOK)
		if best < 0 || at.Score.Composite > attempts[best].Score.Composite {
			best = i
		}
	}
	if best < 0 {
		return nil, errors.Join(append([]error{ErrNoValidSolution}, errs...)...)
	}
	if len(errs) > 0 {
		log.Info("some attempts failed", "failed", len(errs), "error", errors.Join(errs...).Error())
	}

	win := attempts[best]

	return &Solution{
		Partition: win.Partition.Canonical(),
		Score:     win.Score,
		Attempt:   win.Index,
		Strategy:  win.Strategy,
		Seed:      win.Seed,
		Fallback:  win.Fallback,
		Affinity:  aff,
		Attempts:  attempts,
	}, nil
}

// attempt runs one pipeline: cluster (with spectral fallback) → Compact →
// PackAll → Balance → LocalSearch → Validate → Evaluate.
func (o *Optimizer) attempt(log logr.Logger, a int, in cluster.Input, w *grouping.Weights, k int) Attempt {
	kind := o.schedule.At(a)
	at := Attempt{
		Index:    a,
		Strategy: kind.String(),
		Seed:     cluster.DeriveSeed(o.cfg.Seed, uint64(a)),
	}
	log = log.WithValues("attempt", a)

	res := o.strategies[kind].Cluster(in, k, at.Seed)
	if !res.OK() && kind == cluster.KindSpectral {
		log.V(logging.DEBUG).Info("spectral clustering failed, falling back to kmeans", "reason", res.Err.Error())
		o.rec.ObserveFallback(kind.String(), cluster.KindKMeans.String())
		at.Strategy = cluster.KindKMeans.String()
		at.Fallback = true
		res = o.strategies[cluster.KindKMeans].Cluster(in, k, at.Seed)
	}
	if !res.OK() {
		at.Err = fmt.Errorf("attempt %d (%s): %w", a, at.Strategy, res.Err)
		return at
	}

	n, m := w.N(), o.cfg.GroupSize
	labels, _ := cluster.Compact(res.Labels)
	p, err := grouping.PackAll(labels, w, m)
	if err == nil {
		p, err = grouping.Balance(p, w, m, grouping.DefaultBalanceIterations(n))
	}
	if err == nil {
		p, at.Search, err = grouping.LocalSearch(p, w, o.cfg.SearchOptions())
	}
	if err == nil {
		err = p.Validate(n)
	}
	if err != nil {
		at.Err = fmt.Errorf("attempt %d (%s): %w", a, at.Strategy, err)
		return at
	}

	at.Partition = p
	at.Score = grouping.Evaluate(p, w, o.cfg.ScoreParams())
	log.V(logging.TRACE).Info("attempt done",
		"strategy", at.Strategy,
		"groups", len(p),
		"satisfaction", at.Score.Satisfaction,
		"composite", at.Score.Composite,
		"moves", at.Search.Moves,
		"swaps", at.Search.Swaps)

	return at
}
