// SPDX-License-Identifier: MIT

package hybrid

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/cluster"
	"github.com/Clement-Szewczyk/clusteringDeCamarades/metrics"
)

// Option customizes an Optimizer. Constructors panic on meaningless input;
// the optimizer itself never panics.
type Option func(*Optimizer)

// WithLogger sets the logger (default: discard).
func WithLogger(log logr.Logger) Option {
	return func(o *Optimizer) {
		o.log = log
	}
}

// WithRecorder sets the metrics recorder (default: metrics.NewNop()).
func WithRecorder(rec metrics.Recorder) Option {
	if rec == nil {
		panic("hybrid: WithRecorder(nil)")
	}
	return func(o *Optimizer) {
		o.rec = rec
	}
}

// WithParallelism overrides Config.Parallelism.
func WithParallelism(workers int) Option {
	if workers < 1 {
		panic(fmt.Sprintf("hybrid: WithParallelism(%d)", workers))
	}
	return func(o *Optimizer) {
		o.parallelism = workers
	}
}

// WithStrategy replaces the implementation used for kind.
func WithStrategy(kind cluster.Kind, s cluster.Strategy) Option {
	if s == nil {
		panic(fmt.Sprintf("hybrid: WithStrategy(%s, nil)", kind))
	}
	return func(o *Optimizer) {
		o.strategies[kind] = s
	}
}
