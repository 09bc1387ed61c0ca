// SPDX-License-Identifier: MIT

// Package metrics defines the optimizer's instrumentation surface.
//
// The hybrid optimizer reports through Recorder. NewNop discards everything,
// NewPrometheus exports counters and histograms via client_golang.
package metrics

// Attempt outcomes reported to ObserveAttempt.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// Recorder receives optimizer events. Implementations must be safe for
// concurrent use; attempts may report from several goroutines.
type Recorder interface {
	// ObserveAttempt counts one finished attempt by the strategy that produced
	// its labels and its outcome.
	ObserveAttempt(strategy, outcome string)
	// ObserveFallback counts a strategy failure recovered by another strategy.
	ObserveFallback(from, to string)
	// ObserveSatisfaction records the satisfaction ratio of the selected solution.
	ObserveSatisfaction(ratio float64)
	// ObserveRun records one complete optimizer run.
	ObserveRun(seconds float64, participants int)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

var _ Recorder = (*NopMetrics)(nil)

// NewNop creates a no-op recorder.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// ObserveAttempt discards the attempt.
func (n *NopMetrics) ObserveAttempt(_ /* strategy */, _ /* outcome */ string) {}

// ObserveFallback discards the fallback.
func (n *NopMetrics) ObserveFallback(_ /* from */, _ /* to */ string) {}

// ObserveSatisfaction discards the ratio.
func (n *NopMetrics) ObserveSatisfaction(_ float64) {}

// ObserveRun discards the run.
func (n *NopMetrics) ObserveRun(_ float64, _ int) {}
