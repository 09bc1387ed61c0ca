// SPDX-License-Identifier: MIT

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every exported metric name.
const DefaultNamespace = "camarades"

const subsystem = "optimizer"

// PrometheusCollector implements Recorder backed by Prometheus.
// Collectors are created and registered lazily on first use.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	attempts     *prometheus.CounterVec
	fallbacks    *prometheus.CounterVec
	satisfaction prometheus.Histogram
	runDuration  prometheus.Histogram
	participants prometheus.Gauge
}

var _ Recorder = (*PrometheusCollector)(nil)

// NewPrometheus creates a Prometheus-backed recorder.
//
// Parameters:
//   - reg: registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: metric namespace (DefaultNamespace if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.attempts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: subsystem,
			Name:      "attempts_total",
			Help:      "Optimization attempts by strategy and outcome (ok|failed).",
		}, []string{"strategy", "outcome"})

		p.fallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: subsystem,
			Name:      "fallbacks_total",
			Help:      "Clustering failures recovered by a fallback strategy.",
		}, []string{"from", "to"})

		p.satisfaction = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: subsystem,
			Name:      "satisfaction_ratio",
			Help:      "Satisfaction ratio of the selected solution.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		})

		p.runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a complete optimizer run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		})

		p.participants = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: subsystem,
			Name:      "participants",
			Help:      "Participant count of the last run.",
		})

		p.reg.MustRegister(p.attempts)
		p.reg.MustRegister(p.fallbacks)
		p.reg.MustRegister(p.satisfaction)
		p.reg.MustRegister(p.runDuration)
		p.reg.MustRegister(p.participants)
	})
}

// ObserveAttempt increments attempts_total{strategy,outcome}.
func (p *PrometheusCollector) ObserveAttempt(strategy, outcome string) {
	p.ensureRegistered()
	p.attempts.WithLabelValues(strategy, outcome).Inc()
}

// ObserveFallback increments fallbacks_total{from,to}.
func (p *PrometheusCollector) ObserveFallback(from, to string) {
	p.ensureRegistered()
	p.fallbacks.WithLabelValues(from, to).Inc()
}

// ObserveSatisfaction observes the selected ratio.
func (p *PrometheusCollector) ObserveSatisfaction(ratio float64) {
	p.ensureRegistered()
	p.satisfaction.Observe(ratio)
}

// ObserveRun observes the run duration and sets the participant gauge.
func (p *PrometheusCollector) ObserveRun(seconds float64, participants int) {
	p.ensureRegistered()
	p.runDuration.Observe(seconds)
	p.participants.Set(float64(participants))
}
