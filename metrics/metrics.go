// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors updated by the engines.
//
// Collectors are registered on the default registry through promauto, so a
// process only needs to expose prometheus.DefaultGatherer (or write it with
// WriteTextfile) to publish them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gdsgo/errkind"
)

// Outcome label values.
const (
	OutcomeSuccess          = "success"
	OutcomeCancelled        = "cancelled"
	OutcomeConfiguration    = "configuration"
	OutcomeResourceExceeded = "resource_exceeded"
	OutcomeExecution        = "execution"
)

var (
	// RunsTotal counts finished runs by algorithm and outcome.
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gds_runs_total",
			Help: "Total number of analytics runs by algorithm and outcome",
		},
		[]string{"algorithm", "outcome"},
	)

	// RunDuration measures wall time of runs, from admission to result.
	RunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gds_run_duration_seconds",
			Help:    "Duration of analytics runs in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120, 600},
		},
		[]string{"algorithm"},
	)

	// PivotsProcessed counts shortest-path sources swept by betweenness workers.
	PivotsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gds_betweenness_pivots_processed_total",
			Help: "Total number of pivots swept by betweenness workers",
		},
	)

	// EmbeddingBatches counts node batches completed by the embedding forward pass.
	EmbeddingBatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gds_embedding_batches_total",
			Help: "Total number of node batches computed by the embedding forward pass",
		},
	)

	// EstimatedBytes is the predicted peak of the last admitted or rejected run.
	EstimatedBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gds_memory_estimate_bytes",
			Help: "Predicted peak memory of the most recent run",
		},
		[]string{"algorithm"},
	)
)

// Outcome maps a run error onto its label value.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	if errkind.IsCancelled(err) {
		return OutcomeCancelled
	}
	switch errkind.KindOf(err) {
	case errkind.Configuration:
		return OutcomeConfiguration
	case errkind.ResourceExceeded:
		return OutcomeResourceExceeded
	default:
		return OutcomeExecution
	}
}

// ObserveRun records one finished run.
func ObserveRun(algorithm string, elapsed time.Duration, err error) {
	RunsTotal.WithLabelValues(algorithm, Outcome(err)).Inc()
	RunDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// WriteTextfile dumps the default registry in text exposition format, for
// node_exporter's textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
