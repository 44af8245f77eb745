// Package metrics exposes run and phase timings to Prometheus.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/report"
)

const (
	ResultOK         = "ok"
	ResultMalformed  = "malformed"
	ResultRejected   = "rejected"
	ResultUnreadable = "unreadable"
	ResultFailed     = "failed"
)

var (
	// RunsTotal counts benchmark runs by result
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crossbench_runs_total",
		Help: "Total benchmark runs by result",
	}, []string{"result"})

	// PhaseDuration tracks phase latency, load included
	PhaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "crossbench_phase_duration_seconds",
		Help:    "Phase duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
	}, []string{"phase"})

	// PhaseErrors counts phases that produced no result
	PhaseErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crossbench_phase_errors_total",
		Help: "Total phases that failed by phase",
	}, []string{"phase"})

	// RecordsDecoded counts persons accepted by the decoder
	RecordsDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crossbench_records_decoded_total",
		Help: "Total person records decoded",
	})
)

// ObserveDecoded records a successful decode of n records.
func ObserveDecoded(n int) {
	RecordsDecoded.Add(float64(n))
}

// ObserveReport records the outcome of a finished run. Failed phases still
// observe the span they ran for.
func ObserveReport(r *report.Report) {

	result := ResultOK
	for _, p := range r.Phases {
		PhaseDuration.WithLabelValues(p.Name).Observe(p.Seconds)
		if p.Error != "" {
			PhaseErrors.WithLabelValues(p.Name).Inc()
			result = ResultFailed
		}
	}

	RunsTotal.WithLabelValues(result).Inc()
}

// ObserveDecodeError records an input that was refused before any phase
// could run.
func ObserveDecodeError(err error) {

	var schemaErr *person.SchemaError
	if errors.As(err, &schemaErr) {
		RunsTotal.WithLabelValues(ResultRejected).Inc()
		return
	}

	var ioErr *person.IOError
	if errors.As(err, &ioErr) {
		RunsTotal.WithLabelValues(ResultUnreadable).Inc()
		return
	}

	RunsTotal.WithLabelValues(ResultMalformed).Inc()
}
