// Package metrics exposes Prometheus instrumentation for the analysis API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysisTotal counts completed analyses by resulting risk tier.
	AnalysisTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scamshield",
		Name:      "analysis_total",
		Help:      "Completed voice analyses by overall risk tier.",
	}, []string{"risk"})

	// AnalysisDuration observes end-to-end pipeline latency.
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "scamshield",
		Name:      "analysis_duration_seconds",
		Help:      "End-to-end analysis pipeline duration.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	})

	// ValidationRejections counts uploads rejected before the pipeline ran.
	ValidationRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "scamshield",
		Name:      "validation_rejections_total",
		Help:      "Uploads rejected by input validation.",
	})

	// PipelineFailures counts unclassified pipeline errors.
	PipelineFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "scamshield",
		Name:      "pipeline_failures_total",
		Help:      "Analyses that failed with an internal error.",
	})
)
