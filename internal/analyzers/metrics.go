package analyzers

import (
	"access-log-analyzer/internal/shared/metrics"
)

var (
	metricAnalysesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "completed_total",
		},
		[]string{"operation", metrics.FieldErrorCode},
	)

	metricAnalysisDurationSeconds = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)
)
