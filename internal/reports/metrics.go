package reports

import (
	"access-log-analyzer/internal/shared/metrics"
)

var (
	metricReportsPersistedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "persisted_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
