package samples

import "access-log-analyzer/internal/shared/metrics"

var (
	metricSamplesWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSample,
			Name:      "written_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
