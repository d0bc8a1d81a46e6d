package aggregators

import (
	"access-log-analyzer/internal/models"
	"access-log-analyzer/internal/shared/metrics"
)

const (
	outcomeRead                = "read"
	outcomeClient              = "client"
	outcomeEndpoint            = "endpoint"
	outcomeAuthFailure         = "auth_failure"
	outcomeUnattributedFailure = "unattributed_failure"
	outcomeSkipped             = "skipped"
	outcomeTruncated           = "truncated"
	outcomeReadError           = "read_error"
)

// metricLinesProcessedTotal counts log lines folded by the aggregator, split by what was
// extracted from them. One line can count towards several outcomes, e.g. a failed login
// line counts as read, client, endpoint and auth_failure.
var (
	metricLinesProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "lines_processed_total",
		},
		[]string{metrics.FieldOutcome},
	)
)

func recordLineMetrics(stats models.ParseStats) {
	metricLinesProcessedTotal.WithLabelValues(outcomeRead).Add(float64(stats.LinesRead))
	metricLinesProcessedTotal.WithLabelValues(outcomeClient).Add(float64(stats.LinesWithClient))
	metricLinesProcessedTotal.WithLabelValues(outcomeEndpoint).Add(float64(stats.LinesWithEndpoint))
	metricLinesProcessedTotal.WithLabelValues(outcomeAuthFailure).Add(float64(stats.FailureLines - stats.UnattributedFailures))
	metricLinesProcessedTotal.WithLabelValues(outcomeUnattributedFailure).Add(float64(stats.UnattributedFailures))
	metricLinesProcessedTotal.WithLabelValues(outcomeSkipped).Add(float64(stats.SkippedLines))
	metricLinesProcessedTotal.WithLabelValues(outcomeTruncated).Add(float64(stats.TruncatedLines))
}
