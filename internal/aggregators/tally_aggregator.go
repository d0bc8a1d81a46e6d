package aggregators

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"access-log-analyzer/internal/extractors"
	"access-log-analyzer/internal/models"
	"access-log-analyzer/internal/shared/loggers"
)

// TallyAggregator folds a stream of access log lines into request, endpoint and failure tallies
// in a single sequential pass.
//
// Per line, in order:
//  1. a client id bumps Requests[client]
//  2. an endpoint bumps Endpoints[endpoint]
//  3. a failure signal bumps Failures[last client id seen in the stream]
//
// A line contributes whatever it yielded; a line yielding nothing is skipped. A failure seen
// before any client id has nobody to be charged to: it is skipped and counted in
// Stats.UnattributedFailures. A line longer than maxLineBytes is cut: its prefix still yields
// the client id and failure signal, an endpoint running into the cut is dropped, and the line
// is counted in Stats.TruncatedLines. A read error aborts the pass and no tallies are returned.
//
//go:generate mockgen -source=tally_aggregator.go -destination=./mocks/tally_aggregator_mock.go -package=mocks
type TallyAggregator interface {
	Aggregate(ctx context.Context, r io.Reader) (*models.Tallies, error)
}

type tallyAggregator struct {
	extractor extractors.LineExtractor
}

func NewTallyAggregator(extractor extractors.LineExtractor) TallyAggregator {
	return &tallyAggregator{extractor: extractor}
}

func (a *tallyAggregator) Aggregate(ctx context.Context, r io.Reader) (*models.Tallies, error) {
	logger := loggers.Ctx(ctx)
	tallies := models.NewTallies()

	lines := newLineReader(r)

	lastClientID := ""
	for {
		raw, truncated, err := lines.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			metricLinesProcessedTotal.WithLabelValues(outcomeReadError).Inc()
			return nil, fmt.Errorf("%w: after line %d: %w", ErrInputReadFailed, tallies.Stats.LinesRead, err)
		}
		tallies.Stats.LinesRead++

		line := string(raw)
		fields := a.extractor.Extract(line, lastClientID)
		lastClientID = fields.LastClientID

		if truncated {
			tallies.Stats.TruncatedLines++
			if fields.HasEndpoint() && strings.HasSuffix(line, fields.Endpoint) {
				fields.Endpoint = ""
			}
			logger.Warn().
				Int64(loggers.FieldLineNumber, tallies.Stats.LinesRead).
				Int("kept_bytes", maxLineBytes).
				Msg("line too long, only its prefix was used")
		}

		if !fold(tallies, fields) {
			logger.Warn().
				Int64(loggers.FieldLineNumber, tallies.Stats.LinesRead).
				Msg("auth failure before any client id, not attributed")
		}
	}

	recordLineMetrics(tallies.Stats)
	logger.Debug().
		Int64("lines_read", tallies.Stats.LinesRead).
		Int("distinct_clients", tallies.Requests.Len()).
		Int("distinct_endpoints", tallies.Endpoints.Len()).
		Msg("finished aggregating log stream")

	return tallies, nil
}

// fold applies one line's fields to the tallies. It returns false when the line
// carried a failure signal that could not be attributed to any client.
func fold(tallies *models.Tallies, fields models.LineFields) bool {
	stats := &tallies.Stats
	contributed := false

	if fields.HasClient() {
		tallies.Requests.Increment(fields.ClientID)
		stats.LinesWithClient++
		contributed = true
	}
	if fields.HasEndpoint() {
		tallies.Endpoints.Increment(fields.Endpoint)
		stats.LinesWithEndpoint++
		contributed = true
	}

	attributed := true
	if fields.AuthFailure {
		stats.FailureLines++
		if fields.LastClientID != "" {
			tallies.Failures.Increment(fields.LastClientID)
			contributed = true
		} else {
			stats.UnattributedFailures++
			attributed = false
		}
	}

	if !contributed {
		stats.SkippedLines++
	}
	return attributed
}
