package insights

import (
	"context"
	"strings"
	"testing"
	"time"

	"access-log-analyzer/internal/aggregators"
	"access-log-analyzer/internal/extractors"
	"access-log-analyzer/internal/models"
	"access-log-analyzer/internal/samples"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tallyOf(keys ...string) *models.Tally {
	tally := models.NewTally()
	for _, key := range keys {
		tally.Increment(key)
	}
	return tally
}

func sampleTallies(t *testing.T) *models.Tallies {
	t.Helper()

	aggregator := aggregators.NewTallyAggregator(extractors.NewLineExtractor())
	tallies, err := aggregator.Aggregate(context.Background(), strings.NewReader(samples.Content))
	require.NoError(t, err)
	return tallies
}

func TestRankRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tally    *models.Tally
		expected []models.KeyCount
	}{
		{
			name:     "empty",
			tally:    models.NewTally(),
			expected: []models.KeyCount{},
		},
		{
			name:  "descending by count",
			tally: tallyOf("a", "b", "b", "c", "c", "c"),
			expected: []models.KeyCount{
				{Key: "c", Count: 3},
				{Key: "b", Count: 2},
				{Key: "a", Count: 1},
			},
		},
		{
			name:  "ties keep first appearance",
			tally: tallyOf("x", "y", "z", "y", "x", "w", "w", "w"),
			expected: []models.KeyCount{
				{Key: "w", Count: 3},
				{Key: "x", Count: 2},
				{Key: "y", Count: 2},
				{Key: "z", Count: 1},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, RankRequests(tt.tally))
		})
	}
}

func TestRankRequests_SortedAndStableAcrossCalls(t *testing.T) {
	t.Parallel()

	tallies := sampleTallies(t)

	first := RankRequests(tallies.Requests)
	for i := 0; i+1 < len(first); i++ {
		assert.GreaterOrEqual(t, first[i].Count, first[i+1].Count)
	}
	assert.Equal(t, first, RankRequests(tallies.Requests))
	assert.Equal(t, []models.KeyCount{
		{Key: "203.0.113.5", Count: 11},
		{Key: "192.168.1.10", Count: 3},
		{Key: "10.0.0.2", Count: 3},
		{Key: "172.16.0.3", Count: 2},
	}, first)
}

func TestMostAccessedEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tally    *models.Tally
		expected models.KeyCount
		err      error
	}{
		{
			name:  "empty tally",
			tally: models.NewTally(),
			err:   ErrNoData,
		},
		{
			name:     "single endpoint",
			tally:    tallyOf("/home"),
			expected: models.KeyCount{Key: "/home", Count: 1},
		},
		{
			name:     "clear maximum",
			tally:    tallyOf("/home", "/login", "/login"),
			expected: models.KeyCount{Key: "/login", Count: 2},
		},
		{
			name:     "tie goes to first seen",
			tally:    tallyOf("/about", "/home", "/home", "/about"),
			expected: models.KeyCount{Key: "/about", Count: 2},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			top, err := MostAccessedEndpoint(tt.tally)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, top)
		})
	}
}

func TestMostAccessedEndpoint_SampleLog(t *testing.T) {
	t.Parallel()

	top, err := MostAccessedEndpoint(sampleTallies(t).Endpoints)
	require.NoError(t, err)
	assert.Equal(t, models.KeyCount{Key: "/login", Count: 11}, top)
}

func TestSuspiciousClients_ThresholdBoundary(t *testing.T) {
	t.Parallel()

	failures := tallyOf()
	for i := 0; i < 5; i++ {
		failures.Increment("at-threshold")
	}
	for i := 0; i < 6; i++ {
		failures.Increment("above-threshold")
	}
	failures.Increment("below-threshold")

	assert.Equal(t, []models.KeyCount{
		{Key: "above-threshold", Count: 6},
	}, SuspiciousClients(failures, 5))
}

func TestSuspiciousClients_SampleLog(t *testing.T) {
	t.Parallel()

	tallies := sampleTallies(t)

	tests := []struct {
		name      string
		threshold int
		expected  []models.KeyCount
	}{
		{name: "default threshold", threshold: 10, expected: []models.KeyCount{{Key: "203.0.113.5", Count: 11}}},
		{name: "threshold equals count", threshold: 11, expected: []models.KeyCount{}},
		{name: "zero threshold", threshold: 0, expected: []models.KeyCount{{Key: "203.0.113.5", Count: 11}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			suspicious := SuspiciousClients(tallies.Failures, tt.threshold)
			assert.Equal(t, tt.expected, suspicious)
			for _, entry := range suspicious {
				assert.NotEqual(t, "10.0.0.2", entry.Key)
			}
		})
	}
}

func TestSuspiciousClients_SuccessfulClientNeverListed(t *testing.T) {
	t.Parallel()

	tallies := sampleTallies(t)

	_, hasRequests := tallies.Requests.Get("10.0.0.2")
	_, hasFailures := tallies.Failures.Get("10.0.0.2")
	assert.True(t, hasRequests)
	assert.False(t, hasFailures)
}

func TestBuildReport(t *testing.T) {
	t.Parallel()

	generatedAt := time.Date(2026, 10, 17, 11, 0, 0, 0, time.FixedZone("ICT", 7*3600))

	report := BuildReport(sampleTallies(t), 10, generatedAt)

	assert.Equal(t, time.Date(2026, 10, 17, 4, 0, 0, 0, time.UTC), report.GeneratedAt)
	assert.Equal(t, 10, report.FailedLoginThreshold)
	assert.Len(t, report.RequestsByClient, 4)
	require.NotNil(t, report.TopEndpoint)
	assert.Equal(t, models.KeyCount{Key: "/login", Count: 11}, *report.TopEndpoint)
	assert.Equal(t, []models.KeyCount{{Key: "203.0.113.5", Count: 11}}, report.SuspiciousClients)
	assert.Equal(t, int64(19), report.Stats.LinesRead)
}

func TestBuildReport_NoEndpoints(t *testing.T) {
	t.Parallel()

	tallies := models.NewTallies()
	tallies.Requests.Increment("10.0.0.2")

	report := BuildReport(tallies, 10, time.Now())

	assert.Nil(t, report.TopEndpoint)
	assert.Equal(t, []models.KeyCount{{Key: "10.0.0.2", Count: 1}}, report.RequestsByClient)
	assert.Empty(t, report.SuspiciousClients)
}
