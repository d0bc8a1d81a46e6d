// Package insights derives the report views from a finished set of tallies.
// All functions are pure and leave the tallies untouched.
package insights

import (
	"errors"
	"sort"
	"time"

	"access-log-analyzer/internal/models"
)

// ErrNoData is returned for a view that needs at least one entry when the tally is empty.
var ErrNoData = errors.New("no data")

// RankRequests returns every client sorted by request count, highest first.
// Clients with equal counts keep the order in which they first appeared.
func RankRequests(requests *models.Tally) []models.KeyCount {
	ranked := requests.Entries()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// MostAccessedEndpoint returns the endpoint with the highest count. On a tie the endpoint seen
// first wins.
func MostAccessedEndpoint(endpoints *models.Tally) (models.KeyCount, error) {
	entries := endpoints.Entries()
	if len(entries) == 0 {
		return models.KeyCount{}, ErrNoData
	}

	top := entries[0]
	for _, entry := range entries[1:] {
		if entry.Count > top.Count {
			top = entry
		}
	}
	return top, nil
}

// SuspiciousClients returns the clients whose failure count is strictly greater than threshold,
// in the order they first failed.
func SuspiciousClients(failures *models.Tally, threshold int) []models.KeyCount {
	suspicious := make([]models.KeyCount, 0)
	for _, entry := range failures.Entries() {
		if entry.Count > int64(threshold) {
			suspicious = append(suspicious, entry)
		}
	}
	return suspicious
}

// BuildReport assembles all views. An empty endpoint tally leaves TopEndpoint nil instead of
// failing the whole report.
func BuildReport(tallies *models.Tallies, threshold int, generatedAt time.Time) *models.Report {
	report := &models.Report{
		GeneratedAt:          generatedAt.UTC(),
		FailedLoginThreshold: threshold,
		RequestsByClient:     RankRequests(tallies.Requests),
		SuspiciousClients:    SuspiciousClients(tallies.Failures, threshold),
		Stats:                tallies.Stats,
	}
	if top, err := MostAccessedEndpoint(tallies.Endpoints); err == nil {
		report.TopEndpoint = &top
	}
	return report
}
