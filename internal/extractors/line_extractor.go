package extractors

import (
	"regexp"
	"strings"

	"access-log-analyzer/internal/models"
)

// Failure markers. The check is a plain containment test on the whole line, not a parse
// of the status field, so a 401 anywhere plus the phrase anywhere counts.
const (
	MarkerUnauthorized       = "401"
	MarkerInvalidCredentials = "Invalid credentials"
)

var (
	// four dot-separated digit groups at the very start of the line
	clientIDPattern = regexp.MustCompile(`^(\d+\.\d+\.\d+\.\d+)`)
	// `"METHOD /path` inside the quoted request field
	endpointPattern = regexp.MustCompile(`"[A-Z]+ (/[^\s"]*)`)
)

// LineExtractor pulls the client id, endpoint and auth-failure signal out of one access log line.
//
// Extraction is best effort and per field: a line may yield any subset, including nothing.
//
// Failure attribution is stateful across lines. The caller threads the last known client id
// through successive calls: it passes the LastClientID returned for the previous line and gets
// back the updated value. A line with its own client id replaces it; a line without one keeps
// the previous value, so its failure is charged to whichever client appeared last.
//
//go:generate mockgen -source=line_extractor.go -destination=./mocks/line_extractor_mock.go -package=mocks
type LineExtractor interface {
	Extract(line string, lastClientID string) models.LineFields
}

type lineExtractor struct{}

func NewLineExtractor() LineExtractor {
	return &lineExtractor{}
}

func (e *lineExtractor) Extract(line string, lastClientID string) models.LineFields {
	fields := models.LineFields{
		ClientID:     extractClientID(line),
		Endpoint:     extractEndpoint(line),
		AuthFailure:  isAuthFailure(line),
		LastClientID: lastClientID,
	}
	if fields.HasClient() {
		fields.LastClientID = fields.ClientID
	}
	return fields
}

func extractClientID(line string) string {
	m := clientIDPattern.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

func extractEndpoint(line string) string {
	m := endpointPattern.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

func isAuthFailure(line string) bool {
	return strings.Contains(line, MarkerUnauthorized) && strings.Contains(line, MarkerInvalidCredentials)
}
