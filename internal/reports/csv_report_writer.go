package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"access-log-analyzer/internal/models"
	"access-log-analyzer/internal/shared/filestorages"
	"access-log-analyzer/internal/shared/loggers"
	"access-log-analyzer/internal/shared/metrics"
)

const (
	SectionRequests   = "Requests per IP"
	SectionEndpoint   = "Most Accessed Endpoint"
	SectionSuspicious = "Suspicious Activity"
)

// CSVReportWriter persists the three report views as one CSV file with three labelled sections,
// each followed by its column header and rows, separated by a blank line:
//
//	Requests per IP
//	IP Address,Request Count
//	203.0.113.5,11
//
//	Most Accessed Endpoint
//	Endpoint,Access Count
//	/login,11
//
//	Suspicious Activity
//	IP Address,Failed Login Count
//	203.0.113.5,11
//
// The file lives at a fixed key and is replaced on every run.
//
//go:generate mockgen -source=csv_report_writer.go -destination=./mocks/csv_report_writer_mock.go -package=mocks
type CSVReportWriter interface {
	Write(ctx context.Context, report *models.Report) (*filestorages.PutResult, error)
}

type csvReportWriter struct {
	fileStorage filestorages.FileStorage
	key         string
}

func NewCSVReportWriter(fileStorage filestorages.FileStorage, key string) CSVReportWriter {
	return &csvReportWriter{fileStorage: fileStorage, key: key}
}

func (c *csvReportWriter) Write(ctx context.Context, report *models.Report) (*filestorages.PutResult, error) {
	data, err := EncodeCSV(report)
	if err != nil {
		metricReportsPersistedTotal.WithLabelValues(codeRenderFailed).Inc()
		return nil, errRenderFailed(err)
	}

	result, err := c.fileStorage.Put(ctx, c.key, bytes.NewReader(data), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		metricReportsPersistedTotal.WithLabelValues(codePersistFailed).Inc()
		return nil, errPersistFailed(err)
	}

	metricReportsPersistedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	loggers.Ctx(ctx).Info().
		Str(loggers.FieldReportKey, result.FileKey).
		Str("location", result.Location).
		Msg("persisted csv report")
	return result, nil
}

// EncodeCSV lays the report out in the sectioned CSV format. A missing top endpoint leaves its
// section without rows.
func EncodeCSV(report *models.Report) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	records := [][]string{{SectionRequests}, {"IP Address", "Request Count"}}
	for _, entry := range report.RequestsByClient {
		records = append(records, countRecord(entry))
	}

	records = append(records, []string{}, []string{SectionEndpoint}, []string{"Endpoint", "Access Count"})
	if report.TopEndpoint != nil {
		records = append(records, countRecord(*report.TopEndpoint))
	}

	records = append(records, []string{}, []string{SectionSuspicious}, []string{"IP Address", "Failed Login Count"})
	for _, entry := range report.SuspiciousClients {
		records = append(records, countRecord(entry))
	}

	if err := writer.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func countRecord(entry models.KeyCount) []string {
	return []string{entry.Key, strconv.FormatInt(entry.Count, 10)}
}
