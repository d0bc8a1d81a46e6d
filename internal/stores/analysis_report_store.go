package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"access-log-analyzer/internal/models"
	"access-log-analyzer/internal/shared/filestorages"
)

var (
	ErrAnalysisReportNotFound = errors.New("analysis report not found")
	ErrAnalysisReportExists   = errors.New("analysis report already exists")
)

// AnalysisReportStore keeps one JSON document per analysis, keyed by analysis id.
// Reports are immutable once written.
//
//go:generate mockgen -source=analysis_report_store.go -destination=./mocks/analysis_report_store_mock.go -package=mocks
type AnalysisReportStore interface {
	Create(ctx context.Context, report *models.Report) error
	Get(ctx context.Context, analysisID string) (*models.Report, error)
}

type analysisReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewAnalysisReportStore(fileStorage filestorages.FileStorage) AnalysisReportStore {
	return &analysisReportStore{fileStorage: fileStorage, dir: "analyses"}
}

func (s *analysisReportStore) Create(ctx context.Context, report *models.Report) error {
	if report.AnalysisID == "" {
		return errors.New("analysis report has no id")
	}
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis report: %w", err)
	}
	_, err = s.fileStorage.Put(ctx, s.getKey(report.AnalysisID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrAnalysisReportExists
		}
		return fmt.Errorf("failed to put analysis report: %w", err)
	}
	return nil
}

func (s *analysisReportStore) Get(ctx context.Context, analysisID string) (*models.Report, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(analysisID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrAnalysisReportNotFound
		}
		return nil, fmt.Errorf("failed to get analysis report: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis report: %w", err)
	}
	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis report: %w", err)
	}
	return &report, nil
}

func (s *analysisReportStore) getKey(analysisID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, analysisID)
}
