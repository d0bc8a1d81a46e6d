package analyzers

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"access-log-analyzer/internal/aggregators"
	"access-log-analyzer/internal/insights"
	"access-log-analyzer/internal/models"
	"access-log-analyzer/internal/shared/loggers"
	"access-log-analyzer/internal/shared/metrics"
	"access-log-analyzer/internal/shared/ulid"
	"access-log-analyzer/internal/shared/validators"
	"access-log-analyzer/internal/stores"
)

const (
	operationAnalyzeFile = "analyze_file"
	operationSubmit      = "submit"
)

// AnalysisService runs one full pass over an access log and derives its report.
// Every call owns fresh tallies; nothing is shared between runs.
//
//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// AnalyzeFile analyzes the log at path. The file is opened once and closed on every exit.
	AnalyzeFile(ctx context.Context, path string, threshold int) (*models.Report, error)
	// Submit analyzes r, stores the report under a new analysis id and returns it.
	Submit(ctx context.Context, source string, r io.Reader, threshold int) (*models.Report, error)
	// GetReport returns a report stored by Submit.
	GetReport(ctx context.Context, analysisID string) (*models.Report, error)
}

type analysisService struct {
	aggregator  aggregators.TallyAggregator
	reportStore stores.AnalysisReportStore
	validate    *validators.Validate
	now         func() time.Time
}

func NewAnalysisService(aggregator aggregators.TallyAggregator, reportStore stores.AnalysisReportStore, validate *validators.Validate) AnalysisService {
	return &analysisService{
		aggregator:  aggregator,
		reportStore: reportStore,
		validate:    validate,
		now:         time.Now,
	}
}

func (s *analysisService) AnalyzeFile(ctx context.Context, path string, threshold int) (*models.Report, error) {
	report, err := s.analyzeFile(ctx, path, threshold)
	recordAnalysis(operationAnalyzeFile, err)
	return report, err
}

func (s *analysisService) analyzeFile(ctx context.Context, path string, threshold int) (*models.Report, error) {
	if err := s.validateThreshold(threshold); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errInputUnavailable(err)
	}
	defer file.Close()

	ctx = loggers.Ctx(ctx).With().Str(loggers.FieldInputPath, path).Logger().WithContext(ctx)
	return s.analyze(ctx, path, file, threshold)
}

func (s *analysisService) Submit(ctx context.Context, source string, r io.Reader, threshold int) (*models.Report, error) {
	report, err := s.submit(ctx, source, r, threshold)
	recordAnalysis(operationSubmit, err)
	return report, err
}

func (s *analysisService) submit(ctx context.Context, source string, r io.Reader, threshold int) (*models.Report, error) {
	if err := s.validateThreshold(threshold); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errInputUnavailable(errors.New("empty request body"))
	}

	analysisID := ulid.NewULID()
	ctx = loggers.Ctx(ctx).With().Str(loggers.FieldAnalysisID, analysisID).Logger().WithContext(ctx)

	report, err := s.analyze(ctx, source, r, threshold)
	if err != nil {
		return nil, err
	}
	report.AnalysisID = analysisID

	if err := s.reportStore.Create(ctx, report); err != nil {
		return nil, errInternalReportStoreFailed(err)
	}

	loggers.Ctx(ctx).Info().Msg("stored analysis report")
	return report, nil
}

func (s *analysisService) GetReport(ctx context.Context, analysisID string) (*models.Report, error) {
	if err := s.validate.Var(analysisID, "required,"+validators.TagULID); err != nil {
		return nil, errInvalidAnalysisID(err)
	}

	report, err := s.reportStore.Get(ctx, analysisID)
	if err != nil {
		if errors.Is(err, stores.ErrAnalysisReportNotFound) {
			return nil, errAnalysisNotFound(err)
		}
		return nil, errInternalReportStoreFailed(err)
	}
	return report, nil
}

func (s *analysisService) analyze(ctx context.Context, source string, r io.Reader, threshold int) (*models.Report, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Int(loggers.FieldThreshold, threshold).Msg("started analysis")

	startedAt := s.now()
	tallies, err := s.aggregator.Aggregate(ctx, r)
	if err != nil {
		return nil, errInputUnavailable(err)
	}

	report := insights.BuildReport(tallies, threshold, s.now())
	report.Source = source

	metricAnalysisDurationSeconds.Observe(s.now().Sub(startedAt).Seconds())
	logger.Info().
		Int64("lines_read", report.Stats.LinesRead).
		Int("clients", len(report.RequestsByClient)).
		Int("suspicious_clients", len(report.SuspiciousClients)).
		Msg("finished analysis")
	return report, nil
}

func (s *analysisService) validateThreshold(threshold int) error {
	if err := s.validate.Var(threshold, "min=0"); err != nil {
		return errInvalidThreshold(err)
	}
	return nil
}

func recordAnalysis(operation string, err error) {
	code := metrics.ValueNoError
	if err != nil {
		code = errorCode(err)
	}
	metricAnalysesTotal.WithLabelValues(operation, code).Inc()
}
