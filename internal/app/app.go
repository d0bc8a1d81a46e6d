package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"access-log-analyzer/internal/aggregators"
	"access-log-analyzer/internal/analyzers"
	"access-log-analyzer/internal/extractors"
	internalhttp "access-log-analyzer/internal/http"
	"access-log-analyzer/internal/reports"
	"access-log-analyzer/internal/samples"
	"access-log-analyzer/internal/shared/configs"
	"access-log-analyzer/internal/shared/filestorages"
	"access-log-analyzer/internal/shared/loggers"
	"access-log-analyzer/internal/shared/validators"
	"access-log-analyzer/internal/stores"
)

const appName = "access-log-analyzer"

// App holds all application dependencies. One App serves either a single analyze run or the
// analysis API.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	bootstrapper    samples.Bootstrapper
	analysisService analyzers.AnalysisService
	renderer        reports.ConsoleRenderer
	csvWriter       reports.CSVReportWriter
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWithLogger(config, appLogger)
}

// NewWithLogger is New with a caller supplied base logger.
func NewWithLogger(config *configs.Config, appLogger loggers.Logger) (*App, error) {
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	fileStorage, err := filestorages.NewFileStorage(config.Report.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	aggregator := aggregators.NewTallyAggregator(extractors.NewLineExtractor())
	reportStore := stores.NewAnalysisReportStore(fileStorage)
	analysisService := analyzers.NewAnalysisService(aggregator, reportStore, validators.New())

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(analysisService, httpLogger, internalhttp.RouterOptions{
		MaxBodyBytes:     int64(config.Server.MaxBodyBytes),
		DefaultThreshold: config.Analysis.FailedLoginThreshold,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		server:          server,
		bootstrapper:    samples.NewBootstrapper(),
		analysisService: analysisService,
		renderer:        reports.NewConsoleRenderer(),
		csvWriter:       reports.NewCSVReportWriter(fileStorage, config.Report.CSVFile),
	}, nil
}

// Analyze runs one analysis of the configured input: bootstrap, aggregate, print the report to
// out, then persist the CSV. A persistence failure is returned after the report was printed.
func (app *App) Analyze(ctx context.Context, out io.Writer) error {
	logger := app.appLogger.With().Str(loggers.FieldComponent, "analyze").Logger()
	ctx = logger.WithContext(ctx)

	inputPath := app.config.Input.Path
	if app.config.Input.Bootstrap {
		resolved, err := app.bootstrapper.Resolve(ctx, inputPath, app.config.Input.FallbackPath)
		if err != nil {
			return err
		}
		inputPath = resolved
	}

	report, err := app.analysisService.AnalyzeFile(ctx, inputPath, app.config.Analysis.FailedLoginThreshold)
	if err != nil {
		logger.Error().Err(err).Str(loggers.FieldInputPath, inputPath).Msg("analysis failed")
		return err
	}

	if err := app.renderer.Render(out, report, app.config.Report.Format); err != nil {
		return err
	}

	if _, err := app.csvWriter.Write(ctx, report); err != nil {
		logger.Error().Err(err).Str(loggers.FieldReportKey, app.config.Report.CSVFile).Msg("failed to persist report")
		return err
	}
	return nil
}

// WriteSample writes the bundled sample log to path.
func (app *App) WriteSample(ctx context.Context, path string) error {
	return app.bootstrapper.Write(app.appLogger.WithContext(ctx), path)
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s API on port %d (log_level=%s, report_root_dir=%s, failed_login_threshold=%d)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Report.RootDir,
			app.config.Analysis.FailedLoginThreshold)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
