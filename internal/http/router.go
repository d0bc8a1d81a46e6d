package http

import (
	"net/http"

	"access-log-analyzer/internal/analyzers"
	"access-log-analyzer/internal/shared/loggers"
	"access-log-analyzer/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

type RouterOptions struct {
	MaxBodyBytes     int64
	DefaultThreshold int
}

// NewRouter creates and configures the HTTP router.
func NewRouter(analysisService analyzers.AnalysisService, httpLogger loggers.Logger, opts RouterOptions) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	submitAnalysisHandler := NewSubmitAnalysisHandler(analysisService, opts.DefaultThreshold)
	getAnalysisHandler := NewGetAnalysisHandler(analysisService)

	router.With(mwBodyLimit(opts.MaxBodyBytes)).Post("/analyses", errorHandlingAdapter(submitAnalysisHandler))
	router.Get("/analyses/{"+paramAnalysisID+"}", errorHandlingAdapter(getAnalysisHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
