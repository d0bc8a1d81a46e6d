package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"access-log-analyzer/internal/analyzers"
	"access-log-analyzer/internal/models"

	"github.com/go-chi/chi/v5"
)

const (
	paramAnalysisID = "analysisID"
	defaultSource   = "upload"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type submitAnalysisHandler struct {
	analysisService  analyzers.AnalysisService
	defaultThreshold int
}

func NewSubmitAnalysisHandler(analysisService analyzers.AnalysisService, defaultThreshold int) AppHttpHandler {
	return &submitAnalysisHandler{
		analysisService:  analysisService,
		defaultThreshold: defaultThreshold,
	}
}

// Handle processes POST /analyses. The body is raw access log text.
func (h *submitAnalysisHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	threshold := h.defaultThreshold
	if raw := failedLoginThreshold(r); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return errInvalidThresholdHeader(err)
		}
		threshold = parsed
	}

	source := logSource(r)
	if source == "" {
		source = defaultSource
	}

	report, err := h.analysisService.Submit(r.Context(), source, r.Body, threshold)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errBodyTooLarge(err)
		}
		return err
	}

	w.Header().Set(headerLocation, "/analyses/"+report.AnalysisID)
	return writeJSON(w, http.StatusCreated, report)
}

type getAnalysisHandler struct {
	analysisService analyzers.AnalysisService
}

func NewGetAnalysisHandler(analysisService analyzers.AnalysisService) AppHttpHandler {
	return &getAnalysisHandler{analysisService: analysisService}
}

// Handle processes GET /analyses/{analysisID}.
func (h *getAnalysisHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.analysisService.GetReport(r.Context(), chi.URLParam(r, paramAnalysisID))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, report *models.Report) error {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(report)
}
