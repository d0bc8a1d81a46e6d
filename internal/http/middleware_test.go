package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"access-log-analyzer/internal/shared/loggers"
	"access-log-analyzer/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMwRequestID_GeneratesIDWhenNotProvided(t *testing.T) {
	t.Parallel()

	logger := loggers.Nop()
	mw := mwRequestID(logger)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		assert.NotEmpty(t, requestID, "request ID should be generated")

		assert.Len(t, requestID, 26, "request ID should be a valid ULID")

		ctxLogger := loggers.Ctx(r.Context())
		assert.NotNil(t, ctxLogger, "logger should be in context")

		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMwRequestID_UsesProvidedID(t *testing.T) {
	t.Parallel()

	logger := loggers.Nop()
	mw := mwRequestID(logger)

	providedID := "custom-request-id-12345"
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		assert.Equal(t, providedID, requestID, "should use provided request ID")

		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(headerRequestID, providedID)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, providedID, rr.Header().Get(headerRequestID), "request ID should be echoed")
}

func TestMwRecoverer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantLog    string
	}{
		{
			name:       "string panic",
			handler:    func(w http.ResponseWriter, r *http.Request) { panic("critical error occurred") },
			wantStatus: http.StatusInternalServerError,
			wantLog:    "http panic recovered: critical error occurred",
		},
		{
			name:       "error panic",
			handler:    func(w http.ResponseWriter, r *http.Request) { panic(assert.AnError) },
			wantStatus: http.StatusInternalServerError,
			wantLog:    assert.AnError.Error(),
		},
		{
			name: "no panic",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("success"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			logger, err := loggers.NewWithWriter("debug", &logs)
			require.NoError(t, err)
			handler := mwRequestID(logger)(mwRecoverer(tt.handler))

			req := httptest.NewRequest(http.MethodGet, "/analyses", nil)
			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() { handler.ServeHTTP(rr, req) })

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "success", rr.Body.String())
				return
			}

			assert.Contains(t, logs.String(), tt.wantLog)
			assert.Equal(t, contentTypeJSON, rr.Header().Get(headerContentType))

			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.NotEmpty(t, errorResponse.RequestID)
			assert.Equal(t, "internal", errorResponse.ErrorCategory)
			assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
			assert.Equal(t, "internal server error", errorResponse.ErrorDescription)
		})
	}
}

func TestSetupMiddleware_Integration(t *testing.T) {
	t.Parallel()

	logger := loggers.Nop()
	router := chi.NewRouter()
	setupMiddleware(router, logger)

	router.Get("/test-id", func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		assert.NotEmpty(t, requestID, "request ID should be set")
		w.WriteHeader(http.StatusOK)
	})

	router.Get("/test-panic", func(w http.ResponseWriter, r *http.Request) {
		panic("integration test panic")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-id", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/test-panic", nil)
	rr = httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var errorResponse ErrorResponse
	err := json.Unmarshal(rr.Body.Bytes(), &errorResponse)
	require.NoError(t, err)
	assert.NotEmpty(t, errorResponse.RequestID)
	assert.Equal(t, "internal", errorResponse.ErrorCategory)
	assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
}

func TestMwBodyLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		maxBytes int64
		body     string
		wantErr  bool
	}{
		{name: "within limit", maxBytes: 16, body: "0123456789"},
		{name: "exactly at limit", maxBytes: 10, body: "0123456789"},
		{name: "over limit", maxBytes: 4, body: "0123456789", wantErr: true},
		{name: "disabled", maxBytes: 0, body: strings.Repeat("x", 1<<16)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var readErr error
			handler := mwBodyLimit(tt.maxBytes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, readErr = io.ReadAll(r.Body)
			}))

			req := httptest.NewRequest(http.MethodPost, "/analyses", strings.NewReader(tt.body))
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantErr {
				var maxBytesErr *http.MaxBytesError
				assert.ErrorAs(t, readErr, &maxBytesErr)
			} else {
				assert.NoError(t, readErr)
			}
		})
	}
}

func TestMwRequestCompletionLog_IncludesErrorCode(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger, err := loggers.NewWithWriter("info", &logs)
	require.NoError(t, err)

	router := chi.NewRouter()
	setupMiddleware(router, logger)
	router.Get("/analyses/{analysisID}", errorHandlingAdapter(&testHandler{
		handleFunc: func(w http.ResponseWriter, r *http.Request) error {
			return svcerrors.NewNotFoundError("ANL_1002", "analysis not found", nil)
		},
	}))

	req := httptest.NewRequest(http.MethodGet, "/analyses/01ARZ3NDEKTSV4RRFFQ69G5FAV", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, logs.String(), `"message":"request completed"`)
	assert.Contains(t, logs.String(), `"error_code":"ANL_1002"`)
	assert.Contains(t, logs.String(), `"http_status":404`)
}
