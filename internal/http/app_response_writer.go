package http

import (
	"net/http"

	"access-log-analyzer/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the status and the service error of a response so the
// metrics and completion log middlewares can label it.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// responseOutcome returns the status (200 when nothing was written) and error code of w.
// Writers that were not wrapped by mwAppResponseWriter report 200 and no code.
func responseOutcome(w http.ResponseWriter) (int, string) {
	appWriter, ok := w.(*appResponseWriter)
	if !ok {
		return http.StatusOK, ""
	}
	status := appWriter.Status()
	if status == 0 {
		status = http.StatusOK
	}
	return status, appWriter.ErrorCode()
}
