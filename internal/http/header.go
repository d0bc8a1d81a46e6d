package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID            = "x-request-id"
	headerContentType          = "content-type"
	headerLocation             = "location"
	headerFailedLoginThreshold = "x-failed-login-threshold"
	headerSource               = "x-log-source"
)

const contentTypeJSON = "application/json"

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// failedLoginThreshold returns the raw threshold header, "" when absent.
func failedLoginThreshold(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerFailedLoginThreshold))
}

func logSource(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerSource))
}
