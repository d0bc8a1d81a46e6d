package http

import (
	"access-log-analyzer/internal/shared/svcerrors"
)

const (
	codeInvalidThresholdHeader = "HTTP_1000"
	codeBodyTooLarge           = "HTTP_1001"
)

func errInvalidThresholdHeader(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidThresholdHeader, headerFailedLoginThreshold+" must be an integer", cause)
}

func errBodyTooLarge(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeBodyTooLarge, "request body too large", cause)
}
