package analyzers

import (
	"fmt"

	"access-log-analyzer/internal/shared/svcerrors"
)

// AnalysisService errors
const (
	codeInvalidThreshold  = "ANL_1000"
	codeInvalidAnalysisID = "ANL_1001"
	codeAnalysisNotFound  = "ANL_1002"

	codeInputUnavailable          = "ANL_9000"
	codeInternalReportStoreFailed = "ANL_9001"
)

func errInvalidThreshold(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidThreshold, "failed login threshold must be >= 0", cause)
}

func errInvalidAnalysisID(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidAnalysisID, "analysis id must be a ULID", cause)
}

func errAnalysisNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeAnalysisNotFound, "analysis not found", cause)
}

// errInputUnavailable covers an input that cannot be opened or read. No partial report is produced.
func errInputUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInputUnavailableError(codeInputUnavailable, "log input unavailable", cause)
}

func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

func errorCode(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return svcerrors.NewInternalErrorUndefined(err).Code
}
