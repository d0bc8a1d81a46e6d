package reports

import (
	"fmt"

	"access-log-analyzer/internal/shared/svcerrors"
)

const (
	codePersistFailed = "REP_9000"
	codeRenderFailed  = "REP_9001"
)

func errPersistFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codePersistFailed, fmt.Errorf("reportPersistFailed: %w", cause))
}

func errRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeRenderFailed, fmt.Errorf("reportRenderFailed: %w", cause))
}
