package samples

import "access-log-analyzer/internal/shared/svcerrors"

const errCodeBootstrapFailed = "SMP_9000"

func errBootstrapFailed(cause error) error {
	return svcerrors.NewInternalError(errCodeBootstrapFailed, cause)
}
