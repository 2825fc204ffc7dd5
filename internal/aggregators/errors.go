package aggregators

import (
	"fmt"

	"net-profiler/internal/shared/svcerrors"
)

const (
	codeInvalidQuery    = "PRF_1000"
	codeTraceNotFound   = "PRF_1001"
	codeSummaryNotReady = "PRF_1002"

	codeInternalTraceStoreFailed   = "PRF_9000"
	codeInternalCorruptTrace       = "PRF_9001"
	codeInternalSummaryStoreFailed = "PRF_9002"
	codeInternalCatalogFailed      = "PRF_9003"
)

func errInvalidQuery(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQuery, msg, cause)
}

func errTraceNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeTraceNotFound, "trace not found", cause)
}

func errSummaryNotReady(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSummaryNotReady, "trace summary not ready yet", cause)
}

func errInternalTraceStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTraceStoreFailed, fmt.Errorf("traceStoreFailed: %w", cause))
}

// errInternalCorruptTrace is returned when a stored trace cannot be summarized, e.g. an
// out-of-range bunch channel.
func errInternalCorruptTrace(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCorruptTrace, fmt.Errorf("corruptTrace: %w", cause))
}

func errInternalSummaryStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryStoreFailed, fmt.Errorf("summaryStoreFailed: %w", cause))
}

func errInternalCatalogFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCatalogFailed, fmt.Errorf("traceCatalogFailed: %w", cause))
}
