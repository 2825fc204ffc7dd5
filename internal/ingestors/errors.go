package ingestors

import (
	"fmt"

	"net-profiler/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed     = "ING_1000"
	codeTraceAlreadyUploaded = "ING_1001"

	codeInternalTraceStoreFailed        = "ING_9000"
	codeInternalTraceCatalogFailed      = "ING_9001"
	codeInternalTraceEventPublishFailed = "ING_9002"
)

func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

func errTraceAlreadyUploaded(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeTraceAlreadyUploaded, "trace already uploaded", cause)
}

func errInternalTraceStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTraceStoreFailed, fmt.Errorf("traceStoreFailed: %w", cause))
}

func errInternalTraceCatalogFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTraceCatalogFailed, fmt.Errorf("traceCatalogFailed: %w", cause))
}

func errInternalTraceEventPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalTraceEventPublishFailed, fmt.Errorf("traceEventPublishFailed: %w", cause))
}
