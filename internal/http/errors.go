package http

import (
	"fmt"

	"net-profiler/internal/shared/svcerrors"
)

const (
	codeInvalidQueryParam = "HTTP_1000"
)

func errInvalidQueryParam(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, fmt.Sprintf("invalid query parameter %q", name), cause)
}
