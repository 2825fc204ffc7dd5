package ulid

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string, used for request and event correlation.
var NewULID = func() string {
	return ulid.Make().String()
}

// NewTraceID generates a ULID whose timestamp is the upload time, so generated trace IDs sort
// in upload order.
var NewTraceID = func(uploadedAt time.Time) string {
	return ulid.MustNew(ulid.Timestamp(uploadedAt), ulid.DefaultEntropy()).String()
}
