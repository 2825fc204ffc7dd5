package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration     = "duration"
	FieldBytesWritten = "bytes_written"
	FieldRequestID    = "request_id"
	FieldErrorStack   = "error_stack"
	FieldErrorCode    = "error_code"

	FieldPartitionId = "partition_id"

	FieldTraceID      = "trace_id"
	FieldTokenCount   = "token_count"
	FieldNameCount    = "name_count"
	FieldUploader     = "uploader"
	FieldQuery        = "query"
	FieldFrameCount   = "frame_count"
	FieldExemptSocket = "exempt_socket"
)
