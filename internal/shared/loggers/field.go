package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldSnapshotID  = "snapshot_id"
	FieldSource      = "source"
	FieldSourceKey   = "source_key"
	FieldLineNumber  = "line_number"
	FieldDropReason  = "drop_reason"
	FieldGranularity = "granularity"
	FieldDay         = "day"
)
