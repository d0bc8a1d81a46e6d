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

	FieldAnalysisID = "analysis_id"
	FieldInputPath  = "input_path"
	FieldReportKey  = "report_key"
	FieldThreshold  = "threshold"
	FieldLineNumber = "line_number"
)
