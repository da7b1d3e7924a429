package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// fieldRequestID is the structured field name for request IDs.
	fieldRequestID = "request_id"
)
