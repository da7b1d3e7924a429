package response

const (
	// DefaultErrorMessage is returned for failures that have no mapped message.
	DefaultErrorMessage = "Internal server error"

	ContentTypeCSV = "text/csv; charset=utf-8"
)
