package analytics

import "errors"

// Domain errors
var (
	// ErrInvalidDateRange - startDate is after endDate
	ErrInvalidDateRange = errors.New("analytics: startDate is after endDate")

	// ErrInvalidGroupBy - groupBy is not one of sentiment, source, topic
	ErrInvalidGroupBy = errors.New("analytics: invalid groupBy")

	// ErrInvalidLimit - limit or skip out of range
	ErrInvalidLimit = errors.New("analytics: invalid limit")

	// ErrQueryFailed - the database query failed
	ErrQueryFailed = errors.New("analytics: query failed")

	// ErrExportFailed - export query or formatting failed
	ErrExportFailed = errors.New("analytics: export failed")
)
