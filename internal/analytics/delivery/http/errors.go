package http

import (
	"errors"

	"social-analytics-srv/internal/analytics"
	pkgErrors "social-analytics-srv/pkg/errors"
)

var (
	errInvalidDateRange = pkgErrors.NewHTTPError(
		400, "startDate must not be after endDate",
	)
	errInvalidGroupBy = pkgErrors.NewHTTPError(
		400, "Invalid groupBy (expected sentiment, source or topic)",
	)
	errInvalidLimit = pkgErrors.NewHTTPError(
		400, "Invalid limit",
	)
	errInvalidQuery = pkgErrors.NewHTTPError(
		400, "Invalid query parameters",
	)
	errExportFailed = pkgErrors.NewHTTPError(
		500, "Export failed",
	)

	// Per-endpoint failures
	errOverviewFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch overview stats",
	)
	errPostsFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch posts",
	)
	errSentimentFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch sentiment distribution",
	)
	errTopicsFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch topic distribution",
	)
	errInfluencersFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch influencers",
	)
	errViralityFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch virality signals",
	)
	errTimelineFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch timeline",
	)
	errKeywordsFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch keyword frequency",
	)
	errFilterOptionsFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch filter options",
	)
)

// mapError translates a usecase error; anything unrecognised becomes fallback.
func (h *handler) mapError(err error, fallback *pkgErrors.HTTPError) error {
	switch {
	case errors.Is(err, analytics.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, analytics.ErrInvalidGroupBy):
		return errInvalidGroupBy
	case errors.Is(err, analytics.ErrInvalidLimit):
		return errInvalidLimit
	case errors.Is(err, analytics.ErrExportFailed):
		return errExportFailed
	default:
		return fallback
	}
}
