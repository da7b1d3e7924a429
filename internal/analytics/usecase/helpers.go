package usecase

import (
	"fmt"
	"math"

	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/model"
)

func validateFilter(f model.PostFilter) error {
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return analytics.ErrInvalidDateRange
	}
	return nil
}

// resolveLimit applies def when limit is unset and rejects values outside [1, max].
func resolveLimit(limit, def, max int) (int, error) {
	if limit == 0 {
		return def, nil
	}
	if limit < 0 || limit > max {
		return 0, analytics.ErrInvalidLimit
	}
	return limit, nil
}

func queryFailed(err error) error {
	return fmt.Errorf("%w: %v", analytics.ErrQueryFailed, err)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
