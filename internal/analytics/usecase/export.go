package usecase

import (
	"context"
	"fmt"

	"social-analytics-srv/internal/analytics"
	"social-analytics-srv/internal/analytics/repository"
	"social-analytics-srv/pkg/metrics"

	"github.com/google/uuid"
)

func (uc *implUseCase) ExportPosts(ctx context.Context, input analytics.ExportInput) (analytics.ExportOutput, error) {
	if err := validateFilter(input.Filter); err != nil {
		return analytics.ExportOutput{}, err
	}

	// One extra row tells us whether the cap cut the result.
	posts, err := uc.repo.ExportPosts(ctx, repository.ExportPostsOptions{
		Filter: input.Filter,
		Limit:  analytics.ExportRowCap + 1,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analytics.usecase.ExportPosts: repo.ExportPosts: %v", err)
		return analytics.ExportOutput{}, fmt.Errorf("%w: %v", analytics.ErrExportFailed, err)
	}

	truncated := len(posts) > analytics.ExportRowCap
	if truncated {
		posts = posts[:analytics.ExportRowCap]
		uc.l.Warnf(ctx, "analytics.usecase.ExportPosts: result truncated to %d rows", analytics.ExportRowCap)
	}

	output := analytics.ExportOutput{
		Filename:  analytics.ExportFilename,
		Data:      FormatPostsCSV(posts),
		Rows:      len(posts),
		Truncated: truncated,
	}
	metrics.ExportRows.Observe(float64(output.Rows))

	uc.publishExportCompleted(ctx, input, output)
	return output, nil
}

// publishExportCompleted emits the audit event. Failures are logged only.
func (uc *implUseCase) publishExportCompleted(ctx context.Context, input analytics.ExportInput, output analytics.ExportOutput) {
	if uc.prod == nil {
		return
	}

	event := analytics.ExportCompletedEvent{
		ExportID:   uuid.NewString(),
		Filter:     input.Filter,
		RowCount:   output.Rows,
		Truncated:  output.Truncated,
		ExportedAt: uc.now().UTC(),
	}
	if err := uc.prod.PublishExportCompleted(ctx, event); err != nil {
		uc.l.Warnf(ctx, "analytics.usecase.ExportPosts: publish export event %s: %v", event.ExportID, err)
	}
}
