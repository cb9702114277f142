package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/pkg/ctxutil"
)

// UpdateContent edits non-status fields. Review metadata and status are
// never touched and no notification is sent.
func (s *Service) UpdateContent(ctx context.Context, input UpdateContentInput) (*domain.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.reports.GetByID(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}

	patch := domain.ReportPatch{
		Category: input.Category,
		Priority: input.Priority,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		patch.Title = &title
	}
	if input.Content != nil {
		content := strings.TrimSpace(*input.Content)
		patch.Content = &content
	}
	if input.Tags != nil {
		tags := normalizeTags(*input.Tags)
		patch.Tags = &tags
	}
	if input.Images != nil {
		images, err := s.ingestImages(ctx, *input.Images)
		if err != nil {
			return nil, err
		}
		patch.Images = &images
	}
	if loc := input.Location.toDomain(); loc != nil {
		s.enrichLocation(ctx, loc)
		patch.Location = loc
	}
	patch.UpdatedAt = s.now()

	var updated *domain.Report
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.reports.Update(txCtx, input.ID, patch); err != nil {
			return fmt.Errorf("update report: %w", err)
		}
		var getErr error
		updated, getErr = s.reports.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("reload report: %w", getErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "report content updated",
		slog.String("report_id", updated.ID),
		slog.String("admin_id", caller.ID.String()),
	)

	return updated, nil
}
