package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/pkg/ctxutil"
)

// Transition moves a report to a new status. Any status may be targeted from
// any other. Moving into processing notifies the category's linked phone
// after the update is committed; notification failures never fail the call.
func (s *Service) Transition(ctx context.Context, input TransitionInput) (*domain.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.reports.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}

	now := s.now()
	status := input.Status
	patch := domain.ReportPatch{Status: &status, UpdatedAt: now}

	if status.StampsReviewer() {
		reviewer := caller.ID.String()
		patch.ReviewedBy = &reviewer
		patch.ReviewedAt = &now
	}
	if status == domain.ReportStatusRejected {
		if input.RejectionReason != "" {
			reason := input.RejectionReason
			patch.RejectionReason = &reason
		}
	} else {
		patch.ClearRejectionReason = true
	}

	if loc := input.Location.toDomain(); loc != nil {
		s.enrichLocation(ctx, loc)
		patch.Location = loc
	}

	var updated *domain.Report
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
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

	s.metrics.ReportTransitioned(string(status))
	s.log.InfoContext(ctx, "report transitioned",
		slog.String("report_id", updated.ID),
		slog.String("from", string(current.Status)),
		slog.String("to", string(status)),
		slog.String("admin_id", caller.ID.String()),
	)

	if status == domain.ReportStatusProcessing {
		s.notifyProcessing(ctx, updated)
	}

	return updated, nil
}

// notifyProcessing dispatches the processing alert for the re-read category.
func (s *Service) notifyProcessing(ctx context.Context, r *domain.Report) {
	if err := s.notifier.Notify(ctx, r.Category, s.cfg.ProcessingMessage); err != nil {
		s.log.WarnContext(ctx, "processing notification failed",
			slog.String("report_id", r.ID),
			slog.String("category", string(r.Category)),
			slog.String("error", err.Error()),
		)
	}
}
