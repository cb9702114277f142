package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/pkg/ctxutil"
)

// Delete removes a report permanently. Deleting a missing report returns
// domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.reports.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}

	s.log.InfoContext(ctx, "report deleted",
		slog.String("report_id", id),
		slog.String("admin_id", caller.ID.String()),
	)
	return nil
}
