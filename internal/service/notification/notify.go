package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/internal/metrics"
)

// Notify sends text to the phone linked to category. It is a no-op when the
// category is unlinked or has no phone. A missing setting row is created
// with defaults.
func (s *Service) Notify(ctx context.Context, category domain.ReportCategory, text string) error {
	setting, err := s.settings.Get(ctx, category)
	if errors.Is(err, domain.ErrNotFound) {
		if err := s.settings.EnsureDefaults(ctx, []domain.ReportCategory{category}); err != nil {
			s.metrics.Notification(metrics.NotificationFailed)
			return fmt.Errorf("%w: ensure defaults: %w", domain.ErrNotificationFailed, err)
		}
		def := domain.DefaultCategorySetting(category)
		setting = &def
	} else if err != nil {
		s.metrics.Notification(metrics.NotificationFailed)
		return fmt.Errorf("%w: get setting: %w", domain.ErrNotificationFailed, err)
	}

	to := normalizePhone(setting.Phone)
	if !setting.Linked || to == "" {
		s.metrics.Notification(metrics.NotificationSkipped)
		s.log.DebugContext(ctx, "notification skipped",
			slog.String("category", string(category)),
			slog.Bool("linked", setting.Linked),
		)
		return nil
	}

	msgID, err := s.sender.Send(ctx, to, text)
	if err != nil {
		s.metrics.Notification(metrics.NotificationFailed)
		return fmt.Errorf("%w: send: %w", domain.ErrNotificationFailed, err)
	}

	s.metrics.Notification(metrics.NotificationSent)
	s.log.InfoContext(ctx, "notification sent",
		slog.String("category", string(category)),
		slog.String("message_id", msgID),
	)
	return nil
}
