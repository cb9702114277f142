// Package digest builds the periodic statistics summary sent to operators.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

type statsSource interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)
}

type sender interface {
	Send(ctx context.Context, text string) error
}

// Service formats and delivers the digest.
type Service struct {
	stats         statsSource
	sender        sender
	topCategories int
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a digest Service. topCategories <= 0 omits the
// category section.
func NewService(log *slog.Logger, stats statsSource, sender sender, topCategories int) *Service {
	return &Service{
		stats:         stats,
		sender:        sender,
		topCategories: topCategories,
		now:           func() time.Time { return time.Now().UTC() },
		log:           log.With("service", "digest"),
	}
}

// Send collects the current statistics and posts them.
func (s *Service) Send(ctx context.Context) error {
	text, err := s.Build(ctx)
	if err != nil {
		return err
	}

	if err := s.sender.Send(ctx, text); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	s.log.InfoContext(ctx, "digest sent", slog.Int("length", len(text)))
	return nil
}

// Build returns the digest text without sending it.
func (s *Service) Build(ctx context.Context) (string, error) {
	dash, err := s.stats.Dashboard(ctx)
	if err != nil {
		return "", fmt.Errorf("dashboard: %w", err)
	}

	var cats []domain.CategoryCount
	if s.topCategories > 0 {
		cats, err = s.stats.CategoryCounts(ctx)
		if err != nil {
			return "", fmt.Errorf("category counts: %w", err)
		}
	}

	return format(s.now(), dash, cats, s.topCategories), nil
}
