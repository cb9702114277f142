package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// Trend compares [now-w, now] with [now-2w, now-w).
func (s *Service) Trend(ctx context.Context, windowDays int) (domain.Trend, error) {
	if windowDays <= 0 {
		return domain.Trend{}, domain.NewValidationError("window_days", "must be positive")
	}

	now := s.now().UTC()
	w := time.Duration(windowDays) * 24 * time.Hour

	current, err := s.reports.CountCreatedBetween(ctx, now.Add(-w), now, true)
	if err != nil {
		return domain.Trend{}, fmt.Errorf("count current window: %w", err)
	}
	previous, err := s.reports.CountCreatedBetween(ctx, now.Add(-2*w), now.Add(-w), false)
	if err != nil {
		return domain.Trend{}, fmt.Errorf("count previous window: %w", err)
	}

	return domain.Trend{
		WindowDays:    windowDays,
		Current:       current,
		Previous:      previous,
		PercentChange: percentChange(current, previous),
	}, nil
}

// percentChange returns nil when there is no baseline. Halves round up.
func percentChange(current, previous int) *int {
	if previous == 0 {
		return nil
	}
	p := int(math.Floor(float64(current-previous)*100/float64(previous) + 0.5))
	return &p
}
