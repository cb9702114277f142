package stats

import (
	"context"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// Dashboard combines the status snapshot with weekly and monthly trends.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	snap, err := s.StatusSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	week, err := s.Trend(ctx, WeekDays)
	if err != nil {
		return nil, err
	}
	month, err := s.Trend(ctx, MonthDays)
	if err != nil {
		return nil, err
	}
	return &domain.Dashboard{ByStatus: snap, Week: week, Month: month}, nil
}

// Charts returns the daily series and the category breakdown.
func (s *Service) Charts(ctx context.Context) (*domain.Charts, error) {
	daily, err := s.DailyCounts(ctx, DailyWindow)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Charts{Daily: daily, ByCategory: byCategory}, nil
}
